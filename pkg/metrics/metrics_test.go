package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCommand(t *testing.T) {
	before := testutil.ToFloat64(botCommandsTotal.WithLabelValues("balance", "ok"))

	RecordCommand("balance", "ok", 20*time.Millisecond)

	after := testutil.ToFloat64(botCommandsTotal.WithLabelValues("balance", "ok"))
	assert.Equal(t, before+1, after)
}

func TestRecordCommandUnknownLabels(t *testing.T) {
	before := testutil.ToFloat64(botCommandsTotal.WithLabelValues("unknown", "unknown"))

	RecordCommand("", "", time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(botCommandsTotal.WithLabelValues("unknown", "unknown")))
}

func TestCurrencyCounters(t *testing.T) {
	credit := testutil.ToFloat64(currencyMovedTotal.WithLabelValues("credit"))
	debit := testutil.ToFloat64(currencyMovedTotal.WithLabelValues("debit"))

	RecordCredit(5000)
	RecordDebit(1200)

	assert.Equal(t, credit+5000, testutil.ToFloat64(currencyMovedTotal.WithLabelValues("credit")))
	assert.Equal(t, debit+1200, testutil.ToFloat64(currencyMovedTotal.WithLabelValues("debit")))
}

func TestRecordSave(t *testing.T) {
	okBefore := testutil.ToFloat64(persistenceSavesTotal.WithLabelValues("balance", "ok"))
	errBefore := testutil.ToFloat64(persistenceSavesTotal.WithLabelValues("balance", "error"))

	RecordSave("balance", nil)
	RecordSave("balance", errors.New("timeout"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(persistenceSavesTotal.WithLabelValues("balance", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(persistenceSavesTotal.WithLabelValues("balance", "error")))
}

func TestGauges(t *testing.T) {
	SetQueueDepth(3)
	SetGuildCount(12)

	assert.Equal(t, float64(3), testutil.ToFloat64(persistenceQueueDepth))
	assert.Equal(t, float64(12), testutil.ToFloat64(guildCount))
}
