package economy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryConsume(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			b := newTestBank()

			require.NoError(t, b.TryConsume("1", kind))

			err := b.TryConsume("1", kind)
			var cd *CooldownError
			require.True(t, errors.As(err, &cd))
			assert.Equal(t, kind, cd.Kind)
			assert.Equal(t, kind.Duration(), cd.Remaining)

			b.clock.Advance(kind.Duration())
			assert.NoError(t, b.TryConsume("1", kind))
		})
	}
}

func TestCooldownKindsAreIndependent(t *testing.T) {
	b := newTestBank()
	require.NoError(t, b.TryConsume("1", KindWork))

	assert.NoError(t, b.TryConsume("1", KindRob))
	assert.NoError(t, b.TryConsume("2", KindWork))
}

func TestDailyScenario(t *testing.T) {
	b := newTestBank()

	earning, err := b.Claim("1", KindDaily)
	require.NoError(t, err)
	assert.Equal(t, DailyEarning, earning.Amount)

	b.clock.Advance(86399 * time.Second)
	_, err = b.Claim("1", KindDaily)
	var cd *CooldownError
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, time.Second, cd.Remaining)
	assert.Equal(t, int64(5000), b.Balance("1"))

	b.clock.Advance(time.Second)
	_, err = b.Claim("1", KindDaily)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), b.Balance("1"))
}

func TestClaimAmounts(t *testing.T) {
	tests := []struct {
		kind Kind
		want int64
	}{
		{KindDaily, 5000},
		{KindWeekly, 10000},
		{KindMonthly, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			b := newTestBank()
			earning, err := b.Claim("1", tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, earning.Amount)
			assert.Equal(t, tt.want, b.Balance("1"))
			assert.Equal(t, 1, b.persist.count(tt.kind.String()))
		})
	}
}

func TestWorkEarning(t *testing.T) {
	b := newTestBank(WithRNG(&seqRNG{values: []int{150, 3}}))

	earning, err := b.Claim("1", KindWork)
	require.NoError(t, err)
	assert.Equal(t, int64(250), earning.Amount)
	assert.Equal(t, "sold a modern art picture and earned", earning.Phrase)
}

func TestWorkEarningRange(t *testing.T) {
	b := newTestBank()
	for i := 0; i < 200; i++ {
		earning, err := b.Claim("1", KindWork)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, earning.Amount, int64(100))
		assert.LessOrEqual(t, earning.Amount, int64(500))
		b.clock.Advance(KindWork.Duration())
	}
}

func TestRobIsNotEarnable(t *testing.T) {
	b := newTestBank()
	_, err := b.Claim("1", KindRob)
	assert.ErrorIs(t, err, ErrNotEarnable)
	assert.Equal(t, time.Duration(0), b.Remaining("1", KindRob))
}

func TestFastForward(t *testing.T) {
	b := newTestBank()
	require.NoError(t, b.TryConsume("1", KindWork))
	require.NoError(t, b.TryConsume("1", KindDaily))
	require.NoError(t, b.TryConsume("1", KindWeekly))
	b.clock.Advance(10 * time.Second)

	b.FastForward("1", KindWork, KindDaily)

	assert.Equal(t, time.Duration(0), b.Remaining("1", KindWork))
	assert.Equal(t, time.Duration(0), b.Remaining("1", KindDaily))
	assert.Equal(t, KindWeekly.Duration()-10*time.Second, b.Remaining("1", KindWeekly))
	assert.NoError(t, b.TryConsume("1", KindDaily))
}

func TestFastForwardWithoutRecord(t *testing.T) {
	b := newTestBank()
	b.FastForward("1", KindWork)
	assert.Equal(t, 0, b.persist.count("work"))
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		kind Kind
		d    time.Duration
		want string
	}{
		{KindWork, 12*time.Second + 600*time.Millisecond, "12 seconds"},
		{KindRob, 30 * time.Second, "30 seconds"},
		{KindDaily, time.Second, "0 hours, 0 minutes and 1 seconds"},
		{KindDaily, 5*time.Hour + 3*time.Minute + 9*time.Second, "5 hours, 3 minutes and 9 seconds"},
		{KindWeekly, 6*24*time.Hour + 23*time.Hour + 59*time.Minute, "6 days, 23 hours, 59 minutes and 0 seconds"},
		{KindMonthly, 29*24*time.Hour + time.Second, "29 days, 0 hours, 0 minutes and 1 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.kind, tt.d))
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		got, ok := ParseKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}
	_, ok := ParseKind("balance")
	assert.False(t, ok)
}
