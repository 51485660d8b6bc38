package economy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditDebit(t *testing.T) {
	b := newTestBank()

	tx, err := b.Credit("1", 500)
	require.NoError(t, err)
	assert.Equal(t, Transaction{UserID: "1", Kind: Deposit, Opening: 0, Amount: 500, Closing: 500, notify: true}, tx)

	tx, err = b.Debit("1", 200)
	require.NoError(t, err)
	assert.Equal(t, int64(500), tx.Opening)
	assert.Equal(t, int64(300), tx.Closing)
	assert.Equal(t, int64(300), b.Balance("1"))
}

func TestInvalidAmounts(t *testing.T) {
	b := newTestBank()
	b.fund("1", 100)

	for _, amount := range []int64{0, -5} {
		_, err := b.Credit("1", amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = b.Debit("1", amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.Equal(t, int64(100), b.Balance("1"))
}

func TestDebitAtZeroBalance(t *testing.T) {
	b := newTestBank()

	_, err := b.Debit("1", 100)

	require.ErrorIs(t, err, ErrInsufficientFunds)
	var funds *FundsError
	require.True(t, errors.As(err, &funds))
	assert.True(t, funds.Empty())
	assert.Equal(t, int64(0), b.Balance("1"))
}

func TestDebitMoreThanBalance(t *testing.T) {
	b := newTestBank()
	b.fund("1", 50)

	_, err := b.Debit("1", 100)

	var funds *FundsError
	require.True(t, errors.As(err, &funds))
	assert.False(t, funds.Empty())
	assert.Equal(t, int64(50), funds.Balance)
	assert.Equal(t, int64(50), b.Balance("1"))
}

func TestCreditThenDebitRestoresBalance(t *testing.T) {
	amounts := []int64{1, 99, 5400, 1 << 40}
	for _, amount := range amounts {
		b := newTestBank()
		b.fund("1", 1234)

		_, err := b.Credit("1", amount)
		require.NoError(t, err)
		_, err = b.Debit("1", amount)
		require.NoError(t, err)

		assert.Equal(t, int64(1234), b.Balance("1"))
	}
}

func TestLazyAccountOpeningFlushes(t *testing.T) {
	b := newTestBank()

	assert.Equal(t, int64(0), b.Balance("new"))
	assert.Equal(t, 1, b.persist.count(DocBalance))

	b.Balance("new")
	assert.Equal(t, 1, b.persist.count(DocBalance), "known accounts are not flushed again")

	_, err := b.Credit("other", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, b.persist.count(DocBalance), "opening plus credit")
}

func TestReceiptsCarryBankDM(t *testing.T) {
	b := newTestBank()
	b.SetBankDM("quiet", false)

	_, err := b.Credit("loud", 10)
	require.NoError(t, err)
	_, err = b.Credit("quiet", 10)
	require.NoError(t, err)
	_, err = b.Debit("loud", 1000)
	require.Error(t, err)

	require.Len(t, b.notifier.txs, 2)
	assert.Equal(t, "loud", b.notifier.txs[0].UserID)
	assert.True(t, b.notifier.txs[0].WantsDM())
	assert.Equal(t, "quiet", b.notifier.txs[1].UserID)
	assert.False(t, b.notifier.txs[1].WantsDM())
}

func TestTransfer(t *testing.T) {
	b := newTestBank()
	b.fund("a", 1000)

	out, in, err := b.Transfer("a", "b", 400)
	require.NoError(t, err)
	assert.Equal(t, Withdrawal, out.Kind)
	assert.Equal(t, Deposit, in.Kind)
	assert.Equal(t, int64(600), b.Balance("a"))
	assert.Equal(t, int64(400), b.Balance("b"))
	assert.Len(t, b.notifier.txs, 2)
}

func TestTransferFailureChangesNothing(t *testing.T) {
	b := newTestBank()
	b.fund("a", 100)
	b.fund("b", 5)

	_, _, err := b.Transfer("a", "b", 101)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(100), b.Balance("a"))
	assert.Equal(t, int64(5), b.Balance("b"))
	assert.Empty(t, b.notifier.txs)
}

func TestTop(t *testing.T) {
	b := newTestBank()
	b.fund("a", 300)
	b.fund("b", 900)
	b.fund("c", 300)
	b.fund("d", 0)
	b.fund("e", 50)

	top := b.Top(3, nil)
	assert.Equal(t, []Account{{"b", 900}, {"a", 300}, {"c", 300}}, top)

	members := map[string]bool{"c": true, "e": true, "d": true}
	guild := b.Top(5, func(id string) bool { return members[id] })
	assert.Equal(t, []Account{{"c", 300}, {"e", 50}}, guild)
}

func TestBalanceNeverNegative(t *testing.T) {
	b := newTestBank()
	b.fund("1", 1000)

	for i := 0; i < 50; i++ {
		_, _ = b.Debit("1", 73)
		assert.GreaterOrEqual(t, b.Balance("1"), int64(0))
	}
	assert.Equal(t, int64(1000%73), b.Balance("1"))
}
