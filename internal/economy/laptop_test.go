package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPuzzle(t *testing.T) {
	// multiplier 2, adder 3
	b := newTestBank(WithRNG(&seqRNG{values: []int{1, 2}}))

	p := b.NewPuzzle()

	assert.Equal(t, "1, 6, 13, 22, 33, 46, 61, 78, 97, 118", p.Question)
	assert.Equal(t, int64(141), p.Answer)
}

func TestNewPuzzleBounds(t *testing.T) {
	b := newTestBank()
	for i := 0; i < 100; i++ {
		p := b.NewPuzzle()
		// smallest: m=1,a=1 -> 1+sum(i+1, i=1..10); largest: m=3,a=8
		assert.GreaterOrEqual(t, p.Answer, int64(1+55+10))
		assert.LessOrEqual(t, p.Answer, int64(1+3*55+80))
	}
}

func TestCanHack(t *testing.T) {
	b := newTestBank()
	assert.ErrorIs(t, b.CanHack("1"), ErrNotOwned)

	b.fund("1", 90000)
	_, _, err := b.Buy("1", "code")
	require.NoError(t, err)
	assert.NoError(t, b.CanHack("1"))
}

func TestSettleHack(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		won       bool
		malformed bool
		balance   int64
	}{
		{"correct", "141", true, false, 19000},
		{"correct with spaces", " 141 ", true, false, 19000},
		{"wrong", "140", false, false, 1000},
		{"not a number", "one forty", false, true, 1000},
		{"empty", "", false, true, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBank()
			b.fund("1", 10000)

			res, err := b.SettleHack("1", tt.input, 141)

			require.NoError(t, err)
			assert.Equal(t, tt.won, res.Won)
			assert.Equal(t, tt.malformed, res.Malformed)
			assert.Equal(t, HackPrize, res.Tx.Amount)
			assert.Equal(t, tt.balance, b.Balance("1"))
		})
	}
}

func TestSettleHackCannotPay(t *testing.T) {
	b := newTestBank()
	b.fund("1", 100)

	res, err := b.SettleHack("1", "0", 141)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.False(t, res.Won)
	assert.Equal(t, int64(100), b.Balance("1"))
}

func TestSolvePuzzle(t *testing.T) {
	// multiplier 2, adder 3: answer 141
	b := newTestBank(WithRNG(&seqRNG{values: []int{1, 2}}))
	b.fund("1", 10000)

	p := b.IssuePuzzle("1")
	require.Equal(t, int64(141), p.Answer)

	res, err := b.SolvePuzzle("1", "141")
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, int64(19000), b.Balance("1"))

	_, err = b.SolvePuzzle("1", "141")
	assert.ErrorIs(t, err, ErrPuzzleExpired)
	assert.Equal(t, int64(19000), b.Balance("1"))
}

func TestSolvePuzzleExpires(t *testing.T) {
	b := newTestBank(WithRNG(&seqRNG{values: []int{1, 2}}))
	b.fund("1", 10000)

	b.IssuePuzzle("1")
	b.clock.Advance(PuzzleTTL + time.Second)

	_, err := b.SolvePuzzle("1", "141")
	assert.ErrorIs(t, err, ErrPuzzleExpired)
	assert.Equal(t, int64(10000), b.Balance("1"))
}

func TestSolvePuzzleIsPerUser(t *testing.T) {
	b := newTestBank(WithRNG(&seqRNG{values: []int{1, 2}}))
	b.fund("2", 10000)

	b.IssuePuzzle("1")

	_, err := b.SolvePuzzle("2", "141")
	assert.ErrorIs(t, err, ErrPuzzleExpired)
	assert.Equal(t, int64(10000), b.Balance("2"))
}
