package economy

import (
	"strconv"
	"strings"
	"time"
)

// HackPrize is won on a correct answer and lost on a wrong one.
const HackPrize int64 = 9000

// PuzzleTTL is how long an issued puzzle can be answered.
const PuzzleTTL = 5 * time.Minute

type pendingPuzzle struct {
	answer  int64
	expires time.Time
}

// Puzzle is a "next number in the sequence" question.
type Puzzle struct {
	Question string
	Answer   int64
}

// NewPuzzle builds a sequence starting at 1 whose differences grow linearly:
// term i adds m*i+a for a multiplier m in [1,3] and an adder a in [1,8].
// The question shows ten terms and the answer is the eleventh.
func (b *Bank) NewPuzzle() Puzzle {
	b.mu.Lock()
	m := int64(b.randomBetween(1, 3))
	a := int64(b.randomBetween(1, 8))
	b.mu.Unlock()

	current := int64(1)
	terms := []string{"1"}
	for i := int64(1); i <= 9; i++ {
		current += m*i + a
		terms = append(terms, strconv.FormatInt(current, 10))
	}
	return Puzzle{
		Question: strings.Join(terms, ", "),
		Answer:   current + m*10 + a,
	}
}

// CanHack reports whether the user owns the code needed to run a hack.
func (b *Bank) CanHack(userID string) error {
	if b.Owned(userID, ItemHackerCode) <= 0 {
		return ErrNotOwned
	}
	return nil
}

// HackResult is the outcome of a submitted answer.
type HackResult struct {
	Won       bool
	Malformed bool
	Tx        Transaction
}

// SettleHack pays HackPrize for an exact answer and charges it otherwise.
// Input that is missing or not an integer counts as wrong. A wrong answer the
// user cannot pay for returns the Debit error.
func (b *Bank) SettleHack(userID, input string, answer int64) (HackResult, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err == nil && value == answer {
		tx, err := b.Credit(userID, HackPrize)
		return HackResult{Won: true, Tx: tx}, err
	}

	tx, debitErr := b.Debit(userID, HackPrize)
	return HackResult{Malformed: err != nil, Tx: tx}, debitErr
}

// IssuePuzzle draws a puzzle and keeps its answer for the user until PuzzleTTL
// passes. A new puzzle replaces the previous one.
func (b *Bank) IssuePuzzle(userID string) Puzzle {
	p := b.NewPuzzle()

	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	for id, pending := range b.puzzles {
		if now.After(pending.expires) {
			delete(b.puzzles, id)
		}
	}
	b.puzzles[userID] = pendingPuzzle{answer: p.Answer, expires: now.Add(PuzzleTTL)}
	return p
}

// SolvePuzzle settles the user's open puzzle. Each puzzle is answered once;
// a missing or expired one returns ErrPuzzleExpired and costs nothing.
func (b *Bank) SolvePuzzle(userID, input string) (HackResult, error) {
	b.mu.Lock()
	pending, ok := b.puzzles[userID]
	delete(b.puzzles, userID)
	expired := ok && b.now().After(pending.expires)
	b.mu.Unlock()

	if !ok || expired {
		return HackResult{}, ErrPuzzleExpired
	}
	return b.SettleHack(userID, input, pending.answer)
}
