package economy

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrItemNotFound      = errors.New("item not found")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrNotOwned          = errors.New("item not owned")
	ErrPassiveMode       = errors.New("passive mode enabled")
	ErrSelfTarget        = errors.New("cannot target yourself")
	ErrBotTarget         = errors.New("cannot target a bot")
	ErrTargetTooPoor     = errors.New("target does not have enough money")
	ErrNotEarnable       = errors.New("cooldown kind has no earning")
	ErrPuzzleExpired     = errors.New("no open puzzle")
)

// FundsError is returned by Debit when the balance does not cover the amount.
type FundsError struct {
	Balance int64
	Amount  int64
}

func (e *FundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %d, requested %d", e.Balance, e.Amount)
}

// Is makes errors.Is(err, ErrInsufficientFunds) match.
func (e *FundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Empty reports whether the account had nothing at all.
func (e *FundsError) Empty() bool {
	return e.Balance == 0
}

// PassiveError tells whether the actor or the target is in passive mode.
type PassiveError struct {
	Target bool
}

func (e *PassiveError) Error() string {
	if e.Target {
		return "target is in passive mode"
	}
	return "actor is in passive mode"
}

func (e *PassiveError) Is(target error) bool {
	return target == ErrPassiveMode
}

// CooldownError is returned while an action is still cooling down.
type CooldownError struct {
	Kind      Kind
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s on cooldown for %s", e.Kind, e.Remaining)
}
