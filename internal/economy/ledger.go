package economy

import (
	"sort"

	"github.com/PancyStudios/MaxisGo/pkg/metrics"
)

// TxKind distinguishes deposits from withdrawals on receipts.
type TxKind int

const (
	Deposit TxKind = iota
	Withdrawal
)

// Transaction is one balance change.
type Transaction struct {
	UserID  string
	Kind    TxKind
	Opening int64
	Amount  int64
	Closing int64

	notify bool
}

// WantsDM reports whether the account owner had bank DMs enabled.
func (tx Transaction) WantsDM() bool {
	return tx.notify
}

// Account is a leaderboard row.
type Account struct {
	UserID  string
	Balance int64
}

// Balance returns the user's balance, opening the account if needed.
func (b *Bank) Balance(userID string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.account(userID)
}

// account lazily opens an account at 0. Caller must hold b.mu.
func (b *Bank) account(userID string) int64 {
	bal, ok := b.balances[userID]
	if !ok {
		b.balances[userID] = 0
		b.flushBalances()
	}
	return bal
}

// Credit adds amount to the user's balance.
func (b *Bank) Credit(userID string, amount int64) (Transaction, error) {
	b.mu.Lock()
	tx, err := b.credit(userID, amount)
	b.mu.Unlock()

	b.deliver(tx, err)
	return tx, err
}

// Debit removes amount from the user's balance. It fails with a *FundsError
// (matching ErrInsufficientFunds) when the balance does not cover it.
func (b *Bank) Debit(userID string, amount int64) (Transaction, error) {
	b.mu.Lock()
	tx, err := b.debit(userID, amount)
	b.mu.Unlock()

	b.deliver(tx, err)
	return tx, err
}

// Transfer moves amount between two accounts as one step.
func (b *Bank) Transfer(fromID, toID string, amount int64) (Transaction, Transaction, error) {
	b.mu.Lock()
	out, in, err := b.transfer(fromID, toID, amount)
	b.mu.Unlock()

	b.deliver(out, err)
	b.deliver(in, err)
	return out, in, err
}

func (b *Bank) credit(userID string, amount int64) (Transaction, error) {
	opening := b.account(userID)
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	closing := opening + amount
	b.balances[userID] = closing
	b.flushBalances()
	metrics.RecordCredit(amount)

	return Transaction{
		UserID:  userID,
		Kind:    Deposit,
		Opening: opening,
		Amount:  amount,
		Closing: closing,
		notify:  b.settingsFor(userID).BankDM,
	}, nil
}

func (b *Bank) debit(userID string, amount int64) (Transaction, error) {
	opening := b.account(userID)
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if amount > opening {
		return Transaction{}, &FundsError{Balance: opening, Amount: amount}
	}

	closing := opening - amount
	b.balances[userID] = closing
	b.flushBalances()
	metrics.RecordDebit(amount)

	return Transaction{
		UserID:  userID,
		Kind:    Withdrawal,
		Opening: opening,
		Amount:  amount,
		Closing: closing,
		notify:  b.settingsFor(userID).BankDM,
	}, nil
}

// transfer validates both sides before touching either balance.
func (b *Bank) transfer(fromID, toID string, amount int64) (Transaction, Transaction, error) {
	if amount <= 0 {
		return Transaction{}, Transaction{}, ErrInvalidAmount
	}
	if bal := b.account(fromID); amount > bal {
		return Transaction{}, Transaction{}, &FundsError{Balance: bal, Amount: amount}
	}
	b.account(toID)

	out, err := b.debit(fromID, amount)
	if err != nil {
		return Transaction{}, Transaction{}, err
	}
	in, err := b.credit(toID, amount)
	if err != nil {
		return Transaction{}, Transaction{}, err
	}
	return out, in, nil
}

// deliver hands a receipt to the notifier once the lock is released.
func (b *Bank) deliver(tx Transaction, err error) {
	if err != nil {
		return
	}
	b.notify.NotifyTransaction(tx)
}

// Top returns up to n accounts with a positive balance, richest first.
// include filters accounts, e.g. to guild members; nil keeps everyone.
func (b *Bank) Top(n int, include func(userID string) bool) []Account {
	b.mu.Lock()
	accounts := make([]Account, 0, len(b.balances))
	for id, bal := range b.balances {
		if bal > 0 {
			accounts = append(accounts, Account{UserID: id, Balance: bal})
		}
	}
	b.mu.Unlock()

	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Balance != accounts[j].Balance {
			return accounts[i].Balance > accounts[j].Balance
		}
		return accounts[i].UserID < accounts[j].UserID
	})

	top := make([]Account, 0, n)
	for _, acc := range accounts {
		if len(top) == n {
			break
		}
		if include == nil || include(acc.UserID) {
			top = append(top, acc)
		}
	}
	return top
}

// Accounts returns every known user id.
func (b *Bank) Accounts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.balances))
	for id := range b.balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
