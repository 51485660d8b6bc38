package economy

// Rob payout bounds. A target must hold at least robMin to be robbed.
const (
	robMin = 1000
	robMax = 5000
)

// Target identifies the other party of a rob or give.
type Target struct {
	UserID string
	Bot    bool
}

// Rob steals a random amount from target. Preconditions are checked in order
// and the first failure is returned before anything changes.
func (b *Bank) Rob(actorID string, target Target) (int64, error) {
	b.mu.Lock()
	amount, out, in, err := b.rob(actorID, target)
	b.mu.Unlock()

	b.deliver(out, err)
	b.deliver(in, err)
	return amount, err
}

func (b *Bank) rob(actorID string, target Target) (int64, Transaction, Transaction, error) {
	var none Transaction
	if actorID == target.UserID {
		return 0, none, none, ErrSelfTarget
	}
	if target.Bot {
		return 0, none, none, ErrBotTarget
	}
	if left := b.remaining(actorID, KindRob); left > 0 {
		return 0, none, none, &CooldownError{Kind: KindRob, Remaining: left}
	}
	if b.settingsFor(actorID).Passive {
		return 0, none, none, &PassiveError{}
	}
	if b.settingsFor(target.UserID).Passive {
		return 0, none, none, &PassiveError{Target: true}
	}
	victim := b.account(target.UserID)
	if victim < robMin {
		return 0, none, none, ErrTargetTooPoor
	}

	if err := b.consume(actorID, KindRob); err != nil {
		return 0, none, none, err
	}

	amount := int64(b.randomBetween(robMin, robMax))
	for amount > victim {
		amount = int64(b.randomBetween(robMin, robMax))
	}

	out, in, err := b.transfer(target.UserID, actorID, amount)
	if err != nil {
		return 0, none, none, err
	}
	return amount, out, in, nil
}

// Give moves amount from the actor to target.
func (b *Bank) Give(actorID string, target Target, amount int64) error {
	b.mu.Lock()
	out, in, err := b.give(actorID, target, amount)
	b.mu.Unlock()

	b.deliver(out, err)
	b.deliver(in, err)
	return err
}

func (b *Bank) give(actorID string, target Target, amount int64) (Transaction, Transaction, error) {
	var none Transaction
	if actorID == target.UserID {
		return none, none, ErrSelfTarget
	}
	if target.Bot {
		return none, none, ErrBotTarget
	}
	if amount <= 0 {
		return none, none, ErrInvalidAmount
	}
	if b.settingsFor(actorID).Passive {
		return none, none, &PassiveError{}
	}
	if b.settingsFor(target.UserID).Passive {
		return none, none, &PassiveError{Target: true}
	}
	return b.transfer(actorID, target.UserID, amount)
}
