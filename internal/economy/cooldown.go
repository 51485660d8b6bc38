package economy

import (
	"fmt"
	"time"
)

// Kind is a cooldown-gated action.
type Kind int

const (
	KindWork Kind = iota
	KindRob
	KindDaily
	KindWeekly
	KindMonthly
)

// Kinds lists every cooldown kind.
func Kinds() []Kind {
	return []Kind{KindWork, KindRob, KindDaily, KindWeekly, KindMonthly}
}

// String is also the persisted document name.
func (k Kind) String() string {
	switch k {
	case KindWork:
		return "work"
	case KindRob:
		return "rob"
	case KindDaily:
		return "daily"
	case KindWeekly:
		return "weekly"
	case KindMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of String.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Duration is the cooldown length.
func (k Kind) Duration() time.Duration {
	switch k {
	case KindDaily:
		return 24 * time.Hour
	case KindWeekly:
		return 7 * 24 * time.Hour
	case KindMonthly:
		return 30 * 24 * time.Hour
	default:
		return 30 * time.Second
	}
}

// remaining is the time left before kind is allowed again. Caller must hold b.mu.
func (b *Bank) remaining(userID string, kind Kind) time.Duration {
	last, ok := b.cooldowns[kind][userID]
	if !ok {
		return 0
	}
	elapsed := b.now().Sub(last)
	if elapsed >= kind.Duration() {
		return 0
	}
	return kind.Duration() - elapsed
}

// consume checks and records the action. Caller must hold b.mu.
func (b *Bank) consume(userID string, kind Kind) error {
	if left := b.remaining(userID, kind); left > 0 {
		return &CooldownError{Kind: kind, Remaining: left}
	}
	b.cooldowns[kind][userID] = b.now()
	b.flushCooldown(kind)
	return nil
}

// TryConsume permits the action and restarts its timer, or returns a *CooldownError.
func (b *Bank) TryConsume(userID string, kind Kind) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.consume(userID, kind)
}

// Remaining reports how long until kind is allowed again (0 if it is).
func (b *Bank) Remaining(userID string, kind Kind) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining(userID, kind)
}

// FastForward moves each timer back by its remaining deficit so the cooldown is over.
// Users with no record are left alone.
func (b *Bank) FastForward(userID string, kinds ...Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, kind := range kinds {
		left := b.remaining(userID, kind)
		if left <= 0 {
			continue
		}
		b.cooldowns[kind][userID] = b.cooldowns[kind][userID].Add(-left)
		b.flushCooldown(kind)
	}
}

// FormatRemaining renders a countdown at the scale of the action:
// seconds for work and rob, hours for daily, days for weekly and monthly.
func FormatRemaining(kind Kind, d time.Duration) string {
	left := int64(d / time.Second)
	switch kind {
	case KindDaily:
		return fmt.Sprintf("%d hours, %d minutes and %d seconds", left/3600, left%3600/60, left%60)
	case KindWeekly, KindMonthly:
		days := left / 86400
		left %= 86400
		return fmt.Sprintf("%d days, %d hours, %d minutes and %d seconds", days, left/3600, left%3600/60, left%60)
	default:
		return fmt.Sprintf("%d seconds", left)
	}
}
