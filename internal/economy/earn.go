package economy

// Fixed payouts for the periodic claims.
const (
	DailyEarning   int64 = 5000
	WeeklyEarning  int64 = 10000
	MonthlyEarning int64 = 50000

	workMin = 100
	workMax = 500
)

var workPhrases = []string{
	"did babysitting for 6 hours and earned",
	"finished a 100-day job and earned",
	"found some money on road and got",
	"sold a modern art picture and earned",
	"caught a robber and was prized with",
	"fixed neighbour's PC and earned",
	"checked his car bonnet and found",
	"won a bet and earned",
	"repaired cars at workshop for a day and earned",
	"won a lucky draw and earned",
}

// Earning is the result of a successful claim.
type Earning struct {
	Kind   Kind
	Amount int64
	// Phrase describes the job for work claims.
	Phrase string
	Tx     Transaction
}

// Claim runs a cooldown-gated earning (work, daily, weekly or monthly).
func (b *Bank) Claim(userID string, kind Kind) (Earning, error) {
	b.mu.Lock()
	earning, err := b.claim(userID, kind)
	b.mu.Unlock()

	b.deliver(earning.Tx, err)
	return earning, err
}

func (b *Bank) claim(userID string, kind Kind) (Earning, error) {
	earning := Earning{Kind: kind}
	switch kind {
	case KindWork:
		earning.Amount = int64(b.randomBetween(workMin, workMax))
		earning.Phrase = workPhrases[b.rng.IntN(len(workPhrases))]
	case KindDaily:
		earning.Amount = DailyEarning
	case KindWeekly:
		earning.Amount = WeeklyEarning
	case KindMonthly:
		earning.Amount = MonthlyEarning
	default:
		return Earning{}, ErrNotEarnable
	}

	if err := b.consume(userID, kind); err != nil {
		return Earning{}, err
	}

	tx, err := b.credit(userID, earning.Amount)
	if err != nil {
		return Earning{}, err
	}
	earning.Tx = tx
	return earning, nil
}
