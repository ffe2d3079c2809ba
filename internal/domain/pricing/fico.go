package pricing

// FicoTier is the credit-score bucket label submitted by the application form.
type FicoTier string

const (
	FicoBelow600 FicoTier = "below_600"
	Fico600To619 FicoTier = "600-619"
	Fico620To639 FicoTier = "620-639"
	Fico640To659 FicoTier = "640-659"
	Fico660To679 FicoTier = "660-679"
	Fico680To699 FicoTier = "680-699"
	Fico700To719 FicoTier = "700-719"
	Fico720To739 FicoTier = "720-739"
	Fico740To759 FicoTier = "740-759"
	Fico760To779 FicoTier = "760-779"
	FicoOver780  FicoTier = "over_780"
)

// MinimumFico is the lowest representative score that qualifies for a loan.
const MinimumFico = 640

// unknownFicoScore is used for labels outside the table. Pricing an unknown
// bucket as the worst tier keeps malformed input from receiving the best rates.
const unknownFicoScore = 599

var ficoScores = map[FicoTier]int{
	FicoBelow600: 599,
	Fico600To619: 610,
	Fico620To639: 630,
	Fico640To659: 650,
	Fico660To679: 670,
	Fico680To699: 690,
	Fico700To719: 710,
	Fico720To739: 730,
	Fico740To759: 750,
	Fico760To779: 770,
	FicoOver780:  780,
}

// Tiers lists every bucket from lowest to highest.
var Tiers = []FicoTier{
	FicoBelow600, Fico600To619, Fico620To639, Fico640To659, Fico660To679, Fico680To699,
	Fico700To719, Fico720To739, Fico740To759, Fico760To779, FicoOver780,
}

// ResolveFico maps a tier label to its representative score. ok is false
// when the label is not one of the known buckets.
func ResolveFico(tier FicoTier) (score int, ok bool) {
	score, ok = ficoScores[tier]
	if !ok {
		return unknownFicoScore, false
	}
	return score, true
}

// HasLowFico reports whether score is below MinimumFico.
func HasLowFico(score int) bool { return score < MinimumFico }
