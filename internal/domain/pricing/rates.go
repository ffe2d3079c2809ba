package pricing

import (
	"fmt"

	"bridge-lending-backend/pkg/money"
)

// Terms offered for every quote, in months.
var Terms = [3]int{12, 18, 24}

// RateOption is one selectable row of the rate table.
type RateOption struct {
	TermMonths        int     `json:"term_months"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	MonthlyPayment    float64 `json:"monthly_payment"`
}

// Label is the display name stored as chosen_rate_type, e.g. "12 Months".
func (o RateOption) Label() string { return fmt.Sprintf("%d Months", o.TermMonths) }

type rateBand struct {
	minScore int
	standard [3]float64
	refiOwn  [3]float64
}

// Bands ordered from the highest floor down; the first band whose floor the
// score reaches wins.
var rateBands = []rateBand{
	{minScore: 720, standard: [3]float64{8.25, 9.00, 9.25}, refiOwn: [3]float64{10.25, 11.00, 11.25}},
	{minScore: 660, standard: [3]float64{9.50, 10.00, 10.50}, refiOwn: [3]float64{10.75, 11.50, 11.75}},
	{minScore: 0, standard: [3]float64{10.75, 11.50, 11.75}, refiOwn: [3]float64{11.25, 12.00, 12.25}},
}

var fallbackRates = rateBands[0].standard

// SelectRates returns the annual rates for the 12/18/24 month terms.
func SelectRates(score int, refinanceWithOwnership bool) [3]float64 {
	for _, b := range rateBands {
		if score >= b.minScore {
			if refinanceWithOwnership {
				return b.refiOwn
			}
			return b.standard
		}
	}
	return fallbackRates
}

// MonthlyPayment is the interest-only payment on principal at annualRatePercent.
func MonthlyPayment(principal, annualRatePercent float64) float64 {
	return money.Round(principal*(annualRatePercent/100/12), 2)
}

// BuildRateTable prices principal against the rates for score.
func BuildRateTable(score int, refinanceWithOwnership bool, principal float64) []RateOption {
	rates := SelectRates(score, refinanceWithOwnership)
	out := make([]RateOption, 0, len(Terms))
	for i, term := range Terms {
		out = append(out, RateOption{
			TermMonths:        term,
			AnnualRatePercent: rates[i],
			MonthlyPayment:    MonthlyPayment(principal, rates[i]),
		})
	}
	return out
}
