package pricing

import (
	"fmt"
	"math"

	"bridge-lending-backend/pkg/money"
)

// Thresholds of the eligibility checks.
const (
	MinRehabCost        = 1000.0
	MinTotalLoanAmount  = 100000.0
	MaxLoanToCostPct    = 90.0
	MaxAfterRepairLTV   = 75.0
	MinQualifyingFloor  = 20000.0
	MinQualifyingPct    = 0.05
	MaxPurchasePricePct = 0.75
	MaxARVPct           = 0.65
	MaxQualifyingCap    = 2920000.0
)

// ErrorKind tags a failed eligibility check.
type ErrorKind string

const (
	KindFicoTooLow    ErrorKind = "fico_too_low"
	KindRehabTooSmall ErrorKind = "rehab_too_small"
	KindLoanTooSmall  ErrorKind = "loan_too_small"
	KindLTCTooHigh    ErrorKind = "ltc_too_high"
	KindARVLTVTooHigh ErrorKind = "arv_ltv_too_high"
)

// ValidationError is one failed check with the value that tripped it.
type ValidationError struct {
	Kind      ErrorKind `json:"kind"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
	Message   string    `json:"message"`
}

// DerivedFigures are the amounts and ratios computed from LoanInputs.
type DerivedFigures struct {
	FicoScore                 int     `json:"fico_score"`
	TotalLoanAmountForPayment float64 `json:"total_loan_amount_for_payment"`
	TotalLoanAmount           float64 `json:"total_loan_amount"`
	LoanToCostPercent         float64 `json:"loan_to_cost_percent"`
	AfterRepairLTVPercent     float64 `json:"after_repair_ltv_percent"`
	MinQualifyingLoan         float64 `json:"min_qualifying_loan"`
	MaxQualifyingLoan         float64 `json:"max_qualifying_loan"`
}

// Derive computes the figures used by Validate and the rate table.
func Derive(in LoanInputs) DerivedFigures {
	score, _ := ResolveFico(in.FicoTier)
	base := math.Max(0, in.BaseLoanAmount())
	rehab := math.Max(0, in.RehabCost)
	price := math.Max(0, in.PurchasePrice)
	arv := math.Max(0, in.AfterRepairValue)

	d := DerivedFigures{
		FicoScore:                 score,
		TotalLoanAmountForPayment: base,
		TotalLoanAmount:           base + rehab,
		MinQualifyingLoan:         math.Max(MinQualifyingFloor, price*MinQualifyingPct),
		MaxQualifyingLoan:         math.Min(math.Min(price*MaxPurchasePricePct, arv*MaxARVPct), MaxQualifyingCap),
	}
	// zero denominators pass their ratio check
	if price > 0 {
		d.LoanToCostPercent = d.TotalLoanAmount / price * 100
	}
	if arv > 0 {
		d.AfterRepairLTVPercent = d.TotalLoanAmount / arv * 100
	}
	return d
}

// Validate runs every check in display order and returns the failures.
func Validate(in LoanInputs, d DerivedFigures) []ValidationError {
	var out []ValidationError
	if HasLowFico(d.FicoScore) {
		out = append(out, ValidationError{
			Kind: KindFicoTooLow, Value: float64(d.FicoScore), Threshold: MinimumFico,
			Message: fmt.Sprintf("A minimum FICO score of %d is required.", MinimumFico),
		})
	}
	if in.RehabCost > 0 && in.RehabCost < MinRehabCost {
		out = append(out, ValidationError{
			Kind: KindRehabTooSmall, Value: in.RehabCost, Threshold: MinRehabCost,
			Message: fmt.Sprintf("Rehab cost of %s is below the %s minimum.",
				money.FormatMoney(in.RehabCost, 2), money.FormatMoney(MinRehabCost, 2)),
		})
	}
	if d.TotalLoanAmount < MinTotalLoanAmount {
		out = append(out, ValidationError{
			Kind: KindLoanTooSmall, Value: d.TotalLoanAmount, Threshold: MinTotalLoanAmount,
			Message: fmt.Sprintf("Total loan amount of %s is below the %s minimum.",
				money.FormatMoney(d.TotalLoanAmount, 2), money.FormatMoney(MinTotalLoanAmount, 2)),
		})
	}
	if d.LoanToCostPercent > MaxLoanToCostPct {
		out = append(out, ValidationError{
			Kind: KindLTCTooHigh, Value: money.Round(d.LoanToCostPercent, 2), Threshold: MaxLoanToCostPct,
			Message: fmt.Sprintf("Loan to cost of %.2f%% exceeds the %.0f%% maximum.", d.LoanToCostPercent, MaxLoanToCostPct),
		})
	}
	if d.AfterRepairLTVPercent > MaxAfterRepairLTV {
		out = append(out, ValidationError{
			Kind: KindARVLTVTooHigh, Value: money.Round(d.AfterRepairLTVPercent, 2), Threshold: MaxAfterRepairLTV,
			Message: fmt.Sprintf("After repair LTV of %.2f%% exceeds the %.0f%% maximum.", d.AfterRepairLTVPercent, MaxAfterRepairLTV),
		})
	}
	return out
}
