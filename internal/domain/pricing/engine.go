package pricing

import (
	"errors"
	"strconv"

	"bridge-lending-backend/pkg/money"
)

var (
	ErrNotQualified = errors.New("loan does not qualify for a rate")
	ErrUnknownTerm  = errors.New("no rate offered for that term")
)

// Chosen-rate keys appended to the submitted record.
const (
	KeyChosenRateType       = "chosen_rate_type"
	KeyChosenRate           = "chosen_rate"
	KeyChosenMonthlyPayment = "chosen_monthly_payment"
)

// QualifyingRange is the informational min/max loan amount.
type QualifyingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Result is the full outcome of a rate estimate. It is always complete:
// failed checks are reported in Errors and leave RateOptions empty.
type Result struct {
	TotalLoanAmount       float64           `json:"total_loan_amount"`
	LoanToCostPercent     float64           `json:"loan_to_cost_percent"`
	AfterRepairLTVPercent float64           `json:"after_repair_ltv_percent"`
	QualifyingRange       QualifyingRange   `json:"qualifying_range"`
	Errors                []ValidationError `json:"errors"`
	RateOptions           []RateOption      `json:"rate_options"`
	Derived               DerivedFigures    `json:"-"`
}

// Qualified reports whether a rate table was produced.
func (r Result) Qualified() bool { return len(r.Errors) == 0 }

// Calculate prices in. It has no side effects and is safe for concurrent use.
func Calculate(in LoanInputs) Result {
	d := Derive(in)
	res := Result{
		TotalLoanAmount:       money.Round(d.TotalLoanAmount, 2),
		LoanToCostPercent:     money.Round(d.LoanToCostPercent, 2),
		AfterRepairLTVPercent: money.Round(d.AfterRepairLTVPercent, 2),
		QualifyingRange: QualifyingRange{
			Min: money.Round(d.MinQualifyingLoan, 2),
			Max: money.Round(d.MaxQualifyingLoan, 2),
		},
		Errors:      Validate(in, d),
		RateOptions: []RateOption{},
		Derived:     d,
	}
	if res.Errors == nil {
		res.Errors = []ValidationError{}
	}
	if len(res.Errors) == 0 {
		res.RateOptions = BuildRateTable(d.FicoScore, in.RefinanceWithOwnership(), d.TotalLoanAmountForPayment)
	}
	return res
}

// CalculateForm is Calculate over raw form values.
func CalculateForm(form map[string]string) Result {
	return Calculate(FromForm(form))
}

// Option returns the rate row for termMonths.
func (r Result) Option(termMonths int) (RateOption, bool) {
	for _, o := range r.RateOptions {
		if o.TermMonths == termMonths {
			return o, true
		}
	}
	return RateOption{}, false
}

// ChooseRate re-prices form and returns a copy of it with the chosen_* fields
// for termMonths appended. form itself is not modified.
func ChooseRate(form map[string]string, termMonths int) (map[string]string, RateOption, error) {
	res := CalculateForm(form)
	if !res.Qualified() {
		return nil, RateOption{}, ErrNotQualified
	}
	opt, ok := res.Option(termMonths)
	if !ok {
		return nil, RateOption{}, ErrUnknownTerm
	}
	out := make(map[string]string, len(form)+3)
	for k, v := range form {
		out[k] = v
	}
	out[KeyChosenRateType] = opt.Label()
	out[KeyChosenRate] = strconv.FormatFloat(opt.AnnualRatePercent, 'f', -1, 64)
	out[KeyChosenMonthlyPayment] = strconv.FormatFloat(opt.MonthlyPayment, 'f', -1, 64)
	return out, opt, nil
}
