package pricing

import (
	"strings"

	"bridge-lending-backend/pkg/money"
)

// Form keys accepted by FromForm.
const (
	KeyPropertyState        = "property_state"
	KeyPropertyType         = "property_type"
	KeyFicoScore            = "estimated_fico_score"
	KeyPersonallyGuaranteed = "personally_guaranteed"
	KeyRefinance            = "refinance"
	KeyPropOwned6Months     = "prop_owned_6_months"
	KeyPurchasePrice        = "purchase_price"
	KeyEstimatedHomeValue   = "estimated_home_value"
	KeyRemainingMortgage    = "remaining_mortgage"
	KeyPurchaseLoanAmount   = "purchase_loan_amount"
	KeyRefinanceLoanAmount  = "refinance_loan_amount"
	KeyRehabCost            = "rehab_cost"
	KeyAfterRepairValue     = "after_repair_value"
)

// LoanInputs is the normalized form submission of the rate estimate step.
type LoanInputs struct {
	PropertyState        string   `json:"property_state"`
	PropertyType         string   `json:"property_type"`
	FicoTier             FicoTier `json:"estimated_fico_score"`
	PersonallyGuaranteed bool     `json:"personally_guaranteed"`
	Refinance            bool     `json:"refinance"`
	PropOwnedSixMonths   bool     `json:"prop_owned_6_months"`

	PurchasePrice       float64 `json:"purchase_price"`
	EstimatedHomeValue  float64 `json:"estimated_home_value"`
	RemainingMortgage   float64 `json:"remaining_mortgage"`
	PurchaseLoanAmount  float64 `json:"purchase_loan_amount"`
	RefinanceLoanAmount float64 `json:"refinance_loan_amount"`
	RehabCost           float64 `json:"rehab_cost"`
	AfterRepairValue    float64 `json:"after_repair_value"`
}

// FromForm builds LoanInputs from raw form values. Monetary fields accept
// display strings such as "$150,000.00"; anything unparsable becomes 0.
func FromForm(form map[string]string) LoanInputs {
	return LoanInputs{
		PropertyState:        strings.TrimSpace(form[KeyPropertyState]),
		PropertyType:         strings.TrimSpace(form[KeyPropertyType]),
		FicoTier:             FicoTier(strings.ToLower(strings.TrimSpace(form[KeyFicoScore]))),
		PersonallyGuaranteed: parseYes(form[KeyPersonallyGuaranteed]),
		Refinance:            parseYes(form[KeyRefinance]),
		PropOwnedSixMonths:   parseYes(form[KeyPropOwned6Months]),
		PurchasePrice:        money.ParseMoney(form[KeyPurchasePrice]),
		EstimatedHomeValue:   money.ParseMoney(form[KeyEstimatedHomeValue]),
		RemainingMortgage:    money.ParseMoney(form[KeyRemainingMortgage]),
		PurchaseLoanAmount:   money.ParseMoney(form[KeyPurchaseLoanAmount]),
		RefinanceLoanAmount:  money.ParseMoney(form[KeyRefinanceLoanAmount]),
		RehabCost:            money.ParseMoney(form[KeyRehabCost]),
		AfterRepairValue:     money.ParseMoney(form[KeyAfterRepairValue]),
	}
}

func parseYes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1", "on":
		return true
	}
	return false
}

// RefinanceWithOwnership selects the refinance rate table.
func (in LoanInputs) RefinanceWithOwnership() bool {
	return in.Refinance && in.PropOwnedSixMonths
}

// BaseLoanAmount is the loan amount the borrower asked for, before rehab.
func (in LoanInputs) BaseLoanAmount() float64 {
	if in.RefinanceWithOwnership() {
		return in.RefinanceLoanAmount
	}
	return in.PurchaseLoanAmount
}
