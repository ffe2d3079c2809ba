package pricing

import (
	"context"
	"errors"

	domain "bridge-lending-backend/internal/domain/pricing"
	"bridge-lending-backend/internal/infrastructure/metrics"
	"bridge-lending-backend/pkg/id"
	"bridge-lending-backend/pkg/money"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Quote is an engine result tagged with an id and display strings.
type Quote struct {
	ID string `json:"quote_id"`
	domain.Result
	Display Display `json:"display"`
}

// Display holds the money figures formatted for the configured locale.
type Display struct {
	TotalLoanAmount string            `json:"total_loan_amount"`
	QualifyingMin   string            `json:"qualifying_min"`
	QualifyingMax   string            `json:"qualifying_max"`
	MonthlyPayments map[string]string `json:"monthly_payments"`
}

// Selection is the submitted record with the chosen rate appended.
type Selection struct {
	Record map[string]string `json:"record"`
	Option domain.RateOption `json:"option"`
}

type Usecase struct {
	locale language.Tag
	log    *zap.Logger
}

func NewUsecase(locale language.Tag, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{locale: locale, log: log}
}

// Estimate prices form. Failed checks are part of the quote, never an error.
func (u *Usecase) Estimate(ctx context.Context, form map[string]string) Quote {
	res := domain.CalculateForm(form)
	q := Quote{ID: id.NewQuoteID(), Result: res, Display: u.display(res)}

	outcome := "qualified"
	if !res.Qualified() {
		outcome = "rejected"
		for _, e := range res.Errors {
			metrics.EligibilityErrors.WithLabelValues(string(e.Kind)).Inc()
		}
	}
	metrics.RateQuotes.WithLabelValues(outcome).Inc()

	u.log.Info("rate estimate",
		zap.String("quote_id", q.ID),
		zap.String("outcome", outcome),
		zap.Int("fico_score", res.Derived.FicoScore),
		zap.Float64("total_loan_amount", res.TotalLoanAmount),
		zap.Int("errors", len(res.Errors)))
	return q
}

// Choose re-prices form and appends the chosen rate for termMonths.
// It returns domain.ErrNotQualified or domain.ErrUnknownTerm.
func (u *Usecase) Choose(ctx context.Context, form map[string]string, termMonths int) (*Selection, error) {
	record, opt, err := domain.ChooseRate(form, termMonths)
	if err != nil {
		outcome := "not_qualified"
		if errors.Is(err, domain.ErrUnknownTerm) {
			outcome = "unknown_term"
		}
		metrics.RateQuotes.WithLabelValues("choose_" + outcome).Inc()
		u.log.Warn("rate choice refused", zap.Int("term_months", termMonths), zap.Error(err))
		return nil, err
	}
	metrics.RateQuotes.WithLabelValues("chosen").Inc()
	u.log.Info("rate chosen",
		zap.String("rate_type", opt.Label()),
		zap.Float64("rate", opt.AnnualRatePercent),
		zap.Float64("monthly_payment", opt.MonthlyPayment))
	return &Selection{Record: record, Option: opt}, nil
}

func (u *Usecase) display(res domain.Result) Display {
	d := Display{
		TotalLoanAmount: money.FormatMoneyLocale(u.locale, res.TotalLoanAmount, 2),
		QualifyingMin:   money.FormatMoneyLocale(u.locale, res.QualifyingRange.Min, 0),
		QualifyingMax:   money.FormatMoneyLocale(u.locale, res.QualifyingRange.Max, 0),
		MonthlyPayments: make(map[string]string, len(res.RateOptions)),
	}
	for _, o := range res.RateOptions {
		d.MonthlyPayments[o.Label()] = money.FormatMoneyLocale(u.locale, o.MonthlyPayment, 2)
	}
	return d
}
