package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domain "bridge-lending-backend/internal/domain/pricing"
	"bridge-lending-backend/internal/usecase/pricing"
)

// quoteFlags maps each form key to its CLI flag.
var quoteFlags = []struct{ key, flag, usage string }{
	{domain.KeyPropertyState, "property-state", "property state code"},
	{domain.KeyPropertyType, "property-type", "property type"},
	{domain.KeyFicoScore, "fico", "estimated FICO tier, e.g. 720-739"},
	{domain.KeyPersonallyGuaranteed, "personally-guaranteed", "yes or no"},
	{domain.KeyRefinance, "refinance", "yes or no"},
	{domain.KeyPropOwned6Months, "owned-6-months", "property owned at least 6 months (yes or no)"},
	{domain.KeyPurchasePrice, "purchase-price", "purchase price"},
	{domain.KeyEstimatedHomeValue, "home-value", "estimated home value"},
	{domain.KeyRemainingMortgage, "remaining-mortgage", "remaining mortgage"},
	{domain.KeyPurchaseLoanAmount, "purchase-loan", "requested purchase loan amount"},
	{domain.KeyRefinanceLoanAmount, "refinance-loan", "requested refinance loan amount"},
	{domain.KeyRehabCost, "rehab-cost", "rehab budget"},
	{domain.KeyAfterRepairValue, "arv", "after repair value"},
}

func newQuoteCmd(a *app) *cobra.Command {
	values := make(map[string]*string, len(quoteFlags))
	var asJSON bool
	var term int

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a bridge loan and print the rate table",
		Example: `  loanctl quote --fico 720-739 --purchase-price '$200,000' --purchase-loan 150000 \
    --rehab-cost 25000 --arv 300000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := make(map[string]string, len(values))
			for key, v := range values {
				if *v != "" {
					form[key] = *v
				}
			}
			uc := pricing.NewUsecase(a.cfg.Locale(), a.log)
			out := cmd.OutOrStdout()

			if term != 0 {
				sel, err := uc.Choose(cmd.Context(), form, term)
				if err != nil {
					return err
				}
				return writeJSON(out, sel)
			}
			q := uc.Estimate(cmd.Context(), form)
			if asJSON {
				return writeJSON(out, q)
			}
			return writeQuote(out, q)
		},
	}
	for _, f := range quoteFlags {
		values[f.key] = cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full quote as JSON")
	cmd.Flags().IntVar(&term, "choose", 0, "term in months to select; prints the record with the chosen rate")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeQuote(w io.Writer, q pricing.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Quote\t%s\n", q.ID)
	fmt.Fprintf(tw, "Total loan amount\t%s\n", q.Display.TotalLoanAmount)
	fmt.Fprintf(tw, "Loan to cost\t%.2f%%\n", q.LoanToCostPercent)
	fmt.Fprintf(tw, "After repair LTV\t%.2f%%\n", q.AfterRepairLTVPercent)
	fmt.Fprintf(tw, "Qualifying range\t%s - %s\n", q.Display.QualifyingMin, q.Display.QualifyingMax)
	fmt.Fprintln(tw)

	if !q.Qualified() {
		fmt.Fprintln(tw, "Not qualified:")
		for _, e := range q.Errors {
			fmt.Fprintf(tw, "  %s\t%s\n", e.Kind, e.Message)
		}
		return tw.Flush()
	}
	fmt.Fprintln(tw, "Term\tRate\tMonthly payment")
	for _, o := range q.RateOptions {
		fmt.Fprintf(tw, "%s\t%.2f%%\t%s\n", o.Label(), o.AnnualRatePercent, q.Display.MonthlyPayments[o.Label()])
	}
	return tw.Flush()
}
