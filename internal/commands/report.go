package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/dto"
)

// reportBuilder renders one statement as markdown.
type reportBuilder func(ctx context.Context, svc *portssvc.ServiceContainer, period domain.DateRange, cur string) (string, error)

var reports = map[string]reportBuilder{
	"trial-balance": func(ctx context.Context, svc *portssvc.ServiceContainer, period domain.DateRange, cur string) (string, error) {
		tb, err := svc.Statement.TrialBalance(ctx, period)
		if err != nil {
			return "", err
		}
		return trialBalanceMarkdown(tb, cur), nil
	},
	"income-statement": func(ctx context.Context, svc *portssvc.ServiceContainer, period domain.DateRange, cur string) (string, error) {
		is, err := svc.Statement.IncomeStatement(ctx, period)
		if err != nil {
			return "", err
		}
		return incomeStatementMarkdown(is, cur), nil
	},
	"balance-sheet": func(ctx context.Context, svc *portssvc.ServiceContainer, period domain.DateRange, cur string) (string, error) {
		bs, err := svc.Statement.BalanceSheet(ctx, period)
		if err != nil {
			return "", err
		}
		return balanceSheetMarkdown(bs, cur), nil
	},
	"liquidity": func(ctx context.Context, svc *portssvc.ServiceContainer, period domain.DateRange, cur string) (string, error) {
		r, err := svc.Liquidity.Report(ctx, period)
		if err != nil {
			return "", err
		}
		return liquidityMarkdown(r, cur), nil
	},
}

func newReportCommand() *cobra.Command {
	var from, to, currency string
	var plain bool

	cmd := &cobra.Command{
		Use:       "report <trial-balance|income-statement|balance-sheet|liquidity>",
		Short:     "Render a financial statement in the terminal",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"trial-balance", "income-statement", "balance-sheet", "liquidity"},
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := dto.PeriodParams{From: from, To: to}.ToRange()
			if err != nil {
				return err
			}
			cfg, logger, err := loadRuntime(os.Stderr)
			if err != nil {
				return err
			}
			if currency == "" {
				currency = cfg.DisplayCurrency
			}
			if money.GetCurrency(currency) == nil {
				return fmt.Errorf("unknown currency %q", currency)
			}
			svc, closeStore, err := openServices(cmd.Context(), cfg, logger, false)
			if err != nil {
				return err
			}
			defer closeStore()

			md, err := reports[args[0]](cmd.Context(), svc, period, strings.ToUpper(currency))
			if err != nil {
				return err
			}
			md += "\n_Period: " + periodLabel(from, to) + "_\n"
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}
			out, err := renderer.Render(md)
			if err != nil {
				return fmt.Errorf("rendering report: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first date included (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last date included (YYYY-MM-DD)")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 display currency (defaults to DISPLAY_CURRENCY)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown without terminal styling")

	return cmd
}

// display formats an amount in the currency's minor units.
func display(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

func periodLabel(from, to string) string {
	switch {
	case from == "" && to == "":
		return "all dates"
	case from == "":
		return "through " + to
	case to == "":
		return "from " + from
	}
	return from + " to " + to
}

func writeAmounts(b *strings.Builder, title string, items []domain.AccountAmount, total decimal.Decimal, cur string) {
	fmt.Fprintf(b, "## %s\n\n| Account | Amount |\n|---|---:|\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "| %s | %s |\n", it.Label, display(it.Amount, cur))
	}
	fmt.Fprintf(b, "| **Total** | **%s** |\n\n", display(total, cur))
}

func trialBalanceMarkdown(tb *domain.TrialBalance, cur string) string {
	var b strings.Builder
	b.WriteString("# Trial balance\n\n| Account | Debit | Credit | Balance |\n|---|---:|---:|---:|\n")
	for _, r := range tb.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Account.Label(),
			display(r.DebitTotal, cur), display(r.CreditTotal, cur), display(r.Balance, cur))
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | |\n", display(tb.TotalDebit, cur), display(tb.TotalCredit, cur))
	return b.String()
}

func incomeStatementMarkdown(is *domain.IncomeStatement, cur string) string {
	var b strings.Builder
	b.WriteString("# Income statement\n\n")
	writeAmounts(&b, "Income", is.Income, is.TotalIncome, cur)
	writeAmounts(&b, "Expenses", is.Expenses, is.TotalExpense, cur)
	fmt.Fprintf(&b, "**Net income:** %s\n", display(is.NetIncome, cur))
	return b.String()
}

func balanceSheetMarkdown(bs *domain.BalanceSheet, cur string) string {
	var b strings.Builder
	b.WriteString("# Balance sheet\n\n")
	writeAmounts(&b, "Assets", bs.Assets, bs.AssetsTotal, cur)
	writeAmounts(&b, "Liabilities", bs.Liabilities, bs.LiabilitiesTotal, cur)
	writeAmounts(&b, "Equity", bs.Equity, bs.EquityTotal, cur)
	fmt.Fprintf(&b, "- Cash: %s\n- Net income: %s\n", display(bs.CashBalance, cur), display(bs.NetIncome, cur))
	if bs.Balanced() {
		b.WriteString("- Balanced: yes\n")
	} else {
		fmt.Fprintf(&b, "- Balanced: **no**, discrepancy %s\n", display(bs.Discrepancy, cur))
	}
	return b.String()
}

func liquidityMarkdown(r *domain.LiquidityReport, cur string) string {
	var b strings.Builder
	b.WriteString("# Liquidity\n\n")
	fmt.Fprintf(&b, "- Cash: %s\n- Burn rate: %s per month\n", display(r.CashBalance, cur), display(r.BurnRate, cur))
	if r.RunwayMonths.Valid {
		fmt.Fprintf(&b, "- Runway: %s months\n", r.RunwayMonths.Decimal.StringFixed(2))
	} else {
		b.WriteString("- Runway: undefined (no burn)\n")
	}
	if len(r.BurnMonths) > 0 {
		b.WriteString("\n| Month | Expenses |\n|---|---:|\n")
		for _, m := range r.BurnMonths {
			fmt.Fprintf(&b, "| %04d-%02d | %s |\n", m.Year, m.Month, display(m.Amount, cur))
		}
	}
	return b.String()
}
