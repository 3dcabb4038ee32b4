package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"quartax/internal/calculation"
	"quartax/internal/config"
	"quartax/internal/domain"
	"quartax/internal/ledger"
	"quartax/internal/output"
	"quartax/internal/tables"
)

// logrusLogger implements calculation.Logger on top of logrus.
type logrusLogger struct {
	log *logrus.Logger
}

func (l logrusLogger) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l logrusLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l logrusLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }

func newDebugLogger() logrusLogger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)
	return logrusLogger{log: log}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "quartax",
	Short: "Quarterly estimated tax calculator",
	Long:  "Quarterly estimated tax calculator for self-employed and gig-economy filers",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate the estimated tax liability and payment schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		req, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		if weighted, _ := cmd.Flags().GetBool("weighted"); weighted {
			req.Weighted = true
		}

		var table *tables.TaxYearTable
		if tablesFile, _ := cmd.Flags().GetString("tables"); tablesFile != "" {
			table, err = tables.LoadFromFile(tablesFile)
			if err != nil {
				return err
			}
			if table.Year != req.TaxYear {
				return fmt.Errorf("table file is for tax year %d, request is for %d", table.Year, req.TaxYear)
			}
		} else if table, err = tables.ForYear(req.TaxYear); err != nil {
			return err
		}

		engine := calculation.NewEngine(table)
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(newDebugLogger())
			engine.Debug = true
		}

		summary := engine.Aggregate(req.Inputs)
		report := &domain.EstimateReport{
			TaxYear:     req.TaxYear,
			Inputs:      req.Inputs,
			Summary:     summary,
			Schedule:    engine.Schedule(summary, req.Weighted),
			GeneratedAt: time.Now(),
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
		}
		data, err := f.Format(report)
		if err != nil {
			return err
		}

		if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
			return os.WriteFile(outFile, data, 0644)
		}
		fmt.Print(string(data))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a calculation request file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("Request file %s is valid\n", args[0])
		return nil
	},
}

var splitCmd = &cobra.Command{
	Use:   "split [amount]",
	Short: "Split an amount into installments with penny-exact rounding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}
		if amount.IsNegative() {
			return fmt.Errorf("amount cannot be negative")
		}

		n, _ := cmd.Flags().GetInt("installments")
		weighted, _ := cmd.Flags().GetBool("weighted")
		if weighted && n != 4 {
			return fmt.Errorf("weighted allocation is a 4-installment policy; got %d installments", n)
		}

		for i, amt := range calculation.Allocate(amount, n, weighted) {
			fmt.Printf("Installment %d: %s\n", i+1, output.FormatCurrency(amt))
		}
		return nil
	},
}

var expensesCmd = &cobra.Command{
	Use:   "expenses [expense-file]",
	Short: "Categorize and total logged business expenses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		business, entries, err := parser.LoadExpensesFromFile(args[0])
		if err != nil {
			return err
		}

		led := ledger.NewLedger(business)
		for _, entry := range entries {
			led.AddEntry(entry)
		}

		fmt.Printf("EXPENSES (%s)\n", business)
		fmt.Println(strings.Repeat("=", 40))
		for _, ct := range led.TotalsByCategory() {
			fmt.Printf("  %-28s %3d  %s\n", ct.Category, ct.Count, output.FormatCurrency(ct.Total))
		}
		fmt.Printf("  TOTAL: %s\n", output.FormatCurrency(led.Total()))

		if grossStr, _ := cmd.Flags().GetString("gross-receipts"); grossStr != "" {
			gross, err := decimal.NewFromString(grossStr)
			if err != nil {
				return fmt.Errorf("invalid gross receipts %q: %w", grossStr, err)
			}
			fmt.Printf("  Net business income (gross %s): %s\n",
				output.FormatCurrency(gross), output.FormatCurrency(led.NetBusinessIncome(gross)))
		}
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "quartax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func init() {
	calculateCmd.Flags().String("format", "console", "Output format (console, csv, json, ics, html)")
	calculateCmd.Flags().String("output", "", "Write output to a file instead of stdout")
	calculateCmd.Flags().Bool("weighted", false, "Use the weighted (annualized) 4-installment split")
	calculateCmd.Flags().Bool("debug", false, "Enable debug logging")
	calculateCmd.Flags().String("tables", "", "YAML tax table file overriding the built-in year tables")

	splitCmd.Flags().Int("installments", 4, "Number of installments")
	splitCmd.Flags().Bool("weighted", false, "Use the weighted (annualized) 4-installment split")

	expensesCmd.Flags().String("gross-receipts", "", "Gross receipts; prints net business income after expenses")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(expensesCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
