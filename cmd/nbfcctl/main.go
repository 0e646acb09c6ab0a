// Command nbfcctl queries the NBFC registry from the terminal.
//
// Examples:
//
//	nbfcctl recommend "bengaluru" --classification MFI
//	nbfcctl recommend "bombay" --lang hindi
//	nbfcctl search "finance" --field name
//	nbfcctl stats "tamil nadu"
//	nbfcctl details "Bajaj"
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AbhayARao26/nbfcreg"
)

var version = "0.1.0"

var (
	dataPath   string
	maxResults int
	asJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "nbfcctl",
		Short:   "NBFC registry lookup",
		Long:    "nbfcctl resolves free-text regions against the RBI NBFC registry\nand prints recommendations, search results and regional statistics.",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&dataPath, "data", nbfcreg.DefaultDataPath, "path to the registry CSV")
	rootCmd.PersistentFlags().IntVar(&maxResults, "max", 0, "maximum results (0 = default)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON instead of formatted text")

	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(detailsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openRegistry builds the registry with CLI-friendly (quiet) logging.
func openRegistry() *nbfcreg.Registry {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return nbfcreg.NewRegistry(
		nbfcreg.WithDataPath(dataPath),
		nbfcreg.WithLogger(logger),
	)
}

func recommendCmd() *cobra.Command {
	var classification, lang string
	cmd := &cobra.Command{
		Use:   "recommend <region>",
		Short: "Recommend NBFCs for a region",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := openRegistry().Recommend(strings.Join(args, " "), classification, maxResults)
			if asJSON {
				return printJSON(res)
			}
			fmt.Println(nbfcreg.FormatRecommendationSummary(res, nbfcreg.Locale(lang)))
			return nil
		},
	}
	cmd.Flags().StringVar(&classification, "classification", "", "filter by classification code (substring)")
	cmd.Flags().StringVar(&lang, "lang", string(nbfcreg.LocaleEnglish), "summary language: english, hindi, kannada")
	return cmd
}

func searchCmd() *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the registry by name, classification or region",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := openRegistry().Search(strings.Join(args, " "), nbfcreg.SearchField(field), maxResults)
			if asJSON {
				return printJSON(res)
			}
			if !res.Ok() {
				return res.Failure
			}
			fmt.Printf("Found %d result(s) for %q:\n", res.TotalFound, res.Query)
			for i, hit := range res.Results {
				fmt.Printf("%d. %s  [%s, %s]\n", i+1, hit.Name, hit.Classification, hit.RegionalOffice)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "field", string(nbfcreg.SearchByName), "search field: name, classification, region")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [region]",
		Short: "Aggregate statistics, overall or for one region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region := ""
			if len(args) > 0 {
				region = args[0]
			}
			res := openRegistry().Statistics(region)
			if asJSON {
				return printJSON(res)
			}
			if !res.Ok() {
				return res.Failure
			}
			s := res.Stats
			fmt.Printf("Region: %s\n", res.Region)
			fmt.Printf("Total NBFCs: %d\n", s.TotalInstitutions)
			fmt.Printf("Deposit accepting: %d, non-deposit: %d\n", s.DepositAccepting, s.NonDepositAccepting)
			fmt.Println("By classification:")
			for code, n := range s.ByClassification {
				fmt.Printf("  %-12s %d\n", code, n)
			}
			fmt.Println("By layer:")
			for layer, n := range s.ByLayer {
				fmt.Printf("  %-12s %d\n", layer, n)
			}
			return nil
		},
	}
}

func detailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <name>",
		Short: "Look up one institution by (partial) name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := openRegistry().InstitutionDetails(strings.Join(args, " "))
			if asJSON {
				return printJSON(res)
			}
			if !res.Ok() {
				if len(res.Failure.Suggestions) > 0 {
					fmt.Fprintf(os.Stderr, "Did you mean: %s\n", strings.Join(res.Failure.Suggestions, ", "))
				}
				return res.Failure
			}
			d := res.Details
			fmt.Printf("%s\n", d.Name)
			fmt.Printf("  Region:         %s\n", d.RegionalOffice)
			fmt.Printf("  Classification: %s (%s)\n", d.Classification, d.ClassificationDescription)
			fmt.Printf("  Layer:          %s\n", d.Layer)
			fmt.Printf("  Deposits:       %s\n", d.AcceptsDeposits)
			if d.Address != "" {
				fmt.Printf("  Address:        %s\n", d.Address)
			}
			if d.Email != "" {
				fmt.Printf("  Email:          %s\n", d.Email)
			}
			if d.CorporateID != "" {
				fmt.Printf("  CIN:            %s\n", d.CorporateID)
			}
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
