// Package main provides the CLI entry point for badgegen.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen"
	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	excelPath    string
	templatePath string
	outputDir    string
	configPath   string
	sheetName    string
	password     string
	fillLastPage bool
	workers      int
	mergePath    string
	dryRun       bool
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "badgegen",
		Short: "Generate PDF badges from an Excel sheet and a PDF template",
		Long: `badgegen reads attendees from an Excel sheet and prints their names
onto a PDF badge template, writing one PDF per sheet of badges.`,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&excelPath, "excel", "e", "", "Excel file with the attendee data")
	flags.StringVarP(&templatePath, "template", "t", "", "Template PDF")
	flags.StringVarP(&outputDir, "output", "o", "badge_output", "Output directory")
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&sheetName, "sheet", "", "Excel sheet name (default: first sheet)")
	flags.StringVar(&password, "password", "", "Password of an encrypted workbook")
	flags.BoolVar(&fillLastPage, "fill-last-page", true, "Repeat the last attendee to fill the final page")
	flags.IntVar(&workers, "workers", 1, "Number of pages rendered concurrently")
	flags.StringVar(&mergePath, "merge", "", "Also write all pages combined into this PDF")
	flags.BoolVar(&dryRun, "dry-run", false, "Print the page plan as JSON without rendering")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress details")
	rootCmd.MarkFlagRequired("excel")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInitConfig,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.SetOutput(&levelFilter{w: os.Stderr, debug: verbose})

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	opts := badgegen.DefaultOptions()
	cfg.Apply(&opts)
	opts.ExcelPath = excelPath
	opts.TemplatePath = templatePath
	opts.OutputDir = outputDir
	opts.Sheet = sheetName
	opts.Password = password
	opts.FillLastPage = &fillLastPage
	opts.Workers = workers
	opts.MergePath = mergePath

	if dryRun {
		plans, err := badgegen.PlanPages(opts)
		if err != nil {
			return fmt.Errorf("planning failed: %w", err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(plans)
	}

	if templatePath == "" {
		return fmt.Errorf(`required flag(s) "template" not set`)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		opts.OnPage = func(done, total int, file string) {
			fmt.Fprintf(os.Stderr, "\r[%d/%d] %s\033[K", done, total, file)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	result, err := badgegen.Generate(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		absDir = outputDir
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %d PDF(s) in '%s'\n", result.Pages(), absDir)
	if result.Merged != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Merged into '%s'\n", result.Merged)
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := "badgegen.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.InitConfig(path); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config initialized at: %s\n", path)
	return nil
}

// levelFilter drops [DEBUG] log lines unless debug is set.
type levelFilter struct {
	w     io.Writer
	debug bool
}

func (f *levelFilter) Write(p []byte) (int, error) {
	if !f.debug && strings.Contains(string(p), "[DEBUG]") {
		return len(p), nil
	}
	return f.w.Write(p)
}
