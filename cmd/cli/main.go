package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prop-tools/report-atlas/pkg/models/api"
	"github.com/prop-tools/report-atlas/pkg/models/domain"
	"github.com/prop-tools/report-atlas/pkg/services/config"
	"github.com/prop-tools/report-atlas/pkg/services/images"
	"github.com/prop-tools/report-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	inputPath string
	outPath   string
	logoPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "report-cli",
		Short: "Generate property investment reports from the command line",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a report from a JSON form file",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the JSON form file")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "report.pdf", "Destination PDF path")
	generateCmd.Flags().StringVar(&logoPath, "logo", "", "Path to a logo image")
	generateCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the YAML config file")
	_ = generateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var form api.GenerateReportRequest
	if err := json.Unmarshal(raw, &form); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}
	if logoPath != "" {
		form.Logo = logoPath
	}

	// Fail on an unwritable destination before rendering anything.
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	dir, err := os.MkdirTemp("", "report-images-*")
	if err != nil {
		return fmt.Errorf("failed to create image staging dir: %w", err)
	}
	defer os.RemoveAll(dir)

	set, logo, err := images.Materialize(form.Images, form.Logo, dir)
	if err != nil {
		return fmt.Errorf("failed to stage images: %w", err)
	}

	generator := report.NewGenerator(report.Options{
		Tagline:     cfg.Report.Tagline,
		DefaultLogo: cfg.Report.DefaultLogo,
		AssetsDir:   cfg.Report.AssetsDir,
	})

	input := domain.ReportInput{
		Fields:   form.Fields,
		Images:   set,
		LogoPath: logo,
	}
	if err := generator.Generate(ctx, input, out); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	logger.Info().Str("out", outPath).Msg("report written")
	return nil
}
