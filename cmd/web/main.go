package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/prop-tools/report-atlas/pkg/server"
	"github.com/prop-tools/report-atlas/pkg/services/config"
	"github.com/prop-tools/report-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "report-web",
		Short: "Start the report generation web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment overrides for container deployments.
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	generator := report.NewGenerator(report.Options{
		Tagline:     cfg.Report.Tagline,
		DefaultLogo: cfg.Report.DefaultLogo,
		AssetsDir:   cfg.Report.AssetsDir,
	})

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:           net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Dependencies: server.Dependencies{
			Generator: generator,
		},
	})

	return webAPI.Start()
}
