// Package main provides the command line client for the resume assistant API.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-assistant/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_client",
	Short:         "Resume assistant API client",
	Long:          "resume_client signs in to the resume assistant, manages personas and the my page profile, and runs the resume creation wizard (upload, detail input, generation).",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	flagConfig config.Config
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file (default ./resume_client.yaml if present)")
	pf.StringVar(&flagConfig.BaseURL, "base-url", "", "API base URL (env RESUME_BASE_URL)")
	pf.StringVar(&flagConfig.ParserBaseURL, "parser-url", "", "PDF parser base URL when it differs from the API (env RESUME_PARSER_BASE_URL)")
	pf.StringVar(&flagConfig.Email, "email", "", "Account email (env RESUME_EMAIL)")
	pf.StringVar(&flagConfig.Password, "password", "", "Account password (env RESUME_PASSWORD)")
	pf.DurationVar(&flagConfig.ReadTimeout, "timeout", 0, "Read timeout per request (default 30s)")
	pf.BoolVarP(&flagConfig.Verbose, "verbose", "v", false, "Log every request")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
