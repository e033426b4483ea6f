package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CJWorkbench/intercom/internal/logger"
)

var accessToken string
var baseURL string
var debug bool
var jsonLogs bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intercomctl",
		Short: "Developer CLI for the Workbench Intercom module",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logs go to stderr so fetched tables can own stdout.
			if jsonLogs {
				log.Logger = logger.New("intercomctl", os.Stderr)
			} else {
				zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
				log.Logger = log.Output(zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: "2006-01-02 15:04:05",
					NoColor:    true,
				})
			}

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&accessToken, "token", getEnv("INTERCOM_ACCESS_TOKEN", ""), "Intercom OAuth access token (defaults to INTERCOM_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", getEnv("INTERCOM_BASE_URL", ""), "Override the Intercom API base URL")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit structured JSON logs instead of console output")

	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newListUsersCmd())
	rootCmd.AddCommand(newListCompaniesCmd())
	rootCmd.AddCommand(newListSegmentsCmd())
	rootCmd.AddCommand(newListTagsCmd())

	return rootCmd
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
