package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CJWorkbench/intercom"
	"github.com/CJWorkbench/intercom/workbench"
)

func newFetchCmd() *cobra.Command {
	var out string
	var timeout time.Duration
	var perPage, maxPages int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one module fetch and print the user table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []intercom.Option{
				intercom.WithLogger(log.Logger),
				intercom.WithDebugLogging(debug),
			}
			if baseURL != "" {
				opts = append(opts, intercom.WithBaseURL(baseURL))
			}
			if timeout > 0 {
				opts = append(opts, intercom.WithHTTPTimeout(timeout))
			}
			if perPage > 0 {
				opts = append(opts, intercom.WithPerPage(perPage))
			}
			if maxPages > 0 {
				opts = append(opts, intercom.WithMaxPages(maxPages))
			}
			m, err := intercom.New(opts...)
			if err != nil {
				return err
			}

			// An empty secrets map reproduces the not-yet-connected state,
			// so running without a token shows the module's sign-in prompt.
			secrets := workbench.Secrets{}
			if accessToken != "" {
				secrets[intercom.AccessTokenParam] = &workbench.Secret{
					Name:   "intercomctl",
					Secret: map[string]any{"access_token": accessToken},
				}
			}

			start := time.Now()
			res := m.Fetch(cmd.Context(), nil, secrets)
			elapsed := time.Since(start)

			if res.Error != nil {
				log.Error().
					Str("message_id", res.Error.ID).
					Dur("elapsed", elapsed).
					Msg("fetch returned an error")
				return fmt.Errorf("%s", res.Error)
			}

			log.Debug().
				Int("rows", res.Table.NumRows()).
				Dur("elapsed", elapsed).
				Msg("fetch completed")

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			return res.Table.WriteCSV(w)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write CSV to this file instead of stdout")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout override (e.g. 30s)")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Page size override")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Page cap override")

	return cmd
}
