package main

// The list-* commands talk to the REST API directly and dump the decoded
// records as JSON, skipping the table step. Useful when debugging how a
// workspace's records decode.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CJWorkbench/intercom/internal/api"
)

func newListUsersCmd() *cobra.Command {
	return newListCmd("list-users", "List raw user records", func(ctx context.Context, c *api.Client) (any, error) {
		return c.ListUsers(ctx)
	})
}

func newListCompaniesCmd() *cobra.Command {
	return newListCmd("list-companies", "List raw company records", func(ctx context.Context, c *api.Client) (any, error) {
		return c.ListCompanies(ctx)
	})
}

func newListSegmentsCmd() *cobra.Command {
	return newListCmd("list-segments", "List raw segment records", func(ctx context.Context, c *api.Client) (any, error) {
		return c.ListSegments(ctx)
	})
}

func newListTagsCmd() *cobra.Command {
	return newListCmd("list-tags", "List raw tag records", func(ctx context.Context, c *api.Client) (any, error) {
		return c.ListTags(ctx)
	})
}

func newListCmd(use, short string, list func(context.Context, *api.Client) (any, error)) *cobra.Command {
	var timeout time.Duration
	var maxPages int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if accessToken == "" {
				return fmt.Errorf("--token or INTERCOM_ACCESS_TOKEN required")
			}

			c := api.New(accessToken, api.Config{
				BaseURL:  baseURL,
				Timeout:  timeout,
				MaxPages: maxPages,
				Debug:    debug,
				Logger:   log.Logger,
			})

			start := time.Now()
			records, err := list(cmd.Context(), c)
			elapsed := time.Since(start)

			if err != nil {
				log.Error().Err(err).Dur("elapsed", elapsed).Msg("listing failed")
				return err
			}

			log.Debug().Dur("elapsed", elapsed).Msg("listing completed")

			b, _ := json.MarshalIndent(records, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout override (e.g. 30s)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Page cap override")

	return cmd
}
