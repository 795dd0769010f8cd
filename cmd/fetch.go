package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Aram-az/ESSDev-Lifeyears/client"
	"github.com/Aram-az/ESSDev-Lifeyears/config"
	"github.com/Aram-az/ESSDev-Lifeyears/ui"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const timeoutHint = "Is the backend server running?"

// Resources accepted by fetch, in help order.
var fetchResources = []string{
	"health",
	"recommendations",
	"prevention",
	"prevention-primary",
	"prevention-secondary",
	"longevity",
	"mock-user",
	"mock-recommendations",
	"appointments",
	"dashboard",
}

var fetchStatus string

var fetchCmd = &cobra.Command{
	Use:       "fetch <resource> [id]",
	Short:     "Fetch one resource from the gateway and print it as JSON",
	ValidArgs: fetchResources,
	Args:      cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cfg, logger)
		v, err := fetchResource(cmd.Context(), c, args, fetchStatus)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorLine(client.UserMessage(err, timeoutHint)))
			return err
		}
		return printJSON(cmd.OutOrStdout(), v)
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchStatus, "status", "", "appointment filter: all, upcoming, overdue, completed")
}

func newClient(c config.Config, log *zap.Logger) *client.Client {
	return client.New(c.Client.BaseURL,
		client.WithTimeout(c.Client.RequestTimeout),
		client.WithHealthTimeout(c.Client.HealthTimeout),
		client.WithLogger(log),
	)
}

func fetchResource(ctx context.Context, c *client.Client, args []string, status string) (any, error) {
	resource := args[0]
	if len(args) > 1 && resource != "recommendations" {
		return nil, errors.Errorf("%s does not take an id", resource)
	}

	switch resource {
	case "health":
		return c.Health(ctx)
	case "recommendations":
		if len(args) > 1 {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, errors.Errorf("recommendation id %q is not an integer", args[1])
			}
			return c.Recommendation(ctx, id)
		}
		return c.Recommendations(ctx)
	case "prevention":
		return c.Prevention(ctx)
	case "prevention-primary":
		return c.PrimaryPrevention(ctx)
	case "prevention-secondary":
		return c.SecondaryPrevention(ctx)
	case "longevity":
		return c.Longevity(ctx)
	case "mock-user":
		return c.MockUser(ctx)
	case "mock-recommendations":
		return c.MockRecommendations(ctx)
	case "appointments":
		return c.Appointments(ctx, status)
	case "dashboard":
		return c.Dashboard(ctx)
	}
	return nil, errors.Errorf("unknown resource %q (want one of %v)", resource, fetchResources)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode output")
}
