package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Aram-az/ESSDev-Lifeyears/client"
	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/ui"

	"github.com/spf13/cobra"
)

var (
	dashboardFilter  string
	dashboardRetries int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show appointment stats and the appointment list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderDashboard(cmd.Context(), cmd.OutOrStdout(), newClient(cfg, logger), dashboardFilter, dashboardRetries)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardFilter, "filter", "all", "all, upcoming, overdue or completed")
	dashboardCmd.Flags().IntVar(&dashboardRetries, "retries", 1, "retries for each section that fails")
}

// renderDashboard loads the stats and the list as separate sections. A
// section that fails is retried on its own and, if it still fails, shows
// its error in place.
func renderDashboard(ctx context.Context, w io.Writer, c *client.Client, filter string, retries int) {
	stats := client.NewSection("stats", c.Dashboard)
	appts := client.NewSection("appointments", func(ctx context.Context) ([]models.Appointment, error) {
		return c.Appointments(ctx, filter)
	})

	loadSection(ctx, stats, retries)
	loadSection(ctx, appts, retries)

	var b strings.Builder
	b.WriteString(ui.PageTitle("Your Health Dashboard") + "\n")

	if s, ok := stats.Data(); ok {
		b.WriteString(ui.Dashboard(s) + "\n")
	} else {
		b.WriteString(ui.ErrorLine(client.UserMessage(stats.Err(), timeoutHint)) + "\n")
	}

	b.WriteString("\n" + ui.SectionTitle("Appointments ("+filter+")") + "\n")
	if list, ok := appts.Data(); ok {
		b.WriteString(ui.Appointments(list) + "\n")
	} else {
		b.WriteString(ui.ErrorLine(client.UserMessage(appts.Err(), timeoutHint)) + "\n")
	}

	fmt.Fprint(w, b.String())
}

func loadSection[T any](ctx context.Context, s *client.Section[T], retries int) {
	if s.Load(ctx) == nil {
		return
	}
	for i := 0; i < retries; i++ {
		if s.Retry(ctx) == nil {
			return
		}
	}
}
