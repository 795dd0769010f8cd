package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Aram-az/ESSDev-Lifeyears/config"
	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/services"
	"github.com/Aram-az/ESSDev-Lifeyears/storage"
	"github.com/Aram-az/ESSDev-Lifeyears/ui"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var submissionsJSON bool

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Inspect and manage saved onboarding submissions",
}

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved submissions in submission order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSubmissions(cmd.Context(), cfg, logger, func(s *services.SubmissionStore) error {
			list, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if submissionsJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}
			fmt.Fprintln(cmd.OutOrStdout(), submissionTable(list))
			return nil
		})
	},
}

var submissionsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove one submission by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Errorf("submission id %q is not an integer", args[0])
		}
		return withSubmissions(cmd.Context(), cfg, logger, func(s *services.SubmissionStore) error {
			removed, err := s.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !removed {
				return errors.Errorf("no submission with id %d", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed submission %d\n", id)
			return nil
		})
	},
}

var submissionsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved submission",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSubmissions(cmd.Context(), cfg, logger, func(s *services.SubmissionStore) error {
			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cleared all submissions")
			return nil
		})
	},
}

func init() {
	submissionsListCmd.Flags().BoolVar(&submissionsJSON, "json", false, "print the raw records as JSON")
	submissionsCmd.AddCommand(submissionsListCmd, submissionsRemoveCmd, submissionsClearCmd)
}

// withSubmissions opens the configured backend for the duration of fn.
func withSubmissions(ctx context.Context, c config.Config, log *zap.Logger, fn func(*services.SubmissionStore) error) error {
	st, err := storage.Open(ctx, c.Storage)
	if err != nil {
		return errors.Wrap(err, "failed to open storage")
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn("closing storage", zap.Error(cerr))
		}
	}()
	return fn(services.NewSubmissionStore(st, c.Storage.Key, log))
}

func submissionTable(list []models.OnboardingSubmission) string {
	if len(list) == 0 {
		return ui.Muted("No submissions saved.")
	}
	t := ui.NewTable("ID", "Submitted", "Name", "Email", "Age")
	for _, s := range list {
		age := "-"
		if s.Age != nil {
			age = strconv.Itoa(*s.Age)
		}
		t.AddRow(strconv.FormatInt(s.ID, 10), s.SubmittedAt, s.Name, s.Email, age)
	}
	return t.Render()
}
