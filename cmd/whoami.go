package cmd

import (
	"fmt"

	"github.com/bnema/neon-boards/internal/application"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.identity.CurrentUser(cmd.Context(), application.CurrentUserRequest())
			if err != nil {
				return err
			}
			if user == nil || user.IsZero() {
				return domain.ErrUserNotFound
			}

			out := cmd.OutOrStdout()
			for _, field := range []struct {
				label string
				value *string
			}{
				{"id", user.ID},
				{"name", user.Name},
				{"email", user.Email},
			} {
				if field.value != nil {
					_, _ = fmt.Fprintf(out, "%s: %s\n", field.label, *field.value)
				}
			}

			return nil
		},
	}
}
