package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountAddCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the accounts visible to the panel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.accountQuery.Accounts(cmd.Context())
			if err != nil {
				return err
			}

			for _, account := range accounts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", account.ID, account.Name)
			}

			return nil
		},
	}
}

func newAccountAddCmd(app *app) *cobra.Command {
	var rawID string
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an account in the local accounts file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return errors.New("account name must not be empty")
			}

			id, err := resolveAccountID(cmd.Context(), app, rawID)
			if err != nil {
				return err
			}

			if err := app.repo.Save(cmd.Context(), domain.Account{ID: id, Name: name}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved account %s (%s)\n", name, id)
			return err
		},
	}

	cmd.Flags().StringVar(&rawID, "id", "", "Account id (empty assigns the next free number)")
	cmd.Flags().StringVar(&name, "name", "", "Account name shown in the picker")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func resolveAccountID(ctx context.Context, app *app, raw string) (domain.AccountID, error) {
	requested := strings.TrimSpace(raw)
	if requested == "" || requested == "0" {
		return nextAvailableAccountID(ctx, app)
	}

	if n, err := strconv.Atoi(requested); err == nil && n <= 0 {
		return "", fmt.Errorf("account id must be a positive number or empty/0 for auto assignment")
	}

	return domain.AccountID(requested), nil
}

func nextAvailableAccountID(ctx context.Context, app *app) (domain.AccountID, error) {
	accounts, err := app.repo.Accounts(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoAccountList) {
		return "", fmt.Errorf("list accounts for auto assignment: %w", err)
	}

	used := make(map[int]struct{}, len(accounts))
	for _, account := range accounts {
		n, err := strconv.Atoi(string(account.ID))
		if err != nil || n <= 0 {
			continue
		}
		used[n] = struct{}{}
	}

	for i := 1; ; i++ {
		if _, ok := used[i]; !ok {
			return domain.AccountID(strconv.Itoa(i)), nil
		}
	}
}
