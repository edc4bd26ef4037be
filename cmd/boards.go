package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/neon-boards/internal/adapters/documents"
	"github.com/bnema/neon-boards/internal/adapters/render/panel"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/spf13/cobra"
)

func newBoardsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Inspect and edit the boards of an account",
	}

	var accountName string
	cmd.PersistentFlags().StringVar(&accountName, "account", "", "Account name (defaults to the first account)")

	cmd.AddCommand(
		newBoardsListCmd(app, &accountName),
		newBoardsShowCmd(app, &accountName),
		newBoardsImportCmd(app, &accountName),
		newBoardsDeleteCmd(app, &accountName),
	)

	return cmd
}

func newBoardsListCmd(app *app, accountName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the boards of an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.openHeadlessSession(cmd.Context(), *accountName)
			if err != nil {
				return err
			}
			defer session.close()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), panel.RenderBoards(session.account(), session.state.Boards))
			return err
		},
	}
}

func newBoardsShowCmd(app *app, accountName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show KEY",
		Short: "Print one board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.openHeadlessSession(cmd.Context(), *accountName)
			if err != nil {
				return err
			}
			defer session.close()

			key := args[0]
			board, found := session.state.Boards[key]
			if !found {
				return fmt.Errorf("%q in account %q: %w", key, session.account().Name, domain.ErrBoardNotFound)
			}

			out := panel.RenderBoard(key, board, true, session.state.User, app.timeRange.TimeRange())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newBoardsImportCmd(app *app, accountName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the boards of an account with a JSON object read from FILE or - for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			boards, err := documents.Decode(data)
			if err != nil {
				return err
			}
			if boards == nil {
				boards = domain.BoardCollection{}
			}

			session, err := app.openHeadlessSession(cmd.Context(), *accountName)
			if err != nil {
				return err
			}
			defer session.close()

			if err := session.controller.SaveBoards(cmd.Context(), boards); err != nil {
				return fmt.Errorf("save boards: %w", err)
			}
			session.controller.ReplaceBoards(boards)
			if err := session.waitForBoards(cmd.Context(), boards); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d boards into %s\n", len(boards), session.account().Name)
			return err
		},
	}
}

func newBoardsDeleteCmd(app *app, accountName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Remove one board and save the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.openHeadlessSession(cmd.Context(), *accountName)
			if err != nil {
				return err
			}
			defer session.close()

			key := args[0]
			if _, found := session.state.Boards[key]; !found {
				return fmt.Errorf("%q in account %q: %w", key, session.account().Name, domain.ErrBoardNotFound)
			}

			remaining := session.state.Boards.Without(key)
			if err := session.controller.SaveBoards(cmd.Context(), remaining); err != nil {
				return fmt.Errorf("save boards: %w", err)
			}
			session.controller.ReplaceBoards(remaining)
			if err := session.waitForBoards(cmd.Context(), remaining); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted board %s from %s\n", key, session.account().Name)
			return err
		},
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
