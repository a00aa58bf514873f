package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/zclarity/internal/adapters/render/canvas"
	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/engine"
)

func newNewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a new session and make it active",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.controller.Dispatch(engine.NewSession{})

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.msgs.T("newSession"), state.ActiveSessionID)
			return err
		},
	}
}

func newListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.controller.State()

			output, err := canvas.RenderHistory(state.Sessions, state.ActiveSessionID, app.msgs)
			if err != nil {
				return fmt.Errorf("render session history: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newSelectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <session-id>",
		Short: "Make a session the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.SessionID(args[0])
			session, err := app.controller.Session(id)
			if err != nil {
				return fmt.Errorf("select session %q: %w", args[0], err)
			}

			app.controller.Dispatch(engine.SelectSession{SessionID: id})

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", sessionTitle(session, app), session.ID)
			return err
		},
	}
}

func newDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.SessionID(args[0])
			if _, err := app.controller.Session(id); err != nil {
				return fmt.Errorf("delete session %q: %w", args[0], err)
			}

			app.controller.Dispatch(engine.DeleteSession{SessionID: id})

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.msgs.T("deleteSession"), id)
			return err
		},
	}
}

func newShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active session canvas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.controller.ActiveSession()
			if err != nil {
				_, printErr := fmt.Fprintln(cmd.OutOrStdout(), app.msgs.T("noSessionSelected"))
				if printErr != nil {
					return printErr
				}
				_, printErr = fmt.Fprintln(cmd.OutOrStdout(), app.msgs.T("clickNewSession"))
				return printErr
			}

			output, err := canvas.Render(session, app.msgs)
			if err != nil {
				return fmt.Errorf("render session canvas: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func sessionTitle(session domain.Session, app *app) string {
	if session.Title == "" {
		return app.msgs.T("untitledSession")
	}
	return session.Title
}
