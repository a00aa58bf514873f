package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/engine"
)

// The checks below exist to give the user a reason instead of a silent
// no-op. The engine re-checks every guard on dispatch, so these can be
// bypassed without risking an illegal transition.

func newStartCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the active session (Draft -> Active)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.controller.ActiveSession()
			if err != nil {
				return err
			}
			if session.State != domain.StateDraft {
				return fmt.Errorf("session is %s; only a Draft session can be started", session.State)
			}
			if !domain.CanStart(session) {
				return errors.New("an objective is required to start the session")
			}

			app.controller.Dispatch(engine.StartSession{})

			return printState(cmd, app)
		},
	}
}

func newPendingCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Park the active session as pending (OutcomeDefined -> Pending)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.controller.ActiveSession()
			if err != nil {
				return err
			}
			if session.State != domain.StateOutcomeDefined {
				return fmt.Errorf("session is %s; only an OutcomeDefined session can be marked pending", session.State)
			}
			if !domain.CanMarkPending(session) {
				return errors.New("a complete outcome (summary, owner, next step) is required")
			}

			app.controller.Dispatch(engine.MarkPending{})

			return printState(cmd, app)
		},
	}
}

func newCloseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close the active session (OutcomeDefined -> Closed)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.controller.ActiveSession()
			if err != nil {
				return err
			}
			if session.State != domain.StateOutcomeDefined {
				return fmt.Errorf("session is %s; only an OutcomeDefined session can be closed", session.State)
			}
			if !domain.CanClose(session) {
				return errors.New("a complete outcome and a closing summary are required to close")
			}

			app.controller.Dispatch(engine.CloseSession{})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.msgs.T("sessionClosed"))
			return err
		},
	}
}

func newReopenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen",
		Short: "Reopen the active session (Pending -> Active)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.controller.ActiveSession()
			if err != nil {
				return err
			}
			if session.State != domain.StatePending {
				return fmt.Errorf("session is %s; only a Pending session can be reopened", session.State)
			}

			app.controller.Dispatch(engine.ReopenSession{})

			return printState(cmd, app)
		},
	}
}

func printState(cmd *cobra.Command, app *app) error {
	session, err := app.controller.ActiveSession()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.msgs.StateLabel(string(session.State)))
	return err
}
