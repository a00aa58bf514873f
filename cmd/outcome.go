package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/engine"
)

func newOutcomeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outcome",
		Short: "Record the outcome of the active session",
	}

	cmd.AddCommand(newOutcomeSetCmd(app), newOutcomeClearCmd(app))

	return cmd
}

func newOutcomeSetCmd(app *app) *cobra.Command {
	var outcomeType string
	var summary string
	var owner string
	var nextStep string
	var dueDate string
	var impactArea string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set outcome fields",
		Long:  "Merge outcome fields into the active session. When summary, owner and next step are all filled the session state becomes OutcomeDefined; blanking one of them reverts it to Active.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.controller.ActiveSession(); err != nil {
				return err
			}

			action := engine.UpdateOutcome{}
			if cmd.Flags().Changed("type") {
				parsed, err := parseOutcomeType(outcomeType)
				if err != nil {
					return err
				}
				action.Type = &parsed
			}
			if cmd.Flags().Changed("summary") {
				action.Summary = &summary
			}
			if cmd.Flags().Changed("owner") {
				action.Owner = &owner
			}
			if cmd.Flags().Changed("next-step") {
				action.NextStep = &nextStep
			}
			if cmd.Flags().Changed("due") {
				action.DueDate = &dueDate
			}
			if cmd.Flags().Changed("impact") {
				action.ImpactArea = &impactArea
			}

			app.controller.Dispatch(action)

			return printState(cmd, app)
		},
	}

	cmd.Flags().StringVar(&outcomeType, "type", "", "Outcome type (decision|nextstep|pending)")
	cmd.Flags().StringVar(&summary, "summary", "", "Outcome summary")
	cmd.Flags().StringVar(&owner, "owner", "", "Who is responsible")
	cmd.Flags().StringVar(&nextStep, "next-step", "", "What happens next")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (free text)")
	cmd.Flags().StringVar(&impactArea, "impact", "", "Impact area (free text)")

	return cmd
}

func newOutcomeClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.controller.ActiveSession(); err != nil {
				return err
			}

			app.controller.Dispatch(engine.ClearOutcome{})

			return printState(cmd, app)
		},
	}
}

func newClosingCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closing",
		Short: "Edit the closing summary of the active session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <text>",
		Short: "Set the closing summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.controller.ActiveSession(); err != nil {
				return err
			}

			app.controller.Dispatch(engine.UpdateClosingSummary{Summary: args[0]})
			return nil
		},
	})

	return cmd
}

func parseOutcomeType(raw string) (domain.OutcomeType, error) {
	switch raw {
	case "decision":
		return domain.OutcomeDecision, nil
	case "nextstep":
		return domain.OutcomeNextStep, nil
	case "pending":
		return domain.OutcomePending, nil
	default:
		return "", fmt.Errorf("unsupported outcome type %q (decision|nextstep|pending)", raw)
	}
}
