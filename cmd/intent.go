package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/engine"
)

func newIntentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intent",
		Short: "Edit the intent of the active session",
	}

	cmd.AddCommand(newIntentSetCmd(app), newIntentTemplateCmd(app))

	return cmd
}

func newIntentSetCmd(app *app) *cobra.Command {
	var title string
	var objective string
	var outputType string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set title, objective or expected output type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.controller.ActiveSession(); err != nil {
				return err
			}

			action := engine.UpdateIntent{}
			if cmd.Flags().Changed("title") {
				action.Title = &title
			}
			if cmd.Flags().Changed("objective") {
				action.Objective = &objective
			}
			if cmd.Flags().Changed("output-type") {
				parsed, err := parseOutputType(outputType)
				if err != nil {
					return err
				}
				action.ExpectedOutputType = &parsed
			}

			app.controller.Dispatch(action)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Session title (optional, display only)")
	cmd.Flags().StringVar(&objective, "objective", "", "What this session must achieve")
	cmd.Flags().StringVar(&outputType, "output-type", "", "Expected output type (decision|clarification|feasibility|riskmap)")

	return cmd
}

// newIntentTemplateCmd fills the objective with the localized guided
// template when it is still empty, the way the browser build's helper
// button did.
func newIntentTemplateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Insert the objective template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.controller.ActiveSession()
			if err != nil {
				return err
			}
			if session.Objective != "" {
				return fmt.Errorf("objective is already set")
			}

			template := app.msgs.T("objectiveTemplate")
			app.controller.Dispatch(engine.UpdateIntent{Objective: &template})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), template)
			return err
		},
	}
}

func parseOutputType(raw string) (domain.ExpectedOutputType, error) {
	switch raw {
	case "decision":
		return domain.OutputDecision, nil
	case "clarification":
		return domain.OutputClarification, nil
	case "feasibility":
		return domain.OutputFeasibility, nil
	case "riskmap":
		return domain.OutputRiskMap, nil
	default:
		return "", fmt.Errorf("unsupported output type %q (decision|clarification|feasibility|riskmap)", raw)
	}
}
