package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/engine"
)

func newTopicCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage discussion topics of the active session",
	}

	cmd.AddCommand(newTopicAddCmd(app), newTopicEditCmd(app), newTopicRemoveCmd(app))

	return cmd
}

func newTopicAddCmd(app *app) *cobra.Command {
	var title string
	var notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.controller.ActiveSession(); err != nil {
				return err
			}

			state := app.controller.Dispatch(engine.AddTopic{})

			// The engine assigns the id; fetch the freshly appended topic
			// to report it and to apply the optional initial fields.
			session, ok := state.ActiveSession()
			if !ok || len(session.Topics) == 0 {
				return domain.ErrNoActiveSession
			}
			topic := session.Topics[len(session.Topics)-1]

			if cmd.Flags().Changed("title") || cmd.Flags().Changed("notes") {
				action := engine.UpdateTopic{TopicID: topic.ID}
				if cmd.Flags().Changed("title") {
					action.Title = &title
				}
				if cmd.Flags().Changed("notes") {
					action.Notes = &notes
				}
				app.controller.Dispatch(action)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.msgs.T("addTopic"), topic.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Topic title")
	cmd.Flags().StringVar(&notes, "notes", "", "Topic notes")

	return cmd
}

func newTopicEditCmd(app *app) *cobra.Command {
	var title string
	var notes string

	cmd := &cobra.Command{
		Use:   "edit <topic-id>",
		Short: "Edit a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.TopicID(args[0])
			if _, err := app.controller.Topic(id); err != nil {
				return fmt.Errorf("edit topic %q: %w", args[0], err)
			}

			action := engine.UpdateTopic{TopicID: id}
			if cmd.Flags().Changed("title") {
				action.Title = &title
			}
			if cmd.Flags().Changed("notes") {
				action.Notes = &notes
			}

			app.controller.Dispatch(action)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Topic title")
	cmd.Flags().StringVar(&notes, "notes", "", "Topic notes")

	return cmd
}

func newTopicRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <topic-id>",
		Short: "Remove a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.TopicID(args[0])
			if _, err := app.controller.Topic(id); err != nil {
				return fmt.Errorf("remove topic %q: %w", args[0], err)
			}

			app.controller.Dispatch(engine.RemoveTopic{TopicID: id})

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.msgs.T("removeTopic"), id)
			return err
		},
	}
}
