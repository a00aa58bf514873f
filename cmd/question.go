package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/zclarity/internal/domain"
	"github.com/bnema/zclarity/internal/engine"
)

func newQuestionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Manage open questions of a topic",
	}

	cmd.AddCommand(newQuestionAddCmd(app), newQuestionRemoveCmd(app))

	return cmd
}

func newQuestionAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <topic-id> <question>",
		Short: "Add an open question to a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.TopicID(args[0])
			if _, err := app.controller.Topic(id); err != nil {
				return fmt.Errorf("add question to topic %q: %w", args[0], err)
			}
			if strings.TrimSpace(args[1]) == "" {
				return errors.New("question text is empty")
			}

			app.controller.Dispatch(engine.AddOpenQuestion{TopicID: id, Question: args[1]})
			return nil
		},
	}
}

func newQuestionRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <topic-id> <index>",
		Short: "Remove an open question by its index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.TopicID(args[0])
			topic, err := app.controller.Topic(id)
			if err != nil {
				return fmt.Errorf("remove question from topic %q: %w", args[0], err)
			}

			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse question index %q: %w", args[1], err)
			}
			if index < 0 || index >= len(topic.OpenQuestions) {
				return fmt.Errorf("question index %d out of range (topic has %d)", index, len(topic.OpenQuestions))
			}

			app.controller.Dispatch(engine.RemoveOpenQuestion{TopicID: id, Index: index})
			return nil
		},
	}
}
