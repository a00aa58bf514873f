package file

import (
	"time"

	"github.com/bnema/zclarity/internal/domain"
)

// The on-disk layout keeps the camelCase keys and RFC3339 timestamps of the
// original browser build of zClarity, so records written by either build
// round-trip through the other.

type sessionRecord struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Objective          string         `json:"objective"`
	ExpectedOutputType string         `json:"expectedOutputType"`
	State              string         `json:"state"`
	Topics             []topicRecord  `json:"topics"`
	Outcome            *outcomeRecord `json:"outcome"`
	ClosingSummary     string         `json:"closingSummary"`
	CreatedAt          string         `json:"createdAt"`
	UpdatedAt          string         `json:"updatedAt"`
}

type topicRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Notes         string   `json:"notes"`
	OpenQuestions []string `json:"openQuestions"`
}

type outcomeRecord struct {
	Type       string `json:"type"`
	Summary    string `json:"summary"`
	Owner      string `json:"owner"`
	NextStep   string `json:"nextStep"`
	DueDate    string `json:"dueDate,omitempty"`
	ImpactArea string `json:"impactArea,omitempty"`
}

func toRecord(session domain.Session) sessionRecord {
	topics := make([]topicRecord, 0, len(session.Topics))
	for _, topic := range session.Topics {
		questions := topic.OpenQuestions
		if questions == nil {
			questions = []string{}
		}
		topics = append(topics, topicRecord{
			ID:            string(topic.ID),
			Title:         topic.Title,
			Notes:         topic.Notes,
			OpenQuestions: questions,
		})
	}

	var outcome *outcomeRecord
	if session.Outcome != nil {
		outcome = &outcomeRecord{
			Type:       string(session.Outcome.Type),
			Summary:    session.Outcome.Summary,
			Owner:      session.Outcome.Owner,
			NextStep:   session.Outcome.NextStep,
			DueDate:    session.Outcome.DueDate,
			ImpactArea: session.Outcome.ImpactArea,
		}
	}

	return sessionRecord{
		ID:                 string(session.ID),
		Title:              session.Title,
		Objective:          session.Objective,
		ExpectedOutputType: string(session.ExpectedOutputType),
		State:              string(session.State),
		Topics:             topics,
		Outcome:            outcome,
		ClosingSummary:     session.ClosingSummary,
		CreatedAt:          formatTime(session.CreatedAt),
		UpdatedAt:          formatTime(session.UpdatedAt),
	}
}

func fromRecord(record sessionRecord) domain.Session {
	topics := make([]domain.Topic, 0, len(record.Topics))
	for _, topic := range record.Topics {
		questions := topic.OpenQuestions
		if questions == nil {
			questions = []string{}
		}
		topics = append(topics, domain.Topic{
			ID:            domain.TopicID(topic.ID),
			Title:         topic.Title,
			Notes:         topic.Notes,
			OpenQuestions: questions,
		})
	}

	var outcome *domain.Outcome
	if record.Outcome != nil {
		outcome = &domain.Outcome{
			Type:       domain.OutcomeType(record.Outcome.Type),
			Summary:    record.Outcome.Summary,
			Owner:      record.Outcome.Owner,
			NextStep:   record.Outcome.NextStep,
			DueDate:    record.Outcome.DueDate,
			ImpactArea: record.Outcome.ImpactArea,
		}
	}

	return domain.Session{
		ID:                 domain.SessionID(record.ID),
		Title:              record.Title,
		Objective:          record.Objective,
		ExpectedOutputType: domain.ExpectedOutputType(record.ExpectedOutputType),
		State:              domain.SessionState(record.State),
		Topics:             topics,
		Outcome:            outcome,
		ClosingSummary:     record.ClosingSummary,
		CreatedAt:          parseTime(record.CreatedAt),
		UpdatedAt:          parseTime(record.UpdatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
