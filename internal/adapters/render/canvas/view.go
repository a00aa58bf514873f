package canvas

import (
	"fmt"
	"strings"

	"github.com/bnema/zclarity/internal/adapters/i18n"
	"github.com/bnema/zclarity/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

func renderCanvas(session domain.Session, msgs i18n.Messages, s styles) string {
	var b strings.Builder

	title := session.Title
	if strings.TrimSpace(title) == "" {
		title = msgs.T("untitledSession")
	}
	b.WriteString(s.title.Render(title))
	b.WriteString("  ")
	b.WriteString(s.badge.Render("[" + msgs.StateLabel(string(session.State)) + "]"))
	b.WriteString("\n")
	b.WriteString(s.meta.Render(fmt.Sprintf("%s · %s", session.ID, session.CreatedAt.Local().Format(timeLayout))))
	b.WriteString("\n")

	b.WriteString(s.section.Render(msgs.T("intent")))
	b.WriteString("\n")
	writeField(&b, s, msgs.T("objective"), session.Objective)
	writeField(&b, s, msgs.T("expectedOutput"), outputTypeLabel(session.ExpectedOutputType, msgs))

	b.WriteString(s.section.Render(msgs.T("discussion")))
	b.WriteString("\n")
	if len(session.Topics) == 0 {
		b.WriteString("  " + s.empty.Render(msgs.T("addTopic")) + "\n")
	}
	for i, topic := range session.Topics {
		name := topic.Title
		if strings.TrimSpace(name) == "" {
			name = string(topic.ID)
		}
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s.topicName.Render(name)))
		if strings.TrimSpace(topic.Notes) != "" {
			b.WriteString("     " + s.value.Render(topic.Notes) + "\n")
		}
		for j, question := range topic.OpenQuestions {
			b.WriteString(fmt.Sprintf("     %s %d) %s\n", s.label.Render("?"), j, s.question.Render(question)))
		}
	}

	b.WriteString(s.section.Render(msgs.T("outcome")))
	b.WriteString("\n")
	if session.Outcome == nil {
		b.WriteString("  " + s.empty.Render("-") + "\n")
	} else {
		writeField(&b, s, msgs.T("outcomeType"), outcomeTypeLabel(session.Outcome.Type, msgs))
		writeField(&b, s, msgs.T("outcomeSummary"), session.Outcome.Summary)
		writeField(&b, s, msgs.T("owner"), session.Outcome.Owner)
		writeField(&b, s, msgs.T("nextStep"), session.Outcome.NextStep)
		if session.Outcome.DueDate != "" {
			writeField(&b, s, msgs.T("dueDate"), session.Outcome.DueDate)
		}
		if session.Outcome.ImpactArea != "" {
			writeField(&b, s, msgs.T("impactArea"), session.Outcome.ImpactArea)
		}
	}

	b.WriteString(s.section.Render(msgs.T("closingSummary")))
	b.WriteString("\n")
	if strings.TrimSpace(session.ClosingSummary) == "" {
		b.WriteString("  " + s.empty.Render("-") + "\n")
	} else {
		b.WriteString("  " + s.value.Render(session.ClosingSummary) + "\n")
	}

	if session.State == domain.StateClosed {
		b.WriteString("\n" + s.badge.Render(msgs.T("sessionClosed")) + "\n")
	}

	return b.String()
}

func renderHistory(sessions []domain.Session, activeID domain.SessionID, msgs i18n.Messages, s styles) string {
	var b strings.Builder

	b.WriteString(s.title.Render(msgs.T("sessionHistory")))
	b.WriteString("\n")

	if len(sessions) == 0 {
		b.WriteString(s.empty.Render(msgs.T("noSessions")))
		b.WriteString("\n")
		b.WriteString(s.empty.Render(msgs.T("clickNewSession")))
		b.WriteString("\n")
		return b.String()
	}

	for _, session := range domain.SortByCreatedAtDesc(sessions) {
		marker := "  "
		nameStyle := s.value
		if session.ID == activeID {
			marker = s.active.Render("> ")
			nameStyle = s.active
		}

		title := session.Title
		if strings.TrimSpace(title) == "" {
			title = msgs.T("untitledSession")
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s\n",
			marker,
			nameStyle.Render(title),
			s.badge.Render("["+msgs.StateLabel(string(session.State))+"]"),
			s.meta.Render(session.CreatedAt.Local().Format(timeLayout)),
			s.meta.Render(string(session.ID)),
		))
	}

	return b.String()
}

func writeField(b *strings.Builder, s styles, label, value string) {
	rendered := s.value.Render(value)
	if strings.TrimSpace(value) == "" {
		rendered = s.empty.Render("-")
	}
	b.WriteString("  " + s.label.Render(label+":") + " " + rendered + "\n")
}

func outputTypeLabel(t domain.ExpectedOutputType, msgs i18n.Messages) string {
	switch t {
	case domain.OutputDecision:
		return msgs.T("outputDecision")
	case domain.OutputClarification:
		return msgs.T("outputClarification")
	case domain.OutputFeasibility:
		return msgs.T("outputFeasibility")
	case domain.OutputRiskMap:
		return msgs.T("outputRiskMap")
	default:
		return string(t)
	}
}

func outcomeTypeLabel(t domain.OutcomeType, msgs i18n.Messages) string {
	switch t {
	case domain.OutcomeDecision:
		return msgs.T("outcomeDecision")
	case domain.OutcomeNextStep:
		return msgs.T("outcomeNextStep")
	case domain.OutcomePending:
		return msgs.T("outcomePending")
	default:
		return string(t)
	}
}
