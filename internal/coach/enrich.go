package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// NoteEnricher rewrites a workout's coaching notes with a language model.
// It is strictly additive polish: the plan itself is never altered, and
// any failure falls back to the deterministic notes.
type NoteEnricher struct {
	client openai.Client
	logger *slog.Logger
}

// NewNoteEnricher returns nil when no API key is configured; callers treat
// a nil enricher as "use the deterministic notes".
func NewNoteEnricher(apiKey string, logger *slog.Logger) *NoteEnricher {
	if apiKey == "" {
		return nil
	}
	return &NoteEnricher{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
	}
}

// Enrich returns reworded coaching notes for the plan. On any error the
// original notes come back unchanged.
func (n *NoteEnricher) Enrich(ctx context.Context, plan WorkoutPlan) []string {
	if n == nil {
		return plan.CoachingNotes
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Rewrite these coaching notes for a workout titled %q (goal: %s) ", plan.Title, plan.Goal)
	sb.WriteString("as short, encouraging one-liners. Return one note per line, no numbering, at most 4 lines.\n\n")
	for _, note := range plan.CoachingNotes {
		sb.WriteString(note)
		sb.WriteString("\n")
	}

	resp, err := n.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(sb.String()),
		},
		Model: openai.ChatModelGPT4o,
	})
	if err != nil {
		n.logger.LogAttrs(ctx, slog.LevelWarn, "coaching note enrichment failed",
			slog.String("error", err.Error()))
		return plan.CoachingNotes
	}
	if len(resp.Choices) == 0 {
		return plan.CoachingNotes
	}

	var notes []string
	for _, line := range strings.Split(resp.Choices[0].Message.Content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			notes = append(notes, line)
		}
	}
	if len(notes) == 0 {
		return plan.CoachingNotes
	}
	return notes
}
