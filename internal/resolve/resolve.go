package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/llermaly/clone-magicbox/internal/branding"
	"github.com/llermaly/clone-magicbox/internal/logging"
	"github.com/llermaly/clone-magicbox/internal/settings"
)

// Resolver produces the complete settings.Values for a run.
type Resolver struct {
	Spec *settings.PromptSpec

	// NewPrompter is called only when at least one question must be asked.
	NewPrompter func() Prompter
}

// FilterQuestions returns the questions whose field is not already present
// in flags, preserving PromptSpec order.
func FilterQuestions(spec *settings.PromptSpec, flags settings.Values) []settings.Question {
	var out []settings.Question
	for _, q := range spec.Questions {
		if !flags.Has(q.Name) {
			out = append(out, q)
		}
	}
	return out
}

// Resolve merges flags with prompt answers. Flag values are copied first and
// answers only fill keys that are still missing. The name field is always
// present in the result, normalized by ResolveName.
func (r *Resolver) Resolve(ctx context.Context, flags settings.Values) (settings.Values, error) {
	logger := logging.FromContext(ctx)
	result := flags.Clone()

	questions := FilterQuestions(r.Spec, flags)
	if len(questions) > 0 {
		if r.NewPrompter == nil {
			return nil, fmt.Errorf("%d question(s) unanswered and no prompter available", len(questions))
		}
		logger.Debug("prompting for missing fields", "fields", questionNames(questions), "settings", r.Spec.Source)

		answers, err := r.NewPrompter().Ask(ctx, questions)
		if err != nil {
			return nil, fmt.Errorf("prompting: %w", err)
		}
		for name, answer := range answers {
			if _, ok := result[name]; !ok {
				result[name] = answer
			}
		}
	} else {
		logger.Debug("all fields supplied on the command line; skipping prompts")
	}

	name, _ := result.Get(settings.FieldName)
	result[settings.FieldName] = ResolveName(name)
	return result, nil
}

// ResolveName trims name and substitutes the default project name when the
// result is empty.
func ResolveName(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return branding.DefaultProjectName()
}

func questionNames(questions []settings.Question) []string {
	names := make([]string, len(questions))
	for i, q := range questions {
		names[i] = q.Name
	}
	return names
}
