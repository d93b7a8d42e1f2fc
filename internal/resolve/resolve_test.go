package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/llermaly/clone-magicbox/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPrompter answers from a fixed map and records what it was asked.
type recordingPrompter struct {
	answers map[string]string
	asked   []string
	err     error
}

func (p *recordingPrompter) Ask(_ context.Context, questions []settings.Question) (map[string]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make(map[string]string)
	for _, q := range questions {
		p.asked = append(p.asked, q.Name)
		if a, ok := p.answers[q.Name]; ok {
			out[q.Name] = a
		} else {
			out[q.Name] = q.Default
		}
	}
	return out, nil
}

func defaultSpec(t *testing.T) *settings.PromptSpec {
	t.Helper()
	spec, err := settings.Default()
	require.NoError(t, err)
	return spec
}

func allFlags() settings.Values {
	return settings.Values{
		settings.FieldName:                "app",
		settings.FieldElasticsearchHost:   "h",
		settings.FieldElasticsearchIndex:  "i",
		settings.FieldElasticsearchAPIKey: "k",
		settings.FieldOpenAIAPIKey:        "o",
		settings.FieldColor:               "#123456",
	}
}

func TestFilterQuestions_AllFlagsSupplied(t *testing.T) {
	assert.Empty(t, FilterQuestions(defaultSpec(t), allFlags()))
}

func TestFilterQuestions_EachMissingField(t *testing.T) {
	spec := defaultSpec(t)
	for _, f := range settings.Fields {
		t.Run(f.Name, func(t *testing.T) {
			flags := allFlags()
			delete(flags, f.Name)

			got := FilterQuestions(spec, flags)
			require.Len(t, got, 1)
			assert.Equal(t, f.Name, got[0].Name)
		})
	}
}

func TestFilterQuestions_PreservesSpecOrder(t *testing.T) {
	flags := settings.Values{settings.FieldElasticsearchIndex: "i"}
	got := FilterQuestions(defaultSpec(t), flags)

	names := make([]string, len(got))
	for i, q := range got {
		names[i] = q.Name
	}
	assert.Equal(t, []string{"name", "elasticsearchHost", "elasticsearchApiKey", "openaiApiKey", "color"}, names)
}

func TestFilterQuestions_EmptyFlagValueCountsAsSupplied(t *testing.T) {
	flags := allFlags()
	flags[settings.FieldOpenAIAPIKey] = ""
	assert.Empty(t, FilterQuestions(defaultSpec(t), flags))
}

func TestResolve_NoPromptWhenComplete(t *testing.T) {
	called := false
	r := &Resolver{
		Spec: defaultSpec(t),
		NewPrompter: func() Prompter {
			called = true
			return &recordingPrompter{}
		},
	}

	got, err := r.Resolve(context.Background(), allFlags())
	require.NoError(t, err)
	assert.False(t, called, "prompter must not be constructed when nothing is missing")
	assert.Equal(t, allFlags(), got)
}

func TestResolve_PromptsOnlyMissing(t *testing.T) {
	p := &recordingPrompter{answers: map[string]string{settings.FieldOpenAIAPIKey: "sk-prompted"}}
	r := &Resolver{Spec: defaultSpec(t), NewPrompter: func() Prompter { return p }}

	flags := allFlags()
	delete(flags, settings.FieldOpenAIAPIKey)

	got, err := r.Resolve(context.Background(), flags)
	require.NoError(t, err)
	assert.Equal(t, []string{settings.FieldOpenAIAPIKey}, p.asked)
	assert.Equal(t, "sk-prompted", got[settings.FieldOpenAIAPIKey])
	assert.Equal(t, "app", got[settings.FieldName])
}

func TestResolve_FlagsWinOverAnswers(t *testing.T) {
	// A prompter that answers more than it was asked must not clobber flags.
	greedy := promptFunc(func(context.Context, []settings.Question) (map[string]string, error) {
		return map[string]string{
			settings.FieldName:  "from-prompt",
			settings.FieldColor: "#000000",
		}, nil
	})
	r := &Resolver{Spec: defaultSpec(t), NewPrompter: func() Prompter { return greedy }}

	got, err := r.Resolve(context.Background(), settings.Values{settings.FieldName: "from-flag"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", got[settings.FieldName])
	assert.Equal(t, "#000000", got[settings.FieldColor])
}

func TestResolve_DoesNotMutateFlags(t *testing.T) {
	p := &recordingPrompter{}
	r := &Resolver{Spec: defaultSpec(t), NewPrompter: func() Prompter { return p }}

	flags := settings.Values{settings.FieldName: "  spaced  "}
	_, err := r.Resolve(context.Background(), flags)
	require.NoError(t, err)
	assert.Equal(t, settings.Values{settings.FieldName: "  spaced  "}, flags)
}

func TestResolve_NameDefaults(t *testing.T) {
	spec := &settings.PromptSpec{Version: "1.0.0", Source: "test"}
	r := &Resolver{Spec: spec}

	got, err := r.Resolve(context.Background(), settings.Values{})
	require.NoError(t, err)
	assert.Equal(t, "magicbox", got[settings.FieldName])
	assert.False(t, got.Has(settings.FieldColor), "fields outside the spec stay undefined")
}

func TestResolve_PrompterError(t *testing.T) {
	boom := errors.New("terminal gone")
	r := &Resolver{
		Spec:        defaultSpec(t),
		NewPrompter: func() Prompter { return &recordingPrompter{err: boom} },
	}

	_, err := r.Resolve(context.Background(), settings.Values{})
	require.ErrorIs(t, err, boom)
}

func TestResolve_MissingPrompter(t *testing.T) {
	r := &Resolver{Spec: defaultSpec(t)}
	_, err := r.Resolve(context.Background(), settings.Values{})
	require.Error(t, err)
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "magicbox"},
		{"   ", "magicbox"},
		{" myapp ", "myapp"},
		{"\tdemo\n", "demo"},
		{"my app", "my app"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveName(tt.in), "ResolveName(%q)", tt.in)
	}
}

type promptFunc func(context.Context, []settings.Question) (map[string]string, error)

func (f promptFunc) Ask(ctx context.Context, qs []settings.Question) (map[string]string, error) {
	return f(ctx, qs)
}
