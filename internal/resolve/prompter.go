package resolve

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/llermaly/clone-magicbox/internal/settings"
)

// Prompter asks a list of questions and returns answers keyed by question name.
type Prompter interface {
	Ask(ctx context.Context, questions []settings.Question) (map[string]string, error)
}

// LinePrompter asks questions one line at a time over a reader/writer pair.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
	// pending carries the result of a read still in flight after a
	// cancelled Ask.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewLinePrompter returns a LinePrompter reading answers from in and writing
// questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints each question as "? <message> (<default>) " and reads one line.
// A blank answer takes the question's default. Cancelling ctx returns
// immediately, even while a read is blocked.
func (p *LinePrompter) Ask(ctx context.Context, questions []settings.Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if q.Default != "" {
			fmt.Fprintf(p.out, "? %s (%s) ", q.Message, q.Default)
		} else {
			fmt.Fprintf(p.out, "? %s ", q.Message)
		}

		line, err := p.readLine(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("reading answer for %q: input closed before an answer was given", q.Name)
			}
			return nil, fmt.Errorf("reading answer for %q: %w", q.Name, err)
		}

		answer := strings.TrimRight(line, "\r\n")
		if answer == "" {
			answer = q.Default
		}
		answers[q.Name] = answer
	}
	return answers, nil
}

// readLine reads one line in the background so a blocked terminal read does
// not hold up cancellation. An abandoned read is picked up by the next call.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan readResult, 1)
		p.pending = ch
		go func() {
			line, err := p.reader.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	}
}
