package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/llermaly/clone-magicbox/internal/envfile"
	"github.com/llermaly/clone-magicbox/internal/logging"
	"github.com/llermaly/clone-magicbox/internal/repo"
	"github.com/llermaly/clone-magicbox/internal/settings"
)

// Options configures a single run.
type Options struct {
	// Dir is the directory the project is created in. Empty means the
	// current working directory.
	Dir string
	// URL is the template repository to clone.
	URL string
	// Values must already be resolved; the name field picks the destination.
	Values settings.Values
	Cloner repo.Cloner
	// Out receives progress messages.
	Out io.Writer
}

// Result holds the outcome of a run.
type Result struct {
	Dest  string
	Files []string
}

// Destination returns the directory the project is cloned into.
func Destination(dir string, v settings.Values) string {
	name, _ := v.Get(settings.FieldName)
	return filepath.Join(dir, name)
}

// Run clones the template and writes the env files, in that order. A clone
// failure returns before anything is written. A write failure returns the
// partial Result alongside the error; files already written stay on disk.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	dest := Destination(opts.Dir, opts.Values)
	result := &Result{Dest: dest}

	fmt.Fprintf(out, "Building into %s...\n", dest)
	logger.Debug("cloning template", "url", opts.URL, "dest", dest)
	if err := opts.Cloner.Clone(ctx, opts.URL, dest); err != nil {
		return nil, Wrap(StageClone, err)
	}

	fmt.Fprintln(out, "Creating configuration files...")
	for _, e := range envfile.Redacted(envfile.FrontendEntries(opts.Values)) {
		logger.Debug("env entry", "key", e.Key, "value", e.Value)
	}
	files, err := envfile.Write(dest, opts.Values)
	result.Files = files
	if err != nil {
		return result, Wrap(StageWrite, err)
	}

	fmt.Fprintln(out, "Build complete!")
	return result, nil
}

// Plan describes what Run would do without touching the network or disk.
// Credential values are redacted.
func Plan(w io.Writer, opts Options) {
	dest := Destination(opts.Dir, opts.Values)
	fmt.Fprintf(w, "Destination: %s\n", dest)
	fmt.Fprintf(w, "Repository:  %s\n", opts.URL)

	fmt.Fprintf(w, "\n%s:\n", filepath.Join(dest, envfile.BackendPath))
	for _, e := range envfile.Redacted(envfile.BackendEntries(opts.Values)) {
		fmt.Fprintf(w, "  %s\n", e)
	}
	fmt.Fprintf(w, "\n%s:\n", filepath.Join(dest, envfile.FrontendPath))
	for _, e := range envfile.Redacted(envfile.FrontendEntries(opts.Values)) {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
