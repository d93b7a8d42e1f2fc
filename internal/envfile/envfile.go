package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/llermaly/clone-magicbox/internal/settings"
)

// Frontend-only keys.
const (
	BackendAPIKey   = "NEXT_PUBLIC_BACKEND_API"
	BackendAPIURL   = "http://localhost:8000"
	PrimaryColorKey = "NEXT_PUBLIC_PRIMARY_COLOR"
)

const filePerm = 0644

// Target paths relative to the destination directory.
var (
	BackendPath  = filepath.Join("backend", "app", ".env")
	FrontendPath = filepath.Join("frontend", ".env")
)

// Entry is a single KEY=value line.
type Entry struct {
	Key   string
	Value string
}

// String returns the entry as it appears in the file.
func (e Entry) String() string {
	return e.Key + "=" + e.Value
}

// sharedVars maps fields to env keys for lines written to both files, in
// output order.
var sharedVars = []struct {
	field string
	key   string
}{
	{settings.FieldElasticsearchHost, "ELASTICSEARCH_HOST"},
	{settings.FieldElasticsearchIndex, "ELASTICSEARCH_INDEX"},
	{settings.FieldElasticsearchAPIKey, "ELASTICSEARCH_API_KEY"},
	{settings.FieldOpenAIAPIKey, "OPENAI_API_KEY"},
}

// BackendEntries returns the backend lines for every present shared field.
// Absent fields are skipped rather than written with an empty value.
func BackendEntries(v settings.Values) []Entry {
	var entries []Entry
	for _, sv := range sharedVars {
		if value, ok := v.Get(sv.field); ok {
			entries = append(entries, Entry{Key: sv.key, Value: value})
		}
	}
	return entries
}

// FrontendEntries returns the backend lines followed by the backend API URL
// and, when color is present, the primary color.
func FrontendEntries(v settings.Values) []Entry {
	entries := BackendEntries(v)
	entries = append(entries, Entry{Key: BackendAPIKey, Value: BackendAPIURL})
	if color, ok := v.Get(settings.FieldColor); ok {
		entries = append(entries, Entry{Key: PrimaryColorKey, Value: color})
	}
	return entries
}

// Render joins entries with newlines. There is no trailing newline.
func Render(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// RenderBackend renders the backend/app/.env body.
func RenderBackend(v settings.Values) string { return Render(BackendEntries(v)) }

// RenderFrontend renders the frontend/.env body.
func RenderFrontend(v settings.Values) string { return Render(FrontendEntries(v)) }

// Write renders both files under dest, backend first. It stops at the first
// failure and leaves anything already written in place. Parent directories
// are expected to come from the cloned template and are never created here.
// The returned paths are the files written successfully.
func Write(dest string, v settings.Values) ([]string, error) {
	targets := []struct {
		rel  string
		body string
	}{
		{BackendPath, RenderBackend(v)},
		{FrontendPath, RenderFrontend(v)},
	}

	var written []string
	for _, target := range targets {
		path := filepath.Join(dest, target.rel)
		if err := os.WriteFile(path, fileContent(target.body), filePerm); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func fileContent(body string) []byte {
	if body == "" {
		return nil
	}
	return []byte(body + "\n")
}
