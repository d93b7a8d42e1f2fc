package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// SideFileName is the settings file looked up next to the executable.
const SideFileName = "settings.yaml"

// SupportedVersions is the semver constraint a settings file must satisfy.
const SupportedVersions = "^1.0.0"

// EmbeddedSource names the built-in question set in errors and logs.
const EmbeddedSource = "<embedded>"

// ErrUnsupportedVersion is returned when a settings file declares a version
// outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported settings version")

//go:embed default_settings.yaml
var defaultSettings []byte

// Question is one interactive prompt for a recognized field.
type Question struct {
	Type    string `yaml:"type,omitempty"` // accepted for compatibility, always "input"
	Name    string `yaml:"name"`
	Message string `yaml:"message"`
	Default string `yaml:"default,omitempty"`
}

// PromptSpec is the ordered set of questions that may be asked.
type PromptSpec struct {
	Version   string     `yaml:"version"`
	Questions []Question `yaml:"questions"`

	// Source is the file the spec was read from, or EmbeddedSource.
	Source string `yaml:"-"`
}

// Default returns the built-in question set.
func Default() (*PromptSpec, error) {
	return Parse(defaultSettings, EmbeddedSource)
}

// Load reads and validates a settings file.
func Load(path string) (*PromptSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates data against the settings schema and the supported version
// range, then decodes it. source is only used in error messages.
func Parse(data []byte, source string) (*PromptSpec, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating settings %s: %w", source, err)
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid settings %s: %s", source, strings.Join(msgs, "; "))
	}

	var spec PromptSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", source, err)
	}
	spec.Source = source

	if err := checkVersion(spec.Version); err != nil {
		return nil, fmt.Errorf("settings %s: %w", source, err)
	}

	seen := make(map[string]bool, len(spec.Questions))
	for _, q := range spec.Questions {
		if seen[q.Name] {
			return nil, fmt.Errorf("invalid settings %s: question %q declared more than once", source, q.Name)
		}
		seen[q.Name] = true
	}

	return &spec, nil
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedVersions, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, SupportedVersions)
	}
	return nil
}

// Names returns the question names in order.
func (s *PromptSpec) Names() []string {
	names := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		names[i] = q.Name
	}
	return names
}

// Locate picks the settings file to load. An explicit path (flag) wins, then
// the configured path, then SideFileName inside exeDir when that file exists.
// An empty result means the embedded default applies.
func Locate(explicit, configured, exeDir string) string {
	if explicit != "" {
		return explicit
	}
	if configured != "" {
		return configured
	}
	if exeDir != "" {
		side := filepath.Join(exeDir, SideFileName)
		if info, err := os.Stat(side); err == nil && !info.IsDir() {
			return side
		}
	}
	return ""
}

// LoadFrom loads the settings file chosen by Locate, falling back to Default.
// Any failure on a located file is returned as-is; there is no fallback to the
// default question set once a file has been picked.
func LoadFrom(explicit, configured, exeDir string) (*PromptSpec, error) {
	path := Locate(explicit, configured, exeDir)
	if path == "" {
		return Default()
	}
	return Load(path)
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
