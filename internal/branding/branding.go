// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	GoModule           string `yaml:"go_module"`
	TemplateRepoURL    string `yaml:"template_repo_url"`
	DefaultProjectName string `yaml:"default_project_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:            "clone-magicbox",
			DisplayName:        "Magicbox",
			Description:        "Clones the magicbox repository",
			HomeDir:            ".magicbox",
			EnvPrefix:          "MAGICBOX",
			GoModule:           "github.com/llermaly/clone-magicbox",
			TemplateRepoURL:    "https://github.com/llermaly/magicbox",
			DefaultProjectName: "magicbox",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "clone-magicbox").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Magicbox").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".magicbox").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MAGICBOX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateRepoURL returns the git URL of the template repository that gets cloned.
func TemplateRepoURL() string { load(); return defaults.TemplateRepoURL }

// DefaultProjectName is the destination used when the project name is blank.
func DefaultProjectName() string { load(); return defaults.DefaultProjectName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REPO_URL") → "MAGICBOX_REPO_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
