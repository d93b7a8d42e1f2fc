package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/llermaly/clone-magicbox/internal/branding"
	"github.com/llermaly/clone-magicbox/internal/config"
	"github.com/llermaly/clone-magicbox/internal/logging"
	"github.com/llermaly/clone-magicbox/internal/repo"
	"github.com/llermaly/clone-magicbox/internal/resolve"
	"github.com/llermaly/clone-magicbox/internal/scaffold"
	"github.com/llermaly/clone-magicbox/internal/settings"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	settingsPath string
	dryRun       bool
	verbose      bool
)

// newCloner builds the repository fetcher for a run. Tests replace it.
var newCloner = func(cmd *cobra.Command) repo.Cloner {
	c := &repo.GitCloner{}
	if verbose {
		c.Progress = cmd.ErrOrStderr()
	}
	return c
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.Description() + `.

Clones the ` + branding.DisplayName() + ` template into a new directory named after the
project and writes backend/app/.env and frontend/.env from the values given.
Any value not passed as a flag is asked for interactively.`,
	Example: `  # Fully non-interactive
  clone-magicbox --name shop --elasticsearchHost https://es.local:9243 \
    --elasticsearchIndex products --elasticsearchApiKey xxx --openaiApiKey sk-xxx

  # Ask only for what is missing
  clone-magicbox --name shop

  # Use a custom question set
  clone-magicbox --settings ./settings.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env in the working directory may carry MAGICBOX_* overrides.
		// Variables already set in the environment win.
		_ = godotenv.Load()
		config.Load()
	},
	RunE: runScaffold,
}

func init() {
	for _, f := range settings.Fields {
		rootCmd.Flags().String(f.Name, "", f.Usage)
	}
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to a prompt settings file (YAML or JSON)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve values and print the plan without cloning or writing files")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging and clone progress on stderr")
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed to stderr; the caller decides the exit status.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func runScaffold(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), verbose)
	ctx := logging.WithLogger(cmd.Context(), logger)

	spec, err := loadPromptSpec()
	if err != nil {
		return scaffold.Wrap(scaffold.StageSettings, err)
	}
	logger.Debug("prompt settings loaded", "source", spec.Source, "questions", len(spec.Questions))

	resolver := &resolve.Resolver{
		Spec: spec,
		NewPrompter: func() resolve.Prompter {
			return resolve.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	values, err := resolver.Resolve(ctx, flagValues(cmd))
	if err != nil {
		return scaffold.Wrap(scaffold.StageResolve, err)
	}

	opts := scaffold.Options{
		URL:    repo.URL(),
		Values: values,
		Cloner: newCloner(cmd),
		Out:    cmd.OutOrStdout(),
	}

	if dryRun {
		scaffold.Plan(cmd.OutOrStdout(), opts)
		return nil
	}

	_, err = scaffold.Run(ctx, opts)
	return err
}

// loadPromptSpec picks the question set: --settings, then the settings_file
// config key, then settings.yaml beside the binary, then the embedded default.
func loadPromptSpec() (*settings.PromptSpec, error) {
	exeDir, err := settings.ExecutableDir()
	if err != nil {
		exeDir = ""
	}
	return settings.LoadFrom(settingsPath, config.Get(config.KeySettingsFile), exeDir)
}

// flagValues collects the field flags the user actually passed. An explicit
// empty value counts as supplied.
func flagValues(cmd *cobra.Command) settings.Values {
	v := settings.Values{}
	for _, f := range settings.Fields {
		if !cmd.Flags().Changed(f.Name) {
			continue
		}
		if s, err := cmd.Flags().GetString(f.Name); err == nil {
			v[f.Name] = s
		}
	}
	return v
}
