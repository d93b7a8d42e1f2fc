package cli

import (
	"fmt"

	"github.com/llermaly/clone-magicbox/internal/config"
	"github.com/llermaly/clone-magicbox/internal/repo"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.magicbox/config.yaml.

Keys:
  repo_url       Template repository to clone (env MAGICBOX_REPO_URL)
  settings_file  Default prompt settings file (env MAGICBOX_SETTINGS_FILE)`,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a configuration value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config file:   %s\n", config.FilePath())
		fmt.Fprintf(out, "repo_url:      %s\n", repo.URL())
		settingsFile := config.Get(config.KeySettingsFile)
		if settingsFile == "" {
			settingsFile = "(default)"
		}
		fmt.Fprintf(out, "settings_file: %s\n", settingsFile)
		return nil
	},
}
