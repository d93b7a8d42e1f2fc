// Package cli defines the Cobra command tree for clone-magicbox. The root
// command is the scaffold itself; subcommands cover version output and user
// settings. Commands only parse flags and format output, delegating the work
// to the settings, resolve, repo, envfile and scaffold packages.
package cli
