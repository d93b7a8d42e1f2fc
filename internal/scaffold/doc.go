// Package scaffold runs one project build: it clones the template repository
// into the destination directory and then writes the environment files. It
// powers the root command of clone-magicbox.
package scaffold
