// Package repo fetches the template repository into the destination
// directory. Exactly one clone attempt is made per call.
package repo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/llermaly/clone-magicbox/internal/branding"
	"github.com/llermaly/clone-magicbox/internal/config"
)

// ErrDestinationNotEmpty mirrors git's refusal to clone over existing content.
var ErrDestinationNotEmpty = errors.New("destination path already exists and is not an empty directory")

// Cloner clones url into dest.
type Cloner interface {
	Clone(ctx context.Context, url, dest string) error
}

// GitCloner clones with go-git, without shelling out to a git binary.
type GitCloner struct {
	// Progress receives the remote's sideband progress output. Optional.
	Progress io.Writer
}

// Clone checks dest the way `git clone` does and then clones url into it.
// On failure go-git removes whatever it created; pre-existing content is
// never touched.
func (c *GitCloner) Clone(ctx context.Context, url, dest string) error {
	if err := checkDestination(dest); err != nil {
		return err
	}

	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:      url,
		Progress: c.Progress,
	})
	if err != nil {
		return fmt.Errorf("cloning %s into %s: %w", url, dest, err)
	}
	return nil
}

// checkDestination rejects a dest that is a file or a non-empty directory.
// go-git's PlainClone would otherwise initialise a repository on top of
// existing content instead of failing like the git CLI.
func checkDestination(dest string) error {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", dest, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dest, ErrDestinationNotEmpty)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		return fmt.Errorf("reading destination %s: %w", dest, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%s: %w", dest, ErrDestinationNotEmpty)
	}
	return nil
}

// URL returns the template repository URL, checking (in order):
// 1. <PREFIX>_REPO_URL env var
// 2. config key "repo_url"
// 3. branding.TemplateRepoURL() (from branding.yaml)
func URL() string {
	if v := os.Getenv(branding.EnvVar("REPO_URL")); v != "" {
		return v
	}
	if v := config.Get(config.KeyRepoURL); v != "" {
		return v
	}
	return branding.TemplateRepoURL()
}
