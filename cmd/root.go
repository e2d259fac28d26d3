package cmd

import (
	"github.com/spf13/cobra"

	"github.com/retagger/retag/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:     "retag",
	Version: version.Summary(),
	Short:   "Interactively retarget git tags and keep root tags in sync",
	Long: `retag moves a tag to a different commit and force-updates the remote ref.

It offers two workflows:
- Update a Tag: move any non-root tag to the current HEAD, with an optional
  cascade to the root tag when the root was tracking the moved tag.
- Bump a Root Tag: point a root tag (e.g. v2) at the commit of a specific
  version tag (e.g. v2.3.1).`,
}

func Execute() error {
	return rootCmd.Execute()
}
