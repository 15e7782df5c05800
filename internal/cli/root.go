package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hmibuilder/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The settings file is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "hmibuilder lays out HMI screens on an alignment-relative canvas",
		Long: `hmibuilder edits operator screen layouts. Every element is anchored to the
canvas per axis (start, center, end or stretch) and keeps its anchoring while
it is dragged, resized or nudged, flipping sides when pushed past an edge.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default: $XDG_CONFIG_HOME/hmibuilder/config.toml)")

	// Documents
	root.AddCommand(c.newCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.alignCommand())
	root.AddCommand(c.nudgeCommand())
	root.AddCommand(c.frontCommand())
	root.AddCommand(c.backCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.renameCommand())

	// Shells and output
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
