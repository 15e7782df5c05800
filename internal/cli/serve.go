package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hmibuilder/internal/server"
)

// serveCommand exposes a layout over the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		noSave bool
	)

	cmd := &cobra.Command{
		Use:   "serve [layout]",
		Short: "Serve a layout over a JSON HTTP API",
		Long: `Serve one layout to a browser front end. Pointer events, nudges and edits
arrive as JSON requests and are applied one at a time. The layout is created
if it does not exist and written back when the server stops.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), args[0], addr, !noSave)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "discard changes on shutdown")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path, addr string, save bool) error {
	store, err := c.loadStore(path, true)
	if err != nil {
		return err
	}
	srv := server.New(store, c.Config.EditorOptions(), c.Logger)

	printInfo("Serving %s on %s", StyleHighlight.Render(path), StyleValue.Render("http://"+addr))
	printNextStep("Preview", "http://"+addr+"/preview.svg")

	err = srv.Serve(ctx, addr)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if save {
		if serr := c.saveDocument(path, srv.Editor()); serr != nil {
			return serr
		}
		printSuccess("Saved %s", path)
	}
	return err
}
