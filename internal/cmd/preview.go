package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrsuber/ResultInstitudeWeb/internal/preview"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
)

var errNotTerminal = errors.New("preview needs an interactive terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newPreviewCmd() *cobra.Command {
	var flags siteFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the site in the terminal",
		Long: `Scroll through the landing page in the terminal. Elements reveal as they
enter the view; number keys and the menu jump to sections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			snap, err := site.Load(site.SourcesFromConfig(cfg))
			if err != nil {
				return err
			}

			width, height, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				width, height = 0, 0
			}
			return preview.Run(snap, preview.Options{Width: width, Height: height})
		},
	}

	flags.register(cmd)
	return cmd
}
