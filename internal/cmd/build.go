package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrsuber/ResultInstitudeWeb/internal/export"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
	"github.com/mrsuber/ResultInstitudeWeb/static"
)

func newBuildCmd() *cobra.Command {
	var (
		flags  siteFlags
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Long: `Render the landing page and copy its assets into a directory that any static
file host can serve. Elements reveal with the browser's own IntersectionObserver;
the contact form still posts to /contact.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			holder, err := site.NewHolderFromConfig(cfg, logger.Nop())
			if err != nil {
				return err
			}

			files, err := export.New(holder, logger.Nop()).Run(export.Options{
				OutDir: outDir,
				Assets: static.FS,
			})
			if err != nil {
				return fmt.Errorf("export site: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s theme to %s\n", holder.Current().Theme.Name, outDir)
			return export.WriteSummary(cmd.OutOrStdout(), files)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	return cmd
}
