// Package cmd holds the website command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mrsuber/ResultInstitudeWeb/internal/config"
)

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "website",
		Short: "Result Institute marketing site",
		Long: `Serve, export or preview the Result Institute single-page site.

Configuration is read from the environment and from .env / .env.local in the
working directory. Flags override the environment for a single run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newBuildCmd(),
		newPreviewCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

// siteFlags are the overrides shared by the commands that render the site.
type siteFlags struct {
	theme       string
	themeFile   string
	contentFile string
}

func (f *siteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.theme, "theme", "", "theme preset (glass, professional)")
	cmd.Flags().StringVar(&f.themeFile, "theme-file", "", "YAML file decoded over the theme preset")
	cmd.Flags().StringVar(&f.contentFile, "content-file", "", "YAML file decoded over the site copy")
}

// load reads the configuration and applies the flag overrides.
func (f *siteFlags) load() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f.theme != "" {
		cfg.Site.Theme = f.theme
	}
	if f.themeFile != "" {
		cfg.Site.ThemeFile = f.themeFile
	}
	if f.contentFile != "" {
		cfg.Site.ContentFile = f.contentFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
