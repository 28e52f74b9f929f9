package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mrsuber/ResultInstitudeWeb/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Setting", "Value")
			for _, row := range configRows(cfg) {
				table.Append(row[0], row[1])
			}
			return table.Render()
		},
	}
}

func configRows(cfg *config.Config) [][2]string {
	orNone := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return s
	}
	return [][2]string{
		{"Address", cfg.Addr()},
		{"URL", cfg.URL()},
		{"Environment", cfg.Environment},
		{"Log Level", cfg.LogLevel},
		{"Theme", cfg.Site.Theme},
		{"Theme File", orNone(cfg.Site.ThemeFile)},
		{"Content File", orNone(cfg.Site.ContentFile)},
		{"Watch Files", strconv.FormatBool(cfg.Site.Watch)},
		{"Live Bridge", strconv.FormatBool(cfg.Live.Enabled)},
		{"Live Heartbeat", cfg.Live.Heartbeat.String()},
		{"Live Session TTL", cfg.Live.SessionTTL.String()},
		{"Live Queue Size", strconv.Itoa(cfg.Live.QueueSize)},
		{"Contact Rate", fmt.Sprintf("%d/min, burst %d", cfg.Contact.RatePerMinute, cfg.Contact.Burst)},
		{"Shutdown Timeout", cfg.ShutdownTimeout.String()},
	}
}
