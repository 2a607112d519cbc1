package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/specred/internal/app"
	"go.trai.ch/specred/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Classify the frame table, build master frames and prepare science exposures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			calcheck, _ := cmd.Flags().GetBool("calcheck")
			setups, _ := cmd.Flags().GetStringSlice("setup")
			jsonLogs, _ := cmd.Flags().GetBool("json")
			noReuse, _ := cmd.Flags().GetBool("no-reuse")

			_, err := c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath,
				CalCheck:   calcheck,
				Setups:     setups,
				JSONLogs:   jsonLogs,
				NoReuse:    noReuse,
			})
			return err
		},
	}
	cmd.Flags().StringP("config", "c", domain.SettingsFileName, "Path to the settings file")
	cmd.Flags().Bool("calcheck", false, "Check calibrations and write the setup file without reducing")
	cmd.Flags().StringSlice("setup", nil, "Restrict reduction to these setup ids")
	cmd.Flags().Bool("no-reuse", false, "Rebuild master frames even if they are stored")
	return cmd
}
