package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/vitesetup/internal/app"
	"github.com/tacogips/vitesetup/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the vitesetup configuration file",
	Long: `Manage the configuration file.

Settings are read from the config file and then from VITESETUP_* environment
variables (for example VITESETUP_INSTALLER_PACKAGE_MANAGER=pnpm).`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to the config path.

Examples:
  vitesetup config init
  vitesetup config init --force
  vitesetup --config ./vitesetup.toml config init`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, FlagForce, "f", false, DescForce)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := app.InitConfig(app.ConfigInitOptions{
		Path:  globalConfigPath,
		Force: configInitForce,
	})
	if err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
