package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/imgcatalog/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize imgcatalog configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the catalog and writes the config file (see --config).`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("defaults", false, "write the default configuration without prompting")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(cfgFile); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	}

	useDefaults, _ := cmd.Flags().GetBool("defaults")
	if !useDefaults {
		_, err := config.RunWizard(cfgFile)
		return err
	}

	if err := config.DefaultConfig().Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("Configuration saved to %s\n", cfgFile)
	return nil
}
