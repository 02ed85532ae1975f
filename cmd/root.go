package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/imgcatalog/internal/config"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "imgcatalog",
	Short: "Static HTML catalog of image folders with click-to-copy names",
	Long: `imgcatalog scans an image folder, groups the images by the directory
they live in, and writes a single self-contained HTML page with one tab per
folder. Clicking an image copies its name to the clipboard so it can be
pasted as a command elsewhere.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
}
