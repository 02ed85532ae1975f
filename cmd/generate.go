package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/imgcatalog/internal/catalog"
	"github.com/ziadkadry99/imgcatalog/internal/progress"
	"github.com/ziadkadry99/imgcatalog/internal/scanner"
)

// defaultOutputDir is where catalogs are written unless --output says otherwise.
const defaultOutputDir = "clipboards"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan the image folder and write the HTML catalog",
	Long: `Scans the configured image folder, groups images by directory and writes
one HTML catalog into the output directory. The output directory must exist.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("output", defaultOutputDir, "directory the catalog is written to")
	generateCmd.Flags().Bool("dry-run", false, "scan and report without writing the catalog")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	opts, err := catalogOptions(cfg)
	if err != nil {
		return err
	}

	// Scan the image tree.
	reporter := progress.NewReporter(quiet)
	reporter.Start(-1)
	s := scanner.New(scanner.Options{
		Extensions: cfg.Image.Extensions,
		Exclude:    cfg.Image.Exclude,
		OnDir: func(folder string, scanned int) {
			reporter.Update(scanned, folder)
		},
	})
	grouping, err := s.Scan(cfg.Image.Folder)
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.Image.Folder, err)
	}

	for _, folder := range grouping.Folders() {
		logf("  %s: %d images\n", folder, len(grouping.Images(folder)))
	}

	if dryRun {
		fmt.Printf("Found %d images in %d folders (dry run, nothing written)\n", grouping.Count(), grouping.Len())
		return nil
	}

	// Render with paths relative to the catalog's own directory.
	rebased, err := catalog.Rebase(grouping, outputDir)
	if err != nil {
		return err
	}
	doc, err := catalog.Render(rebased, opts)
	if err != nil {
		return fmt.Errorf("rendering catalog: %w", err)
	}

	outPath := filepath.Join(outputDir, cfg.OutputFileName())
	if err := catalog.WriteFile(outPath, doc); err != nil {
		return err
	}

	fmt.Printf("Catalog generated: %s (%d folders, %d images, %s) in %s\n",
		outPath, grouping.Len(), grouping.Count(),
		humanize.Bytes(uint64(len(doc))), time.Since(start).Round(time.Millisecond))
	return nil
}
