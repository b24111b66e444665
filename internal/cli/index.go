package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"cparse/config"
	"cparse/internal/adapter/fs"
	"cparse/internal/adapter/store"
	"cparse/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Catalog every C source file under a directory",
	Long: `Walk the directory, parse the function signatures of every matched
source file and store the catalog in .cparse/catalog.db within the target
directory. Unchanged files are skipped on later runs.

Examples:
  cparse index .                 # Catalog current directory
  cparse index /path/to/project  # Catalog specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	if err := config.EnsureCparseDir(path); err != nil {
		return fmt.Errorf("failed to create .cparse directory: %w", err)
	}

	dbPath := config.CatalogDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}
	defer st.Close()

	cleared, err := st.EnsureSchema()
	if err != nil {
		return fmt.Errorf("failed to check catalog schema: %w", err)
	}
	if cleared {
		fmt.Println("Catalog schema changed, rebuilding from scratch...")
	}

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	indexUC := usecase.NewIndexUseCase(st, walker, fs.NewReader())

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var initialized bool

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if total == 0 {
			return
		}
		if !initialized {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Cataloging[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}
		bar.Set(processed)
	}

	result, err := indexUC.Index(path, progress)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Printf("\nCataloging complete:\n")
	fmt.Printf("  Files indexed:   %d\n", result.FilesIndexed)
	fmt.Printf("  Files skipped:   %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Files deleted:   %d (removed)\n", result.FilesDeleted)
	fmt.Printf("  Functions found: %d\n", result.FunctionsFound)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nCatalog stored at: %s\n", dbPath)
	return nil
}
