package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"cparse/config"
	"cparse/internal/adapter/store"
)

var (
	lookupName string
	lookupJSON bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find cataloged files declaring a function",
	Long: `Search the catalog built by 'cparse index' for files that declare
or define a function with the given name.

Examples:
  cparse lookup -n main
  cparse lookup -n sum --json`,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVarP(&lookupName, "name", "n", "", "function name (required)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
	lookupCmd.MarkFlagRequired("name")
}

type lookupResult struct {
	Path      string `json:"path"`
	Signature string `json:"signature"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	rootDir := GetRootDir()

	dbPath := config.CatalogDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no catalog found. Run 'cparse index' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer st.Close()

	fileIDs, err := st.FilesForName(lookupName)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	var results []lookupResult
	for _, id := range fileIDs {
		entry, err := st.GetFile(id)
		if err != nil {
			continue
		}
		functions, err := st.GetFunctions(id)
		if err != nil {
			continue
		}
		for _, fn := range functions {
			if fn.Name == lookupName {
				results = append(results, lookupResult{
					Path:      entry.Path,
					Signature: fn.Signature(),
				})
			}
		}
	}

	if lookupJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(results) == 0 {
		fmt.Printf("No cataloged function named %q.\n", lookupName)
		return nil
	}
	for _, r := range results {
		fmt.Printf("%s: %s\n", r.Path, r.Signature)
	}
	return nil
}
