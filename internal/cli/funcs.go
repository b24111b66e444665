package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"cparse/internal/adapter/fs"
	"cparse/internal/usecase"
)

var funcsJSON bool

var funcsCmd = &cobra.Command{
	Use:   "funcs <file>",
	Short: "List function signatures in a source file",
	Long: `Scan a source file for function prototypes and definitions and list
their parsed signatures in source order. A prototype and its definition both
appear.

Examples:
  cparse funcs main.c
  cparse funcs main.c --json`,
	Args: cobra.ExactArgs(1),
	RunE: runFuncs,
}

func init() {
	rootCmd.AddCommand(funcsCmd)
	funcsCmd.Flags().BoolVar(&funcsJSON, "json", false, "output as JSON")
}

func runFuncs(cmd *cobra.Command, args []string) error {
	scanUC := usecase.NewScanUseCase(fs.NewReader())

	functions, err := scanUC.Functions(args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if funcsJSON {
		output, _ := json.MarshalIndent(functions, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(functions) == 0 {
		fmt.Println("No functions found.")
		return nil
	}
	for _, fn := range functions {
		fmt.Println(fn.Signature())
	}
	return nil
}
