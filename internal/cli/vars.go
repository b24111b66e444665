package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"cparse/internal/adapter/fs"
	"cparse/internal/usecase"
)

var (
	varsFunc string
	varsJSON bool
)

var varsCmd = &cobra.Command{
	Use:   "vars <file>",
	Short: "List local variable declarations in a function body",
	Long: `Extract a function's body and list the local variable declarations
of primitive types found in it. Initializers that are call expressions are
reported with their callee.

Examples:
  cparse vars main.c -f main
  cparse vars main.c -f main --json`,
	Args: cobra.ExactArgs(1),
	RunE: runVars,
}

func init() {
	rootCmd.AddCommand(varsCmd)
	varsCmd.Flags().StringVarP(&varsFunc, "func", "f", "", "function name (required)")
	varsCmd.Flags().BoolVar(&varsJSON, "json", false, "output as JSON")
	varsCmd.MarkFlagRequired("func")
}

func runVars(cmd *cobra.Command, args []string) error {
	scanUC := usecase.NewScanUseCase(fs.NewReader())

	vars, err := scanUC.Variables(args[0], varsFunc)
	if err != nil {
		return fmt.Errorf("variable extraction failed: %w", err)
	}

	if varsJSON {
		output, _ := json.MarshalIndent(vars, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(vars) == 0 {
		fmt.Println("No variable declarations found.")
		return nil
	}
	for _, v := range vars {
		switch {
		case v.Call != nil:
			fmt.Printf("%s %s = call %s(%d args)\n", v.DataType, v.Name, v.Call.Callee, len(v.Call.Args))
		case v.HasValue:
			fmt.Printf("%s %s = %s\n", v.DataType, v.Name, v.Value)
		default:
			fmt.Printf("%s %s\n", v.DataType, v.Name)
		}
	}
	return nil
}
