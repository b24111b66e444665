package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"cparse/internal/adapter/fs"
	"cparse/internal/usecase"
)

var bodyFunc string

var bodyCmd = &cobra.Command{
	Use:   "body <file>",
	Short: "Print the body of a function definition",
	Long: `Locate a function's definition by its cataloged signature and print
the statement lines of its body, one per line.

Examples:
  cparse body main.c -f main
  cparse body math.c -f sum`,
	Args: cobra.ExactArgs(1),
	RunE: runBody,
}

func init() {
	rootCmd.AddCommand(bodyCmd)
	bodyCmd.Flags().StringVarP(&bodyFunc, "func", "f", "", "function name (required)")
	bodyCmd.MarkFlagRequired("func")
}

func runBody(cmd *cobra.Command, args []string) error {
	scanUC := usecase.NewScanUseCase(fs.NewReader())

	body, err := scanUC.Body(args[0], bodyFunc)
	if err != nil {
		return fmt.Errorf("body extraction failed: %w", err)
	}

	for _, line := range body {
		fmt.Println(line)
	}
	return nil
}
