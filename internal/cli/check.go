package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"cparse/internal/adapter/fs"
	"cparse/internal/adapter/runner"
	"cparse/internal/usecase"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Compile a source file and verify project conventions",
	Long: `Compile the source file and, on success, verify that the entry
function's body ends with the required statement (by default "return 0;"
at the end of main).

Examples:
  cparse check main.c`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	gcc := runner.NewGccRunner(
		cfg.Compile.Compiler,
		cfg.Compile.Flags,
		time.Duration(cfg.Compile.TimeoutSeconds)*time.Second,
	)
	checkUC := usecase.NewCheckUseCase(fs.NewReader(), gcc, cfg.Check.Entry, cfg.Check.RequiredFinal)

	result, err := checkUC.Check(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if !result.Passed {
		fmt.Println(result.Reason)
		if result.CompilerOutput != "" {
			fmt.Println(result.CompilerOutput)
		}
		return fmt.Errorf("%s did not pass checks", args[0])
	}

	fmt.Printf("%s passed all checks\n", args[0])
	return nil
}
