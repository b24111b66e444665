package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"cparse/internal/adapter/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Compile and execute a source file",
	Long: `Compile the source file with the configured compiler and execute
the resulting binary, printing its standard output. The binary is built at a
unique temporary path and removed afterwards.

Examples:
  cparse run main.c`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	gcc := runner.NewGccRunner(
		cfg.Compile.Compiler,
		cfg.Compile.Flags,
		time.Duration(cfg.Compile.TimeoutSeconds)*time.Second,
	)

	result, err := gcc.Run(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	if !result.Ok() {
		if result.Stderr != "" {
			fmt.Print(result.Stderr)
		}
		return fmt.Errorf("%s failed with exit code %d", args[0], result.ExitCode)
	}

	fmt.Print(result.Stdout)
	return nil
}
