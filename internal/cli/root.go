package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"cparse/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "cparse",
	Short: "Structural extractor for C source files",
	Long: `cparse locates function signatures in C source text, extracts
function bodies by balanced-brace scanning and lists the local variable
declarations inside a body.

Example usage:
  cparse funcs main.c            # List function signatures
  cparse vars main.c -f main     # List variables declared in main()
  cparse check main.c            # Compile and verify conventions
  cparse index .                 # Catalog every C file in a directory`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cparse.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
