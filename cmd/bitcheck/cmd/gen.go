package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/bitcheck/internal/codegen"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Regenerate the width specifier catalog",
	Long:  "Regenerate bits/specifiers.go, the closed B0..B64 specifier catalog.",
	RunE:  runGen,
}

var genOut string

func init() {
	genCmd.Flags().StringVar(&genOut, "out", "bits/specifiers.go", "output path")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	src, err := codegen.GenerateSpecifiers()
	if err != nil {
		return err
	}

	if err := os.WriteFile(genOut, src, 0o644); err != nil {
		return fmt.Errorf("write specifiers: %w", err)
	}

	fmt.Printf("wrote %s\n", genOut)
	return nil
}
