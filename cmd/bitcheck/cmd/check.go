package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexhholmes/bitcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Validate bit-packed record layouts",
	Long: "Validate every @bitfield record in the given files or directories.\n" +
		"Exits non-zero if any record is rejected, so it can gate a build from\n" +
		"go:generate or CI. Defaults to the current directory.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("write-guards", false, "emit <file>_bitcheck.go guard files next to validated sources")
	viper.BindPFlag("write_guards", checkCmd.Flags().Lookup("write-guards"))

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	report, err := bitcheck.Check(paths, bitcheck.Options{
		Strategy:    viper.GetString("strategy"),
		WriteGuards: viper.GetBool("write_guards"),
		Concurrency: viper.GetInt("concurrency"),
	})
	if err != nil {
		return err
	}

	for _, o := range report.Outcomes {
		if o.Accepted {
			fmt.Printf("ok   %s %s (%d bits)\n", o.File, o.Record, o.Total)
		} else {
			fmt.Printf("FAIL %s %s: %s\n", o.File, o.Record, o.Diagnostic)
		}
	}

	if report.Failed() {
		return fmt.Errorf("%d of %d records rejected", report.Rejected(), len(report.Outcomes))
	}

	if len(report.Outcomes) == 0 {
		fmt.Println("No @bitfield records found")
	}

	return nil
}
