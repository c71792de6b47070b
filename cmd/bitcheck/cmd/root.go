package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/alexhholmes/bitcheck"
)

var rootCmd = &cobra.Command{
	Use:   "bitcheck",
	Short: "Build-time layout validator for bit-packed records",
	Long: "Validates that every @bitfield record's field widths sum to a whole\n" +
		"number of bytes, and fails the build when they do not.",
	PersistentPreRunE: setupLogger,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: .bitcheck.yaml)")
	rootCmd.PersistentFlags().String("strategy", "", "gate backend: capability or index (default: capability)")
	rootCmd.PersistentFlags().Int("concurrency", 0, "max files validated in parallel")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	viper.BindPFlag("strategy", rootCmd.PersistentFlags().Lookup("strategy"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".bitcheck")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BITCHECK")
	viper.AutomaticEnv()
	viper.SetDefault("strategy", "capability")
	viper.SetDefault("concurrency", bitcheck.DefaultConcurrency)

	viper.ReadInConfig()
}

func setupLogger(cmd *cobra.Command, args []string) error {
	if !viper.GetBool("verbose") {
		return nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	bitcheck.SetLogger(logger)
	return nil
}
