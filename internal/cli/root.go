// Package cli provides the command-line interface for agentmux.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "agentmux",
	Short: "Coordinate multi-agent activations",
	Long: `agentmux activates a named list of agents under a coordination mode:

  sequential    activate agents one after another with the same input
  parallel      activate all agents at once
  chain         feed each agent's output into the next agent
  conversation  agents take turns in a shared conversation

Per-agent failures are collected, never fatal (except in chain mode, which
stops at the first failure), and every run ends with a success/failure
summary.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.agentmux.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".agentmux")
	}

	viper.SetEnvPrefix("AGENTMUX")
	viper.AutomaticEnv()

	viper.ReadInConfig()
}
