package main

import (
	"log/slog"
	"os"

	"github.com/geange/fsa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "fsa",
	Short: "Finite automata toolkit",
	Long:  "fsa compiles regular-expression trees given as JSON into automata, renders them as DOT and matches inputs against them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		fsa.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("stage", "min", "Pipeline stage: nfa, eps, dfa or min")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline statistics")

	_ = viper.BindPFlag("stage", rootCmd.PersistentFlags().Lookup("stage"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("FSA")
	viper.AutomaticEnv()
}
