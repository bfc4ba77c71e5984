package main

import (
	"github.com/geange/fsa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dotCmd = &cobra.Command{
	Use:   "dot <ast.json>",
	Short: "Render an automaton as DOT",
	Long:  "Compile the AST in the given JSON file up to the selected stage and print the automaton in the Graphviz DOT language.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDot,
}

func init() {
	dotCmd.Flags().String("name", "fsa", "Graph name")

	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, args []string) error {
	stage := viper.GetString("stage")
	if err := validStage(stage); err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")

	n, err := readAST(args[0])
	if err != nil {
		return err
	}
	a, err := compile(n, stage)
	if err != nil {
		return err
	}

	w := fsa.DotWriter[int, label]{
		Name:      name,
		LabelName: fsa.RuneLabel[rune],
	}
	return w.Write(cmd.OutOrStdout(), a)
}
