package main

import (
	"fmt"

	"github.com/geange/fsa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var matchCmd = &cobra.Command{
	Use:   "match <ast.json> <input>...",
	Short: "Match inputs against an automaton",
	Long:  "Compile the AST in the given JSON file up to the selected stage and report, for every input, whether it is accepted.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().Bool("end", false, "Append the end-of-input marker to every input")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	stage := viper.GetString("stage")
	if err := validStage(stage); err != nil {
		return err
	}
	end, _ := cmd.Flags().GetBool("end")

	n, err := readAST(args[0])
	if err != nil {
		return err
	}
	a, err := compile(n, stage)
	if err != nil {
		return err
	}

	accepts := a.Accepts
	if a.IsDeterministic() {
		ra, err := fsa.NewRunAutomaton(a)
		if err != nil {
			return err
		}
		accepts = ra.Run
	}

	out := cmd.OutOrStdout()
	for _, input := range args[1:] {
		syms := []rune(input)
		if end {
			syms = append(syms, endMarker)
		}
		verdict := "reject"
		if accepts(syms) {
			verdict = "accept"
		}
		fmt.Fprintf(out, "%s\t%s\n", input, verdict)
	}
	return nil
}
