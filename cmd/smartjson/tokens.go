package main

import (
	"bufio"
	"fmt"

	"charm.land/smartjson"
	"charm.land/smartjson/internal/jsonext"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Show how a document is tokenized and what one correction pass does",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, bufio.NewReader(cmd.InOrStdin()), args)
			if err != nil {
				return err
			}
			return a.printTokens(cmd, text)
		},
	}
}

func (a *app) printTokens(cmd *cobra.Command, text string) error {
	w := cmd.OutOrStdout()
	tokens := a.parser.Tokenize(text)

	var stack smartjson.ValidationStack
	var inconsistencies []error
	for i, t := range tokens {
		if err := stack.Push(t); err != nil {
			inconsistencies = append(inconsistencies, err)
		}
		fmt.Fprintf(w, "%4d  %s\n", i, t)
	}

	for _, err := range inconsistencies {
		fmt.Fprintf(w, "inconsistency: %v\n", err)
	}

	corrected := smartjson.CorrectPass(tokens)
	rendered := smartjson.Render(corrected)
	fmt.Fprintf(w, "inserted: %d\n", len(corrected)-len(tokens))
	fmt.Fprintf(w, "rendered: %s\n", rendered)
	_, err := fmt.Fprintf(w, "valid: %t\n", jsonext.IsValid(rendered))
	return err
}
