package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"charm.land/smartjson"
	"charm.land/smartjson/internal/jsonext"
	"github.com/spf13/cobra"
)

var errRejected = errors.New("proposed correction rejected")

type parseOptions struct {
	yes        bool
	fallback   bool
	schemaPath string
}

func newParseCmd(a *app) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document, proposing a correction if it is not valid JSON",
		Long: `Parse reads a document from file, or from standard input until the first
empty line, and prints it as compact JSON.

If the document is not valid JSON, smartjson inserts the punctuation it
believes is missing and asks whether to use the result. Nothing is printed
to standard output unless the document is valid or the correction accepted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "accept a proposed correction without asking")
	cmd.Flags().BoolVar(&opts.fallback, "fallback", false, "when correction fails, propose a general JSON repair instead")
	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "validate the result against this JSON Schema file")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string, opts *parseOptions) error {
	var schema []byte
	if opts.schemaPath != "" {
		var err error
		if schema, err = os.ReadFile(opts.schemaPath); err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}
	}

	in := bufio.NewReader(cmd.InOrStdin())
	stderr := cmd.ErrOrStderr()

	text, err := a.readInput(cmd, in, args)
	if err != nil {
		return err
	}

	res, err := a.parser.Parse(text)
	if err != nil {
		if !opts.fallback || !smartjson.IsCorrectionExhausted(err) {
			return err
		}
		a.logger.Warn("auto correction failed, trying general repair", "err", err)
		repaired, v, rerr := generalRepair(text)
		if rerr != nil {
			return errors.Join(err, rerr)
		}
		fmt.Fprintln(stderr, noteStyle.Render("Auto correction failed. A general repair may change structure, including brackets."))
		res = &smartjson.Result{Value: v, Text: repaired, State: smartjson.ParseStateCorrected}
	}

	if res.State == smartjson.ParseStateCorrected {
		ok, err := a.confirm(cmd, in, res, opts.yes)
		if err != nil {
			return err
		}
		if !ok {
			return errRejected
		}
	}

	if schema != nil {
		if err := smartjson.ValidateAgainstSchema(res.Value, schema); err != nil {
			return &smartjson.SchemaError{Text: res.Text, Err: err}
		}
	}

	out, err := jsonext.Compact(res.Value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func (a *app) readInput(cmd *cobra.Command, in *bufio.Reader, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	if isTerminal(cmd.InOrStdin()) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter the JSON body, then an empty line:")
	}
	return readDocument(in)
}

// confirm shows the corrected document and asks the user to accept it. The
// corrected value is never used without an explicit yes.
func (a *app) confirm(cmd *cobra.Command, in *bufio.Reader, res *smartjson.Result, yes bool) (bool, error) {
	proposal, err := jsonext.Compact(res.Value)
	if err != nil {
		return false, err
	}

	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "Invalid JSON format. Did you mean this instead?\n\n => %s\n", proposalStyle.Render(proposal))
	a.logger.Debug("proposed correction", "attempts", res.Attempts, "text", res.Text)

	if yes {
		return true, nil
	}

	fmt.Fprintf(w, "\n\t%s\n\t%s\n", yesStyle.Render("1: Yes"), noStyle.Render("2: No"))
	ok, err := askYesNo(in)
	if errors.Is(err, errNoAnswer) {
		return false, nil
	}
	return ok, err
}
