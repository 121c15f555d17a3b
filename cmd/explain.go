package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnolang/fmtstr"
	"github.com/gnolang/fmtstr/internal/diagnostic"
	"github.com/gnolang/fmtstr/internal/types"
)

var explainJSONOutput bool

var explainCmd = &cobra.Command{
	Use:   "explain <template>",
	Short: "Parse a template and print its component breakdown",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]

		fs, err := fmtstr.Parse(input)
		if err != nil {
			printParseError(input, err)
			os.Exit(1)
		}

		if explainJSONOutput {
			printComponentsJSON(fs)
			return
		}
		fmt.Print(explainString(fs))
	},
}

func init() {
	explainCmd.Flags().BoolVar(&explainJSONOutput, "json", false, "Output the breakdown in JSON format")
}

func explainString(fs *fmtstr.FormatStr) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%d component(s), %d argument(s)\n", fs.Len(), fs.NumArgs())
	for i, c := range fs.Components() {
		if c.Kind == fmtstr.ComponentLiteral {
			fmt.Fprintf(&builder, "%3d: literal %q\n", i, c.Text)
			continue
		}
		sel := c.Arg.Selector
		desc := sel.Kind.String()
		if s := sel.String(); s != "" {
			desc += " " + s
		}
		fmt.Fprintf(&builder, "%3d: argument %s, %s", i, desc, c.Arg.Flags.Mode)
		if c.Arg.Flags.Alternate {
			builder.WriteString(", alternate")
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func printComponentsJSON(fs *fmtstr.FormatStr) {
	type jsonComponent struct {
		Kind      string `json:"kind"`
		Text      string `json:"text,omitempty"`
		Selector  string `json:"selector,omitempty"`
		Index     uint64 `json:"index,omitempty"`
		Name      string `json:"name,omitempty"`
		Mode      string `json:"mode,omitempty"`
		Alternate bool   `json:"alternate,omitempty"`
	}

	var out []jsonComponent
	for _, c := range fs.Components() {
		if c.Kind == fmtstr.ComponentLiteral {
			out = append(out, jsonComponent{Kind: "literal", Text: c.Text})
			continue
		}
		out = append(out, jsonComponent{
			Kind:      "argument",
			Selector:  c.Arg.Selector.Kind.String(),
			Index:     c.Arg.Selector.Index,
			Name:      c.Arg.Selector.Name,
			Mode:      c.Arg.Flags.Mode.String(),
			Alternate: c.Arg.Flags.Alternate,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(out)
}

// printParseError renders a parse error against the template text
// itself, with the template standing in as a one-line source file.
func printParseError(input string, err error) {
	var pe *fmtstr.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	issue := types.Issue{
		Rule:      pe.Kind.String(),
		Filename:  "<template>",
		Message:   pe.Error(),
		Offending: pe.What,
		Start:     token.Position{Line: 1, Column: pe.Pos + 1},
		End:       token.Position{Line: 1, Column: pe.Pos + 1 + max(len(pe.What), 1)},
	}
	source := &diagnostic.SourceCode{Lines: []string{input}}
	fmt.Fprint(os.Stderr, diagnostic.Format([]types.Issue{issue}, source))
}
