// Package diagnostic renders template issues as caret-style terminal
// diagnostics, pointing into the source line that holds the template.
package diagnostic

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/fmtstr/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// SourceCode holds the lines of the file an issue points into.
type SourceCode struct {
	Lines []string
}

// ReadSource loads a file for diagnostic rendering.
func ReadSource(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}

// Format renders all issues against the given source, one block per
// issue:
//
//	error: unclosed-arg
//	 --> main.go:14:18
//	  |
//	14 |     log("pid {pid")
//	  |              ^^^^ unclosed argument ...
func Format(issues []types.Issue, source *SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatHeader(issue))
		builder.WriteString(formatSnippet(issue, source))
	}
	return builder.String()
}

func formatHeader(issue types.Issue) string {
	return errorStyle.Sprint("error: ") + ruleStyle.Sprint(issue.Rule) + "\n" +
		lineStyle.Sprint(" --> ") +
		fileStyle.Sprintf("%s:%d:%d", issue.Filename, issue.Start.Line, issue.Start.Column) + "\n"
}

func formatSnippet(issue types.Issue, source *SourceCode) string {
	var result strings.Builder

	if issue.Start.Line < 1 || issue.Start.Line > len(source.Lines) {
		// position points outside the source we have; still report the message
		result.WriteString(messageStyle.Sprintf("  %s\n\n", issue.Message))
		return result.String()
	}

	lineNumber := fmt.Sprintf("%d", issue.Start.Line)
	padding := strings.Repeat(" ", len(lineNumber))

	raw := source.Lines[issue.Start.Line-1]
	line := expandTabs(raw)

	result.WriteString(lineStyle.Sprintf("%s |\n", padding))
	result.WriteString(lineStyle.Sprintf("%s | ", lineNumber))
	result.WriteString(line + "\n")

	visualColumn := visualColumn(raw, issue.Start.Column)
	result.WriteString(lineStyle.Sprintf("%s | ", padding))
	result.WriteString(strings.Repeat(" ", visualColumn))
	result.WriteString(messageStyle.Sprintf("%s %s\n\n", carets(issue), issue.Message))

	return result.String()
}

// carets underlines the offending span; at least one caret, and on a
// single line no wider than the offending text.
func carets(issue types.Issue) string {
	width := 1
	if issue.End.Line == issue.Start.Line && issue.End.Column > issue.Start.Column {
		width = issue.End.Column - issue.Start.Column
	}
	return strings.Repeat("^", width)
}

func expandTabs(line string) string {
	var expanded strings.Builder
	for i, ch := range line {
		if ch == '\t' {
			expanded.WriteString(strings.Repeat(" ", tabWidth-(i%tabWidth)))
		} else {
			expanded.WriteRune(ch)
		}
	}
	return expanded.String()
}

// visualColumn converts a 1-based byte column into a 0-based column in
// the tab-expanded line.
func visualColumn(line string, column int) int {
	visual := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visual += tabWidth - (visual % tabWidth)
		} else {
			visual++
		}
	}
	return visual
}
