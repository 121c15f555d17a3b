// Package check scans Go source files for format templates and reports
// the ones that fail to parse, with positions mapped back into the
// source file.
//
// Two kinds of templates are recognized: string-literal first arguments
// of configured call targets (fmtstr.Parse and fmtstr.MustParse by
// default), and string constants or variables annotated with a
// "fmtstr:check" comment.
package check

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/fmtstr"
	"github.com/gnolang/fmtstr/internal/types"
)

// checkMarker annotates const/var declarations whose string values are
// format templates.
const checkMarker = "fmtstr:check"

// Config is the yaml configuration (.fmtstr.yaml).
type Config struct {
	Name    string   `yaml:"name"`
	Targets []string `yaml:"targets"`
}

// DefaultTargets are the call targets checked when no configuration
// names any.
var DefaultTargets = []string{"fmtstr.Parse", "fmtstr.MustParse"}

// Engine checks files for invalid format templates.
type Engine struct {
	targets map[string]bool
	ident   fmtstr.IdentFunc
}

// New builds an engine from the configuration file at the given path.
// An empty path or a missing file yields the default configuration.
func New(configurationPath string) (*Engine, error) {
	engine := &Engine{
		targets: make(map[string]bool),
		ident:   fmtstr.GoIdent,
	}

	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	targets := config.Targets
	if len(targets) == 0 {
		targets = DefaultTargets
	}
	for _, target := range targets {
		engine.targets[target] = true
	}
	return engine, nil
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}
	return config, nil
}

// AddTarget registers another qualified call name (e.g. "log.Infof")
// whose first string-literal argument is a template.
func (e *Engine) AddTarget(name string) {
	e.targets[name] = true
}

// Run checks a single file.
func (e *Engine) Run(filePath string) ([]types.Issue, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filePath, err)
	}
	return e.check(filePath, src)
}

// RunSource checks in-memory source.
func (e *Engine) RunSource(source []byte) ([]types.Issue, error) {
	return e.check("source.go", source)
}

func (e *Engine) check(filename string, src []byte) ([]types.Issue, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	var issues []types.Issue

	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		if !e.targets[calleeName(call)] {
			return true
		}
		if lit, ok := call.Args[0].(*ast.BasicLit); ok && lit.Kind == token.STRING {
			issues = append(issues, e.checkLiteral(fset, filename, lit)...)
		}
		return true
	})

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || (gen.Tok != token.CONST && gen.Tok != token.VAR) {
			continue
		}
		declMarked := hasMarker(gen.Doc)
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if !declMarked && !hasMarker(vs.Doc) && !hasMarker(vs.Comment) {
				continue
			}
			for _, value := range vs.Values {
				if lit, ok := value.(*ast.BasicLit); ok && lit.Kind == token.STRING {
					issues = append(issues, e.checkLiteral(fset, filename, lit)...)
				}
			}
		}
	}

	return issues, nil
}

// checkLiteral parses the template held by one string literal and maps
// any parse error back to a file position.
func (e *Engine) checkLiteral(fset *token.FileSet, filename string, lit *ast.BasicLit) []types.Issue {
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		// not a template problem; the Go parser will have complained
		return nil
	}

	_, err = fmtstr.ParseWith(value, e.ident)
	if err == nil {
		return nil
	}
	var pe *fmtstr.ParseError
	if !errors.As(err, &pe) {
		return nil
	}

	offset := literalOffset(lit.Value, pe.Pos)
	start := fset.Position(lit.Pos() + token.Pos(offset))
	end := start
	if width := len(pe.What); width > 0 {
		end.Column += width
	} else {
		end.Column++
	}

	return []types.Issue{{
		Rule:      pe.Kind.String(),
		Filename:  filename,
		Message:   pe.Error(),
		Offending: pe.What,
		Start:     start,
		End:       end,
	}}
}

func calleeName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		if pkg, ok := fun.X.(*ast.Ident); ok {
			return pkg.Name + "." + fun.Sel.Name
		}
	}
	return ""
}

func hasMarker(group *ast.CommentGroup) bool {
	if group == nil {
		return false
	}
	for _, comment := range group.List {
		if comment.Text == "//"+checkMarker || comment.Text == "// "+checkMarker {
			return true
		}
	}
	return false
}

// literalOffset converts a byte offset into the unquoted string value
// into a byte offset into the quoted source literal (including its
// opening quote).
func literalOffset(quoted string, valueOffset int) int {
	if len(quoted) > 0 && quoted[0] == '`' {
		// raw strings decode byte for byte
		return 1 + valueOffset
	}

	decoded := 0
	rest := quoted[1 : len(quoted)-1]
	pos := 1
	for rest != "" && decoded < valueOffset {
		r, multibyte, tail, err := strconv.UnquoteChar(rest, '"')
		if err != nil {
			break
		}
		if multibyte {
			decoded += utf8.RuneLen(r)
		} else {
			decoded++
		}
		pos += len(rest) - len(tail)
		rest = tail
	}
	return pos
}
