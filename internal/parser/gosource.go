package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

var _ Parser = (*GoSourceParser)(nil)

// GoSourceParser extracts the text of function literals from Go source files.
// Parsed files are cached for the lifetime of the parser.
type GoSourceParser struct {
	mu    sync.Mutex
	files map[string]*sourceFile
}

type sourceFile struct {
	src  []byte
	fset *token.FileSet
	dec  *decorator.Decorator
	file *dst.File
	err  error
}

// NewGoSourceParser creates a new GoSourceParser
func NewGoSourceParser() *GoSourceParser {
	return &GoSourceParser{
		files: make(map[string]*sourceFile),
	}
}

// SourceOf returns the source text of the function literal fn.
// When the source file is unavailable it falls back to "file:line".
func (p *GoSourceParser) SourceOf(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<unknown>"
	}

	filename, line := f.FileLine(f.Entry())
	src, err := p.ExpressionSource(filename, line)
	if err != nil {
		return fmt.Sprintf("%s:%d", filename, line)
	}
	return src
}

// ExpressionSource returns the text of the first function literal starting on
// the given line. A body consisting of a single "return <expr>" yields just
// <expr>; any other body yields its statements, one per line.
func (p *GoSourceParser) ExpressionSource(filename string, line int) (string, error) {
	sf := p.load(filename)
	if sf.err != nil {
		return "", sf.err
	}

	var found *ast.FuncLit
	dst.Inspect(sf.file, func(n dst.Node) bool {
		if found != nil {
			return false
		}
		lit, ok := n.(*dst.FuncLit)
		if !ok {
			return true
		}
		astLit, ok := sf.dec.Ast.Nodes[lit].(*ast.FuncLit)
		if !ok {
			return true
		}
		if sf.fset.Position(astLit.Pos()).Line == line {
			found = astLit
			return false
		}
		return true
	})

	if found == nil {
		return "", fmt.Errorf("no function literal at %s:%d", filename, line)
	}

	return sf.literalText(found), nil
}

func (p *GoSourceParser) load(filename string) *sourceFile {
	p.mu.Lock()
	defer p.mu.Unlock()

	if sf, ok := p.files[filename]; ok {
		return sf
	}

	sf := &sourceFile{fset: token.NewFileSet()}
	sf.src, sf.err = os.ReadFile(filename)
	if sf.err != nil {
		sf.err = fmt.Errorf("error reading file %s: %w", filename, sf.err)
	} else {
		sf.dec = decorator.NewDecorator(sf.fset)
		sf.file, sf.err = sf.dec.ParseFile(filename, sf.src, goparser.ParseComments)
		if sf.err != nil {
			sf.err = fmt.Errorf("error parsing file %s: %w", filename, sf.err)
		}
	}

	p.files[filename] = sf
	return sf
}

func (sf *sourceFile) text(from, to token.Pos) string {
	start := sf.fset.Position(from).Offset
	end := sf.fset.Position(to).Offset
	if start < 0 || end > len(sf.src) || start > end {
		return ""
	}
	return string(sf.src[start:end])
}

func (sf *sourceFile) literalText(lit *ast.FuncLit) string {
	body := lit.Body
	if len(body.List) == 1 {
		if ret, ok := body.List[0].(*ast.ReturnStmt); ok && len(ret.Results) == 1 {
			return collapse(sf.text(ret.Results[0].Pos(), ret.Results[0].End()))
		}
	}
	return collapse(sf.text(body.Lbrace+1, body.Rbrace))
}

// collapse trims every line and drops blank ones. Continuation lines are
// tab-indented to line up under the first in failure reports.
func collapse(s string) string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n\t")
}
