// Package rxsyntax compiles a standard regexp pattern, as parsed by
// the standard library's regexp/syntax, into an ast.Rx term: the
// stdlib parses the text, this package's compiler walks the tree.
//
// Anchors, word boundaries, and backreferences have no meaning in a
// pure language-set algebra and are rejected with ErrUnsupported.
// Capture groups are accepted but have no effect: submatch extraction
// is the only thing a capture group would otherwise be for, and this
// algebra has no submatch concept.
package rxsyntax

import (
	"fmt"
	"regexp/syntax"

	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/letterset"
)

// Parse compiles pattern using syntax.Perl grammar into an ast.Rx, per
// DefaultConfig's recursion budget.
func Parse(pattern string) (ast.Rx, error) {
	return ParseConfig(pattern, DefaultConfig())
}

// ParseConfig compiles pattern with an explicit Config.
func ParseConfig(pattern string, cfg Config) (ast.Rx, error) {
	if cfg.MaxRecursionDepth == 0 {
		cfg = DefaultConfig()
	}
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return ast.Rx{}, &ParseError{Pattern: pattern, Err: err}
	}
	p := &parser{config: cfg}
	r, err := p.compile(re)
	if err != nil {
		return ast.Rx{}, &ParseError{Pattern: pattern, Err: err}
	}
	return r, nil
}

type parser struct {
	config Config
	depth  int
}

func (p *parser) compile(re *syntax.Regexp) (ast.Rx, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.config.MaxRecursionDepth {
		return ast.Rx{}, ErrTooComplex
	}

	switch re.Op {
	case syntax.OpEmptyMatch:
		return ast.Empty(), nil
	case syntax.OpNoMatch:
		return ast.Phi(), nil
	case syntax.OpLiteral:
		return p.compileLiteral(re)
	case syntax.OpCharClass:
		return p.compileCharClass(re.Rune)
	case syntax.OpAnyChar:
		return ast.Letters(letterset.Full), nil
	case syntax.OpAnyCharNotNL:
		return ast.Letters(letterset.Full.Diff(letterset.Single('\n'))), nil
	case syntax.OpConcat:
		return p.compileConcat(re.Sub)
	case syntax.OpAlternate:
		return p.compileAlternate(re.Sub)
	case syntax.OpStar:
		sub, err := p.compile(re.Sub[0])
		if err != nil {
			return ast.Rx{}, err
		}
		return ast.Star(sub), nil
	case syntax.OpPlus:
		sub, err := p.compile(re.Sub[0])
		if err != nil {
			return ast.Rx{}, err
		}
		return ast.Concat(sub, ast.Star(sub)), nil
	case syntax.OpQuest:
		sub, err := p.compile(re.Sub[0])
		if err != nil {
			return ast.Rx{}, err
		}
		return ast.Choice(ast.Empty(), sub), nil
	case syntax.OpRepeat:
		return p.compileRepeat(re)
	case syntax.OpCapture:
		return p.compile(re.Sub[0])
	default:
		return ast.Rx{}, &unsupportedOp{op: opName(re.Op)}
	}
}

func (p *parser) compileLiteral(re *syntax.Regexp) (ast.Rx, error) {
	if len(re.Rune) == 0 {
		return ast.Empty(), nil
	}
	fold := re.Flags&syntax.FoldCase != 0
	r := ast.Empty()
	for _, c := range re.Rune {
		r = ast.Concat(r, literalRune(c, fold))
	}
	return r, nil
}

func literalRune(c rune, fold bool) ast.Rx {
	if fold && isASCIILetter(c) {
		return ast.Letters(letterset.New(
			letterset.Range{Lo: toUpperASCII(c), Hi: toUpperASCII(c)},
			letterset.Range{Lo: toLowerASCII(c), Hi: toLowerASCII(c)},
		))
	}
	return ast.Letter(c)
}

func isASCIILetter(c rune) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func toUpperASCII(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLowerASCII(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (p *parser) compileCharClass(runes []rune) (ast.Rx, error) {
	ranges := make([]letterset.Range, 0, len(runes)/2)
	for i := 0; i+1 < len(runes); i += 2 {
		ranges = append(ranges, letterset.Range{Lo: runes[i], Hi: runes[i+1]})
	}
	return ast.Letters(letterset.New(ranges...)), nil
}

func (p *parser) compileConcat(subs []*syntax.Regexp) (ast.Rx, error) {
	r := ast.Empty()
	for _, sub := range subs {
		c, err := p.compile(sub)
		if err != nil {
			return ast.Rx{}, err
		}
		r = ast.Concat(r, c)
	}
	return r, nil
}

func (p *parser) compileAlternate(subs []*syntax.Regexp) (ast.Rx, error) {
	r := ast.Phi()
	for _, sub := range subs {
		c, err := p.compile(sub)
		if err != nil {
			return ast.Rx{}, err
		}
		r = ast.Choice(r, c)
	}
	return r, nil
}

func (p *parser) compileRepeat(re *syntax.Regexp) (ast.Rx, error) {
	sub, err := p.compile(re.Sub[0])
	if err != nil {
		return ast.Rx{}, err
	}
	if re.Max < 0 {
		// {n,}: n copies followed by unbounded repetition. ast.Repeat
		// only models bounded ranges, so the unbounded tail is built
		// directly from Star.
		return ast.Concat(ast.Pow(sub, re.Min), ast.Star(sub)), nil
	}
	r, err := ast.Repeat(sub, re.Min, re.Max)
	if err != nil {
		return ast.Rx{}, err
	}
	return r, nil
}

func opName(op syntax.Op) string {
	switch op {
	case syntax.OpBeginLine:
		return "^ (begin-line anchor)"
	case syntax.OpEndLine:
		return "$ (end-line anchor)"
	case syntax.OpBeginText:
		return `\A (begin-text anchor)`
	case syntax.OpEndText:
		return `\z (end-text anchor)`
	case syntax.OpWordBoundary:
		return `\b (word boundary)`
	case syntax.OpNoWordBoundary:
		return `\B (non-word-boundary)`
	default:
		return fmt.Sprintf("syntax.Op(%d)", op)
	}
}
