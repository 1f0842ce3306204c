package app

import (
	"errors"
	"fmt"
	"maps"
	"unicode/utf16"
	"unicode/utf8"
)

// PlaceholderKind classifies a template token.
type PlaceholderKind int

const (
	// Literal tokens pass through unchanged.
	Literal PlaceholderKind = iota
	// TargetPath (%0 %1 %l %L %d %D) is the normalized program path.
	TargetPath
	// AllArgs (%~ %*) is every invocation argument.
	AllArgs
	// PositionalArg (%2..%9) is a single invocation argument.
	PositionalArg
	// WorkingDirectory (%w %W) is the invocation or process working directory.
	WorkingDirectory
	// Unsupported is any other two-character %X code.
	Unsupported
)

func (k PlaceholderKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case TargetPath:
		return "target-path"
	case AllArgs:
		return "all-args"
	case PositionalArg:
		return "positional-arg"
	case WorkingDirectory:
		return "working-directory"
	case Unsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("PlaceholderKind(%d)", int(k))
	}
}

// Placeholder is a classified template token.
type Placeholder struct {
	Kind PlaceholderKind
	// Index is the argument position for PositionalArg.
	Index int
	// Designator is the character after '%' for placeholder kinds.
	Designator rune
	Token      string
}

// ParsePlaceholder classifies a single template token. Matching is exact and
// case-sensitive; "%1x" or "a%1" are literals. A placeholder is two UTF-16
// code units, so a designator outside the BMP makes the token a literal.
func ParsePlaceholder(token string) Placeholder {
	p := Placeholder{Kind: Literal, Token: token}
	if len(token) < 2 || token[0] != '%' {
		return p
	}
	d, size := utf8.DecodeRuneInString(token[1:])
	if 1+size != len(token) || utf16.RuneLen(d) != 1 {
		return p
	}
	p.Designator = d
	switch d {
	case '0', '1', 'l', 'L', 'd', 'D':
		p.Kind = TargetPath
	case '~', '*':
		p.Kind = AllArgs
	case '2', '3', '4', '5', '6', '7', '8', '9':
		p.Kind = PositionalArg
		p.Index = int(d - '2')
	case 'w', 'W':
		p.Kind = WorkingDirectory
	default:
		p.Kind = Unsupported
	}
	return p
}

// Expander substitutes placeholder tokens against an Invocation.
type Expander struct {
	Normalizer PathNormalizer
	Getwd      WorkingDir
	Logger     Logger
}

// NewExpander creates an Expander with the filesystem normalizer and the
// process working directory.
func NewExpander(logger Logger) *Expander {
	return &Expander{
		Normalizer: FSNormalizer{},
		Getwd:      DefaultWorkingDir,
		Logger:     logger,
	}
}

// ExpandToken returns the values a single token contributes, which may be
// none, one or many.
func (e *Expander) ExpandToken(token string, inv Invocation) ([]string, error) {
	p := ParsePlaceholder(token)
	switch p.Kind {
	case TargetPath:
		path, err := e.normalizer().Normalize(inv.Program)
		if err != nil {
			if !errors.Is(err, ErrNormalization) {
				err = &NormalizationError{Path: inv.Program, Err: err}
			}
			return nil, err
		}
		return []string{path}, nil
	case AllArgs:
		return append([]string(nil), inv.Args...), nil
	case PositionalArg:
		if p.Index < len(inv.Args) {
			return []string{inv.Args[p.Index]}, nil
		}
		return nil, nil
	case WorkingDirectory:
		if inv.Dir != "" {
			return []string{inv.Dir}, nil
		}
		getwd := e.Getwd
		if getwd == nil {
			getwd = DefaultWorkingDir
		}
		dir, err := getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		return []string{dir}, nil
	case Unsupported:
		return nil, &UnsupportedPlaceholderError{Designator: p.Designator}
	default:
		return []string{token}, nil
	}
}

// Expand builds a ResolvedCommand from tokenized template tokens. The first
// token's expansion supplies the program; any further values it yields are
// placed ahead of the remaining tokens' expansions.
func (e *Expander) Expand(tokens []string, inv Invocation) (*ResolvedCommand, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyTemplate
	}

	program, err := e.expandLogged(tokens[0], inv)
	if err != nil {
		return nil, err
	}
	if len(program) == 0 {
		return nil, fmt.Errorf("%w: program token %q expanded to nothing", ErrEmptyTemplate, tokens[0])
	}

	argv := program
	for _, token := range tokens[1:] {
		values, err := e.expandLogged(token, inv)
		if err != nil {
			return nil, err
		}
		argv = append(argv, values...)
	}

	cmd := &ResolvedCommand{
		Program: argv[0],
		Args:    argv[1:],
		Dir:     inv.Dir,
	}
	if len(inv.Env) > 0 {
		cmd.Env = maps.Clone(inv.Env)
	}
	return cmd, nil
}

func (e *Expander) expandLogged(token string, inv Invocation) ([]string, error) {
	values, err := e.ExpandToken(token, inv)
	if err != nil {
		return nil, err
	}
	if e.Logger != nil && ParsePlaceholder(token).Kind != Literal {
		e.Logger.Debug("expanded placeholder", "token", token, "values", values)
	}
	return values, nil
}

func (e *Expander) normalizer() PathNormalizer {
	if e.Normalizer == nil {
		return FSNormalizer{}
	}
	return e.Normalizer
}
