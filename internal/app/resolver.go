package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Resolver rewrites an Invocation into the command the shell would run for
// the program's file type.
type Resolver struct {
	Store     AssociationStore
	Tokenizer Tokenizer
	Expander  *Expander
	Logger    Logger
}

// NewResolver creates a Resolver with the platform tokenizer and the
// filesystem normalizer.
func NewResolver(store AssociationStore, logger Logger) *Resolver {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Resolver{
		Store:     store,
		Tokenizer: NewTokenizer(),
		Expander:  NewExpander(logger),
		Logger:    logger,
	}
}

// Template returns the extension and raw command template for a program path.
func (r *Resolver) Template(program string) (ext, template string, err error) {
	ext, err = FindExtension(program)
	if err != nil {
		return "", "", err
	}
	r.logger().Debug("found extension", "program", program, "extension", ext)

	template, err = QueryTemplate(r.Store, ext)
	if err != nil {
		return ext, "", err
	}
	r.logger().Debug("retrieved template", "extension", ext, "template", template)
	return ext, template, nil
}

// Resolve runs extraction, association lookup and template expansion for inv.
// Either a complete command is returned or nothing is.
func (r *Resolver) Resolve(inv Invocation) (*ResolvedCommand, error) {
	res := r.resolve(inv)
	return res.Command, res.Err
}

// resolve records whatever was found before a failure, so callers can report
// the template that failed without querying the store again.
func (r *Resolver) resolve(inv Invocation) Resolution {
	res := Resolution{Invocation: inv}
	res.Extension, res.Template, res.Err = r.Template(inv.Program)
	if res.Err != nil {
		return res
	}
	res.Command, res.Err = r.expand(res.Extension, res.Template, inv)
	return res
}

func (r *Resolver) expand(ext, template string, inv Invocation) (*ResolvedCommand, error) {
	tokens, err := r.Tokenizer.Split(template)
	if err != nil {
		return nil, fmt.Errorf("split template %q: %w", template, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrEmptyTemplate, ext)
	}

	expander := r.Expander
	if expander == nil {
		expander = NewExpander(r.logger())
	}
	cmd, err := expander.Expand(tokens, inv)
	if err != nil {
		return nil, fmt.Errorf("expand template %q: %w", template, err)
	}
	cmd.Extension = ext
	cmd.Template = template

	r.logger().Debug("resolved command", "program", cmd.Program, "args", cmd.Args)
	return cmd, nil
}

func (r *Resolver) logger() Logger {
	if r.Logger == nil {
		return nopLogger{}
	}
	return r.Logger
}

// Resolution pairs an Invocation with its outcome. Extension and Template
// are set as far as resolution got, also when Err is set.
type Resolution struct {
	Invocation Invocation
	Extension  string
	Template   string
	Command    *ResolvedCommand
	Err        error
}

// ResolveAll resolves independent invocations concurrently, at most limit at
// a time (unlimited when limit <= 0). Results keep the input order and each
// carries its own error; only context cancellation aborts the batch.
func (r *Resolver) ResolveAll(ctx context.Context, invs []Invocation, limit int) ([]Resolution, error) {
	results := make([]Resolution, len(invs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, inv := range invs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.resolve(inv)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WithFileTypeAssociation resolves inv against the default association store.
func WithFileTypeAssociation(inv Invocation) (*ResolvedCommand, error) {
	return NewResolver(DefaultStore(nil), nil).Resolve(inv)
}
