// Package filter selects words with CEL expressions.
//
// An expression sees two variables:
//
//	word   string  the word itself
//	degree int     the number of its direct friends
//
// e.g. `word.startsWith("li") && degree > 1` or `size(word) == 4`.
package filter

import (
	"strings"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/cel-go/cel"
	"github.com/haijima/wordlink/internal/graph"
)

var ErrInvalidFilter = errors.New("invalid filter")

type Filter struct {
	expr string
	prg  cel.Program
}

// New compiles expr. An empty expression matches every word.
func New(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return &Filter{}, nil
	}

	env, err := cel.NewEnv(
		cel.Variable("word", cel.StringType),
		cel.Variable("degree", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, errors.WithSecondaryError(errors.Wrapf(ErrInvalidFilter, "compile filter %q: %v", expr, iss.Err()), iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.Wrapf(ErrInvalidFilter, "filter %q evaluates to %s, not bool", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.WithSecondaryError(errors.Wrapf(ErrInvalidFilter, "program filter %q: %v", expr, err), err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.expr
}

func (f *Filter) Match(word string, degree int) (bool, error) {
	if f.prg == nil {
		return true, nil
	}
	out, _, err := f.prg.Eval(map[string]any{"word": word, "degree": int64(degree)})
	if err != nil {
		return false, errors.Wrapf(err, "evaluate filter %q for %q", f.expr, word)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, errors.Newf("filter %q returned %T for %q", f.expr, out.Value(), word)
	}
	return b, nil
}

// Apply returns the members of words matching the filter.
func (f *Filter) Apply(words mapset.Set[string], adj graph.AdjacencyMap) (mapset.Set[string], error) {
	if f.prg == nil {
		return words, nil
	}
	res := mapset.NewSet[string]()
	for _, w := range mapset.Sorted(words) {
		ok, err := f.Match(w, adj.Friends(w).Cardinality())
		if err != nil {
			return nil, err
		}
		if ok {
			res.Add(w)
		}
	}
	return res, nil
}
