package filter

import (
	"maps"
	"regexp"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// envPool recycles runtime environments between evaluations
var envPool = sync.Pool{
	New: func() any {
		return make(map[string]any, 32)
	},
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// The compile environment carries zero row values so field types are checked
	env := make(map[string]any, len(c.helperFuncs)+16)
	maps.Copy(env, c.helperFuncs)
	addRowFields(env, Row{})

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Evaluate evaluates the filter against a row. Rows that fail to evaluate
// do not match.
func (f *exprFilter) Evaluate(row Row) bool {
	ok, err := f.Match(row)
	return err == nil && ok
}

// Match evaluates the filter against a row
func (f *exprFilter) Match(row Row) (bool, error) {
	env := envPool.Get().(map[string]any)
	defer func() {
		clear(env)
		envPool.Put(env)
	}()

	maps.Copy(env, f.helpers)
	addRowFields(env, row)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Index:      row.Index,
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions. contains,
// startsWith, endsWith and matches are expr operators, and lower/upper are
// builtins, so the case-insensitive variants get their own names.
func createHelperFunctions() map[string]any {
	return map[string]any{
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefixFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffixFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"regexMatch": func(str, pattern string) bool {
			ok, err := regexp.MatchString(pattern, str)
			return err == nil && ok
		},
		"wordCount": func(str string) int {
			return len(strings.Fields(str))
		},
	}
}

// addRowFields exposes the row to expressions, together with the row-bound helpers
func addRowFields(env map[string]any, row Row) {
	env["Kind"] = row.Kind
	env["Model"] = row.Model
	env["Index"] = row.Index
	env["Text"] = row.Text
	env["ExternalID"] = row.ExternalID
	env["Error"] = row.Error
	env["Tag"] = row.Tag
	env["TagID"] = row.TagID
	env["Confidence"] = row.Confidence
	env["Extracted"] = row.Extracted
	env["ClusterID"] = row.ClusterID
	env["Score"] = row.Score

	tag := row.Tag
	env["hasTag"] = func(name string) bool {
		return tag != "" && strings.EqualFold(tag, name)
	}
}
