// Package filter selects result rows with expr-lang expressions.
//
// Expressions see the fields of a Row (Text, Tag, Confidence, Extracted,
// Score, ...), the expr operators and builtins, and a few helpers:
//
//	Tag == "Negative" and Confidence >= 0.8
//	hasTag("urgent") or containsFold(Text, "refund")
//	Text matches "^Re:" and not hasSuffixFold(Text, "thanks")
//	Kind == "extraction" and wordCount(Extracted) > 1
package filter

var defaultCompiler = NewExprCompiler(WithCache(100))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}
