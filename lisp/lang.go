package lisp

// QuoteSymbol names the special form that returns its argument unevaluated.
// The reader expands 'x into (quote x).
const QuoteSymbol = "quote"

// TrueSymbol is the symbol bound to itself which builtins return for a true
// result.
const TrueSymbol = "t"

// NilSymbol is read as the empty list.
const NilSymbol = "nil"

// DefaultMaxDepth bounds nesting while reading and evaluating when no other
// limit is configured.
const DefaultMaxDepth = 10000
