// Package eval evaluates expr-lang expressions against a document.
//
// The environment holds the document in its exchange shape (see package
// convert):
//
//	app        map of APP properties, empty when absent
//	style      map of STYLE properties, empty when absent
//	questions  list of maps, each with id and type
//
// and the functions question(id), which returns the question with that id
// or nil, and getenv(name).
//
// # Usage
//
//	ok, err := eval.Check(doc, `all(questions, .points > 0)`)
//	v, err := eval.EvalValue(doc, `sum(map(questions, .points))`)
package eval
