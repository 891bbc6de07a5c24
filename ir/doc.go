// Package ir holds the in-memory form of an astapp document.
//
// A [Document] has optional APP and STYLE property maps and an ordered list
// of [Question] blocks. Property values are [Value] nodes, a closed tagged
// union over strings, numbers, booleans, arrays, inline objects and bare
// words. Every consumer is expected to switch over [Type] exhaustively;
// [BareWordType] in particular is a raw token and must not be treated as a
// string.
//
// Numbers keep the integer/float distinction of their literal: a literal is
// a float exactly when it was written with a decimal point.
//
//	doc := ir.NewDocument()
//	doc.App = ir.PropertyMapOf(
//	    "name", ir.FromString("Staff Application"),
//	    "group_id", ir.FromInt(12345),
//	)
//	q := ir.NewQuestion("q1", "short_answer")
//	q.Props.Set("points", ir.FromInt(10))
//	doc.Questions = append(doc.Questions, q)
//
// [PropertyMap] preserves insertion order, which drives serialization order.
package ir
