// Package convert maps documents to and from the JSON and YAML shape
// exchanged with other tools:
//
//	{
//	  "app": {...} | null,
//	  "style": {...} | null,
//	  "questions": [{"id": "...", "type": "...", ...}]
//	}
//
// Key order is kept in both directions. Integers stay integers and floats
// stay floats. Bare words are exported as strings, and a JSON or YAML null
// is imported as the bare word null.
package convert
