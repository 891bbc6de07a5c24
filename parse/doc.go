// Package parse parses astapp text into an [ir.Document].
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// parse from a string, classifying unknown boolean-position words as
//	// bare words instead of false
//	doc, err := parse.ParseString(text, parse.StrictBooleans())
//
//	// read a file; errors are prefixed with its name
//	doc, err := parse.ParseFile("data/apps/staff.astappcnt")
//
// Errors are [*token.ParseError] values. The first error aborts the parse;
// there is no partial document.
//
// # Related Packages
//
//   - github.com/appcenter/astapp/ir - document model
//   - github.com/appcenter/astapp/encode - serialize documents to text
//   - github.com/appcenter/astapp/token - lexical layer and errors
package parse
