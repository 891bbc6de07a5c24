// Package encode serializes an [ir.Document] to astapp text.
//
// # Usage
//
//	// canonical text, never fails
//	text := encode.Serialize(doc)
//
//	// write to an io.Writer with colors for a terminal
//	err := encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// write to a file, creating parent directories
//	err := encode.EncodeFile(doc, "data/apps/staff.astappcnt")
//
// Output uses two spaces per indent level. Blocks appear in the order APP,
// STYLE then each QUESTION, separated by a blank line, and the output ends
// with exactly one newline. Arrays whose single-line rendering fits in the
// line width (80 bytes by default) stay on one line; longer arrays put each
// element on its own line with a trailing comma. Objects are always
// rendered on one line.
//
// # Related Packages
//
//   - github.com/appcenter/astapp/ir - document model
//   - github.com/appcenter/astapp/parse - parse text into documents
package encode
