// Package format names the text formats a document can be read from or
// written to: astapp block syntax, JSON and YAML.
package format
