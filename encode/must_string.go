package encode

import (
	"strings"

	"github.com/appcenter/astapp/ir"
)

// ValueString renders a single value the way it appears after `key: ` at
// the top indent level.
func ValueString(v *ir.Value, opts ...EncodeOption) string {
	es := newEncState(opts)
	es.depth = 1
	return es.value(v)
}

// MustString is Serialize without the trailing newline.
func MustString(doc *ir.Document) string {
	return strings.TrimSpace(Serialize(doc))
}
