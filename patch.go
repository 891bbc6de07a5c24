package astapp

import (
	"fmt"

	"github.com/appcenter/astapp/convert"
	"github.com/appcenter/astapp/debug"
	"github.com/appcenter/astapp/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to the JSON form of doc (see package
// convert) and returns the result. Keys that survive the patch keep their
// order from doc; added keys follow them. Bare words the patch leaves alone
// stay bare words.
func Patch(doc *ir.Document, patchJSON []byte) (*ir.Document, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	d, err := convert.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %d ops on\n%v", len(ops), doc)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	res, err := convert.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("patched document: %w", err)
	}
	res.OrderLike(doc)
	res.KeepBareWords(doc)
	return res, nil
}
