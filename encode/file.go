package encode

import (
	"os"
	"path/filepath"

	"github.com/appcenter/astapp/ir"
)

// EncodeFile writes the text of doc to path, creating missing parent
// directories.
func EncodeFile(doc *ir.Document, path string, opts ...EncodeOption) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Serialize(doc, opts...)), 0644)
}
