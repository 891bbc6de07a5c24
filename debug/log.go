package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/ir"
)

// Logf writes to stderr, rendering documents and values in astapp syntax.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Document:
			args[i] = encode.Serialize(x)
		case *ir.Value:
			args[i] = encode.ValueString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
