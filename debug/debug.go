package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Eval  bool
	Build bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ASTAPP_DEBUG_PARSE")
	d.Patch = boolEnv("ASTAPP_DEBUG_PATCH")
	d.Eval = boolEnv("ASTAPP_DEBUG_EVAL")
	d.Build = boolEnv("ASTAPP_DEBUG_BUILD")
	d.LSP = boolEnv("ASTAPP_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Build() bool {
	return d.Build
}
func LSP() bool {
	return d.LSP
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
