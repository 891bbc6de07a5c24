// Package dirbuild assembles a document from a build directory.
//
// A build directory holds build.yaml (or build.yml, build.json):
//
//	build:
//	  output: quiz.astappcnt
//	  destDir: out
//	  sources: [base.astappcnt, "questions/*.astappcnt"]
//	  patches: [fixes.json]
//	  checks: ["len(questions) > 0"]
//	  env: {minPoints: 1}
//
// Sources are globs relative to the directory, read in order and merged.
// Patches are RFC 6902 documents applied to the merged result, and checks
// are expressions that must hold for it.
package dirbuild

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/appcenter/astapp"
	"github.com/appcenter/astapp/convert"
	"github.com/appcenter/astapp/debug"
	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/eval"
	"github.com/appcenter/astapp/format"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/parse"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
)

const (
	DefaultOutput = "build" + ".astappcnt"
)

var ErrCheckFailed = errors.New("check failed")

type Dir struct {
	Root    string         `yaml:"-"`
	Output  string         `yaml:"output,omitempty"`
	DestDir string         `yaml:"destDir,omitempty"`
	Sources []string       `yaml:"sources"`
	Patches []string       `yaml:"patches,omitempty"`
	Checks  []string       `yaml:"checks,omitempty"`
	Env     map[string]any `yaml:"env,omitempty"`
}

type buildFile struct {
	Build *Dir `yaml:"build"`
}

// OpenDir reads the build file of the directory at path. env, typically
// from LoadEnv, overrides the variables of the build file.
func OpenDir(path string, env map[string]any) (*Dir, error) {
	extensions := []string{".yaml", ".yml", ".json"}
	var (
		bPath string
		d     []byte
		found bool
	)
	for _, ext := range extensions {
		candidatePath := filepath.Join(path, "build"+ext)
		var err error
		d, err = os.ReadFile(candidatePath)
		if err == nil {
			bPath = candidatePath
			found = true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidatePath, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("could not find build.{yaml,yml,json} in %q", path)
	}
	bf := &buildFile{}
	if err := yaml.Unmarshal(d, bf); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", bPath, err)
	}
	if bf.Build == nil {
		return nil, fmt.Errorf("%s: missing build section", bPath)
	}
	dir := bf.Build
	dir.Root = path
	if dir.Output == "" {
		dir.Output = DefaultOutput
	}
	if len(dir.Sources) == 0 {
		return nil, fmt.Errorf("%s: no sources", bPath)
	}
	dir.Env = mergeEnv(dir.Env, env)
	if debug.Build() {
		debug.Logf("build %s: %d sources, %d patches, %d checks, env ", path, len(dir.Sources), len(dir.Patches), len(dir.Checks))
		debug.LogAny(dir.Env)
	}
	return dir, nil
}

// mergeEnv overlays p onto dst, recursing into nested maps.
func mergeEnv(dst, p map[string]any) map[string]any {
	if len(p) == 0 {
		return dst
	}
	res := make(map[string]any, len(dst)+len(p))
	for k, v := range dst {
		res[k] = v
	}
	for k, v := range p {
		dm, dok := res[k].(map[string]any)
		pm, pok := v.(map[string]any)
		if dok && pok {
			res[k] = mergeEnv(dm, pm)
			continue
		}
		res[k] = v
	}
	return res
}

// SourcePaths expands the source globs. Each glob must match at least one
// file; matches of one glob are taken in lexical order.
func (d *Dir) SourcePaths() ([]string, error) {
	var res []string
	for _, src := range d.Sources {
		matches, err := filepath.Glob(filepath.Join(d.Root, src))
		if err != nil {
			return nil, fmt.Errorf("bad source %q: %w", src, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("source %q matches no files", src)
		}
		slices.Sort(matches)
		res = append(res, matches...)
	}
	return res, nil
}

// Build merges the sources, applies the patches and runs the checks.
func (d *Dir) Build(opts ...parse.ParseOption) (*ir.Document, error) {
	paths, err := d.SourcePaths()
	if err != nil {
		return nil, err
	}
	res := ir.NewDocument()
	for _, path := range paths {
		doc, err := readDoc(path, opts...)
		if err != nil {
			return nil, err
		}
		Merge(res, doc)
	}
	for _, p := range d.Patches {
		ops, err := os.ReadFile(filepath.Join(d.Root, p))
		if err != nil {
			return nil, err
		}
		res, err = astapp.Patch(res, ops)
		if err != nil {
			return nil, fmt.Errorf("error applying %s: %w", p, err)
		}
	}
	if err := d.check(res); err != nil {
		return nil, err
	}
	return res, nil
}

// check runs the checks with the build variables bound to env.
func (d *Dir) check(doc *ir.Document) error {
	if len(d.Checks) == 0 {
		return nil
	}
	env := eval.NewEnv(doc)
	vars := d.Env
	if vars == nil {
		vars = map[string]any{}
	}
	env["env"] = vars
	for _, c := range d.Checks {
		res, err := eval.Run(env, c, expr.AsBool())
		if err != nil {
			return fmt.Errorf("check %q: %w", c, err)
		}
		if ok, _ := res.(bool); !ok {
			return fmt.Errorf("%w: %s", ErrCheckFailed, c)
		}
	}
	return nil
}

// OutputPath is where Write puts the built document.
func (d *Dir) OutputPath() string {
	return filepath.Join(d.Root, d.DestDir, d.Output)
}

// Write encodes doc to OutputPath in the format of its suffix.
func (d *Dir) Write(doc *ir.Document, opts ...encode.EncodeOption) error {
	path := d.OutputPath()
	var (
		data []byte
		err  error
	)
	switch format.FromPath(path) {
	case format.JSONFormat:
		data, err = convert.ToJSON(doc)
	case format.YAMLFormat:
		data, err = convert.ToYAML(doc)
	default:
		return encode.EncodeFile(doc, path, opts...)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readDoc(path string, opts ...parse.ParseOption) (*ir.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc *ir.Document
	switch format.FromPath(path) {
	case format.JSONFormat:
		doc, err = convert.FromJSON(data)
	case format.YAMLFormat:
		doc, err = convert.FromYAML(data)
	default:
		doc, err = parse.Parse(data, append([]parse.ParseOption{parse.ParseFilename(path)}, opts...)...)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	return doc, nil
}
