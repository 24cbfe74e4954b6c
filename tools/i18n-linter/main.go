// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the translation keys used in
// the Go sources. Keys missing from a secondary locale, or used in code but
// absent from the primary locale, fail the run; orphaned keys only warn.
//
// Calls like i18n.T("mask.reason."+r.String()) register "mask.reason." as a
// dynamic prefix; every primary key under it counts as used.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

var (
	keyCall    = regexp.MustCompile(`i18n\.T\("([^"]+)"\s*([+,)])`)
	keyLiteral = regexp.MustCompile(`"((?:cli|tui|mask)\.[a-z_.]+)"`)
)

// usage is what the sources reference.
type usage struct {
	keys     map[string]struct{}
	prefixes []string
}

func (u usage) covers(key string) bool {
	if _, ok := u.keys[key]; ok {
		return true
	}
	return slices.ContainsFunc(u.prefixes, func(p string) bool { return strings.HasPrefix(key, p) })
}

// report is the outcome of one lint run. Each slice is sorted.
type report struct {
	undefined []string            // used in code, missing from the primary locale
	orphaned  []string            // in the primary locale, never used
	missing   map[string][]string // secondary locale file -> keys it lacks
}

func (r report) failed() bool {
	if len(r.undefined) > 0 {
		return true
	}
	for _, keys := range r.missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	os.Exit(run(os.Stdout, "."))
}

func run(w io.Writer, root string) int {
	r, err := lint(root)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}
	for _, k := range r.undefined {
		fmt.Fprintf(w, "undefined: %s\n", k)
	}
	files := make([]string, 0, len(r.missing))
	for f := range r.missing {
		files = append(files, f)
	}
	slices.Sort(files)
	for _, f := range files {
		for _, k := range r.missing[f] {
			fmt.Fprintf(w, "missing in %s: %s\n", f, k)
		}
	}
	for _, k := range r.orphaned {
		fmt.Fprintf(w, "orphaned: %s\n", k)
	}
	if r.failed() {
		return 1
	}
	fmt.Fprintln(w, "translation files are consistent")
	return 0
}

func lint(root string) (report, error) {
	used, err := findUsage(root)
	if err != nil {
		return report{}, err
	}
	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("primary locale: %w", err)
	}

	r := report{missing: map[string][]string{}}
	for k := range used.keys {
		if _, ok := primary[k]; !ok {
			r.undefined = append(r.undefined, k)
		}
	}
	for k := range primary {
		if !used.covers(k) {
			r.orphaned = append(r.orphaned, k)
		}
	}
	slices.Sort(r.undefined)
	slices.Sort(r.orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, f := range files {
		name := filepath.Base(f)
		if name == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(f)
		if err != nil {
			return report{}, fmt.Errorf("%s: %w", name, err)
		}
		var missing []string
		for k := range primary {
			if _, ok := keys[k]; !ok {
				missing = append(missing, k)
			}
		}
		slices.Sort(missing)
		r.missing[name] = missing
	}
	return r, nil
}

// findUsage scans non-test Go files below root. Directories starting with
// "_" or "." are skipped like the go tool does, and so is tools/.
func findUsage(root string) (usage, error) {
	u := usage{keys: map[string]struct{}{}}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "tools") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCall.FindAllStringSubmatch(string(content), -1) {
			if m[2] == "+" {
				u.prefixes = append(u.prefixes, m[1])
				continue
			}
			u.keys[m[1]] = struct{}{}
		}
		for _, m := range keyLiteral.FindAllStringSubmatch(string(content), -1) {
			if !strings.HasSuffix(m[1], ".") {
				u.keys[m[1]] = struct{}{}
			}
		}
		return nil
	})
	return u, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML joins nested maps with dots. Flat files with dotted keys
// come out unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
