// Package prompts holds the text templates handed to generation services.
// Templates live in embedded JSON files keyed by name and use {{.Key}}
// placeholders.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	filesMu sync.RWMutex
	files   = make(map[string]map[string]string)
)

var placeholder = regexp.MustCompile(`\{\{\.([A-Za-z][A-Za-z0-9]*)\}\}`)

// Get returns the template stored under key in filename (e.g. "roadmap.json").
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}
	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return tmpl, nil
}

// MustGet is Get for templates that ship with the binary. It panics when the
// template is missing.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return tmpl
}

// Format substitutes {{.Key}} placeholders in a single pass, so values that
// themselves look like placeholders are left untouched. Placeholders without
// a value are kept verbatim.
func Format(tmpl string, data map[string]string) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := data[name]; ok {
			return v
		}
		return m
	})
}

// Render loads a template and formats it, failing when any placeholder is
// left without a value.
func Render(filename, key string, data map[string]string) (string, error) {
	tmpl, err := Get(filename, key)
	if err != nil {
		return "", err
	}
	if missing := Placeholders(tmpl, data); len(missing) > 0 {
		return "", fmt.Errorf("prompt %s/%s: missing values for %s", filename, key, strings.Join(missing, ", "))
	}
	return Format(tmpl, data), nil
}

// Placeholders lists, sorted and deduplicated, the placeholder names in tmpl
// that data does not provide.
func Placeholders(tmpl string, data map[string]string) []string {
	seen := map[string]bool{}
	var missing []string
	for _, m := range placeholder.FindAllStringSubmatch(tmpl, -1) {
		name := m[1]
		if _, ok := data[name]; ok || seen[name] {
			continue
		}
		seen[name] = true
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing
}

// Keys returns the template names in filename, sorted.
func Keys(filename string) ([]string, error) {
	templates, err := load(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Reset drops parsed files so the next lookup re-reads them.
func Reset() {
	filesMu.Lock()
	files = make(map[string]map[string]string)
	filesMu.Unlock()
}

func load(filename string) (map[string]string, error) {
	filesMu.RLock()
	templates, ok := files[filename]
	filesMu.RUnlock()
	if ok {
		return templates, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	filesMu.Lock()
	files[filename] = templates
	filesMu.Unlock()
	return templates, nil
}
