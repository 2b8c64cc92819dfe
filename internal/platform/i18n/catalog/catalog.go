// Package catalog loads the embedded YAML message catalogs and registers them
// with golang.org/x/text/message.
//
// Files live at locales/<locale>/<namespace>.yaml. Keys are global within a
// locale, so two namespaces may not define the same key.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en"

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustRegister(LoadEmbedded())

type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

type locale struct {
	messages   map[string]string
	namespaces []string
}

// Bundle holds the messages of every loaded locale.
type Bundle struct {
	locales map[string]*locale
}

// Default returns the embedded bundle, already registered with x/text.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS loads every locales/*/*.yaml file of fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	slices.Sort(paths)

	b := &Bundle{locales: make(map[string]*locale)}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, f); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s has no catalog", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) add(p string, f file) error {
	dir, name := path.Split(p)
	wantLocale := path.Base(dir)
	wantNamespace := strings.TrimSuffix(name, path.Ext(name))
	if got := strings.TrimSpace(f.Locale); got != wantLocale {
		return fmt.Errorf("locale %q does not match directory %q", got, wantLocale)
	}
	if got := strings.TrimSpace(f.Namespace); got != wantNamespace {
		return fmt.Errorf("namespace %q does not match file name %q", got, wantNamespace)
	}
	if len(f.Messages) == 0 {
		return fmt.Errorf("no messages")
	}

	loc := b.locales[wantLocale]
	if loc == nil {
		loc = &locale{messages: make(map[string]string)}
		b.locales[wantLocale] = loc
	}
	loc.namespaces = append(loc.namespaces, wantNamespace)
	for key, value := range f.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("blank message key")
		}
		if _, dup := loc.messages[key]; dup {
			return fmt.Errorf("duplicate key %q in locale %q", key, wantLocale)
		}
		loc.messages[key] = value
	}
	return nil
}

// Register sets every message on the x/text default catalog. Keys a locale
// does not translate use the base locale text.
func (b *Bundle) Register() error {
	base := b.LocaleMessages(BaseLocale)
	for _, name := range b.Locales() {
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", name, err)
		}
		messages := maps.Clone(base)
		maps.Copy(messages, b.locales[name].messages)
		for _, key := range slices.Sorted(maps.Keys(messages)) {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				return fmt.Errorf("register %s/%s: %w", name, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether the bundle has catalogs for name.
func (b *Bundle) HasLocale(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(name)]
	return ok
}

// Locales returns the loaded locale names, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.locales))
}

// Namespaces returns the namespaces loaded for one locale, sorted.
func (b *Bundle) Namespaces(name string) []string {
	if !b.HasLocale(name) {
		return nil
	}
	return slices.Sorted(slices.Values(b.locales[strings.TrimSpace(name)].namespaces))
}

// LocaleMessages returns a copy of one locale's own messages.
func (b *Bundle) LocaleMessages(name string) map[string]string {
	if !b.HasLocale(name) {
		return map[string]string{}
	}
	return maps.Clone(b.locales[strings.TrimSpace(name)].messages)
}

// Message looks key up in name, then in the base locale.
func (b *Bundle) Message(name, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if b == nil || key == "" {
		return "", false
	}
	for _, candidate := range []string{strings.TrimSpace(name), BaseLocale} {
		if loc, ok := b.locales[candidate]; ok {
			if value, ok := loc.messages[key]; ok {
				return value, true
			}
		}
	}
	return "", false
}

func mustRegister(b *Bundle, err error) *Bundle {
	if err == nil {
		err = b.Register()
	}
	if err != nil {
		panic(err)
	}
	return b
}
