package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/twmerge/validate"
	"gopkg.in/yaml.v3"
)

// File is the content of a YAML configuration file:
//
//    prefix: tw-
//    separator: ":"
//    cache-size: 1000
//    theme:
//      spacing: [gutter, "@arbitrary-value"]
//    class-groups:
//      btn-size:
//        - btn: [sm, md, lg]
//      btn-tone:
//        - btn: [primary, secondary, "$colors"]
//    conflicts:
//      btn-size: [p, px, py]
//    stylesheets: [components.css]
//
// In definition lists, an entry starting with '@' names a validator (see
// validate.ByName), an entry starting with '$' refers to a theme scale. Any
// other string is a literal class part. A mapping nests definitions below
// a stem. The order of class groups is kept.
//
// Stylesheets are CSS files from which additional class groups are derived;
// relative paths are resolved against the directory of the configuration file.
type File struct {
	Prefix      *string             `yaml:"prefix"`
	Separator   *string             `yaml:"separator"`
	CacheSize   *int                `yaml:"cache-size"`
	Theme       map[string][]string `yaml:"theme"`
	ClassGroups yaml.Node           `yaml:"class-groups"`
	Conflicts   map[string][]string `yaml:"conflicts"`
	Stylesheets []string            `yaml:"stylesheets"`
}

// Decode reads a configuration file from r. An empty input results in an
// empty File.
func Decode(r io.Reader) (*File, error) {
	f := &File{}
	if err := yaml.NewDecoder(r).Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return f, nil
}

// LoadFile reads and decodes the configuration file at path.
func LoadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	defer r.Close()
	f, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, s := range f.Stylesheets {
		if !filepath.IsAbs(s) {
			f.Stylesheets[i] = filepath.Join(dir, s)
		}
	}
	tracer().Infof("loaded configuration from %s", path)
	return f, nil
}

// Apply overrides the options of cfg which are set in f, and extends cfg by
// the theme scales, class groups and conflicts of f. Stylesheets are not
// interpreted here.
func (f *File) Apply(cfg *Config) error {
	if f.Prefix != nil {
		cfg.Prefix = *f.Prefix
	}
	if f.Separator != nil {
		cfg.Separator = *f.Separator
	}
	if f.CacheSize != nil {
		cfg.CacheSize = *f.CacheSize
	}
	ext, err := f.Extension()
	if err != nil {
		return err
	}
	cfg.Extend(ext)
	return nil
}

// Extension returns the definitions of f as a config extension.
func (f *File) Extension() (Extension, error) {
	ext := Extension{
		Theme:                  make(map[string][]ClassDef, len(f.Theme)),
		ConflictingClassGroups: f.Conflicts,
	}
	for k, entries := range f.Theme {
		defs := make([]ClassDef, 0, len(entries))
		for _, e := range entries {
			d, err := scalarDef(e)
			if err != nil {
				return Extension{}, err
			}
			defs = append(defs, d)
		}
		ext.Theme[k] = defs
	}
	groups, err := classGroups(&f.ClassGroups)
	if err != nil {
		return Extension{}, err
	}
	ext.ClassGroups = groups
	return ext, nil
}

func classGroups(n *yaml.Node) ([]ClassGroup, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, invalid("class-groups", "line %d: expected a mapping of class group IDs", n.Line)
	}
	groups := make([]ClassGroup, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		id := n.Content[i].Value
		defs, err := nodeDefs(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		groups = append(groups, ClassGroup{ID: id, Defs: defs})
	}
	return groups, nil
}

// nodeDefs converts a sequence of definitions. A single scalar or mapping is
// treated as a sequence of one.
func nodeDefs(n *yaml.Node) ([]ClassDef, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		d, err := scalarDef(n.Value)
		if err != nil {
			return nil, err
		}
		return []ClassDef{d}, nil
	case yaml.MappingNode:
		d, err := partsDef(n)
		if err != nil {
			return nil, err
		}
		return []ClassDef{d}, nil
	case yaml.SequenceNode:
		defs := make([]ClassDef, 0, len(n.Content))
		for _, c := range n.Content {
			d, err := nodeDefs(c)
			if err != nil {
				return nil, err
			}
			defs = append(defs, d...)
		}
		return defs, nil
	}
	return nil, invalid("class-groups", "line %d: unexpected YAML node", n.Line)
}

func partsDef(n *yaml.Node) (Parts, error) {
	parts := make(Parts, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		defs, err := nodeDefs(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		parts[n.Content[i].Value] = defs
	}
	return parts, nil
}

func scalarDef(s string) (ClassDef, error) {
	switch {
	case strings.HasPrefix(s, "@"):
		v, ok := validate.ByName(s[1:])
		if !ok {
			return nil, invalid("class-groups", "unknown validator %q", s[1:])
		}
		return v, nil
	case strings.HasPrefix(s, "$"):
		return ThemeRef(s[1:]), nil
	}
	return s, nil
}
