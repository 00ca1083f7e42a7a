package config

import (
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/twmerge/validate"
)

// ClassDef is one entry of a class group definition. It is one of
//
//    string          a literal class part; "" denotes the current node itself
//    ThemeRef        a reference to a theme scale
//    validate.Func   a value validator (a plain func(string) bool is accepted)
//    Parts           definitions nested below one or more stems
//
type ClassDef interface{}

// ThemeRef refers to a scale of the configured theme, e.g. "spacing".
type ThemeRef string

// Parts maps class stems to nested definitions. Stems may contain "-",
// e.g. "overflow-x".
type Parts map[string][]ClassDef

// Stems returns the keys of p in sorted order.
func (p Parts) Stems() []string {
	stems := make([]string, 0, len(p))
	for s := range p {
		stems = append(stems, s)
	}
	sort.Strings(stems)
	return stems
}

// ClassGroup is a named conflict category together with the definitions of
// its member classes.
type ClassGroup struct {
	ID   string
	Defs []ClassDef
}

// Config holds the options of a merger.
//
// The order of ClassGroups is significant: for classes matched by validators
// of more than one group, the group listed first wins.
type Config struct {
	Prefix                         string                // prefix of every utility class, e.g. "tw-"
	Separator                      string                // modifier separator, default ":"
	CacheSize                      int                   // entries of the result cache, 0 disables caching
	Theme                          map[string][]ClassDef // theme scales, referred to by ThemeRef
	ClassGroups                    []ClassGroup          // ordered class group table
	ConflictingClassGroups         map[string][]string   // group → groups it overrides
	ConflictingClassGroupModifiers map[string][]string   // additional conflicts for classes with a postfix
	OrderSensitiveModifiers        []string              // modifiers which must not be reordered
}

// Extension holds additions to a Config. See (*Config).Extend.
type Extension struct {
	Theme                  map[string][]ClassDef
	ClassGroups            []ClassGroup
	ConflictingClassGroups map[string][]string
}

// Clone returns a copy of cfg which may be modified without affecting cfg.
// Definitions are shared, as they are never modified in place.
func (cfg *Config) Clone() *Config {
	c := *cfg
	c.Theme = make(map[string][]ClassDef, len(cfg.Theme))
	for k, v := range cfg.Theme {
		c.Theme[k] = append([]ClassDef(nil), v...)
	}
	c.ClassGroups = make([]ClassGroup, len(cfg.ClassGroups))
	for i, g := range cfg.ClassGroups {
		c.ClassGroups[i] = ClassGroup{ID: g.ID, Defs: append([]ClassDef(nil), g.Defs...)}
	}
	c.ConflictingClassGroups = cloneConflicts(cfg.ConflictingClassGroups)
	c.ConflictingClassGroupModifiers = cloneConflicts(cfg.ConflictingClassGroupModifiers)
	c.OrderSensitiveModifiers = append([]string(nil), cfg.OrderSensitiveModifiers...)
	return &c
}

func cloneConflicts(m map[string][]string) map[string][]string {
	c := make(map[string][]string, len(m))
	for k, v := range m {
		c[k] = append([]string(nil), v...)
	}
	return c
}

// Group returns the class group with the given ID, if present.
func (cfg *Config) Group(id string) (ClassGroup, bool) {
	for _, g := range cfg.ClassGroups {
		if g.ID == id {
			return g, true
		}
	}
	return ClassGroup{}, false
}

// Extend adds the definitions of ext to cfg:
// theme scales and existing class groups get the new definitions appended,
// unknown class groups are appended to the table,
// conflict lists are united.
func (cfg *Config) Extend(ext Extension) {
	if cfg.Theme == nil && len(ext.Theme) > 0 {
		cfg.Theme = make(map[string][]ClassDef, len(ext.Theme))
	}
	for k, defs := range ext.Theme {
		cfg.Theme[k] = append(cfg.Theme[k], defs...)
	}
	for _, g := range ext.ClassGroups {
		found := false
		for i := range cfg.ClassGroups {
			if cfg.ClassGroups[i].ID == g.ID {
				cfg.ClassGroups[i].Defs = append(cfg.ClassGroups[i].Defs, g.Defs...)
				found = true
				break
			}
		}
		if !found {
			cfg.ClassGroups = append(cfg.ClassGroups, ClassGroup{
				ID:   g.ID,
				Defs: append([]ClassDef(nil), g.Defs...),
			})
		}
	}
	if cfg.ConflictingClassGroups == nil && len(ext.ConflictingClassGroups) > 0 {
		cfg.ConflictingClassGroups = make(map[string][]string)
	}
	for k, groups := range ext.ConflictingClassGroups {
		cfg.ConflictingClassGroups[k] = union(cfg.ConflictingClassGroups[k], groups)
	}
	tracer().Debugf("extended config by %d theme scales, %d class groups, %d conflicts",
		len(ext.Theme), len(ext.ClassGroups), len(ext.ConflictingClassGroups))
}

func union(a, b []string) []string {
	for _, s := range b {
		if !contains(a, s) {
			a = append(a, s)
		}
	}
	return a
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// Validate checks cfg for errors. It returns a *ConfigurationError for
//
//    - an empty separator or one containing white space
//    - a prefix containing white space
//    - a negative cache size
//    - a class group without an ID
//    - a reference to an unknown theme scale, or a cycle of theme references
//    - a definition of unsupported type
//
func (cfg *Config) Validate() error {
	if cfg.Separator == "" {
		return invalid("separator", "must not be empty")
	}
	if strings.IndexFunc(cfg.Separator, unicode.IsSpace) >= 0 {
		return invalid("separator", "must not contain white space: %q", cfg.Separator)
	}
	if strings.IndexFunc(cfg.Prefix, unicode.IsSpace) >= 0 {
		return invalid("prefix", "must not contain white space: %q", cfg.Prefix)
	}
	if cfg.CacheSize < 0 {
		return invalid("cache-size", "must not be negative: %d", cfg.CacheSize)
	}
	for k, defs := range cfg.Theme {
		if err := cfg.checkTheme(k, defs, []string{k}); err != nil {
			return err
		}
	}
	for i, g := range cfg.ClassGroups {
		if g.ID == "" {
			return invalid("class-groups", "class group #%d has no ID", i)
		}
		if err := cfg.checkDefs(g.ID, g.Defs, nil); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *Config) checkTheme(key string, defs []ClassDef, path []string) error {
	return cfg.checkDefs("theme "+key, defs, path)
}

func (cfg *Config) checkDefs(where string, defs []ClassDef, path []string) error {
	for _, d := range defs {
		switch def := d.(type) {
		case string, validate.Func, func(string) bool:
		case ThemeRef:
			scale, ok := cfg.Theme[string(def)]
			if !ok {
				return invalid("theme", "%s refers to unknown theme scale %q", where, def)
			}
			if contains(path, string(def)) {
				return invalid("theme", "cyclic reference to theme scale %q: %s",
					def, strings.Join(append(path, string(def)), " → "))
			}
			if err := cfg.checkTheme(string(def), scale, append(path, string(def))); err != nil {
				return err
			}
		case Parts:
			for _, stem := range def.Stems() {
				if err := cfg.checkDefs(where, def[stem], path); err != nil {
					return err
				}
			}
		default:
			return invalid("class-groups", "%s has definition of unsupported type %T", where, d)
		}
	}
	return nil
}
