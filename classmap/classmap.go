package classmap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/twmerge/config"
	"github.com/npillmayer/twmerge/validate"
)

// PartSeparator separates the parts of a class name.
const PartSeparator = "-"

// ArbitraryPrefix starts the group ID of arbitrary properties like
// "[mask-type:luminance]" (group "arbitrary..mask-type"). Two dots are used
// as a single dot prefixes groups of plugins.
const ArbitraryPrefix = "arbitrary.."

var arbitraryPropertyRE = regexp.MustCompile(`^\[(.+)\]$`)

// Map classifies class names. A Map is immutable and may be used
// concurrently.
type Map struct {
	root      *node
	groups    []string
	conflicts map[string][]string // closed conflicts per group
	postfixed map[string][]string // closed conflicts for classes with a postfix modifier
}

type node struct {
	next       map[string]*node
	groupID    string
	validators []validator
}

type validator struct {
	fn      validate.Func
	groupID string
}

func newNode() *node {
	return &node{next: make(map[string]*node)}
}

// New creates a Map from the class groups and conflicts of cfg.
// It returns a *config.ConfigurationError if a theme reference cannot be
// resolved.
func New(cfg *config.Config) (*Map, error) {
	m := &Map{
		root:   newNode(),
		groups: make([]string, 0, len(cfg.ClassGroups)),
	}
	b := builder{theme: cfg.Theme}
	seen := make(map[string]bool, len(cfg.ClassGroups))
	for _, g := range cfg.ClassGroups {
		if err := b.add(m.root, g.Defs, g.ID, nil); err != nil {
			return nil, err
		}
		if !seen[g.ID] {
			seen[g.ID] = true
			m.groups = append(m.groups, g.ID)
		}
	}
	m.conflicts = closeConflicts(cfg.ConflictingClassGroups)
	m.postfixed = make(map[string][]string, len(cfg.ConflictingClassGroupModifiers))
	for g, mods := range cfg.ConflictingClassGroupModifiers {
		list := append([]string(nil), m.conflicts[g]...)
		for _, h := range mods {
			list = appendUnique(list, h)
			for _, c := range m.conflicts[h] {
				if c != g {
					list = appendUnique(list, c)
				}
			}
		}
		m.postfixed[g] = list
	}
	tracer().Debugf("class map built with %d class groups", len(m.groups))
	return m, nil
}

// --- Lookup ----------------------------------------------------------------

// GroupID returns the class group of a base class name (without modifiers,
// important marker or prefix). The second return value is false if the
// class does not belong to any group.
func (m *Map) GroupID(base string) (string, bool) {
	parts := strings.Split(base, PartSeparator)
	// negative values like "-inset-1"
	if parts[0] == "" && len(parts) > 1 {
		parts = parts[1:]
	}
	if id := m.root.lookup(parts); id != "" {
		return id, true
	}
	return arbitraryProperty(base)
}

func (n *node) lookup(parts []string) string {
	if len(parts) == 0 {
		return n.groupID
	}
	if child, ok := n.next[parts[0]]; ok {
		if id := child.lookup(parts[1:]); id != "" {
			return id
		}
	}
	if len(n.validators) == 0 {
		return ""
	}
	rest := strings.Join(parts, PartSeparator)
	for _, v := range n.validators {
		if v.fn(rest) {
			return v.groupID
		}
	}
	return ""
}

func arbitraryProperty(base string) (string, bool) {
	match := arbitraryPropertyRE.FindStringSubmatch(base)
	if match == nil {
		return "", false
	}
	i := strings.Index(match[1], ":")
	if i <= 0 {
		return "", false
	}
	return ArbitraryPrefix + match[1][:i], true
}

// Conflicts returns the groups which a class of group id overrides. If the
// class carries a postfix modifier (as in "text-lg/7"), the conflicts for
// postfix modifiers are included. The result must not be modified.
func (m *Map) Conflicts(id string, hasPostfix bool) []string {
	if hasPostfix {
		if c, ok := m.postfixed[id]; ok {
			return c
		}
	}
	return m.conflicts[id]
}

// Groups returns the IDs of all class groups in table order.
func (m *Map) Groups() []string {
	return append([]string(nil), m.groups...)
}

// --- Building --------------------------------------------------------------

type builder struct {
	theme map[string][]config.ClassDef
}

// add inserts definitions below n. stack holds the theme scales currently
// being expanded.
func (b builder) add(n *node, defs []config.ClassDef, id string, stack []string) error {
	for _, d := range defs {
		switch def := d.(type) {
		case string:
			part(n, def).groupID = id
		case config.ThemeRef:
			scale, ok := b.theme[string(def)]
			if !ok {
				return &config.ConfigurationError{
					Field:  "theme",
					Reason: fmt.Sprintf("class group %q refers to unknown theme scale %q", id, def),
				}
			}
			for _, s := range stack {
				if s == string(def) {
					return &config.ConfigurationError{
						Field:  "theme",
						Reason: fmt.Sprintf("cyclic reference to theme scale %q", def),
					}
				}
			}
			if err := b.add(n, scale, id, append(stack, string(def))); err != nil {
				return err
			}
		case validate.Func:
			n.validators = append(n.validators, validator{fn: def, groupID: id})
		case func(string) bool:
			n.validators = append(n.validators, validator{fn: def, groupID: id})
		case config.Parts:
			for _, s := range def.Stems() {
				if err := b.add(part(n, s), def[s], id, stack); err != nil {
					return err
				}
			}
		default:
			return &config.ConfigurationError{
				Field:  "class-groups",
				Reason: fmt.Sprintf("class group %q has definition of unsupported type %T", id, d),
			}
		}
	}
	return nil
}

// part returns the node for path below n, creating nodes as necessary.
// The empty path denotes n itself.
func part(n *node, path string) *node {
	if path == "" {
		return n
	}
	for _, p := range strings.Split(path, PartSeparator) {
		child, ok := n.next[p]
		if !ok {
			child = newNode()
			n.next[p] = child
		}
		n = child
	}
	return n
}

// closeConflicts computes the transitive closure of direct conflicts. For
// a group g, the conflicts of a covered group h are added unless h covers g
// in turn.
func closeConflicts(direct map[string][]string) map[string][]string {
	closed := make(map[string][]string, len(direct))
	for g, list := range direct {
		result := make([]string, 0, len(list))
		queue := append([]string(nil), list...)
		for len(queue) > 0 {
			h := queue[0]
			queue = queue[1:]
			if h == g || contains(result, h) {
				continue
			}
			result = append(result, h)
			if !contains(direct[h], g) {
				queue = append(queue, direct[h]...)
			}
		}
		closed[g] = result
	}
	return closed
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func appendUnique(list []string, s string) []string {
	if contains(list, s) {
		return list
	}
	return append(list, s)
}
