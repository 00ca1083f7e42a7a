package twmerge

import (
	"fmt"
	"io"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/twmerge/classmap"
	"github.com/npillmayer/twmerge/classname"
	"github.com/npillmayer/twmerge/config"
)

// Merger merges class lists for one configuration. A Merger is immutable
// after creation and may be used concurrently.
type Merger struct {
	config  *config.Config
	parser  *classname.Parser
	classes *classmap.Map
	cache   *lru.Cache[string, string] // nil if caching is disabled
}

// New creates a Merger for cfg. cfg is copied; later changes to it do not
// affect the Merger. A nil cfg selects config.Default().
//
// An invalid configuration is reported as *config.ConfigurationError.
func New(cfg *config.Config) (*Merger, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()
	classes, err := classmap.New(cfg)
	if err != nil {
		return nil, err
	}
	m := &Merger{
		config:  cfg,
		parser:  classname.NewParser(cfg.Prefix, cfg.Separator, cfg.OrderSensitiveModifiers),
		classes: classes,
	}
	if cfg.CacheSize > 0 {
		if m.cache, err = lru.New[string, string](cfg.CacheSize); err != nil {
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
	}
	tracer().Debugf("new merger with prefix %q, separator %q, cache size %d",
		cfg.Prefix, cfg.Separator, cfg.CacheSize)
	return m, nil
}

// Config returns a copy of the configuration of m.
func (m *Merger) Config() *config.Config {
	return m.config.Clone()
}

// Merge joins the class lists and resolves conflicts between them. A later
// class wins over an earlier one it conflicts with.
func (m *Merger) Merge(classLists ...string) string {
	joined := strings.Join(classLists, " ")
	if m.cache != nil {
		if result, ok := m.cache.Get(joined); ok {
			return result
		}
	}
	result := m.merge(joined)
	if m.cache != nil {
		m.cache.Add(joined, result)
	}
	return result
}

// --- Resolver --------------------------------------------------------------

// slotKey identifies a class group within a modifier context.
type slotKey struct {
	context string
	group   string
}

// slot is a position in the merged list.
type slot struct {
	token string
	live  bool
	key   slotKey
	cover []string // groups the token supersedes, including its own
}

func (s slot) covers(key slotKey) bool {
	if !s.live || s.cover == nil || s.key.context != key.context {
		return false
	}
	for _, g := range s.cover {
		if g == key.group {
			return true
		}
	}
	return false
}

// A class group keeps the position of its first occurrence in a modifier
// context, even if it has been superseded in between. The merged list never
// holds a token in front of a later one superseding it.
func (m *Merger) merge(classes string) string {
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return ""
	}
	slots := make([]slot, 0, len(tokens))
	owners := make(map[slotKey]int, len(tokens))
	first := make(map[slotKey]int, len(tokens))
	others := make(map[string]bool)
	for _, token := range tokens {
		x := m.explain(token)
		if !x.Known {
			if others[token] {
				continue
			}
			others[token] = true
			slots = append(slots, slot{token: token, live: true})
			continue
		}
		key := slotKey{x.Context, x.Group}
		cover := x.coverage()
		target := -1
		for _, group := range cover {
			k := slotKey{x.Context, group}
			i, ok := owners[k]
			if !ok {
				continue
			}
			delete(owners, k)
			if !slots[i].live {
				continue
			}
			slots[i].live = false
			if target < 0 || i < target {
				target = i
			}
		}
		if i, ok := first[key]; ok && !slots[i].live && (target < 0 || i < target) {
			target = i
		}
		if target >= 0 && coveredAfter(slots, target, key) {
			target = -1
		}
		if target < 0 {
			target = len(slots)
			slots = append(slots, slot{})
		} else if slots[target].token != "" {
			tracer().Debugf("%q takes the position of %q", token, slots[target].token)
		}
		slots[target] = slot{token: token, live: true, key: key, cover: cover}
		owners[key] = target
		if _, ok := first[key]; !ok {
			first[key] = target
		}
	}
	var b strings.Builder
	for _, s := range slots {
		if !s.live {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.token)
	}
	return b.String()
}

// coveredAfter is true if a live slot behind position i supersedes key.
func coveredAfter(slots []slot, i int, key slotKey) bool {
	for _, s := range slots[i+1:] {
		if s.covers(key) {
			return true
		}
	}
	return false
}

// --- Classification --------------------------------------------------------

// Explanation describes how a Merger sees a single class token.
type Explanation struct {
	Class     classname.Class
	Known     bool     // token belongs to a class group
	Group     string   // class group, if Known
	Context   string   // modifier context, if Known
	Postfix   bool     // the postfix modifier has been split off for classification
	Conflicts []string // groups overridden by the token, if Known
}

func (x Explanation) coverage() []string {
	return append([]string{x.Group}, x.Conflicts...)
}

func (x Explanation) String() string {
	if !x.Known {
		if x.Class.External {
			return fmt.Sprintf("%s: external class", x.Class.Original)
		}
		return fmt.Sprintf("%s: no class group", x.Class.Original)
	}
	s := fmt.Sprintf("%s: group %s", x.Class.Original, x.Group)
	if x.Context != "" {
		s += fmt.Sprintf(", context %q", x.Context)
	}
	if len(x.Conflicts) > 0 {
		s += ", overrides " + strings.Join(x.Conflicts, " ")
	}
	return s
}

// Explain classifies a single class token.
func (m *Merger) Explain(token string) Explanation {
	return m.explain(token)
}

func (m *Merger) explain(token string) Explanation {
	x := Explanation{Class: m.parser.Parse(token)}
	if x.Class.External {
		return x
	}
	base := x.Class.Base
	if x.Class.HasPostfix() {
		if g, ok := m.classes.GroupID(base[:x.Class.PostfixAt]); ok {
			x.Known, x.Group, x.Postfix = true, g, true
		}
	}
	if !x.Known {
		x.Group, x.Known = m.classes.GroupID(base)
	}
	if !x.Known {
		return x
	}
	x.Context = m.parser.ModifierID(x.Class)
	x.Conflicts = m.classes.Conflicts(x.Group, x.Postfix)
	return x
}

// Knows reports whether class (a single token) belongs to a class group.
func (m *Merger) Knows(class string) bool {
	return m.explain(class).Known
}

// Groups returns the IDs of all class groups known to m, in table order.
func (m *Merger) Groups() []string {
	return m.classes.Groups()
}

// WriteClassMap writes the class trie of m as a text tree.
func (m *Merger) WriteClassMap(w io.Writer) error {
	return m.classes.Dump(w)
}
