package classname

import (
	"sort"
	"strings"
)

// ImportantModifier marks a class as !important, either in front of the
// base utility (v3 syntax, "!p-4") or behind it (v4 syntax, "p-4!").
const ImportantModifier = "!"

// Class is a parsed class token.
type Class struct {
	Original  string   // the token as given
	Modifiers []string // variant modifiers in order of appearance
	Important bool     // important marker present
	Base      string   // base utility without prefix, modifiers and important marker
	PostfixAt int      // index of the postfix modifier's '/' in Base, or -1
	External  bool     // token lacks the configured prefix
}

// HasPostfix is true if the base utility carries a postfix modifier.
func (c Class) HasPostfix() bool {
	return c.PostfixAt > 0
}

// Parser parses class tokens for a given prefix and separator.
// A Parser is immutable and may be used concurrently.
type Parser struct {
	prefix         string
	separator      string
	orderSensitive map[string]bool
}

// NewParser creates a parser. prefix may be empty, separator must not.
// orderSensitive lists modifiers which are not reordered by SortModifiers.
func NewParser(prefix, separator string, orderSensitive []string) *Parser {
	p := &Parser{
		prefix:         prefix,
		separator:      separator,
		orderSensitive: make(map[string]bool, len(orderSensitive)),
	}
	for _, m := range orderSensitive {
		p.orderSensitive[m] = true
	}
	return p
}

// Prefix returns the configured prefix.
func (p *Parser) Prefix() string {
	return p.prefix
}

// Separator returns the configured separator.
func (p *Parser) Separator() string {
	return p.separator
}

// Parse splits a token. It never fails; malformed tokens result in a base
// utility no class group will match.
//
// If a prefix is configured, it is expected either in front of the token
// ("tw-hover:p-4") or in front of the base utility ("hover:tw-p-4",
// "hover:-tw-m-2"). Tokens without it are marked External.
func (p *Parser) Parse(token string) Class {
	c := Class{Original: token, PostfixAt: -1}
	s := token
	prefixed := p.prefix == ""
	if !prefixed && strings.HasPrefix(s, p.prefix) {
		s = s[len(p.prefix):]
		prefixed = true
	}
	c.Modifiers, s = p.split(s)
	s, c.Important = stripImportant(s)
	if !prefixed {
		var ok bool
		if s, ok = p.stripPrefix(s); !ok {
			return Class{Original: token, Base: token, PostfixAt: -1, External: true}
		}
		if !c.Important {
			s, c.Important = stripImportant(s)
		}
	}
	c.Base = s
	c.PostfixAt = postfixPosition(s)
	return c
}

// split cuts s at every top-level occurrence of the separator.
func (p *Parser) split(s string) ([]string, string) {
	var modifiers []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
			continue
		case ']', ')':
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth == 0 && strings.HasPrefix(s[i:], p.separator) {
			modifiers = append(modifiers, s[start:i])
			i += len(p.separator) - 1
			start = i + 1
		}
	}
	return modifiers, s[start:]
}

func (p *Parser) stripPrefix(base string) (string, bool) {
	if strings.HasPrefix(base, p.prefix) {
		return base[len(p.prefix):], true
	}
	if strings.HasPrefix(base, "-"+p.prefix) {
		return "-" + base[len(p.prefix)+1:], true
	}
	return base, false
}

func stripImportant(base string) (string, bool) {
	if strings.HasPrefix(base, ImportantModifier) {
		return base[len(ImportantModifier):], true
	}
	if strings.HasSuffix(base, ImportantModifier) {
		return base[:len(base)-len(ImportantModifier)], true
	}
	return base, false
}

// postfixPosition finds the last top-level '/' of base.
func postfixPosition(base string) int {
	pos, depth := -1, 0
	for i := 0; i < len(base); i++ {
		switch base[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				pos = i
			}
		}
	}
	return pos
}

// --- Modifier context ------------------------------------------------------

// SortModifiers returns a sorted copy of modifiers. Runs of ordinary
// modifiers are sorted alphabetically, while arbitrary variants ("[&>*]")
// and order-sensitive modifiers keep their position.
func (p *Parser) SortModifiers(modifiers []string) []string {
	if len(modifiers) <= 1 {
		return modifiers
	}
	sorted := make([]string, 0, len(modifiers))
	var run []string
	for _, m := range modifiers {
		if strings.HasPrefix(m, "[") || p.orderSensitive[m] {
			sort.Strings(run)
			sorted = append(sorted, run...)
			sorted = append(sorted, m)
			run = run[:0]
			continue
		}
		run = append(run, m)
	}
	sort.Strings(run)
	return append(sorted, run...)
}

// ModifierID returns the modifier context of c: its sorted modifiers joined
// by the separator, followed by "!" for important classes. Classes conflict
// only within the same context.
func (p *Parser) ModifierID(c Class) string {
	id := strings.Join(p.SortModifiers(c.Modifiers), p.separator)
	if c.Important {
		id += ImportantModifier
	}
	return id
}
