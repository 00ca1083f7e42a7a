package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/twmerge/config"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GroupPrefix starts the ID of every class group derived from a stylesheet.
const GroupPrefix = "css.."

// ErrNoStyles is returned by FromHTML for documents without <style> elements.
var ErrNoStyles = errors.New("no style elements found")

// A single class, optionally followed by pseudo classes or elements.
var classSelectorRE = regexp.MustCompile(`^\.((?:[A-Za-z0-9_-]|\\.)+)(?:::?[A-Za-z-]+(?:\([^)]*\))?)*$`)

// Sheet collects the properties set by the component classes of one or more
// stylesheets.
type Sheet struct {
	classes []string                   // in order of first appearance
	props   map[string]map[string]bool // class → longhand properties
}

func newSheet() *Sheet {
	return &Sheet{props: make(map[string]map[string]bool)}
}

// Parse reads a CSS source.
func Parse(source string) (*Sheet, error) {
	stylesheet, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(stylesheet), nil
}

// Wrap collects the component classes of a parsed douceur stylesheet.
func Wrap(stylesheet *css.Stylesheet) *Sheet {
	s := newSheet()
	s.addRules(stylesheet.Rules)
	tracer().Debugf("stylesheet with %d component classes", len(s.classes))
	return s
}

func (s *Sheet) addRules(rules []*css.Rule) {
	for _, r := range rules {
		if r.Kind == css.AtRule {
			s.addRules(r.Rules) // @media, @supports, @layer, …
			continue
		}
		for _, sel := range r.Selectors {
			class, ok := className(sel)
			if !ok {
				continue
			}
			for _, d := range r.Declarations {
				s.add(class, d.Property)
			}
		}
	}
}

func (s *Sheet) add(class, property string) {
	if s.props == nil {
		s.props = make(map[string]map[string]bool)
	}
	set, ok := s.props[class]
	if !ok {
		set = make(map[string]bool)
		s.props[class] = set
		s.classes = append(s.classes, class)
	}
	for _, p := range longhands(strings.ToLower(strings.TrimSpace(property))) {
		set[p] = true
	}
}

// className extracts the class of a single-class selector.
func className(selector string) (string, bool) {
	m := classSelectorRE.FindStringSubmatch(strings.TrimSpace(selector))
	if m == nil {
		return "", false
	}
	return unescape(m[1]), true
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Append adds the classes of other to s. Properties of classes present in
// both are united.
func (s *Sheet) Append(other *Sheet) {
	for _, class := range other.classes {
		for p := range other.props[class] {
			s.add(class, p)
		}
	}
}

// Empty is true if s holds no component classes.
func (s *Sheet) Empty() bool {
	return len(s.classes) == 0
}

// Classes returns the component classes in order of first appearance.
func (s *Sheet) Classes() []string {
	return append([]string(nil), s.classes...)
}

// Properties returns the sorted longhand properties set by class.
func (s *Sheet) Properties(class string) []string {
	set := s.props[class]
	props := make([]string, 0, len(set))
	for p := range set {
		props = append(props, p)
	}
	sort.Strings(props)
	return props
}

// --- Groups ----------------------------------------------------------------

// Extension returns class groups for the component classes of s, ready to be
// applied to a configuration with (*config.Config).Extend. Classes with equal
// property sets share a group. A group overrides all groups whose property
// set is a proper subset of its own.
func (s *Sheet) Extension() config.Extension {
	ext := config.Extension{ConflictingClassGroups: make(map[string][]string)}
	index := make(map[string]int)
	var sets []map[string]bool
	for _, class := range s.classes {
		props := s.Properties(class)
		if len(props) == 0 {
			continue
		}
		id := GroupPrefix + strings.Join(props, ",")
		if i, ok := index[id]; ok {
			ext.ClassGroups[i].Defs = append(ext.ClassGroups[i].Defs, class)
			continue
		}
		index[id] = len(ext.ClassGroups)
		ext.ClassGroups = append(ext.ClassGroups, config.ClassGroup{
			ID:   id,
			Defs: []config.ClassDef{class},
		})
		sets = append(sets, s.props[class])
	}
	for i, g := range ext.ClassGroups {
		for j, h := range ext.ClassGroups {
			if i != j && isSubset(sets[j], sets[i]) {
				ext.ConflictingClassGroups[g.ID] = append(ext.ConflictingClassGroups[g.ID], h.ID)
			}
		}
	}
	tracer().Infof("stylesheet yields %d class groups", len(ext.ClassGroups))
	return ext
}

// isSubset is true if a ⊂ b. Sets are distinct, thus equal size means
// not a subset.
func isSubset(a, b map[string]bool) bool {
	if len(a) >= len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

// --- Sources ---------------------------------------------------------------

// FromHTML reads the <style> elements of an HTML document, in <head> and
// <body>.
func FromHTML(r io.Reader) (*Sheet, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	sheet := newSheet()
	found := false
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		for _, source := range extractStyles(findElement(a, doc)) {
			s, err := Parse(source)
			if err != nil {
				return nil, err
			}
			sheet.Append(s)
			found = true
		}
	}
	if !found {
		return nil, ErrNoStyles
	}
	return sheet, nil
}

func extractStyles(h *html.Node) []string {
	if h == nil {
		return nil
	}
	var styles []string
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			styles = append(styles, ch.FirstChild.Data)
		}
	}
	return styles
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// Load reads a stylesheet file. Files ending in ".html" or ".htm" are
// searched for <style> elements, everything else is parsed as CSS.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}
	defer f.Close()
	tracer().Debugf("loading stylesheet %s", path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		s, err := FromHTML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return s, nil
	}
	source, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}
	s, err := Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadAll reads and appends a list of stylesheet files.
func LoadAll(paths ...string) (*Sheet, error) {
	sheet := newSheet()
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		sheet.Append(s)
	}
	return sheet, nil
}
