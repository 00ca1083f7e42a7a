package htmlclass

import (
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// DefaultSelector selects every element with a class attribute.
const DefaultSelector = "[class]"

// Merger merges class lists. *twmerge.Merger implements it.
type Merger interface {
	Merge(classLists ...string) string
}

// Rewrite reads an HTML document from r, merges the class attributes of the
// elements matching selector and writes the document to w. An empty
// selector means DefaultSelector. Rewrite returns the number of elements
// whose class attribute changed.
func Rewrite(r io.Reader, w io.Writer, m Merger, selector string) (int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("parsing HTML: %w", err)
	}
	n, err := RewriteNode(doc, m, selector)
	if err != nil {
		return 0, err
	}
	if err = html.Render(w, doc); err != nil {
		return n, fmt.Errorf("rendering HTML: %w", err)
	}
	return n, nil
}

// RewriteNode merges the class attributes below root in place.
func RewriteNode(root *html.Node, m Merger, selector string) (int, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return 0, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	changed := 0
	for _, elem := range sel.MatchAll(root) {
		for i, a := range elem.Attr {
			if a.Namespace != "" || a.Key != "class" {
				continue
			}
			merged := m.Merge(a.Val)
			if merged != a.Val {
				tracer().Debugf("<%s class=%q> → %q", elem.Data, a.Val, merged)
				elem.Attr[i].Val = merged
				changed++
			}
			break
		}
	}
	tracer().Infof("rewrote %d class attributes", changed)
	return changed, nil
}
