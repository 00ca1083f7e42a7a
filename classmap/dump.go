package classmap

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"sort"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump writes the class trie as a text tree, for debugging. Nodes are
// listed with their class group in brackets, validators as
// "‹validator› → group".
func (m *Map) Dump(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	return err
}

// String renders the class trie as a text tree.
func (m *Map) String() string {
	printer := tp.New()
	printNode(printer, m.root)
	return printer.String()
}

func printNode(printer tp.Tree, n *node) {
	for _, v := range n.validators {
		printer.AddNode(fmt.Sprintf("‹%s› → %s", funcName(v.fn), v.groupID))
	}
	keys := make([]string, 0, len(n.next))
	for k := range n.next {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		child := n.next[k]
		label := k
		if child.groupID != "" {
			label = fmt.Sprintf("%s [%s]", k, child.groupID)
		}
		if len(child.next) == 0 && len(child.validators) == 0 {
			printer.AddNode(label)
			continue
		}
		printNode(printer.AddBranch(label), child)
	}
}

func funcName(f interface{}) string {
	name := runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
