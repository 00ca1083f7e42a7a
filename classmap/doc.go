/*
Package classmap classifies utility classes into conflict groups.

A Map is built once from a config.Config. It holds a trie whose edges are
the "-"-separated parts of class names. Every node may carry a class group
ID (for classes ending at this node) and a list of validators, each paired
with a class group ID. Looking up "px-[3px]" descends along "px", finds no
child "[3px]" and asks the validators of node "px" for the remainder.

Theme references are expanded while building the trie, i.e. a Map is a
snapshot of the theme at construction time.

Besides classification, a Map answers which other groups a group overrides.
Conflicts are closed transitively: a group overriding "overflow" overrides
"overflow-x" and "overflow-y" as well. Groups which override each other
mutually (like "touch" and "touch-x") are not expanded through.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'twmerge.classmap'.
func tracer() tracing.Trace {
	return tracing.Select("twmerge.classmap")
}
