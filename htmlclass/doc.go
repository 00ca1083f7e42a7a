/*
Package htmlclass merges the class attributes of HTML documents.

Elements are selected by a CSS selector (using
github.com/andybalholm/cascadia), "[class]" if none is given. The class
attribute of every selected element is replaced by its merged value.
Documents are parsed and rendered with golang.org/x/net/html, thus the
output is normalized HTML.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlclass

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'twmerge.html'.
func tracer() tracing.Trace {
	return tracing.Select("twmerge.html")
}
