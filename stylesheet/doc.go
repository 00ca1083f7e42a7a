/*
Package stylesheet derives class groups from a project's own CSS.

Component classes like

    .card  { padding: 1rem; border-radius: .5rem }
    .tight { padding-left: 0 }

are unknown to the built-in class table and would be kept by a merge as
they are. Reading the stylesheet, every class with a single-class selector
is put into a group for its set of properties. A group overrides every
group whose properties are a subset of its own, so "tight card" merges to
"card", while "card tight" is kept.

Shorthand properties are expanded to their longhands for comparison.
Stylesheets are parsed with github.com/aymerick/douceur; rules nested in
at-rules like @media are included.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylesheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'twmerge.stylesheet'.
func tracer() tracing.Trace {
	return tracing.Select("twmerge.stylesheet")
}
