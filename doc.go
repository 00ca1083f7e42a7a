/*
Package twmerge merges lists of utility classes (in the style of Tailwind
CSS) without style conflicts.

Given

    twmerge.Merge("px-2 py-1 bg-red hover:bg-dark-red", "p-3 bg-[#B91C1C]")

the result is "p-3 bg-[#B91C1C] hover:bg-dark-red": "p-3" sets all
paddings and supersedes "px-2" and "py-1", the background color is
overridden, while the color for hover state is kept as it lives in a
different modifier context.

Rules

Tokens are processed from left to right. For every token, the class group
("p", "bg-color", …) and modifier context ("hover:", "md:focus:", "!", …)
is determined. A token supersedes every earlier token of the same context
whose group it covers: its own group plus all groups the group overrides
(see package config). The superseding token takes the place of the
earliest superseded one, i.e. every surviving group keeps the position of
its first occurrence but holds the value of the last one.

Tokens which do not belong to any group are kept in order; exact
duplicates collapse to their first occurrence. With a prefix configured,
tokens lacking it are kept untouched.

Configuration

Package-level functions use a process-wide Merger, which is created from
config.Default() on first use. Configure and Use replace it atomically; a
merge in flight always sees one consistent configuration. Clients needing
more than one configuration create their own Mergers with New.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package twmerge

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'twmerge'.
func tracer() tracing.Trace {
	return tracing.Select("twmerge")
}
