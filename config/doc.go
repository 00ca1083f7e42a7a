/*
Package config holds the options of a class merger and the data-driven
table of utility class groups.

A Config is a plain value. Default returns a fresh copy of the built-in
table, which covers the utility groups of Tailwind CSS v3. Clients adapt
it either by setting fields directly, by applying an Extension, or by
loading a YAML file with LoadFile.

Class groups

A class group lists the class names belonging to one conflict category.
Class names are given as a tree of parts separated by "-": a definition

    ClassGroup{ID: "p", Defs: []ClassDef{Parts{"p": {ThemeRef("padding")}}}}

makes every class "p-<v>" a member of group "p", for every value v of the
"padding" theme scale. Theme scales are again lists of definitions, usually
literals and validators (see package validate).

Conflicts

ConflictingClassGroups maps a shorthand group to the groups it overrides.
ConflictingClassGroupModifiers adds conflicts which apply only if a class
carries a postfix modifier, e.g. "text-lg/7" sets the line height as well.

Errors

Invalid options are reported as *ConfigurationError, which wraps
ErrInvalidConfig.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'twmerge.config'.
func tracer() tracing.Trace {
	return tracing.Select("twmerge.config")
}
