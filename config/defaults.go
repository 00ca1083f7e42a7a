package config

import (
	"github.com/npillmayer/twmerge/validate"
)

// DefaultSeparator separates modifiers from each other and from the utility.
const DefaultSeparator = ":"

// DefaultCacheSize is the number of merge results a merger remembers.
const DefaultCacheSize = 500

var (
	isAny               = validate.IsAny
	isNumber            = validate.IsNumber
	isInteger           = validate.IsInteger
	isPercent           = validate.IsPercent
	isLength            = validate.IsLength
	isTshirtSize        = validate.IsTshirtSize
	isArbitraryValue    = validate.IsArbitraryValue
	isArbitraryLength   = validate.IsArbitraryLength
	isArbitraryNumber   = validate.IsArbitraryNumber
	isArbitrarySize     = validate.IsArbitrarySize
	isArbitraryPosition = validate.IsArbitraryPosition
	isArbitraryImage    = validate.IsArbitraryImage
	isArbitraryShadow   = validate.IsArbitraryShadow
)

const (
	colors                     = ThemeRef("colors")
	spacing                    = ThemeRef("spacing")
	blur                       = ThemeRef("blur")
	brightness                 = ThemeRef("brightness")
	borderColor                = ThemeRef("border-color")
	borderRadius               = ThemeRef("border-radius")
	borderSpacing              = ThemeRef("border-spacing")
	borderWidth                = ThemeRef("border-width")
	contrast                   = ThemeRef("contrast")
	grayscale                  = ThemeRef("grayscale")
	hueRotate                  = ThemeRef("hue-rotate")
	invert                     = ThemeRef("invert")
	gap                        = ThemeRef("gap")
	gradientColorStops         = ThemeRef("gradient-color-stops")
	gradientColorStopPositions = ThemeRef("gradient-color-stop-positions")
	inset                      = ThemeRef("inset")
	margin                     = ThemeRef("margin")
	opacity                    = ThemeRef("opacity")
	padding                    = ThemeRef("padding")
	saturate                   = ThemeRef("saturate")
	scale                      = ThemeRef("scale")
	sepia                      = ThemeRef("sepia")
	skew                       = ThemeRef("skew")
	space                      = ThemeRef("space")
	translate                  = ThemeRef("translate")
)

// --- Helpers ---------------------------------------------------------------

func defs(d ...ClassDef) []ClassDef {
	return d
}

func with(base []ClassDef, more ...ClassDef) []ClassDef {
	return append(base, more...)
}

func stem(s string, d ...ClassDef) ClassDef {
	return Parts{s: d}
}

func group(id string, d ...ClassDef) ClassGroup {
	return ClassGroup{ID: id, Defs: d}
}

// literals converts string literals to class definitions.
func literals(s ...string) []ClassDef {
	d := make([]ClassDef, len(s))
	for i := range s {
		d[i] = s[i]
	}
	return d
}

func overscroll() []ClassDef { return literals("auto", "contain", "none") }
func overflow() []ClassDef   { return literals("auto", "hidden", "clip", "visible", "scroll") }
func lineStyles() []ClassDef { return literals("solid", "dashed", "dotted", "double", "none") }
func align() []ClassDef {
	return literals("start", "end", "center", "between", "around", "evenly", "stretch")
}
func breaks() []ClassDef {
	return literals("auto", "avoid", "all", "avoid-page", "page", "left", "right", "column")
}
func positions() []ClassDef {
	return literals("bottom", "center", "left", "left-bottom", "left-top",
		"right", "right-bottom", "right-top", "top")
}
func blendModes() []ClassDef {
	return literals("normal", "multiply", "screen", "overlay", "darken", "lighten",
		"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
		"exclusion", "hue", "saturation", "color", "luminosity")
}
func spacingWithAutoAndArbitrary() []ClassDef { return defs("auto", isArbitraryValue, spacing) }
func spacingWithArbitrary() []ClassDef        { return defs(isArbitraryValue, spacing) }
func lengthWithEmptyAndArbitrary() []ClassDef { return defs("", isLength, isArbitraryLength) }
func numberWithAutoAndArbitrary() []ClassDef  { return defs("auto", isNumber, isArbitraryValue) }
func zeroAndEmpty() []ClassDef                { return defs("", "0", isArbitraryValue) }
func numberAndArbitrary() []ClassDef          { return defs(isNumber, isArbitraryValue) }

// Default returns a new Config holding the built-in options and class table.
// Every call returns a fresh value.
func Default() *Config {
	return &Config{
		Separator:                      DefaultSeparator,
		CacheSize:                      DefaultCacheSize,
		Theme:                          defaultTheme(),
		ClassGroups:                    defaultClassGroups(),
		ConflictingClassGroups:         defaultConflicts(),
		ConflictingClassGroupModifiers: map[string][]string{"font-size": {"leading"}},
		OrderSensitiveModifiers: []string{
			"before", "after", "placeholder", "file", "marker", "selection",
			"first-line", "first-letter", "backdrop", "details-content", "*", "**",
		},
	}
}

func defaultTheme() map[string][]ClassDef {
	return map[string][]ClassDef{
		"colors":                        defs(isAny),
		"spacing":                       defs(isLength, isArbitraryLength),
		"blur":                          defs("none", "", isTshirtSize, isArbitraryValue),
		"brightness":                    numberAndArbitrary(),
		"border-color":                  defs(colors),
		"border-radius":                 defs("none", "", "full", isTshirtSize, isArbitraryValue),
		"border-spacing":                spacingWithArbitrary(),
		"border-width":                  lengthWithEmptyAndArbitrary(),
		"contrast":                      numberAndArbitrary(),
		"grayscale":                     zeroAndEmpty(),
		"hue-rotate":                    numberAndArbitrary(),
		"invert":                        zeroAndEmpty(),
		"gap":                           spacingWithArbitrary(),
		"gradient-color-stops":          defs(colors),
		"gradient-color-stop-positions": defs(isPercent, isArbitraryLength),
		"inset":                         spacingWithAutoAndArbitrary(),
		"margin":                        spacingWithAutoAndArbitrary(),
		"opacity":                       numberAndArbitrary(),
		"padding":                       spacingWithArbitrary(),
		"saturate":                      numberAndArbitrary(),
		"scale":                         numberAndArbitrary(),
		"sepia":                         zeroAndEmpty(),
		"skew":                          numberAndArbitrary(),
		"space":                         spacingWithArbitrary(),
		"translate":                     spacingWithArbitrary(),
	}
}

func defaultClassGroups() []ClassGroup {
	return []ClassGroup{
		// Layout
		group("aspect", stem("aspect", "auto", "square", "video", isArbitraryValue)),
		group("container", "container"),
		group("columns", stem("columns", isTshirtSize)),
		group("break-after", stem("break-after", breaks()...)),
		group("break-before", stem("break-before", breaks()...)),
		group("break-inside", stem("break-inside", "auto", "avoid", "avoid-page", "avoid-column")),
		group("box-decoration", stem("box-decoration", "slice", "clone")),
		group("box", stem("box", "border", "content")),
		group("display", literals("block", "inline-block", "inline", "flex", "inline-flex",
			"table", "inline-table", "table-caption", "table-cell", "table-column",
			"table-column-group", "table-footer-group", "table-header-group",
			"table-row-group", "table-row", "flow-root", "grid", "inline-grid",
			"contents", "list-item", "hidden")...),
		group("float", stem("float", "right", "left", "none", "start", "end")),
		group("clear", stem("clear", "left", "right", "both", "none", "start", "end")),
		group("isolation", "isolate", "isolation-auto"),
		group("object-fit", stem("object", "contain", "cover", "fill", "none", "scale-down")),
		group("object-position", stem("object", with(positions(), isArbitraryValue)...)),
		group("overflow", stem("overflow", overflow()...)),
		group("overflow-x", stem("overflow-x", overflow()...)),
		group("overflow-y", stem("overflow-y", overflow()...)),
		group("overscroll", stem("overscroll", overscroll()...)),
		group("overscroll-x", stem("overscroll-x", overscroll()...)),
		group("overscroll-y", stem("overscroll-y", overscroll()...)),
		group("position", "static", "fixed", "absolute", "relative", "sticky"),
		group("inset", stem("inset", inset)),
		group("inset-x", stem("inset-x", inset)),
		group("inset-y", stem("inset-y", inset)),
		group("start", stem("start", inset)),
		group("end", stem("end", inset)),
		group("top", stem("top", inset)),
		group("right", stem("right", inset)),
		group("bottom", stem("bottom", inset)),
		group("left", stem("left", inset)),
		group("visibility", "visible", "invisible", "collapse"),
		group("z", stem("z", "auto", isInteger, isArbitraryValue)),

		// Flexbox and Grid
		group("basis", stem("basis", spacingWithAutoAndArbitrary()...)),
		group("flex-direction", stem("flex", "row", "row-reverse", "col", "col-reverse")),
		group("flex-wrap", stem("flex", "wrap", "wrap-reverse", "nowrap")),
		group("flex", stem("flex", "1", "auto", "initial", "none", isArbitraryValue)),
		group("grow", stem("grow", zeroAndEmpty()...)),
		group("shrink", stem("shrink", zeroAndEmpty()...)),
		group("order", stem("order", "first", "last", "none", isInteger, isArbitraryValue)),
		group("grid-cols", stem("grid-cols", isAny)),
		group("col-start-end", stem("col", "auto",
			stem("span", "full", isInteger, isArbitraryValue), isArbitraryValue)),
		group("col-start", stem("col-start", numberWithAutoAndArbitrary()...)),
		group("col-end", stem("col-end", numberWithAutoAndArbitrary()...)),
		group("grid-rows", stem("grid-rows", isAny)),
		group("row-start-end", stem("row", "auto",
			stem("span", isInteger, isArbitraryValue), isArbitraryValue)),
		group("row-start", stem("row-start", numberWithAutoAndArbitrary()...)),
		group("row-end", stem("row-end", numberWithAutoAndArbitrary()...)),
		group("grid-flow", stem("grid-flow", "row", "col", "dense", "row-dense", "col-dense")),
		group("auto-cols", stem("auto-cols", "auto", "min", "max", "fr", isArbitraryValue)),
		group("auto-rows", stem("auto-rows", "auto", "min", "max", "fr", isArbitraryValue)),
		group("gap", stem("gap", gap)),
		group("gap-x", stem("gap-x", gap)),
		group("gap-y", stem("gap-y", gap)),
		group("justify-content", stem("justify", with(literals("normal"), align()...)...)),
		group("justify-items", stem("justify-items", "start", "end", "center", "stretch")),
		group("justify-self", stem("justify-self", "auto", "start", "end", "center", "stretch")),
		group("align-content", stem("content", with(with(literals("normal"), align()...), "baseline")...)),
		group("align-items", stem("items", "start", "end", "center", "baseline", "stretch")),
		group("align-self", stem("self", "auto", "start", "end", "center", "stretch", "baseline")),
		group("place-content", stem("place-content", with(align(), "baseline")...)),
		group("place-items", stem("place-items", "start", "end", "center", "baseline", "stretch")),
		group("place-self", stem("place-self", "auto", "start", "end", "center", "stretch")),

		// Spacing
		group("p", stem("p", padding)),
		group("px", stem("px", padding)),
		group("py", stem("py", padding)),
		group("ps", stem("ps", padding)),
		group("pe", stem("pe", padding)),
		group("pt", stem("pt", padding)),
		group("pr", stem("pr", padding)),
		group("pb", stem("pb", padding)),
		group("pl", stem("pl", padding)),
		group("m", stem("m", margin)),
		group("mx", stem("mx", margin)),
		group("my", stem("my", margin)),
		group("ms", stem("ms", margin)),
		group("me", stem("me", margin)),
		group("mt", stem("mt", margin)),
		group("mr", stem("mr", margin)),
		group("mb", stem("mb", margin)),
		group("ml", stem("ml", margin)),
		group("space-x", stem("space-x", space)),
		group("space-x-reverse", "space-x-reverse"),
		group("space-y", stem("space-y", space)),
		group("space-y-reverse", "space-y-reverse"),

		// Sizing
		group("w", stem("w", "auto", "min", "max", "fit", "svw", "lvw", "dvw", isArbitraryValue, spacing)),
		group("min-w", stem("min-w", isArbitraryValue, spacing, "min", "max", "fit")),
		group("max-w", stem("max-w", isArbitraryValue, spacing, "none", "full", "min", "max",
			"fit", "prose", stem("screen", isTshirtSize), isTshirtSize)),
		group("h", stem("h", isArbitraryValue, spacing, "auto", "min", "max", "fit", "svh", "lvh", "dvh")),
		group("min-h", stem("min-h", isArbitraryValue, spacing, "min", "max", "fit", "svh", "lvh", "dvh")),
		group("max-h", stem("max-h", isArbitraryValue, spacing, "min", "max", "fit", "svh", "lvh", "dvh")),
		group("size", stem("size", isArbitraryValue, spacing, "auto", "min", "max", "fit")),

		// Typography
		group("font-size", stem("text", "base", isTshirtSize, isArbitraryLength)),
		group("font-smoothing", "antialiased", "subpixel-antialiased"),
		group("font-style", "italic", "not-italic"),
		group("font-weight", stem("font", "thin", "extralight", "light", "normal", "medium",
			"semibold", "bold", "extrabold", "black", isArbitraryNumber)),
		group("font-family", stem("font", isAny)),
		group("fvn-normal", "normal-nums"),
		group("fvn-ordinal", "ordinal"),
		group("fvn-slashed-zero", "slashed-zero"),
		group("fvn-figure", "lining-nums", "oldstyle-nums"),
		group("fvn-spacing", "proportional-nums", "tabular-nums"),
		group("fvn-fraction", "diagonal-fractions", "stacked-fractions"),
		group("tracking", stem("tracking", "tighter", "tight", "normal", "wide", "wider",
			"widest", isArbitraryValue)),
		group("line-clamp", stem("line-clamp", "none", isNumber, isArbitraryNumber)),
		group("leading", stem("leading", "none", "tight", "snug", "normal", "relaxed", "loose",
			isLength, isArbitraryValue)),
		group("list-image", stem("list-image", "none", isArbitraryValue)),
		group("list-style-type", stem("list", "none", "disc", "decimal", isArbitraryValue)),
		group("list-style-position", stem("list", "inside", "outside")),
		group("placeholder-color", stem("placeholder", colors)),
		group("placeholder-opacity", stem("placeholder-opacity", opacity)),
		group("text-alignment", stem("text", "left", "center", "right", "justify", "start", "end")),
		group("text-color", stem("text", colors)),
		group("text-opacity", stem("text-opacity", opacity)),
		group("text-decoration", "underline", "overline", "line-through", "no-underline"),
		group("text-decoration-style", stem("decoration", with(lineStyles(), "wavy")...)),
		group("text-decoration-thickness", stem("decoration", "auto", "from-font", isLength, isArbitraryLength)),
		group("underline-offset", stem("underline-offset", "auto", isLength, isArbitraryValue)),
		group("text-decoration-color", stem("decoration", colors)),
		group("text-transform", "uppercase", "lowercase", "capitalize", "normal-case"),
		group("text-overflow", "truncate", "text-ellipsis", "text-clip"),
		group("text-wrap", stem("text", "wrap", "nowrap", "balance", "pretty")),
		group("indent", stem("indent", spacingWithArbitrary()...)),
		group("vertical-align", stem("align", "baseline", "top", "middle", "bottom", "text-top",
			"text-bottom", "sub", "super", isArbitraryValue)),
		group("whitespace", stem("whitespace", "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces")),
		group("break", stem("break", "normal", "words", "all", "keep")),
		group("hyphens", stem("hyphens", "none", "manual", "auto")),
		group("content", stem("content", "none", isArbitraryValue)),

		// Backgrounds
		group("bg-attachment", stem("bg", "fixed", "local", "scroll")),
		group("bg-clip", stem("bg-clip", "border", "padding", "content", "text")),
		group("bg-opacity", stem("bg-opacity", opacity)),
		group("bg-origin", stem("bg-origin", "border", "padding", "content")),
		group("bg-position", stem("bg", with(positions(), isArbitraryPosition)...)),
		group("bg-repeat", stem("bg", "no-repeat", stem("repeat", "", "x", "y", "round", "space"))),
		group("bg-size", stem("bg", "auto", "cover", "contain", isArbitrarySize)),
		group("bg-image", stem("bg", "none",
			stem("gradient-to", "t", "tr", "r", "br", "b", "bl", "l", "tl"), isArbitraryImage)),
		group("bg-color", stem("bg", colors)),
		group("gradient-from-pos", stem("from", gradientColorStopPositions)),
		group("gradient-via-pos", stem("via", gradientColorStopPositions)),
		group("gradient-to-pos", stem("to", gradientColorStopPositions)),
		group("gradient-from", stem("from", gradientColorStops)),
		group("gradient-via", stem("via", gradientColorStops)),
		group("gradient-to", stem("to", gradientColorStops)),

		// Borders
		group("rounded", stem("rounded", borderRadius)),
		group("rounded-s", stem("rounded-s", borderRadius)),
		group("rounded-e", stem("rounded-e", borderRadius)),
		group("rounded-t", stem("rounded-t", borderRadius)),
		group("rounded-r", stem("rounded-r", borderRadius)),
		group("rounded-b", stem("rounded-b", borderRadius)),
		group("rounded-l", stem("rounded-l", borderRadius)),
		group("rounded-ss", stem("rounded-ss", borderRadius)),
		group("rounded-se", stem("rounded-se", borderRadius)),
		group("rounded-ee", stem("rounded-ee", borderRadius)),
		group("rounded-es", stem("rounded-es", borderRadius)),
		group("rounded-tl", stem("rounded-tl", borderRadius)),
		group("rounded-tr", stem("rounded-tr", borderRadius)),
		group("rounded-br", stem("rounded-br", borderRadius)),
		group("rounded-bl", stem("rounded-bl", borderRadius)),
		group("border-w", stem("border", borderWidth)),
		group("border-w-x", stem("border-x", borderWidth)),
		group("border-w-y", stem("border-y", borderWidth)),
		group("border-w-s", stem("border-s", borderWidth)),
		group("border-w-e", stem("border-e", borderWidth)),
		group("border-w-t", stem("border-t", borderWidth)),
		group("border-w-r", stem("border-r", borderWidth)),
		group("border-w-b", stem("border-b", borderWidth)),
		group("border-w-l", stem("border-l", borderWidth)),
		group("border-opacity", stem("border-opacity", opacity)),
		group("border-style", stem("border", with(lineStyles(), "hidden")...)),
		group("divide-x", stem("divide-x", borderWidth)),
		group("divide-x-reverse", "divide-x-reverse"),
		group("divide-y", stem("divide-y", borderWidth)),
		group("divide-y-reverse", "divide-y-reverse"),
		group("divide-opacity", stem("divide-opacity", opacity)),
		group("divide-style", stem("divide", lineStyles()...)),
		group("border-color", stem("border", borderColor)),
		group("border-color-x", stem("border-x", borderColor)),
		group("border-color-y", stem("border-y", borderColor)),
		group("border-color-s", stem("border-s", borderColor)),
		group("border-color-e", stem("border-e", borderColor)),
		group("border-color-t", stem("border-t", borderColor)),
		group("border-color-r", stem("border-r", borderColor)),
		group("border-color-b", stem("border-b", borderColor)),
		group("border-color-l", stem("border-l", borderColor)),
		group("divide-color", stem("divide", borderColor)),
		group("outline-style", stem("outline", with(literals(""), lineStyles()...)...)),
		group("outline-offset", stem("outline-offset", isLength, isArbitraryValue)),
		group("outline-w", stem("outline", isLength, isArbitraryLength)),
		group("outline-color", stem("outline", colors)),
		group("ring-w", stem("ring", lengthWithEmptyAndArbitrary()...)),
		group("ring-w-inset", "ring-inset"),
		group("ring-color", stem("ring", colors)),
		group("ring-opacity", stem("ring-opacity", opacity)),
		group("ring-offset-w", stem("ring-offset", isLength, isArbitraryLength)),
		group("ring-offset-color", stem("ring-offset", colors)),

		// Effects
		group("shadow", stem("shadow", "", "inner", "none", isTshirtSize, isArbitraryShadow)),
		group("shadow-color", stem("shadow", isAny)),
		group("opacity", stem("opacity", opacity)),
		group("mix-blend", stem("mix-blend", with(blendModes(), "plus-lighter", "plus-darker")...)),
		group("bg-blend", stem("bg-blend", blendModes()...)),

		// Filters
		group("filter", stem("filter", "", "none")),
		group("blur", stem("blur", blur)),
		group("brightness", stem("brightness", brightness)),
		group("contrast", stem("contrast", contrast)),
		group("drop-shadow", stem("drop-shadow", "", "none", isTshirtSize, isArbitraryValue)),
		group("grayscale", stem("grayscale", grayscale)),
		group("hue-rotate", stem("hue-rotate", hueRotate)),
		group("invert", stem("invert", invert)),
		group("saturate", stem("saturate", saturate)),
		group("sepia", stem("sepia", sepia)),
		group("backdrop-filter", stem("backdrop-filter", "", "none")),
		group("backdrop-blur", stem("backdrop-blur", blur)),
		group("backdrop-brightness", stem("backdrop-brightness", brightness)),
		group("backdrop-contrast", stem("backdrop-contrast", contrast)),
		group("backdrop-grayscale", stem("backdrop-grayscale", grayscale)),
		group("backdrop-hue-rotate", stem("backdrop-hue-rotate", hueRotate)),
		group("backdrop-invert", stem("backdrop-invert", invert)),
		group("backdrop-opacity", stem("backdrop-opacity", opacity)),
		group("backdrop-saturate", stem("backdrop-saturate", saturate)),
		group("backdrop-sepia", stem("backdrop-sepia", sepia)),

		// Tables
		group("border-collapse", stem("border", "collapse", "separate")),
		group("border-spacing", stem("border-spacing", borderSpacing)),
		group("border-spacing-x", stem("border-spacing-x", borderSpacing)),
		group("border-spacing-y", stem("border-spacing-y", borderSpacing)),
		group("table-layout", stem("table", "auto", "fixed")),
		group("caption", stem("caption", "top", "bottom")),

		// Transitions and Animation
		group("transition", stem("transition", "none", "all", "", "colors", "opacity",
			"shadow", "transform", isArbitraryValue)),
		group("duration", stem("duration", numberAndArbitrary()...)),
		group("ease", stem("ease", "linear", "in", "out", "in-out", isArbitraryValue)),
		group("delay", stem("delay", numberAndArbitrary()...)),
		group("animate", stem("animate", "none", "spin", "ping", "pulse", "bounce", isArbitraryValue)),

		// Transforms
		group("transform", stem("transform", "", "gpu", "none")),
		group("scale", stem("scale", scale)),
		group("scale-x", stem("scale-x", scale)),
		group("scale-y", stem("scale-y", scale)),
		group("rotate", stem("rotate", isInteger, isArbitraryValue)),
		group("translate-x", stem("translate-x", translate)),
		group("translate-y", stem("translate-y", translate)),
		group("skew-x", stem("skew-x", skew)),
		group("skew-y", stem("skew-y", skew)),
		group("transform-origin", stem("origin", "center", "top", "top-right", "right",
			"bottom-right", "bottom", "bottom-left", "left", "top-left", isArbitraryValue)),

		// Interactivity
		group("accent", stem("accent", "auto", colors)),
		group("appearance", stem("appearance", "none", "auto")),
		group("cursor", stem("cursor", with(literals("auto", "default", "pointer", "wait",
			"text", "move", "help", "not-allowed", "none", "context-menu", "progress",
			"cell", "crosshair", "vertical-text", "alias", "copy", "no-drop", "grab",
			"grabbing", "all-scroll", "col-resize", "row-resize", "n-resize", "e-resize",
			"s-resize", "w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize",
			"ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "zoom-in", "zoom-out"),
			isArbitraryValue)...)),
		group("caret-color", stem("caret", colors)),
		group("pointer-events", stem("pointer-events", "none", "auto")),
		group("resize", stem("resize", "none", "y", "x", "")),
		group("scroll-behavior", stem("scroll", "auto", "smooth")),
		group("scroll-m", stem("scroll-m", spacingWithArbitrary()...)),
		group("scroll-mx", stem("scroll-mx", spacingWithArbitrary()...)),
		group("scroll-my", stem("scroll-my", spacingWithArbitrary()...)),
		group("scroll-ms", stem("scroll-ms", spacingWithArbitrary()...)),
		group("scroll-me", stem("scroll-me", spacingWithArbitrary()...)),
		group("scroll-mt", stem("scroll-mt", spacingWithArbitrary()...)),
		group("scroll-mr", stem("scroll-mr", spacingWithArbitrary()...)),
		group("scroll-mb", stem("scroll-mb", spacingWithArbitrary()...)),
		group("scroll-ml", stem("scroll-ml", spacingWithArbitrary()...)),
		group("scroll-p", stem("scroll-p", spacingWithArbitrary()...)),
		group("scroll-px", stem("scroll-px", spacingWithArbitrary()...)),
		group("scroll-py", stem("scroll-py", spacingWithArbitrary()...)),
		group("scroll-ps", stem("scroll-ps", spacingWithArbitrary()...)),
		group("scroll-pe", stem("scroll-pe", spacingWithArbitrary()...)),
		group("scroll-pt", stem("scroll-pt", spacingWithArbitrary()...)),
		group("scroll-pr", stem("scroll-pr", spacingWithArbitrary()...)),
		group("scroll-pb", stem("scroll-pb", spacingWithArbitrary()...)),
		group("scroll-pl", stem("scroll-pl", spacingWithArbitrary()...)),
		group("snap-align", stem("snap", "start", "end", "center", "align-none")),
		group("snap-stop", stem("snap", "normal", "always")),
		group("snap-type", stem("snap", "none", "x", "y", "both")),
		group("snap-strictness", stem("snap", "mandatory", "proximity")),
		group("touch", stem("touch", "auto", "none", "manipulation")),
		group("touch-x", stem("touch-pan", "x", "left", "right")),
		group("touch-y", stem("touch-pan", "y", "up", "down")),
		group("touch-pz", "touch-pinch-zoom"),
		group("select", stem("select", "none", "text", "all", "auto")),
		group("will-change", stem("will-change", "auto", "scroll", "contents", "transform", isArbitraryValue)),

		// SVG
		group("fill", stem("fill", colors, "none")),
		group("stroke-w", stem("stroke", isLength, isArbitraryLength, isArbitraryNumber)),
		group("stroke", stem("stroke", colors, "none")),

		// Accessibility
		group("sr", "sr-only", "not-sr-only"),
		group("forced-color-adjust", stem("forced-color-adjust", "auto", "none")),
	}
}

func defaultConflicts() map[string][]string {
	return map[string][]string{
		"overflow":         {"overflow-x", "overflow-y"},
		"overscroll":       {"overscroll-x", "overscroll-y"},
		"inset":            {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
		"inset-x":          {"right", "left"},
		"inset-y":          {"top", "bottom"},
		"flex":             {"basis", "grow", "shrink"},
		"gap":              {"gap-x", "gap-y"},
		"p":                {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
		"px":               {"pr", "pl"},
		"py":               {"pt", "pb"},
		"m":                {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
		"mx":               {"mr", "ml"},
		"my":               {"mt", "mb"},
		"size":             {"w", "h"},
		"fvn-normal":       {"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"},
		"fvn-ordinal":      {"fvn-normal"},
		"fvn-slashed-zero": {"fvn-normal"},
		"fvn-figure":       {"fvn-normal"},
		"fvn-spacing":      {"fvn-normal"},
		"fvn-fraction":     {"fvn-normal"},
		"line-clamp":       {"display", "overflow"},
		"rounded": {"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l",
			"rounded-ss", "rounded-se", "rounded-ee", "rounded-es",
			"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
		"rounded-s":      {"rounded-ss", "rounded-es"},
		"rounded-e":      {"rounded-se", "rounded-ee"},
		"rounded-t":      {"rounded-tl", "rounded-tr"},
		"rounded-r":      {"rounded-tr", "rounded-br"},
		"rounded-b":      {"rounded-br", "rounded-bl"},
		"rounded-l":      {"rounded-tl", "rounded-bl"},
		"border-spacing": {"border-spacing-x", "border-spacing-y"},
		"border-w": {"border-w-s", "border-w-e", "border-w-t", "border-w-r",
			"border-w-b", "border-w-l"},
		"border-w-x": {"border-w-r", "border-w-l"},
		"border-w-y": {"border-w-t", "border-w-b"},
		"border-color": {"border-color-s", "border-color-e", "border-color-t",
			"border-color-r", "border-color-b", "border-color-l"},
		"border-color-x": {"border-color-r", "border-color-l"},
		"border-color-y": {"border-color-t", "border-color-b"},
		"scroll-m": {"scroll-mx", "scroll-my", "scroll-ms", "scroll-me",
			"scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml"},
		"scroll-mx": {"scroll-mr", "scroll-ml"},
		"scroll-my": {"scroll-mt", "scroll-mb"},
		"scroll-p": {"scroll-px", "scroll-py", "scroll-ps", "scroll-pe",
			"scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl"},
		"scroll-px": {"scroll-pr", "scroll-pl"},
		"scroll-py": {"scroll-pt", "scroll-pb"},
		"touch":     {"touch-x", "touch-y", "touch-pz"},
		"touch-x":   {"touch"},
		"touch-y":   {"touch"},
		"touch-pz":  {"touch"},
	}
}
