package stylesheet

// Shorthand properties and the longhands they set. Longhands which are
// shorthands themselves are expanded recursively.
var shorthands = map[string][]string{
	"margin":         {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"margin-inline":  {"margin-left", "margin-right"},
	"margin-block":   {"margin-top", "margin-bottom"},
	"padding":        {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"padding-inline": {"padding-left", "padding-right"},
	"padding-block":  {"padding-top", "padding-bottom"},
	"inset":          {"top", "right", "bottom", "left"},
	"gap":            {"row-gap", "column-gap"},
	"overflow":       {"overflow-x", "overflow-y"},
	"border":         {"border-width", "border-style", "border-color"},
	"border-width":   {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-style":   {"border-top-style", "border-right-style", "border-bottom-style", "border-left-style"},
	"border-color":   {"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"},
	"border-top":     {"border-top-width", "border-top-style", "border-top-color"},
	"border-right":   {"border-right-width", "border-right-style", "border-right-color"},
	"border-bottom":  {"border-bottom-width", "border-bottom-style", "border-bottom-color"},
	"border-left":    {"border-left-width", "border-left-style", "border-left-color"},
	"border-radius": {"border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius"},
	"background": {"background-color", "background-image", "background-position",
		"background-size", "background-repeat", "background-attachment", "background-origin",
		"background-clip"},
	"font": {"font-style", "font-variant", "font-weight", "font-stretch", "font-size",
		"line-height", "font-family"},
	"flex":        {"flex-grow", "flex-shrink", "flex-basis"},
	"flex-flow":   {"flex-direction", "flex-wrap"},
	"outline":     {"outline-width", "outline-style", "outline-color"},
	"list-style":  {"list-style-type", "list-style-position", "list-style-image"},
	"transition":  {"transition-property", "transition-duration", "transition-timing-function", "transition-delay"},
	"animation":   {"animation-name", "animation-duration", "animation-timing-function", "animation-delay"},
	"place-items": {"align-items", "justify-items"},
	"text-decoration": {"text-decoration-line", "text-decoration-style", "text-decoration-color",
		"text-decoration-thickness"},
}

// longhands returns the longhand properties set by property.
func longhands(property string) []string {
	expanded, ok := shorthands[property]
	if !ok {
		return []string{property}
	}
	var result []string
	for _, p := range expanded {
		result = append(result, longhands(p)...)
	}
	return result
}
