/*
Package validate provides predicates for the value part of utility classes.

A class group definition may contain validators in places where a literal
class part would be too restrictive, e.g. the value of `p-4`, `p-[3px]` or
`w-1/2`. Every validator receives the remaining class parts, joined by "-",
and reports whether it accepts them.

Arbitrary values are written in square brackets, optionally with a label
(`[length:var(--x)]`). Arbitrary variables (Tailwind CSS v4) are written in
parentheses (`(--my-var)`, `(length:--my-var)`).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Func is the type of a value validator.
type Func func(value string) bool

var (
	arbitraryValueRE    = regexp.MustCompile(`(?i)^\[(?:([a-z-]+):)?(.+)\]$`)
	arbitraryVariableRE = regexp.MustCompile(`(?i)^\((?:([a-z-]+):)?(.+)\)$`)
	fractionRE          = regexp.MustCompile(`^\d+/\d+$`)
	lengthUnitRE        = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	tshirtRE            = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	shadowRE            = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	colorFunctionRE     = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch)|color-mix)\(.+\)$`)
	imageRE             = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
)

var stringLengths = map[string]bool{"px": true, "full": true, "screen": true}

// --- Plain values ----------------------------------------------------------

// IsAny accepts every value.
func IsAny(string) bool {
	return true
}

// IsAnyNonArbitrary accepts every value which is neither an arbitrary value
// nor an arbitrary variable.
func IsAnyNonArbitrary(value string) bool {
	return !IsArbitraryValue(value) && !IsArbitraryVariable(value)
}

// IsNumber accepts decimal numbers, e.g. "1", "1.5", ".25".
func IsNumber(value string) bool {
	if value == "" || strings.ContainsAny(value, "xXpP_") {
		return false
	}
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsInteger accepts integral numbers.
func IsInteger(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}

// IsPercent accepts numbers followed by "%".
func IsPercent(value string) bool {
	return strings.HasSuffix(value, "%") && IsNumber(value[:len(value)-1])
}

// IsFraction accepts fractions like "1/2".
func IsFraction(value string) bool {
	return fractionRE.MatchString(value)
}

// IsLength accepts numbers, fractions, the keywords "px", "full" and
// "screen", and arbitrary lengths.
func IsLength(value string) bool {
	return IsNumber(value) || stringLengths[value] || IsFraction(value) || IsArbitraryLength(value)
}

// IsTshirtSize accepts "xs", "sm", "md", "lg", "xl", optionally preceded by a
// number ("2xl", "3.5xl").
func IsTshirtSize(value string) bool {
	return tshirtRE.MatchString(value)
}

// --- Arbitrary values ------------------------------------------------------

// IsArbitraryValue accepts any value in square brackets.
func IsArbitraryValue(value string) bool {
	return arbitraryValueRE.MatchString(value)
}

// IsArbitraryLength accepts arbitrary values labeled "length" or looking like
// a CSS length.
func IsArbitraryLength(value string) bool {
	return arbitraryValue(value, labels("length"), isLengthOnly)
}

// IsArbitraryNumber accepts arbitrary values labeled "number" or holding a
// number.
func IsArbitraryNumber(value string) bool {
	return arbitraryValue(value, labels("number"), IsNumber)
}

// IsArbitrarySize accepts arbitrary values labeled "size" or "length".
func IsArbitrarySize(value string) bool {
	return arbitraryValue(value, labels("size", "length"), isNever)
}

// IsArbitraryPosition accepts arbitrary values labeled "position" or
// "percentage".
func IsArbitraryPosition(value string) bool {
	return arbitraryValue(value, labels("position", "percentage"), isNever)
}

// IsArbitraryImage accepts arbitrary values labeled "image" or "url", or
// holding an image function like url(…) or linear-gradient(…).
func IsArbitraryImage(value string) bool {
	return arbitraryValue(value, labels("image", "url"), imageRE.MatchString)
}

// IsArbitraryURL accepts arbitrary values labeled "url" or starting with
// "url(".
func IsArbitraryURL(value string) bool {
	return arbitraryValue(value, labels("url"), func(v string) bool {
		return strings.HasPrefix(v, "url(")
	})
}

// IsArbitraryShadow accepts arbitrary values labeled "shadow" or starting with
// an x and y offset, e.g. "[0_35px_60px_-15px_rgba(0,0,0,0.3)]".
func IsArbitraryShadow(value string) bool {
	return arbitraryValue(value, labels("shadow"), shadowRE.MatchString)
}

// --- Arbitrary variables ---------------------------------------------------

// IsArbitraryVariable accepts any value in parentheses.
func IsArbitraryVariable(value string) bool {
	return arbitraryVariableRE.MatchString(value)
}

// IsArbitraryVariableLength accepts arbitrary variables labeled "length".
func IsArbitraryVariableLength(value string) bool {
	return arbitraryVariable(value, labels("length"), false)
}

// IsArbitraryVariableSize accepts arbitrary variables labeled "size" or
// "length".
func IsArbitraryVariableSize(value string) bool {
	return arbitraryVariable(value, labels("size", "length"), false)
}

// IsArbitraryVariablePosition accepts arbitrary variables labeled "position".
func IsArbitraryVariablePosition(value string) bool {
	return arbitraryVariable(value, labels("position"), false)
}

// IsArbitraryVariableImage accepts arbitrary variables labeled "image" or
// "url".
func IsArbitraryVariableImage(value string) bool {
	return arbitraryVariable(value, labels("image", "url"), false)
}

// IsArbitraryVariableShadow accepts arbitrary variables labeled "shadow" and
// unlabeled ones.
func IsArbitraryVariableShadow(value string) bool {
	return arbitraryVariable(value, labels("shadow"), true)
}

// IsArbitraryVariableFamilyName accepts arbitrary variables labeled
// "family-name".
func IsArbitraryVariableFamilyName(value string) bool {
	return arbitraryVariable(value, labels("family-name"), false)
}

// ---------------------------------------------------------------------------

func arbitraryValue(value string, isLabel func(string) bool, test func(string) bool) bool {
	m := arbitraryValueRE.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	if m[1] != "" {
		return isLabel(m[1])
	}
	return test(m[2])
}

func arbitraryVariable(value string, isLabel func(string) bool, unlabeled bool) bool {
	m := arbitraryVariableRE.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	if m[1] != "" {
		return isLabel(m[1])
	}
	return unlabeled
}

func labels(names ...string) func(string) bool {
	return func(label string) bool {
		for _, n := range names {
			if n == label {
				return true
			}
		}
		return false
	}
}

// isLengthOnly rejects color functions, as "hsl(0_0%_50%)" contains a
// percentage.
func isLengthOnly(value string) bool {
	return lengthUnitRE.MatchString(value) && !colorFunctionRE.MatchString(value)
}

func isNever(string) bool {
	return false
}

var byName = map[string]Func{
	"any":                         IsAny,
	"any-non-arbitrary":           IsAnyNonArbitrary,
	"number":                      IsNumber,
	"integer":                     IsInteger,
	"percent":                     IsPercent,
	"fraction":                    IsFraction,
	"length":                      IsLength,
	"tshirt-size":                 IsTshirtSize,
	"arbitrary-value":             IsArbitraryValue,
	"arbitrary-length":            IsArbitraryLength,
	"arbitrary-number":            IsArbitraryNumber,
	"arbitrary-size":              IsArbitrarySize,
	"arbitrary-position":          IsArbitraryPosition,
	"arbitrary-image":             IsArbitraryImage,
	"arbitrary-url":               IsArbitraryURL,
	"arbitrary-shadow":            IsArbitraryShadow,
	"arbitrary-variable":          IsArbitraryVariable,
	"arbitrary-variable-length":   IsArbitraryVariableLength,
	"arbitrary-variable-size":     IsArbitraryVariableSize,
	"arbitrary-variable-position": IsArbitraryVariablePosition,
	"arbitrary-variable-image":    IsArbitraryVariableImage,
	"arbitrary-variable-shadow":   IsArbitraryVariableShadow,
	"arbitrary-variable-family":   IsArbitraryVariableFamilyName,
}

// ByName returns the validator registered under name, e.g. "length" for
// IsLength or "arbitrary-value" for IsArbitraryValue. Configuration files
// refer to validators this way.
func ByName(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}
