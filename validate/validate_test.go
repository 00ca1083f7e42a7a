package validate_test

import (
	"testing"

	"github.com/npillmayer/twmerge/validate"
	"github.com/stretchr/testify/assert"
)

type validatorCase struct {
	value string
	want  bool
}

func runCases(t *testing.T, name string, f validate.Func, cases []validatorCase) {
	t.Helper()
	for _, c := range cases {
		assert.Equal(t, c.want, f(c.value), "%s(%q)", name, c.value)
	}
}

func TestIsAny(t *testing.T) {
	runCases(t, "IsAny", validate.IsAny, []validatorCase{
		{"", true},
		{"something", true},
	})
	runCases(t, "IsAnyNonArbitrary", validate.IsAnyNonArbitrary, []validatorCase{
		{"test", true},
		{"1234-hello-world", true},
		{"[hello", true},
		{"hello]", true},
		{"[)", true},
		{"(hello]", true},
		{"[test]", false},
		{"[label:test]", false},
		{"(test)", false},
		{"(label:test)", false},
	})
}

func TestIsNumberAndInteger(t *testing.T) {
	runCases(t, "IsNumber", validate.IsNumber, []validatorCase{
		{"1", true},
		{"123", true},
		{"8312.2", true},
		{"1.2", true},
		{"[8312]", false},
		{"[2]", false},
		{"one", false},
		{"1/2", false},
		{"1%", false},
		{"Inf", false},
		{"NaN", false},
		{"0x10", false},
		{"", false},
	})
	runCases(t, "IsInteger", validate.IsInteger, []validatorCase{
		{"1", true},
		{"8312", true},
		{"[8312]", false},
		{"8312.2", false},
		{"one", false},
		{"1/2", false},
		{"1px", false},
	})
}

func TestIsPercentAndFraction(t *testing.T) {
	runCases(t, "IsPercent", validate.IsPercent, []validatorCase{
		{"1%", true},
		{"100.001%", true},
		{".01%", true},
		{"0%", true},
		{"0", false},
		{"one%", false},
	})
	runCases(t, "IsFraction", validate.IsFraction, []validatorCase{
		{"1/2", true},
		{"123/209", true},
		{"1", false},
		{"1/2/3", false},
		{"[1/2]", false},
	})
}

func TestIsLength(t *testing.T) {
	runCases(t, "IsLength", validate.IsLength, []validatorCase{
		{"1", true},
		{"1.5", true},
		{"px", true},
		{"full", true},
		{"screen", true},
		{"1/2", true},
		{"[3.7%]", true},
		{"[481px]", true},
		{"[length:var(--arbitrary)]", true},
		{"1d5", false},
		{"[1]", false},
		{"one", false},
		{"[hsl(350_80%_0%)]", false},
		{"[rgb(0_0_0/50%)]", false},
	})
	runCases(t, "IsArbitraryLength", validate.IsArbitraryLength, []validatorCase{
		{"[3.7%]", true},
		{"[481px]", true},
		{"[19.1rem]", true},
		{"[50vw]", true},
		{"[56vh]", true},
		{"[length:var(--arbitrary)]", true},
		{"1", false},
		{"3px", false},
		{"1d5", false},
		{"[1]", false},
		{"[12px", false},
		{"12px]", false},
		{"one", false},
	})
}

func TestIsTshirtSize(t *testing.T) {
	runCases(t, "IsTshirtSize", validate.IsTshirtSize, []validatorCase{
		{"xs", true},
		{"md", true},
		{"2xl", true},
		{"3.5xl", true},
		{"xxl", false},
		{"2xxl", false},
		{"[sm]", false},
	})
}

func TestIsArbitraryValue(t *testing.T) {
	runCases(t, "IsArbitraryValue", validate.IsArbitraryValue, []validatorCase{
		{"[1]", true},
		{"[bla]", true},
		{"[not-an-arbitrary-value?]", true},
		{"[auto,auto,minmax(0,1fr),calc(100vw-50%)]", true},
		{"[]", false},
		{"[1", false},
		{"1]", false},
		{"1", false},
		{"one", false},
		{"o[n]e", false},
	})
	runCases(t, "IsArbitraryNumber", validate.IsArbitraryNumber, []validatorCase{
		{"[number:black]", true},
		{"[number:bla]", true},
		{"[number:230]", true},
		{"[450]", true},
		{"[2px]", false},
		{"[bla]", false},
		{"black", false},
		{"450", false},
	})
	runCases(t, "IsArbitrarySize", validate.IsArbitrarySize, []validatorCase{
		{"[size:2px]", true},
		{"[size:bla]", true},
		{"[length:bla]", true},
		{"[2px]", false},
		{"[bla]", false},
		{"size:2px", false},
		{"[percentage:bla]", false},
	})
	runCases(t, "IsArbitraryPosition", validate.IsArbitraryPosition, []validatorCase{
		{"[position:2px]", true},
		{"[position:bla]", true},
		{"[percentage:bla]", true},
		{"[2px]", false},
		{"[bla]", false},
		{"position:2px", false},
	})
	runCases(t, "IsArbitraryImage", validate.IsArbitraryImage, []validatorCase{
		{"[url:var(--my-url)]", true},
		{"[url(something)]", true},
		{"[url:bla]", true},
		{"[image:bla]", true},
		{"[linear-gradient(something)]", true},
		{"[repeating-conic-gradient(something)]", true},
		{"[var(--my-url)]", false},
		{"[bla]", false},
		{"url:2px", false},
		{"url(2px)", false},
	})
	runCases(t, "IsArbitraryShadow", validate.IsArbitraryShadow, []validatorCase{
		{"[0_35px_60px_-15px_rgba(0,0,0,0.3)]", true},
		{"[inset_0_1px_0,inset_0_-1px_0]", true},
		{"[0_0_#00f]", true},
		{"[.5rem_0_rgba(5,5,5,5)]", true},
		{"[-.5rem_0_#123456]", true},
		{"[0.5rem_-0_#123456]", true},
		{"[0.5rem_-0.005vh_#123456]", true},
		{"[0.5rem_-0.005vh]", true},
		{"[rgba(5,5,5,5)]", false},
		{"[#00f]", false},
		{"[something-else]", false},
	})
}

func TestIsArbitraryVariable(t *testing.T) {
	runCases(t, "IsArbitraryVariable", validate.IsArbitraryVariable, []validatorCase{
		{"(1)", true},
		{"(bla)", true},
		{"(--my-arbitrary-variable)", true},
		{"(label:--my-arbitrary-variable)", true},
		{"()", false},
		{"(1", false},
		{"1)", false},
		{"o(n)e", false},
	})
	runCases(t, "IsArbitraryVariableLength", validate.IsArbitraryVariableLength, []validatorCase{
		{"(length:test)", true},
		{"(other:test)", false},
		{"(test)", false},
		{"length:test", false},
	})
	runCases(t, "IsArbitraryVariableSize", validate.IsArbitraryVariableSize, []validatorCase{
		{"(size:test)", true},
		{"(length:test)", true},
		{"(other:test)", false},
		{"(test)", false},
	})
	runCases(t, "IsArbitraryVariableImage", validate.IsArbitraryVariableImage, []validatorCase{
		{"(image:test)", true},
		{"(url:test)", true},
		{"(other:test)", false},
		{"(test)", false},
	})
	runCases(t, "IsArbitraryVariableShadow", validate.IsArbitraryVariableShadow, []validatorCase{
		{"(shadow:test)", true},
		{"(test)", true},
		{"(other:test)", false},
		{"shadow:test", false},
	})
	runCases(t, "IsArbitraryVariablePosition", validate.IsArbitraryVariablePosition, []validatorCase{
		{"(position:test)", true},
		{"(other:test)", false},
		{"(test)", false},
		{"percentage:test", false},
	})
	runCases(t, "IsArbitraryVariableFamilyName", validate.IsArbitraryVariableFamilyName, []validatorCase{
		{"(family-name:test)", true},
		{"(other:test)", false},
		{"(test)", false},
	})
}

func TestByName(t *testing.T) {
	f, ok := validate.ByName("length")
	assert.True(t, ok)
	assert.True(t, f("1/2"))
	f, ok = validate.ByName("arbitrary-value")
	assert.True(t, ok)
	assert.True(t, f("[x]"))
	_, ok = validate.ByName("no-such-validator")
	assert.False(t, ok)
}
