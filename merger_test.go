package twmerge

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/twmerge/config"
	"github.com/npillmayer/twmerge/stylesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mergeCase struct {
	input, expected string
}

func checkMerges(t *testing.T, m *Merger, cases []mergeCase) {
	t.Helper()
	for _, c := range cases {
		assert.Equal(t, c.expected, m.Merge(c.input), "merging %q", c.input)
	}
}

func newMerger(t *testing.T, cfg *config.Config) *Merger {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

func TestMergeBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	m := newMerger(t, nil)
	checkMerges(t, m, []mergeCase{
		{"", ""},
		{"p-4", "p-4"},
		{"p-2 p-4", "p-4"},
		{"p-2 m-1 p-4", "p-4 m-1"},
		{"p-2 hover:p-4", "p-2 hover:p-4"},
		{"a b c d", "a b c d"},
		{"mix-blend-normal mix-blend-multiply", "mix-blend-multiply"},
		{"h-10 h-min", "h-min"},
		{"stroke-black stroke-1", "stroke-black stroke-1"},
		{"stroke-2 stroke-[3]", "stroke-[3]"},
		{"outline-black outline-1", "outline-black outline-1"},
		{"grayscale-0 grayscale-[50%]", "grayscale-[50%]"},
		{"grow grow-[2]", "grow-[2]"},
		{"overflow-x-auto overflow-x-hidden", "overflow-x-hidden"},
		{"basis-full basis-auto", "basis-auto"},
		{"w-full w-fit", "w-fit"},
		{"overflow-x-auto overflow-x-hidden overflow-x-scroll", "overflow-x-scroll"},
		{"overflow-x-auto hover:overflow-x-hidden overflow-x-scroll", "overflow-x-scroll hover:overflow-x-hidden"},
		{"overflow-x-auto hover:overflow-x-hidden hover:overflow-x-auto overflow-x-scroll",
			"overflow-x-scroll hover:overflow-x-auto"},
		{"col-span-1 col-span-full", "col-span-full"},
		{"gap-2 gap-px basis-px basis-3", "gap-px basis-3"},
		{"bg-grey-5 bg-hotpink", "bg-hotpink"},
		{"hover:bg-grey-5 hover:bg-hotpink", "hover:bg-hotpink"},
		{"stroke-[hsl(350_80%_0%)] stroke-[10px]", "stroke-[hsl(350_80%_0%)] stroke-[10px]"},
		{"border-t border-white/10", "border-t border-white/10"},
		{"border-t border-white", "border-t border-white"},
		{"text-3.5xl text-black", "text-3.5xl text-black"},
		{"content-['hello'] content-[attr(data-content)]", "content-[attr(data-content)]"},
	})
	assert.Equal(t, "p-2 hover:p-4", m.Merge("p-2", "hover:p-4"))
	assert.Equal(t, "a b c d", m.Merge("a b", "c d"))
}

func TestMergeStandaloneClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"inline block", "block"},
		{"hover:block hover:inline", "hover:inline"},
		{"hover:block hover:block", "hover:block"},
		{"inline hover:inline focus:inline hover:block hover:focus:block",
			"inline hover:block focus:inline hover:focus:block"},
		{"underline line-through", "line-through"},
		{"line-through no-underline", "no-underline"},
	})
}

func TestMergeAcrossGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"inset-1 inset-x-1", "inset-1 inset-x-1"},
		{"inset-x-1 inset-1", "inset-1"},
		{"inset-x-1 left-1 inset-1", "inset-1"},
		{"inset-x-1 inset-1 left-1", "inset-1 left-1"},
		{"inset-x-1 right-1 inset-1", "inset-1"},
		{"inset-x-1 right-1 inset-x-1", "inset-x-1"},
		{"inset-x-1 right-1 inset-y-1", "inset-x-1 right-1 inset-y-1"},
		{"right-1 inset-x-1 inset-y-1", "inset-x-1 inset-y-1"},
		{"inset-x-1 hover:left-1 inset-1", "inset-1 hover:left-1"},
		{"ring shadow", "ring shadow"},
		{"ring-2 shadow-md", "ring-2 shadow-md"},
		{"shadow ring", "shadow ring"},
		{"shadow-md ring-2", "shadow-md ring-2"},
		{"border-t-some-blue border-t-other-blue", "border-t-other-blue"},
		{"border-t-some-blue border-some-blue", "border-some-blue"},
		{"border-some-blue border-s-some-blue", "border-some-blue border-s-some-blue"},
		{"border-e-some-blue border-some-blue", "border-some-blue"},
	})
}

// A token overriding only part of an earlier shorthand does not decompose
// it: "px-4 pl-8" keeps both. Correct CSS results from the order of the
// rules in the Tailwind stylesheet, where longhands follow shorthands.
func TestMergePartialOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"pl-2 pr-2 px-4", "px-4"},
		{"px-4 pl-8", "px-4 pl-8"},
		{"px-4 pl-8 px-2", "px-2"},
		{"pl-2 m-1 pr-2 px-4", "px-4 m-1"},
		{"p-2 px-4 pl-8", "p-2 px-4 pl-8"},
		{"px-4 pl-8 p-1", "p-1"},
	})
}

func TestMergeMutualConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"touch-pan-x touch-pan-right", "touch-pan-right"},
		{"touch-none touch-pan-x", "touch-pan-x"},
		{"touch-pan-x touch-none", "touch-none"},
		{"touch-pan-x touch-pan-y touch-pinch-zoom", "touch-pan-x touch-pan-y touch-pinch-zoom"},
		{"touch-manipulation touch-pan-x touch-pan-y touch-pinch-zoom",
			"touch-pan-x touch-pan-y touch-pinch-zoom"},
		{"touch-pan-x touch-pan-y touch-pinch-zoom touch-auto", "touch-auto"},
		{"overflow-auto inline line-clamp-1", "line-clamp-1"},
		{"line-clamp-1 overflow-auto inline", "line-clamp-1 overflow-auto inline"},
		{"overflow-x-auto line-clamp-2", "line-clamp-2"},
		{"lining-nums tabular-nums diagonal-fractions", "lining-nums tabular-nums diagonal-fractions"},
		{"normal-nums tabular-nums diagonal-fractions", "tabular-nums diagonal-fractions"},
		{"tabular-nums diagonal-fractions normal-nums", "normal-nums"},
		{"tabular-nums proportional-nums", "proportional-nums"},
	})
}

func TestMergeNegativeValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"-m-2 -m-5", "-m-5"},
		{"-top-12 -top-2000", "-top-2000"},
		{"-m-2 m-auto", "m-auto"},
		{"top-12 -top-69", "-top-69"},
		{"-right-1 inset-x-1", "inset-x-1"},
		{"hover:focus:-right-1 focus:hover:inset-x-1", "focus:hover:inset-x-1"},
	})
}

func TestMergeArbitraryValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"m-[2px] m-[10px]", "m-[10px]"},
		{"z-20 z-[99]", "z-[99]"},
		{"my-[2px] m-[10rem]", "m-[10rem]"},
		{"cursor-pointer cursor-[grab]", "cursor-[grab]"},
		{"m-[2px] m-[calc(100%-var(--arbitrary))]", "m-[calc(100%-var(--arbitrary))]"},
		{"m-[2px] m-[length:var(--mystery-var)]", "m-[length:var(--mystery-var)]"},
		{"opacity-10 opacity-[0.025]", "opacity-[0.025]"},
		{"scale-75 scale-[1.7]", "scale-[1.7]"},
		{"brightness-90 brightness-[1.75]", "brightness-[1.75]"},
		{"min-h-[0.5px] min-h-[0]", "min-h-[0]"},
		{"text-[0.5px] text-[color:0]", "text-[0.5px] text-[color:0]"},
		{"text-[0.5px] text-[--my-0]", "text-[0.5px] text-[--my-0]"},
		{"hover:m-[2px] hover:m-[length:var(--c)]", "hover:m-[length:var(--c)]"},
		{"border-[2px] border-[0.85px]", "border-[0.85px]"},
		{"grid-rows-[1fr,auto] grid-rows-2", "grid-rows-2"},
		{"mt-2 mt-[calc(theme(fontSize.4xl)/1.125)]", "mt-[calc(theme(fontSize.4xl)/1.125)]"},
		{"p-2 p-[calc(1rem+2px)]", "p-[calc(1rem+2px)]"},
		{"bg-cover bg-[percentage:30%] bg-[length:200px_100px]", "bg-[length:200px_100px] bg-[percentage:30%]"},
		{"from-0% from-10% from-[12.5%] via-0% via-10% via-[12.5%] to-0% to-10% to-[12.5%]",
			"from-[12.5%] via-[12.5%] to-[12.5%]"},
		{"from-0% from-red", "from-0% from-red"},
		{"list-image-none list-image-[url(./my-image.png)] list-image-[var(--value)]", "list-image-[var(--value)]"},
		{"line-clamp-2 line-clamp-none line-clamp-[10]", "line-clamp-[10]"},
	})
}

func TestMergeArbitraryProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"[paint-order:markers] [paint-order:normal]", "[paint-order:normal]"},
		{"[paint-order:markers] [--my-var:2rem] [paint-order:normal] [--my-var:4px]",
			"[paint-order:normal] [--my-var:4px]"},
		{"[paint-order:markers] hover:[paint-order:normal]", "[paint-order:markers] hover:[paint-order:normal]"},
		{"hover:[paint-order:markers] hover:[paint-order:normal]", "hover:[paint-order:normal]"},
		{"hover:focus:[paint-order:markers] focus:hover:[paint-order:normal]", "focus:hover:[paint-order:normal]"},
		{"[paint-order:markers] [paint-order:normal] [--my-var:2rem] lg:[--my-var:4px]",
			"[paint-order:normal] [--my-var:2rem] lg:[--my-var:4px]"},
		{"[-unknown-prop:::123:::] [-unknown-prop:url(https://hi.com)]", "[-unknown-prop:url(https://hi.com)]"},
		{"![some:prop] [some:other]", "![some:prop] [some:other]"},
		{"![some:prop] [some:other] [some:one] ![some:another]", "![some:another] [some:one]"},
	})
}

func TestMergeArbitraryVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"[&>*]:underline [&>*]:line-through", "[&>*]:line-through"},
		{"[&>*]:underline [&>*]:line-through [&_div]:line-through", "[&>*]:line-through [&_div]:line-through"},
		{"supports-[display:grid]:flex supports-[display:grid]:grid", "supports-[display:grid]:grid"},
		{"dark:lg:hover:[&>*]:underline dark:lg:hover:[&>*]:line-through", "dark:lg:hover:[&>*]:line-through"},
		{"dark:lg:hover:[&>*]:underline dark:hover:lg:[&>*]:line-through", "dark:hover:lg:[&>*]:line-through"},
		{"hover:[&>*]:underline [&>*]:hover:line-through", "hover:[&>*]:underline [&>*]:hover:line-through"},
		{"[&>*]:[color:red] [&>*]:[color:blue]", "[&>*]:[color:blue]"},
		{"[&[data-foo][data-bar]:not([data-baz])]:nod:noa:[color:red] [&[data-foo][data-bar]:not([data-baz])]:noa:nod:[color:blue]",
			"[&[data-foo][data-bar]:not([data-baz])]:noa:nod:[color:blue]"},
		{"empty:p-2 empty:p-3", "empty:p-3"},
		{"group-empty:p-2 group-empty:p-3", "group-empty:p-3"},
		{"group-empty:p-2 peer-empty:p-3", "group-empty:p-2 peer-empty:p-3"},
		{"hover:group-empty:p-2 hover:group-empty:p-3", "hover:group-empty:p-3"},
		{"hover:block hover:focus:inline focus:hover:inline", "hover:block focus:hover:inline"},
	})
}

func TestMergeOrderSensitiveModifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"hover:before:p-2 before:hover:p-4", "hover:before:p-2 before:hover:p-4"},
		{"hover:before:p-2 hover:before:p-4", "hover:before:p-4"},
		{"md:hover:before:p-2 hover:md:before:p-4", "hover:md:before:p-4"},
	})
}

func TestMergeImportant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"!font-medium !font-bold", "!font-bold"},
		{"!font-medium !font-bold font-thin", "!font-bold font-thin"},
		{"!right-2 !-inset-x-px", "!-inset-x-px"},
		{"focus:!inline focus:!block", "focus:!block"},
		{"font-medium! font-bold!", "font-bold!"},
		{"font-medium! font-bold! font-thin", "font-bold! font-thin"},
		{"!font-medium font-bold!", "font-bold!"},
		{"!font-medium font-bold", "!font-medium font-bold"},
	})
}

func TestMergePostfixModifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"text-lg/7 text-lg/8", "text-lg/8"},
		{"text-red text-lg/7 text-lg/8", "text-red text-lg/8"},
		{"text-lg/none leading-9", "text-lg/none leading-9"},
		{"leading-9 text-lg/none", "text-lg/none"},
		{"leading-9 text-lg", "leading-9 text-lg"},
		{"w-full w-1/2", "w-1/2"},
		{"bg-red-500/50 bg-blue-300", "bg-blue-300"},
		{"hover:text-lg/7 hover:leading-3 hover:text-sm/5", "hover:text-sm/5"},
	})
}

func TestMergeTailwind33(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"start-0 start-1 end-0 end-1 ps-0 ps-1 pe-0 pe-1 ms-0 ms-1 me-0 me-1 rounded-s-sm rounded-s-md rounded-e-sm rounded-e-md rounded-ss-sm rounded-ss-md rounded-ee-sm rounded-ee-md",
			"start-1 end-1 ps-1 pe-1 ms-1 me-1 rounded-s-md rounded-e-md rounded-ss-md rounded-ee-md"},
		{"start-0 end-0 inset-0 ps-0 pe-0 p-0 ms-0 me-0 m-0 rounded-ss rounded-es rounded-s",
			"inset-0 p-0 m-0 rounded-s"},
		{"hyphens-auto hyphens-manual", "hyphens-manual"},
		{"caption-top caption-bottom", "caption-bottom"},
		{"delay-150 delay-0 duration-150 duration-0", "delay-0 duration-0"},
		{"justify-normal justify-center justify-stretch", "justify-stretch"},
		{"content-normal content-center content-stretch", "content-stretch"},
		{"whitespace-nowrap whitespace-break-spaces", "whitespace-break-spaces"},
	})
}

func TestMergeNonTailwindClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	checkMerges(t, newMerger(t, nil), []mergeCase{
		{"non-tailwind-class inline block", "non-tailwind-class block"},
		{"inline block inline-1", "block inline-1"},
		{"inline block i-inline", "block i-inline"},
		{"focus:inline focus:block focus:inline-1", "focus:block focus:inline-1"},
		{"my-class block my-class", "my-class block"},
	})
}

func TestMergeWhiteSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	m := newMerger(t, nil)
	checkMerges(t, m, []mergeCase{
		{" block", "block"},
		{"block ", "block"},
		{" block ", "block"},
		{"  block  px-2     py-4  ", "block px-2 py-4"},
		{"block\npx-2", "block px-2"},
		{"\nblock\npx-2\n", "block px-2"},
		{"  block\n        \n        px-2   \n          py-4  ", "block px-2 py-4"},
		{"\r  block\n\r        \n        px-2   \n          py-4  ", "block px-2 py-4"},
		{"\tblock\tpx-2", "block px-2"},
	})
	assert.Equal(t, "block px-2 py-4", m.Merge("  block  px-2", " ", "     py-4  "))
	assert.Equal(t, "", m.Merge())
	assert.Equal(t, "", m.Merge("", "  "))
}

func TestMergeRemovesDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	m := newMerger(t, nil)
	original := "bg-red-500 border-transparent text-gray-500 hover:text-gray-700 hover:border-gray-300 whitespace-nowrap py-4 px-1 border-b-2 font-medium text-sm border-indigo-500 text-indigo-600 bg-red-500 border-transparent text-gray-500 hover:text-gray-700 hover:border-gray-300 whitespace-nowrap py-4 px-1 border-b-2 font-medium text-sm"
	merged := "bg-red-500 border-transparent text-gray-500 hover:text-gray-700 hover:border-gray-300 whitespace-nowrap py-4 px-1 border-b-2 font-medium text-sm"
	assert.Equal(t, merged, m.Merge(original))
}

func TestMergeIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	m := newMerger(t, nil)
	for _, input := range []string{
		"p-2 m-1 p-4 hover:p-1 px-3 pl-8",
		"touch-manipulation touch-pan-x touch-pan-y touch-pinch-zoom",
		"overflow-x-auto inline line-clamp-2 overflow-y-hidden",
		"normal-nums tabular-nums diagonal-fractions lining-nums",
		"text-lg/7 leading-3 font-bold text-sm my-class !p-2 p-2! foo",
		"inset-x-1 hover:left-1 inset-1 right-3",
	} {
		once := m.Merge(input)
		assert.Equal(t, once, m.Merge(once), "merging %q twice", input)
		assert.Equal(t, once, m.Merge(once, once), "merging %q with itself", once)
	}
}

// Groups superseded in between return to the position of their first
// occurrence.
func TestMergeKeepsFirstPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	m := newMerger(t, nil)
	checkMerges(t, m, []mergeCase{
		{"p-2 px-4 flex p-2 px-4 flex", "p-2 px-4 flex"},
		{"scroll-m-2 scroll-mx-1 hover:md:m-2 scroll-m-2 scroll-mx-1 hover:md:m-2",
			"scroll-m-2 scroll-mx-1 hover:md:m-2"},
		{"mx-2 hidden font-bold m-1 mx-2 hidden", "m-1 hidden font-bold mx-2"},
		{"pr-1 pl-1 px-2 p-3 px-4 pl-5", "p-3 px-4 pl-5"},
	})
	assert.Equal(t, "p-2 px-4 flex", m.Merge("p-2 px-4 flex", "p-2 px-4 flex"))
}

func TestMergeIsIdempotentForRandomLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	pool := []string{
		"p-2", "px-4", "py-1", "pl-8", "pr-2", "pt-3", "m-1", "mx-2", "my-3", "ml-4",
		"scroll-m-2", "scroll-mx-1", "inset-1", "inset-x-1", "left-1", "right-3",
		"flex", "hidden", "block", "font-bold", "text-lg/7", "leading-3", "text-sm",
		"rounded", "rounded-t-lg", "rounded-tl-none", "border", "border-x-2", "border-l",
		"touch-pan-x", "touch-none", "overflow-auto", "line-clamp-2",
		"hover:p-1", "hover:px-3", "md:m-2", "hover:md:mx-1", "foo", "!p-4",
	}
	cfg := config.Default()
	cfg.CacheSize = 0
	m := newMerger(t, cfg)
	rnd := rand.New(rand.NewSource(7))
	for n := 0; n < 5000; n++ {
		tokens := make([]string, 1+rnd.Intn(8))
		for i := range tokens {
			tokens[i] = pool[rnd.Intn(len(pool))]
		}
		input := strings.Join(tokens, " ")
		once := m.Merge(input)
		if !assert.Equal(t, once, m.Merge(once), "merging %q twice", input) {
			return
		}
		if !assert.Equal(t, once, m.Merge(once, once), "merging %q with itself", once) {
			return
		}
	}
}

func TestMergePrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	cfg := config.Default()
	cfg.Prefix = "tw-"
	checkMerges(t, newMerger(t, cfg), []mergeCase{
		{"tw-block tw-hidden", "tw-hidden"},
		{"block hidden", "block hidden"},
		{"tw-p-3 tw-p-2", "tw-p-2"},
		{"p-3 p-2", "p-3 p-2"},
		{"!tw-right-0 !tw-inset-0", "!tw-inset-0"},
		{"hover:focus:!tw-right-0 focus:hover:!tw-inset-0", "focus:hover:!tw-inset-0"},
		{"tw-hover:p-2 hover:tw-p-4", "hover:tw-p-4"},
	})
}

func TestMergeSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	for _, sep := range []string{"_", "__"} {
		cfg := config.Default()
		cfg.Separator = sep
		m := newMerger(t, cfg)
		hf := strings.Join([]string{"hover", "focus", "!right-0"}, sep)
		fh := strings.Join([]string{"focus", "hover", "!inset-0"}, sep)
		checkMerges(t, m, []mergeCase{
			{"block hidden", "hidden"},
			{"p-3 p-2", "p-2"},
			{"!right-0 !inset-0", "!inset-0"},
			{hf + " " + fh, fh},
			{"hover:focus:!right-0 focus:hover:!inset-0", "hover:focus:!right-0 focus:hover:!inset-0"},
		})
	}
}

func TestMergeWithoutCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	cfg := config.Default()
	cfg.CacheSize = 0
	uncached := newMerger(t, cfg)
	assert.Nil(t, uncached.cache)
	cached := newMerger(t, nil)
	require.NotNil(t, cached.cache)
	for _, input := range []string{"p-2 p-4", "font-medium font-bold", "inset-x-1 hover:left-1 inset-1"} {
		assert.Equal(t, uncached.Merge(input), cached.Merge(input))
		assert.Equal(t, uncached.Merge(input), cached.Merge(input)) // from cache
	}
	r, ok := cached.cache.Get("font-medium font-bold")
	assert.True(t, ok)
	assert.Equal(t, "font-bold", r)
}

func TestMergeThemeExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	cfg := config.Default()
	cfg.Extend(config.Extension{
		Theme: map[string][]config.ClassDef{"spacing": {"my-space"}},
		ClassGroups: []config.ClassGroup{
			{ID: "btn", Defs: []config.ClassDef{config.Parts{"btn": {"sm", "lg"}}}},
			{ID: "btn-look", Defs: []config.ClassDef{config.Parts{"btn": {"flat", "raised"}}}},
		},
		ConflictingClassGroups: map[string][]string{"btn": {"btn-look"}},
	})
	m := newMerger(t, cfg)
	checkMerges(t, m, []mergeCase{
		{"p-3 p-my-space p-my-margin", "p-my-space p-my-margin"},
		{"m-my-space m-2", "m-2"},
		{"btn-sm btn-lg", "btn-lg"},
		{"btn-flat btn-lg", "btn-lg"},
		{"btn-lg btn-flat", "btn-lg btn-flat"},
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	cfg := config.Default()
	cfg.Separator = ""
	m, err := New(cfg)
	assert.Nil(t, m)
	var cerr *config.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "separator", cerr.Field)
}

func TestNewCopiesConfig(t *testing.T) {
	cfg := config.Default()
	m := newMerger(t, cfg)
	cfg.Prefix = "tw-"
	assert.Equal(t, "p-4", m.Merge("p-2 p-4"))
	assert.Equal(t, "", m.Config().Prefix)
}

func TestExplain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	m := newMerger(t, nil)
	x := m.Explain("focus:hover:p-4")
	assert.True(t, x.Known)
	assert.Equal(t, "p", x.Group)
	assert.Equal(t, "focus:hover", x.Context)
	assert.Contains(t, x.Conflicts, "px")
	assert.Contains(t, x.Conflicts, "pl")
	assert.False(t, x.Postfix)
	t.Logf("%s", x)
	//
	x = m.Explain("text-lg/7")
	assert.True(t, x.Known)
	assert.Equal(t, "font-size", x.Group)
	assert.True(t, x.Postfix)
	assert.Contains(t, x.Conflicts, "leading")
	x = m.Explain("text-lg")
	assert.NotContains(t, x.Conflicts, "leading")
	//
	x = m.Explain("my-class")
	assert.False(t, x.Known)
	assert.Equal(t, "my-class: no class group", x.String())
	assert.True(t, m.Knows("!p-4"))
	assert.False(t, m.Knows("p-four-and-more"))
}

func TestExplainExternal(t *testing.T) {
	cfg := config.Default()
	cfg.Prefix = "tw-"
	m := newMerger(t, cfg)
	x := m.Explain("p-4")
	assert.False(t, x.Known)
	assert.True(t, x.Class.External)
	assert.Equal(t, "p-4: external class", x.String())
	assert.True(t, m.Knows("tw-p-4"))
}

func TestGroupsAndClassMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	m := newMerger(t, nil)
	groups := m.Groups()
	assert.Equal(t, len(config.Default().ClassGroups), len(groups))
	assert.Equal(t, "aspect", groups[0])
	var b strings.Builder
	require.NoError(t, m.WriteClassMap(&b))
	assert.Contains(t, b.String(), "mix-blend")
}

func TestMergeStylesheetGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "twmerge")
	defer teardown()
	//
	sheet, err := stylesheet.Parse(`
		.card  { padding: 1rem; border-radius: .5rem }
		.tight { padding-left: 0 }
		.loose { padding-left: 2rem }`)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Extend(sheet.Extension())
	checkMerges(t, newMerger(t, cfg), []mergeCase{
		{"tight card", "card"},
		{"card tight", "card tight"},
		{"tight loose", "loose"},
		{"hover:tight card", "hover:tight card"},
		{"tight p-2 card", "card p-2"},
	})
}
