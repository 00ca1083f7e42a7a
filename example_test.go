package twmerge_test

import (
	"fmt"

	"github.com/npillmayer/twmerge"
	"github.com/npillmayer/twmerge/config"
)

func ExampleMerge() {
	fmt.Println(twmerge.Merge("px-2 py-1 bg-red hover:bg-dark-red", "p-3 bg-[#B91C1C]"))
	// Output: p-3 bg-[#B91C1C] hover:bg-dark-red
}

func ExampleNew() {
	cfg := config.Default()
	cfg.Prefix = "tw-"
	m, err := twmerge.New(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Merge("tw-block tw-hidden my-card", "tw-flex"))
	// Output: tw-flex my-card
}

func ExampleMerger_Explain() {
	m, _ := twmerge.New(nil)
	fmt.Println(m.Explain("hover:text-lg"))
	// Output: hover:text-lg: group font-size, context "hover"
}
