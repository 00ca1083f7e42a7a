/*
Command twmerge merges utility class lists.

    twmerge merge "px-2 py-1 bg-red" "p-3 bg-blue"     # → p-3 bg-blue
    twmerge html page.html > merged.html
    twmerge explain hover:text-lg/7
    twmerge groups
    twmerge serve --addr :8080

Options may be given as flags, by environment variables (TWMERGE_PREFIX,
TWMERGE_SEPARATOR, TWMERGE_CONFIG, TWMERGE_ADDR) or in a .env file in the
working directory. Flags take precedence over the environment, which takes
precedence over a configuration file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

func main() {
	if err := loadEnv(); err != nil {
		tracing.Select("twmerge").Errorf("environment: %v", err)
	}
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
