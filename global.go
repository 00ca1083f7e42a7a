package twmerge

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/twmerge/config"
)

// current is the process-wide merger. It is replaced as a whole, never
// modified.
var current atomic.Pointer[Merger]

// Default returns the process-wide Merger. Unless set by Configure or Use,
// it is created from config.Default() on first use.
func Default() *Merger {
	if m := current.Load(); m != nil {
		return m
	}
	m, err := New(config.Default())
	if err != nil {
		panic(fmt.Sprintf("twmerge: default configuration is invalid: %v", err))
	}
	current.CompareAndSwap(nil, m)
	return current.Load()
}

// Use makes m the process-wide Merger. Use(nil) reverts to the default
// configuration.
func Use(m *Merger) {
	current.Store(m)
}

// Configure replaces the prefix and separator of the process-wide Merger.
// All other options are taken over from the current one. If the current
// Merger is replaced meanwhile, the new one is taken as the base.
//
// If the options are invalid, a *config.ConfigurationError is returned and
// the current configuration stays in effect.
func Configure(prefix, separator string) error {
	for {
		prev := Default()
		cfg := prev.Config()
		cfg.Prefix, cfg.Separator = prefix, separator
		m, err := New(cfg)
		if err != nil {
			tracer().Errorf("configuration rejected: %v", err)
			return err
		}
		if current.CompareAndSwap(prev, m) {
			break
		}
		tracer().Debugf("merger replaced while configuring, retrying")
	}
	tracer().Infof("configured prefix %q, separator %q", prefix, separator)
	return nil
}

// Merge merges two class lists with the process-wide Merger.
func Merge(classA, classB string) string {
	return Default().Merge(classA, classB)
}

// MergeAll merges any number of class lists with the process-wide Merger.
func MergeAll(classLists ...string) string {
	return Default().Merge(classLists...)
}
