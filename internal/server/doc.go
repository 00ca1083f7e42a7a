/*
Package server provides class merging as an HTTP service.

Routes:

    POST /merge     {"classes": ["px-2 py-1", "p-3"]}  →  {"result": "p-3"}
    GET  /healthz   liveness probe
    GET  /metrics   Prometheus metrics

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package server

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'twmerge.server'.
func tracer() tracing.Trace {
	return tracing.Select("twmerge.server")
}
