package ll1kit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1kit'.
func tracer() tracing.Trace {
	return tracing.Select("ll1kit")
}
