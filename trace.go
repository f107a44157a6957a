package region

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Diagnostic events emitted on the region's trace sink. Tracing is an
// observability side channel only; it never affects allocation behavior.
const (
	eventBlockCreated  = "block_created"
	eventBlockDisposed = "block_disposed"
)

func traceEvent(logger log.Logger, event string, keyvals ...interface{}) {
	kv := append([]interface{}{"event", event}, keyvals...)
	level.Debug(logger).Log(kv...)
}

// traceError reports err on the sink and returns it unchanged, so call
// sites can trace and fail in one statement.
func traceError(logger log.Logger, err error) error {
	level.Debug(logger).Log("err", err)
	return err
}
