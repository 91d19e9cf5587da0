package diagnostics

import "github.com/rs/zerolog"

// ZerologSink forwards each Diagnostic to a zerolog.Logger as a structured
// event: Error severity logs at zerolog's error level, Warning at warn,
// each tagged with "code" and "component" fields for filtering.
type ZerologSink struct {
	log zerolog.Logger
}

// NewZerologSink wraps an existing logger. Callers configure the logger's
// output, level, and timestamp format beforehand (see cmd/mapping-dependencies
// for the orchestrator's setup).
func NewZerologSink(log zerolog.Logger) *ZerologSink {
	return &ZerologSink{log: log}
}

// Raise logs d at the level matching its Severity.
func (s *ZerologSink) Raise(d Diagnostic) {
	var ev *zerolog.Event
	if d.Severity == Error {
		ev = s.log.Error()
	} else {
		ev = s.log.Warn()
	}
	ev.Str("code", string(d.Code)).Str("component", d.Component).Msg(d.Message)
}
