package diagnostics

// MultiSink fans a single Raise out to every wrapped Sink, in order. The
// orchestrator uses this to log diagnostics live via ZerologSink while
// also accumulating them in a MemorySink to decide the process exit code.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink wraps the given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Raise forwards d to every wrapped sink.
func (m *MultiSink) Raise(d Diagnostic) {
	for _, s := range m.sinks {
		s.Raise(d)
	}
}
