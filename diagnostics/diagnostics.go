// Package diagnostics defines the severity/message/component record the
// core raises instead of throwing, and a Sink abstraction for routing
// those records to an external collaborator (an issue tracker, a log).
package diagnostics

// Severity classifies how serious a Diagnostic is.
type Severity uint8

const (
	// Warning marks a degraded-but-usable condition (e.g. a missing
	// optional section); ingestion continues.
	Warning Severity = iota
	// Error marks an invariant violation or required-field failure;
	// severity Error accumulates and the orchestrator decides whether
	// to abort based on the count.
	Error
)

// String renders the severity for logging.
func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARNING"
}

// Code enumerates the diagnostic taxonomy.
type Code string

const (
	FileNotFound             Code = "FileNotFound"
	InvalidJson              Code = "InvalidJson"
	MissingDocumentModel     Code = "MissingDocumentModel"
	MissingEntities          Code = "MissingEntities"
	MissingMappings          Code = "MissingMappings"
	MissingSourceComposition Code = "MissingSourceComposition"
	MissingEntityTarget      Code = "MissingEntityTarget"
	CyclicGraph              Code = "CyclicGraph"
	NoFlow                   Code = "NoFlow"
	UnknownFailedNodeId      Code = "UnknownFailedNodeId"
)

// Diagnostic is a single raised event: what happened, how bad, and which
// component raised it.
type Diagnostic struct {
	Severity  Severity
	Code      Code
	Message   string
	Component string
}

// Sink accepts Diagnostics as they are raised. Implementations must not
// block the caller indefinitely; MemorySink and ZerologSink below are both
// non-blocking.
type Sink interface {
	Raise(d Diagnostic)
}

// MemorySink accumulates diagnostics in order, for tests and for
// orchestrators that want to inspect/export the full batch (e.g. to CSV)
// after a run completes.
type MemorySink struct {
	items []Diagnostic
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Raise appends d to the sink.
func (s *MemorySink) Raise(d Diagnostic) {
	s.items = append(s.items, d)
}

// All returns every diagnostic raised so far, in raise order.
func (s *MemorySink) All() []Diagnostic {
	return s.items
}

// ErrorCount returns the number of diagnostics at Error severity.
func (s *MemorySink) ErrorCount() int {
	n := 0
	for _, d := range s.items {
		if d.Severity == Error {
			n++
		}
	}
	return n
}

// HasErrors reports whether any diagnostic at Error severity was raised.
func (s *MemorySink) HasErrors() bool {
	return s.ErrorCount() > 0
}
