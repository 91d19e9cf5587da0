package diagnostics_test

import (
	"testing"

	"github.com/mark-me/mapping-dependencies/diagnostics"
)

func TestMemorySink_AccumulatesInOrder(t *testing.T) {
	sink := diagnostics.NewMemorySink()
	sink.Raise(diagnostics.Diagnostic{Severity: diagnostics.Warning, Code: diagnostics.MissingMappings, Component: "ingest"})
	sink.Raise(diagnostics.Diagnostic{Severity: diagnostics.Error, Code: diagnostics.InvalidJson, Component: "ingest"})

	all := sink.All()
	if len(all) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(all))
	}
	if all[0].Code != diagnostics.MissingMappings || all[1].Code != diagnostics.InvalidJson {
		t.Fatalf("diagnostics out of order: %+v", all)
	}
}

func TestMemorySink_ErrorCount(t *testing.T) {
	sink := diagnostics.NewMemorySink()
	sink.Raise(diagnostics.Diagnostic{Severity: diagnostics.Warning})
	sink.Raise(diagnostics.Diagnostic{Severity: diagnostics.Error})
	sink.Raise(diagnostics.Diagnostic{Severity: diagnostics.Error})

	if sink.ErrorCount() != 2 {
		t.Fatalf("ErrorCount = %d, want 2", sink.ErrorCount())
	}
	if !sink.HasErrors() {
		t.Fatalf("HasErrors = false, want true")
	}
}

type recordingSink struct{ n int }

func (r *recordingSink) Raise(diagnostics.Diagnostic) { r.n++ }

func TestMultiSink_FansOutToAll(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	multi := diagnostics.NewMultiSink(a, b)
	multi.Raise(diagnostics.Diagnostic{})
	if a.n != 1 || b.n != 1 {
		t.Fatalf("MultiSink did not fan out to both sinks: a=%d b=%d", a.n, b.n)
	}
}
