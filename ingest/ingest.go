// Package ingest implements the Ingestor (component C1): it reads RETW
// files in input order, deduplicating paths while preserving first-seen
// order, and populates a core.Graph with FileRETW/Entity/Mapping vertices
// and their typed edges, raising a diagnostics.Diagnostic for every
// structural problem instead of failing the whole run.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mark-me/mapping-dependencies/core"
	"github.com/mark-me/mapping-dependencies/diagnostics"
	"github.com/mark-me/mapping-dependencies/hashid"
	"github.com/mark-me/mapping-dependencies/retwmodel"
)

// FileReader reads one RETW file and reports its content plus a
// modification timestamp used for FileAttrs.ModifiedAt.
type FileReader func(path string) (data []byte, modTime time.Time, err error)

// defaultFileReader reads from the local filesystem.
func defaultFileReader(path string) ([]byte, time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	return data, info.ModTime(), nil
}

// Option configures an Ingestor using the standard functional-options
// idiom: a constructor applies zero or more Options over a struct with
// sane defaults, each option overriding exactly the field it names.
type Option func(*Ingestor)

// WithClock overrides the clock used to stamp a FileRETW vertex's
// CreatedAt on first sight, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(i *Ingestor) {
		if clock != nil {
			i.clock = clock
		}
	}
}

// WithFileReader overrides how file content and mtime are obtained, so
// tests can supply in-memory RETW documents without touching a real
// filesystem.
func WithFileReader(reader FileReader) Option {
	return func(i *Ingestor) {
		if reader != nil {
			i.readFile = reader
		}
	}
}

// Ingestor wraps a core.Graph and a diagnostics.Sink and drives the
// per-file read/decode/upsert pipeline described in component C1.
type Ingestor struct {
	graph    *core.Graph
	sink     diagnostics.Sink
	clock    func() time.Time
	readFile FileReader
}

// New builds an Ingestor targeting g, raising diagnostics to sink.
func New(g *core.Graph, sink diagnostics.Sink, opts ...Option) *Ingestor {
	i := &Ingestor{
		graph:    g,
		sink:     sink,
		clock:    time.Now,
		readFile: defaultFileReader,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Ingest processes paths in order, deduplicated preserving first-seen
// order, and returns true iff every file ingested without a file-level
// diagnostics.Error (FileNotFound or InvalidJson). A file-level failure
// does not stop processing of subsequent files, and leaves no partial
// vertices/edges behind for that file.
func (i *Ingestor) Ingest(ctx context.Context, paths []string) bool {
	ok := true
	seen := make(map[string]bool, len(paths))

	order := 0
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true

		select {
		case <-ctx.Done():
			return false
		default:
		}

		if !i.ingestOne(p, order) {
			ok = false
		}
		order++
	}

	return ok
}

// ingestOne runs the pipeline for a single path and returns false iff this
// file contributed a file-level Error diagnostic.
func (i *Ingestor) ingestOne(path string, orderAdded int) bool {
	data, modTime, err := i.readFile(path)
	if err != nil {
		i.raise(diagnostics.Error, diagnostics.FileNotFound, "ingest",
			fmt.Sprintf("reading %q: %v", path, err))
		return false
	}

	var doc retwmodel.File
	if err := json.Unmarshal(data, &doc); err != nil {
		i.raise(diagnostics.Error, diagnostics.InvalidJson, "ingest",
			fmt.Sprintf("decoding %q: %v", path, err))
		return false
	}

	fileID := hashid.File(path)
	createdAt := i.clock()
	if existing, err := i.graph.Vertex(fileID); err == nil && existing.File != nil {
		createdAt = existing.File.CreatedAt
	}
	if _, err := i.graph.UpsertFile(fileID, core.FileAttrs{
		Path:       path,
		OrderAdded: orderAdded,
		CreatedAt:  createdAt,
		ModifiedAt: modTime,
	}); err != nil {
		// Only reachable if fileID collides with a non-File vertex, which
		// cannot happen given hashid's kind-prefixed ids.
		i.raise(diagnostics.Error, diagnostics.InvalidJson, "ingest", err.Error())
		return false
	}

	dm, ok := doc.DocumentModel()
	if !ok {
		i.raise(diagnostics.Warning, diagnostics.MissingDocumentModel, "ingest",
			fmt.Sprintf("%q: no model has IsDocumentModel=true", path))
		i.ingestMappings(path, fileID, doc.Mappings)
		return true
	}

	if len(dm.Entities) == 0 {
		i.raise(diagnostics.Warning, diagnostics.MissingEntities, "ingest",
			fmt.Sprintf("%q: document model %q has no entities", path, dm.Code))
	}
	for _, e := range dm.Entities {
		entityID := hashid.Entity(dm.Code, e.Code)
		attrs := entityAttrs(e)
		attrs.CodeModel = dm.Code
		attrs.IDModel = dm.Id
		attrs.NameModel = dm.Name
		if _, err := i.graph.UpsertEntity(entityID, attrs); err != nil {
			continue
		}
		_, _ = i.graph.AddEdge(fileID, entityID, core.EdgeFileEntity, core.KindEntity, core.EdgeAttrs{CreatedAt: i.clock()})
	}

	if len(doc.Mappings) == 0 {
		i.raise(diagnostics.Warning, diagnostics.MissingMappings, "ingest",
			fmt.Sprintf("%q: no mappings declared", path))
	}
	i.ingestMappings(path, fileID, doc.Mappings)

	return true
}

// ingestMappings upserts every mapping of a file plus its FileMapping,
// EntitySource, and EntityTarget edges.
func (i *Ingestor) ingestMappings(path, fileID string, mappings []retwmodel.Mapping) {
	for _, m := range mappings {
		mappingID := hashid.Mapping(fileID, m.Code)
		if _, err := i.graph.UpsertMapping(mappingID, core.MappingAttrs{
			Name:             m.Name,
			Code:             m.Code,
			DataSource:       m.DataSource,
			CreationDate:     m.CreationDate,
			Creator:          m.Creator,
			ModificationDate: m.ModificationDate,
			Modifier:         m.Modifier,
		}); err != nil {
			continue
		}
		_, _ = i.graph.AddEdge(fileID, mappingID, core.EdgeFileMapping, core.KindMapping, core.EdgeAttrs{CreatedAt: i.clock()})

		i.ingestSources(path, m, mappingID)

		if m.EntityTarget == nil {
			i.raise(diagnostics.Error, diagnostics.MissingEntityTarget, "ingest",
				fmt.Sprintf("%q: mapping %q has no EntityTarget", path, m.Code))
			continue
		}
		targetID := hashid.Entity(m.EntityTarget.CodeModel, m.EntityTarget.Code)
		if _, err := i.graph.UpsertEntity(targetID, entityAttrs(*m.EntityTarget)); err != nil {
			continue
		}
		_, _ = i.graph.AddEdge(mappingID, targetID, core.EdgeEntityTarget, core.KindEntity, core.EdgeAttrs{CreatedAt: i.clock()})
	}
}

// ingestSources upserts one mapping's source entities, skipping
// mdde_FilterBusinessRule pseudo-entities, and raises MissingSourceComposition
// if no genuine source remains once those are skipped.
func (i *Ingestor) ingestSources(path string, m retwmodel.Mapping, mappingID string) {
	if len(m.SourceComposition) == 0 {
		i.raise(diagnostics.Error, diagnostics.MissingSourceComposition, "ingest",
			fmt.Sprintf("%q: mapping %q has no SourceComposition", path, m.Code))
		return
	}

	added := 0
	for _, sc := range m.SourceComposition {
		if sc.Entity.IsFilterBusinessRule() {
			continue
		}
		sourceID := hashid.Entity(sc.Entity.CodeModel, sc.Entity.Code)
		if _, err := i.graph.UpsertEntity(sourceID, entityAttrs(sc.Entity)); err != nil {
			continue
		}
		_, _ = i.graph.AddEdge(sourceID, mappingID, core.EdgeEntitySource, core.KindMapping, core.EdgeAttrs{CreatedAt: i.clock()})
		added++
	}

	if added == 0 {
		i.raise(diagnostics.Error, diagnostics.MissingSourceComposition, "ingest",
			fmt.Sprintf("%q: mapping %q has no sources once filter rules are excluded", path, m.Code))
	}
}

func entityAttrs(e retwmodel.Entity) core.EntityAttrs {
	return core.EntityAttrs{
		Name:             e.Name,
		Code:             e.Code,
		CodeModel:        e.CodeModel,
		CreationDate:     e.CreationDate,
		Creator:          e.Creator,
		ModificationDate: e.ModificationDate,
		Modifier:         e.Modifier,
	}
}

func (i *Ingestor) raise(sev diagnostics.Severity, code diagnostics.Code, component, msg string) {
	if i.sink == nil {
		return
	}
	i.sink.Raise(diagnostics.Diagnostic{Severity: sev, Code: code, Component: component, Message: msg})
}
