package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driven"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

// fakeScanner serves an in-memory file tree.
type fakeScanner struct {
	files    map[string][]byte // path -> content
	readErrs map[string]error  // path -> error forced on Read
}

var _ driven.FileScanner = (*fakeScanner)(nil)

func newFakeScanner() *fakeScanner {
	return &fakeScanner{
		files:    make(map[string][]byte),
		readErrs: make(map[string]error),
	}
}

func (s *fakeScanner) add(path string, content []byte) {
	s.files[path] = content
}

func (s *fakeScanner) Scan(_ context.Context, _ string) ([]domain.FileRef, error) {
	paths := make([]string, 0, len(s.files))
	for path := range s.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var refs []domain.FileRef
	for _, path := range paths {
		format, ok := domain.FormatForPath(path)
		if !ok {
			continue
		}
		refs = append(refs, domain.FileRef{
			Path:     path,
			Format:   format,
			Size:     int64(len(s.files[path])),
			Modified: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		})
	}
	return refs, nil
}

func (s *fakeScanner) Read(_ context.Context, path string) ([]byte, error) {
	if err, ok := s.readErrs[path]; ok {
		return nil, err
	}
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New("file vanished")
	}
	return data, nil
}

func (s *fakeScanner) Watch(_ context.Context, _ string) (<-chan string, error) {
	ch := make(chan string)
	close(ch)
	return ch, nil
}

// fakeExtractor returns the raw bytes as text, or a fixed error.
type fakeExtractor struct {
	format domain.Format
	err    error
	panics bool
}

var _ driven.Extractor = (*fakeExtractor)(nil)

func (e *fakeExtractor) Format() domain.Format { return e.format }

func (e *fakeExtractor) Extract(_ context.Context, data []byte) (string, error) {
	if e.panics {
		panic("decoder exploded")
	}
	if e.err != nil {
		return "", e.err
	}
	return string(data), nil
}

// fakeRegistry dispatches over the closed format set.
type fakeRegistry struct {
	extractors map[domain.Format]driven.Extractor
}

var _ driven.ExtractorRegistry = (*fakeRegistry)(nil)

func newFakeRegistry(extractors ...driven.Extractor) *fakeRegistry {
	r := &fakeRegistry{extractors: make(map[domain.Format]driven.Extractor)}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

func passthroughRegistry() *fakeRegistry {
	return newFakeRegistry(
		&fakeExtractor{format: domain.FormatWord},
		&fakeExtractor{format: domain.FormatXML},
		&fakeExtractor{format: domain.FormatPDF},
	)
}

func (r *fakeRegistry) Register(extractor driven.Extractor) {
	r.extractors[extractor.Format()] = extractor
}

func (r *fakeRegistry) ExtractorFor(format domain.Format) (driven.Extractor, error) {
	extractor, ok := r.extractors[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return extractor, nil
}

// fakeStore is an in-memory knowledge store with error injection.
type fakeStore struct {
	kb      *domain.KnowledgeBase
	loadErr error
	saveErr error
	saves   int
	loads   int
}

var _ driven.KnowledgeStore = (*fakeStore)(nil)

func (s *fakeStore) Save(_ context.Context, kb *domain.KnowledgeBase) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.kb = kb
	return nil
}

func (s *fakeStore) Load(_ context.Context) (*domain.KnowledgeBase, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.kb == nil {
		return nil, domain.ErrNoCache
	}
	return s.kb, nil
}

// fakeIngest counts pipeline runs.
type fakeIngest struct {
	kb   *domain.KnowledgeBase
	err  error
	runs int
}

var _ driving.IngestService = (*fakeIngest)(nil)

func (f *fakeIngest) ProcessAll(_ context.Context) (*domain.KnowledgeBase, error) {
	f.runs++
	if f.err != nil {
		return nil, f.err
	}
	return f.kb, nil
}

func (f *fakeIngest) Status() *driving.IngestStatus {
	return &driving.IngestStatus{}
}
