package remote

import (
	"context"
	"sync"
	"time"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"

	"github.com/pkg/errors"
)

type memoryListener struct {
	onChange func(*entity.RemoteDocument)
	onError  func(error)
}

// MemoryStore is an in-process RemoteStore for development and tests.
// Listeners are notified synchronously after each write.
type MemoryStore struct {
	mu        sync.Mutex
	docs      map[string]*entity.RemoteDocument
	listeners map[string]map[uint64]*memoryListener
	nextID    uint64
	offline   bool
	failNext  error
	writes    []MemoryWrite
}

// MemoryWrite records one accepted write
type MemoryWrite struct {
	Ref    service.DocumentRef
	Fields map[string]any
	Mode   service.WriteMode
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:      make(map[string]*entity.RemoteDocument),
		listeners: make(map[string]map[uint64]*memoryListener),
	}
}

// SetOffline makes every call fail with a transient error while set
func (s *MemoryStore) SetOffline(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offline = offline
}

// FailNext makes the next Read, Write or Listen return err
func (s *MemoryStore) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failNext = err
}

// Writes returns every accepted write in order
func (s *MemoryStore) Writes() []MemoryWrite {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]MemoryWrite(nil), s.writes...)
}

// ListenerCount returns the live listeners on ref
func (s *MemoryStore) ListenerCount(ref service.DocumentRef) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.listeners[ref.Path()])
}

// Put replaces a document and notifies its listeners, bypassing failure injection
func (s *MemoryStore) Put(ref service.DocumentRef, fields map[string]any) {
	s.mu.Lock()
	doc := &entity.RemoteDocument{Collection: ref.Collection, ID: ref.ID, Exists: true, Fields: deepCopy(fields), UpdateTime: time.Now().UTC()}
	if doc.Fields == nil {
		doc.Fields = map[string]any{}
	}
	s.docs[ref.Path()] = doc
	listeners := s.snapshotListeners(ref)
	s.mu.Unlock()

	notifyChange(listeners, doc)
}

// EmitError ends every listener on ref with err
func (s *MemoryStore) EmitError(ref service.DocumentRef, err error) {
	s.mu.Lock()
	listeners := s.snapshotListeners(ref)
	delete(s.listeners, ref.Path())
	s.mu.Unlock()

	for _, l := range listeners {
		if l.onError != nil {
			l.onError(err)
		}
	}
}

// injectedFailure consumes the pending failure; callers hold mu.
func (s *MemoryStore) injectedFailure(op string) error {
	if s.offline {
		return domainerrors.NewTransientError(errors.New("offline"), op)
	}
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil

		return err
	}

	return nil
}

func (s *MemoryStore) Read(_ context.Context, ref service.DocumentRef) (*entity.RemoteDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.injectedFailure("read " + ref.Path()); err != nil {
		return nil, err
	}

	doc, ok := s.docs[ref.Path()]
	if !ok {
		return nil, errors.Wrap(service.ErrDocumentNotFound, ref.Path())
	}

	return cloneDocument(doc), nil
}

func (s *MemoryStore) Write(_ context.Context, ref service.DocumentRef, fields map[string]any, mode service.WriteMode) error {
	if err := checkFields(mode, fields); err != nil {
		return err
	}

	s.mu.Lock()
	if err := s.injectedFailure("write " + ref.Path()); err != nil {
		s.mu.Unlock()

		return err
	}

	doc, ok := s.docs[ref.Path()]
	if !ok {
		doc = &entity.RemoteDocument{Collection: ref.Collection, ID: ref.ID, Exists: true, Fields: map[string]any{}}
		s.docs[ref.Path()] = doc
	}
	mergeFields(doc.Fields, fields)
	doc.UpdateTime = time.Now().UTC()
	s.writes = append(s.writes, MemoryWrite{Ref: ref, Fields: deepCopy(fields), Mode: mode})

	snapshot := cloneDocument(doc)
	listeners := s.snapshotListeners(ref)
	s.mu.Unlock()

	notifyChange(listeners, snapshot)

	return nil
}

func (s *MemoryStore) Listen(ctx context.Context, ref service.DocumentRef, onChange func(*entity.RemoteDocument), onError func(error)) (func(), error) {
	if onChange == nil {
		return nil, errors.New("listen requires an onChange callback")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.injectedFailure("listen " + ref.Path()); err != nil {
		return nil, err
	}

	s.nextID++
	id := s.nextID
	path := ref.Path()
	if s.listeners[path] == nil {
		s.listeners[path] = make(map[uint64]*memoryListener)
	}
	s.listeners[path][id] = &memoryListener{onChange: onChange, onError: onError}

	streamCtx, cancel := streamContext(ctx)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.listeners[path], id)
			if len(s.listeners[path]) == 0 {
				delete(s.listeners, path)
			}
		})
	}
	context.AfterFunc(streamCtx, stop)

	return stop, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) snapshotListeners(ref service.DocumentRef) []*memoryListener {
	registered := s.listeners[ref.Path()]
	listeners := make([]*memoryListener, 0, len(registered))
	for _, l := range registered {
		listeners = append(listeners, l)
	}

	return listeners
}

func notifyChange(listeners []*memoryListener, doc *entity.RemoteDocument) {
	for _, l := range listeners {
		l.onChange(cloneDocument(doc))
	}
}

// mergeFields merges nested maps leaf by leaf, like a Firestore MergeAll set.
func mergeFields(dst, src map[string]any) {
	for key, value := range src {
		if nested, ok := value.(map[string]any); ok {
			existing, ok := dst[key].(map[string]any)
			if !ok {
				existing = make(map[string]any, len(nested))
				dst[key] = existing
			}
			mergeFields(existing, nested)

			continue
		}
		dst[key] = value
	}
}

func deepCopy(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	cloned := make(map[string]any, len(fields))
	for key, value := range fields {
		if nested, ok := value.(map[string]any); ok {
			cloned[key] = deepCopy(nested)

			continue
		}
		cloned[key] = value
	}

	return cloned
}

func cloneDocument(doc *entity.RemoteDocument) *entity.RemoteDocument {
	cloned := *doc
	cloned.Fields = deepCopy(doc.Fields)

	return &cloned
}
