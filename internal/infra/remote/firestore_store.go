package remote

import (
	"context"
	"log/slog"

	"tether/internal/domain/entity"
	"tether/internal/domain/service"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreStore implements RemoteStore on Cloud Firestore
type firestoreStore struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewFirestoreStore wraps a Firestore client
func NewFirestoreStore(client *firestore.Client, logger *slog.Logger) service.RemoteStore {
	return &firestoreStore{
		client: client,
		logger: logger,
	}
}

func (s *firestoreStore) doc(ref service.DocumentRef) *firestore.DocumentRef {
	return s.client.Collection(ref.Collection).Doc(ref.ID)
}

func (s *firestoreStore) Read(ctx context.Context, ref service.DocumentRef) (*entity.RemoteDocument, error) {
	snap, err := s.doc(ref).Get(ctx)
	if err != nil {
		return nil, classify(err, "read "+ref.Path())
	}

	return toRemoteDocument(ref, snap), nil
}

// Write merges fields so concurrent writers of other fields are preserved
func (s *firestoreStore) Write(ctx context.Context, ref service.DocumentRef, fields map[string]any, mode service.WriteMode) error {
	if err := checkFields(mode, fields); err != nil {
		return err
	}

	if _, err := s.doc(ref).Set(ctx, fields, firestore.MergeAll); err != nil {
		return classify(err, "write "+ref.Path())
	}

	return nil
}

func (s *firestoreStore) Listen(ctx context.Context, ref service.DocumentRef, onChange func(*entity.RemoteDocument), onError func(error)) (func(), error) {
	if onChange == nil {
		return nil, errors.New("listen requires an onChange callback")
	}

	listenCtx, cancel := streamContext(ctx)
	iter := s.doc(ref).Snapshots(listenCtx)

	go func() {
		// Stop must not run concurrently with Next, so only this goroutine calls it
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || listenCtx.Err() != nil {
					return
				}

				s.logger.Warn("[Firestore] Listener failed",
					slog.String("path", ref.Path()),
					slog.Any("error", err),
				)
				if onError != nil {
					onError(classify(err, "listen "+ref.Path()))
				}

				return
			}

			onChange(toRemoteDocument(ref, snap))
		}
	}()

	return cancel, nil
}

// streamContext derives the context a listener stream runs under. It keeps
// ctx values but not its cancellation, so the stream ends only through the
// returned stop func.
func streamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithCancel(context.WithoutCancel(ctx))
}

func (s *firestoreStore) Close() error {
	return errors.WithStack(s.client.Close())
}

func toRemoteDocument(ref service.DocumentRef, snap *firestore.DocumentSnapshot) *entity.RemoteDocument {
	doc := &entity.RemoteDocument{
		Collection: ref.Collection,
		ID:         ref.ID,
		Exists:     snap.Exists(),
	}
	if doc.Exists {
		doc.Fields = snap.Data()
		doc.UpdateTime = snap.UpdateTime
	}

	return doc
}
