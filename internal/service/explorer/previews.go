package explorer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// previewLoader batches child-preview lookups issued while assembling one
// response into a single ChildPreviews query.
type previewLoader = dataloader.Loader[uuid.UUID, []domain.Container]

func (s *Service) newPreviewLoader() *previewLoader {
	return dataloader.NewBatchedLoader(
		newPreviewBatchFn(s.containers, s.limits.PreviewSize),
		dataloader.WithWait[uuid.UUID, []domain.Container](wait),
		dataloader.WithBatchCapacity[uuid.UUID, []domain.Container](maxBatch),
	)
}

// Batches run on their own goroutines but share the caller's read
// transaction, whose connection serves one query at a time.
func newPreviewBatchFn(repo containerReader, size int) dataloader.BatchFunc[uuid.UUID, []domain.Container] {
	var mu sync.Mutex
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Container] {
		mu.Lock()
		defer mu.Unlock()

		grouped, err := repo.ChildPreviews(ctx, keys, size)
		if err != nil {
			return errorResults[[]domain.Container](len(keys), err)
		}
		return mapResults(keys, grouped, emptySlice[domain.Container])
	}
}

// withPreviews pairs every container with its preview. Items and empty
// containers get an empty preview without touching storage.
func (s *Service) withPreviews(ctx context.Context, containers []domain.Container) ([]Node, error) {
	loader := s.newPreviewLoader()

	thunks := make([]dataloader.Thunk[[]domain.Container], len(containers))
	for i, c := range containers {
		if c.Type.CanHaveChildren() && c.ChildCount > 0 {
			thunks[i] = loader.Load(ctx, c.ID)
		}
	}

	nodes := make([]Node, len(containers))
	for i, c := range containers {
		nodes[i] = Node{Container: c, Preview: []domain.Container{}}
		if thunks[i] == nil {
			continue
		}
		preview, err := thunks[i]()
		if err != nil {
			return nil, err
		}
		nodes[i].Preview = preview
	}
	return nodes, nil
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
