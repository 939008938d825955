package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BloggingApp/story-service/internal/metrics"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedFunc builds the sample collection written on first start.
type SeedFunc[T any] func(now time.Time) ([]T, error)

// ContentStore keeps an ordered collection of items in memory and writes the whole
// collection back to durable storage on every mutation. New items are prepended,
// so collection order is newest first. The in-memory copy only changes once the
// write has succeeded.
type ContentStore[T model.Content[T, P], P any] struct {
	logger  *zap.Logger
	storage repository.Storage
	authors *CredentialStore
	metrics *metrics.Metrics
	variant Variant
	seed    SeedFunc[T]

	now   func() time.Time
	newID func() (string, error)

	mu    sync.RWMutex
	items []T
}

func NewContentStore[T model.Content[T, P], P any](
	logger *zap.Logger,
	storage repository.Storage,
	authors *CredentialStore,
	variant Variant,
	seed SeedFunc[T],
	m *metrics.Metrics,
) *ContentStore[T, P] {
	return &ContentStore[T, P]{
		logger:  logger,
		storage: storage,
		authors: authors,
		metrics: m,
		variant: variant,
		seed:    seed,
		now:     now,
		newID:   newID,
	}
}

// Timestamps are kept at millisecond precision so they survive a JSON round trip unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Initialize loads the persisted collection. When nothing usable is stored the
// sample collection is written instead. A stored empty collection is kept as is.
func (s *ContentStore[T, P]) Initialize(ctx context.Context) error {
	stored, err := repository.GetJSON[[]T](ctx, s.storage, s.variant.CollectionKey)
	switch {
	case err == nil && stored != nil && !hasNil(*stored):
		s.mu.Lock()
		s.items = *stored
		s.mu.Unlock()
		return nil
	case err == nil, errors.Is(err, repository.ErrMalformedValue):
		s.logger.Sugar().Warnf("ignoring malformed %s collection, reseeding", s.variant.Name)
	case errors.Is(err, repository.ErrKeyNotFound):
	default:
		s.logger.Sugar().Errorf("failed to load %s collection: %s", s.variant.Name, err.Error())
		return ErrInternal
	}

	seeded, err := s.seed(s.now())
	if err != nil {
		s.logger.Sugar().Errorf("failed to build %s sample collection: %s", s.variant.Name, err.Error())
		return ErrInternal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, seeded); err != nil {
		return err
	}
	s.items = seeded
	s.metrics.Mutation(s.variant.Name, "seed")

	return nil
}

func hasNil[T any](items []T) bool {
	var zero T
	for _, item := range items {
		if any(item) == any(zero) {
			return true
		}
	}
	return false
}

func (s *ContentStore[T, P]) persist(ctx context.Context, items []T) error {
	if err := repository.SetJSON(ctx, s.storage, s.variant.CollectionKey, items); err != nil {
		s.logger.Sugar().Errorf("failed to persist %s collection: %s", s.variant.Name, err.Error())
		return ErrInternal
	}
	return nil
}

func (s *ContentStore[T, P]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cloneAll(s.items)
}

func (s *ContentStore[T, P]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i].Clone(), true
	}

	var zero T
	return zero, false
}

func (s *ContentStore[T, P]) FilterByTag(tag string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []T{}
	for _, item := range s.items {
		if item.HasTag(tag) {
			matched = append(matched, item.Clone())
		}
	}
	return matched
}

// Create assigns id and timestamps to a copy of item and prepends it.
func (s *ContentStore[T, P]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	if !s.authors.Exists(item.GetAuthorID()) {
		return zero, ErrUnknownAuthor
	}

	id, err := s.newID()
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate %s id: %s", s.variant.Name, err.Error())
		return zero, ErrInternal
	}

	created := item.Clone()
	created.Stamp(id, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]T, 0, len(s.items)+1)
	next = append(next, created)
	next = append(next, s.items...)
	if err := s.persist(ctx, next); err != nil {
		return zero, err
	}
	s.items = next
	s.metrics.Mutation(s.variant.Name, "create")

	return created.Clone(), nil
}

// Update merges patch over the item. Unknown ids change nothing and are reported
// as ErrItemNotFound.
func (s *ContentStore[T, P]) Update(ctx context.Context, id string, patch P) error {
	return s.replace(ctx, id, "update", func(item T) {
		item.Apply(patch, s.now())
	})
}

// IncrementEngagement adds one clap without touching the update timestamp.
func (s *ContentStore[T, P]) IncrementEngagement(ctx context.Context, id string) error {
	var zero T
	if _, ok := any(zero).(model.Clappable); !ok {
		return ErrEngagementUnsupported
	}

	return s.replace(ctx, id, "clap", func(item T) {
		any(item).(model.Clappable).Clap()
	})
}

func (s *ContentStore[T, P]) replace(ctx context.Context, id string, op string, mutate func(item T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}

	changed := s.items[i].Clone()
	mutate(changed)

	next := make([]T, len(s.items))
	copy(next, s.items)
	next[i] = changed
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next
	s.metrics.Mutation(s.variant.Name, op)

	return nil
}

// Remove writes the collection back even when id is unknown, in which case
// ErrItemNotFound is returned after the write.
func (s *ContentStore[T, P]) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if item.GetID() == id {
			found = true
			continue
		}
		next = append(next, item)
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next

	if !found {
		return ErrItemNotFound
	}
	s.metrics.Mutation(s.variant.Name, "remove")
	return nil
}

func (s *ContentStore[T, P]) indexOf(id string) int {
	for i, item := range s.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

func (s *ContentStore[T, P]) cloneAll(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
