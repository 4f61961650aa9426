// Package explorer serves read-only views of a house's container tree:
// listings with child previews, detail with breadcrumb, search and history.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

//go:generate moq -out container_reader_mock_test.go -pkg explorer . containerReader
//go:generate moq -out log_reader_mock_test.go -pkg explorer . logReader
//go:generate moq -out membership_mock_test.go -pkg explorer . membership
//go:generate moq -out tx_manager_mock_test.go -pkg explorer . txManager

type containerReader interface {
	GetByID(ctx context.Context, houseID, id uuid.UUID) (*domain.Container, error)
	GetRoots(ctx context.Context, houseID uuid.UUID) ([]domain.Container, error)
	GetChildren(ctx context.Context, houseID, parentID uuid.UUID) ([]domain.Container, error)
	GetAncestorPath(ctx context.Context, houseID, id uuid.UUID) ([]domain.PathNode, error)
	SearchByName(ctx context.Context, houseID uuid.UUID, query string, typ *domain.ContainerType, limit int) ([]domain.SearchHit, error)
	ChildPreviews(ctx context.Context, parentIDs []uuid.UUID, limit int) (map[uuid.UUID][]domain.Container, error)
}

type logReader interface {
	ListByContainer(ctx context.Context, houseID, containerID uuid.UUID) ([]domain.ContainerLogEntry, error)
	ListByHouse(ctx context.Context, houseID uuid.UUID, limit int) ([]domain.ContainerLogEntry, error)
}

type membership interface {
	GetRole(ctx context.Context, houseID, userID uuid.UUID) (domain.MemberRole, error)
}

type txManager interface {
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type queryObserver interface {
	ObserveQuery(operation string, err error)
}

// Limits bounds the size of read results.
type Limits struct {
	SearchLimit     int
	HouseLogDefault int
	HouseLogMax     int
	PreviewSize     int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		SearchLimit:     50,
		HouseLogDefault: 3,
		HouseLogMax:     100,
		PreviewSize:     3,
	}
}

// Service answers container queries. Every call checks membership and then
// reads from one snapshot.
type Service struct {
	containers containerReader
	logs       logReader
	members    membership
	tx         txManager
	metrics    queryObserver
	limits     Limits
	log        *slog.Logger
}

// NewService creates a new explorer Service. metrics may be nil; zero limits
// fall back to DefaultLimits.
func NewService(
	log *slog.Logger,
	containers containerReader,
	logs logReader,
	members membership,
	tx txManager,
	metrics queryObserver,
	limits Limits,
) *Service {
	def := DefaultLimits()
	if limits.SearchLimit <= 0 {
		limits.SearchLimit = def.SearchLimit
	}
	if limits.HouseLogMax <= 0 {
		limits.HouseLogMax = def.HouseLogMax
	}
	if limits.HouseLogDefault <= 0 {
		limits.HouseLogDefault = def.HouseLogDefault
	}
	if limits.PreviewSize <= 0 {
		limits.PreviewSize = def.PreviewSize
	}

	return &Service{
		containers: containers,
		logs:       logs,
		members:    members,
		tx:         tx,
		metrics:    metrics,
		limits:     limits,
		log:        log.With("service", "explorer"),
	}
}

// authorize returns the caller's role in the house, or ErrNotAllowed when the
// caller is not a member.
func (s *Service) authorize(ctx context.Context, houseID, userID uuid.UUID) (domain.MemberRole, error) {
	role, err := s.members.GetRole(ctx, houseID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("user %s in house %s: %w", userID, houseID, domain.ErrNotAllowed)
		}
		return "", fmt.Errorf("check membership: %w", err)
	}
	return role, nil
}

func (s *Service) observe(ctx context.Context, op string, err error) {
	if s.metrics != nil {
		s.metrics.ObserveQuery(op, err)
	}
	if err != nil && domain.KindOf(err) == domain.KindIntegrity {
		s.log.ErrorContext(ctx, "container tree integrity violation",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
	}
}
