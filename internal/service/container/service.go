package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

//go:generate moq -out container_repo_mock_test.go -pkg container . containerRepo
//go:generate moq -out membership_mock_test.go -pkg container . membership
//go:generate moq -out log_writer_mock_test.go -pkg container . logWriter
//go:generate moq -out tx_manager_mock_test.go -pkg container . txManager

type containerRepo interface {
	GetByID(ctx context.Context, houseID, id uuid.UUID) (*domain.Container, error)
	GetAncestorPath(ctx context.Context, houseID, id uuid.UUID) ([]domain.PathNode, error)
	GetDescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	Insert(ctx context.Context, c domain.Container) (*domain.Container, error)
	Update(ctx context.Context, houseID, id uuid.UUID, patch domain.ContainerPatch, actor uuid.UUID) (*domain.Container, error)
	MoveSubtreeToHouse(ctx context.Context, id, fromHouseID, toHouseID uuid.UUID, newParentID *uuid.UUID, descendantIDs []uuid.UUID, actor uuid.UUID) error
	Delete(ctx context.Context, houseID, id uuid.UUID) error
	ForeignOwners(ctx context.Context, containerIDs []uuid.UUID, houseID uuid.UUID) ([]uuid.UUID, error)
}

type membership interface {
	IsMember(ctx context.Context, houseID, userID uuid.UUID) (bool, error)
	LockHouses(ctx context.Context, houseIDs ...uuid.UUID) error
}

type logWriter interface {
	Append(ctx context.Context, entry domain.ContainerLogEntry) (*domain.ContainerLogEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type mutationObserver interface {
	ObserveMutation(operation string, err error, elapsed time.Duration)
}

const (
	MaxNameLength   = 200
	MaxRemarkLength = 1000
)

// Service is the only writer of container state. Every call runs in one
// transaction that also appends exactly one log entry.
type Service struct {
	containers containerRepo
	members    membership
	logs       logWriter
	tx         txManager
	metrics    mutationObserver
	log        *slog.Logger
}

// NewService creates a new container Service. metrics may be nil.
func NewService(
	log *slog.Logger,
	containers containerRepo,
	members membership,
	logs logWriter,
	tx txManager,
	metrics mutationObserver,
) *Service {
	return &Service{
		containers: containers,
		members:    members,
		logs:       logs,
		tx:         tx,
		metrics:    metrics,
		log:        log.With("service", "container"),
	}
}

// requireMember returns ErrNotAllowed unless userID belongs to houseID.
func (s *Service) requireMember(ctx context.Context, houseID, userID uuid.UUID) error {
	ok, err := s.members.IsMember(ctx, houseID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return fmt.Errorf("user %s in house %s: %w", userID, houseID, domain.ErrNotAllowed)
	}
	return nil
}

// loadParent fetches a prospective parent and checks that it may hold children.
func (s *Service) loadParent(ctx context.Context, houseID, parentID uuid.UUID) (*domain.Container, error) {
	parent, err := s.containers.GetByID(ctx, houseID, parentID)
	if err != nil {
		return nil, fmt.Errorf("get parent: %w", err)
	}
	if !parent.Type.CanHaveChildren() {
		return nil, fmt.Errorf("parent %s is an item: %w", parentID, domain.ErrNotAllowed)
	}
	return parent, nil
}

// checkOwner rejects an owner who is not a member of the house.
func (s *Service) checkOwner(ctx context.Context, houseID uuid.UUID, ownerID *uuid.UUID) error {
	if ownerID == nil {
		return nil
	}
	ok, err := s.members.IsMember(ctx, houseID, *ownerID)
	if err != nil {
		return fmt.Errorf("check owner: %w", err)
	}
	if !ok {
		return domain.NewValidationError("owner_user_id", "must be a member of the house")
	}
	return nil
}

// observe reports a finished mutation and logs integrity failures, which are
// never expected and never repaired.
func (s *Service) observe(ctx context.Context, op string, started time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveMutation(op, err, time.Since(started))
	}
	if err != nil && domain.KindOf(err) == domain.KindIntegrity {
		s.log.ErrorContext(ctx, "container tree integrity violation",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
	}
}
