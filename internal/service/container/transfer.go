package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// MoveAcrossHouses moves a container and its whole subtree to another house,
// optionally under newParentID there. Descendants keep their own parents.
// When both houses are the same the call is a plain reparent and goes through
// Update.
func (s *Service) MoveAcrossHouses(ctx context.Context, actor uuid.UUID, input TransferInput) (_ *domain.Container, err error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.FromHouseID == input.ToHouseID {
		return s.Update(ctx, actor, UpdateInput{
			HouseID:     input.FromHouseID,
			ContainerID: input.ContainerID,
			Patch:       domain.ContainerPatch{ParentID: domain.Optional[uuid.UUID]{Set: true, Value: input.NewParentID}},
		})
	}

	started := time.Now()
	defer func() { s.observe(ctx, "transfer", started, err) }()

	if err := s.requireMember(ctx, input.FromHouseID, actor); err != nil {
		return nil, err
	}

	var (
		moved   *domain.Container
		carried int
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// A missing destination house surfaces here as NotFound.
		if err := s.members.LockHouses(txCtx, input.FromHouseID, input.ToHouseID); err != nil {
			return fmt.Errorf("lock houses: %w", err)
		}
		if err := s.requireMember(txCtx, input.ToHouseID, actor); err != nil {
			return err
		}

		before, err := s.containers.GetByID(txCtx, input.FromHouseID, input.ContainerID)
		if err != nil {
			return fmt.Errorf("get container: %w", err)
		}

		descendants, err := s.containers.GetDescendantIDs(txCtx, before.ID)
		if err != nil {
			return fmt.Errorf("get descendants: %w", err)
		}

		if input.NewParentID != nil {
			if err := s.checkTransferParent(txCtx, input.ToHouseID, before.ID, *input.NewParentID, descendants); err != nil {
				return err
			}
		}

		subtree := append([]uuid.UUID{before.ID}, descendants...)
		foreign, err := s.containers.ForeignOwners(txCtx, subtree, input.ToHouseID)
		if err != nil {
			return fmt.Errorf("check owners: %w", err)
		}
		if len(foreign) > 0 {
			return fmt.Errorf("%d item owner(s) are not members of house %s: %w", len(foreign), input.ToHouseID, domain.ErrNotAllowed)
		}

		if err := s.containers.MoveSubtreeToHouse(txCtx, before.ID, input.FromHouseID, input.ToHouseID, input.NewParentID, descendants, actor); err != nil {
			return fmt.Errorf("move subtree: %w", err)
		}

		entry := describeTransfer(before, input.ToHouseID, input.NewParentID, len(descendants), actor)
		if _, err := s.logs.Append(txCtx, entry); err != nil {
			return fmt.Errorf("append container log: %w", err)
		}

		moved, err = s.containers.GetByID(txCtx, input.ToHouseID, before.ID)
		if err != nil {
			return fmt.Errorf("reload container: %w", err)
		}
		carried = len(descendants)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "container moved across houses",
		slog.String("user_id", actor.String()),
		slog.String("container_id", input.ContainerID.String()),
		slog.String("from_house_id", input.FromHouseID.String()),
		slog.String("to_house_id", input.ToHouseID.String()),
		slog.Int("descendants", carried),
	)

	return moved, nil
}

// checkTransferParent validates the destination parent of a cross-house move.
func (s *Service) checkTransferParent(ctx context.Context, toHouseID, id, newParentID uuid.UUID, descendants []uuid.UUID) error {
	if newParentID == id {
		return fmt.Errorf("container %s cannot be its own parent: %w", id, domain.ErrNotAllowed)
	}
	for _, d := range descendants {
		if d == newParentID {
			return fmt.Errorf("moving %s under its descendant %s: %w", id, newParentID, domain.ErrNotAllowed)
		}
	}
	_, err := s.loadParent(ctx, toHouseID, newParentID)
	return err
}
