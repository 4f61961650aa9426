package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Delete removes a container and, through the storage cascade, its subtree.
// Only the container itself is logged; the DELETED entry is written first.
func (s *Service) Delete(ctx context.Context, actor uuid.UUID, input DeleteInput) (err error) {
	started := time.Now()
	defer func() { s.observe(ctx, "delete", started, err) }()

	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.requireMember(ctx, input.HouseID, actor); err != nil {
		return err
	}

	var removed int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.members.LockHouses(txCtx, input.HouseID); err != nil {
			return fmt.Errorf("lock house: %w", err)
		}

		before, err := s.containers.GetByID(txCtx, input.HouseID, input.ContainerID)
		if err != nil {
			return fmt.Errorf("get container: %w", err)
		}

		descendants, err := s.containers.GetDescendantIDs(txCtx, before.ID)
		if err != nil {
			return fmt.Errorf("get descendants: %w", err)
		}

		if _, err := s.logs.Append(txCtx, describeDelete(before, len(descendants), actor)); err != nil {
			return fmt.Errorf("append container log: %w", err)
		}

		if err := s.containers.Delete(txCtx, input.HouseID, before.ID); err != nil {
			return fmt.Errorf("delete container: %w", err)
		}
		removed = len(descendants)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "container deleted",
		slog.String("user_id", actor.String()),
		slog.String("house_id", input.HouseID.String()),
		slog.String("container_id", input.ContainerID.String()),
		slog.Int("descendants", removed),
	)

	return nil
}
