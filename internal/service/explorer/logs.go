package explorer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// ContainerLogs returns the history of a container as seen from houseID,
// newest first. A deleted container keeps its history; an id that never
// touched the house is domain.ErrNotFound.
func (s *Service) ContainerLogs(ctx context.Context, actor, houseID, containerID uuid.UUID) (_ []domain.ContainerLogEntry, err error) {
	defer func() { s.observe(ctx, "container_logs", err) }()

	if _, err := s.authorize(ctx, houseID, actor); err != nil {
		return nil, err
	}

	var entries []domain.ContainerLogEntry
	err = s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		entries, err = s.logs.ListByContainer(txCtx, houseID, containerID)
		if err != nil {
			return fmt.Errorf("list container logs: %w", err)
		}
		if len(entries) > 0 {
			return nil
		}
		// Rows that predate the log have no history but still exist.
		if _, err := s.containers.GetByID(txCtx, houseID, containerID); err != nil {
			return fmt.Errorf("get container: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// HouseLogs returns the newest entries that involve the house. A nil limit
// uses the configured default; other values are clamped to 1..HouseLogMax.
func (s *Service) HouseLogs(ctx context.Context, actor, houseID uuid.UUID, limit *int) (_ []domain.ContainerLogEntry, err error) {
	defer func() { s.observe(ctx, "house_logs", err) }()

	if _, err := s.authorize(ctx, houseID, actor); err != nil {
		return nil, err
	}

	n := s.clampHouseLogLimit(limit)

	var entries []domain.ContainerLogEntry
	err = s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		entries, err = s.logs.ListByHouse(txCtx, houseID, n)
		if err != nil {
			return fmt.Errorf("list house logs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *Service) clampHouseLogLimit(limit *int) int {
	if limit == nil {
		return s.limits.HouseLogDefault
	}
	switch n := *limit; {
	case n < 1:
		return 1
	case n > s.limits.HouseLogMax:
		return s.limits.HouseLogMax
	default:
		return n
	}
}
