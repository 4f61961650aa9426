package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// Create inserts a container into the house and logs it as CREATED.
// Items default to quantity 1.
func (s *Service) Create(ctx context.Context, actor uuid.UUID, input CreateInput) (_ *domain.Container, err error) {
	started := time.Now()
	defer func() { s.observe(ctx, "create", started, err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := domain.Container{
		ID:        uuid.New(),
		HouseID:   input.HouseID,
		ParentID:  input.ParentID,
		Type:      input.Type,
		Name:      domain.NormalizeName(input.Name),
		CreatedBy: &actor,
	}
	if c.Type == domain.ContainerTypeItem {
		qty := 1
		if input.Quantity != nil {
			qty = *input.Quantity
		}
		c.Quantity = &qty
		c.OwnerUserID = input.OwnerUserID
		c.Remark = trimOrNil(input.Remark)
	}

	if err := s.requireMember(ctx, input.HouseID, actor); err != nil {
		return nil, err
	}

	var created *domain.Container
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.members.LockHouses(txCtx, c.HouseID); err != nil {
			return fmt.Errorf("lock house: %w", err)
		}

		if c.ParentID != nil {
			if _, err := s.loadParent(txCtx, c.HouseID, *c.ParentID); err != nil {
				return err
			}
		}
		if err := s.checkOwner(txCtx, c.HouseID, c.OwnerUserID); err != nil {
			return err
		}

		inserted, err := s.containers.Insert(txCtx, c)
		if err != nil {
			return fmt.Errorf("insert container: %w", err)
		}

		if _, err := s.logs.Append(txCtx, describeCreate(inserted, actor)); err != nil {
			return fmt.Errorf("append container log: %w", err)
		}

		// Reload for the read projections (child count, display names).
		created, err = s.containers.GetByID(txCtx, inserted.HouseID, inserted.ID)
		if err != nil {
			return fmt.Errorf("reload container: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "container created",
		slog.String("user_id", actor.String()),
		slog.String("house_id", created.HouseID.String()),
		slog.String("container_id", created.ID.String()),
		slog.String("type", string(created.Type)),
	)

	return created, nil
}
