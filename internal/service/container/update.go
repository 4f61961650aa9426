package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// Update applies a partial patch within the container's house.
// It emits one MOVED entry when only the parent changes and one UPDATED
// entry otherwise. A patch that changes nothing is rejected.
func (s *Service) Update(ctx context.Context, actor uuid.UUID, input UpdateInput) (_ *domain.Container, err error) {
	started := time.Now()
	defer func() { s.observe(ctx, "update", started, err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	patch := normalizePatch(input.Patch)

	if err := s.requireMember(ctx, input.HouseID, actor); err != nil {
		return nil, err
	}

	var (
		updated *domain.Container
		action  domain.LogAction
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.members.LockHouses(txCtx, input.HouseID); err != nil {
			return fmt.Errorf("lock house: %w", err)
		}

		before, err := s.containers.GetByID(txCtx, input.HouseID, input.ContainerID)
		if err != nil {
			return fmt.Errorf("get container: %w", err)
		}

		if patch.TouchesItemFields() && before.Type != domain.ContainerTypeItem {
			return itemFieldsError(patch)
		}
		if patch.ParentID.Set && patch.ParentID.Value != nil {
			if err := s.checkReparent(txCtx, input.HouseID, before.ID, *patch.ParentID.Value); err != nil {
				return err
			}
		}
		if patch.OwnerUserID.Set {
			if err := s.checkOwner(txCtx, input.HouseID, patch.OwnerUserID.Value); err != nil {
				return err
			}
		}

		entry, effective, changed := describeUpdate(before, patch, actor)
		if !changed {
			return domain.NewValidationError("input", "patch does not change anything")
		}

		updated, err = s.containers.Update(txCtx, input.HouseID, input.ContainerID, effective, actor)
		if err != nil {
			return fmt.Errorf("update container: %w", err)
		}

		if _, err := s.logs.Append(txCtx, entry); err != nil {
			return fmt.Errorf("append container log: %w", err)
		}
		action = entry.Action
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "container updated",
		slog.String("user_id", actor.String()),
		slog.String("house_id", input.HouseID.String()),
		slog.String("container_id", input.ContainerID.String()),
		slog.String("action", string(action)),
	)

	return updated, nil
}

// checkReparent validates moving id under newParentID inside one house:
// no self-parenting, no item parents and no cycles.
func (s *Service) checkReparent(ctx context.Context, houseID, id, newParentID uuid.UUID) error {
	if newParentID == id {
		return fmt.Errorf("container %s cannot be its own parent: %w", id, domain.ErrNotAllowed)
	}

	if _, err := s.loadParent(ctx, houseID, newParentID); err != nil {
		return err
	}

	// The new parent must not sit below id. Walking its ancestors is bounded
	// by the tree depth and also surfaces existing corruption.
	path, err := s.containers.GetAncestorPath(ctx, houseID, newParentID)
	if err != nil {
		return fmt.Errorf("get ancestor path: %w", err)
	}
	for _, node := range path {
		if node.ID == id {
			return fmt.Errorf("moving %s under its descendant %s: %w", id, newParentID, domain.ErrNotAllowed)
		}
	}
	return nil
}

func itemFieldsError(p domain.ContainerPatch) error {
	var errs []domain.FieldError
	if p.Quantity != nil {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "only allowed for items"})
	}
	if p.OwnerUserID.Set {
		errs = append(errs, domain.FieldError{Field: "owner_user_id", Message: "only allowed for items"})
	}
	if p.Remark.Set {
		errs = append(errs, domain.FieldError{Field: "remark", Message: "only allowed for items"})
	}
	return domain.NewValidationErrors(errs)
}
