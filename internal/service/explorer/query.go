package explorer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// Node is a listed container together with a short preview of its children.
type Node struct {
	domain.Container
	Preview []domain.Container
}

// Listing is one level of the tree as seen by a member.
type Listing struct {
	Role       domain.MemberRole
	Containers []Node
}

// Detail is a single container with its breadcrumb, root first and ending
// with the container itself.
type Detail struct {
	Container domain.Container
	Path      []domain.PathNode
	Preview   []domain.Container
}

// SearchInput holds the parameters of a name search.
type SearchInput struct {
	HouseID uuid.UUID
	Query   string
	Type    string // optional: area, box or item
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "house_id", Message: "required"})
	}
	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "q", Message: "required"})
	}
	if i.Type != "" {
		if _, ok := domain.ParseContainerType(i.Type); !ok {
			errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of area, box, item"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRoots returns the house's top-level containers ordered by name.
func (s *Service) ListRoots(ctx context.Context, actor, houseID uuid.UUID) (_ *Listing, err error) {
	defer func() { s.observe(ctx, "list_roots", err) }()

	role, err := s.authorize(ctx, houseID, actor)
	if err != nil {
		return nil, err
	}

	var nodes []Node
	err = s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		roots, err := s.containers.GetRoots(txCtx, houseID)
		if err != nil {
			return fmt.Errorf("get roots: %w", err)
		}
		nodes, err = s.withPreviews(txCtx, roots)
		if err != nil {
			return fmt.Errorf("load previews: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Listing{Role: role, Containers: nodes}, nil
}

// ListChildren returns the direct children of parentID ordered by type then
// name. Returns domain.ErrNotFound if the parent is not in the house.
func (s *Service) ListChildren(ctx context.Context, actor, houseID, parentID uuid.UUID) (_ *Listing, err error) {
	defer func() { s.observe(ctx, "list_children", err) }()

	role, err := s.authorize(ctx, houseID, actor)
	if err != nil {
		return nil, err
	}

	var nodes []Node
	err = s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		children, err := s.containers.GetChildren(txCtx, houseID, parentID)
		if err != nil {
			return fmt.Errorf("get children: %w", err)
		}
		nodes, err = s.withPreviews(txCtx, children)
		if err != nil {
			return fmt.Errorf("load previews: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Listing{Role: role, Containers: nodes}, nil
}

// ContainerDetail returns a container, its breadcrumb and, unless it is an
// item, a preview of its children.
func (s *Service) ContainerDetail(ctx context.Context, actor, houseID, id uuid.UUID) (_ *Detail, err error) {
	defer func() { s.observe(ctx, "container_detail", err) }()

	if _, err := s.authorize(ctx, houseID, actor); err != nil {
		return nil, err
	}

	var detail Detail
	err = s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		c, err := s.containers.GetByID(txCtx, houseID, id)
		if err != nil {
			return fmt.Errorf("get container: %w", err)
		}

		path, err := s.containers.GetAncestorPath(txCtx, houseID, id)
		if err != nil {
			return fmt.Errorf("get ancestor path: %w", err)
		}

		nodes, err := s.withPreviews(txCtx, []domain.Container{*c})
		if err != nil {
			return fmt.Errorf("load previews: %w", err)
		}

		detail = Detail{Container: *c, Path: path, Preview: nodes[0].Preview}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

// Search finds containers in the house whose name contains the query,
// case-insensitively, optionally restricted to one type.
func (s *Service) Search(ctx context.Context, actor uuid.UUID, input SearchInput) (_ []domain.SearchHit, err error) {
	defer func() { s.observe(ctx, "search", err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var typ *domain.ContainerType
	if input.Type != "" {
		t, _ := domain.ParseContainerType(input.Type)
		typ = &t
	}

	if _, err := s.authorize(ctx, input.HouseID, actor); err != nil {
		return nil, err
	}

	var hits []domain.SearchHit
	err = s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		hits, err = s.containers.SearchByName(txCtx, input.HouseID, domain.NormalizeName(input.Query), typ, s.limits.SearchLimit)
		if err != nil {
			return fmt.Errorf("search containers: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return hits, nil
}
