package domain

import (
	"time"

	"github.com/google/uuid"
)

// Container is a node in a house's container tree.
type Container struct {
	ID          uuid.UUID
	HouseID     uuid.UUID
	ParentID    *uuid.UUID
	Type        ContainerType
	Name        string
	Quantity    *int
	OwnerUserID *uuid.UUID
	Remark      *string
	CreatedBy   *uuid.UUID
	UpdatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Read projections, not stored.
	ChildCount  int
	OwnerName   *string
	CreatorName *string
}

// IsRoot reports whether the container has no parent.
func (c *Container) IsRoot() bool { return c.ParentID == nil }

// PathNode is one step of a breadcrumb, root first.
type PathNode struct {
	ID       uuid.UUID
	ParentID *uuid.UUID
	Name     string
	Type     ContainerType
}

// SearchHit is a search result with its rendered ancestor path.
type SearchHit struct {
	Container
	Path *string
}

// TreeNode is the minimal shape used for integrity scans.
type TreeNode struct {
	ID       uuid.UUID
	HouseID  uuid.UUID
	ParentID *uuid.UUID
	Type     ContainerType
}

// Optional is a tri-state patch value: absent (Set == false), explicit null
// (Set && Value == nil) or a concrete value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] { return Optional[T]{Set: true} }

// ContainerPatch lists the fields an update may touch. Name and Quantity are
// not nullable; a nil pointer means "leave unchanged".
type ContainerPatch struct {
	Name        *string
	ParentID    Optional[uuid.UUID]
	Quantity    *int
	OwnerUserID Optional[uuid.UUID]
	Remark      Optional[string]
}

// IsEmpty reports whether the patch names no field at all.
func (p ContainerPatch) IsEmpty() bool {
	return p.Name == nil && !p.ParentID.Set && p.Quantity == nil && !p.OwnerUserID.Set && !p.Remark.Set
}

// TouchesItemFields reports whether the patch sets any item-only attribute.
func (p ContainerPatch) TouchesItemFields() bool {
	return p.Quantity != nil || p.OwnerUserID.Set || p.Remark.Set
}
