package container

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// CreateInput holds the parameters for creating a container.
type CreateInput struct {
	HouseID     uuid.UUID
	ParentID    *uuid.UUID
	Type        domain.ContainerType
	Name        string
	Quantity    *int // items only; defaults to 1
	OwnerUserID *uuid.UUID
	Remark      *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "house_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be one of AREA, BOX, ITEM"})
	}
	errs = append(errs, validateName(domain.NormalizeName(i.Name))...)

	if i.Type.IsValid() && i.Type != domain.ContainerTypeItem {
		if i.Quantity != nil {
			errs = append(errs, domain.FieldError{Field: "quantity", Message: "only allowed for items"})
		}
		if i.OwnerUserID != nil {
			errs = append(errs, domain.FieldError{Field: "owner_user_id", Message: "only allowed for items"})
		}
		if i.Remark != nil {
			errs = append(errs, domain.FieldError{Field: "remark", Message: "only allowed for items"})
		}
	}
	if i.Quantity != nil && *i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be >= 0"})
	}
	if i.Remark != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Remark)) > MaxRemarkLength {
		errs = append(errs, domain.FieldError{Field: "remark", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a container.
type UpdateInput struct {
	HouseID     uuid.UUID
	ContainerID uuid.UUID
	Patch       domain.ContainerPatch
}

// Validate checks all fields and collects all errors.
// Item-only fields are checked against the stored type later.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "house_id", Message: "required"})
	}
	if i.ContainerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "container_id", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Patch.Name != nil {
		errs = append(errs, validateName(domain.NormalizeName(*i.Patch.Name))...)
	}
	if i.Patch.Quantity != nil && *i.Patch.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be >= 0"})
	}
	if v := i.Patch.Remark.Value; v != nil && utf8.RuneCountInString(strings.TrimSpace(*v)) > MaxRemarkLength {
		errs = append(errs, domain.FieldError{Field: "remark", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransferInput holds the parameters for moving a container to another house.
type TransferInput struct {
	ContainerID uuid.UUID
	FromHouseID uuid.UUID
	ToHouseID   uuid.UUID
	NewParentID *uuid.UUID // nil = becomes a root in the destination
}

// Validate checks all fields and collects all errors.
func (i TransferInput) Validate() error {
	var errs []domain.FieldError

	if i.ContainerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "container_id", Message: "required"})
	}
	if i.FromHouseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "from_house_id", Message: "required"})
	}
	if i.ToHouseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_house_id", Message: "required"})
	}
	if i.NewParentID != nil && *i.NewParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "new_parent_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput identifies the container to delete.
type DeleteInput struct {
	HouseID     uuid.UUID
	ContainerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "house_id", Message: "required"})
	}
	if i.ContainerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "container_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 200 characters"}}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// normalizePatch trims text fields. An all-blank remark clears the field.
func normalizePatch(p domain.ContainerPatch) domain.ContainerPatch {
	if p.Name != nil {
		name := domain.NormalizeName(*p.Name)
		p.Name = &name
	}
	if p.Remark.Set {
		p.Remark.Value = trimOrNil(p.Remark.Value)
	}
	return p
}
