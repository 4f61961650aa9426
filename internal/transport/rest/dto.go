package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
	"github.com/heartmarshall/house-inventory-backend/internal/service/explorer"
)

// optional decodes a tri-state JSON member: absent, null or a value.
type optional[T any] struct {
	Set   bool
	Value *T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o optional[T]) toDomain() domain.Optional[T] {
	return domain.Optional[T]{Set: o.Set, Value: o.Value}
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createContainerRequest struct {
	ParentID    *uuid.UUID `json:"parent_id"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Quantity    *int       `json:"quantity"`
	OwnerUserID *uuid.UUID `json:"owner_user_id"`
	Remark      *string    `json:"remark"`
}

// updateContainerRequest distinguishes an omitted member from an explicit
// null. Name and quantity cannot be cleared.
type updateContainerRequest struct {
	Name        optional[string]    `json:"name"`
	ParentID    optional[uuid.UUID] `json:"parent_id"`
	Quantity    optional[int]       `json:"quantity"`
	OwnerUserID optional[uuid.UUID] `json:"owner_user_id"`
	Remark      optional[string]    `json:"remark"`
}

func (req updateContainerRequest) patch() (domain.ContainerPatch, error) {
	var errs []domain.FieldError
	if req.Name.Set && req.Name.Value == nil {
		errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be null"})
	}
	if req.Quantity.Set && req.Quantity.Value == nil {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "cannot be null"})
	}
	if len(errs) > 0 {
		return domain.ContainerPatch{}, domain.NewValidationErrors(errs)
	}
	return domain.ContainerPatch{
		Name:        req.Name.Value,
		ParentID:    req.ParentID.toDomain(),
		Quantity:    req.Quantity.Value,
		OwnerUserID: req.OwnerUserID.toDomain(),
		Remark:      req.Remark.toDomain(),
	}, nil
}

type transferContainerRequest struct {
	ToHouseID   uuid.UUID  `json:"to_house_id"`
	NewParentID *uuid.UUID `json:"new_parent_id"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type containerResponse struct {
	ID            uuid.UUID            `json:"id"`
	HouseID       uuid.UUID            `json:"house_id"`
	ParentID      *uuid.UUID           `json:"parent_id"`
	Type          domain.ContainerType `json:"type"`
	Name          string               `json:"name"`
	Quantity      *int                 `json:"quantity"`
	OwnerUserID   *uuid.UUID           `json:"owner_user_id"`
	OwnerName     *string              `json:"owner_name"`
	Remark        *string              `json:"remark"`
	ChildCount    int                  `json:"child_count"`
	CreatedBy     *uuid.UUID           `json:"created_by"`
	CreatedByName *string              `json:"created_by_name"`
	UpdatedBy     *uuid.UUID           `json:"updated_by"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type nodeResponse struct {
	containerResponse
	Preview []containerResponse `json:"preview,omitempty"`
}

type listingResponse struct {
	MyRole     domain.MemberRole `json:"my_role"`
	Containers []nodeResponse    `json:"containers"`
}

type pathNodeResponse struct {
	ID   uuid.UUID            `json:"id"`
	Name string               `json:"name"`
	Type domain.ContainerType `json:"type"`
}

type detailResponse struct {
	Container containerResponse   `json:"container"`
	Path      []pathNodeResponse  `json:"path"`
	Preview   []containerResponse `json:"preview"`
}

type searchHitResponse struct {
	containerResponse
	Path *string `json:"path"`
}

type logEntryResponse struct {
	ID                uuid.UUID            `json:"id"`
	ContainerID       uuid.UUID            `json:"container_id"`
	ContainerName     string               `json:"container_name"`
	ContainerType     domain.ContainerType `json:"container_type"`
	CurrentName       *string              `json:"current_name"`
	Action            domain.LogAction     `json:"action"`
	FromContainerID   *uuid.UUID           `json:"from_container_id"`
	FromContainerName *string              `json:"from_container_name"`
	ToContainerID     *uuid.UUID           `json:"to_container_id"`
	ToContainerName   *string              `json:"to_container_name"`
	FromHouseID       *uuid.UUID           `json:"from_house_id"`
	FromHouseName     *string              `json:"from_house_name"`
	ToHouseID         *uuid.UUID           `json:"to_house_id"`
	ToHouseName       *string              `json:"to_house_name"`
	FromOwnerUserID   *uuid.UUID           `json:"from_owner_user_id"`
	FromOwnerName     *string              `json:"from_owner_name"`
	ToOwnerUserID     *uuid.UUID           `json:"to_owner_user_id"`
	ToOwnerName       *string              `json:"to_owner_name"`
	FromQuantity      *int                 `json:"from_quantity"`
	ToQuantity        *int                 `json:"to_quantity"`
	FromRemark        *string              `json:"from_remark"`
	ToRemark          *string              `json:"to_remark"`
	Changes           map[string]any       `json:"changes,omitempty"`
	Note              string               `json:"note"`
	CreatedBy         uuid.UUID            `json:"created_by"`
	CreatedByName     *string              `json:"created_by_name"`
	CreatedAt         time.Time            `json:"created_at"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toContainerResponse(c domain.Container) containerResponse {
	return containerResponse{
		ID:            c.ID,
		HouseID:       c.HouseID,
		ParentID:      c.ParentID,
		Type:          c.Type,
		Name:          c.Name,
		Quantity:      c.Quantity,
		OwnerUserID:   c.OwnerUserID,
		OwnerName:     c.OwnerName,
		Remark:        c.Remark,
		ChildCount:    c.ChildCount,
		CreatedBy:     c.CreatedBy,
		CreatedByName: c.CreatorName,
		UpdatedBy:     c.UpdatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toContainerResponses(cs []domain.Container) []containerResponse {
	out := make([]containerResponse, len(cs))
	for i, c := range cs {
		out[i] = toContainerResponse(c)
	}
	return out
}

func toListingResponse(l *explorer.Listing) listingResponse {
	nodes := make([]nodeResponse, len(l.Containers))
	for i, n := range l.Containers {
		nodes[i] = nodeResponse{
			containerResponse: toContainerResponse(n.Container),
			Preview:           toContainerResponses(n.Preview),
		}
	}
	return listingResponse{MyRole: l.Role, Containers: nodes}
}

func toDetailResponse(d *explorer.Detail) detailResponse {
	path := make([]pathNodeResponse, len(d.Path))
	for i, p := range d.Path {
		path[i] = pathNodeResponse{ID: p.ID, Name: p.Name, Type: p.Type}
	}
	return detailResponse{
		Container: toContainerResponse(d.Container),
		Path:      path,
		Preview:   toContainerResponses(d.Preview),
	}
}

func toSearchResponse(hits []domain.SearchHit) []searchHitResponse {
	out := make([]searchHitResponse, len(hits))
	for i, h := range hits {
		out[i] = searchHitResponse{containerResponse: toContainerResponse(h.Container), Path: h.Path}
	}
	return out
}

func toLogResponses(entries []domain.ContainerLogEntry) []logEntryResponse {
	out := make([]logEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = logEntryResponse{
			ID:                e.ID,
			ContainerID:       e.ContainerID,
			ContainerName:     e.ContainerName,
			ContainerType:     e.ContainerType,
			CurrentName:       e.Names.Container,
			Action:            e.Action,
			FromContainerID:   e.FromContainerID,
			FromContainerName: e.Names.FromContainer,
			ToContainerID:     e.ToContainerID,
			ToContainerName:   e.Names.ToContainer,
			FromHouseID:       e.FromHouseID,
			FromHouseName:     e.Names.FromHouse,
			ToHouseID:         e.ToHouseID,
			ToHouseName:       e.Names.ToHouse,
			FromOwnerUserID:   e.FromOwnerUserID,
			FromOwnerName:     e.Names.FromOwner,
			ToOwnerUserID:     e.ToOwnerUserID,
			ToOwnerName:       e.Names.ToOwner,
			FromQuantity:      e.FromQuantity,
			ToQuantity:        e.ToQuantity,
			FromRemark:        e.FromRemark,
			ToRemark:          e.ToRemark,
			Changes:           e.Changes,
			Note:              e.Note,
			CreatedBy:         e.CreatedBy,
			CreatedByName:     e.Names.Creator,
			CreatedAt:         e.CreatedAt,
		}
	}
	return out
}
