package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
	"github.com/heartmarshall/house-inventory-backend/internal/service/container"
	"github.com/heartmarshall/house-inventory-backend/internal/service/explorer"
)

type mutationService interface {
	Create(ctx context.Context, actor uuid.UUID, input container.CreateInput) (*domain.Container, error)
	Update(ctx context.Context, actor uuid.UUID, input container.UpdateInput) (*domain.Container, error)
	MoveAcrossHouses(ctx context.Context, actor uuid.UUID, input container.TransferInput) (*domain.Container, error)
	Delete(ctx context.Context, actor uuid.UUID, input container.DeleteInput) error
}

type queryService interface {
	ListRoots(ctx context.Context, actor, houseID uuid.UUID) (*explorer.Listing, error)
	ListChildren(ctx context.Context, actor, houseID, parentID uuid.UUID) (*explorer.Listing, error)
	ContainerDetail(ctx context.Context, actor, houseID, id uuid.UUID) (*explorer.Detail, error)
	Search(ctx context.Context, actor uuid.UUID, input explorer.SearchInput) ([]domain.SearchHit, error)
	ContainerLogs(ctx context.Context, actor, houseID, containerID uuid.UUID) ([]domain.ContainerLogEntry, error)
	HouseLogs(ctx context.Context, actor, houseID uuid.UUID, limit *int) ([]domain.ContainerLogEntry, error)
}

// ContainerHandler serves the house container tree over REST.
type ContainerHandler struct {
	mutations mutationService
	queries   queryService
	log       *slog.Logger
}

// NewContainerHandler creates a ContainerHandler.
func NewContainerHandler(mutations mutationService, queries queryService, logger *slog.Logger) *ContainerHandler {
	return &ContainerHandler{
		mutations: mutations,
		queries:   queries,
		log:       logger.With("handler", "container"),
	}
}

// Register mounts the container routes on mux. wrap is applied to every
// route and is expected to enforce authentication.
func (h *ContainerHandler) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	routes := map[string]http.HandlerFunc{
		"GET /api/houses/{houseID}/containers":                h.List,
		"GET /api/houses/{houseID}/containers/search":         h.Search,
		"GET /api/houses/{houseID}/containers/{id}":           h.Detail,
		"GET /api/houses/{houseID}/containers/{id}/logs":      h.ContainerLogs,
		"GET /api/houses/{houseID}/logs":                      h.HouseLogs,
		"POST /api/houses/{houseID}/containers":               h.Create,
		"PATCH /api/houses/{houseID}/containers/{id}":         h.Update,
		"POST /api/houses/{houseID}/containers/{id}/transfer": h.Transfer,
		"DELETE /api/houses/{houseID}/containers/{id}":        h.Delete,
	}
	for pattern, fn := range routes {
		mux.Handle(pattern, wrap(fn))
	}
}

// List handles GET /api/houses/{houseID}/containers.
// Without parent_id (or with level=root) it returns the roots.
func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, houseID, ok := h.scope(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	var (
		listing *explorer.Listing
		err     error
	)
	switch raw := q.Get("parent_id"); {
	case raw == "" || q.Get("level") == "root":
		listing, err = h.queries.ListRoots(r.Context(), actor, houseID)
	default:
		parentID, perr := uuid.Parse(raw)
		if perr != nil {
			h.fail(w, r, domain.NewValidationError("parent_id", "must be a UUID"))
			return
		}
		listing, err = h.queries.ListChildren(r.Context(), actor, houseID, parentID)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListingResponse(listing))
}

// Search handles GET /api/houses/{houseID}/containers/search?q=&type=.
func (h *ContainerHandler) Search(w http.ResponseWriter, r *http.Request) {
	actor, houseID, ok := h.scope(w, r)
	if !ok {
		return
	}

	hits, err := h.queries.Search(r.Context(), actor, explorer.SearchInput{
		HouseID: houseID,
		Query:   r.URL.Query().Get("q"),
		Type:    r.URL.Query().Get("type"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSearchResponse(hits))
}

// Detail handles GET /api/houses/{houseID}/containers/{id}.
func (h *ContainerHandler) Detail(w http.ResponseWriter, r *http.Request) {
	actor, houseID, id, ok := h.containerScope(w, r)
	if !ok {
		return
	}

	detail, err := h.queries.ContainerDetail(r.Context(), actor, houseID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailResponse(detail))
}

// ContainerLogs handles GET /api/houses/{houseID}/containers/{id}/logs.
func (h *ContainerHandler) ContainerLogs(w http.ResponseWriter, r *http.Request) {
	actor, houseID, id, ok := h.containerScope(w, r)
	if !ok {
		return
	}

	entries, err := h.queries.ContainerLogs(r.Context(), actor, houseID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(entries))
}

// HouseLogs handles GET /api/houses/{houseID}/logs?limit=.
func (h *ContainerHandler) HouseLogs(w http.ResponseWriter, r *http.Request) {
	actor, houseID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var limit *int
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = &n
	}

	entries, err := h.queries.HouseLogs(r.Context(), actor, houseID, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(entries))
}

// Create handles POST /api/houses/{houseID}/containers.
func (h *ContainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, houseID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req createContainerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	typ, known := domain.ParseContainerType(req.Type)
	if !known {
		typ = domain.ContainerType(strings.ToUpper(req.Type))
	}

	created, err := h.mutations.Create(r.Context(), actor, container.CreateInput{
		HouseID:     houseID,
		ParentID:    req.ParentID,
		Type:        typ,
		Name:        req.Name,
		Quantity:    req.Quantity,
		OwnerUserID: req.OwnerUserID,
		Remark:      req.Remark,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toContainerResponse(*created))
}

// Update handles PATCH /api/houses/{houseID}/containers/{id}.
func (h *ContainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, houseID, id, ok := h.containerScope(w, r)
	if !ok {
		return
	}

	var req updateContainerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.mutations.Update(r.Context(), actor, container.UpdateInput{
		HouseID:     houseID,
		ContainerID: id,
		Patch:       patch,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContainerResponse(*updated))
}

// Transfer handles POST /api/houses/{houseID}/containers/{id}/transfer.
func (h *ContainerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	actor, houseID, id, ok := h.containerScope(w, r)
	if !ok {
		return
	}

	var req transferContainerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	moved, err := h.mutations.MoveAcrossHouses(r.Context(), actor, container.TransferInput{
		ContainerID: id,
		FromHouseID: houseID,
		ToHouseID:   req.ToHouseID,
		NewParentID: req.NewParentID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContainerResponse(*moved))
}

// Delete handles DELETE /api/houses/{houseID}/containers/{id}.
func (h *ContainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, houseID, id, ok := h.containerScope(w, r)
	if !ok {
		return
	}

	err := h.mutations.Delete(r.Context(), actor, container.DeleteInput{HouseID: houseID, ContainerID: id})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ContainerHandler) scope(w http.ResponseWriter, r *http.Request) (actor, houseID uuid.UUID, ok bool) {
	actor, err := actorFrom(r)
	if err != nil {
		h.fail(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}
	houseID, err = pathUUID(r, "houseID")
	if err != nil {
		h.fail(w, r, err)
		return uuid.Nil, uuid.Nil, false
	}
	return actor, houseID, true
}

func (h *ContainerHandler) containerScope(w http.ResponseWriter, r *http.Request) (actor, houseID, id uuid.UUID, ok bool) {
	actor, houseID, ok = h.scope(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	return actor, houseID, id, true
}

func (h *ContainerHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, h.log, err)
}
