// Package containerlog implements the container audit log using PostgreSQL.
// Entries are append-only; the table carries no foreign keys so an entry
// outlives every container, house and user it mentions.
package containerlog

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// Repo provides container log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new container log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const appendSQL = `
INSERT INTO container_logs (
    id, container_id, container_name, container_type, action,
    from_container_id, to_container_id, from_house_id, to_house_id,
    from_owner_user_id, to_owner_user_id, from_quantity, to_quantity,
    from_remark, to_remark, changes, note, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
RETURNING created_at`

// logColumns lists the entry columns followed by the left-joined display names.
var logColumns = []string{
	"l.id", "l.container_id", "l.container_name", "l.container_type", "l.action",
	"l.from_container_id", "l.to_container_id", "l.from_house_id", "l.to_house_id",
	"l.from_owner_user_id", "l.to_owner_user_id", "l.from_quantity", "l.to_quantity",
	"l.from_remark", "l.to_remark", "l.changes", "l.note", "l.created_by", "l.created_at",
	"cc.name", "fc.name", "tc.name", "fh.name", "th.name", "fo.name", "tu.name", "cu.name",
}

func selectLogs() sq.SelectBuilder {
	return postgres.Builder.
		Select(logColumns...).
		From("container_logs l").
		LeftJoin("containers cc ON cc.id = l.container_id").
		LeftJoin("containers fc ON fc.id = l.from_container_id").
		LeftJoin("containers tc ON tc.id = l.to_container_id").
		LeftJoin("houses fh ON fh.id = l.from_house_id").
		LeftJoin("houses th ON th.id = l.to_house_id").
		LeftJoin("users fo ON fo.id = l.from_owner_user_id").
		LeftJoin("users tu ON tu.id = l.to_owner_user_id").
		LeftJoin("users cu ON cu.id = l.created_by").
		OrderBy("l.created_at DESC", "l.id DESC")
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts one entry inside the caller's transaction and returns it
// with ID and CreatedAt filled in. A zero ID is replaced by a time-ordered one.
func (r *Repo) Append(ctx context.Context, entry domain.ContainerLogEntry) (*domain.ContainerLogEntry, error) {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("container_log new id: %w", err)
		}
		entry.ID = id
	}

	changes := entry.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("container_log marshal changes: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, appendSQL,
		entry.ID, entry.ContainerID, entry.ContainerName, string(entry.ContainerType), string(entry.Action),
		entry.FromContainerID, entry.ToContainerID, entry.FromHouseID, entry.ToHouseID,
		entry.FromOwnerUserID, entry.ToOwnerUserID, entry.FromQuantity, entry.ToQuantity,
		entry.FromRemark, entry.ToRemark, changesJSON, entry.Note, entry.CreatedBy,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "container_log", entry.ID)
	}

	return &entry, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByContainer returns the history of a container, newest first. Only
// entries that touched houseID are returned, which keeps the history of a
// deleted or transferred container visible to the houses it lived in.
func (r *Repo) ListByContainer(ctx context.Context, houseID, containerID uuid.UUID) ([]domain.ContainerLogEntry, error) {
	b := selectLogs().
		Where("l.container_id = ?", containerID).
		Where("(l.from_house_id = ? OR l.to_house_id = ?)", houseID, houseID)

	return r.list(ctx, b, "list container logs")
}

// ListByHouse returns the newest entries where the house is either side of
// the change, so cross-house moves appear in both histories.
func (r *Repo) ListByHouse(ctx context.Context, houseID uuid.UUID, limit int) ([]domain.ContainerLogEntry, error) {
	b := selectLogs().
		Where("(l.from_house_id = ? OR l.to_house_id = ?)", houseID, houseID).
		Limit(uint64(limit))

	return r.list(ctx, b, "list house logs")
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.ContainerLogEntry, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	defer rows.Close()

	entries := make([]domain.ContainerLogEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (domain.ContainerLogEntry, error) {
	var (
		e                          domain.ContainerLogEntry
		containerType, action      string
		fromContainer, toContainer pgtype.UUID
		fromHouse, toHouse         pgtype.UUID
		fromOwner, toOwner         pgtype.UUID
		fromQty, toQty             pgtype.Int4
		changesJSON                []byte
	)

	err := row.Scan(
		&e.ID, &e.ContainerID, &e.ContainerName, &containerType, &action,
		&fromContainer, &toContainer, &fromHouse, &toHouse,
		&fromOwner, &toOwner, &fromQty, &toQty,
		&e.FromRemark, &e.ToRemark, &changesJSON, &e.Note, &e.CreatedBy, &e.CreatedAt,
		&e.Names.Container, &e.Names.FromContainer, &e.Names.ToContainer,
		&e.Names.FromHouse, &e.Names.ToHouse,
		&e.Names.FromOwner, &e.Names.ToOwner, &e.Names.Creator,
	)
	if err != nil {
		return domain.ContainerLogEntry{}, domain.NewStorageError("scan container log", err)
	}

	e.ContainerType = domain.ContainerType(containerType)
	e.Action = domain.LogAction(action)
	e.FromContainerID = pgUUIDToPtr(fromContainer)
	e.ToContainerID = pgUUIDToPtr(toContainer)
	e.FromHouseID = pgUUIDToPtr(fromHouse)
	e.ToHouseID = pgUUIDToPtr(toHouse)
	e.FromOwnerUserID = pgUUIDToPtr(fromOwner)
	e.ToOwnerUserID = pgUUIDToPtr(toOwner)
	e.FromQuantity = pgInt4ToPtr(fromQty)
	e.ToQuantity = pgInt4ToPtr(toQty)

	// changes: JSONB -> map[string]any
	if len(changesJSON) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(changesJSON, &changes); err != nil {
			return domain.ContainerLogEntry{}, fmt.Errorf("container_log %s unmarshal changes: %w", e.ID, err)
		}
		e.Changes = changes
	}

	return e, nil
}

// pgUUIDToPtr converts a nullable pgtype.UUID to *uuid.UUID (NULL -> nil).
func pgUUIDToPtr(v pgtype.UUID) *uuid.UUID {
	if !v.Valid {
		return nil
	}
	id := uuid.UUID(v.Bytes)
	return &id
}

func pgInt4ToPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}
