// Package house implements the house membership oracle using PostgreSQL.
// The container core only reads memberships and takes house row locks here;
// house CRUD lives outside the core.
package house

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// Repo provides membership lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new house repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getRoleSQL = `
SELECT role FROM house_members WHERE house_id = $1 AND user_id = $2`

const lockHousesSQL = `
SELECT id FROM houses WHERE id = ANY($1::uuid[]) ORDER BY id FOR UPDATE`

const nonMembersSQL = `
SELECT u.id
FROM unnest($2::uuid[]) AS u(id)
WHERE NOT EXISTS (
    SELECT 1 FROM house_members m WHERE m.house_id = $1 AND m.user_id = u.id
)`

// GetRole returns the user's role in the house.
// Returns domain.ErrNotFound when the user is not a member (or the house does not exist).
func (r *Repo) GetRole(ctx context.Context, houseID, userID uuid.UUID) (domain.MemberRole, error) {
	var role string
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getRoleSQL, houseID, userID).Scan(&role)
	if err != nil {
		return "", postgres.MapError(err, "house_member", userID)
	}
	return domain.MemberRole(role), nil
}

// IsMember reports whether userID belongs to houseID.
func (r *Repo) IsMember(ctx context.Context, houseID, userID uuid.UUID) (bool, error) {
	_, err := r.GetRole(ctx, houseID, userID)
	switch {
	case err == nil:
		return true, nil
	case domain.KindOf(err) == domain.KindNotFound:
		return false, nil
	default:
		return false, err
	}
}

// NonMembers returns the subset of userIDs that are not members of houseID.
// Returns an empty slice (not nil) when every user is a member.
func (r *Repo) NonMembers(ctx context.Context, houseID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(userIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, nonMembersSQL, houseID, userIDs)
	if err != nil {
		return nil, domain.NewStorageError("non members", err)
	}
	defer rows.Close()

	result := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewStorageError("scan non member", err)
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("non members", err)
	}
	return result, nil
}

// LockHouses takes row locks on the given houses in id order, so two
// transactions locking the same pair never deadlock. Must run inside a
// transaction. Returns domain.ErrNotFound if any house is missing.
func (r *Repo) LockHouses(ctx context.Context, houseIDs ...uuid.UUID) error {
	ids := dedupe(houseIDs)

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, lockHousesSQL, ids)
	if err != nil {
		return domain.NewStorageError("lock houses", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]struct{}, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return domain.NewStorageError("scan locked house", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return domain.NewStorageError("lock houses", err)
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("house %s: %w", id, domain.ErrNotFound)
		}
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
