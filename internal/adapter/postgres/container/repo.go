// Package container implements the container tree store using PostgreSQL.
// Containers form a per-house forest linked by parent_id. Tree walks are
// iterative and keep a visited set so a corrupted cycle surfaces as
// domain.ErrIntegrity instead of looping.
package container

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/house-inventory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// Repo provides container persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new container repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const typeRankSQL = `CASE c.type WHEN 'AREA' THEN 0 WHEN 'BOX' THEN 1 ELSE 2 END`

const selectContainerSQL = `
SELECT
    c.id, c.house_id, c.parent_id, c.type, c.name, c.quantity, c.owner_user_id, c.remark,
    c.created_by, c.updated_by, c.created_at, c.updated_at,
    (SELECT count(*) FROM containers ch WHERE ch.parent_id = c.id) AS child_count,
    ou.name AS owner_name,
    cu.name AS creator_name
FROM containers c
LEFT JOIN users ou ON ou.id = c.owner_user_id
LEFT JOIN users cu ON cu.id = c.created_by`

const getByIDSQL = selectContainerSQL + `
WHERE c.id = $1 AND c.house_id = $2`

const getRootsSQL = selectContainerSQL + `
WHERE c.house_id = $1 AND c.parent_id IS NULL
ORDER BY lower(c.name), c.name, c.id`

const getChildrenSQL = selectContainerSQL + `
WHERE c.house_id = $1 AND c.parent_id = $2
ORDER BY ` + typeRankSQL + `, lower(c.name), c.name, c.id`

const existsInHouseSQL = `
SELECT EXISTS(SELECT 1 FROM containers WHERE id = $1 AND house_id = $2)`

const getPathNodeSQL = `
SELECT id, parent_id, name, type FROM containers WHERE id = $1 AND house_id = $2`

const getChildIDsSQL = `
SELECT id FROM containers WHERE parent_id = ANY($1::uuid[])`

const insertSQL = `
INSERT INTO containers (
    id, house_id, parent_id, type, name, quantity, owner_user_id, remark,
    created_by, updated_by, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, now(), now())
RETURNING created_at, updated_at`

const moveSubjectSQL = `
UPDATE containers
SET house_id = $3, parent_id = $4, updated_by = $5, updated_at = now()
WHERE id = $1 AND house_id = $2`

const moveDescendantsSQL = `
UPDATE containers
SET house_id = $3, updated_at = now()
WHERE id = ANY($1::uuid[]) AND house_id = $2`

const deleteSQL = `
DELETE FROM containers WHERE id = $1 AND house_id = $2`

const foreignOwnersSQL = `
SELECT DISTINCT c.owner_user_id
FROM containers c
WHERE c.id = ANY($1::uuid[])
  AND c.owner_user_id IS NOT NULL
  AND NOT EXISTS (
      SELECT 1 FROM house_members m WHERE m.house_id = $2 AND m.user_id = c.owner_user_id
  )
ORDER BY c.owner_user_id`

const childPreviewsSQL = `
SELECT id, house_id, parent_id, type, name, quantity
FROM (
    SELECT c.id, c.house_id, c.parent_id, c.type, c.name, c.quantity,
           ROW_NUMBER() OVER (
               PARTITION BY c.parent_id
               ORDER BY ` + typeRankSQL + `, lower(c.name), c.name, c.id
           ) AS rn
    FROM containers c
    WHERE c.parent_id = ANY($1::uuid[])
) ranked
WHERE rn <= $2
ORDER BY parent_id, rn`

const searchTreeCTE = `
WITH RECURSIVE tree AS (
    SELECT id, ARRAY[name::text] AS path, ARRAY[id] AS seen
    FROM containers
    WHERE house_id = ? AND parent_id IS NULL

    UNION ALL

    SELECT c.id, t.path || c.name::text, t.seen || c.id
    FROM containers c
    JOIN tree t ON c.parent_id = t.id
    WHERE c.house_id = ? AND NOT c.id = ANY(t.seen)
)`

const listHouseIDsSQL = `
SELECT id FROM houses ORDER BY id`

const listNodesSQL = `
SELECT id, house_id, parent_id, type FROM containers WHERE house_id = $1 ORDER BY id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a container of the house.
// Returns domain.ErrNotFound if it does not exist or belongs to another house.
func (r *Repo) GetByID(ctx context.Context, houseID, id uuid.UUID) (*domain.Container, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, houseID)
	c, err := scanContainer(row)
	if err != nil {
		return nil, postgres.MapError(err, "container", id)
	}
	return &c, nil
}

// GetRoots returns the house's top-level containers ordered by name.
func (r *Repo) GetRoots(ctx context.Context, houseID uuid.UUID) ([]domain.Container, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getRootsSQL, houseID)
	if err != nil {
		return nil, domain.NewStorageError("get roots", err)
	}
	return collectContainers(rows, "get roots")
}

// GetChildren returns the direct children of parentID ordered by type then name.
// Returns domain.ErrNotFound if the parent is not in the house.
func (r *Repo) GetChildren(ctx context.Context, houseID, parentID uuid.UUID) ([]domain.Container, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsInHouseSQL, parentID, houseID).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "container", parentID)
	}
	if !exists {
		return nil, fmt.Errorf("container %s: %w", parentID, domain.ErrNotFound)
	}

	rows, err := q.Query(ctx, getChildrenSQL, houseID, parentID)
	if err != nil {
		return nil, domain.NewStorageError("get children", err)
	}
	return collectContainers(rows, "get children")
}

// GetAncestorPath returns the chain from the root down to id inclusive.
// The walk follows parent_id one row at a time; revisiting a node or
// reaching a parent outside the house returns domain.ErrIntegrity.
func (r *Repo) GetAncestorPath(ctx context.Context, houseID, id uuid.UUID) ([]domain.PathNode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var path []domain.PathNode
	visited := make(map[uuid.UUID]struct{})

	current := id
	for {
		if _, seen := visited[current]; seen {
			return nil, fmt.Errorf("ancestor path of %s: cycle at %s: %w", id, current, domain.ErrIntegrity)
		}
		visited[current] = struct{}{}

		var (
			node domain.PathNode
			typ  string
		)
		err := q.QueryRow(ctx, getPathNodeSQL, current, houseID).Scan(&node.ID, &node.ParentID, &node.Name, &typ)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) && current != id {
				return nil, fmt.Errorf("ancestor path of %s: parent %s outside house: %w", id, current, domain.ErrIntegrity)
			}
			return nil, postgres.MapError(err, "container", current)
		}
		node.Type = domain.ContainerType(typ)
		path = append(path, node)

		if node.ParentID == nil {
			break
		}
		current = *node.ParentID
	}

	// Collected leaf first; callers want root first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// GetDescendantIDs returns every transitive descendant of id, level by level.
// The traversal keeps an explicit frontier, so depth is bounded by memory
// rather than the call stack. Returns an empty slice (not nil) for a leaf.
func (r *Repo) GetDescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	result := make([]uuid.UUID, 0)
	visited := map[uuid.UUID]struct{}{id: {}}
	frontier := []uuid.UUID{id}

	for len(frontier) > 0 {
		rows, err := q.Query(ctx, getChildIDsSQL, frontier)
		if err != nil {
			return nil, domain.NewStorageError("get descendants", err)
		}

		var next []uuid.UUID
		for rows.Next() {
			var childID uuid.UUID
			if err := rows.Scan(&childID); err != nil {
				rows.Close()
				return nil, domain.NewStorageError("scan descendant", err)
			}
			if _, seen := visited[childID]; seen {
				rows.Close()
				return nil, fmt.Errorf("descendants of %s: cycle at %s: %w", id, childID, domain.ErrIntegrity)
			}
			visited[childID] = struct{}{}
			next = append(next, childID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, domain.NewStorageError("get descendants", err)
		}

		result = append(result, next...)
		frontier = next
	}

	return result, nil
}

// SearchByName finds containers whose name contains query, case-insensitively.
// Each hit carries its root-to-node path joined with " > ". Results are
// ordered by type then name and capped at limit.
func (r *Repo) SearchByName(ctx context.Context, houseID uuid.UUID, query string, typ *domain.ContainerType, limit int) ([]domain.SearchHit, error) {
	b := postgres.Builder.
		Select(
			"c.id", "c.house_id", "c.parent_id", "c.type", "c.name", "c.quantity", "c.owner_user_id", "c.remark",
			"c.created_by", "c.updated_by", "c.created_at", "c.updated_at",
			"(SELECT count(*) FROM containers ch WHERE ch.parent_id = c.id)",
			"ou.name", "cu.name",
			"array_to_string(t.path, ' > ')",
		).
		Prefix(searchTreeCTE, houseID, houseID).
		From("containers c").
		LeftJoin("users ou ON ou.id = c.owner_user_id").
		LeftJoin("users cu ON cu.id = c.created_by").
		LeftJoin("tree t ON t.id = c.id").
		Where("c.house_id = ?", houseID).
		Where("c.name ILIKE ?", "%"+domain.EscapeLike(query)+"%")

	if typ != nil {
		b = b.Where(sq.Eq{"c.type": string(*typ)})
	}

	sqlStr, args, err := b.
		OrderBy(typeRankSQL, "lower(c.name)", "c.name", "c.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, domain.NewStorageError("search containers", err)
	}
	defer rows.Close()

	hits := make([]domain.SearchHit, 0)
	for rows.Next() {
		var (
			hit     domain.SearchHit
			rawType string
		)
		c := &hit.Container
		if err := rows.Scan(
			&c.ID, &c.HouseID, &c.ParentID, &rawType, &c.Name, &c.Quantity, &c.OwnerUserID, &c.Remark,
			&c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
			&c.ChildCount, &c.OwnerName, &c.CreatorName,
			&hit.Path,
		); err != nil {
			return nil, domain.NewStorageError("scan search hit", err)
		}
		c.Type = domain.ContainerType(rawType)
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("search containers", err)
	}
	return hits, nil
}

// ChildPreviews returns up to limit children for each parent, in listing
// order, keyed by parent id. Parents without children are absent from the map.
func (r *Repo) ChildPreviews(ctx context.Context, parentIDs []uuid.UUID, limit int) (map[uuid.UUID][]domain.Container, error) {
	result := make(map[uuid.UUID][]domain.Container, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, childPreviewsSQL, parentIDs, limit)
	if err != nil {
		return nil, domain.NewStorageError("child previews", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c   domain.Container
			typ string
		)
		if err := rows.Scan(&c.ID, &c.HouseID, &c.ParentID, &typ, &c.Name, &c.Quantity); err != nil {
			return nil, domain.NewStorageError("scan child preview", err)
		}
		c.Type = domain.ContainerType(typ)
		result[*c.ParentID] = append(result[*c.ParentID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("child previews", err)
	}
	return result, nil
}

// ForeignOwners returns the distinct owners of the given containers that are
// not members of houseID. Returns an empty slice (not nil) when there are none.
func (r *Repo) ForeignOwners(ctx context.Context, containerIDs []uuid.UUID, houseID uuid.UUID) ([]uuid.UUID, error) {
	result := make([]uuid.UUID, 0)
	if len(containerIDs) == 0 {
		return result, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, foreignOwnersSQL, containerIDs, houseID)
	if err != nil {
		return nil, domain.NewStorageError("foreign owners", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewStorageError("scan foreign owner", err)
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("foreign owners", err)
	}
	return result, nil
}

// ListHouseIDs returns every house id. Used by the offline integrity scan.
func (r *Repo) ListHouseIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listHouseIDsSQL)
	if err != nil {
		return nil, domain.NewStorageError("list houses", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewStorageError("scan house id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list houses", err)
	}
	return ids, nil
}

// ListNodes returns the structural shape of every container in the house.
func (r *Repo) ListNodes(ctx context.Context, houseID uuid.UUID) ([]domain.TreeNode, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listNodesSQL, houseID)
	if err != nil {
		return nil, domain.NewStorageError("list nodes", err)
	}
	defer rows.Close()

	var nodes []domain.TreeNode
	for rows.Next() {
		var (
			n   domain.TreeNode
			typ string
		)
		if err := rows.Scan(&n.ID, &n.HouseID, &n.ParentID, &typ); err != nil {
			return nil, domain.NewStorageError("scan node", err)
		}
		n.Type = domain.ContainerType(typ)
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list nodes", err)
	}
	return nodes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new container and returns it with timestamps filled in.
// The caller assigns the ID.
func (r *Repo) Insert(ctx context.Context, c domain.Container) (*domain.Container, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertSQL,
		c.ID, c.HouseID, c.ParentID, string(c.Type), c.Name, c.Quantity, c.OwnerUserID, c.Remark,
		c.CreatedBy,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "container", c.ID)
	}
	c.UpdatedBy = c.CreatedBy
	return &c, nil
}

// Update applies the fields named by patch and returns the updated row.
// Returns domain.ErrNotFound if the container is not in the house.
func (r *Repo) Update(ctx context.Context, houseID, id uuid.UUID, patch domain.ContainerPatch, actor uuid.UUID) (*domain.Container, error) {
	b := postgres.Builder.Update("containers").
		Set("updated_by", actor).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND house_id = ?", id, houseID)

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.ParentID.Set {
		b = b.Set("parent_id", patch.ParentID.Value)
	}
	if patch.Quantity != nil {
		b = b.Set("quantity", *patch.Quantity)
	}
	if patch.OwnerUserID.Set {
		b = b.Set("owner_user_id", patch.OwnerUserID.Value)
	}
	if patch.Remark.Set {
		b = b.Set("remark", patch.Remark.Value)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "container", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("container %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, houseID, id)
}

// MoveSubtreeToHouse re-homes id under newParentID in toHouseID and moves
// every descendant to toHouseID with it. Descendant parent links are kept.
// Must run inside a transaction: the same-house parent constraint is only
// checked at commit.
func (r *Repo) MoveSubtreeToHouse(ctx context.Context, id, fromHouseID, toHouseID uuid.UUID, newParentID *uuid.UUID, descendantIDs []uuid.UUID, actor uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, moveSubjectSQL, id, fromHouseID, toHouseID, newParentID, actor)
	if err != nil {
		return postgres.MapError(err, "container", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("container %s: %w", id, domain.ErrNotFound)
	}

	if len(descendantIDs) == 0 {
		return nil
	}

	tag, err = q.Exec(ctx, moveDescendantsSQL, descendantIDs, fromHouseID, toHouseID)
	if err != nil {
		return postgres.MapError(err, "container", id)
	}
	if got := tag.RowsAffected(); got != int64(len(descendantIDs)) {
		return fmt.Errorf("move subtree %s: moved %d of %d descendants: %w", id, got, len(descendantIDs), domain.ErrIntegrity)
	}
	return nil
}

// Delete removes the container; the parent foreign key cascades to descendants.
// Returns domain.ErrNotFound if the container is not in the house.
func (r *Repo) Delete(ctx context.Context, houseID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id, houseID)
	if err != nil {
		return postgres.MapError(err, "container", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("container %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanContainer(row pgx.Row) (domain.Container, error) {
	var (
		c   domain.Container
		typ string
	)
	err := row.Scan(
		&c.ID, &c.HouseID, &c.ParentID, &typ, &c.Name, &c.Quantity, &c.OwnerUserID, &c.Remark,
		&c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
		&c.ChildCount, &c.OwnerName, &c.CreatorName,
	)
	c.Type = domain.ContainerType(typ)
	return c, err
}

func collectContainers(rows pgx.Rows, op string) ([]domain.Container, error) {
	defer rows.Close()

	result := make([]domain.Container, 0)
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, domain.NewStorageError(op, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError(op, err)
	}
	return result, nil
}
