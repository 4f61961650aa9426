package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and name.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
		user.ID, user.Email, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedHouse creates a house and makes adminID its ADMIN member.
func SeedHouse(t *testing.T, pool *pgxpool.Pool, adminID uuid.UUID) domain.House {
	t.Helper()

	house := domain.House{
		ID:        uuid.New(),
		Name:      "House " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO houses (id, name, created_by, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
		house.ID, house.Name, adminID, house.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHouse: %v", err)
	}

	SeedMember(t, pool, house.ID, adminID, domain.MemberRoleAdmin)
	return house
}

// SeedMember adds userID to houseID with the given role.
func SeedMember(t *testing.T, pool *pgxpool.Pool, houseID, userID uuid.UUID, role domain.MemberRole) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO house_members (house_id, user_id, role) VALUES ($1, $2, $3)`,
		houseID, userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
}

// SeedContainer inserts a container directly, bypassing the service layer.
// Item rows get quantity 1.
func SeedContainer(t *testing.T, pool *pgxpool.Pool, houseID uuid.UUID, parentID *uuid.UUID, typ domain.ContainerType, name string) domain.Container {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Container{
		ID:        uuid.New(),
		HouseID:   houseID,
		ParentID:  parentID,
		Type:      typ,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if typ == domain.ContainerTypeItem {
		qty := 1
		c.Quantity = &qty
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO containers (id, house_id, parent_id, type, name, quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		c.ID, c.HouseID, c.ParentID, string(c.Type), c.Name, c.Quantity, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContainer: %v", err)
	}
	return c
}

// CountContainerLogs returns the number of log rows for containerID.
func CountContainerLogs(t *testing.T, pool *pgxpool.Pool, containerID uuid.UUID) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM container_logs WHERE container_id = $1`, containerID,
	).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountContainerLogs: %v", err)
	}
	return n
}
