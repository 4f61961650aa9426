package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContainerLogEntry is an immutable audit record of one container mutation.
// It outlives the container it describes.
type ContainerLogEntry struct {
	ID            uuid.UUID
	ContainerID   uuid.UUID
	ContainerName string
	ContainerType ContainerType
	Action        LogAction

	FromContainerID *uuid.UUID
	ToContainerID   *uuid.UUID
	FromHouseID     *uuid.UUID
	ToHouseID       *uuid.UUID
	FromOwnerUserID *uuid.UUID
	ToOwnerUserID   *uuid.UUID
	FromQuantity    *int
	ToQuantity      *int
	FromRemark      *string
	ToRemark        *string

	Changes   map[string]any
	Note      string
	CreatedBy uuid.UUID
	CreatedAt time.Time

	// Display names resolved on read. Nil when the referenced row is gone.
	Names LogEntryNames
}

// LogEntryNames carries left-joined display names for a log entry.
type LogEntryNames struct {
	Container     *string
	FromContainer *string
	ToContainer   *string
	FromHouse     *string
	ToHouse       *string
	FromOwner     *string
	ToOwner       *string
	Creator       *string
}

// House is a tenant: a shared storage context with members.
type House struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// HouseMember links a user to a house with a role.
type HouseMember struct {
	HouseID uuid.UUID
	UserID  uuid.UUID
	Role    MemberRole
}

// User is the minimal user record the core references.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
