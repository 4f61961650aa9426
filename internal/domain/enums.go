package domain

// ContainerType is the closed set of container kinds.
type ContainerType string

const (
	ContainerTypeArea ContainerType = "AREA"
	ContainerTypeBox  ContainerType = "BOX"
	ContainerTypeItem ContainerType = "ITEM"
)

func (t ContainerType) String() string { return string(t) }

func (t ContainerType) IsValid() bool {
	switch t {
	case ContainerTypeArea, ContainerTypeBox, ContainerTypeItem:
		return true
	}
	return false
}

// CanHaveChildren reports whether containers of this type may be parents.
func (t ContainerType) CanHaveChildren() bool {
	return t != ContainerTypeItem
}

// SortRank orders types the way listings present them: areas, boxes, items.
func (t ContainerType) SortRank() int {
	switch t {
	case ContainerTypeArea:
		return 0
	case ContainerTypeBox:
		return 1
	default:
		return 2
	}
}

// ParseContainerType accepts the lower-case query forms ("area", "box", "item")
// as well as the canonical upper-case values.
func ParseContainerType(s string) (ContainerType, bool) {
	switch s {
	case "area", "AREA":
		return ContainerTypeArea, true
	case "box", "BOX":
		return ContainerTypeBox, true
	case "item", "ITEM":
		return ContainerTypeItem, true
	}
	return "", false
}

// LogAction identifies what a container log entry records.
type LogAction string

const (
	LogActionCreated LogAction = "CREATED"
	LogActionDeleted LogAction = "DELETED"
	LogActionMoved   LogAction = "MOVED"
	LogActionUpdated LogAction = "UPDATED"
)

func (a LogAction) String() string { return string(a) }

func (a LogAction) IsValid() bool {
	switch a {
	case LogActionCreated, LogActionDeleted, LogActionMoved, LogActionUpdated:
		return true
	}
	return false
}

// MemberRole is a user's role inside a house.
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

func (r MemberRole) String() string { return string(r) }

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleAdmin, MemberRoleMember:
		return true
	}
	return false
}
