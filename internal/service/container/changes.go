package container

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/house-inventory-backend/internal/domain"
)

// changeSet collects the field-level difference of one mutation and renders
// it as the single log entry that mutation emits. Every mutation builds its
// entry through here so from/to pairs, the changes map and the note agree.
type changeSet struct {
	entry      domain.ContainerLogEntry
	notes      []string
	moved      bool
	attributes bool
}

func newChangeSet(c *domain.Container, action domain.LogAction, actor uuid.UUID) *changeSet {
	return &changeSet{
		entry: domain.ContainerLogEntry{
			ContainerID:   c.ID,
			ContainerName: c.Name,
			ContainerType: c.Type,
			Action:        action,
			Changes:       map[string]any{},
			CreatedBy:     actor,
		},
	}
}

// record stores one field transition. A nil side is omitted, so creations
// carry only "new" and deletions only "old".
func (cs *changeSet) record(field string, old, new any) {
	diff := map[string]any{}
	if old != nil {
		diff["old"] = old
	}
	if new != nil {
		diff["new"] = new
	}
	cs.entry.Changes[field] = diff
}

func (cs *changeSet) name(old, new string) {
	cs.record("name", nilIfEmpty(old), nilIfEmpty(new))
	cs.attributes = true
	if old != "" && new != "" {
		cs.notes = append(cs.notes, fmt.Sprintf("name %q → %q", old, new))
	}
}

func (cs *changeSet) position(from, to *uuid.UUID) {
	cs.entry.FromContainerID = from
	cs.entry.ToContainerID = to
	cs.record("parent_id", uuidValue(from), uuidValue(to))
	cs.moved = true
}

func (cs *changeSet) house(from, to *uuid.UUID) {
	cs.entry.FromHouseID = from
	cs.entry.ToHouseID = to
}

func (cs *changeSet) quantity(from, to *int) {
	cs.entry.FromQuantity = from
	cs.entry.ToQuantity = to
	cs.record("quantity", intValue(from), intValue(to))
	cs.attributes = true
	if from != nil && to != nil {
		cs.notes = append(cs.notes, fmt.Sprintf("quantity %d → %d", *from, *to))
	}
}

func (cs *changeSet) owner(from, to *uuid.UUID) {
	cs.entry.FromOwnerUserID = from
	cs.entry.ToOwnerUserID = to
	cs.record("owner_user_id", uuidValue(from), uuidValue(to))
	cs.attributes = true
	switch {
	case from == nil && to != nil:
		cs.notes = append(cs.notes, "owner set")
	case from != nil && to == nil:
		cs.notes = append(cs.notes, "owner cleared")
	default:
		cs.notes = append(cs.notes, "owner changed")
	}
}

func (cs *changeSet) remark(from, to *string) {
	cs.entry.FromRemark = from
	cs.entry.ToRemark = to
	cs.record("remark", stringValue(from), stringValue(to))
	cs.attributes = true
	cs.notes = append(cs.notes, "remark changed")
}

func (cs *changeSet) note(s string) {
	cs.notes = append(cs.notes, s)
}

func (cs *changeSet) empty() bool {
	return !cs.moved && !cs.attributes
}

func (cs *changeSet) build() domain.ContainerLogEntry {
	e := cs.entry
	e.Note = strings.Join(cs.notes, "; ")
	return e
}

// ---------------------------------------------------------------------------
// Descriptors per mutation
// ---------------------------------------------------------------------------

func describeCreate(c *domain.Container, actor uuid.UUID) domain.ContainerLogEntry {
	cs := newChangeSet(c, domain.LogActionCreated, actor)
	cs.house(nil, &c.HouseID)
	cs.entry.ToContainerID = c.ParentID
	cs.record("type", nil, string(c.Type))
	cs.record("name", nil, c.Name)
	if c.ParentID != nil {
		cs.record("parent_id", nil, c.ParentID.String())
	}
	if c.Type == domain.ContainerTypeItem {
		cs.entry.ToQuantity = c.Quantity
		cs.entry.ToOwnerUserID = c.OwnerUserID
		cs.entry.ToRemark = c.Remark
		cs.record("quantity", nil, intValue(c.Quantity))
		if c.OwnerUserID != nil {
			cs.record("owner_user_id", nil, c.OwnerUserID.String())
		}
		if c.Remark != nil {
			cs.record("remark", nil, *c.Remark)
		}
	}
	cs.note(fmt.Sprintf("created %s %q", strings.ToLower(string(c.Type)), c.Name))
	return cs.build()
}

// describeUpdate diffs patch against the stored row. It returns the entry and
// a patch reduced to the fields that actually change; ok is false when
// nothing changes.
func describeUpdate(before *domain.Container, patch domain.ContainerPatch, actor uuid.UUID) (entry domain.ContainerLogEntry, effective domain.ContainerPatch, ok bool) {
	cs := newChangeSet(before, domain.LogActionUpdated, actor)
	cs.house(&before.HouseID, &before.HouseID)

	if patch.Name != nil && *patch.Name != before.Name {
		cs.name(before.Name, *patch.Name)
		effective.Name = patch.Name
		cs.entry.ContainerName = *patch.Name
	}
	if patch.Quantity != nil && !equalInt(before.Quantity, patch.Quantity) {
		cs.quantity(before.Quantity, patch.Quantity)
		effective.Quantity = patch.Quantity
	}
	if patch.OwnerUserID.Set && !equalUUID(before.OwnerUserID, patch.OwnerUserID.Value) {
		cs.owner(before.OwnerUserID, patch.OwnerUserID.Value)
		effective.OwnerUserID = patch.OwnerUserID
	}
	if patch.Remark.Set && !equalString(before.Remark, patch.Remark.Value) {
		cs.remark(before.Remark, patch.Remark.Value)
		effective.Remark = patch.Remark
	}
	if patch.ParentID.Set && !equalUUID(before.ParentID, patch.ParentID.Value) {
		cs.position(before.ParentID, patch.ParentID.Value)
		effective.ParentID = patch.ParentID
		if cs.attributes {
			cs.note("parent changed")
		}
	}

	if cs.empty() {
		return domain.ContainerLogEntry{}, domain.ContainerPatch{}, false
	}
	if !cs.attributes {
		cs.entry.Action = domain.LogActionMoved
		cs.note("parent changed")
	}
	return cs.build(), effective, true
}

func describeTransfer(before *domain.Container, toHouseID uuid.UUID, newParentID *uuid.UUID, carried int, actor uuid.UUID) domain.ContainerLogEntry {
	cs := newChangeSet(before, domain.LogActionMoved, actor)
	cs.house(&before.HouseID, &toHouseID)
	cs.record("house_id", before.HouseID.String(), toHouseID.String())
	cs.position(before.ParentID, newParentID)
	cs.note(fmt.Sprintf("moved to another house with %s", countNoun(carried, "descendant")))
	return cs.build()
}

func describeDelete(before *domain.Container, descendants int, actor uuid.UUID) domain.ContainerLogEntry {
	cs := newChangeSet(before, domain.LogActionDeleted, actor)
	cs.house(&before.HouseID, nil)
	cs.entry.FromContainerID = before.ParentID
	cs.record("name", before.Name, nil)
	if before.Type == domain.ContainerTypeItem {
		cs.entry.FromQuantity = before.Quantity
		cs.entry.FromOwnerUserID = before.OwnerUserID
		cs.entry.FromRemark = before.Remark
	}
	if descendants > 0 {
		cs.note(fmt.Sprintf("deleted with %s", countNoun(descendants, "descendant")))
	} else {
		cs.note("deleted")
	}
	return cs.build()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func equalUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func uuidValue(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func intValue(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func stringValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
