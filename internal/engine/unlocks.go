package engine

import (
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// Unlocks counts the secondary detachments that may still be added
type Unlocks struct {
	Apex      int `json:"apex"`
	Auxiliary int `json:"auxiliary"`
}

// Available returns the number of unlocks for the detachment type
func (u Unlocks) Available(t armylist.DetachmentType) int {
	switch t {
	case armylist.DetachmentTypeApex:
		return u.Apex
	case armylist.DetachmentTypeAuxiliary:
		return u.Auxiliary
	default:
		return 0
	}
}

// TriggerRole returns the Primary detachment role that unlocks the detachment type
func TriggerRole(t armylist.DetachmentType) (armylist.Role, bool) {
	switch t {
	case armylist.DetachmentTypeApex:
		return armylist.RoleHighCommand, true
	case armylist.DetachmentTypeAuxiliary:
		return armylist.RoleCommand, true
	default:
		return "", false
	}
}

// AvailableUnlocks counts trigger units in the Primary detachment net of the
// detachments already added
func AvailableUnlocks(list *armylist.List) Unlocks {
	primary := list.Primary()
	if primary == nil {
		return Unlocks{}
	}

	return Unlocks{
		Apex:      max(0, primary.CountRole(armylist.RoleHighCommand)-list.CountType(armylist.DetachmentTypeApex)),
		Auxiliary: max(0, primary.CountRole(armylist.RoleCommand)-list.CountType(armylist.DetachmentTypeAuxiliary)),
	}
}

// AddDetachment appends a secondary detachment built from tmpl. The first unit
// of the trigger role in the Primary detachment, in list order, is recorded as
// its trigger.
func AddDetachment(list *armylist.List, tmpl *armylist.DetachmentTemplate, detachmentID string) (*armylist.Detachment, error) {
	role, ok := TriggerRole(tmpl.Type)
	if !ok {
		return nil, errors.FailedPreconditionf("%s detachments cannot be added to a list", tmpl.Type)
	}
	if AvailableUnlocks(list).Available(tmpl.Type) == 0 {
		return nil, errors.FailedPreconditionf("no %s detachment unlock available, add a %s unit to the Primary detachment",
			tmpl.Type, role).
			WithMeta("template_id", tmpl.ID)
	}

	primary := list.Primary()
	trigger := primary.Units[slices.IndexFunc(primary.Units, func(u *armylist.Unit) bool { return u.Role == role })]

	det := &armylist.Detachment{
		ID:          detachmentID,
		TemplateID:  tmpl.ID,
		Name:        tmpl.Name,
		Type:        tmpl.Type,
		IsValid:     true,
		TriggeredBy: trigger.ID,
		Units:       []*armylist.Unit{},
		AddedRoles:  []armylist.RoleSlotSpec{},
	}
	list.Detachments = append(list.Detachments, det)

	return det, nil
}

// RemoveDetachment deletes a secondary detachment and returns it as an undo snapshot
func RemoveDetachment(list *armylist.List, detachmentID string) (*armylist.Detachment, error) {
	det, i := list.Detachment(detachmentID)
	if det == nil {
		return nil, errors.NotFoundf("detachment %s not found", detachmentID)
	}
	if det.Type == armylist.DetachmentTypePrimary {
		return nil, errors.FailedPrecondition("the Primary detachment cannot be removed")
	}

	list.Detachments = slices.Delete(list.Detachments, i, i+1)
	return det, nil
}

// RestoreDetachment puts a detachment snapshot back into the list. A detachment
// with the same id is replaced in place, otherwise the snapshot is appended.
func RestoreDetachment(list *armylist.List, snapshot *armylist.Detachment) error {
	if snapshot == nil {
		return errors.InvalidArgument("detachment snapshot is required")
	}
	if _, i := list.Detachment(snapshot.ID); i >= 0 {
		list.Detachments[i] = snapshot.Clone()
		return nil
	}
	if snapshot.Type == armylist.DetachmentTypePrimary && list.Primary() != nil {
		return errors.FailedPrecondition("the list already has a Primary detachment")
	}

	list.Detachments = append(list.Detachments, snapshot.Clone())
	return nil
}
