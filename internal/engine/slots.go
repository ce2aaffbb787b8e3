package engine

import (
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// SlotView is one concrete slot of a detachment
type SlotView struct {
	Role                armylist.Role  `json:"role"`
	SlotNumber          int            `json:"slot_number"` // 1-based within its spec
	SlotIndex           int            `json:"slot_index"`
	IsPrime             bool           `json:"is_prime"`
	IsLogisticalBenefit bool           `json:"is_logistical_benefit"`
	TriggeredBy         string         `json:"triggered_by,omitempty"`
	Unit                *armylist.Unit `json:"unit,omitempty"`
}

// EffectiveSpecs returns the template's fixed specs followed by the detachment's added roles
func EffectiveSpecs(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment) []armylist.RoleSlotSpec {
	specs := make([]armylist.RoleSlotSpec, 0, len(tmpl.RoleSlots)+len(det.AddedRoles))
	specs = append(specs, tmpl.RoleSlots...)
	specs = append(specs, det.AddedRoles...)
	return specs
}

// slotOffset returns the first slot index of the i-th effective spec.
// Fixed specs start at zero. Added specs continue after the fixed slots of the
// same role and after any earlier added spec of that role.
func slotOffset(tmpl *armylist.DetachmentTemplate, specs []armylist.RoleSlotSpec, i int) int {
	spec := specs[i]
	if !spec.IsAdded() {
		return 0
	}

	offset := tmpl.FixedQuantity(spec.Role)
	for _, prev := range specs[len(tmpl.RoleSlots):i] {
		if prev.Role == spec.Role {
			offset += prev.Quantity
		}
	}
	return offset
}

// ComputeSlots derives the ordered slot views of a detachment
func ComputeSlots(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment) []SlotView {
	specs := EffectiveSpecs(tmpl, det)

	var views []SlotView
	for i, spec := range specs {
		offset := slotOffset(tmpl, specs, i)
		for n := 0; n < spec.Quantity; n++ {
			index := offset + n
			views = append(views, SlotView{
				Role:                spec.Role,
				SlotNumber:          n + 1,
				SlotIndex:           index,
				IsPrime:             spec.IsPrime(n + 1),
				IsLogisticalBenefit: spec.IsAdded(),
				TriggeredBy:         spec.TriggeredBy,
				Unit:                det.UnitAt(spec.Role, index),
			})
		}
	}
	return views
}

// FindSlot returns the slot for the role and slot index, if the detachment has one
func FindSlot(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment, role armylist.Role, slotIndex int) (SlotView, bool) {
	for _, view := range ComputeSlots(tmpl, det) {
		if view.Role == role && view.SlotIndex == slotIndex {
			return view, true
		}
	}
	return SlotView{}, false
}

// PlaceUnitInput identifies the target slot and the unit to create
type PlaceUnitInput struct {
	UnitID    string
	Role      armylist.Role
	SlotIndex int
	Template  *armylist.UnitTemplate
}

// PlaceUnit creates a unit from the template in an empty slot of det
func PlaceUnit(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment, input *PlaceUnitInput) (*armylist.Unit, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("unit template is required")
	}

	slot, ok := FindSlot(tmpl, det, input.Role, input.SlotIndex)
	if !ok {
		return nil, errors.InvalidArgumentf("detachment %s has no %s slot %d", det.ID, input.Role, input.SlotIndex).
			WithMeta("detachment_id", det.ID)
	}
	if input.Template.Role != slot.Role {
		return nil, errors.InvalidArgumentf("unit %s is %s and cannot fill a %s slot",
			input.Template.Name, input.Template.Role, slot.Role)
	}
	if slot.Unit != nil {
		return nil, errors.SlotOccupiedf("%s slot %d is held by %s", slot.Role, slot.SlotIndex, slot.Unit.Name).
			WithMeta("detachment_id", det.ID).
			WithMeta("unit_id", slot.Unit.ID)
	}

	unit := &armylist.Unit{
		ID:                  input.UnitID,
		TemplateID:          input.Template.ID,
		Name:                input.Template.Name,
		Role:                slot.Role,
		SlotIndex:           slot.SlotIndex,
		IsPrimeSlot:         slot.IsPrime,
		IsLogisticalBenefit: slot.IsLogisticalBenefit,
		BaseCost:            input.Template.BaseCost,
		TotalCost:           input.Template.BaseCost,
		Equipment:           []armylist.EquipmentSelection{},
		BaseWargear:         slices.Clone(input.Template.BaseWargear),
		SpecialRules:        slices.Clone(input.Template.SpecialRules),
	}
	det.Units = append(det.Units, unit)

	return unit, nil
}

// RemovedRole is a logistical role taken out together with the unit that unlocked it
type RemovedRole struct {
	Spec      armylist.RoleSlotSpec `json:"spec"`
	SlotIndex int                   `json:"slot_index"`
	Units     []*armylist.Unit      `json:"units,omitempty"`
}

// UnitRemoval is the undo snapshot of RemoveUnit
type UnitRemoval struct {
	Unit *armylist.Unit `json:"unit"`
	Role *RemovedRole   `json:"role,omitempty"`
}

// RemoveUnit deletes the unit from det. A logistical role the unit unlocked is
// removed with it, along with the units in that role. Slot indices of the
// remaining units keep their slots.
func RemoveUnit(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment, unitID string) (*UnitRemoval, error) {
	unit, _ := det.FindUnit(unitID)
	if unit == nil {
		return nil, errors.NotFoundf("unit %s not found in detachment %s", unitID, det.ID)
	}

	removal := &UnitRemoval{Unit: unit}
	specs := EffectiveSpecs(tmpl, det)
	if i := addedSpecIndex(specs, unitID); i >= 0 {
		role := &RemovedRole{Spec: cloneSpec(specs[i]), SlotIndex: slotOffset(tmpl, specs, i)}
		units, err := RemoveLogisticalRole(tmpl, det, unitID)
		if err != nil {
			return nil, err
		}
		role.Units = units
		removal.Role = role
	}

	_, i := det.FindUnit(unitID)
	det.Units = slices.Delete(det.Units, i, i+1)
	return removal, nil
}

// RestoreUnit re-inserts a removed unit into its original slot. A role removed
// with it is added back at the end of the added roles and its units follow it.
func RestoreUnit(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment, removal *UnitRemoval) error {
	if removal == nil || removal.Unit == nil {
		return errors.InvalidArgument("unit snapshot is required")
	}
	unit := removal.Unit
	if existing, _ := det.FindUnit(unit.ID); existing != nil {
		return errors.AlreadyExistsf("unit %s is already in detachment %s", unit.ID, det.ID)
	}
	if unit.HasLogisticalBenefit() {
		if holder := slices.IndexFunc(det.Units, (*armylist.Unit).HasLogisticalBenefit); holder >= 0 {
			return errors.FailedPreconditionf("%s already holds the logistical benefit in this detachment",
				det.Units[holder].Name).
				WithMeta("unit_id", det.Units[holder].ID)
		}
	}
	if err := placeSnapshot(tmpl, det, unit); err != nil {
		return err
	}

	role := removal.Role
	if role == nil {
		return nil
	}
	if role.Spec.TriggeredBy != unit.ID {
		return errors.InvalidArgumentf("role snapshot was not unlocked by unit %s", unit.ID)
	}
	det.AddedRoles = append(det.AddedRoles, cloneSpec(role.Spec))
	specs := EffectiveSpecs(tmpl, det)
	offset := slotOffset(tmpl, specs, len(specs)-1)
	for _, u := range role.Units {
		moved := u.Clone()
		moved.SlotIndex = offset + u.SlotIndex - role.SlotIndex
		if existing, _ := det.FindUnit(moved.ID); existing != nil {
			return errors.AlreadyExistsf("unit %s is already in detachment %s", moved.ID, det.ID)
		}
		if err := placeSnapshot(tmpl, det, moved); err != nil {
			return err
		}
	}
	return nil
}

func placeSnapshot(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment, unit *armylist.Unit) error {
	slot, ok := FindSlot(tmpl, det, unit.Role, unit.SlotIndex)
	if !ok {
		return errors.FailedPreconditionf("detachment %s no longer has %s slot %d", det.ID, unit.Role, unit.SlotIndex)
	}
	if slot.Unit != nil {
		return errors.SlotOccupiedf("%s slot %d is held by %s", slot.Role, slot.SlotIndex, slot.Unit.Name).
			WithMeta("detachment_id", det.ID).
			WithMeta("unit_id", slot.Unit.ID)
	}

	det.Units = append(det.Units, unit.Clone())
	return nil
}

// AddLogisticalRole appends a one-slot role unlocked by the unit's logistical benefit
func AddLogisticalRole(det *armylist.Detachment, unitID string, role armylist.Role, allowed []armylist.Role) error {
	unit, _ := det.FindUnit(unitID)
	if unit == nil {
		return errors.NotFoundf("unit %s not found in detachment %s", unitID, det.ID)
	}
	if !unit.HasLogisticalBenefit() {
		return errors.FailedPreconditionf("unit %s does not hold the logistical benefit", unit.Name)
	}
	if addedSpecIndex(det.AddedRoles, unitID) >= 0 {
		return errors.FailedPreconditionf("unit %s has already unlocked a logistical role", unit.Name)
	}
	if !slices.Contains(allowed, role) {
		return errors.InvalidArgumentf("role %s cannot be added as a logistical role", role)
	}

	det.AddedRoles = append(det.AddedRoles, armylist.RoleSlotSpec{
		Role:        role,
		Quantity:    1,
		PrimeSlots:  []int{},
		TriggeredBy: unitID,
	})
	return nil
}

// RemoveLogisticalRole removes the role triggered by the unit together with the
// units occupying its slots. The removed units are returned.
func RemoveLogisticalRole(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment, triggeredBy string) ([]*armylist.Unit, error) {
	specs := EffectiveSpecs(tmpl, det)
	i := addedSpecIndex(specs, triggeredBy)
	if i < 0 {
		return nil, errors.NotFoundf("no logistical role triggered by %s in detachment %s", triggeredBy, det.ID)
	}

	var removed []*armylist.Unit
	reindexAddedRoles(tmpl, det, func() {
		removed = dropUnits(det, func(u *armylist.Unit) bool {
			return inSpec(u, specs[i], slotOffset(tmpl, specs, i))
		})
		det.AddedRoles = slices.Delete(det.AddedRoles, i-len(tmpl.RoleSlots), i-len(tmpl.RoleSlots)+1)
	})
	return removed, nil
}

// ChangeLogisticalRole switches an added role to a new role. Every unit of the
// old role in the detachment is dropped, fixed slots included.
func ChangeLogisticalRole(
	tmpl *armylist.DetachmentTemplate,
	det *armylist.Detachment,
	triggeredBy string,
	role armylist.Role,
	allowed []armylist.Role,
) ([]*armylist.Unit, error) {
	if !slices.Contains(allowed, role) {
		return nil, errors.InvalidArgumentf("role %s cannot be added as a logistical role", role)
	}

	specs := EffectiveSpecs(tmpl, det)
	i := addedSpecIndex(specs, triggeredBy)
	if i < 0 {
		return nil, errors.NotFoundf("no logistical role triggered by %s in detachment %s", triggeredBy, det.ID)
	}
	oldRole := specs[i].Role
	if oldRole == role {
		return nil, nil
	}

	var removed []*armylist.Unit
	reindexAddedRoles(tmpl, det, func() {
		removed = dropUnits(det, func(u *armylist.Unit) bool { return u.Role == oldRole })
		det.AddedRoles[i-len(tmpl.RoleSlots)].Role = role
	})
	return removed, nil
}

type slotRange struct {
	role   armylist.Role
	offset int
	size   int
}

func addedRanges(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment) map[string]slotRange {
	specs := EffectiveSpecs(tmpl, det)
	ranges := make(map[string]slotRange, len(det.AddedRoles))
	for i := len(tmpl.RoleSlots); i < len(specs); i++ {
		ranges[specs[i].TriggeredBy] = slotRange{
			role:   specs[i].Role,
			offset: slotOffset(tmpl, specs, i),
			size:   specs[i].Quantity,
		}
	}
	return ranges
}

// reindexAddedRoles runs change and then moves the units of every surviving
// added role to wherever that role's slots now start.
func reindexAddedRoles(tmpl *armylist.DetachmentTemplate, det *armylist.Detachment, change func()) {
	before := addedRanges(tmpl, det)
	change()
	after := addedRanges(tmpl, det)

	moves := map[*armylist.Unit]int{}
	for trigger, now := range after {
		was, ok := before[trigger]
		if !ok || was.role != now.role || was.offset == now.offset {
			continue
		}
		for _, u := range det.Units {
			if u.Role == was.role && u.SlotIndex >= was.offset && u.SlotIndex < was.offset+was.size {
				moves[u] = now.offset + u.SlotIndex - was.offset
			}
		}
	}
	for u, index := range moves {
		u.SlotIndex = index
	}
}

func addedSpecIndex(specs []armylist.RoleSlotSpec, triggeredBy string) int {
	if triggeredBy == "" {
		return -1
	}
	return slices.IndexFunc(specs, func(spec armylist.RoleSlotSpec) bool { return spec.TriggeredBy == triggeredBy })
}

func inSpec(u *armylist.Unit, spec armylist.RoleSlotSpec, offset int) bool {
	return u.Role == spec.Role && u.SlotIndex >= offset && u.SlotIndex < offset+spec.Quantity
}

func dropUnits(det *armylist.Detachment, drop func(*armylist.Unit) bool) []*armylist.Unit {
	var removed []*armylist.Unit
	det.Units = slices.DeleteFunc(det.Units, func(u *armylist.Unit) bool {
		if drop(u) {
			removed = append(removed, u)
			return true
		}
		return false
	})
	return removed
}

func cloneSpec(spec armylist.RoleSlotSpec) armylist.RoleSlotSpec {
	spec.PrimeSlots = slices.Clone(spec.PrimeSlots)
	return spec
}
