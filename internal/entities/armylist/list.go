package armylist

import "slices"

// EquipmentSelection is one chosen option on a unit.
// Key is the stable option key assigned during resolution; selections stored
// before keys existed carry only a name and are matched by name.
type EquipmentSelection struct {
	Key      string   `json:"key,omitempty"`
	Name     string   `json:"name"`
	Cost     int      `json:"cost"`
	Replaces []string `json:"replaces,omitempty"`
}

// Unit is a unit placed into a slot of a detachment
type Unit struct {
	ID                  string               `json:"id"`
	TemplateID          string               `json:"template_id"`
	Name                string               `json:"name"`
	Role                Role                 `json:"role"`
	SlotIndex           int                  `json:"slot_index"`
	IsPrimeSlot         bool                 `json:"is_prime_slot"`
	IsLogisticalBenefit bool                 `json:"is_logistical_benefit"`
	BaseCost            int                  `json:"base_cost"`
	EquipmentCost       int                  `json:"equipment_cost"`
	TotalCost           int                  `json:"total_cost"`
	Equipment           []EquipmentSelection `json:"equipment"`
	BaseWargear         []string             `json:"base_wargear,omitempty"`
	SpecialRules        []string             `json:"special_rules,omitempty"`
	PrimeBenefit        *PrimeBenefit        `json:"prime_benefit"`
}

// HasLogisticalBenefit reports whether the unit holds the logistical benefit
func (u *Unit) HasLogisticalBenefit() bool {
	return u.PrimeBenefit.IsLogistical()
}

// Clone returns a deep copy of the unit
func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	c := *u
	c.Equipment = make([]EquipmentSelection, len(u.Equipment))
	for i, sel := range u.Equipment {
		sel.Replaces = slices.Clone(sel.Replaces)
		c.Equipment[i] = sel
	}
	c.BaseWargear = slices.Clone(u.BaseWargear)
	c.SpecialRules = slices.Clone(u.SpecialRules)
	if u.PrimeBenefit != nil {
		b := *u.PrimeBenefit
		c.PrimeBenefit = &b
	}
	return &c
}

// Detachment is a detachment instance inside a list
type Detachment struct {
	ID          string         `json:"id"`
	TemplateID  string         `json:"template_id"`
	Name        string         `json:"name"`
	Type        DetachmentType `json:"type"`
	IsValid     bool           `json:"is_valid"`
	TotalPoints int            `json:"total_points"`
	TriggeredBy string         `json:"triggered_by,omitempty"`
	Units       []*Unit        `json:"units"`
	AddedRoles  []RoleSlotSpec `json:"added_roles"`
}

// FindUnit returns the unit with the given id and its position, or nil and -1
func (d *Detachment) FindUnit(unitID string) (*Unit, int) {
	for i, u := range d.Units {
		if u.ID == unitID {
			return u, i
		}
	}
	return nil, -1
}

// UnitAt returns the unit occupying the role and slot index, if any
func (d *Detachment) UnitAt(role Role, slotIndex int) *Unit {
	for _, u := range d.Units {
		if u.Role == role && u.SlotIndex == slotIndex {
			return u
		}
	}
	return nil
}

// CountRole counts units of the given role
func (d *Detachment) CountRole(role Role) int {
	n := 0
	for _, u := range d.Units {
		if u.Role == role {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the detachment
func (d *Detachment) Clone() *Detachment {
	if d == nil {
		return nil
	}
	c := *d
	c.Units = make([]*Unit, len(d.Units))
	for i, u := range d.Units {
		c.Units[i] = u.Clone()
	}
	c.AddedRoles = make([]RoleSlotSpec, len(d.AddedRoles))
	for i, spec := range d.AddedRoles {
		spec.PrimeSlots = slices.Clone(spec.PrimeSlots)
		c.AddedRoles[i] = spec
	}
	return &c
}

// List is a complete army list
type List struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"owner_id,omitempty"`
	Name        string        `json:"name"`
	Army        string        `json:"army"`
	Faction     string        `json:"faction"`
	Allegiance  string        `json:"allegiance"`
	PointsLimit int           `json:"points_limit,omitempty"` // zero means no limit
	TotalPoints int           `json:"total_points"`
	Detachments []*Detachment `json:"detachments"`
	CreatedAt   int64         `json:"created_at"`
	UpdatedAt   int64         `json:"updated_at"`
}

// Primary returns the primary detachment, or nil if the list has none
func (l *List) Primary() *Detachment {
	for _, d := range l.Detachments {
		if d.Type == DetachmentTypePrimary {
			return d
		}
	}
	return nil
}

// Detachment returns the detachment with the given id and its position, or nil and -1
func (l *List) Detachment(detachmentID string) (*Detachment, int) {
	for i, d := range l.Detachments {
		if d.ID == detachmentID {
			return d, i
		}
	}
	return nil, -1
}

// FindUnit locates a unit anywhere in the list
func (l *List) FindUnit(unitID string) (*Detachment, *Unit) {
	for _, d := range l.Detachments {
		if u, _ := d.FindUnit(unitID); u != nil {
			return d, u
		}
	}
	return nil, nil
}

// CountType counts detachments of the given type
func (l *List) CountType(t DetachmentType) int {
	n := 0
	for _, d := range l.Detachments {
		if d.Type == t {
			n++
		}
	}
	return n
}

// OverLimit reports whether the list exceeds its points limit
func (l *List) OverLimit() bool {
	return l.PointsLimit > 0 && l.TotalPoints > l.PointsLimit
}

// Clone returns a deep copy of the list
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	c := *l
	c.Detachments = make([]*Detachment, len(l.Detachments))
	for i, d := range l.Detachments {
		c.Detachments[i] = d.Clone()
	}
	return &c
}
