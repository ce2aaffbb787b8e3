package armylist

import "slices"

// EquipmentOption is one choice inside an option group.
// Standard options carry a name and cost; weapon list references carry a ListID
// and are expanded at read time. Key and IsWeaponListGroup are assigned during
// resolution and never persisted on templates.
type EquipmentOption struct {
	Type              OptionType `json:"type,omitempty"`
	Name              string     `json:"name,omitempty"`
	Cost              int        `json:"cost"`
	Replaces          []string   `json:"replaces,omitempty"`
	ListID            string     `json:"list_id,omitempty"`
	Key               string     `json:"key,omitempty"`
	IsWeaponListGroup bool       `json:"is_weapon_list_group,omitempty"`
}

// IsReference reports whether the option still points at an unresolved weapon list
func (o *EquipmentOption) IsReference() bool {
	return o.Type == OptionTypeWeaponListReference
}

// EquipmentOptionGroup is a labelled set of related options
type EquipmentOptionGroup struct {
	Label             string            `json:"label"`
	Mode              SelectionMode     `json:"type"`
	MutuallyExclusive bool              `json:"mutually_exclusive,omitempty"`
	Options           []EquipmentOption `json:"options"`
}

// IsExclusive reports whether at most one member of the group may be selected.
// A checkbox group flagged mutually exclusive behaves exactly like a radio group.
func (g *EquipmentOptionGroup) IsExclusive() bool {
	return g.Mode == SelectionModeRadio || g.MutuallyExclusive
}

// WeaponListItem is one weapon of a shared weapon list
type WeaponListItem struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// WeaponList is a reusable catalog of weapons referenced from option groups
type WeaponList struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Items []WeaponListItem `json:"items"`
}

// UnitTemplate is the catalog definition of a unit
type UnitTemplate struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Role             Role                   `json:"role"`
	BaseCost         int                    `json:"base_cost"`
	Army             string                 `json:"army"`
	Factions         []string               `json:"factions"`
	Allegiances      []string               `json:"allegiances"`
	BaseWargear      []string               `json:"base_wargear,omitempty"`
	SpecialRules     []string               `json:"special_rules,omitempty"`
	EquipmentOptions []EquipmentOptionGroup `json:"equipment_options,omitempty"`
}

// Matches reports whether the template may be fielded in a list with the given settings
func (t *UnitTemplate) Matches(army, faction, allegiance string) bool {
	if t.Army != army {
		return false
	}
	return matchesAny(t.Factions, faction) && matchesAny(t.Allegiances, allegiance)
}

// RoleSlotSpec describes a run of numbered slots for one role.
// TriggeredBy is only set on roles added at runtime by a logistical benefit.
type RoleSlotSpec struct {
	Role        Role   `json:"role"`
	Quantity    int    `json:"quantity"`
	PrimeSlots  []int  `json:"prime_slots"`
	TriggeredBy string `json:"triggered_by,omitempty"`
}

// IsPrime reports whether the 1-based slot number is a prime slot
func (s *RoleSlotSpec) IsPrime(slotNumber int) bool {
	return slices.Contains(s.PrimeSlots, slotNumber)
}

// IsAdded reports whether the spec was added by a logistical benefit
func (s *RoleSlotSpec) IsAdded() bool {
	return s.TriggeredBy != ""
}

// DetachmentTemplate is the catalog definition of a detachment
type DetachmentTemplate struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      DetachmentType `json:"type"`
	Armies    []string       `json:"armies"`
	Factions  []string       `json:"factions"`
	RoleSlots []RoleSlotSpec `json:"role_slots"`
}

// Matches reports whether the template is available to a list with the given army and faction
func (t *DetachmentTemplate) Matches(army, faction string) bool {
	return matchesAny(t.Armies, army) && matchesAny(t.Factions, faction)
}

// FixedQuantity returns the quantity of the first fixed spec for the role, or zero
func (t *DetachmentTemplate) FixedQuantity(role Role) int {
	for _, spec := range t.RoleSlots {
		if spec.Role == role {
			return spec.Quantity
		}
	}
	return 0
}

// PrimeBenefit is an optional bonus for a unit in a prime slot
type PrimeBenefit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// IsLogistical reports whether the benefit unlocks an extra role
func (b *PrimeBenefit) IsLogistical() bool {
	return b != nil && b.ID == LogisticalBenefitID
}

func matchesAny(values []string, value string) bool {
	return slices.Contains(values, Wildcard) || slices.Contains(values, value)
}
