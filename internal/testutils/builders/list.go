// Package builders provides test data builders for creating test fixtures
package builders

import (
	"slices"
	"time"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
)

// Default ids used by the builders
const (
	TestListID    = "list-test-123"
	TestOwnerID   = "player-test-123"
	TestPrimaryID = "det-primary"
)

// ListBuilder provides a fluent interface for building test lists
type ListBuilder struct {
	list *armylist.List
}

// NewListBuilder creates a list with an empty Primary detachment
func NewListBuilder() *ListBuilder {
	now := time.Now().Unix()
	return &ListBuilder{
		list: &armylist.List{
			ID:         TestListID,
			OwnerID:    TestOwnerID,
			Name:       "Test Crusade",
			Army:       "Legiones Astartes",
			Faction:    "Dark Angels",
			Allegiance: "Loyalist",
			Detachments: []*armylist.Detachment{{
				ID:         TestPrimaryID,
				TemplateID: armylist.PrimaryDetachmentTemplateID,
				Name:       "Crusade Primary Detachment",
				Type:       armylist.DetachmentTypePrimary,
				IsValid:    true,
				Units:      []*armylist.Unit{},
				AddedRoles: []armylist.RoleSlotSpec{},
			}},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the list ID
func (b *ListBuilder) WithID(id string) *ListBuilder {
	b.list.ID = id
	return b
}

// WithOwnerID sets the owner ID
func (b *ListBuilder) WithOwnerID(ownerID string) *ListBuilder {
	b.list.OwnerID = ownerID
	return b
}

// WithName sets the list name
func (b *ListBuilder) WithName(name string) *ListBuilder {
	b.list.Name = name
	return b
}

// WithSettings sets army, faction and allegiance
func (b *ListBuilder) WithSettings(army, faction, allegiance string) *ListBuilder {
	b.list.Army = army
	b.list.Faction = faction
	b.list.Allegiance = allegiance
	return b
}

// WithPointsLimit sets the points limit
func (b *ListBuilder) WithPointsLimit(limit int) *ListBuilder {
	b.list.PointsLimit = limit
	return b
}

// WithUpdatedAt sets the update timestamp
func (b *ListBuilder) WithUpdatedAt(ts int64) *ListBuilder {
	b.list.UpdatedAt = ts
	return b
}

// WithDetachment appends a secondary detachment
func (b *ListBuilder) WithDetachment(id, templateID, name string, t armylist.DetachmentType, triggeredBy string) *ListBuilder {
	b.list.Detachments = append(b.list.Detachments, &armylist.Detachment{
		ID:          id,
		TemplateID:  templateID,
		Name:        name,
		Type:        t,
		IsValid:     true,
		TriggeredBy: triggeredBy,
		Units:       []*armylist.Unit{},
		AddedRoles:  []armylist.RoleSlotSpec{},
	})
	return b
}

// WithUnit adds a unit to the detachment with the given id
func (b *ListBuilder) WithUnit(detachmentID string, unit *armylist.Unit) *ListBuilder {
	if det, _ := b.list.Detachment(detachmentID); det != nil {
		det.Units = append(det.Units, unit)
	}
	return b
}

// WithAddedRole adds a logistical role to the detachment with the given id
func (b *ListBuilder) WithAddedRole(detachmentID string, role armylist.Role, triggeredBy string) *ListBuilder {
	if det, _ := b.list.Detachment(detachmentID); det != nil {
		det.AddedRoles = append(det.AddedRoles, armylist.RoleSlotSpec{
			Role:        role,
			Quantity:    1,
			PrimeSlots:  []int{},
			TriggeredBy: triggeredBy,
		})
	}
	return b
}

// Build returns a copy of the built list
func (b *ListBuilder) Build() *armylist.List {
	return b.list.Clone()
}

// UnitBuilder provides a fluent interface for building test units
type UnitBuilder struct {
	unit *armylist.Unit
}

// NewUnitBuilder starts a unit from a template placed at slotIndex
func NewUnitBuilder(id string, tmpl *armylist.UnitTemplate, slotIndex int) *UnitBuilder {
	return &UnitBuilder{
		unit: &armylist.Unit{
			ID:           id,
			TemplateID:   tmpl.ID,
			Name:         tmpl.Name,
			Role:         tmpl.Role,
			SlotIndex:    slotIndex,
			BaseCost:     tmpl.BaseCost,
			TotalCost:    tmpl.BaseCost,
			Equipment:    []armylist.EquipmentSelection{},
			BaseWargear:  slices.Clone(tmpl.BaseWargear),
			SpecialRules: slices.Clone(tmpl.SpecialRules),
		},
	}
}

// InPrimeSlot marks the unit as occupying a prime slot
func (b *UnitBuilder) InPrimeSlot() *UnitBuilder {
	b.unit.IsPrimeSlot = true
	return b
}

// InLogisticalSlot marks the unit as occupying a slot added by a logistical benefit
func (b *UnitBuilder) InLogisticalSlot() *UnitBuilder {
	b.unit.IsLogisticalBenefit = true
	return b
}

// WithEquipment adds a selection
func (b *UnitBuilder) WithEquipment(key, name string, cost int) *UnitBuilder {
	b.unit.Equipment = append(b.unit.Equipment, armylist.EquipmentSelection{Key: key, Name: name, Cost: cost})
	return b
}

// WithBenefit sets the prime benefit
func (b *UnitBuilder) WithBenefit(benefit *armylist.PrimeBenefit) *UnitBuilder {
	b.unit.PrimeBenefit = benefit
	return b
}

// Build returns the unit
func (b *UnitBuilder) Build() *armylist.Unit {
	return b.unit.Clone()
}
