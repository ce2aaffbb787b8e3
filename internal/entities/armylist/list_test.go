package armylist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
)

func TestListCloneIsDeep(t *testing.T) {
	list := &armylist.List{
		ID: "list-1",
		Detachments: []*armylist.Detachment{{
			ID:   "det-1",
			Type: armylist.DetachmentTypePrimary,
			Units: []*armylist.Unit{{
				ID:           "unit-1",
				Role:         armylist.RoleHighCommand,
				Equipment:    []armylist.EquipmentSelection{{Name: "Artificer armour", Cost: 10}},
				PrimeBenefit: &armylist.PrimeBenefit{ID: armylist.LogisticalBenefitID},
			}},
			AddedRoles: []armylist.RoleSlotSpec{{Role: armylist.RoleElites, Quantity: 1, PrimeSlots: []int{1}}},
		}},
	}

	clone := list.Clone()
	clone.Detachments[0].Units[0].Equipment[0].Cost = 99
	clone.Detachments[0].Units[0].PrimeBenefit.ID = "other"
	clone.Detachments[0].AddedRoles[0].PrimeSlots[0] = 7

	unit := list.Detachments[0].Units[0]
	assert.Equal(t, 10, unit.Equipment[0].Cost)
	assert.Equal(t, armylist.LogisticalBenefitID, unit.PrimeBenefit.ID)
	assert.Equal(t, 1, list.Detachments[0].AddedRoles[0].PrimeSlots[0])
}

func TestListLookups(t *testing.T) {
	list := &armylist.List{
		Detachments: []*armylist.Detachment{
			{ID: "p", Type: armylist.DetachmentTypePrimary, Units: []*armylist.Unit{
				{ID: "u1", Role: armylist.RoleCommand, SlotIndex: 0},
				{ID: "u2", Role: armylist.RoleCommand, SlotIndex: 1},
			}},
			{ID: "a", Type: armylist.DetachmentTypeApex},
		},
	}

	require.NotNil(t, list.Primary())
	assert.Equal(t, "p", list.Primary().ID)
	assert.Equal(t, 1, list.CountType(armylist.DetachmentTypeApex))
	assert.Equal(t, 2, list.Primary().CountRole(armylist.RoleCommand))

	det, unit := list.FindUnit("u2")
	require.NotNil(t, unit)
	assert.Equal(t, "p", det.ID)
	assert.Equal(t, unit, det.UnitAt(armylist.RoleCommand, 1))
	assert.Nil(t, det.UnitAt(armylist.RoleCommand, 2))
}

func TestTemplateMatching(t *testing.T) {
	unit := &armylist.UnitTemplate{
		Army:        "Legiones Astartes",
		Factions:    []string{"Dark Angels"},
		Allegiances: []string{armylist.Wildcard},
	}
	assert.True(t, unit.Matches("Legiones Astartes", "Dark Angels", "Traitor"))
	assert.False(t, unit.Matches("Legiones Astartes", "World Eaters", "Traitor"))
	assert.False(t, unit.Matches("Solar Auxilia", "Dark Angels", "Loyalist"))

	det := &armylist.DetachmentTemplate{Armies: []string{armylist.Wildcard}, Factions: []string{"Dark Angels"}}
	assert.True(t, det.Matches("Solar Auxilia", "Dark Angels"))
	assert.False(t, det.Matches("Solar Auxilia", "Ultramarines"))

	group := armylist.EquipmentOptionGroup{Mode: armylist.SelectionModeCheckbox, MutuallyExclusive: true}
	assert.True(t, group.IsExclusive())
}
