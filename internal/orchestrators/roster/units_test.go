package roster_test

import (
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
	"github.com/KirkDiggler/crusade-api/internal/testutils"
)

func (s *OrchestratorTestSuite) TestAddUnit() {
	s.createList()

	s.Run("places a unit in a prime slot", func() {
		unit := s.addUnit("det-1", armylist.RoleHighCommand, 0, testutils.TestPraetorID)
		s.Equal("unit-1", unit.ID)
		s.True(unit.IsPrimeSlot)
		s.Equal(120, unit.TotalCost)
		s.Equal(120, s.getList().TotalPoints)
	})

	s.Run("occupied slot is rejected and nothing changes", func() {
		_, err := s.svc.AddUnit(s.ctx, &roster.AddUnitInput{
			ListID:         "list-1",
			DetachmentID:   "det-1",
			Role:           armylist.RoleHighCommand,
			SlotIndex:      0,
			UnitTemplateID: testutils.TestPraetorID,
		})
		s.True(errors.IsSlotOccupied(err))
		s.Len(s.getList().Detachments[0].Units, 1)
	})

	s.Run("role mismatch is rejected", func() {
		_, err := s.svc.AddUnit(s.ctx, &roster.AddUnitInput{
			ListID:         "list-1",
			DetachmentID:   "det-1",
			Role:           armylist.RoleTroops,
			SlotIndex:      0,
			UnitTemplateID: testutils.TestPraetorID,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown slot is rejected", func() {
		_, err := s.svc.AddUnit(s.ctx, &roster.AddUnitInput{
			ListID:         "list-1",
			DetachmentID:   "det-1",
			Role:           armylist.RoleTroops,
			SlotIndex:      5,
			UnitTemplateID: testutils.TestTacticalID,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown template is not found", func() {
		_, err := s.svc.AddUnit(s.ctx, &roster.AddUnitInput{
			ListID:         "list-1",
			DetachmentID:   "det-1",
			Role:           armylist.RoleTroops,
			SlotIndex:      0,
			UnitTemplateID: "nope",
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("unknown detachment is not found", func() {
		_, err := s.svc.AddUnit(s.ctx, &roster.AddUnitInput{
			ListID:         "list-1",
			DetachmentID:   "det-9",
			Role:           armylist.RoleTroops,
			SlotIndex:      0,
			UnitTemplateID: testutils.TestTacticalID,
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("invalid role is rejected before lookup", func() {
		_, err := s.svc.AddUnit(s.ctx, &roster.AddUnitInput{
			ListID:         "list-1",
			DetachmentID:   "det-1",
			Role:           "Artillery",
			UnitTemplateID: testutils.TestTacticalID,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestAddUnitOutsideListFaction() {
	s.expectSave(1)
	_, err := s.svc.CreateList(s.ctx, &roster.CreateListInput{
		Name:       "World Eaters",
		Army:       testutils.TestArmy,
		Faction:    "World Eaters",
		Allegiance: "Traitor",
	})
	s.Require().NoError(err)

	_, err = s.svc.AddUnit(s.ctx, &roster.AddUnitInput{
		ListID:         "list-1",
		DetachmentID:   "det-1",
		Role:           armylist.RoleElites,
		SlotIndex:      0,
		UnitTemplateID: testutils.TestDeathwingID,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRemoveAndRestoreUnit() {
	s.createList()
	s.addUnit("det-1", armylist.RoleTroops, 0, testutils.TestTacticalID)

	s.expectSave(1)
	removed, err := s.svc.RemoveUnit(s.ctx, &roster.RemoveUnitInput{ListID: "list-1", UnitID: "unit-1"})
	s.Require().NoError(err)
	s.Equal("det-1", removed.DetachmentID)
	s.Equal("unit-1", removed.Removed.ID)
	s.Zero(removed.Snapshot.List.TotalPoints)

	s.Run("restore puts the unit back", func() {
		s.expectSave(1)
		out, err := s.svc.RestoreUnit(s.ctx, &roster.RestoreUnitInput{
			ListID:       "list-1",
			DetachmentID: removed.DetachmentID,
			Unit:         removed.Removed,
		})
		s.Require().NoError(err)
		s.Equal(100, out.Snapshot.List.TotalPoints)
	})

	s.Run("restoring twice is rejected", func() {
		_, err := s.svc.RestoreUnit(s.ctx, &roster.RestoreUnitInput{
			ListID:       "list-1",
			DetachmentID: removed.DetachmentID,
			Unit:         removed.Removed,
		})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("restoring into a refilled slot is rejected", func() {
		s.expectSave(1)
		_, err := s.svc.RemoveUnit(s.ctx, &roster.RemoveUnitInput{ListID: "list-1", UnitID: "unit-1"})
		s.Require().NoError(err)
		s.addUnit("det-1", armylist.RoleTroops, 0, testutils.TestTacticalID)

		_, err = s.svc.RestoreUnit(s.ctx, &roster.RestoreUnitInput{
			ListID:       "list-1",
			DetachmentID: removed.DetachmentID,
			Unit:         removed.Removed,
		})
		s.True(errors.IsSlotOccupied(err))
	})

	s.Run("removing an unknown unit is not found", func() {
		_, err := s.svc.RemoveUnit(s.ctx, &roster.RemoveUnitInput{ListID: "list-1", UnitID: "unit-99"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateUnitEquipment() {
	s.createList()
	s.addUnit("det-1", armylist.RoleHighCommand, 0, testutils.TestPraetorID)

	s.Run("applies operations and reprices", func() {
		s.expectSave(1)
		out, err := s.svc.UpdateUnitEquipment(s.ctx, &roster.UpdateUnitEquipmentInput{
			ListID: "list-1",
			UnitID: "unit-1",
			Operations: []engine.Operation{
				{Kind: engine.OperationSelect, Key: "g0:o0:i2"},
				{Kind: engine.OperationToggle, Key: "g1:o0"},
			},
		})
		s.Require().NoError(err)
		s.Equal(155, out.Unit.TotalCost)
		s.Equal(35, out.Unit.EquipmentCost)
		s.Equal(155, out.Snapshot.List.TotalPoints)
		s.Equal("Thunder hammer", out.Unit.Equipment[0].Name)
		s.Equal([]string{"Chainsword"}, out.Unit.Equipment[0].Replaces)
	})

	s.Run("unknown option fails the whole batch", func() {
		_, err := s.svc.UpdateUnitEquipment(s.ctx, &roster.UpdateUnitEquipmentInput{
			ListID: "list-1",
			UnitID: "unit-1",
			Operations: []engine.Operation{
				{Kind: engine.OperationToggle, Key: "g1:o1"},
				{Kind: engine.OperationToggle, Key: "g7:o0"},
			},
		})
		s.True(errors.IsInvalidOption(err))
		s.Equal(155, s.getList().TotalPoints)
	})

	s.Run("requires operations", func() {
		_, err := s.svc.UpdateUnitEquipment(s.ctx, &roster.UpdateUnitEquipmentInput{ListID: "list-1", UnitID: "unit-1"})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("options report the current selection", func() {
		out, err := s.svc.GetUnitOptions(s.ctx, &roster.GetUnitOptionsInput{ListID: "list-1", UnitID: "unit-1"})
		s.Require().NoError(err)
		s.Equal([]string{"g0:o0:i2", "g1:o0"}, out.Selected)
		s.Len(out.Options.Groups, 2)
		s.Contains(out.Options.Metadata, engine.MetadataKey(testutils.TestMeleeListID, "May exchange Chainsword for"))
	})
}

func (s *OrchestratorTestSuite) TestPrimeBenefitAndLogisticalRole() {
	s.createList()
	s.addUnit("det-1", armylist.RoleHighCommand, 0, testutils.TestPraetorID)
	s.addUnit("det-1", armylist.RoleCommand, 1, testutils.TestCenturionID)

	s.Run("non-prime units cannot take a benefit", func() {
		_, err := s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{
			ListID:    "list-1",
			UnitID:    "unit-2",
			BenefitID: armylist.LogisticalBenefitID,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("unknown benefit is not found", func() {
		_, err := s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{
			ListID:    "list-1",
			UnitID:    "unit-1",
			BenefitID: "nope",
		})
		s.True(errors.IsNotFound(err))
	})

	s.expectSave(1)
	_, err := s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{
		ListID:    "list-1",
		UnitID:    "unit-1",
		BenefitID: armylist.LogisticalBenefitID,
	})
	s.Require().NoError(err)

	s.Run("role outside the allowed set is rejected", func() {
		_, err := s.svc.AddLogisticalRole(s.ctx, &roster.AddLogisticalRoleInput{
			ListID:       "list-1",
			DetachmentID: "det-1",
			UnitID:       "unit-1",
			Role:         armylist.RoleLordOfWar,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.expectSave(1)
	_, err = s.svc.AddLogisticalRole(s.ctx, &roster.AddLogisticalRoleInput{
		ListID:       "list-1",
		DetachmentID: "det-1",
		UnitID:       "unit-1",
		Role:         armylist.RoleElites,
	})
	s.Require().NoError(err)

	s.Run("a unit unlocks one role only", func() {
		_, err := s.svc.AddLogisticalRole(s.ctx, &roster.AddLogisticalRoleInput{
			ListID:       "list-1",
			DetachmentID: "det-1",
			UnitID:       "unit-1",
			Role:         armylist.RoleTroops,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	veterans := s.addUnit("det-1", armylist.RoleElites, 1, testutils.TestVeteransID)
	s.True(veterans.IsLogisticalBenefit)
	s.False(veterans.IsPrimeSlot)

	slots, err := s.svc.GetDetachmentSlots(s.ctx, &roster.GetDetachmentSlotsInput{ListID: "list-1", DetachmentID: "det-1"})
	s.Require().NoError(err)
	s.Len(slots.Slots, 8)
	last := slots.Slots[len(slots.Slots)-1]
	s.Equal(armylist.RoleElites, last.Role)
	s.Equal(1, last.SlotIndex)
	s.Equal("unit-1", last.TriggeredBy)
	s.Require().NotNil(last.Unit)
	s.Equal(veterans.ID, last.Unit.ID)

	s.Run("clearing the benefit removes the role and its unit", func() {
		s.expectSave(1)
		out, err := s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{ListID: "list-1", UnitID: "unit-1"})
		s.Require().NoError(err)
		s.Require().Len(out.Removed, 1)
		s.Equal(veterans.ID, out.Removed[0].ID)

		det := out.Snapshot.List.Detachments[0]
		s.Empty(det.AddedRoles)
		s.Len(det.Units, 2)
		s.Equal(120+65, out.Snapshot.List.TotalPoints)
	})
}

func (s *OrchestratorTestSuite) TestChangeAndRemoveLogisticalRole() {
	s.createList()
	s.addUnit("det-1", armylist.RoleHighCommand, 0, testutils.TestPraetorID)

	s.expectSave(2)
	_, err := s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{
		ListID:    "list-1",
		UnitID:    "unit-1",
		BenefitID: armylist.LogisticalBenefitID,
	})
	s.Require().NoError(err)
	_, err = s.svc.AddLogisticalRole(s.ctx, &roster.AddLogisticalRoleInput{
		ListID:       "list-1",
		DetachmentID: "det-1",
		UnitID:       "unit-1",
		Role:         armylist.RoleTroops,
	})
	s.Require().NoError(err)
	s.addUnit("det-1", armylist.RoleTroops, 0, testutils.TestTacticalID)
	s.addUnit("det-1", armylist.RoleTroops, 2, testutils.TestTacticalID)

	s.expectSave(1)
	changed, err := s.svc.ChangeLogisticalRole(s.ctx, &roster.ChangeLogisticalRoleInput{
		ListID:       "list-1",
		DetachmentID: "det-1",
		TriggeredBy:  "unit-1",
		Role:         armylist.RoleElites,
	})
	s.Require().NoError(err)
	s.Equal(armylist.RoleTroops, changed.Previous.AddedRoles[0].Role)
	s.Len(changed.Previous.Units, 3)
	// every Troops unit goes, the fixed slot included
	s.Require().Len(changed.Removed, 2)
	s.Equal(armylist.RoleElites, changed.Snapshot.List.Detachments[0].AddedRoles[0].Role)
	s.Equal(120, changed.Snapshot.List.TotalPoints)

	s.expectSave(1)
	removed, err := s.svc.RemoveLogisticalRole(s.ctx, &roster.RemoveLogisticalRoleInput{
		ListID:       "list-1",
		DetachmentID: "det-1",
		TriggeredBy:  "unit-1",
	})
	s.Require().NoError(err)
	s.Empty(removed.Removed)
	s.Empty(removed.Snapshot.List.Detachments[0].AddedRoles)

	_, err = s.svc.RemoveLogisticalRole(s.ctx, &roster.RemoveLogisticalRoleInput{
		ListID:       "list-1",
		DetachmentID: "det-1",
		TriggeredBy:  "unit-1",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRemovingUnitTakesItsLogisticalRole() {
	s.createList()
	s.addUnit("det-1", armylist.RoleCommand, 0, testutils.TestCenturionID)

	s.expectSave(2)
	_, err := s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{
		ListID:    "list-1",
		UnitID:    "unit-1",
		BenefitID: armylist.LogisticalBenefitID,
	})
	s.Require().NoError(err)
	_, err = s.svc.AddLogisticalRole(s.ctx, &roster.AddLogisticalRoleInput{
		ListID:       "list-1",
		DetachmentID: "det-1",
		UnitID:       "unit-1",
		Role:         armylist.RoleElites,
	})
	s.Require().NoError(err)
	s.addUnit("det-1", armylist.RoleElites, 1, testutils.TestVeteransID)

	s.expectSave(1)
	removed, err := s.svc.RemoveUnit(s.ctx, &roster.RemoveUnitInput{ListID: "list-1", UnitID: "unit-1"})
	s.Require().NoError(err)
	s.Require().NotNil(removed.UnlockedRole)
	s.Equal(1, removed.UnlockedRole.SlotIndex)
	s.Require().Len(removed.UnlockedRole.Units, 1)
	s.Equal("unit-2", removed.UnlockedRole.Units[0].ID)
	s.Empty(removed.Snapshot.List.Detachments[0].AddedRoles)
	s.Empty(removed.Snapshot.Validation.Inconsistencies)
	s.Zero(removed.Snapshot.List.TotalPoints)

	s.addUnit("det-1", armylist.RoleTroops, 0, testutils.TestTacticalID)
	s.expectSave(2)
	_, err = s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{
		ListID:    "list-1",
		UnitID:    "unit-3",
		BenefitID: armylist.LogisticalBenefitID,
	})
	s.Require().NoError(err)
	_, err = s.svc.AddLogisticalRole(s.ctx, &roster.AddLogisticalRoleInput{
		ListID:       "list-1",
		DetachmentID: "det-1",
		UnitID:       "unit-3",
		Role:         armylist.RoleElites,
	})
	s.Require().NoError(err)

	slots, err := s.svc.GetDetachmentSlots(s.ctx, &roster.GetDetachmentSlotsInput{ListID: "list-1", DetachmentID: "det-1"})
	s.Require().NoError(err)
	s.Len(slots.Slots, 8)
	last := slots.Slots[len(slots.Slots)-1]
	s.Equal("unit-3", last.TriggeredBy)
	s.Equal(1, last.SlotIndex)

	restore := &roster.RestoreUnitInput{
		ListID:       "list-1",
		DetachmentID: removed.DetachmentID,
		Unit:         removed.Removed,
		UnlockedRole: removed.UnlockedRole,
	}

	s.Run("restore is refused while another unit holds the benefit", func() {
		_, err := s.svc.RestoreUnit(s.ctx, restore)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.expectSave(2)
	_, err = s.svc.SetPrimeBenefit(s.ctx, &roster.SetPrimeBenefitInput{ListID: "list-1", UnitID: "unit-3"})
	s.Require().NoError(err)
	out, err := s.svc.RestoreUnit(s.ctx, restore)
	s.Require().NoError(err)

	s.Equal(100+65+125, out.Snapshot.List.TotalPoints)
	det := out.Snapshot.List.Detachments[0]
	s.Require().Len(det.AddedRoles, 1)
	s.Equal("unit-1", det.AddedRoles[0].TriggeredBy)
	s.Empty(out.Snapshot.Validation.Inconsistencies)
}
