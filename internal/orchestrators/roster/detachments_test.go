package roster_test

import (
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
	"github.com/KirkDiggler/crusade-api/internal/testutils"
)

func (s *OrchestratorTestSuite) TestAddDetachmentNeedsUnlock() {
	s.createList()

	_, err := s.svc.AddDetachment(s.ctx, &roster.AddDetachmentInput{
		ListID:     "list-1",
		TemplateID: testutils.TestApexTemplateID,
	})
	s.True(errors.IsFailedPrecondition(err))

	unlocks, err := s.svc.AvailableUnlocks(s.ctx, &roster.AvailableUnlocksInput{ListID: "list-1"})
	s.Require().NoError(err)
	s.Equal(engine.Unlocks{}, unlocks.Unlocks)
}

func (s *OrchestratorTestSuite) TestAddDetachment() {
	s.createList()
	s.addUnit("det-1", armylist.RoleHighCommand, 0, testutils.TestPraetorID)
	s.addUnit("det-1", armylist.RoleCommand, 0, testutils.TestCenturionID)

	unlocks, err := s.svc.AvailableUnlocks(s.ctx, &roster.AvailableUnlocksInput{ListID: "list-1"})
	s.Require().NoError(err)
	s.Equal(engine.Unlocks{Apex: 1, Auxiliary: 1}, unlocks.Unlocks)

	s.expectSave(1)
	out, err := s.svc.AddDetachment(s.ctx, &roster.AddDetachmentInput{
		ListID:     "list-1",
		TemplateID: testutils.TestApexTemplateID,
	})
	s.Require().NoError(err)
	s.Equal("det-2", out.Detachment.ID)
	s.Equal(armylist.DetachmentTypeApex, out.Detachment.Type)
	s.Equal("unit-1", out.Detachment.TriggeredBy)
	s.Len(out.Snapshot.List.Detachments, 2)

	s.Run("unlock is consumed", func() {
		unlocks, err := s.svc.AvailableUnlocks(s.ctx, &roster.AvailableUnlocksInput{ListID: "list-1"})
		s.Require().NoError(err)
		s.Equal(engine.Unlocks{Apex: 0, Auxiliary: 1}, unlocks.Unlocks)

		_, err = s.svc.AddDetachment(s.ctx, &roster.AddDetachmentInput{
			ListID:     "list-1",
			TemplateID: testutils.TestApexTemplateID,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("primary template cannot be added", func() {
		_, err := s.svc.AddDetachment(s.ctx, &roster.AddDetachmentInput{
			ListID:     "list-1",
			TemplateID: armylist.PrimaryDetachmentTemplateID,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("slots of the new detachment", func() {
		slots, err := s.svc.GetDetachmentSlots(s.ctx, &roster.GetDetachmentSlotsInput{ListID: "list-1", DetachmentID: "det-2"})
		s.Require().NoError(err)
		s.Require().Len(slots.Slots, 2)
		s.Equal(armylist.RoleCommand, slots.Slots[0].Role)
		s.True(slots.Slots[0].IsPrime)
		s.Nil(slots.Slots[0].Unit)
	})
}

func (s *OrchestratorTestSuite) TestRemovingTriggerLeavesWarning() {
	s.createList()
	s.addUnit("det-1", armylist.RoleHighCommand, 0, testutils.TestPraetorID)

	s.expectSave(2)
	_, err := s.svc.AddDetachment(s.ctx, &roster.AddDetachmentInput{
		ListID:     "list-1",
		TemplateID: testutils.TestApexTemplateID,
	})
	s.Require().NoError(err)

	out, err := s.svc.RemoveUnit(s.ctx, &roster.RemoveUnitInput{ListID: "list-1", UnitID: "unit-1"})
	s.Require().NoError(err)

	s.Len(out.Snapshot.List.Detachments, 2)
	s.False(out.Snapshot.List.Detachments[1].IsValid)
	s.Require().Len(out.Snapshot.Validation.Warnings, 1)
	s.Equal("det-2", out.Snapshot.Validation.Warnings[0].DetachmentID)
	s.NotEmpty(out.Snapshot.Validation.Warnings[0].SuggestedFix)
}

func (s *OrchestratorTestSuite) TestRemoveAndRestoreDetachment() {
	s.createList()
	s.addUnit("det-1", armylist.RoleCommand, 0, testutils.TestCenturionID)

	s.expectSave(1)
	_, err := s.svc.AddDetachment(s.ctx, &roster.AddDetachmentInput{
		ListID:     "list-1",
		TemplateID: testutils.TestAuxiliaryTemplateID,
	})
	s.Require().NoError(err)

	s.expectSave(1)
	removed, err := s.svc.RemoveDetachment(s.ctx, &roster.RemoveDetachmentInput{ListID: "list-1", DetachmentID: "det-2"})
	s.Require().NoError(err)
	s.Len(removed.Snapshot.List.Detachments, 1)
	s.Equal("det-2", removed.Removed.ID)
	s.Equal(65, removed.Snapshot.List.TotalPoints)

	s.expectSave(1)
	restored, err := s.svc.RestoreDetachment(s.ctx, &roster.RestoreDetachmentInput{
		ListID:     "list-1",
		Detachment: removed.Removed,
	})
	s.Require().NoError(err)
	s.Len(restored.Snapshot.List.Detachments, 2)
	s.Equal(armylist.DetachmentTypeAuxiliary, restored.Snapshot.List.Detachments[1].Type)
	s.Equal(65, restored.Snapshot.List.TotalPoints)

	s.Run("primary cannot be removed", func() {
		_, err := s.svc.RemoveDetachment(s.ctx, &roster.RemoveDetachmentInput{ListID: "list-1", DetachmentID: "det-1"})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("unknown detachment is not found", func() {
		_, err := s.svc.RemoveDetachment(s.ctx, &roster.RemoveDetachmentInput{ListID: "list-1", DetachmentID: "det-9"})
		s.True(errors.IsNotFound(err))
	})
}
