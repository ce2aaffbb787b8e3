package roster_test

import (
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
	"github.com/KirkDiggler/crusade-api/internal/testutils"
)

func (s *OrchestratorTestSuite) settings(faction string, limit int) engine.ListSettings {
	return engine.ListSettings{
		Name:        "Dark Angels 2000",
		Army:        testutils.TestArmy,
		Faction:     faction,
		Allegiance:  testutils.TestAllegiance,
		PointsLimit: limit,
	}
}

func (s *OrchestratorTestSuite) TestUpdateSettingsApplied() {
	s.createList()
	s.addUnit("det-1", armylist.RoleElites, 0, testutils.TestDeathwingID)

	s.expectSave(1)
	out, err := s.svc.UpdateSettings(s.ctx, &roster.UpdateSettingsInput{
		ListID:   "list-1",
		Settings: s.settings(testutils.TestFaction, 2000),
	})
	s.Require().NoError(err)
	s.Equal(engine.SettingsApplied, out.Status)
	s.Empty(out.InvalidUnits)
	s.Require().NotNil(out.Snapshot)
	s.Equal("Dark Angels 2000", out.Snapshot.List.Name)
	s.Equal(2000, out.Snapshot.List.PointsLimit)
	s.Equal(150, out.Snapshot.List.TotalPoints)

	s.Run("invalid settings are rejected", func() {
		bad := s.settings("Salamanders", 2000)
		_, err := s.svc.UpdateSettings(s.ctx, &roster.UpdateSettingsInput{ListID: "list-1", Settings: bad})
		s.True(errors.IsInvalidArgument(err))

		bad = s.settings(testutils.TestFaction, -5)
		_, err = s.svc.UpdateSettings(s.ctx, &roster.UpdateSettingsInput{ListID: "list-1", Settings: bad})
		s.True(errors.IsInvalidArgument(err))

		bad = s.settings(testutils.TestFaction, 2000)
		bad.Name = "   "
		_, err = s.svc.UpdateSettings(s.ctx, &roster.UpdateSettingsInput{ListID: "list-1", Settings: bad})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateSettingsPendingThenConfirm() {
	s.createList()
	s.addUnit("det-1", armylist.RoleTroops, 0, testutils.TestTacticalID)
	deathwing := s.addUnit("det-1", armylist.RoleElites, 0, testutils.TestDeathwingID)

	out, err := s.svc.UpdateSettings(s.ctx, &roster.UpdateSettingsInput{
		ListID:   "list-1",
		Settings: s.settings("World Eaters", 1500),
	})
	s.Require().NoError(err)
	s.Equal(engine.SettingsPendingConfirmation, out.Status)
	s.Nil(out.Snapshot)
	s.Require().Len(out.InvalidUnits, 1)
	s.Equal(deathwing.ID, out.InvalidUnits[0].UnitID)

	s.Run("nothing changes while pending", func() {
		list := s.getList()
		s.Equal(testutils.TestFaction, list.Faction)
		s.Equal(250, list.TotalPoints)
	})

	s.expectSave(1)
	confirmed, err := s.svc.ConfirmSettings(s.ctx, &roster.ConfirmSettingsInput{ListID: "list-1"})
	s.Require().NoError(err)
	s.Require().Len(confirmed.Removed, 1)
	s.Equal(deathwing.ID, confirmed.Removed[0].UnitID)
	s.Equal("World Eaters", confirmed.Snapshot.List.Faction)
	s.Equal(100, confirmed.Snapshot.List.TotalPoints)
	s.Len(confirmed.Snapshot.List.Detachments[0].Units, 1)

	s.Run("confirming again has nothing pending", func() {
		_, err := s.svc.ConfirmSettings(s.ctx, &roster.ConfirmSettingsInput{ListID: "list-1"})
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestConfirmSeesEditsMadeWhilePending() {
	s.createList()
	s.addUnit("det-1", armylist.RoleElites, 0, testutils.TestDeathwingID)

	out, err := s.svc.UpdateSettings(s.ctx, &roster.UpdateSettingsInput{
		ListID:   "list-1",
		Settings: s.settings("World Eaters", 1500),
	})
	s.Require().NoError(err)
	s.Equal(engine.SettingsPendingConfirmation, out.Status)

	s.expectSave(1)
	_, err = s.svc.RemoveUnit(s.ctx, &roster.RemoveUnitInput{ListID: "list-1", UnitID: "unit-1"})
	s.Require().NoError(err)
	s.addUnit("det-1", armylist.RoleTroops, 0, testutils.TestTacticalID)

	s.expectSave(1)
	confirmed, err := s.svc.ConfirmSettings(s.ctx, &roster.ConfirmSettingsInput{ListID: "list-1"})
	s.Require().NoError(err)
	s.Empty(confirmed.Removed)
	s.Equal("World Eaters", confirmed.Snapshot.List.Faction)
	s.Equal(100, confirmed.Snapshot.List.TotalPoints)
}

func (s *OrchestratorTestSuite) TestCancelSettings() {
	s.createList()
	s.addUnit("det-1", armylist.RoleElites, 0, testutils.TestDeathwingID)

	_, err := s.svc.UpdateSettings(s.ctx, &roster.UpdateSettingsInput{
		ListID:   "list-1",
		Settings: s.settings("World Eaters", 1500),
	})
	s.Require().NoError(err)

	out, err := s.svc.CancelSettings(s.ctx, &roster.CancelSettingsInput{ListID: "list-1"})
	s.Require().NoError(err)
	s.True(out.Discarded)

	again, err := s.svc.CancelSettings(s.ctx, &roster.CancelSettingsInput{ListID: "list-1"})
	s.Require().NoError(err)
	s.False(again.Discarded)

	_, err = s.svc.ConfirmSettings(s.ctx, &roster.ConfirmSettingsInput{ListID: "list-1"})
	s.True(errors.IsFailedPrecondition(err))

	list := s.getList()
	s.Equal(testutils.TestFaction, list.Faction)
	s.Len(list.Detachments[0].Units, 1)
}
