package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/testutils"
	"github.com/KirkDiggler/crusade-api/internal/testutils/builders"
)

type ValidatorTestSuite struct {
	suite.Suite
	templates map[string]*armylist.DetachmentTemplate
	units     map[string]*armylist.UnitTemplate
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	data := testutils.TestCatalogData()
	s.templates = make(map[string]*armylist.DetachmentTemplate)
	for _, d := range data.Detachments {
		s.templates[d.ID] = d
	}
	s.units = make(map[string]*armylist.UnitTemplate)
	for _, u := range data.Units {
		s.units[u.ID] = u
	}
}

func (s *ValidatorTestSuite) TestAuxiliaryWithoutCommand() {
	list := builders.NewListBuilder().
		WithDetachment("det-aux", testutils.TestAuxiliaryTemplateID, "Test Auxiliary Detachment",
			armylist.DetachmentTypeAuxiliary, "gone").
		Build()

	result := engine.Validate(list, s.templates)

	s.Require().Len(result.Warnings, 1)
	s.Assert().Equal(engine.Warning{
		DetachmentID:   "det-aux",
		DetachmentName: "Test Auxiliary Detachment",
		Message:        "This Auxiliary Detachment requires a Command unit in Crusade Primary Detachment",
		SuggestedFix:   "Add a Command unit or remove this detachment",
	}, result.Warnings[0])

	aux, _ := list.Detachment("det-aux")
	s.Assert().False(aux.IsValid)
	s.Assert().True(list.Primary().IsValid)
}

func (s *ValidatorTestSuite) TestValidityIsRederived() {
	list := builders.NewListBuilder().
		WithUnit(builders.TestPrimaryID, builders.NewUnitBuilder("unit-hc", testutils.PraetorTemplate(), 0).Build()).
		WithDetachment("det-apex", testutils.TestApexTemplateID, "Apex", armylist.DetachmentTypeApex, "unit-hc").
		Build()

	apex, _ := list.Detachment("det-apex")
	apex.IsValid = false

	result := engine.Validate(list, s.templates)
	s.Assert().Empty(result.Warnings)
	s.Assert().True(apex.IsValid)

	list.Primary().Units = nil
	result = engine.Validate(list, s.templates)
	s.Require().Len(result.Warnings, 1)
	s.Assert().Contains(result.Warnings[0].Message, "High Command")
	s.Assert().False(apex.IsValid)
}

func (s *ValidatorTestSuite) TestReportsInconsistencies() {
	list := builders.NewListBuilder().
		WithUnit(builders.TestPrimaryID, builders.NewUnitBuilder("unit-orphan", testutils.TacticalTemplate(), 7).Build()).
		WithAddedRole(builders.TestPrimaryID, armylist.RoleElites, "unit-missing").
		Build()

	result := engine.Validate(list, s.templates)
	s.Assert().Empty(result.Warnings)
	s.Require().Len(result.Inconsistencies, 2)
	s.Assert().Equal("unit-orphan", result.Inconsistencies[0].UnitID)
	s.Assert().Equal(7, result.Inconsistencies[0].SlotIndex)
	s.Assert().Equal(armylist.RoleElites, result.Inconsistencies[1].Role)
}

func (s *ValidatorTestSuite) TestFindIncompatibleUnits() {
	list := builders.NewListBuilder().
		WithUnit(builders.TestPrimaryID, builders.NewUnitBuilder("unit-dw", testutils.DeathwingTemplate(), 0).Build()).
		WithUnit(builders.TestPrimaryID, builders.NewUnitBuilder("unit-tac", testutils.TacticalTemplate(), 0).Build()).
		Build()

	s.Assert().Empty(engine.FindIncompatibleUnits(list, s.units))

	list.Faction = "World Eaters"
	invalid := engine.FindIncompatibleUnits(list, s.units)
	s.Require().Len(invalid, 1)
	s.Assert().Equal(engine.InvalidUnit{
		UnitID:         "unit-dw",
		UnitName:       "Test Deathwing",
		DetachmentID:   builders.TestPrimaryID,
		DetachmentName: "Crusade Primary Detachment",
	}, invalid[0])

	list.Army = "Solar Auxilia"
	s.Assert().Len(engine.FindIncompatibleUnits(list, s.units), 2)
}
