package testutils

import (
	"github.com/KirkDiggler/crusade-api/internal/catalog"
	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
)

// Default list settings used by fixtures and builders
const (
	TestArmy       = "Legiones Astartes"
	TestFaction    = "Dark Angels"
	TestAllegiance = "Loyalist"

	TestApexTemplateID      = "test-apex"
	TestAuxiliaryTemplateID = "test-auxiliary"
	TestMeleeListID         = "test-melee"

	TestPraetorID   = "test-praetor"
	TestCenturionID = "test-centurion"
	TestTacticalID  = "test-tactical"
	TestVeteransID  = "test-veterans"
	TestDeathwingID = "test-deathwing"
)

// PrimaryDetachmentTemplate has High Command 1 (prime 1), Command 2 (prime 1),
// Troops 2 (prime 1), Elites 1 (prime 1) and Heavy Support 1
func PrimaryDetachmentTemplate() *armylist.DetachmentTemplate {
	return &armylist.DetachmentTemplate{
		ID:       armylist.PrimaryDetachmentTemplateID,
		Name:     "Crusade Primary Detachment",
		Type:     armylist.DetachmentTypePrimary,
		Armies:   []string{armylist.Wildcard},
		Factions: []string{armylist.Wildcard},
		RoleSlots: []armylist.RoleSlotSpec{
			{Role: armylist.RoleHighCommand, Quantity: 1, PrimeSlots: []int{1}},
			{Role: armylist.RoleCommand, Quantity: 2, PrimeSlots: []int{1}},
			{Role: armylist.RoleTroops, Quantity: 2, PrimeSlots: []int{1}},
			{Role: armylist.RoleElites, Quantity: 1, PrimeSlots: []int{1}},
			{Role: armylist.RoleHeavySupport, Quantity: 1, PrimeSlots: []int{}},
		},
	}
}

// ApexDetachmentTemplate has Command 1 (prime 1) and Troops 1
func ApexDetachmentTemplate() *armylist.DetachmentTemplate {
	return &armylist.DetachmentTemplate{
		ID:       TestApexTemplateID,
		Name:     "Test Apex Detachment",
		Type:     armylist.DetachmentTypeApex,
		Armies:   []string{armylist.Wildcard},
		Factions: []string{armylist.Wildcard},
		RoleSlots: []armylist.RoleSlotSpec{
			{Role: armylist.RoleCommand, Quantity: 1, PrimeSlots: []int{1}},
			{Role: armylist.RoleTroops, Quantity: 1, PrimeSlots: []int{}},
		},
	}
}

// AuxiliaryDetachmentTemplate has Heavy Support 2 (prime 1)
func AuxiliaryDetachmentTemplate() *armylist.DetachmentTemplate {
	return &armylist.DetachmentTemplate{
		ID:       TestAuxiliaryTemplateID,
		Name:     "Test Auxiliary Detachment",
		Type:     armylist.DetachmentTypeAuxiliary,
		Armies:   []string{TestArmy},
		Factions: []string{armylist.Wildcard},
		RoleSlots: []armylist.RoleSlotSpec{
			{Role: armylist.RoleHeavySupport, Quantity: 2, PrimeSlots: []int{1}},
		},
	}
}

// MeleeWeaponList has Power sword 10, Power fist 15 and Thunder hammer 20
func MeleeWeaponList() *armylist.WeaponList {
	return &armylist.WeaponList{
		ID:   TestMeleeListID,
		Name: "Test Melee Weapons",
		Items: []armylist.WeaponListItem{
			{Name: "Power sword", Cost: 10},
			{Name: "Power fist", Cost: 15},
			{Name: "Thunder hammer", Cost: 20},
		},
	}
}

// PraetorTemplate is a 120 point High Command unit. Group 0 is a radio group
// holding a melee weapon list reference and a Paragon blade (25); group 1 is a
// checkbox group with Jump pack (15) and Melta bombs (10).
func PraetorTemplate() *armylist.UnitTemplate {
	return &armylist.UnitTemplate{
		ID:           TestPraetorID,
		Name:         "Test Praetor",
		Role:         armylist.RoleHighCommand,
		BaseCost:     120,
		Army:         TestArmy,
		Factions:     []string{armylist.Wildcard},
		Allegiances:  []string{armylist.Wildcard},
		BaseWargear:  []string{"Artificer armour", "Bolt pistol", "Chainsword"},
		SpecialRules: []string{"Independent Character"},
		EquipmentOptions: []armylist.EquipmentOptionGroup{
			{
				Label: "May exchange Chainsword for",
				Mode:  armylist.SelectionModeRadio,
				Options: []armylist.EquipmentOption{
					{Type: armylist.OptionTypeWeaponListReference, ListID: TestMeleeListID, Replaces: []string{"Chainsword"}},
					{Type: armylist.OptionTypeStandard, Name: "Paragon blade", Cost: 25, Replaces: []string{"Chainsword"}},
				},
			},
			{
				Label: "May take",
				Mode:  armylist.SelectionModeCheckbox,
				Options: []armylist.EquipmentOption{
					{Type: armylist.OptionTypeStandard, Name: "Jump pack", Cost: 15},
					{Type: armylist.OptionTypeStandard, Name: "Melta bombs", Cost: 10},
				},
			},
		},
	}
}

// CenturionTemplate is a 65 point Command unit with a mutually exclusive checkbox group
func CenturionTemplate() *armylist.UnitTemplate {
	return &armylist.UnitTemplate{
		ID:          TestCenturionID,
		Name:        "Test Centurion",
		Role:        armylist.RoleCommand,
		BaseCost:    65,
		Army:        TestArmy,
		Factions:    []string{armylist.Wildcard},
		Allegiances: []string{armylist.Wildcard},
		BaseWargear: []string{"Power armour", "Bolt pistol"},
		EquipmentOptions: []armylist.EquipmentOptionGroup{
			{
				Label:             "May take one of",
				Mode:              armylist.SelectionModeCheckbox,
				MutuallyExclusive: true,
				Options: []armylist.EquipmentOption{
					{Type: armylist.OptionTypeStandard, Name: "Plasma pistol", Cost: 5, Replaces: []string{"Bolt pistol"}},
					{Type: armylist.OptionTypeStandard, Name: "Volkite serpenta", Cost: 8, Replaces: []string{"Bolt pistol"}},
				},
			},
		},
	}
}

// TacticalTemplate is a 100 point Troops unit without options
func TacticalTemplate() *armylist.UnitTemplate {
	return &armylist.UnitTemplate{
		ID:          TestTacticalID,
		Name:        "Test Tactical Squad",
		Role:        armylist.RoleTroops,
		BaseCost:    100,
		Army:        TestArmy,
		Factions:    []string{armylist.Wildcard},
		Allegiances: []string{armylist.Wildcard},
		BaseWargear: []string{"Power armour", "Bolter"},
	}
}

// VeteransTemplate is a 125 point Elites unit without options
func VeteransTemplate() *armylist.UnitTemplate {
	return &armylist.UnitTemplate{
		ID:          TestVeteransID,
		Name:        "Test Veteran Squad",
		Role:        armylist.RoleElites,
		BaseCost:    125,
		Army:        TestArmy,
		Factions:    []string{armylist.Wildcard},
		Allegiances: []string{armylist.Wildcard},
	}
}

// DeathwingTemplate is a 150 point Elites unit restricted to Dark Angels loyalists
func DeathwingTemplate() *armylist.UnitTemplate {
	return &armylist.UnitTemplate{
		ID:          TestDeathwingID,
		Name:        "Test Deathwing",
		Role:        armylist.RoleElites,
		BaseCost:    150,
		Army:        TestArmy,
		Factions:    []string{TestFaction},
		Allegiances: []string{TestAllegiance},
	}
}

// LogisticalBenefit returns the logistical prime benefit
func LogisticalBenefit() *armylist.PrimeBenefit {
	return &armylist.PrimeBenefit{
		ID:          armylist.LogisticalBenefitID,
		Name:        "Logistical Benefit",
		Description: "Adds one slot to this detachment.",
	}
}

// VeteranBenefit returns a prime benefit that has no structural effect
func VeteranBenefit() *armylist.PrimeBenefit {
	return &armylist.PrimeBenefit{
		ID:   "veteran-cadre",
		Name: "Veteran Cadre",
	}
}

// TestSettings returns catalog settings with two armies
func TestSettings() *catalog.Settings {
	return &catalog.Settings{
		Armies: []catalog.Army{
			{Name: TestArmy, Factions: []string{TestFaction, "World Eaters"}},
			{Name: "Solar Auxilia", Factions: []string{armylist.Wildcard}},
		},
		Allegiances: []string{"Loyalist", "Traitor"},
		LogisticalRoles: []armylist.Role{
			armylist.RoleElites, armylist.RoleFastAttack, armylist.RoleHeavySupport,
			armylist.RoleTroops, armylist.RoleSupport,
		},
	}
}

// TestCatalogData bundles every fixture into catalog data
func TestCatalogData() *catalog.Data {
	return &catalog.Data{
		Settings: TestSettings(),
		Units: []*armylist.UnitTemplate{
			PraetorTemplate(), CenturionTemplate(), TacticalTemplate(), VeteransTemplate(), DeathwingTemplate(),
		},
		Detachments: []*armylist.DetachmentTemplate{
			PrimaryDetachmentTemplate(), ApexDetachmentTemplate(), AuxiliaryDetachmentTemplate(),
		},
		WeaponLists: []*armylist.WeaponList{MeleeWeaponList()},
		Benefits:    []*armylist.PrimeBenefit{LogisticalBenefit(), VeteranBenefit()},
	}
}

// TestCatalog returns a static catalog over TestCatalogData
func TestCatalog() *catalog.Static {
	c, err := catalog.NewStatic(TestCatalogData())
	if err != nil {
		panic(err)
	}
	return c
}
