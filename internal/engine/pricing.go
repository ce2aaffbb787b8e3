package engine

import "github.com/KirkDiggler/crusade-api/internal/entities/armylist"

// Reprice returns a copy of list with unit, detachment and list totals
// recomputed bottom-up. The input is not modified.
func Reprice(list *armylist.List) *armylist.List {
	out := list.Clone()
	RepriceInPlace(out)
	return out
}

// RepriceInPlace recomputes every total of list
func RepriceInPlace(list *armylist.List) {
	list.TotalPoints = 0
	for _, det := range list.Detachments {
		det.TotalPoints = 0
		for _, unit := range det.Units {
			unit.EquipmentCost = EquipmentCost(unit.Equipment)
			unit.TotalCost = unit.BaseCost + unit.EquipmentCost
			det.TotalPoints += unit.TotalCost
		}
		list.TotalPoints += det.TotalPoints
	}
}
