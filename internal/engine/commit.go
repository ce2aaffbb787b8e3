package engine

import "github.com/KirkDiggler/crusade-api/internal/entities/armylist"

// Commit runs the pricing and validation pipeline over a mutated list and
// returns the snapshot that becomes the committed state
func Commit(
	list *armylist.List,
	templates map[string]*armylist.DetachmentTemplate,
) (*armylist.List, *Validation) {
	out := Reprice(list)
	validation := Validate(out, templates)
	return out, validation
}
