package engine

import (
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// OperationKind names an equipment selection operation
type OperationKind string

// Operation kinds
const (
	OperationToggle OperationKind = "toggle"
	OperationSelect OperationKind = "select"
)

// Operation is one equipment change addressed by option key
type Operation struct {
	Kind OperationKind `json:"kind"`
	Key  string        `json:"key"`
}

type optionEntry struct {
	key      string
	name     string
	cost     int
	replaces []string
	group    int
	marker   bool
}

// Selector applies selection operations against a resolved option tree
type Selector struct {
	groups  []armylist.EquipmentOptionGroup
	entries map[string]*optionEntry
	members [][]*optionEntry
}

// NewSelector indexes a resolved option tree. Weapon list items are indexed as
// members of the group their list was expanded under.
func NewSelector(opts *ResolvedOptions) *Selector {
	s := &Selector{
		groups:  opts.Groups,
		entries: make(map[string]*optionEntry),
		members: make([][]*optionEntry, len(opts.Groups)),
	}

	for gi, group := range opts.Groups {
		for _, option := range group.Options {
			entry := &optionEntry{
				key:      option.Key,
				name:     option.Name,
				cost:     option.Cost,
				replaces: option.Replaces,
				group:    gi,
				marker:   option.IsWeaponListGroup,
			}
			s.entries[entry.key] = entry
			s.members[gi] = append(s.members[gi], entry)

			if !option.IsWeaponListGroup {
				continue
			}
			meta, ok := opts.Metadata[option.Name]
			if !ok {
				continue
			}
			for _, item := range meta.Items {
				itemEntry := &optionEntry{
					key:      item.Key,
					name:     item.Name,
					cost:     item.Cost,
					replaces: item.Replaces,
					group:    gi,
				}
				s.entries[itemEntry.key] = itemEntry
				s.members[gi] = append(s.members[gi], itemEntry)
			}
		}
	}

	return s
}

// Toggle adds the option if absent and removes it if present.
// Options of radio or mutually exclusive groups must use SelectExclusive.
func (s *Selector) Toggle(current []armylist.EquipmentSelection, key string) ([]armylist.EquipmentSelection, error) {
	entry, err := s.entry(key)
	if err != nil {
		return nil, err
	}
	if s.groups[entry.group].IsExclusive() {
		return nil, errors.InvalidArgumentf("option %s belongs to exclusive group %q, use select", key, s.groups[entry.group].Label)
	}

	if slices.ContainsFunc(current, entry.matches) {
		return slices.DeleteFunc(slices.Clone(current), entry.matches), nil
	}

	return append(slices.Clone(current), entry.selection()), nil
}

// SelectExclusive selects the option in its exclusive group, replacing any other
// member. Selecting the option that is already selected clears the group.
func (s *Selector) SelectExclusive(
	current []armylist.EquipmentSelection,
	key string,
) ([]armylist.EquipmentSelection, error) {
	entry, err := s.entry(key)
	if err != nil {
		return nil, err
	}
	if !s.groups[entry.group].IsExclusive() {
		return nil, errors.InvalidArgumentf("option %s belongs to checkbox group %q, use toggle", key, s.groups[entry.group].Label)
	}

	if slices.ContainsFunc(current, entry.matches) {
		return slices.DeleteFunc(slices.Clone(current), entry.matches), nil
	}

	next := slices.DeleteFunc(slices.Clone(current), func(sel armylist.EquipmentSelection) bool {
		return slices.ContainsFunc(s.members[entry.group], func(member *optionEntry) bool {
			return member.matches(sel)
		})
	})

	return append(next, entry.selection()), nil
}

// Apply runs the operations in order. Either every operation succeeds or the
// current selection is returned untouched together with the first error.
func (s *Selector) Apply(
	current []armylist.EquipmentSelection,
	ops []Operation,
) ([]armylist.EquipmentSelection, error) {
	next := slices.Clone(current)
	for i, op := range ops {
		var err error
		switch op.Kind {
		case OperationToggle:
			next, err = s.Toggle(next, op.Key)
		case OperationSelect:
			next, err = s.SelectExclusive(next, op.Key)
		default:
			err = errors.InvalidArgumentf("unknown operation kind %q", op.Kind)
		}
		if err != nil {
			return current, errors.Wrapf(err, "operation %d: %s", i, errors.GetMessage(err))
		}
	}
	if next == nil {
		next = []armylist.EquipmentSelection{}
	}

	return next, nil
}

// IsSelected reports whether the option is part of the selection
func (s *Selector) IsSelected(current []armylist.EquipmentSelection, key string) bool {
	entry, ok := s.entries[key]
	if !ok {
		return false
	}
	return slices.ContainsFunc(current, entry.matches)
}

// SelectedKeys returns the keys of every selected option in tree order.
// Legacy selections without a key are reported under the key they match by name.
func (s *Selector) SelectedKeys(current []armylist.EquipmentSelection) []string {
	keys := []string{}
	for _, group := range s.members {
		for _, entry := range group {
			if !entry.marker && slices.ContainsFunc(current, entry.matches) {
				keys = append(keys, entry.key)
			}
		}
	}
	return keys
}

func (s *Selector) entry(key string) (*optionEntry, error) {
	entry, ok := s.entries[key]
	if !ok {
		return nil, errors.InvalidOptionf("unit has no equipment option %s", key).
			WithMeta("option_key", key)
	}
	if entry.marker {
		return nil, errors.InvalidOptionf("option %s is a weapon list, select one of its items", key).
			WithMeta("option_key", key)
	}
	return entry, nil
}

// matches compares by key. Selections saved without a key fall back to name.
func (e *optionEntry) matches(sel armylist.EquipmentSelection) bool {
	if sel.Key != "" {
		return sel.Key == e.key
	}
	return sel.Name == e.name
}

func (e *optionEntry) selection() armylist.EquipmentSelection {
	return armylist.EquipmentSelection{
		Key:      e.key,
		Name:     e.name,
		Cost:     e.cost,
		Replaces: slices.Clone(e.replaces),
	}
}

// EquipmentCost sums the cost of a selection
func EquipmentCost(selection []armylist.EquipmentSelection) int {
	total := 0
	for _, sel := range selection {
		total += sel.Cost
	}
	return total
}
