package catalog

import (
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// Army is a playable army and the factions it may be fielded as
type Army struct {
	Name     string   `json:"name"`
	Factions []string `json:"factions"`
}

// Settings holds the values list settings are validated against
type Settings struct {
	Armies          []Army          `json:"armies"`
	Allegiances     []string        `json:"allegiances"`
	LogisticalRoles []armylist.Role `json:"logistical_roles"`
}

// Army returns the named army
func (s *Settings) Army(name string) (*Army, bool) {
	for i := range s.Armies {
		if s.Armies[i].Name == name {
			return &s.Armies[i], true
		}
	}
	return nil, false
}

// ValidateListSettings checks army, faction and allegiance against the catalog.
// An army whose faction list is the wildcard accepts any faction.
func (s *Settings) ValidateListSettings(army, faction, allegiance string) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("army", army, vb)
	errors.ValidateRequired("faction", faction, vb)
	errors.ValidateRequired("allegiance", allegiance, vb)

	if army != "" {
		a, ok := s.Army(army)
		switch {
		case !ok:
			vb.Fieldf("army", "unknown army %q", army)
		case faction != "" && !slices.Contains(a.Factions, armylist.Wildcard) && !slices.Contains(a.Factions, faction):
			vb.Fieldf("faction", "%q is not a faction of %s", faction, army)
		}
	}
	if allegiance != "" {
		errors.ValidateEnum("allegiance", allegiance, s.Allegiances, vb)
	}

	return vb.Build()
}
