package catalog

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

//go:embed seed.json
var seedJSON []byte

// Static is an in-memory catalog. It is safe for concurrent reads.
type Static struct {
	data        *Data
	units       map[string]*armylist.UnitTemplate
	detachments map[string]*armylist.DetachmentTemplate
	weaponLists map[string]*armylist.WeaponList
}

// LoadEmbedded parses the catalog compiled into the binary
func LoadEmbedded() (*Data, error) {
	var data Data
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded catalog")
	}
	return &data, nil
}

// NewStatic indexes data for lookups
func NewStatic(data *Data) (*Static, error) {
	if data == nil {
		return nil, errors.InvalidArgument("catalog data is required")
	}
	if data.Settings == nil {
		return nil, errors.InvalidArgument("catalog settings are required")
	}

	s := &Static{
		data:        data,
		units:       make(map[string]*armylist.UnitTemplate, len(data.Units)),
		detachments: make(map[string]*armylist.DetachmentTemplate, len(data.Detachments)),
		weaponLists: make(map[string]*armylist.WeaponList, len(data.WeaponLists)),
	}
	for _, u := range data.Units {
		s.units[u.ID] = u
	}
	for _, d := range data.Detachments {
		s.detachments[d.ID] = d
	}
	for _, w := range data.WeaponLists {
		s.weaponLists[w.ID] = w
	}
	if _, ok := s.detachments[armylist.PrimaryDetachmentTemplateID]; !ok {
		return nil, errors.InvalidArgumentf("catalog has no %s detachment", armylist.PrimaryDetachmentTemplateID)
	}

	return s, nil
}

// NewEmbedded returns a Static catalog over the embedded seed
func NewEmbedded() (*Static, error) {
	data, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return NewStatic(data)
}

// Data returns the catalog content
func (s *Static) Data() *Data {
	return s.data
}

// GetUnitTemplate implements Lookup
func (s *Static) GetUnitTemplate(_ context.Context, id string) (*armylist.UnitTemplate, error) {
	if u, ok := s.units[id]; ok {
		return u, nil
	}
	return nil, errors.NotFoundf("unit template %s not found", id)
}

// GetDetachmentTemplate implements Lookup
func (s *Static) GetDetachmentTemplate(_ context.Context, id string) (*armylist.DetachmentTemplate, error) {
	if d, ok := s.detachments[id]; ok {
		return d, nil
	}
	return nil, errors.NotFoundf("detachment template %s not found", id)
}

// GetWeaponList implements Lookup
func (s *Static) GetWeaponList(_ context.Context, id string) (*armylist.WeaponList, error) {
	if w, ok := s.weaponLists[id]; ok {
		return w, nil
	}
	return nil, errors.NotFoundf("weapon list %s not found", id)
}

// ListDetachmentTemplates implements Lookup
func (s *Static) ListDetachmentTemplates(
	_ context.Context,
	input *ListDetachmentTemplatesInput,
) ([]*armylist.DetachmentTemplate, error) {
	out := []*armylist.DetachmentTemplate{}
	for _, d := range s.data.Detachments {
		if matchDetachment(d, input) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListUnitTemplates implements Lookup
func (s *Static) ListUnitTemplates(_ context.Context, input *ListUnitTemplatesInput) ([]*armylist.UnitTemplate, error) {
	out := []*armylist.UnitTemplate{}
	for _, u := range s.data.Units {
		if matchUnit(u, input) {
			out = append(out, u)
		}
	}
	return out, nil
}

// ListPrimeBenefits implements Lookup
func (s *Static) ListPrimeBenefits(_ context.Context) ([]*armylist.PrimeBenefit, error) {
	return s.data.Benefits, nil
}

// GetSettings implements Lookup
func (s *Static) GetSettings(_ context.Context) (*Settings, error) {
	return s.data.Settings, nil
}
