package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// ResolvedItem is one concrete weapon from an expanded weapon list
type ResolvedItem struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Cost     int      `json:"cost"`
	Replaces []string `json:"replaces,omitempty"`
}

// WeaponListMetadata describes a weapon list expanded under one option group
type WeaponListMetadata struct {
	Key        string         `json:"key"`
	ListID     string         `json:"list_id"`
	ListName   string         `json:"list_name"`
	GroupIndex int            `json:"group_index"`
	ItemCount  int            `json:"item_count"`
	Items      []ResolvedItem `json:"items"`
}

// ResolvedOptions is a unit's option tree with every weapon list reference expanded
type ResolvedOptions struct {
	Groups   []armylist.EquipmentOptionGroup `json:"groups"`
	Metadata map[string]*WeaponListMetadata  `json:"metadata"`
}

// OptionKey returns the stable key of option j in group i
func OptionKey(group, option int) string {
	return fmt.Sprintf("g%d:o%d", group, option)
}

// ItemKey returns the stable key of item k of the weapon list behind option j in group i
func ItemKey(group, option, item int) string {
	return fmt.Sprintf("%s:i%d", OptionKey(group, option), item)
}

// MetadataKey returns the key under which a weapon list's metadata is stored for a group
func MetadataKey(listID, groupLabel string) string {
	return listID + "-" + groupLabel
}

// ResolveOptions expands weapon list references into group markers plus metadata.
// The input is never mutated. Group and option order is preserved. Resolving an
// already resolved tree returns an identical tree: existing keys are kept and
// markers are passed through with their metadata rebuilt from the catalog.
func (e *Engine) ResolveOptions(
	ctx context.Context,
	groups []armylist.EquipmentOptionGroup,
) (*ResolvedOptions, error) {
	out := &ResolvedOptions{
		Groups:   make([]armylist.EquipmentOptionGroup, 0, len(groups)),
		Metadata: make(map[string]*WeaponListMetadata),
	}

	for gi, group := range groups {
		resolved := armylist.EquipmentOptionGroup{
			Label:             group.Label,
			Mode:              group.Mode,
			MutuallyExclusive: group.MutuallyExclusive,
			Options:           make([]armylist.EquipmentOption, 0, len(group.Options)),
		}

		for oi, option := range group.Options {
			option.Replaces = slices.Clone(option.Replaces)
			if option.Key == "" {
				option.Key = OptionKey(gi, oi)
			}

			if !option.IsReference() && !option.IsWeaponListGroup {
				if option.Type == "" {
					option.Type = armylist.OptionTypeStandard
				}
				resolved.Options = append(resolved.Options, option)
				continue
			}

			if option.ListID == "" {
				return nil, errors.InvalidArgumentf("weapon list option %d in group %q has no list id", oi, group.Label)
			}

			list, err := e.weaponLists.GetWeaponList(ctx, option.ListID)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to resolve weapon list %s", option.ListID)
			}

			key := MetadataKey(list.ID, group.Label)
			if _, taken := out.Metadata[key]; taken {
				return nil, errors.InvalidArgumentf("weapon list %s is offered twice under group %q", list.ID, group.Label).
					WithMeta("metadata_key", key)
			}

			meta := &WeaponListMetadata{
				Key:        key,
				ListID:     list.ID,
				ListName:   list.Name,
				GroupIndex: gi,
				ItemCount:  len(list.Items),
				Items:      make([]ResolvedItem, 0, len(list.Items)),
			}
			for ii, item := range list.Items {
				meta.Items = append(meta.Items, ResolvedItem{
					Key:      fmt.Sprintf("%s:i%d", option.Key, ii),
					Name:     item.Name,
					Cost:     item.Cost,
					Replaces: slices.Clone(option.Replaces),
				})
			}
			out.Metadata[meta.Key] = meta

			resolved.Options = append(resolved.Options, armylist.EquipmentOption{
				Type:              armylist.OptionTypeStandard,
				Name:              meta.Key,
				Cost:              0,
				Replaces:          option.Replaces,
				ListID:            list.ID,
				Key:               option.Key,
				IsWeaponListGroup: true,
			})
		}

		out.Groups = append(out.Groups, resolved)
	}

	return out, nil
}
