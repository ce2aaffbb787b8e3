// Package engine implements the army list composition rules: equipment option
// resolution and selection, role slot allocation, detachment unlocks, list
// validation and pricing. Everything except option resolution is a pure
// function over list values; callers clone a list before mutating it.
package engine

import (
	"context"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// WeaponListSource is the slice of the catalog the resolver needs
type WeaponListSource interface {
	GetWeaponList(ctx context.Context, id string) (*armylist.WeaponList, error)
}

// Config contains the engine dependencies
type Config struct {
	WeaponLists WeaponListSource
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.WeaponLists == nil {
		vb.RequiredField("WeaponLists")
	}

	return vb.Build()
}

// Engine resolves equipment options against the catalog
type Engine struct {
	weaponLists WeaponListSource
}

// New creates a new engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine config")
	}

	return &Engine{
		weaponLists: cfg.WeaponLists,
	}, nil
}
