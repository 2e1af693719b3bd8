package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/astrogirlnim/salvage/internal/game"
	"github.com/astrogirlnim/salvage/internal/player"
	"github.com/astrogirlnim/salvage/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	// DebrisTypes and Upgrades are optional; the built-in catalogs are used
	// when no path is configured.
	DebrisTypes AssetConfig[*game.DebrisType]        `json:"debris_types"`
	Upgrades    AssetConfig[*game.UpgradeDefinition] `json:"upgrades"`
	Profiles    AssetConfig[*player.Profile]         `json:"profiles"`
}

// BuildCatalog loads the debris catalog from the configured asset directory
// or falls back to the built-in set.
func (c *StorageConfig) BuildCatalog() (game.Catalog, error) {
	if c.DebrisTypes.Path == "" {
		return game.DefaultCatalog(), nil
	}

	store, err := c.DebrisTypes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating debris type store: %w", err)
	}

	catalog := game.Catalog{}
	for id, def := range store.GetAll() {
		catalog[id.String()] = def
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("debris type directory %q holds no definitions", c.DebrisTypes.Path)
	}
	return catalog, nil
}

// BuildUpgradeCatalog loads the upgrade tracks from the configured asset
// directory or falls back to the built-in set.
func (c *StorageConfig) BuildUpgradeCatalog() (game.UpgradeCatalog, error) {
	if c.Upgrades.Path == "" {
		return game.DefaultUpgrades(), nil
	}

	store, err := c.Upgrades.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating upgrade store: %w", err)
	}

	catalog := game.UpgradeCatalog{}
	for id, def := range store.GetAll() {
		catalog[id.String()] = def
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("upgrade directory %q holds no definitions", c.Upgrades.Path)
	}
	return catalog, nil
}

// BuildProfileStore opens the durable profile store. A store that cannot be
// loaded degrades to an in-memory store so the session can still run; the
// player keeps their progress for the session even though it will not
// survive the process.
func (c *StorageConfig) BuildProfileStore() storage.Storer[*player.Profile] {
	store, err := c.Profiles.BuildFileStore()
	if err != nil {
		slog.Error("loading profile store, falling back to memory", "path", c.Profiles.Path, "error", err)
		return storage.NewMemStore[*player.Profile]()
	}
	return store
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.DebrisTypes.Validate("debris_types", false))
	el.Add(c.Upgrades.Validate("upgrades", false))
	el.Add(c.Profiles.Validate("profiles", true))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string, required bool) error {
	if c.Path == "" {
		if required {
			return fmt.Errorf("%s: path is required", name)
		}
		return nil
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
