package game

// DefaultCatalog returns the built-in debris catalog, used when no asset
// directory is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		"scrap_metal": {
			Name:        "Scrap Metal",
			BaseValue:   5,
			SpawnWeight: 60,
			RarityStr:   "common",
		},
		"broken_satellite": {
			Name:        "Broken Satellite",
			BaseValue:   150,
			SpawnWeight: 25,
			RarityStr:   "uncommon",
		},
		"ai_component": {
			Name:        "AI Component",
			BaseValue:   500,
			SpawnWeight: 10,
			RarityStr:   "rare",
		},
		"unknown_artifact": {
			Name:        "Unknown Artifact",
			BaseValue:   1000,
			SpawnWeight: 5,
			RarityStr:   "legendary",
		},
	}
}

// DefaultUpgrades returns the built-in upgrade tracks.
func DefaultUpgrades() UpgradeCatalog {
	return UpgradeCatalog{
		"speed_boost": {
			Name:           "Speed Boost",
			MaxLevel:       5,
			BaseCost:       100,
			CostMultiplier: 1.5,
			EffectPerLevel: 50,
			CategoryStr:    "speed",
		},
		"inventory_expansion": {
			Name:           "Inventory Expansion",
			MaxLevel:       5,
			BaseCost:       150,
			CostMultiplier: 1.8,
			EffectPerLevel: 10,
			CategoryStr:    "capacity",
		},
		"collection_efficiency": {
			Name:           "Collection Efficiency",
			MaxLevel:       5,
			BaseCost:       120,
			CostMultiplier: 1.6,
			EffectPerLevel: 1.5,
			CategoryStr:    "collection",
		},
		"cargo_magnet": {
			Name:           "Cargo Magnet",
			MaxLevel:       3,
			BaseCost:       400,
			CostMultiplier: 2.0,
			EffectPerLevel: 4,
			CategoryStr:    "magnet",
		},
		"debris_scanner": {
			Name:           "Debris Scanner",
			MaxLevel:       3,
			BaseCost:       300,
			CostMultiplier: 2.0,
			EffectPerLevel: 25,
			CategoryStr:    "scanner",
		},
		"zone_access": {
			Name:           "Zone Access",
			MaxLevel:       4,
			BaseCost:       500,
			CostMultiplier: 2.5,
			EffectPerLevel: 1,
			CategoryStr:    "zone_access",
		},
	}
}
