package command

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/astrogirlnim/salvage/internal/driver"
	"github.com/astrogirlnim/salvage/internal/game"
	"github.com/astrogirlnim/salvage/internal/messaging"
	"github.com/astrogirlnim/salvage/internal/player"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load catalogs
	catalog, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading debris catalog: %w", err)
	}
	upgrades, err := cfg.Storage.BuildUpgradeCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading upgrade catalog: %w", err)
	}

	// Load the player profile, populating defaults on first run
	profiles := cfg.Storage.BuildProfileStore()
	pm, err := player.NewManager(profiles, cfg.Player.Id, upgrades)
	if err != nil {
		return nil, fmt.Errorf("loading player profile: %w", err)
	}
	profile := pm.Profile()

	// Event bus: engine events fan out to subscribers, including the NATS
	// forwarder for external consumers
	bus := game.NewDispatcher()

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	bus.Subscribe(messaging.NewEventPublisher(natsServer).Handle)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	zone, err := game.NewZoneManager(cfg.Zone, catalog, bus, rng)
	if err != nil {
		return nil, fmt.Errorf("creating zone manager: %w", err)
	}

	ledger := game.NewLedger(upgrades, profile.Upgrades)
	engine, err := game.NewEngine(cfg.Engine, zone, catalog, ledger,
		profile.Credits, profile.Inventory, profile.Stats, bus, pm,
		game.WithRNG(rng))
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	engine.MoveTo(profile.Position)

	tickInterval, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}

	simDriver := driver.NewSimDriver(
		[]driver.Ticker{engine},
		driver.WithTickLength(tickInterval),
	)

	return service.WorkerList{
		"driver": simDriver,
		"nats":   natsServer,
	}, nil
}
