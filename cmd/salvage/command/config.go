package command

import (
	"fmt"
	"time"

	"github.com/astrogirlnim/salvage/internal/game"
	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string            `json:"tick_interval"`
	Storage      StorageConfig     `json:"storage"`
	Nats         NatsConfig        `json:"nats"`
	Zone         game.ZoneConfig   `json:"zone"`
	Engine       game.EngineConfig `json:"engine"`
	Player       PlayerConfig      `json:"player"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("tick_interval must be positive"))
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Zone.Validate())
	el.Add(c.Engine.Validate())
	el.Add(c.Player.validate())

	return el.Err()
}

type PlayerConfig struct {
	Id string `json:"id"`
}

func (c *PlayerConfig) validate() error {
	el := errors.NewErrorList()

	if c.Id == "" {
		el.Add(fmt.Errorf("player id is required"))
	}

	return el.Err()
}
