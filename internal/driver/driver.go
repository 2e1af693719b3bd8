package driver

import (
	"context"
	"time"
)

const (
	DefaultTickLength = time.Millisecond * 250
)

// Ticker is implemented by managers that advance simulation state. dt is the
// time elapsed since the manager was last ticked.
type Ticker interface {
	Tick(ctx context.Context, dt time.Duration) error
}

type SimDriver struct {
	tickLength time.Duration
	handlers   []Ticker

	lastTick time.Time
}

func NewSimDriver(h []Ticker, opts ...SimDriverOpt) *SimDriver {
	d := &SimDriver{
		tickLength: DefaultTickLength,
		handlers:   h,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *SimDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	d.lastTick = time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(d.lastTick)
			d.lastTick = now

			err := d.Tick(ctx, dt)
			if err != nil {
				return err
			}
		}
	}
}

func (d *SimDriver) Tick(ctx context.Context, dt time.Duration) error {
	for _, m := range d.handlers {
		err := m.Tick(ctx, dt)
		if err != nil {
			return err
		}
	}
	return nil
}
