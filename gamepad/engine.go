package gamepad

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/event"
	"github.com/gopad/gopad/state"
)

const (
	// defaultInterval is the polling cadence.
	defaultInterval = 10 * time.Millisecond
	// defaultRecheckEvery throttles probing of slots already known
	// disconnected: they are queried only every Nth cycle, bounding how
	// long a newly attached device can go unnoticed without paying the
	// probe cost every cycle.
	defaultRecheckEvery = 100
)

// Config tunes the engine's polling loop. The zero value selects defaults.
type Config struct {
	// Interval is the sleep between poll cycles.
	Interval time.Duration `help:"Poll cadence" default:"10ms" env:"GOPAD_POLL_INTERVAL"`
	// RecheckEvery probes disconnected slots only every Nth cycle.
	RecheckEvery uint64 `help:"Probe absent slots every Nth cycle" default:"100" env:"GOPAD_RECHECK_EVERY"`
}

// Engine owns the device registry, the event queue and the background
// polling goroutine. Consumers only ever call the non-blocking NextEvent,
// Gamepad and Slots; all mutation happens on the polling goroutine.
type Engine struct {
	drv         driver.Driver
	logger      *slog.Logger
	gamepads    []*Gamepad
	notObserved *Gamepad
	queue       *eventQueue
	interval    time.Duration
	recheck     uint64
	stopOnce    sync.Once
	stopCh      chan struct{}
	done        chan struct{}
}

// New builds an engine over the driver, probes every slot once to seed the
// connection state and the prelude of Connected events, and starts the
// polling goroutine. logger may be nil.
func New(drv driver.Driver, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.RecheckEvery == 0 {
		cfg.RecheckEvery = defaultRecheckEvery
	}

	n := drv.SlotCount()
	e := &Engine{
		drv:         drv,
		logger:      logger,
		gamepads:    make([]*Gamepad, n),
		notObserved: newGamepad(-1, nil),
		interval:    cfg.Interval,
		recheck:     cfg.RecheckEvery,
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}

	// Initial probe: Connected for slots that answer, NotObserved
	// otherwise. Disconnected is never an initial state.
	prev := make([]state.Snapshot, n)
	connected := make([]bool, n)
	var prelude []event.Event
	for id := 0; id < n; id++ {
		e.gamepads[id] = newGamepad(id, drv)
		snap, err := drv.QueryRawState(id)
		if err != nil {
			continue
		}
		connected[id] = true
		prev[id] = snap
		e.gamepads[id].setConnected(drv.Describe(id))
		prelude = append(prelude, event.NewConnected(id))
	}
	e.queue = newEventQueue(prelude)

	logger.Debug("gamepad polling started",
		"slots", n, "interval", cfg.Interval, "recheck_every", cfg.RecheckEvery)
	go e.run(prev, connected)
	return e
}

// run is the polling loop. It has exclusive ownership of prev, connected and
// the per-slot status writes; events leave through the queue.
func (e *Engine) run(prev []state.Snapshot, connected []bool) {
	defer close(e.done)
	table := e.drv.Table()
	var cycle uint64

	for {
		for id := range prev {
			if !connected[id] && cycle%e.recheck != 0 {
				continue
			}

			snap, err := e.drv.QueryRawState(id)
			switch {
			case err == nil:
				if !connected[id] {
					connected[id] = true
					e.gamepads[id].setConnected(e.drv.Describe(id))
					e.queue.push(event.NewConnected(id))
					// The fresh snapshot is the baseline for the next
					// cycle; there is no previous state to diff against.
					prev[id] = snap
					continue
				}
				if snap.Counter() == prev[id].Counter() {
					continue
				}
				for _, ev := range state.Diff(id, prev[id], snap, table) {
					e.queue.push(ev)
				}
				prev[id] = snap
			case errors.Is(err, driver.ErrNotPresent):
				if connected[id] {
					connected[id] = false
					e.gamepads[id].setStatus(Disconnected)
					e.queue.push(event.NewDisconnected(id))
				}
			default:
				// Transient query failure: the device may still be there,
				// so nothing changes and the slot is retried next cycle.
			}
		}
		cycle++
		select {
		case <-e.stopCh:
			return
		case <-time.After(e.interval):
		}
	}
}

// NextEvent returns the oldest undelivered event, draining the startup
// prelude before any live event. It never blocks; ok is false when nothing
// is pending.
func (e *Engine) NextEvent() (ev event.Event, ok bool) {
	return e.queue.pop()
}

// Gamepad returns the handle for a slot index. Out-of-range indices,
// negative or huge, resolve to the shared NotObserved placeholder, so
// callers never special-case a missing device.
func (e *Engine) Gamepad(id int) *Gamepad {
	if id < 0 || id >= len(e.gamepads) {
		return e.notObserved
	}
	return e.gamepads[id]
}

// Slots returns the registry capacity; valid slot indices are [0, Slots).
func (e *Engine) Slots() int {
	return len(e.gamepads)
}

// Close signals the polling loop to stop and waits for it to exit. The core
// protocol itself has no cancellation; this is the shared-flag shutdown hook
// for the process that owns the engine.
func (e *Engine) Close() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	<-e.done
}
