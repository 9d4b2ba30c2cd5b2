package audit

import (
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	warn   *zap.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(logger *Logger, warn *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		warn:   warn,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		d.logger.Log(ev)
	}
}

// Dispatch never blocks: a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.warn.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
			zap.String("entity_id", ev.EntityID))
	}
}

// Close stops accepting events and waits for the queue to drain.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
