package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Mode decides what an interrupt does
type Mode int32

const (
	// Kill exits the program
	Kill Mode = iota
	// Ignore drops the interrupt, leaving it to a running child process
	Ignore
)

func (m Mode) String() string {
	switch m {
	case Kill:
		return "kill"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Guard receives interrupts for the whole process and handles them
// according to its current mode. It is owned by the caller and passed to
// whatever needs to change the mode.
type Guard struct {
	mode   atomic.Int32
	onKill func()

	signals  chan os.Signal
	done     chan struct{}
	stopOnce sync.Once
	release  func()
}

// New starts a guard in Kill mode that exits with status 1 on interrupt
func New() *Guard {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	g := newGuard(signals, func() { os.Exit(1) })
	g.release = func() { signal.Stop(signals) }
	return g
}

func newGuard(signals chan os.Signal, onKill func()) *Guard {
	g := &Guard{
		onKill:  onKill,
		signals: signals,
		done:    make(chan struct{}),
		release: func() {},
	}
	g.mode.Store(int32(Kill))
	go g.loop()
	return g
}

func (g *Guard) loop() {
	for {
		select {
		case sig := <-g.signals:
			g.handle(sig)
		case <-g.done:
			return
		}
	}
}

func (g *Guard) handle(sig os.Signal) {
	mode := g.Mode()
	log.Debug("interrupt: received", "signal", sig, "mode", mode)
	if mode == Kill {
		g.onKill()
	}
}

// Mode returns the current mode
func (g *Guard) Mode() Mode {
	return Mode(g.mode.Load())
}

// Set changes the mode
func (g *Guard) Set(mode Mode) {
	g.mode.Store(int32(mode))
}

// Enter switches to mode and returns a func restoring the previous one
func (g *Guard) Enter(mode Mode) (restore func()) {
	prev := Mode(g.mode.Swap(int32(mode)))
	return func() { g.Set(prev) }
}

// Stop stops receiving interrupts; they get their default behavior back
func (g *Guard) Stop() {
	g.stopOnce.Do(func() {
		g.release()
		close(g.done)
	})
}
