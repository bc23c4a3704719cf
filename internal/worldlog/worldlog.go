// Package worldlog provides the turn/event logger threaded through the
// simulation. It mirrors the teacher's ecosystem.SimulationLogger in
// shape (leveled, structured, zerolog-backed) but drops the dual file+DB
// output: update() is specified as infallible and non-blocking, so a
// turn must never wait on I/O or spawn a goroutine per event.
package worldlog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger scoped to one World.
type Logger struct {
	z zerolog.Logger
}

// New builds a console-backed logger. Passing seed lets every log line
// carry it, which makes grepping a single run's turns trivial.
func New(seed uint32) *Logger {
	z := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Uint32("seed", seed).
		Logger()
	return &Logger{z: z}
}

// Discard returns a logger that writes nowhere, for tests and library
// embedding where the caller doesn't want console noise.
func Discard() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// Turn logs a turn boundary.
func (l *Logger) Turn(turn int) {
	if l == nil {
		return
	}
	l.z.Debug().Int("turn", turn).Msg("turn advanced")
}

// Event logs a spawned hazard event.
func (l *Logger) Event(turn int, kind string, x, y int, duration int) {
	if l == nil {
		return
	}
	l.z.Info().
		Int("turn", turn).
		Str("event", kind).
		Int("x", x).
		Int("y", y).
		Int("duration", duration).
		Msg("event spawned")
}

// Government logs a faction's government formation.
func (l *Logger) Government(factionID int, title string, harshness, fertility float32) {
	if l == nil {
		return
	}
	l.z.Info().
		Int("faction_id", factionID).
		Str("title", title).
		Float32("harshness", harshness).
		Float32("fertility", fertility).
		Msg("government formed")
}

// Diplomacy logs a relationship shift.
func (l *Logger) Diplomacy(i, j int, from, to string) {
	if l == nil {
		return
	}
	l.z.Debug().
		Int("faction_i", i).
		Int("faction_j", j).
		Str("from", from).
		Str("to", to).
		Msg("diplomacy shifted")
}
