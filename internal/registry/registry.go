// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing hosts to
// discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sky-combat/internal/core"
)

// Game is the contract between a simulation and the host that pumps it.
// Games contain pure logic; hosts handle timing, input polling and pixels.
type Game interface {
	// ID returns a unique identifier for this game (e.g. "skycombat").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh session. It fails on fatal configuration
	// problems such as missing sprites.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one frame of dt seconds using the
	// key-down state in `in`.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render replays the most recent frame onto dst.
	Render(dst core.Renderer)

	// State returns the current host-visible state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
