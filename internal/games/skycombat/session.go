package skycombat

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
)

const (
	spritePlayer core.SpriteID = "player"
	spriteEnemy  core.SpriteID = "enemy"
)

// Session holds what outlives a single game: configuration, sprites and
// the seed stream every new game draws from.
type Session struct {
	cfg    config.SkyCombatConfig
	bank   *core.SpriteBank
	seeds  *core.Rand
	logger *log.Logger
	games  int
}

// NewSession validates the configuration and the sprites the scenes need.
// A nil logger discards output.
func NewSession(cfg config.SkyCombatConfig, bank *core.SpriteBank, seed uint64, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("skycombat: %w", err)
	}
	if bank == nil {
		return nil, fmt.Errorf("skycombat: %w: no sprite bank", core.ErrMissingSprite)
	}
	if err := bank.Require(spritePlayer, spriteEnemy); err != nil {
		return nil, fmt.Errorf("skycombat: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:    cfg,
		bank:   bank,
		seeds:  core.NewRand(seed),
		logger: logger,
	}, nil
}

// Config returns the session configuration.
func (s *Session) Config() config.SkyCombatConfig {
	return s.cfg
}

// Games returns how many games have been started.
func (s *Session) Games() int {
	return s.games
}

// NewGame starts a fresh game with a full-health player and empty world.
func (s *Session) NewGame() *Game {
	s.games++
	seed := s.seeds.Uint64()
	s.logger.Debug("new game", "number", s.games, "seed", seed)
	return newGame(s, seed)
}

// NewGameOver creates the final score scene.
func (s *Session) NewGameOver(score uint64) *GameOver {
	return &GameOver{session: s, score: score}
}

// sprite returns a sprite known to exist since NewSession checked it.
func (s *Session) sprite(id core.SpriteID) core.Sprite {
	sp, _ := s.bank.Get(id)
	return sp
}
