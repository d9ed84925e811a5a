// Package loop drives a blimp game in a terminal: it owns the tick timer,
// reads keys, steps the world and renders each frame.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/blimp/internal/draw"
	"github.com/tomz197/blimp/internal/input"
	"github.com/tomz197/blimp/internal/loop/config"
	"github.com/tomz197/blimp/internal/world"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *zap.Logger
	Seed         int64 // Zero picks a seed from the clock
	TickRate     int   // Ticks per second; zero means config.TickRate
}

// Session is one player's game on one terminal.
type Session struct {
	game         *world.GameState
	phase        Phase
	last         world.GameOver
	best         int
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates a frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	input        input.Input
	termSizeFunc draw.TermSizeFunc
	tickTime     time.Duration
	log          *zap.Logger
	lastInput    time.Time
	isInactive   bool
	running      bool
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	s, err := newSession(w, opts)
	if err != nil {
		return nil, err
	}
	s.inputStream = input.StartStream(r)
	return s, nil
}

func newSession(w io.Writer, opts Options) (*Session, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		phase:        PhaseStart,
		writer:       w,
		termSizeFunc: termSizeFunc,
		tickTime:     config.TickInterval(opts.TickRate),
		log:          log.With(zap.Int64("seed", seed)),
		lastInput:    time.Now(),
		running:      true,
	}

	game, err := world.New(config.FieldWidth, config.FieldHeight, world.Options{
		Rand:       rand.New(rand.NewSource(seed)),
		OnGameOver: s.gameOver,
	})
	if err != nil {
		return nil, err
	}
	s.game = game

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	s.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, config.FieldWidth, config.FieldHeight)
	s.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)

	return s, nil
}

// Run starts the session loop. Blocks until the player quits, the input
// closes, ctx is cancelled or a write fails.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	s.log.Info("session started", zap.Duration("tick", s.tickTime))
	defer func() {
		s.log.Info("session ended", zap.Int("best", s.best))
	}()

	if s.inputStream != nil {
		defer s.inputStream.Stop()
	}

	ticker := time.NewTicker(s.tickTime)
	defer ticker.Stop()

	for s.running {
		if err := s.tick(); err != nil {
			return err
		}
		if !s.running {
			break
		}
		select {
		case <-ctx.Done():
			s.running = false
		case <-ticker.C:
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// tick runs one input, update, draw cycle.
func (s *Session) tick() error {
	s.processInput(input.ReadInput(s.inputStream), time.Now())
	if !s.running {
		return nil
	}
	s.updateScreen()
	s.update()
	return s.drawFrame()
}

// processInput records the key snapshot and handles quitting and inactivity.
func (s *Session) processInput(in input.Input, now time.Time) {
	s.input = in

	if len(in.Pressed) > 0 {
		s.lastInput = now
		s.isInactive = false
	} else if idle := now.Sub(s.lastInput).Seconds(); idle > config.InactivityDisconnectUser {
		s.log.Info("disconnecting inactive player")
		s.running = false
	} else if idle > config.InactivityWarnUser {
		s.isInactive = true
	}

	if in.Quit || (s.inputStream != nil && s.inputStream.Closed()) {
		s.running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	s.canvas.Resize(renderWidth, renderHeight)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(termWidth, 1)
	renderHeight = max(termHeight, 1)
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// update advances the current phase.
func (s *Session) update() {
	switch s.phase {
	case PhaseStart, PhaseGameOver:
		if s.input.Confirm() {
			s.startGame()
		}
	case PhasePlaying:
		rep := s.game.Step(s.input.Controls)
		if rep.Delivered {
			s.log.Debug("cargo delivered", zap.Int("score", s.game.Score), zap.Int("tick", s.game.Tick))
		}
		if rep.Spawned {
			s.log.Debug("drone launched", zap.Int("drones", len(s.game.Drones)))
		}
	}
}

// startGame starts or restarts the game.
func (s *Session) startGame() {
	input.ResetKeyInput(s.inputStream)
	if s.phase != PhaseStart {
		s.game.Reset()
	}
	s.phase = PhasePlaying
}

// gameOver is called by the world once per crash.
func (s *Session) gameOver(result world.GameOver) {
	s.last = result
	s.best = max(s.best, result.Score)
	s.phase = PhaseGameOver
	s.log.Info("game over",
		zap.Int("score", result.Score),
		zap.Int("tick", result.Tick),
		zap.String("state", fmt.Sprintf("%016x", s.game.Fingerprint())),
	)
}

// Run plays a session on r and w until it ends.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s, err := NewSession(r, w, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
