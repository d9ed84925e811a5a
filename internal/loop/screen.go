package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/blimp/internal/draw"
	"github.com/tomz197/blimp/internal/loop/config"
	"github.com/tomz197/blimp/internal/object"
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// Render skips empty cells
	draw.ClearScreen(s.chunkWriter)
	s.canvas.Clear()

	ctx := object.DrawContext{
		Canvas: s.canvas,
		Text:   s.chunkWriter,
		Score:  s.game.Score,
	}

	if s.phase != PhaseStart {
		for _, a := range s.game.Actors() {
			if err := a.Draw(ctx); err != nil {
				return err
			}
		}
	}

	// Render canvas to terminal
	s.canvas.Render(s.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	s.canvas.RenderBorder(s.chunkWriter)

	s.drawUI()

	return s.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current phase.
func (s *Session) drawUI() {
	termWidth := s.canvas.Columns()
	termHeight := s.canvas.Rows()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	switch s.phase {
	case PhaseStart:
		s.drawStartScreen(centerX, centerY)
	case PhasePlaying:
		s.drawPlayingHUD(termWidth, termHeight)
	case PhaseGameOver:
		s.drawGameOverScreen(centerX, centerY)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	cw := s.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(s.lastInput).Seconds()),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ _    ___ __  __ ___  `,
		` | _ ) |  |_ _|  \/  | _ \ `,
		` | _ \ |__ | || |\/| |  _/ `,
		` |___/____|___|_|  |_|_|   `,
		`                           `,
	}
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := s.chunkWriter
	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	subtitle := "~ Pick up the crate, fly it to the carrier, dodge the drones ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"W S / Up Down  . . Climb, sink",
		"A D / < >  . . . . Left, right",
		"Q  . . . . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Start  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
	}
}

// drawPlayingHUD draws the in-game HUD. The score itself is painted by the carrier.
func (s *Session) drawPlayingHUD(termWidth, termHeight int) {
	cw := s.chunkWriter

	bestText := fmt.Sprintf("Best: %-6d", max(s.best, s.game.Score))
	cw.WriteAt(2, 1, bestText)

	dronesText := fmt.Sprintf("Drones: %-4d", len(s.game.Drones))
	cw.WriteAt(2, termHeight, dronesText)

	if !s.game.Cargo.OnGround {
		carrying := "CARRYING"
		cw.WriteAt(termWidth-len(carrying)-1, termHeight, carrying)
	}
}

// drawGameOverScreen draws the crash screen.
func (s *Session) drawGameOverScreen(centerX, centerY int) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := s.chunkWriter
	titleStartY := centerY - 6
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	scoreText := fmt.Sprintf("Delivered: %d", s.last.Score)
	cw.WriteAt(centerX-len(scoreText)/2, titleStartY+len(titleArt)+1, scoreText)

	timeText := fmt.Sprintf("Airborne for %.1f seconds", float64(s.last.Tick)*s.tickTime.Seconds())
	cw.WriteAt(centerX-len(timeText)/2, titleStartY+len(titleArt)+2, timeText)

	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Restart  <<"
		cw.WriteAt(centerX-len(prompt)/2, titleStartY+len(titleArt)+4, prompt)
	}
}
