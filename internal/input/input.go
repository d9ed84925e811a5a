package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 120 * time.Millisecond

// Controls is the directional state the simulation consumes each tick.
type Controls struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Input represents the current frame's input state.
type Input struct {
	Controls
	Quit    bool
	Space   bool
	Enter   bool
	Pressed []byte
}

// Confirm reports whether a start/acknowledge key was pressed.
func (in Input) Confirm() bool {
	return in.Space || in.Enter
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	state    keyState
	pending  []byte // Unfinished escape sequence from the last parse
	closed   bool
}

func newStream() *Stream {
	return &Stream{
		ch:     make(chan byte, 128),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream is closed when r returns an error (EOF, disconnected session).
// The goroutine exits on that error or, once Stop is called, at its next byte.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop tells the reader goroutine that nobody drains the stream any more.
// It is safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.parse(buf, now)
	in := s.snapshot(now)
	in.Pressed = buf
	return in
}

// ResetKeyInput forgets all held keys, so a key used to leave a screen does
// not leak into the next one.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// parse updates key timestamps from raw terminal bytes. A trailing ESC or
// ESC [ is held back and completed by the next call.
func (s *Stream) parse(buf []byte, now time.Time) {
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && isPartialCSI(buf[i+1:]) {
			s.pending = append([]byte(nil), buf[i:]...)
			return
		}

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		applyByteToState(&s.state, b, now)
	}
}

// isPartialCSI reports whether rest, the bytes after an ESC, could still
// become an arrow key sequence.
func isPartialCSI(rest []byte) bool {
	return len(rest) == 0 || (len(rest) == 1 && rest[0] == '[')
}

// snapshot builds input from key state; keys are "pressed" if seen within hold duration.
func (s *Stream) snapshot(now time.Time) Input {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Input{
		Controls: Controls{
			Up:    held(s.state.up),
			Down:  held(s.state.down),
			Left:  held(s.state.left),
			Right: held(s.state.right),
		},
		Quit:  held(s.state.quit),
		Space: held(s.state.space),
		Enter: held(s.state.enter),
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
