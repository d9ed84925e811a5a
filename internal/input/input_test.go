package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseMapsKeysToControls(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  Controls
	}{
		{"wasd left", "a", Controls{Left: true}},
		{"wasd right", "D", Controls{Right: true}},
		{"wasd up", "w", Controls{Up: true}},
		{"wasd down", "s", Controls{Down: true}},
		{"vim-ish keys", "jlik", Controls{Left: true, Right: true, Up: true, Down: true}},
		{"arrow up", "\x1b[A", Controls{Up: true}},
		{"arrow down", "\x1b[B", Controls{Down: true}},
		{"arrow right", "\x1b[C", Controls{Right: true}},
		{"arrow left", "\x1b[D", Controls{Left: true}},
		{"combination", "wd", Controls{Up: true, Right: true}},
		{"unknown bytes", "xyz", Controls{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			now := time.Now()
			s.parse([]byte(tt.bytes), now)
			if got := s.snapshot(now).Controls; got != tt.want {
				t.Fatalf("controls = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestArrowSequenceIsNotEscape(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.parse([]byte("\x1b[A"), now)
	in := s.snapshot(now)
	if in.Quit || in.Confirm() {
		t.Fatalf("arrow sequence produced extra keys: %+v", in)
	}
}

func TestKeysExpireAfterHoldDuration(t *testing.T) {
	s := newStream()
	pressed := time.Now()
	s.parse([]byte("a "), pressed)

	if in := s.snapshot(pressed.Add(keyHoldDuration / 2)); !in.Left || !in.Space {
		t.Fatalf("keys released too early: %+v", in)
	}
	if in := s.snapshot(pressed.Add(keyHoldDuration)); in.Left || in.Space {
		t.Fatalf("keys still held after hold duration: %+v", in)
	}
}

func TestQuitAndConfirm(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.parse([]byte("q\r"), now)
	in := s.snapshot(now)
	if !in.Quit {
		t.Fatalf("q did not set quit")
	}
	if !in.Enter || !in.Confirm() {
		t.Fatalf("carriage return did not confirm")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.parse([]byte("wasd "), now)
	ResetKeyInput(s)
	if in := s.snapshot(now); in.Controls != (Controls{}) || in.Space {
		t.Fatalf("state not cleared: %+v", in)
	}
	ResetKeyInput(nil)
}

func TestReadInputDetectsClosedReader(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	deadline := time.Now().Add(2 * time.Second)
	var sawRight bool
	for !s.Closed() {
		if time.Now().After(deadline) {
			t.Fatalf("stream never reported closed")
		}
		in := ReadInput(s)
		sawRight = sawRight || in.Right
		time.Sleep(time.Millisecond)
	}
	if !sawRight {
		t.Fatalf("byte read before EOF was lost")
	}
}

func TestArrowSplitAcrossReads(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  Controls
	}{
		{"after bracket", []string{"\x1b[", "A"}, Controls{Up: true}},
		{"after escape", []string{"\x1b", "[D"}, Controls{Left: true}},
		{"escape then key", []string{"w\x1b", "a"}, Controls{Up: true, Left: true}},
		{"empty read between", []string{"\x1b[", "", "C"}, Controls{Right: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			now := time.Now()
			for _, p := range tt.parts {
				s.parse([]byte(p), now)
			}
			if got := s.snapshot(now).Controls; got != tt.want {
				t.Fatalf("controls = %+v, want %+v", got, tt.want)
			}
			if len(s.pending) != 0 {
				t.Fatalf("pending = %q after complete sequence", s.pending)
			}
		})
	}
}

func TestPartialArrowHoldsNoKey(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.parse([]byte("\x1b["), now)
	if in := s.snapshot(now); in.Controls != (Controls{}) || in.Quit || in.Confirm() {
		t.Fatalf("partial sequence produced keys: %+v", in)
	}
}

func TestStopReleasesBlockedReader(t *testing.T) {
	// More bytes than the channel buffers, and nothing drains them.
	s := StartStream(bufio.NewReader(strings.NewReader(strings.Repeat("w", 1024))))
	s.Stop()
	s.Stop()

	select {
	case <-s.exited:
	case <-time.After(2 * time.Second):
		t.Fatalf("reader goroutine still blocked after Stop")
	}
}
