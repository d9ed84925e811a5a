package object

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/tomz197/blimp/internal/draw"
	"github.com/tomz197/blimp/internal/physics"
)

var testField = physics.Field{Width: 720, Height: 540}

type fakeText struct {
	lines []string
}

func (f *fakeText) WriteAt(col, row int, s string) {
	f.lines = append(f.lines, s)
}

func TestBlimpSteer(t *testing.T) {
	tests := []struct {
		name   string
		c      Controls
		ax, ay float64
	}{
		{"idle", Controls{}, 0, 0},
		{"left", Controls{Left: true}, -BlimpThrustX, 0},
		{"right", Controls{Right: true}, BlimpThrustX, 0},
		{"up", Controls{Up: true}, 0, -BlimpThrustY},
		{"down", Controls{Down: true}, 0, BlimpThrustY},
		{"left and right", Controls{Left: true, Right: true}, BlimpThrustX, 0},
		{"up and down", Controls{Up: true, Down: true}, 0, BlimpThrustY},
		{"diagonal", Controls{Up: true, Left: true}, -BlimpThrustX, -BlimpThrustY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBlimp(100, 100)
			b.Body().AX, b.Body().AY = 5, 5 // stale acceleration must be cleared
			b.Steer(tt.c)
			if b.Body().AX != tt.ax || b.Body().AY != tt.ay {
				t.Fatalf("acceleration = (%v,%v), want (%v,%v)", b.Body().AX, b.Body().AY, tt.ax, tt.ay)
			}
		})
	}
}

func TestBlimpBouncesOffLeftEdge(t *testing.T) {
	b := NewBlimp(-5, 100)
	b.Body().DX = -2
	b.Update(UpdateContext{Field: testField})

	if b.Body().DX <= 0 {
		t.Fatalf("dx = %v, want positive after bounce", b.Body().DX)
	}
	if b.Body().X != 1 {
		t.Fatalf("x = %v, want 1", b.Body().X)
	}
}

func TestBlimpFacing(t *testing.T) {
	b := NewBlimp(100, 100)
	if b.Facing() != FacingRight {
		t.Fatalf("blimp at rest should face right")
	}
	b.Body().DX = -0.5
	if b.Facing() != FacingLeft {
		t.Fatalf("blimp moving left should face left")
	}
}

func TestDroneDriftsRight(t *testing.T) {
	d := NewDrone(10, 100)
	d.ChangeProb = 0
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		if out := d.Update(UpdateContext{Field: testField, Rand: rng}); out != OutcomeNone {
			t.Fatalf("unexpected outcome %v", out)
		}
	}
	if d.Body().X != 20 || d.Body().Y != 100 {
		t.Fatalf("drone at (%v,%v), want (20,100)", d.Body().X, d.Body().Y)
	}
}

func TestDroneRerollsClimbWithinRange(t *testing.T) {
	d := NewDrone(100, 200)
	d.ChangeProb = 1
	rng := rand.New(rand.NewSource(9))
	seen := false
	for i := 0; i < 100; i++ {
		d.Update(UpdateContext{Field: testField, Rand: rng})
		if math.Abs(d.Body().DY) > DroneMaxClimb {
			t.Fatalf("dy = %v outside ±%v", d.Body().DY, DroneMaxClimb)
		}
		if d.Body().DY != 0 {
			seen = true
		}
	}
	if !seen {
		t.Fatalf("vertical speed never changed")
	}
}

func TestDroneReportsCrash(t *testing.T) {
	player := NewBlimp(100, 100)
	d := NewDrone(90, 110)
	d.ChangeProb = 0
	out := d.Update(UpdateContext{Field: testField, Player: player.Body()})
	if out != OutcomeCrash {
		t.Fatalf("outcome = %v, want crash", out)
	}
}

func TestCargoPickup(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	c := NewCargo(50, testField.Height-FloorHeight-CargoSize)
	player := NewBlimp(40, c.Body().Y-10)

	out := c.Update(UpdateContext{Field: testField, Rand: rng, Player: player.Body()})
	if out != OutcomePickup {
		t.Fatalf("outcome = %v, want pickup", out)
	}
	if c.OnGround {
		t.Fatalf("cargo still on ground after pickup")
	}
	b := c.Body()
	if b.X < CargoMargin || b.Right() > testField.Width {
		t.Fatalf("drop x = %v outside field", b.X)
	}
	if b.Y > testField.Height-CargoMargin || b.Y < testField.Height-CargoMargin-CargoDropDepth {
		t.Fatalf("drop y = %v outside drop band", b.Y)
	}
}

func TestCargoIgnoresPlayerWhileCarried(t *testing.T) {
	c := NewCargo(50, 50)
	c.OnGround = false
	player := NewBlimp(50, 50)
	if out := c.Update(UpdateContext{Field: testField, Player: player.Body()}); out != OutcomeNone {
		t.Fatalf("outcome = %v, want none", out)
	}
	if c.Body().X != 50 || c.Body().Y != 50 {
		t.Fatalf("carried cargo moved")
	}
}

func TestCarrierDelivery(t *testing.T) {
	player := NewBlimp(50, 50)
	carrier := NewCarrier(50, 50)
	cargo := NewCargo(300, 300)
	ctx := UpdateContext{Field: testField, Player: player.Body(), Cargo: cargo}

	if out := carrier.Update(ctx); out != OutcomeNone {
		t.Fatalf("delivered cargo that was on the ground: %v", out)
	}

	cargo.OnGround = false
	if out := carrier.Update(ctx); out != OutcomeDelivered {
		t.Fatalf("outcome = %v, want delivered", out)
	}
	if !cargo.OnGround {
		t.Fatalf("cargo not back on ground after delivery")
	}
	if out := carrier.Update(ctx); out != OutcomeNone {
		t.Fatalf("second delivery of the same cargo: %v", out)
	}
}

func TestCarrierNeedsContact(t *testing.T) {
	player := NewBlimp(300, 300)
	carrier := NewCarrier(testField.Width-CarrierWidth, 0)
	cargo := NewCargo(50, 50)
	cargo.OnGround = false
	out := carrier.Update(UpdateContext{Field: testField, Player: player.Body(), Cargo: cargo})
	if out != OutcomeNone || cargo.OnGround {
		t.Fatalf("delivered without contact")
	}
}

func TestDroneSpawnerRate(t *testing.T) {
	s := NewDroneSpawner(DroneSpawnProb)
	rng := rand.New(rand.NewSource(2024))
	const n = 1_000_000
	spawned := 0
	for i := 0; i < n; i++ {
		d := s.Spawn(rng, testField)
		if d == nil {
			continue
		}
		spawned++
		if d.Body().X != 0 {
			t.Fatalf("drone spawned at x=%v, want left edge", d.Body().X)
		}
		if d.Body().Y < 0 || d.Body().Y >= testField.Height-FloorHeight {
			t.Fatalf("drone spawned at y=%v outside sky", d.Body().Y)
		}
	}
	want := n * DroneSpawnProb
	sigma := math.Sqrt(n * DroneSpawnProb * (1 - DroneSpawnProb))
	if math.Abs(float64(spawned)-want) > 5*sigma {
		t.Fatalf("spawned %d drones in %d ticks, want about %v", spawned, n, want)
	}
}

func TestDroneSpawnerClampsProbability(t *testing.T) {
	if p := NewDroneSpawner(-1).Prob(); p != 0 {
		t.Fatalf("prob = %v, want 0", p)
	}
	if p := NewDroneSpawner(3).Prob(); p != 1 {
		t.Fatalf("prob = %v, want 1", p)
	}
	rng := rand.New(rand.NewSource(1))
	if NewDroneSpawner(0).Spawn(rng, testField) != nil {
		t.Fatalf("zero-probability spawner spawned")
	}
	if NewDroneSpawner(1).Spawn(rng, testField) == nil {
		t.Fatalf("certain spawner did not spawn")
	}
}

func TestActorsDraw(t *testing.T) {
	canvas := draw.NewScaledCanvas(72, 27, testField.Width, testField.Height)
	text := &fakeText{}
	ctx := DrawContext{Canvas: canvas, Text: text, Score: 12}

	carried := NewCargo(50, 50)
	carried.OnGround = false
	moving := NewBlimp(200, 200)
	moving.Body().DX = -1

	actors := []Actor{
		NewFloor(testField),
		NewCarrier(testField.Width-CarrierWidth, 0),
		NewBlimp(200, 200),
		moving,
		NewCargo(50, 458),
		carried,
		NewDrone(10, 10),
	}
	for _, a := range actors {
		if err := a.Draw(ctx); err != nil {
			t.Fatalf("%T.Draw: %v", a, err)
		}
	}
	if len(text.lines) != 1 || text.lines[0] != "12" {
		t.Fatalf("score text = %v, want [12]", text.lines)
	}

	var out strings.Builder
	cw := draw.NewChunkWriter(&out, 0, 0)
	canvas.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("nothing rendered")
	}
}

func TestTextSkipsEmptyValue(t *testing.T) {
	canvas := draw.NewScaledCanvas(10, 5, 10, 10)
	text := &fakeText{}
	if err := (Text{X: 1, Y: 1}).Draw(DrawContext{Canvas: canvas, Text: text}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(text.lines) != 0 {
		t.Fatalf("empty text written: %v", text.lines)
	}
}
