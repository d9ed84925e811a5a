package world

import "github.com/tomz197/blimp/internal/object"

// Report summarises what happened during a tick.
type Report struct {
	Spawned   bool
	PickedUp  bool
	Delivered bool
	Crashed   bool
}

// Step advances the game by one tick using the held controls. It does
// nothing once the game has ended.
func (g *GameState) Step(c object.Controls) Report {
	var rep Report
	if !g.Running {
		return rep
	}
	g.Tick++

	g.Player.Steer(c)

	ctx := object.UpdateContext{
		Field:  g.Field,
		Rand:   g.rng,
		Player: g.Player.Body(),
		Cargo:  g.Cargo,
	}

	for _, a := range []object.Actor{g.Floor, g.Carrier, g.Player, g.Cargo} {
		g.apply(a.Update(ctx), &rep)
	}

	if d := g.spawner.Spawn(g.rng, g.Field); d != nil {
		g.Drones = append(g.Drones, d)
		rep.Spawned = true
	}

	for _, d := range g.Drones {
		if d.Update(ctx) == object.OutcomeCrash {
			g.crash(&rep)
			return rep
		}
	}
	return rep
}

func (g *GameState) apply(out object.Outcome, rep *Report) {
	switch out {
	case object.OutcomePickup:
		rep.PickedUp = true
	case object.OutcomeDelivered:
		g.Score++
		rep.Delivered = true
	case object.OutcomeCrash:
		g.crash(rep)
	}
}

func (g *GameState) crash(rep *Report) {
	rep.Crashed = true
	if !g.Running {
		return
	}
	g.Running = false
	if g.onGameOver != nil {
		g.onGameOver(g.Result())
	}
}
