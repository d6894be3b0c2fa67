package pet

import (
	"log"
	"time"
)

// Status is the outcome of a decay tick.
type Status int

const (
	Alive Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "alive"
}

// Tick applies the decay accumulated since LastUpdate. Nothing changes until a
// full minute has passed, so repeated calls within a minute are no-ops.
// LastUpdate only advances while the pet is still alive.
func (p *Pet) Tick(now time.Time) Status {
	minutes := now.Sub(p.LastUpdate).Seconds() / 60
	if minutes < 1 {
		return Alive
	}

	decay := int(minutes)
	addStat(&p.Hunger, -HungerDecayPerMinute*decay)
	addStat(&p.Energy, -EnergyDecayPerMinute*decay)
	addStat(&p.Happiness, -HappinessDecayPerMinute*decay)

	log.Printf("Decay of %d minute(s): hunger %d, energy %d, happiness %d", decay, p.Hunger, p.Energy, p.Happiness)

	switch p.zeroStats() {
	case 0:
		p.Sick = false
	case 1:
		if !p.Sick {
			log.Printf("%s got sick", p.Name)
		}
		p.Sick = true
	default:
		p.Sick = false
		log.Printf("%s ran away", p.Name)
		return GameOver
	}
	p.LastUpdate = now
	return Alive
}
