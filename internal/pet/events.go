package pet

import "log"

// Ambient event type constants
const (
	EventBalloon = "balloon"
	EventLearned = "learned"
	EventSleepy  = "sleepy"
	EventPeckish = "peckish"
)

// AmbientEvent is a small flavor event that happens on its own.
type AmbientEvent struct {
	Type    string
	Message string
	Apply   func(p *Pet)
}

// AmbientEvents returns the events that can fire between turns.
func AmbientEvents() []AmbientEvent {
	return []AmbientEvent{
		{
			Type:    EventBalloon,
			Message: "🎈 I found a balloon! +happiness",
			Apply:   func(p *Pet) { addStat(&p.Happiness, 10) },
		},
		{
			Type:    EventLearned,
			Message: "🌟 I learned something new! +intelligence",
			Apply:   func(p *Pet) { addStat(&p.Intelligence, 5) },
		},
		{
			Type:    EventSleepy,
			Message: "😴 I feel sleepy... -energy",
			Apply:   func(p *Pet) { addStat(&p.Energy, -10) },
		},
		{
			Type:    EventPeckish,
			Message: "🍎 I'm getting hungry... -hunger",
			Apply:   func(p *Pet) { addStat(&p.Hunger, -10) },
		},
	}
}

// RandomEvent fires an ambient event with a small probability. The returned
// bool is false when nothing happened.
func (p *Pet) RandomEvent(rng Rand) (AmbientEvent, bool) {
	if rng.Float64() >= AmbientEventChance {
		return AmbientEvent{}, false
	}

	events := AmbientEvents()
	ev := events[rng.Intn(len(events))]
	ev.Apply(p)
	log.Printf("Event triggered: %s", ev.Type)
	return ev, true
}
