package app

import (
	"time"

	"weighted-ca/internal/core"
	"weighted-ca/internal/transition"
)

// controller is the orchestrator surface the key bindings drive.
type controller interface {
	Generate()
	Tick()
	SetRule(transition.Rule)
	Automaton() bool
	SetAutomaton(bool)
	TickInterval() time.Duration
}

// generate regenerates the map and restarts the automaton clock.
func generate(ctrl controller, ticker *core.FixedStep) {
	ctrl.Generate()
	ticker.Reset()
}

// toggleAutomaton flips the automaton and restarts the clock.
func toggleAutomaton(ctrl controller, ticker *core.FixedStep) {
	ctrl.SetAutomaton(!ctrl.Automaton())
	ticker.Reset()
}

// ruleForSlot maps the zero-based digit slot (key 1 is slot 0) to a rule.
func ruleForSlot(slot int) (transition.Rule, bool) {
	rules := transition.Rules()
	if slot < 0 || slot >= len(rules) {
		return 0, false
	}
	return rules[slot], true
}

// windowSize returns the logical screen size for a grid drawn at scale next
// to a HUD panel.
func windowSize(s core.Size, scale, hudWidth, hudHeight int) (int, int) {
	w := s.W*scale + hudWidth
	h := s.H * scale
	if h < hudHeight {
		h = hudHeight
	}
	return w, h
}
