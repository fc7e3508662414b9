package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighted-ca/internal/core"
	"weighted-ca/internal/transition"
)

type fakeController struct {
	generated int
	automaton bool
	rule      transition.Rule
}

func (f *fakeController) Generate()                   { f.generated++ }
func (f *fakeController) Tick()                       {}
func (f *fakeController) SetRule(r transition.Rule)   { f.rule = r }
func (f *fakeController) Automaton() bool             { return f.automaton }
func (f *fakeController) SetAutomaton(on bool)        { f.automaton = on }
func (f *fakeController) TickInterval() time.Duration { return time.Hour }

func TestGenerateRestartsTicker(t *testing.T) {
	ctrl := &fakeController{}
	ticker := core.NewFixedInterval(ctrl.TickInterval())

	generate(ctrl, ticker)
	assert.Equal(t, 1, ctrl.generated)
	assert.False(t, ticker.ShouldStep(), "a fresh map waits a full interval before ticking")
}

func TestToggleAutomatonRestartsTicker(t *testing.T) {
	ctrl := &fakeController{}
	ticker := core.NewFixedInterval(ctrl.TickInterval())

	toggleAutomaton(ctrl, ticker)
	assert.True(t, ctrl.automaton)
	assert.False(t, ticker.ShouldStep())

	toggleAutomaton(ctrl, ticker)
	assert.False(t, ctrl.automaton)
}

func TestRuleForSlotFollowsRuleOrder(t *testing.T) {
	for i, want := range transition.Rules() {
		got, ok := ruleForSlot(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := ruleForSlot(len(transition.Rules()))
	assert.False(t, ok)
	_, ok = ruleForSlot(-1)
	assert.False(t, ok)
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(core.Size{W: 80, H: 80}, 10, 240, 500)
	assert.Equal(t, 1040, w)
	assert.Equal(t, 800, h)

	w, h = windowSize(core.Size{W: 40, H: 40}, 10, 240, 500)
	assert.Equal(t, 640, w)
	assert.Equal(t, 500, h, "the HUD sets a floor on the height")

	w, h = windowSize(core.Size{W: 40, H: 40}, 10, 0, 0)
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)
}
