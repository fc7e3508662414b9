// Package transition selects one of the grid transition rules by tag.
package transition

import (
	"errors"
	"fmt"
	"strings"

	"weighted-ca/internal/core"
	"weighted-ca/internal/sims/hat"
	"weighted-ca/internal/sims/life"
	"weighted-ca/internal/sims/weighted"
)

// Rule names a transition rule.
type Rule uint8

const (
	// RuleWeighted runs the layered weighted-neighbourhood rule.
	RuleWeighted Rule = iota
	// RuleLife runs Conway's Game of Life.
	RuleLife
	// RuleHat runs the horizontal hat rule.
	RuleHat
)

// ErrUnknownRule indicates a rule name or value that is not recognised.
var ErrUnknownRule = errors.New("transition: unknown rule")

var ruleNames = [...]string{
	RuleWeighted: "weighted",
	RuleLife:     "life",
	RuleHat:      "hat",
}

// Rules lists every rule in declaration order.
func Rules() []Rule { return []Rule{RuleWeighted, RuleLife, RuleHat} }

// String returns the rule name.
func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("rule(%d)", uint8(r))
}

// ParseRule maps a name (case-insensitive) to a Rule.
func ParseRule(name string) (Rule, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range ruleNames {
		if n == name {
			return Rule(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Apply runs rule on g. The weighted rule uses every field of cfg; the fixed
// rules ignore it. Apply panics on an unknown rule.
func Apply(g *core.Grid, rule Rule, cfg weighted.Config) {
	switch rule {
	case RuleWeighted:
		weighted.Run(g, cfg)
	case RuleLife:
		life.Step(g)
	case RuleHat:
		hat.Step(g)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownRule, uint8(rule)))
	}
}

// Tick advances g by one automaton tick. Unlike Apply, the weighted rule runs
// a single pass whatever cfg.Iterations says.
func Tick(g *core.Grid, rule Rule, cfg weighted.Config) {
	if rule == RuleWeighted {
		weighted.Pass(g, cfg)
		return
	}
	Apply(g, rule, cfg)
}
