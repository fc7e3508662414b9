package ui

import (
	"fmt"
	"strings"

	"weighted-ca/internal/core"
	"weighted-ca/internal/transition"
)

type statusProvider interface {
	Rule() transition.Rule
	Automaton() bool
	Generation() int
	Grid() *core.Grid
}

func helpText() string {
	var b strings.Builder
	b.WriteString("G generate  R same seed  S new seed  SPACE automaton  N tick\n")
	for i, r := range transition.Rules() {
		fmt.Fprintf(&b, "%d %s  ", i+1, r)
	}
	b.WriteString("L grid lines  H help  Q quit")
	return b.String()
}

func statusLine(p statusProvider) string {
	g := p.Grid()
	return fmt.Sprintf("rule=%s automaton=%s gen=%d pop=%d/%d",
		p.Rule(), formatBool(p.Automaton()), p.Generation(), g.Population(), g.Len()*g.Len())
}
