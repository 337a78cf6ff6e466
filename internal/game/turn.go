package game

import "fmt"

// Phase represents the states of the match state machine.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseStartTurn
	PhaseAction
	PhaseEndTurn
	PhaseTerminal
)

var phaseNames = map[Phase]string{
	PhaseInit:      "INIT",
	PhaseStartTurn: "START_TURN",
	PhaseAction:    "ACTION",
	PhaseEndTurn:   "END_TURN",
	PhaseTerminal:  "TERMINAL",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}
