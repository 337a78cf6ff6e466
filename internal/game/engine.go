package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pocketcg/battlesim/internal/game/energy"
	"go.uber.org/zap"
)

// AttackResult reports the outcome of one attack resolution.
type AttackResult struct {
	Success     bool
	DamageDealt int
	EffectText  string
}

// Result is what a simulated match returns to the caller. WinnerName is
// empty when the match ended in a tie. Log is the narrative match log, one
// line per notable event; how it is rendered is not the engine's concern.
type Result struct {
	WinnerName  string
	Turns       int
	PrizesLeftA int
	PrizesLeftB int
	Log         []string
}

// BattleEngine owns two players and drives one match through the
// INIT → START_TURN → ACTION → END_TURN loop until a terminal state.
// An engine instance is single-use and not safe for concurrent access;
// every match gets its own engine and its own injected RNG.
type BattleEngine struct {
	matchID string
	logger  *zap.Logger
	rng     *rand.Rand

	players   [2]*Player
	current   int // index into players; the opponent is 1-current
	phase     Phase
	turn      int
	firstTurn bool
	gameOver  bool
	winner    *Player

	log      []string
	recorder *ReplayRecorder
}

// NewBattleEngine creates an engine for one match between the two players.
// The RNG is the match's only source of randomness; identical seeds and
// decks reproduce identical matches. The logger may be nil.
func NewBattleEngine(playerA, playerB *Player, rng *rand.Rand, logger *zap.Logger) *BattleEngine {
	return &BattleEngine{
		matchID: uuid.New().String(),
		logger:  logger,
		rng:     rng,
		players: [2]*Player{playerA, playerB},
		phase:   PhaseInit,
	}
}

// MatchID returns the engine's unique match identifier.
func (e *BattleEngine) MatchID() string { return e.matchID }

// SetRecorder attaches an optional replay recorder. The recorder observes
// turn boundaries and never mutates the match.
func (e *BattleEngine) SetRecorder(rec *ReplayRecorder) { e.recorder = rec }

// CurrentPlayer returns the player whose turn it is.
func (e *BattleEngine) CurrentPlayer() *Player { return e.players[e.current] }

// Opponent returns the player not currently taking a turn.
func (e *BattleEngine) Opponent() *Player { return e.players[1-e.current] }

// Phase returns the state machine's current phase.
func (e *BattleEngine) Phase() Phase { return e.phase }

// Turn returns the 1-based number of the turn in progress.
func (e *BattleEngine) Turn() int { return e.turn }

// GameOver reports whether the match has reached a terminal state.
func (e *BattleEngine) GameOver() bool { return e.gameOver }

// Winner returns the winning player, or nil while the match is undecided
// (or when it ended in a tie).
func (e *BattleEngine) Winner() *Player { return e.winner }

// Log returns the narrative match log accumulated so far.
func (e *BattleEngine) Log() []string { return e.log }

// InitializeGame runs setup for both players, applies the forced-basic
// bailout for hands without a basic creature, flips the coin for the first
// turn, and auto-places each player's starting board. A deck containing no
// basic creature anywhere is a caller contract violation and returns an
// error.
func (e *BattleEngine) InitializeGame() error {
	for _, p := range e.players {
		p.Setup(e.rng)
	}

	// A starting hand must contain a basic creature. The official rule is a
	// mulligan; here one random basic is pulled from the draw pile instead.
	for _, p := range e.players {
		if p.HasBasicCreatureInHand() {
			continue
		}
		if !p.forceBasicFromDrawPile(e.rng) {
			return fmt.Errorf("deck of %s contains no basic creature", p.Name())
		}
		e.addMessage("%s had no basic creature in hand; one was pulled from the deck", p.Name())
		if e.logger != nil {
			e.logger.Warn("forced basic creature into hand",
				zap.String("match_id", e.matchID),
				zap.String("player", p.Name()),
			)
		}
	}

	e.current = e.rng.Intn(2)
	e.addMessage("%s wins the coin flip and goes first", e.CurrentPlayer().Name())

	for _, p := range e.players {
		e.autoPlaceBoard(p)
	}

	e.turn = 1
	e.firstTurn = true
	e.phase = PhaseStartTurn

	if e.logger != nil {
		e.logger.Info("match initialized",
			zap.String("match_id", e.matchID),
			zap.String("first_player", e.CurrentPlayer().Name()),
		)
	}
	return nil
}

// autoPlaceBoard plays the first basic creature in hand as active and
// benches every further basic, mirroring player choice with a fixed
// hand-order tie-break.
func (e *BattleEngine) autoPlaceBoard(p *Player) {
	for i, c := range p.Hand() {
		if c.IsBasicCreature() {
			if p.SetActiveFromHand(i) {
				e.addMessage("%s sends out %s", p.Name(), c.Name)
			}
			break
		}
	}
	for {
		placed := false
		for i, c := range p.Hand() {
			if c.IsBasicCreature() {
				if p.AddToBenchFromHand(i) {
					e.addMessage("%s benches %s", p.Name(), c.Name)
					placed = true
				}
				break
			}
		}
		if !placed {
			return
		}
	}
}

// StartTurn begins the current player's turn: flags reset, one card drawn
// (deck-out is an immediate loss), and the Energy Zone advanced. The match's
// very first turn grants no energy.
func (e *BattleEngine) StartTurn() {
	e.phase = PhaseStartTurn
	p := e.CurrentPlayer()
	p.ResetTurnFlags()
	e.addMessage("Turn %d: %s", e.turn, p.Name())

	if !p.DrawCards(1) {
		e.gameOver = true
		e.winner = e.Opponent()
		e.phase = PhaseTerminal
		e.addMessage("%s has no cards left to draw; %s wins", p.Name(), e.winner.Name())
		return
	}

	if e.firstTurn {
		e.addMessage("%s gets no energy on the first turn", p.Name())
	} else {
		sym := p.GenerateEnergy(e.rng)
		if sym != energy.None {
			e.addMessage("%s's Energy Zone produces %s", p.Name(), sym)
		}
	}

	e.phase = PhaseAction
}

// ResolveAttack resolves one attack by the attacker's creature against the
// defender's active creature: energy check, damage parsing, weakness
// doubling, then the knockout/prize cascade.
func (e *BattleEngine) ResolveAttack(attacker *Player, attackerCreature *CreatureState, attackIndex int, defender *Player) AttackResult {
	if attackerCreature == nil || !attackerCreature.HasEnoughEnergy(attackIndex) {
		return AttackResult{}
	}
	target := defender.Active()
	if target == nil {
		return AttackResult{}
	}

	attack := attackerCreature.Card().Attacks[attackIndex]
	damage := attack.BaseDamage()

	// Weakness keys off the attack's cost symbols, matching the original
	// behavior even though it never triggers for all-colorless costs.
	weakness := target.Card().Weakness
	doubled := weakness != energy.None && attack.Cost.Contains(weakness)
	if doubled {
		damage *= 2
	}

	target.ApplyDamage(damage)
	if doubled {
		e.addMessage("%s's %s used %s on %s's %s for %d damage (weakness)",
			attacker.Name(), attackerCreature.Card().Name, attack.Name,
			defender.Name(), target.Card().Name, damage)
	} else {
		e.addMessage("%s's %s used %s on %s's %s for %d damage",
			attacker.Name(), attackerCreature.Card().Name, attack.Name,
			defender.Name(), target.Card().Name, damage)
	}

	if target.IsKnockedOut() {
		e.resolveKnockout(attacker, defender, target)
	}

	return AttackResult{Success: true, DamageDealt: damage, EffectText: attack.Effect}
}

// resolveKnockout discards the knocked-out active creature, awards prizes to
// the attacker, and auto-promotes the defender's first benched creature.
func (e *BattleEngine) resolveKnockout(attacker, defender *Player, target *CreatureState) {
	e.addMessage("%s's %s is knocked out", defender.Name(), target.Card().Name)

	prizeWorth := 1
	if target.Card().IsEx() {
		prizeWorth = 2
	}
	defender.discardActive()

	taken := attacker.takePrizes(prizeWorth)
	if taken > 0 {
		e.addMessage("%s takes %d prize card(s), %d left", attacker.Name(), taken, attacker.PrizesRemaining())
	}

	if promoted := defender.promoteFromBench(); promoted != nil {
		e.addMessage("%s promotes %s to active", defender.Name(), promoted.Card().Name)
	}

	if e.logger != nil {
		e.logger.Debug("knockout resolved",
			zap.String("match_id", e.matchID),
			zap.String("attacker", attacker.Name()),
			zap.String("knocked_out", target.Card().Name),
			zap.Int("prizes_taken", taken),
		)
	}
}

// EndTurn evaluates the win conditions in fixed precedence order and, if the
// match continues, passes the turn to the other player.
func (e *BattleEngine) EndTurn() {
	e.phase = PhaseEndTurn
	a, b := e.players[0], e.players[1]

	switch {
	case a.PrizesRemaining() == 0:
		e.declareWinner(a, "%s has taken all prizes and wins")
	case b.PrizesRemaining() == 0:
		e.declareWinner(b, "%s has taken all prizes and wins")
	case !a.HasCreaturesInPlay():
		e.declareWinner(b, "%s wins: opponent has no creatures in play")
	case !b.HasCreaturesInPlay():
		e.declareWinner(a, "%s wins: opponent has no creatures in play")
	default:
		e.current = 1 - e.current
		e.turn++
		e.firstTurn = false
		e.phase = PhaseStartTurn
	}

	if e.recorder != nil {
		e.recorder.RecordTurn(e.matchID, e.snapshot())
	}
}

func (e *BattleEngine) declareWinner(p *Player, format string) {
	e.gameOver = true
	e.winner = p
	e.phase = PhaseTerminal
	e.addMessage(format, p.Name())
	if e.logger != nil {
		e.logger.Info("match decided",
			zap.String("match_id", e.matchID),
			zap.String("winner", p.Name()),
			zap.Int("turn", e.turn),
		)
	}
}

// SimulateGame runs a full match: initialization, then the per-turn loop
// driven by the given policies, until a terminal state or the turn bound is
// reached. At the bound, fewer remaining prizes wins; equal prizes is a tie.
func (e *BattleEngine) SimulateGame(policyA, policyB Policy, maxTurns int) (*Result, error) {
	if err := e.InitializeGame(); err != nil {
		return nil, err
	}

	policies := [2]Policy{policyA, policyB}
	for !e.gameOver && e.turn <= maxTurns {
		e.StartTurn()
		if e.gameOver {
			break
		}
		policies[e.current].TakeTurn(e, e.CurrentPlayer(), e.Opponent())
		e.EndTurn()
	}

	turns := e.turn
	if !e.gameOver {
		turns = maxTurns
		e.phase = PhaseTerminal
		a, b := e.players[0], e.players[1]
		switch {
		case a.PrizesRemaining() < b.PrizesRemaining():
			e.winner = a
			e.addMessage("Turn limit reached; %s wins on prizes", a.Name())
		case b.PrizesRemaining() < a.PrizesRemaining():
			e.winner = b
			e.addMessage("Turn limit reached; %s wins on prizes", b.Name())
		default:
			e.addMessage("Turn limit reached; the match is a tie")
		}
		e.gameOver = true
	}

	result := &Result{
		Turns:       turns,
		PrizesLeftA: e.players[0].PrizesRemaining(),
		PrizesLeftB: e.players[1].PrizesRemaining(),
		Log:         e.log,
	}
	if e.winner != nil {
		result.WinnerName = e.winner.Name()
	}
	return result, nil
}

// addMessage appends one line to the narrative match log.
func (e *BattleEngine) addMessage(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

// snapshot captures the per-turn state the replay recorder stores.
func (e *BattleEngine) snapshot() *TurnSnapshot {
	return &TurnSnapshot{
		Turn:         e.turn,
		ActivePlayer: e.CurrentPlayer().Name(),
		PrizesA:      e.players[0].PrizesRemaining(),
		PrizesB:      e.players[1].PrizesRemaining(),
		BenchA:       len(e.players[0].Bench()),
		BenchB:       len(e.players[1].Bench()),
		LogLength:    len(e.log),
	}
}
