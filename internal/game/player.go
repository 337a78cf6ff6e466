package game

import (
	"math/rand"

	"github.com/pocketcg/battlesim/internal/game/energy"
)

// MaxBenchSize is the maximum number of benched creatures per player.
const MaxBenchSize = 5

// PrizeCount is the number of prize cards set aside at setup.
const PrizeCount = 3

// StartingHandSize is the number of cards drawn at setup.
const StartingHandSize = 5

// ActiveSlot selects the active creature in operations that take a board
// slot; non-negative values select a bench index.
const ActiveSlot = -1

// Player holds one side of the match: every zone, the per-turn flags, and
// the Energy Zone generator state.
type Player struct {
	name string

	drawPile []*CardFacts
	hand     []*CardFacts
	active   *CreatureState
	bench    []*CreatureState
	prizes   []*CardFacts
	discard  []*CardFacts

	// Per-turn flags, reset at the start of this player's turn.
	supporterPlayed bool
	retreatUsed     bool
	energyAttached  bool

	// Energy Zone: current attachable energy plus a one-turn-ahead preview.
	currentEnergy energy.Type
	nextEnergy    energy.Type
	energyTypes   []energy.Type // deck's declared type set for sampling
}

// NewPlayer creates a player with the given deck. The deck's card order is
// the initial draw-pile order; Setup shuffles it.
func NewPlayer(name string, deck *Deck) *Player {
	pile := make([]*CardFacts, len(deck.Cards))
	copy(pile, deck.Cards)
	types := make([]energy.Type, len(deck.EnergyTypes))
	copy(types, deck.EnergyTypes)
	return &Player{
		name:        name,
		drawPile:    pile,
		energyTypes: types,
	}
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Active returns the active creature, or nil.
func (p *Player) Active() *CreatureState { return p.active }

// Bench returns the benched creatures in order.
func (p *Player) Bench() []*CreatureState { return p.bench }

// Hand returns the player's hand.
func (p *Player) Hand() []*CardFacts { return p.hand }

// Discard returns the player's discard pile.
func (p *Player) Discard() []*CardFacts { return p.discard }

// PrizesRemaining returns the number of prize cards not yet taken.
func (p *Player) PrizesRemaining() int { return len(p.prizes) }

// DrawPileSize returns the number of cards left to draw.
func (p *Player) DrawPileSize() int { return len(p.drawPile) }

// CurrentEnergy returns the attachable energy for this turn, or energy.None.
func (p *Player) CurrentEnergy() energy.Type { return p.currentEnergy }

// NextEnergy returns the Energy Zone preview for the following turn.
func (p *Player) NextEnergy() energy.Type { return p.nextEnergy }

// EnergyAttached reports whether energy was already attached this turn.
func (p *Player) EnergyAttached() bool { return p.energyAttached }

// HasCreaturesInPlay reports whether the player has any creature on the
// board. A player with no active and an empty bench has lost.
func (p *Player) HasCreaturesInPlay() bool {
	return p.active != nil || len(p.bench) > 0
}

// Setup shuffles the draw pile, sets aside the prizes, draws the opening
// hand, and seeds the Energy Zone preview. The current energy stays empty
// until the player's first real turn.
func (p *Player) Setup(rng *rand.Rand) {
	rng.Shuffle(len(p.drawPile), func(i, j int) {
		p.drawPile[i], p.drawPile[j] = p.drawPile[j], p.drawPile[i]
	})

	if len(p.drawPile) >= PrizeCount {
		p.prizes = append(p.prizes, p.drawPile[:PrizeCount]...)
		p.drawPile = p.drawPile[PrizeCount:]
	}

	p.DrawCards(StartingHandSize)

	p.GenerateEnergy(rng)
}

// DrawCards moves n cards from the front of the draw pile into the hand.
// Returns false if the pile runs out before n cards are drawn; the caller
// must treat that as a deck-out.
func (p *Player) DrawCards(n int) bool {
	for i := 0; i < n; i++ {
		if len(p.drawPile) == 0 {
			return false
		}
		p.hand = append(p.hand, p.drawPile[0])
		p.drawPile = p.drawPile[1:]
	}
	return true
}

// HasBasicCreatureInHand reports whether any hand card is a basic creature.
func (p *Player) HasBasicCreatureInHand() bool {
	for _, c := range p.hand {
		if c.IsBasicCreature() {
			return true
		}
	}
	return false
}

// GenerateEnergy advances the Energy Zone one step: the preview becomes the
// current energy and a new preview is sampled uniformly from the deck's
// declared type set (Colorless when the set is empty). Returns the new
// current energy, which may be energy.None on the very first call.
func (p *Player) GenerateEnergy(rng *rand.Rand) energy.Type {
	p.currentEnergy = p.nextEnergy
	if len(p.energyTypes) == 0 {
		p.nextEnergy = energy.Colorless
	} else {
		p.nextEnergy = p.energyTypes[rng.Intn(len(p.energyTypes))]
	}
	return p.currentEnergy
}

// SetActiveFromHand plays the basic creature at the given hand index into
// the empty active slot.
func (p *Player) SetActiveFromHand(index int) bool {
	if p.active != nil {
		return false
	}
	card, ok := p.handCard(index)
	if !ok || !card.IsBasicCreature() {
		return false
	}
	p.removeFromHand(index)
	p.active = NewCreatureState(card)
	return true
}

// AddToBenchFromHand plays the basic creature at the given hand index onto
// the bench.
func (p *Player) AddToBenchFromHand(index int) bool {
	if len(p.bench) >= MaxBenchSize {
		return false
	}
	card, ok := p.handCard(index)
	if !ok || !card.IsBasicCreature() {
		return false
	}
	p.removeFromHand(index)
	p.bench = append(p.bench, NewCreatureState(card))
	return true
}

// AttachCurrentEnergy attaches this turn's energy to the creature in the
// given slot (ActiveSlot or a bench index). Fails if there is no current
// energy, energy was already attached this turn, or the slot is empty.
func (p *Player) AttachCurrentEnergy(slot int) bool {
	if p.currentEnergy == energy.None || p.energyAttached {
		return false
	}
	target := p.creatureAt(slot)
	if target == nil {
		return false
	}
	target.AttachEnergy(p.currentEnergy)
	p.currentEnergy = energy.None
	p.energyAttached = true
	return true
}

// PlayTrainerFromHand plays the trainer card at the given hand index,
// moving it to the discard pile. Supporters are limited to one per turn.
// No trainer effect is resolved beyond the zone change.
func (p *Player) PlayTrainerFromHand(index int) bool {
	card, ok := p.handCard(index)
	if !ok || card.Category != CategoryTrainer {
		return false
	}
	if card.TrainerKind == TrainerSupporter && p.supporterPlayed {
		return false
	}
	p.removeFromHand(index)
	p.discard = append(p.discard, card)
	if card.TrainerKind == TrainerSupporter {
		p.supporterPlayed = true
	}
	return true
}

// Evolve replaces the creature in the given slot with the evolution card at
// the given hand index. Attached energies carry over to the new creature
// state; the replaced card goes to the discard pile.
func (p *Player) Evolve(handIndex, slot int) bool {
	card, ok := p.handCard(handIndex)
	if !ok || card.Category != CategoryCreature || card.EvolvesFrom == "" {
		return false
	}
	target := p.creatureAt(slot)
	if target == nil || card.EvolvesFrom != target.Card().Name {
		return false
	}

	evolved := NewCreatureState(card)
	evolved.energies = target.energies

	p.removeFromHand(handIndex)
	p.discard = append(p.discard, target.Card())
	if slot == ActiveSlot {
		p.active = evolved
	} else {
		p.bench[slot] = evolved
	}
	return true
}

// Retreat swaps the active creature with the benched creature at benchIndex,
// discarding the active's retreat cost in energies (attachment order). The
// previous active goes to the end of the bench. Once per turn.
func (p *Player) Retreat(benchIndex int) bool {
	if p.retreatUsed || p.active == nil || len(p.bench) == 0 {
		return false
	}
	if benchIndex < 0 || benchIndex >= len(p.bench) {
		return false
	}
	cost := p.active.Card().RetreatCost
	if len(p.active.Energies()) < cost {
		return false
	}

	p.active.discardEnergies(cost)
	incoming := p.bench[benchIndex]
	p.bench = append(p.bench[:benchIndex], p.bench[benchIndex+1:]...)
	p.bench = append(p.bench, p.active)
	p.active = incoming
	p.retreatUsed = true
	return true
}

// ResetTurnFlags clears the per-turn flags. Called at the start of this
// player's turn only.
func (p *Player) ResetTurnFlags() {
	p.supporterPlayed = false
	p.retreatUsed = false
	p.energyAttached = false
}

// takePrizes moves up to n prize cards into the hand in prize order and
// returns how many were taken.
func (p *Player) takePrizes(n int) int {
	if n > len(p.prizes) {
		n = len(p.prizes)
	}
	p.hand = append(p.hand, p.prizes[:n]...)
	p.prizes = p.prizes[n:]
	return n
}

// discardActive moves the knocked-out active creature's card to the discard
// pile and clears the slot. The creature state itself is dropped.
func (p *Player) discardActive() {
	if p.active == nil {
		return
	}
	p.discard = append(p.discard, p.active.Card())
	p.active = nil
}

// promoteFromBench moves the first benched creature into the empty active
// slot. Returns the promoted creature, or nil when the bench is empty.
func (p *Player) promoteFromBench() *CreatureState {
	if p.active != nil || len(p.bench) == 0 {
		return nil
	}
	p.active = p.bench[0]
	p.bench = p.bench[1:]
	return p.active
}

// forceBasicFromDrawPile moves one random basic creature from the draw pile
// into the hand. Used only by the setup bailout for hands with no basic.
// Returns false if the draw pile contains no basic creature.
func (p *Player) forceBasicFromDrawPile(rng *rand.Rand) bool {
	var basics []int
	for i, c := range p.drawPile {
		if c.IsBasicCreature() {
			basics = append(basics, i)
		}
	}
	if len(basics) == 0 {
		return false
	}
	idx := basics[rng.Intn(len(basics))]
	p.hand = append(p.hand, p.drawPile[idx])
	p.drawPile = append(p.drawPile[:idx], p.drawPile[idx+1:]...)
	return true
}

func (p *Player) handCard(index int) (*CardFacts, bool) {
	if index < 0 || index >= len(p.hand) {
		return nil, false
	}
	return p.hand[index], true
}

func (p *Player) removeFromHand(index int) {
	p.hand = append(p.hand[:index], p.hand[index+1:]...)
}

func (p *Player) creatureAt(slot int) *CreatureState {
	if slot == ActiveSlot {
		return p.active
	}
	if slot < 0 || slot >= len(p.bench) {
		return nil
	}
	return p.bench[slot]
}
