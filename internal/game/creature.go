package game

import (
	"github.com/pocketcg/battlesim/internal/game/energy"
)

// CreatureState is the mutable in-play wrapper around one creature card:
// marked damage plus attached energies. The wrapped CardFacts stays shared
// and read-only.
type CreatureState struct {
	card     *CardFacts
	damage   int
	energies []energy.Type
}

// NewCreatureState places a card into play with no damage and no energy.
func NewCreatureState(card *CardFacts) *CreatureState {
	return &CreatureState{card: card}
}

// Card returns the wrapped card facts.
func (cs *CreatureState) Card() *CardFacts {
	return cs.card
}

// Damage returns the damage currently marked on the creature.
func (cs *CreatureState) Damage() int {
	return cs.damage
}

// ApplyDamage marks damage on the creature.
func (cs *CreatureState) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	cs.damage += amount
}

// HPRemaining returns the creature's remaining hit points.
func (cs *CreatureState) HPRemaining() int {
	return cs.card.HP - cs.damage
}

// IsKnockedOut reports whether marked damage has reached the card's HP.
func (cs *CreatureState) IsKnockedOut() bool {
	return cs.HPRemaining() <= 0
}

// AttachEnergy appends one energy unit. Always succeeds.
func (cs *CreatureState) AttachEnergy(t energy.Type) {
	cs.energies = append(cs.energies, t)
}

// Energies returns the attached energies in attachment order.
func (cs *CreatureState) Energies() []energy.Type {
	return cs.energies
}

// HasEnoughEnergy reports whether the attached energies can pay for the
// attack at the given index.
func (cs *CreatureState) HasEnoughEnergy(attackIndex int) bool {
	if attackIndex < 0 || attackIndex >= len(cs.card.Attacks) {
		return false
	}
	return cs.card.Attacks[attackIndex].Cost.CanPay(cs.energies)
}

// discardEnergies removes n energies in attachment order (front of the list
// first). Returns false without mutating if fewer than n are attached.
func (cs *CreatureState) discardEnergies(n int) bool {
	if n < 0 || len(cs.energies) < n {
		return false
	}
	cs.energies = cs.energies[n:]
	return true
}
