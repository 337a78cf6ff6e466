package game

// Policy decides a player's actions during the action phase. Implementations
// mutate the player through its zone operations and may attack through the
// engine. Policies must tolerate failed actions: illegal moves return false
// and are simply skipped.
type Policy interface {
	TakeTurn(e *BattleEngine, p *Player, opponent *Player)
}

// GreedyPolicy is the deterministic reference policy: a fixed action order
// per turn with hand-order tie-breaks. It is stateless and safe to share
// between players and matches.
type GreedyPolicy struct{}

// TakeTurn plays out one action phase:
// place an active if missing, bench every basic, evolve wherever possible,
// attach this turn's energy, play one trainer, then attack with the
// highest-damage affordable attack.
func (GreedyPolicy) TakeTurn(e *BattleEngine, p *Player, opponent *Player) {
	if p.Active() == nil {
		if i := firstBasicIndex(p); i >= 0 {
			p.SetActiveFromHand(i)
		}
	}

	// Hand indices shift after every removal, so rescan from the start
	// after each successful placement.
	for {
		i := firstBasicIndex(p)
		if i < 0 || !p.AddToBenchFromHand(i) {
			break
		}
	}

	for evolveOnce(p) {
	}

	if !p.EnergyAttached() {
		if p.Active() != nil {
			p.AttachCurrentEnergy(ActiveSlot)
		} else if len(p.Bench()) > 0 {
			p.AttachCurrentEnergy(0)
		}
	}

	for i, c := range p.Hand() {
		if c.Category == CategoryTrainer {
			p.PlayTrainerFromHand(i)
			break
		}
	}

	attemptBestAttack(e, p, opponent)
}

// firstBasicIndex returns the index of the first basic creature in hand,
// or -1.
func firstBasicIndex(p *Player) int {
	for i, c := range p.Hand() {
		if c.IsBasicCreature() {
			return i
		}
	}
	return -1
}

// evolveOnce finds the first evolution card in hand that can evolve the
// active creature, or failing that the first eligible bench creature, and
// plays it. Returns whether an evolution happened.
func evolveOnce(p *Player) bool {
	for i, c := range p.Hand() {
		if c.Category != CategoryCreature || c.EvolvesFrom == "" {
			continue
		}
		if p.Evolve(i, ActiveSlot) {
			return true
		}
		for b := range p.Bench() {
			if p.Evolve(i, b) {
				return true
			}
		}
	}
	return false
}

// attemptBestAttack picks the affordable attack with the highest parsed base
// damage (ties broken by lowest index) and resolves it.
func attemptBestAttack(e *BattleEngine, p *Player, opponent *Player) {
	active := p.Active()
	if active == nil || opponent.Active() == nil {
		return
	}

	best := -1
	bestDamage := -1
	for i, atk := range active.Card().Attacks {
		if !active.HasEnoughEnergy(i) {
			continue
		}
		if d := atk.BaseDamage(); d > bestDamage {
			best = i
			bestDamage = d
		}
	}
	if best >= 0 {
		e.ResolveAttack(p, active, best, opponent)
	}
}
