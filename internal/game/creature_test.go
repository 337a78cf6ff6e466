package game

import (
	"testing"

	"github.com/pocketcg/battlesim/internal/game/energy"
)

func TestCreatureDamageAndKnockout(t *testing.T) {
	cs := NewCreatureState(testBasic("Shore Crab", 60))

	cs.ApplyDamage(20)
	if cs.HPRemaining() != 40 {
		t.Errorf("HPRemaining = %d, want 40", cs.HPRemaining())
	}
	if cs.IsKnockedOut() {
		t.Error("creature should not be knocked out at 40 hp")
	}

	cs.ApplyDamage(-10)
	if cs.Damage() != 20 {
		t.Errorf("negative damage should be ignored, got %d marked", cs.Damage())
	}

	cs.ApplyDamage(40)
	if !cs.IsKnockedOut() {
		t.Error("creature should be knocked out at 0 hp")
	}
}

func TestCreatureHasEnoughEnergy(t *testing.T) {
	card := testBasic("Voltfang", 90,
		testAttack("Thunder Fang", "50", energy.Lightning, energy.Colorless),
	)
	cs := NewCreatureState(card)

	if cs.HasEnoughEnergy(0) {
		t.Error("attack should not be payable with no energy attached")
	}

	cs.AttachEnergy(energy.Lightning)
	if cs.HasEnoughEnergy(0) {
		t.Error("attack should not be payable with one energy attached")
	}

	cs.AttachEnergy(energy.Lightning)
	if !cs.HasEnoughEnergy(0) {
		t.Error("attack should be payable with two lightning attached")
	}

	if cs.HasEnoughEnergy(1) || cs.HasEnoughEnergy(-1) {
		t.Error("out-of-range attack index should never be payable")
	}
}

func TestCreatureDiscardEnergies(t *testing.T) {
	cs := NewCreatureState(testBasic("Finling", 50))
	cs.AttachEnergy(energy.Water)
	cs.AttachEnergy(energy.Lightning)
	cs.AttachEnergy(energy.Water)

	if cs.discardEnergies(4) {
		t.Error("discarding more energies than attached should fail")
	}
	if len(cs.Energies()) != 3 {
		t.Fatalf("failed discard must not mutate, have %d energies", len(cs.Energies()))
	}

	if !cs.discardEnergies(2) {
		t.Fatal("discarding 2 of 3 energies should succeed")
	}
	rest := cs.Energies()
	if len(rest) != 1 || rest[0] != energy.Water {
		t.Errorf("discard should drop the oldest attachments first, left with %v", rest)
	}
}
