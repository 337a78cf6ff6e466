package game

import (
	"fmt"

	"github.com/pocketcg/battlesim/internal/game/energy"
)

var testCardSeq int

func nextTestID(name string) string {
	testCardSeq++
	return fmt.Sprintf("%s-%d", name, testCardSeq)
}

func testBasic(name string, hp int, attacks ...Attack) *CardFacts {
	return &CardFacts{
		ID:       nextTestID(name),
		Name:     name,
		Category: CategoryCreature,
		HP:       hp,
		Stage:    StageBasic,
		Attacks:  attacks,
	}
}

func testEvolution(name, evolvesFrom string, hp int, attacks ...Attack) *CardFacts {
	return &CardFacts{
		ID:          nextTestID(name),
		Name:        name,
		Category:    CategoryCreature,
		HP:          hp,
		Stage:       StageStage1,
		EvolvesFrom: evolvesFrom,
		Attacks:     attacks,
	}
}

func testTrainer(name string, kind TrainerKind) *CardFacts {
	return &CardFacts{
		ID:          nextTestID(name),
		Name:        name,
		Category:    CategoryTrainer,
		TrainerKind: kind,
	}
}

func testAttack(name string, damage string, cost ...energy.Type) Attack {
	return Attack{Name: name, Cost: energy.Cost(cost), Damage: damage}
}

// testDeck builds a lightning deck with the given cards repeated to fill a
// playable pile.
func testDeck(name string, cards ...*CardFacts) *Deck {
	return &Deck{
		Name:        name,
		Cards:       cards,
		EnergyTypes: []energy.Type{energy.Lightning},
	}
}

// simpleDeck returns a deck of n copies of a plain basic attacker, enough to
// survive setup (3 prizes + 5 opening cards) plus per-turn draws.
func simpleDeck(name string, n int) *Deck {
	cards := make([]*CardFacts, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, testBasic(
			name+" Scout", 60,
			testAttack("Tackle", "20", energy.Lightning),
		))
	}
	return testDeck(name, cards...)
}
