package game

import (
	"fmt"
	"os"

	"github.com/pocketcg/battlesim/internal/game/energy"
	"gopkg.in/yaml.v3"
)

// Deck is a pre-built deck: an ordered card list plus the declared energy
// type set used for Energy Zone sampling. Deck legality (size, copy limits)
// is the deck builder's responsibility, not the engine's.
type Deck struct {
	Name        string
	Cards       []*CardFacts
	EnergyTypes []energy.Type
}

// DeckFile is the top-level YAML structure of a deck file.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry is a single deck in the YAML file.
type DeckEntry struct {
	Name   string      `yaml:"name"`
	Energy []string    `yaml:"energy"`
	Cards  []CardEntry `yaml:"cards"`
}

// CardEntry is one card definition with its copy count.
type CardEntry struct {
	Name        string        `yaml:"name"`
	Count       int           `yaml:"count"`
	Category    string        `yaml:"category"`
	TrainerKind string        `yaml:"trainer_kind"`
	HP          int           `yaml:"hp"`
	Stage       int           `yaml:"stage"`
	EvolvesFrom string        `yaml:"evolves_from"`
	Weakness    string        `yaml:"weakness"`
	RetreatCost int           `yaml:"retreat_cost"`
	Attacks     []AttackEntry `yaml:"attacks"`
}

// AttackEntry is one attack definition on a creature card entry.
type AttackEntry struct {
	Name   string   `yaml:"name"`
	Cost   []string `yaml:"cost"`
	Damage string   `yaml:"damage"`
	Effect string   `yaml:"effect"`
}

// ParseDeckFile parses a YAML deck file and returns the decks by name.
// Every card entry is validated at load time; unknown energy type names are
// an error rather than a silently ignored tag.
func ParseDeckFile(path string) (map[string]*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string]*Deck, len(df.Decks))
	for _, entry := range df.Decks {
		deck, err := buildDeck(entry)
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", entry.Name, err)
		}
		decks[deck.Name] = deck
	}

	return decks, nil
}

// DeckByName loads one named deck from a YAML deck file.
func DeckByName(path, name string) (*Deck, error) {
	decks, err := ParseDeckFile(path)
	if err != nil {
		return nil, err
	}
	deck, ok := decks[name]
	if !ok {
		return nil, fmt.Errorf("deck %q not found in %s", name, path)
	}
	return deck, nil
}

func buildDeck(entry DeckEntry) (*Deck, error) {
	deck := &Deck{Name: entry.Name}

	for _, typeName := range entry.Energy {
		t, ok := energy.FromName(typeName)
		if !ok || !t.IsConcrete() {
			return nil, fmt.Errorf("invalid energy type %q", typeName)
		}
		deck.EnergyTypes = append(deck.EnergyTypes, t)
	}

	for _, ce := range entry.Cards {
		facts, err := buildCardFacts(ce)
		if err != nil {
			return nil, err
		}
		count := ce.Count
		if count <= 0 {
			count = 1
		}
		// Each physical copy gets its own facts instance with a unique ID so
		// zone bookkeeping can tell copies apart.
		for i := 0; i < count; i++ {
			copyFacts := *facts
			copyFacts.ID = fmt.Sprintf("%s-%d", facts.ID, i+1)
			deck.Cards = append(deck.Cards, &copyFacts)
		}
	}

	return deck, nil
}

func buildCardFacts(ce CardEntry) (*CardFacts, error) {
	facts := &CardFacts{
		ID:          slugify(ce.Name),
		Name:        ce.Name,
		HP:          ce.HP,
		Stage:       ce.Stage,
		EvolvesFrom: ce.EvolvesFrom,
		RetreatCost: ce.RetreatCost,
	}

	switch ce.Category {
	case "creature", "":
		facts.Category = CategoryCreature
	case "trainer":
		facts.Category = CategoryTrainer
	default:
		return nil, fmt.Errorf("card %q: unknown category %q", ce.Name, ce.Category)
	}

	if facts.Category == CategoryTrainer {
		switch ce.TrainerKind {
		case "supporter":
			facts.TrainerKind = TrainerSupporter
		case "item", "":
			facts.TrainerKind = TrainerItem
		case "tool":
			facts.TrainerKind = TrainerTool
		default:
			return nil, fmt.Errorf("card %q: unknown trainer kind %q", ce.Name, ce.TrainerKind)
		}
	}

	if ce.Weakness != "" {
		t, ok := energy.FromName(ce.Weakness)
		if !ok || !t.IsConcrete() {
			return nil, fmt.Errorf("card %q: invalid weakness %q", ce.Name, ce.Weakness)
		}
		facts.Weakness = t
	}

	for _, ae := range ce.Attacks {
		var cost energy.Cost
		for _, sym := range ae.Cost {
			t, ok := energy.FromName(sym)
			if !ok {
				return nil, fmt.Errorf("card %q: attack %q has unknown cost symbol %q", ce.Name, ae.Name, sym)
			}
			cost = append(cost, t)
		}
		facts.Attacks = append(facts.Attacks, Attack{
			Name:   ae.Name,
			Cost:   cost,
			Damage: ae.Damage,
			Effect: ae.Effect,
		})
	}

	if err := facts.Validate(); err != nil {
		return nil, err
	}
	return facts, nil
}

func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-':
			out = append(out, '-')
		}
	}
	return string(out)
}
