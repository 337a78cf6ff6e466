package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pocketcg/battlesim/internal/game/energy"
)

// Category classifies a card.
type Category string

const (
	CategoryCreature Category = "CREATURE"
	CategoryTrainer  Category = "TRAINER"
)

// TrainerKind is the sub-category of a trainer card.
type TrainerKind string

const (
	TrainerSupporter TrainerKind = "SUPPORTER"
	TrainerItem      TrainerKind = "ITEM"
	TrainerTool      TrainerKind = "TOOL"
)

// Evolution stages.
const (
	StageBasic  = 0
	StageStage1 = 1
	StageStage2 = 2
)

// Attack is one attack printed on a creature card.
type Attack struct {
	Name   string
	Cost   energy.Cost
	Damage string // raw damage expression, e.g. "40", "30+", "20x"
	Effect string // free text; effect resolution is not modeled
}

// BaseDamage parses the attack's damage expression into a base value.
// Supported forms: a plain integer, "<n>+" and "<n>x"/"<n>×" (the bonus or
// multiplier part is ignored). Anything unparseable yields 0 rather than an
// error, to tolerate imperfect card data.
func (a Attack) BaseDamage() int {
	expr := strings.TrimSpace(a.Damage)
	expr = strings.TrimSuffix(expr, "+")
	expr = strings.TrimSuffix(expr, "x")
	expr = strings.TrimSuffix(expr, "X")
	expr = strings.TrimSuffix(expr, "×")
	n, err := strconv.Atoi(strings.TrimSpace(expr))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CardFacts is the read-only projection of a card that the engine consumes.
// Instances are shared between zones and never mutated after construction;
// all mutable battle state lives in CreatureState.
type CardFacts struct {
	ID          string
	Name        string
	Category    Category
	TrainerKind TrainerKind // trainer cards only
	Tags        []string    // typing/category tags; consulted only by IsEx

	// Creature-only facts.
	HP          int
	Attacks     []Attack
	Weakness    energy.Type // energy.None when the card has no weakness
	RetreatCost int
	EvolvesFrom string // name of the creature this evolves from, "" for basics
	Stage       int
}

// Validate checks the facts at construction time so that missing data fails
// fast at the boundary instead of defaulting silently inside game logic.
func (c *CardFacts) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("card %q: missing id", c.Name)
	}
	if c.Name == "" {
		return fmt.Errorf("card %s: missing name", c.ID)
	}

	switch c.Category {
	case CategoryCreature:
		if c.HP <= 0 {
			return fmt.Errorf("creature %q: hp must be positive, got %d", c.Name, c.HP)
		}
		if c.Stage < StageBasic || c.Stage > StageStage2 {
			return fmt.Errorf("creature %q: invalid stage %d", c.Name, c.Stage)
		}
		if c.Stage > StageBasic && c.EvolvesFrom == "" {
			return fmt.Errorf("creature %q: stage %d card must name what it evolves from", c.Name, c.Stage)
		}
		if c.RetreatCost < 0 {
			return fmt.Errorf("creature %q: negative retreat cost", c.Name)
		}
		for _, atk := range c.Attacks {
			if atk.Name == "" {
				return fmt.Errorf("creature %q: attack with empty name", c.Name)
			}
			for _, sym := range atk.Cost {
				if !sym.IsConcrete() && sym != energy.Colorless {
					return fmt.Errorf("creature %q: attack %q has invalid cost symbol %q", c.Name, atk.Name, sym)
				}
			}
		}
		if c.Weakness != energy.None && !c.Weakness.IsConcrete() {
			return fmt.Errorf("creature %q: invalid weakness %q", c.Name, c.Weakness)
		}
	case CategoryTrainer:
		switch c.TrainerKind {
		case TrainerSupporter, TrainerItem, TrainerTool:
		default:
			return fmt.Errorf("trainer %q: invalid kind %q", c.Name, c.TrainerKind)
		}
	default:
		return fmt.Errorf("card %q: invalid category %q", c.Name, c.Category)
	}

	return nil
}

// IsBasicCreature reports whether the card can be played directly from hand
// into the active slot or onto the bench.
func (c *CardFacts) IsBasicCreature() bool {
	return c.Category == CategoryCreature && c.Stage == StageBasic
}

// IsEx reports whether knocking this card out awards two prizes instead of
// one. The check is a case-insensitive substring match on the card name, as
// the original data encodes "ex" in the name, or an "ex" category tag.
func (c *CardFacts) IsEx() bool {
	if strings.Contains(strings.ToLower(c.Name), "ex") {
		return true
	}
	for _, tag := range c.Tags {
		if strings.EqualFold(tag, "ex") {
			return true
		}
	}
	return false
}
