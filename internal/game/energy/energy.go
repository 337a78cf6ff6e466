package energy

import "strings"

// Type represents a type of energy.
type Type string

const (
	Grass     Type = "GRASS"
	Fire      Type = "FIRE"
	Water     Type = "WATER"
	Lightning Type = "LIGHTNING"
	Psychic   Type = "PSYCHIC"
	Fighting  Type = "FIGHTING"
	Darkness  Type = "DARKNESS"
	Metal     Type = "METAL"
	Colorless Type = "COLORLESS" // Colorless cost slots can be paid with any type
)

// None marks the absence of an energy value (e.g. an empty Energy Zone slot).
const None Type = ""

// ConcreteTypes lists every attachable energy type in a fixed order.
// Colorless is excluded: it is a cost wildcard, not a generated type.
var ConcreteTypes = []Type{
	Grass, Fire, Water, Lightning, Psychic, Fighting, Darkness, Metal,
}

// FromName parses an energy type name (case-insensitive).
// Colorless is accepted so that attack costs can name it.
func FromName(name string) (Type, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "GRASS":
		return Grass, true
	case "FIRE":
		return Fire, true
	case "WATER":
		return Water, true
	case "LIGHTNING":
		return Lightning, true
	case "PSYCHIC":
		return Psychic, true
	case "FIGHTING":
		return Fighting, true
	case "DARKNESS":
		return Darkness, true
	case "METAL":
		return Metal, true
	case "COLORLESS":
		return Colorless, true
	default:
		return None, false
	}
}

// String returns the canonical name of the type.
func (t Type) String() string {
	return string(t)
}

// IsConcrete reports whether t is a real energy type (not Colorless or None).
func (t Type) IsConcrete() bool {
	return t != None && t != Colorless
}
