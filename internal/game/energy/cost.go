package energy

// Cost is an attack's energy cost: an ordered sequence of symbols.
// Order matters for payment (see CanPay).
type Cost []Type

// Contains reports whether the cost lists the given symbol.
func (c Cost) Contains(t Type) bool {
	for _, s := range c {
		if s == t {
			return true
		}
	}
	return false
}

// CanPay reports whether the attached energies can pay this cost.
//
// Payment is greedy with no cost reservation: symbols are consumed in
// cost-list order. A concrete symbol consumes one matching unit and fails if
// none remains. A Colorless symbol consumes one unit of any remaining type:
// attached Colorless units first (a typeless deck's Energy Zone produces
// those, and they pay nothing else), then the first type in ConcreteTypes
// order with a remaining count. A Colorless slot early in the cost list can
// therefore starve a later concrete requirement; no optimal assignment is
// attempted.
func (c Cost) CanPay(attached []Type) bool {
	remaining := make(map[Type]int, len(attached))
	for _, t := range attached {
		remaining[t]++
	}

	for _, symbol := range c {
		if symbol.IsConcrete() {
			if remaining[symbol] <= 0 {
				return false
			}
			remaining[symbol]--
			continue
		}
		// Colorless: any remaining unit will do, wildcard units first.
		if remaining[Colorless] > 0 {
			remaining[Colorless]--
			continue
		}
		paid := false
		for _, t := range ConcreteTypes {
			if remaining[t] > 0 {
				remaining[t]--
				paid = true
				break
			}
		}
		if !paid {
			return false
		}
	}

	return true
}
