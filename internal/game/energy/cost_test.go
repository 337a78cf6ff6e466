package energy

import (
	"testing"
)

func TestFromName(t *testing.T) {
	if typ, ok := FromName("water"); !ok || typ != Water {
		t.Errorf("Expected Water, got %q (ok=%v)", typ, ok)
	}
	if typ, ok := FromName(" Lightning "); !ok || typ != Lightning {
		t.Errorf("Expected Lightning, got %q (ok=%v)", typ, ok)
	}
	if typ, ok := FromName("COLORLESS"); !ok || typ != Colorless {
		t.Errorf("Expected Colorless, got %q (ok=%v)", typ, ok)
	}
	if _, ok := FromName("plasma"); ok {
		t.Error("Expected unknown type name to be rejected")
	}
}

func TestCostCanPay_Concrete(t *testing.T) {
	cost := Cost{Fire, Fire}

	if cost.CanPay([]Type{Fire}) {
		t.Error("Expected one fire to be insufficient for {Fire}{Fire}")
	}
	if !cost.CanPay([]Type{Fire, Fire}) {
		t.Error("Expected two fire to pay {Fire}{Fire}")
	}
	if cost.CanPay([]Type{Fire, Water}) {
		t.Error("Expected fire+water to fail {Fire}{Fire}")
	}
}

func TestCostCanPay_Colorless(t *testing.T) {
	cost := Cost{Colorless, Colorless}

	if !cost.CanPay([]Type{Psychic, Metal}) {
		t.Error("Expected any two energies to pay a double colorless cost")
	}
	if cost.CanPay([]Type{Psychic}) {
		t.Error("Expected one energy to be insufficient for a double colorless cost")
	}
}

func TestCostCanPay_ConcreteBeforeColorless(t *testing.T) {
	// Concrete symbol first: the water unit is consumed by the water slot,
	// the colorless slot takes whatever is left.
	cost := Cost{Water, Colorless}
	if !cost.CanPay([]Type{Water, Fire}) {
		t.Error("Expected water+fire to pay {Water}{Colorless}")
	}
}

func TestCostCanPay_ColorlessStarvation(t *testing.T) {
	// Colorless first in the cost list: the greedy matcher consumes the
	// earliest ConcreteTypes entry, which here is the only water unit, so the
	// later water slot starves. No smarter assignment is attempted.
	cost := Cost{Colorless, Water}
	if cost.CanPay([]Type{Water, Psychic}) {
		t.Error("Expected greedy colorless payment to starve the water slot")
	}
	// With a type ordered before Water available, the colorless slot takes it
	// and the water slot is paid.
	if !cost.CanPay([]Type{Water, Fire}) {
		t.Error("Expected fire to cover colorless, water to cover water")
	}
}

func TestCostCanPay_AttachedColorless(t *testing.T) {
	// A typeless deck's Energy Zone attaches Colorless units; they pay
	// colorless cost slots.
	cost := Cost{Colorless}
	if !cost.CanPay([]Type{Colorless}) {
		t.Error("Expected an attached Colorless unit to pay a colorless slot")
	}

	cost = Cost{Colorless, Colorless}
	if !cost.CanPay([]Type{Colorless, Colorless}) {
		t.Error("Expected two Colorless units to pay a double colorless cost")
	}

	// Wildcard units are consumed first, leaving the concrete unit for its
	// own slot.
	cost = Cost{Colorless, Water}
	if !cost.CanPay([]Type{Colorless, Water}) {
		t.Error("Expected the Colorless unit to cover the colorless slot")
	}
}

func TestCostCanPay_ColorlessUnitNotConcrete(t *testing.T) {
	cost := Cost{Water}
	if cost.CanPay([]Type{Colorless}) {
		t.Error("Expected a Colorless unit not to pay a concrete water slot")
	}
}

func TestCostCanPay_Empty(t *testing.T) {
	var cost Cost
	if !cost.CanPay(nil) {
		t.Error("Expected empty cost to be payable with no energy")
	}
}

func TestCostContains(t *testing.T) {
	cost := Cost{Water, Colorless}
	if !cost.Contains(Water) {
		t.Error("Expected cost to contain Water")
	}
	if cost.Contains(Fire) {
		t.Error("Expected cost not to contain Fire")
	}
}
