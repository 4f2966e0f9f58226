package core

import "testing"

func TestCategoriesRegistry(t *testing.T) {
	cats := Categories()
	if len(cats) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(cats))
	}

	var income, expense int
	for _, c := range cats {
		if c.IncomeEligible {
			income++
		}
		if c.ExpenseEligible {
			expense++
		}
	}
	if income != 4 {
		t.Errorf("expected 4 income-eligible categories, got %d", income)
	}
	if expense != 8 {
		t.Errorf("expected 8 expense-eligible categories, got %d", expense)
	}

	// Returned slice must be a copy
	cats[0].Name = "mutated"
	if Categories()[0].Name == "mutated" {
		t.Error("registry must not be mutable through the returned slice")
	}
}

func TestLookupCategory(t *testing.T) {
	c, ok := LookupCategory("food")
	if !ok || c.Name != "Food & Dining" {
		t.Fatalf("expected Food & Dining, got (%+v, %v)", c, ok)
	}

	other, ok := LookupCategory("other")
	if !ok || !other.IncomeEligible || !other.ExpenseEligible {
		t.Fatalf("other must be eligible for both types, got %+v", other)
	}

	if _, ok := LookupCategory("ghost"); ok {
		t.Error("expected miss for unknown id")
	}
}
