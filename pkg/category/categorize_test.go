package category

import "testing"

func TestCategorizeKnownKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"milk", "Dairy"},
		{"cheese", "Dairy"},
		{"apple", "Fruits"},
		{"banana", "Fruits"},
		{"rice", "Grains"},
		{"bread", "Bakery"},
		{"chicken", "Meat"},
		{"tomato", "Vegetables"},
		{"onion", "Vegetables"},
		{"oil", "Grocery"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeSubstringMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Whole Milk", "Dairy"},
		{"Chicken Breast", "Meat"},
		{"Bananas", "Fruits"},
		{"cherry tomatoes", "Vegetables"},
		{"extra virgin olive oil", "Grocery"},
		{"sourdough bread loaf", "Bakery"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MILK", "Dairy"},
		{"Chicken", "Meat"},
		{"  bread  ", "Bakery"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	// "milk" is declared before "chicken", so a name containing both
	// resolves to Dairy.
	got := Categorize("milk chicken")
	if got != "Dairy" {
		t.Errorf("Categorize(%q) = %q, want %q", "milk chicken", got, "Dairy")
	}
}

func TestCategorizeNoMatch(t *testing.T) {
	tests := []string{
		"kombucha",
		"paper towels",
		"",
	}
	for _, input := range tests {
		got := Categorize(input)
		if got != FallbackCategory {
			t.Errorf("Categorize(%q) = %q, want %q", input, got, FallbackCategory)
		}
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	inputs := []string{"Whole Milk", "kombucha", "milk chicken", ""}
	for _, input := range inputs {
		first := Categorize(input)
		second := Categorize(input)
		if first != second {
			t.Errorf("Categorize(%q) not deterministic: %q then %q", input, first, second)
		}
	}
}
