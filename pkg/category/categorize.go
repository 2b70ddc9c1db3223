package category

import "strings"

// FallbackCategory is returned when no keyword matches the item name.
const FallbackCategory = "Others"

// Categorize returns the grocery category for the given item name.
// Matching is case-insensitive: the name is scanned against an ordered
// keyword table and the first keyword found as a substring wins.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return FallbackCategory
	}

	for _, entry := range keywordTable {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return FallbackCategory
}

type keywordEntry struct {
	keyword  string
	category string
}

// Table order is significant: with names matching several keywords, the
// earliest entry wins ("milk chicken" resolves to Dairy, not Meat).
var keywordTable = []keywordEntry{
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
