package food

import "strings"

// allergenKeywords maps each allergen tag to the keywords that trigger it.
// Detection is plain substring matching over the joined ingredient text, so
// "nut" also fires inside words like "coconut"; that over-matching is a known
// limitation of the keyword approach and is kept as-is.
var allergenKeywords = []struct {
	tag      string
	keywords []string
}{
	{"Dairy", []string{"milk", "cheese", "cream", "butter", "yogurt"}},
	{"Eggs", []string{"egg"}},
	{"Gluten", []string{"wheat", "flour", "bread"}},
	{"Fish/Seafood", []string{"fish", "salmon", "tuna", "seafood"}},
	{"Soy", []string{"soy", "tofu"}},
	{"Tree Nuts", []string{"peanut", "almond", "walnut", "cashew", "nut"}},
	{"Shellfish", []string{"shrimp", "crab", "lobster", "shellfish"}},
}

// DetectAllergens scans the ingredient lines for allergen keywords and returns
// the matched allergen tags. Matching is case-insensitive and independent of
// ingredient order; each tag appears at most once.
func DetectAllergens(ingredients []string) []string {
	blob := strings.ToLower(strings.Join(ingredients, " "))

	allergens := []string{}
	for _, group := range allergenKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(blob, keyword) {
				allergens = append(allergens, group.tag)
				break
			}
		}
	}
	return allergens
}
