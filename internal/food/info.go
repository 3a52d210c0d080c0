package food

// IngredientUnavailable is the sentinel ingredient line used when no real
// ingredient information could be extracted for a dish.
const IngredientUnavailable = "Ingredient information not available"

// Info describes an identified dish: what it is, what goes into it, and the
// dietary and allergen properties of it. An Info is always fully populated;
// lookup and resolution paths substitute complete fallback records instead of
// returning partial ones.
type Info struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Calories    int      `json:"calories"`
	Vegan       bool     `json:"vegan"`
	Vegetarian  bool     `json:"vegetarian"`
	GlutenFree  bool     `json:"gluten_free"`
	DairyFree   bool     `json:"dairy_free"`
	Allergens   []string `json:"allergens"`
}

// DietaryTags derives display tags from the four dietary flags, in fixed order.
func (i Info) DietaryTags() []string {
	var tags []string
	if i.Vegan {
		tags = append(tags, "Vegan")
	}
	if i.Vegetarian {
		tags = append(tags, "Vegetarian")
	}
	if i.GlutenFree {
		tags = append(tags, "Gluten-Free")
	}
	if i.DairyFree {
		tags = append(tags, "Dairy-Free")
	}
	return tags
}
