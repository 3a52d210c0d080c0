package food

import "strings"

// fallbackFoods is the curated knowledge base used when the live recipe source
// is unavailable or has nothing for a dish. Keys are normalized names
// (lowercase, spaces replaced with underscores). The table is read-only after
// package initialization.
var fallbackFoods = map[string]Info{
	"pizza": {
		Name: "Pizza",
		Ingredients: []string{
			"1 lb pizza dough",
			"1/2 cup tomato sauce",
			"2 cups mozzarella cheese",
			"2 tbsp olive oil",
			"Fresh basil leaves",
			"Salt and pepper to taste",
		},
		Vegetarian:  true,
		Calories:    266,
		Allergens:   []string{"Gluten", "Dairy"},
		Description: "Classic Italian flatbread topped with tomato sauce, cheese, and various toppings, baked until golden and bubbly",
	},
	"hamburger": {
		Name: "Hamburger",
		Ingredients: []string{
			"1 lb ground beef",
			"4 hamburger buns",
			"4 slices cheese",
			"Lettuce leaves",
			"Tomato slices",
			"Onion slices",
			"Pickles",
			"Ketchup and mustard",
		},
		Calories:    540,
		Allergens:   []string{"Gluten", "Dairy"},
		Description: "Classic American sandwich with seasoned ground beef patty, fresh vegetables, and condiments between soft buns",
	},
	"sushi": {
		Name: "Sushi",
		Ingredients: []string{
			"2 cups sushi rice",
			"1/4 cup rice vinegar",
			"8 oz fresh fish (tuna, salmon)",
			"4 nori sheets",
			"Soy sauce",
			"Wasabi",
			"Pickled ginger",
			"Cucumber and avocado",
		},
		GlutenFree:  true,
		DairyFree:   true,
		Calories:    143,
		Allergens:   []string{"Fish", "Soy"},
		Description: "Traditional Japanese dish featuring vinegared rice combined with fresh raw fish, vegetables, and seaweed",
	},
	"donuts": {
		Name: "Donuts",
		Ingredients: []string{
			"2 cups all-purpose flour",
			"1/2 cup sugar",
			"2 eggs",
			"1 cup milk",
			"1/4 cup butter",
			"2 tsp yeast",
			"1 tsp vanilla extract",
			"Oil for frying",
			"Glaze or icing",
		},
		Vegetarian:  true,
		Calories:    250,
		Allergens:   []string{"Gluten", "Dairy", "Eggs"},
		Description: "Sweet fried dough confection, often ring-shaped, glazed or filled with cream or jam",
	},
	"french_fries": {
		Name: "French Fries",
		Ingredients: []string{
			"4 large potatoes",
			"Vegetable oil for frying",
			"Salt to taste",
		},
		Vegan:       true,
		Vegetarian:  true,
		GlutenFree:  true,
		DairyFree:   true,
		Calories:    312,
		Allergens:   []string{},
		Description: "Crispy deep-fried potato strips, golden on the outside and fluffy inside, seasoned with salt",
	},
	"ice_cream": {
		Name: "Ice Cream",
		Ingredients: []string{
			"2 cups heavy cream",
			"1 cup whole milk",
			"3/4 cup sugar",
			"4 egg yolks",
			"2 tsp vanilla extract",
			"Pinch of salt",
		},
		Vegetarian:  true,
		GlutenFree:  true,
		Calories:    207,
		Allergens:   []string{"Dairy", "Eggs"},
		Description: "Frozen dessert made from sweetened and flavored dairy products, churned to create a smooth, creamy texture",
	},
	"steak": {
		Name: "Steak",
		Ingredients: []string{
			"1 lb beef steak (ribeye or sirloin)",
			"2 tbsp butter",
			"3 cloves garlic",
			"Fresh rosemary and thyme",
			"Salt and black pepper",
			"Olive oil",
		},
		GlutenFree:  true,
		Calories:    679,
		Allergens:   []string{"Dairy"},
		Description: "Premium cut of beef, grilled or pan-seared to perfection, seasoned with herbs and spices",
	},
	"ramen": {
		Name: "Ramen",
		Ingredients: []string{
			"4 oz wheat noodles",
			"4 cups chicken or pork broth",
			"2 tbsp soy sauce",
			"1 tbsp miso paste",
			"2 soft-boiled eggs",
			"4 oz pork belly or chicken",
			"Green onions",
			"Nori sheets",
			"Bamboo shoots",
		},
		DairyFree:   true,
		Calories:    436,
		Allergens:   []string{"Gluten", "Eggs", "Soy"},
		Description: "Japanese noodle soup with rich broth, topped with meat, eggs, and vegetables",
	},
}

func init() {
	// Singular alias shares the same curated record.
	fallbackFoods["donut"] = fallbackFoods["donuts"]
}

// Lookup returns the curated Info for a food name, or a generic record when the
// name is not in the table. It never fails and always returns a fully
// populated Info.
func Lookup(foodName string) Info {
	key := strings.ReplaceAll(strings.ToLower(foodName), " ", "_")
	if info, ok := fallbackFoods[key]; ok {
		return info
	}

	return Info{
		Name:        strings.ReplaceAll(foodName, "_", " "),
		Description: "Nutritional information unavailable for this food item",
		Ingredients: []string{IngredientUnavailable},
		Calories:    0,
		Allergens:   []string{},
	}
}
