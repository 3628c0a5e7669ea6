package catalog

import "github.com/TedTes/trakfit/internal/profile"

var meals = []Meal{
	{
		ID:              "oatmeal_berries_001",
		Name:            "Oatmeal with Berries and Peanut Butter",
		BaseCost:        2.50,
		Macros:          Macros{ProteinG: 18, CarbsG: 62, FatG: 14, Calories: 446},
		Ingredients:     []string{"rolled oats", "mixed berries", "peanut butter", "oat milk"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietVegetarian, profile.DietVegan},
		PrepTimeMinutes: 10,
		Difficulty:      "easy",
	},
	{
		ID:              "greek_yogurt_bowl_001",
		Name:            "Greek Yogurt Bowl with Honey and Walnuts",
		BaseCost:        3.20,
		Macros:          Macros{ProteinG: 28, CarbsG: 34, FatG: 16, Calories: 392},
		Ingredients:     []string{"greek yogurt", "honey", "walnuts", "banana"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietVegetarian, profile.DietPescatarian},
		PrepTimeMinutes: 5,
		Difficulty:      "easy",
	},
	{
		ID:              "scrambled_eggs_001",
		Name:            "Scrambled Eggs with Avocado Toast",
		BaseCost:        3.80,
		Macros:          Macros{ProteinG: 24, CarbsG: 30, FatG: 26, Calories: 450},
		Ingredients:     []string{"eggs", "sourdough bread", "avocado", "butter"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietVegetarian, profile.DietPescatarian},
		PrepTimeMinutes: 12,
		Difficulty:      "easy",
	},
	{
		ID:              "tofu_scramble_001",
		Name:            "Tofu Scramble with Spinach",
		BaseCost:        3.00,
		Macros:          Macros{ProteinG: 22, CarbsG: 18, FatG: 16, Calories: 304},
		Ingredients:     []string{"firm tofu", "spinach", "nutritional yeast", "turmeric", "olive oil"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietVegetarian, profile.DietVegan},
		PrepTimeMinutes: 15,
		Difficulty:      "easy",
	},
	{
		ID:              "chicken_rice_bowl_001",
		Name:            "Grilled Chicken and Rice Bowl",
		BaseCost:        5.50,
		Macros:          Macros{ProteinG: 42, CarbsG: 55, FatG: 12, Calories: 496},
		Ingredients:     []string{"chicken breast", "jasmine rice", "broccoli", "soy sauce", "sesame oil"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietPaleo},
		PrepTimeMinutes: 25,
		Difficulty:      "medium",
	},
	{
		ID:              "salmon_quinoa_001",
		Name:            "Baked Salmon with Quinoa and Asparagus",
		BaseCost:        8.00,
		Macros:          Macros{ProteinG: 38, CarbsG: 40, FatG: 20, Calories: 492},
		Ingredients:     []string{"salmon fillet", "quinoa", "asparagus", "lemon", "olive oil"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietPescatarian},
		PrepTimeMinutes: 30,
		Difficulty:      "medium",
	},
	{
		ID:              "lentil_curry_001",
		Name:            "Red Lentil Curry with Brown Rice",
		BaseCost:        3.50,
		Macros:          Macros{ProteinG: 24, CarbsG: 68, FatG: 10, Calories: 458},
		Ingredients:     []string{"red lentils", "coconut milk", "brown rice", "curry paste", "onion"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietVegetarian, profile.DietVegan},
		PrepTimeMinutes: 35,
		Difficulty:      "medium",
	},
	{
		ID:              "chickpea_salad_001",
		Name:            "Mediterranean Chickpea Salad",
		BaseCost:        4.00,
		Macros:          Macros{ProteinG: 16, CarbsG: 45, FatG: 18, Calories: 406},
		Ingredients:     []string{"chickpeas", "cucumber", "cherry tomatoes", "red onion", "olive oil", "lemon"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietVegetarian, profile.DietVegan},
		PrepTimeMinutes: 15,
		Difficulty:      "easy",
	},
	{
		ID:              "turkey_wrap_001",
		Name:            "Turkey and Hummus Wrap",
		BaseCost:        4.50,
		Macros:          Macros{ProteinG: 32, CarbsG: 42, FatG: 14, Calories: 422},
		Ingredients:     []string{"turkey breast", "whole-wheat tortilla", "hummus", "lettuce", "tomato"},
		DietTypes:       []profile.DietType{profile.DietOmnivore},
		PrepTimeMinutes: 10,
		Difficulty:      "easy",
	},
	{
		ID:              "beef_stir_fry_001",
		Name:            "Beef and Vegetable Stir-Fry",
		BaseCost:        7.00,
		Macros:          Macros{ProteinG: 36, CarbsG: 28, FatG: 22, Calories: 454},
		Ingredients:     []string{"lean beef strips", "bell pepper", "snap peas", "garlic", "ginger", "tamari"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietPaleo, profile.DietKeto},
		PrepTimeMinutes: 20,
		Difficulty:      "medium",
	},
	{
		ID:              "keto_chicken_salad_001",
		Name:            "Chicken Caesar Salad, No Croutons",
		BaseCost:        6.00,
		Macros:          Macros{ProteinG: 40, CarbsG: 8, FatG: 32, Calories: 480},
		Ingredients:     []string{"chicken thigh", "romaine lettuce", "parmesan", "caesar dressing"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietKeto},
		PrepTimeMinutes: 15,
		Difficulty:      "easy",
	},
	{
		ID:              "shrimp_zoodles_001",
		Name:            "Garlic Shrimp with Zucchini Noodles",
		BaseCost:        7.50,
		Macros:          Macros{ProteinG: 34, CarbsG: 12, FatG: 18, Calories: 346},
		Ingredients:     []string{"shrimp", "zucchini", "garlic", "olive oil", "chili flakes"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietPescatarian, profile.DietKeto, profile.DietPaleo},
		PrepTimeMinutes: 20,
		Difficulty:      "medium",
	},
	{
		ID:              "tempeh_bowl_001",
		Name:            "Tempeh Buddha Bowl",
		BaseCost:        5.00,
		Macros:          Macros{ProteinG: 28, CarbsG: 52, FatG: 18, Calories: 482},
		Ingredients:     []string{"tempeh", "sweet potato", "kale", "brown rice", "tahini"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietVegetarian, profile.DietVegan},
		PrepTimeMinutes: 30,
		Difficulty:      "medium",
	},
	{
		ID:              "paleo_sweet_potato_hash_001",
		Name:            "Sweet Potato and Ground Pork Hash",
		BaseCost:        5.50,
		Macros:          Macros{ProteinG: 30, CarbsG: 36, FatG: 24, Calories: 480},
		Ingredients:     []string{"ground pork", "sweet potato", "bell pepper", "onion", "smoked paprika"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietPaleo},
		PrepTimeMinutes: 25,
		Difficulty:      "medium",
	},
	{
		ID:              "tuna_rice_cakes_001",
		Name:            "Tuna on Rice Cakes with Cottage Cheese",
		BaseCost:        3.80,
		Macros:          Macros{ProteinG: 36, CarbsG: 30, FatG: 8, Calories: 336},
		Ingredients:     []string{"canned tuna", "rice cakes", "cottage cheese", "chives"},
		DietTypes:       []profile.DietType{profile.DietOmnivore, profile.DietPescatarian},
		PrepTimeMinutes: 5,
		Difficulty:      "easy",
	},
}
