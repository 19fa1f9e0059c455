package recipe

import "nutrition-estimator/internal/pkg/common"

// sampleRecipes are bundled ingredient lists for well-known dishes, used when
// the recipe API is disabled or unavailable. Keys are normalized dish names.
var sampleRecipes = map[string][]common.IngredientLine{
	"paneer butter masala": {
		{Ingredient: "Paneer", Quantity: "250g"},
		{Ingredient: "Butter", Quantity: "2 tbsp"},
		{Ingredient: "Tomato", Quantity: "3 medium"},
		{Ingredient: "Onion", Quantity: "1 large"},
		{Ingredient: "Cream", Quantity: "2 tbsp"},
		{Ingredient: "Garam Masala", Quantity: "1 tsp"},
		{Ingredient: "Red Chilli Powder", Quantity: "1 tsp"},
		{Ingredient: "Turmeric Powder", Quantity: "1/2 tsp"},
		{Ingredient: "Salt", Quantity: "to taste"},
	},
	"dal makhani": {
		{Ingredient: "Black Urad Dal", Quantity: "1 cup"},
		{Ingredient: "Rajma (Red Kidney Beans)", Quantity: "1/4 cup"},
		{Ingredient: "Onion", Quantity: "1 medium"},
		{Ingredient: "Tomato", Quantity: "2 medium"},
		{Ingredient: "Ginger", Quantity: "1 inch piece"},
		{Ingredient: "Garlic", Quantity: "4-5 cloves"},
		{Ingredient: "Green Chilli", Quantity: "2"},
		{Ingredient: "Butter", Quantity: "2 tbsp"},
		{Ingredient: "Cream", Quantity: "2 tbsp"},
		{Ingredient: "Garam Masala", Quantity: "1 tsp"},
		{Ingredient: "Cumin Seeds", Quantity: "1 tsp"},
		{Ingredient: "Salt", Quantity: "to taste"},
	},
	"chole bhature": {
		{Ingredient: "Chickpeas (Chole)", Quantity: "2 cups"},
		{Ingredient: "Onion", Quantity: "2 medium"},
		{Ingredient: "Tomato", Quantity: "3 medium"},
		{Ingredient: "Ginger", Quantity: "1 inch piece"},
		{Ingredient: "Garlic", Quantity: "5-6 cloves"},
		{Ingredient: "Green Chilli", Quantity: "2-3"},
		{Ingredient: "Tea Bags", Quantity: "1"},
		{Ingredient: "Chole Masala", Quantity: "2 tbsp"},
		{Ingredient: "Cumin Seeds", Quantity: "1 tsp"},
		{Ingredient: "Dried Mango Powder (Amchur)", Quantity: "1 tsp"},
		{Ingredient: "All-Purpose Flour (Maida)", Quantity: "2 cups"},
		{Ingredient: "Yogurt", Quantity: "1/4 cup"},
		{Ingredient: "Baking Soda", Quantity: "1/4 tsp"},
		{Ingredient: "Oil", Quantity: "for deep frying"},
		{Ingredient: "Salt", Quantity: "to taste"},
	},
	"palak paneer": {
		{Ingredient: "Spinach (Palak)", Quantity: "500g"},
		{Ingredient: "Paneer", Quantity: "250g"},
		{Ingredient: "Onion", Quantity: "1 medium"},
		{Ingredient: "Tomato", Quantity: "1 medium"},
		{Ingredient: "Ginger", Quantity: "1 inch piece"},
		{Ingredient: "Garlic", Quantity: "4-5 cloves"},
		{Ingredient: "Green Chilli", Quantity: "2"},
		{Ingredient: "Cream", Quantity: "2 tbsp"},
		{Ingredient: "Garam Masala", Quantity: "1 tsp"},
		{Ingredient: "Cumin Seeds", Quantity: "1 tsp"},
		{Ingredient: "Turmeric Powder", Quantity: "1/2 tsp"},
		{Ingredient: "Red Chilli Powder", Quantity: "1 tsp"},
		{Ingredient: "Salt", Quantity: "to taste"},
	},
	"aloo gobi": {
		{Ingredient: "Potato", Quantity: "2 medium"},
		{Ingredient: "Cauliflower", Quantity: "1 small"},
		{Ingredient: "Onion", Quantity: "1 medium"},
		{Ingredient: "Tomato", Quantity: "1 medium"},
		{Ingredient: "Ginger", Quantity: "1 inch piece"},
		{Ingredient: "Garlic", Quantity: "3-4 cloves"},
		{Ingredient: "Green Chilli", Quantity: "2"},
		{Ingredient: "Cumin Seeds", Quantity: "1 tsp"},
		{Ingredient: "Turmeric Powder", Quantity: "1/2 tsp"},
		{Ingredient: "Red Chilli Powder", Quantity: "1 tsp"},
		{Ingredient: "Coriander Powder", Quantity: "1 tsp"},
		{Ingredient: "Garam Masala", Quantity: "1/2 tsp"},
		{Ingredient: "Salt", Quantity: "to taste"},
	},
}
