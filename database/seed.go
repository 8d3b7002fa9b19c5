package database

import (
	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

func strptr(s string) *string { return &s }

// Seed populates the database with sample foods, ingredients, categories,
// recipes, and nutritional information. Everything is inserted in one
// transaction so a partial seed never survives.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		foods := map[string]*models.Food{
			"Pizza": {Name: "Pizza", Description: strptr("Italian flatbread topped with various ingredients")},
			"Pasta": {Name: "Pasta", Description: strptr("Italian noodles with sauce")},
			"Salad": {Name: "Salad", Description: strptr("Fresh mixed vegetables with dressing")},
			"Soup":  {Name: "Soup", Description: strptr("Warm liquid food with various ingredients")},
		}
		for _, f := range foods {
			if err := tx.Create(f).Error; err != nil {
				return err
			}
		}

		ingredients := map[string]*models.Ingredient{}
		for _, name := range []string{"Flour", "Tomato", "Cheese", "Basil", "Olive Oil", "Garlic", "Salt", "Pepper"} {
			ing := &models.Ingredient{Name: name, ImageURL: strptr(name + ".jpg")}
			if err := tx.Create(ing).Error; err != nil {
				return err
			}
			ingredients[name] = ing
		}

		categories := map[string]*models.Category{
			"Italian":      {Name: "Italian", Description: strptr("Traditional Italian cuisine")},
			"Vegetarian":   {Name: "Vegetarian", Description: strptr("Meat-free dishes")},
			"Quick & Easy": {Name: "Quick & Easy", Description: strptr("Ready in 30 minutes or less")},
			"Healthy":      {Name: "Healthy", Description: strptr("Nutritious and balanced meals")},
		}
		for _, c := range categories {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}

		type edge struct {
			ingredient string
			quantity   float64
			unit       string
		}
		samples := []struct {
			food        string
			instruction string
			prepTime    int
			cookTime    int
			servings    int
			ingredients []edge
			categories  []string
			nutrition   models.NutritionalInfo
		}{
			{
				food: "Pizza",
				instruction: "1. Make dough with flour, water, and yeast\n" +
					"2. Spread tomato sauce\n" +
					"3. Add fresh mozzarella and basil\n" +
					"4. Bake at 450F for 15 minutes",
				prepTime: 30, cookTime: 15, servings: 4,
				ingredients: []edge{
					{"Flour", 500, "g"},
					{"Tomato", 200, "g"},
					{"Cheese", 150, "g"},
					{"Basil", 10, "leaves"},
					{"Olive Oil", 2, "tbsp"},
				},
				categories: []string{"Italian", "Vegetarian"},
				nutrition:  models.NutritionalInfo{Calories: 266, Protein: 11, Carbs: 33, Fat: 9},
			},
			{
				food: "Pasta",
				instruction: "1. Cook pasta in salted water\n" +
					"2. Saute garlic in olive oil\n" +
					"3. Toss pasta with garlic oil\n" +
					"4. Add cheese and pepper",
				prepTime: 10, cookTime: 15, servings: 2,
				ingredients: []edge{
					{"Garlic", 4, "cloves"},
					{"Olive Oil", 3, "tbsp"},
					{"Cheese", 50, "g"},
					{"Salt", 1, "tsp"},
					{"Pepper", 0.5, "tsp"},
				},
				categories: []string{"Italian", "Quick & Easy"},
				nutrition:  models.NutritionalInfo{Calories: 320, Protein: 9, Carbs: 42, Fat: 14},
			},
		}

		for _, s := range samples {
			recipe := &models.Recipe{
				FoodID:      foods[s.food].ID,
				Instruction: s.instruction,
				PrepTime:    s.prepTime,
				CookTime:    s.cookTime,
				Servings:    s.servings,
			}
			if err := tx.Create(recipe).Error; err != nil {
				return err
			}
			for _, e := range s.ingredients {
				ri := &models.RecipeIngredient{
					RecipeID:     recipe.ID,
					IngredientID: ingredients[e.ingredient].ID,
					Quantity:     e.quantity,
					Unit:         e.unit,
				}
				if err := tx.Create(ri).Error; err != nil {
					return err
				}
			}
			for _, name := range s.categories {
				rc := &models.RecipeCategory{RecipeID: recipe.ID, CategoryID: categories[name].ID}
				if err := tx.Create(rc).Error; err != nil {
					return err
				}
			}
			n := s.nutrition
			n.RecipeID = recipe.ID
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
