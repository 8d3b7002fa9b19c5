package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/database"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func strptr(s string) *string { return &s }

func floatptr(f float64) *float64 { return &f }

func intptr(i int) *int { return &i }

func mustCreateFood(t *testing.T, db *gorm.DB, name string) *models.Food {
	t.Helper()
	food, err := NewFoodService(db).Create(FoodInput{Name: name})
	require.NoError(t, err)
	return food
}

func mustCreateRecipe(t *testing.T, db *gorm.DB, foodID uint) *models.Recipe {
	t.Helper()
	recipe, err := NewRecipeService(db).Create(RecipeInput{
		FoodID:      foodID,
		Instruction: "mix and bake",
		PrepTime:    10,
		CookTime:    20,
		Servings:    4,
	})
	require.NoError(t, err)
	return recipe
}

func mustCreateIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	ingredient, err := NewIngredientService(db).Create(IngredientInput{Name: name})
	require.NoError(t, err)
	return ingredient
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category, err := NewCategoryService(db).Create(CategoryInput{Name: name})
	require.NoError(t, err)
	return category
}
