package services

import (
	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

// Search and filter queries over recipes.

func (s *RecipeService) ListByFood(foodID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("food_id = ?", foodID).Order("recipe_id").Find(&recipes).Error
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipes, nil
}

// SearchByIngredient returns recipes using an ingredient whose name matches
// the given fragment, case-insensitively.
func (s *RecipeService) SearchByIngredient(name string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Select("recipe.*").
		Joins("JOIN recipe_ingredient ON recipe_ingredient.recipe_id = recipe.recipe_id").
		Joins("JOIN ingredient ON ingredient.ingredient_id = recipe_ingredient.ingredient_id").
		Where("ingredient.name LIKE ?", "%"+name+"%").
		Find(&recipes).Error
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipes, nil
}

// SearchByCategory returns recipes belonging to a category whose name
// matches the given fragment, case-insensitively.
func (s *RecipeService) SearchByCategory(name string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Select("recipe.*").
		Joins("JOIN recipe_category ON recipe_category.recipe_id = recipe.recipe_id").
		Joins("JOIN category ON category.category_id = recipe_category.category_id").
		Where("category.name LIKE ?", "%"+name+"%").
		Find(&recipes).Error
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipes, nil
}

// SearchByMaxTotalTime returns recipes whose prep plus cook time stays
// within maxTime minutes.
func (s *RecipeService) SearchByMaxTotalTime(maxTime int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("prep_time + cook_time <= ?", maxTime).Find(&recipes).Error
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipes, nil
}

func (s *RecipeService) ListByServings(servings int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("servings = ?", servings).Find(&recipes).Error
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipes, nil
}

// ListLowCalorie returns recipes with nutritional info at or under
// maxCalories.
func (s *RecipeService) ListLowCalorie(maxCalories int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Select("recipe.*").
		Joins("JOIN nutritional_info ON nutritional_info.recipe_id = recipe.recipe_id").
		Where("nutritional_info.calories <= ?", maxCalories).
		Find(&recipes).Error
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipes, nil
}
