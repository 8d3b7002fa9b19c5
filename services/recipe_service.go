package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

// RecipeService handles recipe CRUD and keeps a recipe consistent with its
// owned nutritional info and its ingredient and category edges.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeInput carries the fields accepted when creating a recipe.
type RecipeInput struct {
	FoodID      uint   `json:"food_id"`
	Instruction string `json:"instruction"`
	PrepTime    int    `json:"prep_time"`
	CookTime    int    `json:"cook_time"`
	Servings    int    `json:"servings"`
}

// RecipePatch carries the fields accepted when updating a recipe. Nil fields
// are left untouched.
type RecipePatch struct {
	FoodID      *uint   `json:"food_id"`
	Instruction *string `json:"instruction"`
	PrepTime    *int    `json:"prep_time"`
	CookTime    *int    `json:"cook_time"`
	Servings    *int    `json:"servings"`
}

// IngredientEdgeInput carries the body of a recipe-ingredient association.
type IngredientEdgeInput struct {
	IngredientID uint     `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity"`
	Unit         string   `json:"unit"`
}

// IngredientEdgePatch carries a partial update of a recipe-ingredient edge.
type IngredientEdgePatch struct {
	IngredientID uint     `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
}

func validateRecipeFields(instruction string, prepTime, cookTime, servings int) error {
	if strings.TrimSpace(instruction) == "" {
		return apperrors.InvalidInput("instruction is required")
	}
	if prepTime < 0 {
		return apperrors.InvalidInput("prep_time must not be negative")
	}
	if cookTime < 0 {
		return apperrors.InvalidInput("cook_time must not be negative")
	}
	if servings <= 0 {
		return apperrors.InvalidInput("servings must be greater than zero")
	}
	return nil
}

func (s *RecipeService) Create(in RecipeInput) (*models.Recipe, error) {
	if err := validateRecipeFields(in.Instruction, in.PrepTime, in.CookTime, in.Servings); err != nil {
		return nil, err
	}

	var food models.Food
	if err := s.db.First(&food, in.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food %d not found", in.FoodID)
		}
		return nil, apperrors.FromStore(err)
	}

	recipe := &models.Recipe{
		FoodID:      in.FoodID,
		Instruction: in.Instruction,
		PrepTime:    in.PrepTime,
		CookTime:    in.CookTime,
		Servings:    in.Servings,
	}
	if err := s.db.Create(recipe).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipe, nil
}

// GetByID loads a recipe with its food, nutritional info, ingredient edges,
// and categories.
func (s *RecipeService) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Food").
		Preload("NutritionalInfo").
		Preload("Ingredients.Ingredient").
		Preload("Categories").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("recipe %d not found", id)
		}
		return nil, apperrors.FromStore(err)
	}
	return &recipe, nil
}

func (s *RecipeService) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Preload("Food").
		Preload("NutritionalInfo").
		Preload("Ingredients.Ingredient").
		Preload("Categories").
		Order("recipe_id").
		Find(&recipes).Error
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return recipes, nil
}

// Update applies a partial update to a recipe. Kept at the service level for
// callers such as the seeder; the HTTP surface deliberately has no recipe
// PUT.
func (s *RecipeService) Update(id uint, patch RecipePatch) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("recipe %d not found", id)
		}
		return nil, apperrors.FromStore(err)
	}
	if patch.FoodID != nil {
		var food models.Food
		if err := s.db.First(&food, *patch.FoodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("food %d not found", *patch.FoodID)
			}
			return nil, apperrors.FromStore(err)
		}
		recipe.FoodID = *patch.FoodID
	}
	if patch.Instruction != nil {
		recipe.Instruction = *patch.Instruction
	}
	if patch.PrepTime != nil {
		recipe.PrepTime = *patch.PrepTime
	}
	if patch.CookTime != nil {
		recipe.CookTime = *patch.CookTime
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
	if err := validateRecipeFields(recipe.Instruction, recipe.PrepTime, recipe.CookTime, recipe.Servings); err != nil {
		return nil, err
	}
	if err := s.db.Save(&recipe).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return s.GetByID(id)
}

// Delete removes the recipe with its nutritional info and both edge sets in
// one transaction.
func (s *RecipeService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("recipe %d not found", id)
			}
			return err
		}
		return deleteRecipeTree(tx, id)
	})
	if err != nil {
		return apperrors.FromStore(err)
	}
	return nil
}

// deleteRecipeTree removes a recipe and its dependents in dependency order:
// edges and nutritional info first, then the recipe row. Must run inside a
// transaction.
func deleteRecipeTree(tx *gorm.DB, recipeID uint) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeCategory{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.NutritionalInfo{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Recipe{}, recipeID).Error
}

// AddIngredient associates an ingredient with a recipe. Both sides must
// exist, the quantity must be strictly positive, and the pair must not be
// associated yet. The existence checks and the insert share one transaction;
// a race on the same pair loses against the composite primary key and is
// reported as a conflict.
func (s *RecipeService) AddIngredient(recipeID uint, in IngredientEdgeInput) (*models.RecipeIngredient, error) {
	if in.IngredientID == 0 {
		return nil, apperrors.InvalidInput("ingredient_id is required")
	}
	if in.Quantity == nil {
		return nil, apperrors.InvalidInput("quantity is required")
	}
	if *in.Quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be greater than zero")
	}
	unit := in.Unit
	if unit == "" {
		unit = "piece"
	}

	var edge *models.RecipeIngredient
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRecipe(tx, recipeID); err != nil {
			return err
		}
		var ingredient models.Ingredient
		if err := tx.First(&ingredient, in.IngredientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("ingredient %d not found", in.IngredientID)
			}
			return err
		}

		var existing models.RecipeIngredient
		err := tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, in.IngredientID).
			First(&existing).Error
		if err == nil {
			return apperrors.Conflict("ingredient %d is already part of recipe %d", in.IngredientID, recipeID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		edge = &models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: in.IngredientID,
			Quantity:     *in.Quantity,
			Unit:         unit,
		}
		return tx.Create(edge).Error
	})
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return edge, nil
}

// UpdateIngredient applies a partial update to an existing recipe-ingredient
// edge.
func (s *RecipeService) UpdateIngredient(recipeID uint, patch IngredientEdgePatch) (*models.RecipeIngredient, error) {
	if patch.IngredientID == 0 {
		return nil, apperrors.InvalidInput("ingredient_id is required")
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be greater than zero")
	}

	var edge models.RecipeIngredient
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, patch.IngredientID).
			First(&edge).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("ingredient %d is not part of recipe %d", patch.IngredientID, recipeID)
			}
			return err
		}
		updates := map[string]any{}
		if patch.Quantity != nil {
			updates["quantity"] = *patch.Quantity
			edge.Quantity = *patch.Quantity
		}
		if patch.Unit != nil {
			updates["unit"] = *patch.Unit
			edge.Unit = *patch.Unit
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&models.RecipeIngredient{}).
			Where("recipe_id = ? AND ingredient_id = ?", recipeID, patch.IngredientID).
			Updates(updates).Error
	})
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return &edge, nil
}

// RemoveIngredient deletes a recipe-ingredient edge. Removing an edge that
// does not exist reports not found; a second delete of the same edge never
// silently succeeds.
func (s *RecipeService) RemoveIngredient(recipeID, ingredientID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var edge models.RecipeIngredient
		err := tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
			First(&edge).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("ingredient %d is not part of recipe %d", ingredientID, recipeID)
			}
			return err
		}
		return tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
			Delete(&models.RecipeIngredient{}).Error
	})
	if err != nil {
		return apperrors.FromStore(err)
	}
	return nil
}

// AddCategory associates a category with a recipe. Same shape as
// AddIngredient without attributes.
func (s *RecipeService) AddCategory(recipeID, categoryID uint) (*models.RecipeCategory, error) {
	if categoryID == 0 {
		return nil, apperrors.InvalidInput("category_id is required")
	}

	var edge *models.RecipeCategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRecipe(tx, recipeID); err != nil {
			return err
		}
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("category %d not found", categoryID)
			}
			return err
		}

		var existing models.RecipeCategory
		err := tx.Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
			First(&existing).Error
		if err == nil {
			return apperrors.Conflict("category %d is already part of recipe %d", categoryID, recipeID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		edge = &models.RecipeCategory{RecipeID: recipeID, CategoryID: categoryID}
		return tx.Create(edge).Error
	})
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return edge, nil
}

// RemoveCategory deletes a recipe-category edge; missing edges report not
// found.
func (s *RecipeService) RemoveCategory(recipeID, categoryID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var edge models.RecipeCategory
		err := tx.Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
			First(&edge).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("category %d is not part of recipe %d", categoryID, recipeID)
			}
			return err
		}
		return tx.Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
			Delete(&models.RecipeCategory{}).Error
	})
	if err != nil {
		return apperrors.FromStore(err)
	}
	return nil
}

func requireRecipe(tx *gorm.DB, recipeID uint) error {
	var recipe models.Recipe
	if err := tx.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("recipe %d not found", recipeID)
		}
		return err
	}
	return nil
}
