package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/services"
)

type RecipeController struct {
	recipes *services.RecipeService
}

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{recipes: recipes}
}

// GET /api/recipes/
//
// Optional query filters: food_id, ingredient, category, max_time, servings,
// max_calories. Without filters the full collection is returned with all
// relations loaded.
func (rc *RecipeController) List(c *gin.Context) {
	recipes, err := rc.filteredList(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]models.RecipeDetail, 0, len(recipes))
	for i := range recipes {
		items = append(items, recipes[i].Detail())
	}
	doc := mason.New()
	doc["items"] = items
	doc.AddControl("self", mason.RecipesHref())
	doc.AddControlPost("add-recipe", "Add New Recipe", mason.RecipesHref())
	respond(c, http.StatusOK, doc)
}

func (rc *RecipeController) filteredList(c *gin.Context) ([]models.Recipe, error) {
	if v := c.Query("food_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, apperrors.InvalidInput("food_id must be a number")
		}
		return rc.recipes.ListByFood(uint(id))
	}
	if v := c.Query("ingredient"); v != "" {
		return rc.recipes.SearchByIngredient(v)
	}
	if v := c.Query("category"); v != "" {
		return rc.recipes.SearchByCategory(v)
	}
	if v := c.Query("max_time"); v != "" {
		maxTime, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperrors.InvalidInput("max_time must be a number")
		}
		return rc.recipes.SearchByMaxTotalTime(maxTime)
	}
	if v := c.Query("servings"); v != "" {
		servings, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperrors.InvalidInput("servings must be a number")
		}
		return rc.recipes.ListByServings(servings)
	}
	if v := c.Query("max_calories"); v != "" {
		maxCalories, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperrors.InvalidInput("max_calories must be a number")
		}
		return rc.recipes.ListLowCalorie(maxCalories)
	}
	return rc.recipes.List()
}

// POST /api/recipes/
func (rc *RecipeController) Create(c *gin.Context) {
	var in services.RecipeInput
	if !bindJSON(c, &in) {
		return
	}
	recipe, err := rc.recipes.Create(in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	created, err := rc.recipes.GetByID(recipe.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Location", mason.RecipeHref(recipe.ID))
	respond(c, http.StatusCreated, recipeDocument(created))
}

// GET /api/recipes/{recipe_id}/
func (rc *RecipeController) Get(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	recipe, err := rc.recipes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, recipeDocument(recipe))
}

// DELETE /api/recipes/{recipe_id}/
//
// There is no recipe PUT: replacing a recipe wholesale was removed from the
// surface, clients recreate instead.
func (rc *RecipeController) Delete(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	if err := rc.recipes.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func recipeDocument(recipe *models.Recipe) mason.Document {
	doc := mason.Envelope(recipe.Detail())
	doc.AddControl("self", mason.RecipeHref(recipe.ID))
	doc.AddControl("profile", mason.RecipeProfile)
	doc.AddControl(mason.Namespace+":recipes-all", mason.RecipesHref(), map[string]any{
		"method": "GET",
		"title":  "All recipes",
	})
	doc.AddControl(mason.Namespace+":food", mason.FoodHref(recipe.FoodID), map[string]any{
		"method": "GET",
		"title":  "Food of this recipe",
	})
	doc.AddControl(mason.Namespace+":ingredients", mason.RecipeIngredientsHref(recipe.ID), map[string]any{
		"method": "GET",
		"title":  "Ingredients of this recipe",
	})
	doc.AddControl(mason.Namespace+":categories", mason.RecipeCategoriesHref(recipe.ID), map[string]any{
		"method": "GET",
		"title":  "Categories of this recipe",
	})
	doc.AddControlDelete("Delete Recipe", mason.RecipeHref(recipe.ID))
	return doc
}
