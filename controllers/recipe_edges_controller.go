package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/services"
)

// Handlers for the recipe-ingredient and recipe-category association
// resources.

// GET /api/recipes/{recipe_id}/ingredients/
func (rc *RecipeController) GetIngredients(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	recipe, err := rc.recipes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	detail := recipe.Detail()
	doc := mason.New()
	doc["recipe_id"] = detail.RecipeID
	doc["ingredients"] = detail.Ingredients
	doc.AddControl("self", mason.RecipeIngredientsHref(id))
	doc.AddControl("up", mason.RecipeHref(id))
	doc.AddControlPost("add-ingredient", "Add ingredient to recipe", mason.RecipeIngredientsHref(id))
	respond(c, http.StatusOK, doc)
}

// POST /api/recipes/{recipe_id}/ingredients/
func (rc *RecipeController) AddIngredient(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	var in services.IngredientEdgeInput
	if !bindJSON(c, &in) {
		return
	}
	edge, err := rc.recipes.AddIngredient(id, in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	doc := mason.Envelope(edge)
	doc.AddControl("self", mason.RecipeIngredientsHref(id))
	doc.AddControl("up", mason.RecipeHref(id))
	c.Header("Location", mason.RecipeIngredientsHref(id))
	respond(c, http.StatusCreated, doc)
}

// PUT /api/recipes/{recipe_id}/ingredients/
//
// Updates the quantity or unit of one edge; the ingredient_id in the body
// selects which.
func (rc *RecipeController) UpdateIngredient(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	var patch services.IngredientEdgePatch
	if !bindJSON(c, &patch) {
		return
	}
	edge, err := rc.recipes.UpdateIngredient(id, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	doc := mason.Envelope(edge)
	doc.AddControl("self", mason.RecipeIngredientsHref(id))
	doc.AddControl("up", mason.RecipeHref(id))
	respond(c, http.StatusOK, doc)
}

// DELETE /api/recipes/{recipe_id}/ingredients/
func (rc *RecipeController) RemoveIngredient(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	var body struct {
		IngredientID uint `json:"ingredient_id"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := rc.recipes.RemoveIngredient(id, body.IngredientID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/recipes/{recipe_id}/categories/
func (rc *RecipeController) GetCategories(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	recipe, err := rc.recipes.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	detail := recipe.Detail()
	doc := mason.New()
	doc["recipe_id"] = detail.RecipeID
	doc["categories"] = detail.Categories
	doc.AddControl("self", mason.RecipeCategoriesHref(id))
	doc.AddControl("up", mason.RecipeHref(id))
	doc.AddControlPost("add-category", "Add category to recipe", mason.RecipeCategoriesHref(id))
	respond(c, http.StatusOK, doc)
}

// POST /api/recipes/{recipe_id}/categories/
//
// Category edges carry no attributes, so there is no PUT here: a full
// replace of an edge is delete then re-add.
func (rc *RecipeController) AddCategory(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	var body struct {
		CategoryID uint `json:"category_id"`
	}
	if !bindJSON(c, &body) {
		return
	}
	edge, err := rc.recipes.AddCategory(id, body.CategoryID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	doc := mason.Envelope(edge)
	doc.AddControl("self", mason.RecipeCategoriesHref(id))
	doc.AddControl("up", mason.RecipeHref(id))
	c.Header("Location", mason.RecipeCategoriesHref(id))
	respond(c, http.StatusCreated, doc)
}

// DELETE /api/recipes/{recipe_id}/categories/
func (rc *RecipeController) RemoveCategory(c *gin.Context) {
	id, ok := pathID(c, "recipe_id")
	if !ok {
		return
	}
	var body struct {
		CategoryID uint `json:"category_id"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := rc.recipes.RemoveCategory(id, body.CategoryID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
