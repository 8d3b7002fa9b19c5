package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/services"
)

type IngredientController struct {
	ingredients *services.IngredientService
}

func NewIngredientController(ingredients *services.IngredientService) *IngredientController {
	return &IngredientController{ingredients: ingredients}
}

// GET /api/ingredients/
func (ic *IngredientController) List(c *gin.Context) {
	ingredients, err := ic.ingredients.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	doc := mason.New()
	doc["items"] = ingredients
	doc.AddControl("self", mason.IngredientsHref())
	doc.AddControlPost("add-ingredient", "Add New ingredient", mason.IngredientsHref())
	respond(c, http.StatusOK, doc)
}

// POST /api/ingredients/
func (ic *IngredientController) Create(c *gin.Context) {
	var in services.IngredientInput
	if !bindJSON(c, &in) {
		return
	}
	ingredient, err := ic.ingredients.Create(in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Location", mason.IngredientHref(ingredient.ID))
	respond(c, http.StatusCreated, ingredientDocument(ingredient))
}

// GET /api/ingredients/{ingredient_id}/
func (ic *IngredientController) Get(c *gin.Context) {
	id, ok := pathID(c, "ingredient_id")
	if !ok {
		return
	}
	ingredient, err := ic.ingredients.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, ingredientDocument(ingredient))
}

// PUT /api/ingredients/{ingredient_id}/
func (ic *IngredientController) Update(c *gin.Context) {
	id, ok := pathID(c, "ingredient_id")
	if !ok {
		return
	}
	var patch services.IngredientPatch
	if !bindJSON(c, &patch) {
		return
	}
	ingredient, err := ic.ingredients.Update(id, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, ingredientDocument(ingredient))
}

// DELETE /api/ingredients/{ingredient_id}/
func (ic *IngredientController) Delete(c *gin.Context) {
	id, ok := pathID(c, "ingredient_id")
	if !ok {
		return
	}
	if err := ic.ingredients.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ingredientDocument(ingredient *models.Ingredient) mason.Document {
	doc := mason.Envelope(ingredient)
	doc.AddControl("self", mason.IngredientHref(ingredient.ID))
	doc.AddControl("profile", mason.IngredientProfile)
	doc.AddControl(mason.Namespace+":ingredients-all", mason.IngredientsHref(), map[string]any{
		"method": "GET",
		"title":  "All ingredients",
	})
	doc.AddControlPut("Edit Ingredient", mason.IngredientHref(ingredient.ID))
	doc.AddControlDelete("Delete Ingredient", mason.IngredientHref(ingredient.ID))
	return doc
}
