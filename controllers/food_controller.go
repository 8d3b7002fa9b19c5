package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /api/foods/
func (fc *FoodController) List(c *gin.Context) {
	foods, err := fc.foods.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	doc := mason.New()
	doc["items"] = foods
	doc.AddControl("self", mason.FoodsHref())
	doc.AddControlPost("add-food", "Add New Food", mason.FoodsHref())
	respond(c, http.StatusOK, doc)
}

// POST /api/foods/
func (fc *FoodController) Create(c *gin.Context) {
	var in services.FoodInput
	if !bindJSON(c, &in) {
		return
	}
	food, err := fc.foods.Create(in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Location", mason.FoodHref(food.ID))
	respond(c, http.StatusCreated, foodDocument(food))
}

// GET /api/foods/{food_id}/
func (fc *FoodController) Get(c *gin.Context) {
	id, ok := pathID(c, "food_id")
	if !ok {
		return
	}
	food, err := fc.foods.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, foodDocument(food))
}

// PUT /api/foods/{food_id}/
func (fc *FoodController) Update(c *gin.Context) {
	id, ok := pathID(c, "food_id")
	if !ok {
		return
	}
	var patch services.FoodPatch
	if !bindJSON(c, &patch) {
		return
	}
	food, err := fc.foods.Update(id, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, foodDocument(food))
}

// DELETE /api/foods/{food_id}/
func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := pathID(c, "food_id")
	if !ok {
		return
	}
	if err := fc.foods.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func foodDocument(food *models.Food) mason.Document {
	doc := mason.Envelope(food)
	doc.AddControl("self", mason.FoodHref(food.ID))
	doc.AddControl("profile", mason.FoodProfile)
	doc.AddControl(mason.Namespace+":foods-all", mason.FoodsHref(), map[string]any{
		"method": "GET",
		"title":  "All foods",
	})
	doc.AddControlPut("Edit Food", mason.FoodHref(food.ID))
	doc.AddControlDelete("Delete Food", mason.FoodHref(food.ID))
	return doc
}
