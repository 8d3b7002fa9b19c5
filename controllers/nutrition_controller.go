package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/services"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

// GET /api/nutritional-info/
func (nc *NutritionController) List(c *gin.Context) {
	infos, err := nc.nutrition.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	doc := mason.New()
	doc["items"] = infos
	doc.AddControl("self", mason.NutritionListHref())
	doc.AddControlPost("add-nutritional-info", "Add New Nutritional Info", mason.NutritionListHref())
	respond(c, http.StatusOK, doc)
}

// POST /api/nutritional-info/
func (nc *NutritionController) Create(c *gin.Context) {
	var in services.NutritionInput
	if !bindJSON(c, &in) {
		return
	}
	info, err := nc.nutrition.Create(in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Location", mason.NutritionHref(info.ID))
	respond(c, http.StatusCreated, nutritionDocument(info))
}

// GET /api/nutritional-info/{nutritional_info_id}/
func (nc *NutritionController) Get(c *gin.Context) {
	id, ok := pathID(c, "nutritional_info_id")
	if !ok {
		return
	}
	info, err := nc.nutrition.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, nutritionDocument(info))
}

// PUT /api/nutritional-info/{nutritional_info_id}/
func (nc *NutritionController) Update(c *gin.Context) {
	id, ok := pathID(c, "nutritional_info_id")
	if !ok {
		return
	}
	var patch services.NutritionPatch
	if !bindJSON(c, &patch) {
		return
	}
	info, err := nc.nutrition.Update(id, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, nutritionDocument(info))
}

// DELETE /api/nutritional-info/{nutritional_info_id}/
func (nc *NutritionController) Delete(c *gin.Context) {
	id, ok := pathID(c, "nutritional_info_id")
	if !ok {
		return
	}
	if err := nc.nutrition.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func nutritionDocument(info *models.NutritionalInfo) mason.Document {
	doc := mason.Envelope(info)
	doc.AddControl("self", mason.NutritionHref(info.ID))
	doc.AddControl("profile", mason.NutritionProfile)
	doc.AddControl(mason.Namespace+":recipe", mason.RecipeHref(info.RecipeID), map[string]any{
		"method": "GET",
		"title":  "Recipe of this nutritional info",
	})
	doc.AddControlPut("Edit Nutritional info", mason.NutritionHref(info.ID))
	doc.AddControlDelete("Delete Nutritional info", mason.NutritionHref(info.ID))
	return doc
}
