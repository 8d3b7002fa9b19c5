package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/services"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// GET /api/categories/
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.categories.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	doc := mason.New()
	doc["items"] = categories
	doc.AddControl("self", mason.CategoriesHref())
	doc.AddControlPost("add-category", "Add New Category", mason.CategoriesHref())
	respond(c, http.StatusOK, doc)
}

// POST /api/categories/
func (cc *CategoryController) Create(c *gin.Context) {
	var in services.CategoryInput
	if !bindJSON(c, &in) {
		return
	}
	category, err := cc.categories.Create(in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Location", mason.CategoryHref(category.ID))
	respond(c, http.StatusCreated, categoryDocument(category))
}

// GET /api/categories/{category_id}/
func (cc *CategoryController) Get(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	category, err := cc.categories.GetByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, categoryDocument(category))
}

// PUT /api/categories/{category_id}/
func (cc *CategoryController) Update(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	var patch services.CategoryPatch
	if !bindJSON(c, &patch) {
		return
	}
	category, err := cc.categories.Update(id, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	respond(c, http.StatusOK, categoryDocument(category))
}

// DELETE /api/categories/{category_id}/
func (cc *CategoryController) Delete(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	if err := cc.categories.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func categoryDocument(category *models.Category) mason.Document {
	doc := mason.Envelope(category)
	doc.AddControl("self", mason.CategoryHref(category.ID))
	doc.AddControl("profile", mason.CategoryProfile)
	doc.AddControl(mason.Namespace+":categories-all", mason.CategoriesHref(), map[string]any{
		"method": "GET",
		"title":  "All categories",
	})
	doc.AddControlPut("Edit Category", mason.CategoryHref(category.ID))
	doc.AddControlDelete("Delete Category", mason.CategoryHref(category.ID))
	return doc
}
