package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/controllers"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/middlewares"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/services"
)

// SetupRouter wires the resource controllers onto a gin engine. The
// database handle is passed down explicitly; nothing holds it globally.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	foodSvc := services.NewFoodService(db)
	recipeSvc := services.NewRecipeService(db)
	ingredientSvc := services.NewIngredientService(db)
	categorySvc := services.NewCategoryService(db)
	nutritionSvc := services.NewNutritionService(db)

	foods := controllers.NewFoodController(foodSvc)
	recipes := controllers.NewRecipeController(recipeSvc)
	ingredients := controllers.NewIngredientController(ingredientSvc)
	categories := controllers.NewCategoryController(categorySvc)
	nutrition := controllers.NewNutritionController(nutritionSvc)

	api := r.Group("/api")
	api.Use(middlewares.RequireJSON())
	{
		api.GET("/foods/", foods.List)
		api.POST("/foods/", foods.Create)
		api.GET("/foods/:food_id/", foods.Get)
		api.PUT("/foods/:food_id/", foods.Update)
		api.DELETE("/foods/:food_id/", foods.Delete)

		api.GET("/recipes/", recipes.List)
		api.POST("/recipes/", recipes.Create)
		api.GET("/recipes/:recipe_id/", recipes.Get)
		api.DELETE("/recipes/:recipe_id/", recipes.Delete)

		api.GET("/recipes/:recipe_id/ingredients/", recipes.GetIngredients)
		api.POST("/recipes/:recipe_id/ingredients/", recipes.AddIngredient)
		api.PUT("/recipes/:recipe_id/ingredients/", recipes.UpdateIngredient)
		api.DELETE("/recipes/:recipe_id/ingredients/", recipes.RemoveIngredient)

		api.GET("/recipes/:recipe_id/categories/", recipes.GetCategories)
		api.POST("/recipes/:recipe_id/categories/", recipes.AddCategory)
		api.DELETE("/recipes/:recipe_id/categories/", recipes.RemoveCategory)

		api.GET("/ingredients/", ingredients.List)
		api.POST("/ingredients/", ingredients.Create)
		api.GET("/ingredients/:ingredient_id/", ingredients.Get)
		api.PUT("/ingredients/:ingredient_id/", ingredients.Update)
		api.DELETE("/ingredients/:ingredient_id/", ingredients.Delete)

		api.GET("/categories/", categories.List)
		api.POST("/categories/", categories.Create)
		api.GET("/categories/:category_id/", categories.Get)
		api.PUT("/categories/:category_id/", categories.Update)
		api.DELETE("/categories/:category_id/", categories.Delete)

		api.GET("/nutritional-info/", nutrition.List)
		api.POST("/nutritional-info/", nutrition.Create)
		api.GET("/nutritional-info/:nutritional_info_id/", nutrition.Get)
		api.PUT("/nutritional-info/:nutritional_info_id/", nutrition.Update)
		api.DELETE("/nutritional-info/:nutritional_info_id/", nutrition.Delete)
	}

	return r
}
