package models

// Recipe describes how to prepare a food. Each recipe belongs to exactly one
// food and owns at most one nutritional info record.
type Recipe struct {
	ID          uint   `gorm:"column:recipe_id;primaryKey" json:"recipe_id"`
	FoodID      uint   `gorm:"not null" json:"food_id"`
	Instruction string `gorm:"type:varchar(255);not null" json:"instruction"`
	PrepTime    int    `gorm:"not null;check:prep_time >= 0" json:"prep_time"`
	CookTime    int    `gorm:"not null;check:cook_time >= 0" json:"cook_time"`
	Servings    int    `gorm:"not null;check:servings > 0" json:"servings"`

	Food            *Food              `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"food,omitempty"`
	NutritionalInfo *NutritionalInfo   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"nutritional_info,omitempty"`
	Ingredients     []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Categories      []Category         `gorm:"many2many:recipe_category;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string { return "recipe" }

// RecipeIngredientEntry is the serialized form of one attributed
// recipe-ingredient edge inside a recipe representation.
type RecipeIngredientEntry struct {
	Ingredient Ingredient `json:"ingredient"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
}

// RecipeDetail is the full representation of a recipe with its related food,
// nutritional info, ingredients, and categories.
type RecipeDetail struct {
	RecipeID        uint                    `json:"recipe_id"`
	FoodID          uint                    `json:"food_id"`
	Instruction     string                  `json:"instruction"`
	PrepTime        int                     `json:"prep_time"`
	CookTime        int                     `json:"cook_time"`
	Servings        int                     `json:"servings"`
	Food            *Food                   `json:"food"`
	NutritionalInfo *NutritionalInfo        `json:"nutritional_info"`
	Ingredients     []RecipeIngredientEntry `json:"ingredients"`
	Categories      []Category              `json:"categories"`
}

// Detail builds the full representation. The recipe must have been loaded
// with its Food, NutritionalInfo, Ingredients (with their Ingredient), and
// Categories relations.
func (r *Recipe) Detail() RecipeDetail {
	d := RecipeDetail{
		RecipeID:        r.ID,
		FoodID:          r.FoodID,
		Instruction:     r.Instruction,
		PrepTime:        r.PrepTime,
		CookTime:        r.CookTime,
		Servings:        r.Servings,
		Food:            r.Food,
		NutritionalInfo: r.NutritionalInfo,
		Ingredients:     make([]RecipeIngredientEntry, 0, len(r.Ingredients)),
		Categories:      r.Categories,
	}
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	for _, ri := range r.Ingredients {
		d.Ingredients = append(d.Ingredients, RecipeIngredientEntry{
			Ingredient: ri.Ingredient,
			Quantity:   ri.Quantity,
			Unit:       ri.Unit,
		})
	}
	return d
}
