package models

// RecipeIngredient is the attributed edge between a recipe and an
// ingredient. The composite primary key keeps each pair unique.
type RecipeIngredient struct {
	RecipeID     uint    `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint    `gorm:"primaryKey" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null;check:quantity > 0" json:"quantity"`
	Unit         string  `gorm:"type:varchar(64);not null;default:piece" json:"unit"`

	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredient" }

// RecipeCategory is the plain edge between a recipe and a category.
type RecipeCategory struct {
	RecipeID   uint `gorm:"primaryKey" json:"recipe_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`

	Recipe   Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeCategory) TableName() string { return "recipe_category" }
