package models

// NutritionalInfo holds the per-serving macros for a recipe. The unique
// index on RecipeID makes the relation strictly one-to-one.
type NutritionalInfo struct {
	ID       uint    `gorm:"column:nutritional_info_id;primaryKey" json:"nutritional_info_id"`
	RecipeID uint    `gorm:"uniqueIndex;not null" json:"recipe_id"`
	Calories int     `gorm:"not null;check:calories >= 0" json:"calories"`
	Protein  float64 `gorm:"not null;check:protein >= 0" json:"protein"`
	Carbs    float64 `gorm:"not null;check:carbs >= 0" json:"carbs"`
	Fat      float64 `gorm:"not null;check:fat >= 0" json:"fat"`
}

func (NutritionalInfo) TableName() string { return "nutritional_info" }
