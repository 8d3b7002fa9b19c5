package models

// Ingredient is a raw ingredient used by recipes.
type Ingredient struct {
	ID       uint    `gorm:"column:ingredient_id;primaryKey" json:"ingredient_id"`
	Name     string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	ImageURL *string `gorm:"type:varchar(255)" json:"image_url"`
}

func (Ingredient) TableName() string { return "ingredient" }
