package models

// Food is a dish that recipes describe how to prepare.
type Food struct {
	ID          uint    `gorm:"column:food_id;primaryKey" json:"food_id"`
	Name        string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description"`
	ImageURL    *string `gorm:"type:varchar(255)" json:"image_url"`

	// Deleting a food removes its recipes.
	Recipes []Recipe `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Food) TableName() string { return "food" }
