package models

// Category groups recipes by cuisine or style.
type Category struct {
	ID          uint    `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name        string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description"`
}

func (Category) TableName() string { return "category" }
