package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

// allModels lists every table in migration order.
var allModels = []any{
	&models.Food{},
	&models.Ingredient{},
	&models.Category{},
	&models.Recipe{},
	&models.NutritionalInfo{},
	&models.RecipeIngredient{},
	&models.RecipeCategory{},
}

// Open connects to the SQLite database at path and runs migrations. The
// _fk=1 parameter turns on foreign-key enforcement so that ON DELETE CASCADE
// and the schema CHECK constraints actually apply.
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_fk=1", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// Reset drops every table and recreates the schema.
func Reset(db *gorm.DB) error {
	for i := len(allModels) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(allModels[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return db.AutoMigrate(allModels...)
}

// Clear deletes all rows while preserving the tables, edges first so that
// foreign keys never block the sweep.
func Clear(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.RecipeCategory{},
			&models.RecipeIngredient{},
			&models.NutritionalInfo{},
			&models.Recipe{},
			&models.Food{},
			&models.Ingredient{},
			&models.Category{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
