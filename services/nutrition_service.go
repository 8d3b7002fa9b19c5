package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

// NutritionService manages the one-to-one nutritional info records of
// recipes. Creation is strict: a recipe that already has a record reports a
// conflict, it is never upserted. Changes go through Update instead.
type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

type NutritionInput struct {
	RecipeID uint    `json:"recipe_id"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type NutritionPatch struct {
	Calories *int     `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

func validateNutritionFields(calories int, protein, carbs, fat float64) error {
	if calories < 0 {
		return apperrors.InvalidInput("calories must not be negative")
	}
	if protein < 0 {
		return apperrors.InvalidInput("protein must not be negative")
	}
	if carbs < 0 {
		return apperrors.InvalidInput("carbs must not be negative")
	}
	if fat < 0 {
		return apperrors.InvalidInput("fat must not be negative")
	}
	return nil
}

func (s *NutritionService) Create(in NutritionInput) (*models.NutritionalInfo, error) {
	if in.RecipeID == 0 {
		return nil, apperrors.InvalidInput("recipe_id is required")
	}
	if err := validateNutritionFields(in.Calories, in.Protein, in.Carbs, in.Fat); err != nil {
		return nil, err
	}

	var info *models.NutritionalInfo
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRecipe(tx, in.RecipeID); err != nil {
			return err
		}
		var existing models.NutritionalInfo
		err := tx.Where("recipe_id = ?", in.RecipeID).First(&existing).Error
		if err == nil {
			return apperrors.Conflict("recipe %d already has nutritional info", in.RecipeID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		info = &models.NutritionalInfo{
			RecipeID: in.RecipeID,
			Calories: in.Calories,
			Protein:  in.Protein,
			Carbs:    in.Carbs,
			Fat:      in.Fat,
		}
		return tx.Create(info).Error
	})
	if err != nil {
		return nil, apperrors.FromStore(err)
	}
	return info, nil
}

func (s *NutritionService) GetByID(id uint) (*models.NutritionalInfo, error) {
	var info models.NutritionalInfo
	if err := s.db.First(&info, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("nutritional info %d not found", id)
		}
		return nil, apperrors.FromStore(err)
	}
	return &info, nil
}

// GetByRecipe returns the nutritional info owned by a recipe.
func (s *NutritionService) GetByRecipe(recipeID uint) (*models.NutritionalInfo, error) {
	var info models.NutritionalInfo
	if err := s.db.Where("recipe_id = ?", recipeID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("recipe %d has no nutritional info", recipeID)
		}
		return nil, apperrors.FromStore(err)
	}
	return &info, nil
}

func (s *NutritionService) List() ([]models.NutritionalInfo, error) {
	var infos []models.NutritionalInfo
	if err := s.db.Order("nutritional_info_id").Find(&infos).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return infos, nil
}

func (s *NutritionService) Update(id uint, patch NutritionPatch) (*models.NutritionalInfo, error) {
	info, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Calories != nil {
		info.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		info.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		info.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		info.Fat = *patch.Fat
	}
	if err := validateNutritionFields(info.Calories, info.Protein, info.Carbs, info.Fat); err != nil {
		return nil, err
	}
	if err := s.db.Save(info).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return info, nil
}

func (s *NutritionService) Delete(id uint) error {
	info, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(info).Error; err != nil {
		return apperrors.FromStore(err)
	}
	return nil
}
