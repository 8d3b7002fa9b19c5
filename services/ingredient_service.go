package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

type IngredientInput struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}

type IngredientPatch struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url"`
}

func (s *IngredientService) Create(in IngredientInput) (*models.Ingredient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.InvalidInput("name is required")
	}

	var existing models.Ingredient
	err := s.db.Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("ingredient with name '%s' already exists", in.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.FromStore(err)
	}

	ingredient := &models.Ingredient{Name: in.Name, ImageURL: in.ImageURL}
	if err := s.db.Create(ingredient).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return ingredient, nil
}

func (s *IngredientService) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("ingredient %d not found", id)
		}
		return nil, apperrors.FromStore(err)
	}
	return &ingredient, nil
}

func (s *IngredientService) List() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("ingredient_id").Find(&ingredients).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return ingredients, nil
}

func (s *IngredientService) Update(id uint, patch IngredientPatch) (*models.Ingredient, error) {
	ingredient, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperrors.InvalidInput("name must not be empty")
		}
		ingredient.Name = *patch.Name
	}
	if patch.ImageURL != nil {
		ingredient.ImageURL = patch.ImageURL
	}
	if err := s.db.Save(ingredient).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return ingredient, nil
}

// Delete removes the ingredient and its recipe edges in one transaction.
func (s *IngredientService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient
		if err := tx.First(&ingredient, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("ingredient %d not found", id)
			}
			return err
		}
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
	if err != nil {
		return apperrors.FromStore(err)
	}
	return nil
}
