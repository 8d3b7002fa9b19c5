package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// FoodInput carries the fields accepted when creating a food.
type FoodInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// FoodPatch carries the fields accepted when updating a food. Nil fields are
// left untouched.
type FoodPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

func (s *FoodService) Create(in FoodInput) (*models.Food, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.InvalidInput("name is required")
	}

	var existing models.Food
	err := s.db.Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("food with name '%s' already exists", in.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.FromStore(err)
	}

	food := &models.Food{Name: in.Name, Description: in.Description, ImageURL: in.ImageURL}
	if err := s.db.Create(food).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return food, nil
}

func (s *FoodService) GetByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food %d not found", id)
		}
		return nil, apperrors.FromStore(err)
	}
	return &food, nil
}

func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.Order("food_id").Find(&foods).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return foods, nil
}

func (s *FoodService) Update(id uint, patch FoodPatch) (*models.Food, error) {
	food, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperrors.InvalidInput("name must not be empty")
		}
		food.Name = *patch.Name
	}
	if patch.Description != nil {
		food.Description = patch.Description
	}
	if patch.ImageURL != nil {
		food.ImageURL = patch.ImageURL
	}
	if err := s.db.Save(food).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return food, nil
}

// Delete removes the food and its whole subtree: every recipe of the food,
// each recipe's nutritional info and edges. The delete is one transaction;
// a failure partway leaves the food untouched.
func (s *FoodService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("food %d not found", id)
			}
			return err
		}

		var recipes []models.Recipe
		if err := tx.Where("food_id = ?", id).Find(&recipes).Error; err != nil {
			return err
		}
		for _, recipe := range recipes {
			if err := deleteRecipeTree(tx, recipe.ID); err != nil {
				return err
			}
		}
		return tx.Delete(&food).Error
	})
	if err != nil {
		return apperrors.FromStore(err)
	}
	return nil
}
