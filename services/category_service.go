package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *CategoryService) Create(in CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.InvalidInput("name is required")
	}

	var existing models.Category
	err := s.db.Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("category with name '%s' already exists", in.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.FromStore(err)
	}

	category := &models.Category{Name: in.Name, Description: in.Description}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return category, nil
}

func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category %d not found", id)
		}
		return nil, apperrors.FromStore(err)
	}
	return &category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("category_id").Find(&categories).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return categories, nil
}

func (s *CategoryService) Update(id uint, patch CategoryPatch) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperrors.InvalidInput("name must not be empty")
		}
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = patch.Description
	}
	if err := s.db.Save(category).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return category, nil
}

// Delete removes the category and its recipe edges in one transaction.
func (s *CategoryService) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("category %d not found", id)
			}
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.RecipeCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return apperrors.FromStore(err)
	}
	return nil
}
