package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/apperrors"
)

func TestNutritionCreateIsStrictOneToOne(t *testing.T) {
	db := newTestDB(t)
	food := mustCreateFood(t, db, "Pizza")
	recipe := mustCreateRecipe(t, db, food.ID)
	svc := NewNutritionService(db)

	info, err := svc.Create(NutritionInput{RecipeID: recipe.ID, Calories: 266, Protein: 11, Carbs: 33, Fat: 9})
	require.NoError(t, err)
	assert.NotZero(t, info.ID)

	// second create for the same recipe is a conflict, never an upsert
	_, err = svc.Create(NutritionInput{RecipeID: recipe.ID, Calories: 100})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	got, err := svc.GetByRecipe(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 266, got.Calories)
}

func TestNutritionCreateValidation(t *testing.T) {
	db := newTestDB(t)
	food := mustCreateFood(t, db, "Pizza")
	recipe := mustCreateRecipe(t, db, food.ID)
	svc := NewNutritionService(db)

	tests := []struct {
		name string
		in   NutritionInput
		want apperrors.Kind
	}{
		{"missing recipe id", NutritionInput{}, apperrors.KindInvalidInput},
		{"unknown recipe", NutritionInput{RecipeID: 9999}, apperrors.KindNotFound},
		{"negative calories", NutritionInput{RecipeID: recipe.ID, Calories: -1}, apperrors.KindInvalidInput},
		{"negative protein", NutritionInput{RecipeID: recipe.ID, Protein: -0.1}, apperrors.KindInvalidInput},
		{"negative carbs", NutritionInput{RecipeID: recipe.ID, Carbs: -3}, apperrors.KindInvalidInput},
		{"negative fat", NutritionInput{RecipeID: recipe.ID, Fat: -1}, apperrors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.KindOf(err))
		})
	}
}

func TestNutritionUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	food := mustCreateFood(t, db, "Pizza")
	recipe := mustCreateRecipe(t, db, food.ID)
	svc := NewNutritionService(db)

	info, err := svc.Create(NutritionInput{RecipeID: recipe.ID, Calories: 266, Protein: 11, Carbs: 33, Fat: 9})
	require.NoError(t, err)

	updated, err := svc.Update(info.ID, NutritionPatch{Calories: intptr(300)})
	require.NoError(t, err)
	assert.Equal(t, 300, updated.Calories)
	assert.Equal(t, 11.0, updated.Protein)

	_, err = svc.Update(info.ID, NutritionPatch{Fat: floatptr(-1)})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))

	_, err = svc.Update(9999, NutritionPatch{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestNutritionDelete(t *testing.T) {
	db := newTestDB(t)
	food := mustCreateFood(t, db, "Pizza")
	recipe := mustCreateRecipe(t, db, food.ID)
	svc := NewNutritionService(db)

	info, err := svc.Create(NutritionInput{RecipeID: recipe.ID, Calories: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(info.ID))

	err = svc.Delete(info.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	// the recipe can get a fresh record after deletion
	_, err = svc.Create(NutritionInput{RecipeID: recipe.ID, Calories: 150})
	assert.NoError(t, err)
}
