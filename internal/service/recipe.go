package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/models"
)

// RecipeDraft carries the normalized form input for a create or update.
// Optional fields are nil when the submitted value was blank; writing a nil
// clears the stored column (full overwrite, not patch).
type RecipeDraft struct {
	Title       string
	Description *string
	Time        *string
	Difficulty  *string
	Calories    *string
	Author      *string
	Tag         *string
	Servings    *string
	Ingredients models.Lines
	Steps       models.Lines
	// ImageURL is set only when a new upload succeeded; nil leaves the
	// stored image untouched on update.
	ImageURL *string
}

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns every recipe ordered by ascending identifier.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a new recipe owned by the given user and returns it.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, draft RecipeDraft) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       draft.Title,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		Time:        draft.Time,
		Difficulty:  draft.Difficulty,
		Calories:    draft.Calories,
		Author:      draft.Author,
		Tag:         draft.Tag,
		Servings:    draft.Servings,
		Ingredients: draft.Ingredients,
		Steps:       draft.Steps,
		UserID:      &userID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update overwrites every submitted column of the recipe. Fields absent from
// the form become NULL; the image URL is only replaced when the draft carries
// a new one. A missing row and an ownership mismatch are the same ErrNotFound.
func (s *RecipeService) Update(ctx context.Context, userID uuid.UUID, id uint, draft RecipeDraft) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !recipe.OwnedBy(userID) {
		return ErrNotFound
	}

	columns := map[string]interface{}{
		"title":       draft.Title,
		"description": draft.Description,
		"time":        draft.Time,
		"difficulty":  draft.Difficulty,
		"calories":    draft.Calories,
		"author":      draft.Author,
		"tag":         draft.Tag,
		"servings":    draft.Servings,
		"ingredients": draft.Ingredients,
		"steps":       draft.Steps,
	}
	if draft.ImageURL != nil {
		columns["image_url"] = draft.ImageURL
	}

	return s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(columns).Error
}

// Delete removes the recipe. Same not-found policy as Update.
func (s *RecipeService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !recipe.OwnedBy(userID) {
		return ErrNotFound
	}

	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// Like increments the recipe's like counter by one on behalf of a non-owner.
// The owner liking their own recipe is treated as not-found. The counter is
// stored as text; a non-numeric or empty value counts as zero.
//
// The read-modify-write here is not atomic: two concurrent likes can both
// observe the same prior count and lose an increment. This mirrors the
// original behavior; an UPDATE ... SET likes = likes + 1 is the upgrade path
// if that ever matters.
func (s *RecipeService) Like(ctx context.Context, userID uuid.UUID, id uint) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if recipe.OwnedBy(userID) {
		return ErrNotFound
	}

	next := strconv.Itoa(recipe.LikesCount() + 1)
	return s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("id = ?", id).
		Update("likes", next).Error
}
