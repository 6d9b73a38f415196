package web

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/models"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/service"
)

// splitLines is the one normalization applied to multiline input: split on
// newlines, trim each line, drop blanks, keep order.
func splitLines(value string) models.Lines {
	return models.SplitLines(value)
}

// parseID parses a route or form identifier. Anything non-numeric is a
// not-found, never a validation error.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, service.ErrNotFound
	}
	return uint(id), nil
}

// optField trims a form value; blank becomes nil so the column stores NULL
// rather than an empty string.
func optField(c *gin.Context, name string) *string {
	v := strings.TrimSpace(c.PostForm(name))
	if v == "" {
		return nil
	}
	return &v
}

// draftFromForm builds a recipe draft from the submitted form. The caller
// has already validated the title. The image is handled separately because
// its absence means "keep", not "clear".
func draftFromForm(c *gin.Context, title string) service.RecipeDraft {
	return service.RecipeDraft{
		Title:       title,
		Description: optField(c, "description"),
		Time:        optField(c, "time"),
		Difficulty:  optField(c, "difficulty"),
		Calories:    optField(c, "calories"),
		Author:      optField(c, "author"),
		Tag:         optField(c, "tag"),
		Servings:    optField(c, "servings"),
		Ingredients: splitLines(c.PostForm("ingredients")),
		Steps:       splitLines(c.PostForm("steps")),
	}
}
