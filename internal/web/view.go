package web

import (
	"fmt"
	"html/template"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/models"
)

// Placeholder strings rendered when an optional field is absent. Missing
// values always render as explicit text, never blank.
const (
	placeholderDescription = "No description yet."
	placeholderAuthor      = "Anonymous"
	placeholderNotSet      = "Not set"
)

// gradients are the card backgrounds used when a recipe has no image,
// picked deterministically from the recipe id.
var gradients = []template.CSS{
	"linear-gradient(135deg, #fbbf24, #f87171)",
	"linear-gradient(135deg, #34d399, #60a5fa)",
	"linear-gradient(135deg, #f472b6, #a78bfa)",
	"linear-gradient(135deg, #fb923c, #facc15)",
	"linear-gradient(135deg, #38bdf8, #818cf8)",
}

// recipeCard is the listing view of one recipe.
type recipeCard struct {
	ID          uint
	Title       string
	Description string
	Time        string
	Difficulty  string
	Calories    string
	Author      string
	Tag         string
	Likes       int
	ImageURL    string
	HasImage    bool
	Gradient    template.CSS
	DetailPath  string
}

// recipeDetail is the detail view of one recipe.
type recipeDetail struct {
	recipeCard
	Servings    string
	Ingredients []string
	Steps       []string
	IsOwner     bool
	CanLike     bool
	EditPath    string
	DeletePath  string
	LikePath    string
}

// homeView is the listing page payload.
type homeView struct {
	LoggedIn bool
	Recipes  []recipeCard
}

// detailView is the detail page payload.
type detailView struct {
	LoggedIn bool
	Recipe   recipeDetail
}

// formView is the create/edit form payload.
type formView struct {
	Error       string
	Editing     bool
	ActionPath  string
	ID          uint
	Title       string
	Description string
	Time        string
	Difficulty  string
	Calories    string
	Author      string
	Tag         string
	Servings    string
	Ingredients string
	Steps       string
	ImageURL    string
}

// authView is the login/signup page payload.
type authView struct {
	Error string
}

func textOr(value *string, placeholder string) string {
	if value == nil || *value == "" {
		return placeholder
	}
	return *value
}

func textOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func cardFor(r *models.Recipe) recipeCard {
	card := recipeCard{
		ID:          r.ID,
		Title:       r.Title,
		Description: textOr(r.Description, placeholderDescription),
		Time:        textOr(r.Time, placeholderNotSet),
		Difficulty:  textOr(r.Difficulty, placeholderNotSet),
		Calories:    textOr(r.Calories, placeholderNotSet),
		Author:      textOr(r.Author, placeholderAuthor),
		Tag:         textOrEmpty(r.Tag),
		Likes:       r.LikesCount(),
		ImageURL:    textOrEmpty(r.ImageURL),
		Gradient:    gradients[int(r.ID)%len(gradients)],
		DetailPath:  fmt.Sprintf("/recipes/%d", r.ID),
	}
	card.HasImage = card.ImageURL != ""
	return card
}

func cardsFor(recipes []models.Recipe) []recipeCard {
	cards := make([]recipeCard, len(recipes))
	for i := range recipes {
		cards[i] = cardFor(&recipes[i])
	}
	return cards
}

func detailFor(r *models.Recipe, isOwner, loggedIn bool) recipeDetail {
	return recipeDetail{
		recipeCard:  cardFor(r),
		Servings:    textOr(r.Servings, placeholderNotSet),
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		IsOwner:     isOwner,
		CanLike:     loggedIn && !isOwner,
		EditPath:    fmt.Sprintf("/recipes/%d/edit", r.ID),
		DeletePath:  fmt.Sprintf("/recipes/%d/delete", r.ID),
		LikePath:    fmt.Sprintf("/recipes/%d/like", r.ID),
	}
}
