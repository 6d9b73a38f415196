package web

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/middleware"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/service"
)

// Home renders the public recipe gallery, ordered by ascending id. The
// anonymous render is served from the page cache; authenticated viewers get
// owner-aware affordances and are rendered fresh.
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	_, loggedIn := middleware.UserID(c)

	if !loggedIn {
		if html := h.pages.Get(ctx, "/"); html != "" {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
			return
		}
	}

	recipes, err := h.recipes.List(ctx)
	if err != nil {
		log.Printf("list recipes: %v", err)
		h.renderServerError(c)
		return
	}

	html, err := h.renderToString("home.html", homeView{
		LoggedIn: loggedIn,
		Recipes:  cardsFor(recipes),
	})
	if err != nil {
		log.Printf("render home: %v", err)
		h.renderServerError(c)
		return
	}

	if !loggedIn {
		h.pages.Set(ctx, "/", html)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// RecipeDetailPage renders one recipe. A missing row, like an invalid id,
// is a plain not-found.
func (h *Handler) RecipeDetailPage(c *gin.Context) {
	ctx := c.Request.Context()
	userID, loggedIn := middleware.UserID(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	// Key the cache by the canonical path so a padded id like /recipes/007
	// shares the entry that mutations invalidate.
	path := fmt.Sprintf("/recipes/%d", id)
	if !loggedIn {
		if html := h.pages.Get(ctx, path); html != "" {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
			return
		}
	}

	recipe, err := h.recipes.Get(ctx, id)
	if err != nil {
		if err == service.ErrNotFound {
			h.renderNotFound(c)
			return
		}
		log.Printf("get recipe %d: %v", id, err)
		h.renderServerError(c)
		return
	}

	isOwner := loggedIn && recipe.OwnedBy(userID)
	html, err := h.renderToString("detail.html", detailView{
		LoggedIn: loggedIn,
		Recipe:   detailFor(recipe, isOwner, loggedIn),
	})
	if err != nil {
		log.Printf("render detail: %v", err)
		h.renderServerError(c)
		return
	}

	if !loggedIn {
		h.pages.Set(ctx, path, html)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// NewRecipePage renders the empty recipe form. Route-guarded by RequireUser.
func (h *Handler) NewRecipePage(c *gin.Context) {
	h.render(c, http.StatusOK, "form.html", formView{
		Error:      c.Query("error"),
		ActionPath: "/recipes/new",
	})
}

// EditRecipePage renders the form pre-filled with the recipe's current
// values. A non-owner gets the same not-found as a nonexistent id.
func (h *Handler) EditRecipePage(c *gin.Context) {
	userID, loggedIn := middleware.UserID(c)
	if !loggedIn {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			h.renderNotFound(c)
			return
		}
		log.Printf("get recipe %d: %v", id, err)
		h.renderServerError(c)
		return
	}
	if !recipe.OwnedBy(userID) {
		h.renderNotFound(c)
		return
	}

	h.render(c, http.StatusOK, "form.html", formView{
		Error:       c.Query("error"),
		Editing:     true,
		ActionPath:  "/recipes/" + c.Param("id"),
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: textOrEmpty(recipe.Description),
		Time:        textOrEmpty(recipe.Time),
		Difficulty:  textOrEmpty(recipe.Difficulty),
		Calories:    textOrEmpty(recipe.Calories),
		Author:      textOrEmpty(recipe.Author),
		Tag:         textOrEmpty(recipe.Tag),
		Servings:    textOrEmpty(recipe.Servings),
		Ingredients: strings.Join(recipe.Ingredients, "\n"),
		Steps:       strings.Join(recipe.Steps, "\n"),
		ImageURL:    textOrEmpty(recipe.ImageURL),
	})
}

// LoginPage renders the sign-in form, echoing any error message carried
// back from a failed attempt.
func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", authView{Error: c.Query("error")})
}

// SignupPage renders the account creation form.
func (h *Handler) SignupPage(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.html", authView{Error: c.Query("error")})
}
