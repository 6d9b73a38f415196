package web

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/middleware"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/service"
)

// uploadedImageURL uploads the submitted image, when there is one, and
// returns its public URL. No file or an empty file means no new image.
// An upload failure is fatal for the whole action: the row write must not
// happen after a failed upload.
func (h *Handler) uploadedImageURL(c *gin.Context) (*string, error) {
	file, err := c.FormFile("image_file")
	if err != nil || file == nil || file.Size == 0 {
		return nil, nil
	}
	url, err := h.images.UploadRecipeImage(c.Request.Context(), file)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// createRecipe inserts a new recipe owned by the current user and redirects
// to its detail page. Validation runs before any external call.
func (h *Handler) createRecipe(c *gin.Context) (outcome, error) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		return outcome{path: "/recipes/new", message: "Title is required."}, nil
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return outcome{path: "/login"}, nil
	}

	imageURL, err := h.uploadedImageURL(c)
	if err != nil {
		return outcome{}, err
	}

	draft := draftFromForm(c, title)
	draft.ImageURL = imageURL

	recipe, err := h.recipes.Create(c.Request.Context(), userID, draft)
	if err != nil {
		return outcome{}, fmt.Errorf("failed to save recipe: %w", err)
	}

	h.pages.Invalidate(c.Request.Context(), "/")
	return outcome{path: fmt.Sprintf("/recipes/%d", recipe.ID)}, nil
}

// updateRecipe overwrites a recipe the current user owns and redirects back
// to its detail page. The ownership check runs before the image upload so a
// failed authorization causes no side effects at all.
func (h *Handler) updateRecipe(c *gin.Context) (outcome, error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return outcome{}, err
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		return outcome{path: fmt.Sprintf("/recipes/%d/edit", id), message: "Title is required."}, nil
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return outcome{path: "/login"}, nil
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		return outcome{}, err
	}
	if !recipe.OwnedBy(userID) {
		return outcome{}, service.ErrNotFound
	}

	imageURL, err := h.uploadedImageURL(c)
	if err != nil {
		return outcome{}, err
	}

	draft := draftFromForm(c, title)
	draft.ImageURL = imageURL

	if err := h.recipes.Update(c.Request.Context(), userID, id, draft); err != nil {
		return outcome{}, fmt.Errorf("failed to update recipe: %w", err)
	}

	detailPath := fmt.Sprintf("/recipes/%d", id)
	h.pages.Invalidate(c.Request.Context(), "/", detailPath)
	return outcome{path: detailPath}, nil
}

// deleteRecipe removes a recipe the current user owns and redirects home.
func (h *Handler) deleteRecipe(c *gin.Context) (outcome, error) {
	id, err := parseID(c.PostForm("id"))
	if err != nil {
		id, err = parseID(c.Param("id"))
		if err != nil {
			return outcome{}, err
		}
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return outcome{path: "/login"}, nil
	}

	if err := h.recipes.Delete(c.Request.Context(), userID, id); err != nil {
		if err == service.ErrNotFound {
			return outcome{}, err
		}
		return outcome{}, fmt.Errorf("failed to delete recipe: %w", err)
	}

	h.pages.Invalidate(c.Request.Context(), "/")
	return outcome{path: "/"}, nil
}

// likeRecipe increments the like counter on behalf of a non-owner and
// returns to the detail page. Only the detail render is invalidated; the
// listing does not show per-recipe like state worth a recache.
func (h *Handler) likeRecipe(c *gin.Context) (outcome, error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return outcome{}, err
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return outcome{path: "/login"}, nil
	}

	if err := h.recipes.Like(c.Request.Context(), userID, id); err != nil {
		if err == service.ErrNotFound {
			return outcome{}, err
		}
		return outcome{}, fmt.Errorf("failed to like recipe: %w", err)
	}

	detailPath := fmt.Sprintf("/recipes/%d", id)
	h.pages.Invalidate(c.Request.Context(), detailPath)
	return outcome{path: detailPath}, nil
}

// signIn authenticates the user and starts a session.
func (h *Handler) signIn(c *gin.Context) (outcome, error) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if email == "" || password == "" {
		return outcome{path: "/login", message: "Email and password are required."}, nil
	}

	token, err := h.auth.SignIn(email, password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return outcome{path: "/login", message: err.Error()}, nil
		}
		return outcome{}, err
	}

	h.setSessionCookie(c, token)
	return outcome{path: "/"}, nil
}

// signUp creates an account and starts a session.
func (h *Handler) signUp(c *gin.Context) (outcome, error) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if email == "" || password == "" {
		return outcome{path: "/signup", message: "Email and password are required."}, nil
	}

	token, err := h.auth.SignUp(email, password)
	if err != nil {
		if err == service.ErrEmailTaken {
			return outcome{path: "/signup", message: err.Error()}, nil
		}
		return outcome{}, err
	}

	h.setSessionCookie(c, token)
	return outcome{path: "/"}, nil
}

// logout terminates the session and redirects home.
func (h *Handler) logout(c *gin.Context) (outcome, error) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	return outcome{path: "/"}, nil
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, int(service.SessionTTL.Seconds()), "/", "", false, true)
}
