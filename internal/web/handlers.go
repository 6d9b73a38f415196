// Package web serves the HTML pages and form actions of the recipe gallery.
// Handlers stay thin: they normalize form input, delegate to the services,
// and answer with 303 redirects or rendered templates.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/KohanaIshitsuka/recipe-atelier/internal/cache"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/middleware"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Handler bundles the collaborators behind every page and action.
type Handler struct {
	recipes   *service.RecipeService
	auth      *service.AuthService
	images    *service.ImageService
	pages     *cache.Pages
	templates *template.Template
}

// NewHandler creates the web handler.
func NewHandler(recipes *service.RecipeService, auth *service.AuthService, images *service.ImageService, pages *cache.Pages) *Handler {
	return &Handler{
		recipes:   recipes,
		auth:      auth,
		images:    images,
		pages:     pages,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// RegisterRoutes registers every page and action on the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	staticFiles, _ := fs.Sub(staticFS, "static")
	router.StaticFS("/static", http.FS(staticFiles))

	router.GET("/", h.Home)

	router.GET("/login", h.LoginPage)
	router.POST("/login", h.action(h.signIn))
	router.GET("/signup", h.SignupPage)
	router.POST("/signup", h.action(h.signUp))
	router.POST("/logout", h.action(h.logout))

	recipes := router.Group("/recipes")
	{
		recipes.GET("/new", middleware.RequireUser(), h.NewRecipePage)
		recipes.POST("/new", h.action(h.createRecipe))
		recipes.GET("/:id", h.RecipeDetailPage)
		recipes.POST("/:id", h.action(h.updateRecipe))
		recipes.GET("/:id/edit", h.EditRecipePage)
		recipes.POST("/:id/delete", h.action(h.deleteRecipe))
		recipes.POST("/:id/like", h.action(h.likeRecipe))
	}
}

// outcome is the result of a form action: where to redirect, plus an
// optional user-facing message carried back as an error query parameter.
type outcome struct {
	path    string
	message string
}

func (o outcome) target() string {
	if o.message == "" {
		return o.path
	}
	return o.path + "?error=" + url.QueryEscape(o.message)
}

// action adapts an action function to a Gin handler. Not-found outcomes
// render the 404 page, platform errors render the 500 page, everything else
// is a 303 redirect.
func (h *Handler) action(fn func(*gin.Context) (outcome, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := fn(c)
		switch {
		case errors.Is(err, service.ErrNotFound):
			h.renderNotFound(c)
		case err != nil:
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			h.renderServerError(c)
		default:
			c.Redirect(http.StatusSeeOther, out.target())
		}
	}
}

// render executes a template into the response.
func (h *Handler) render(c *gin.Context, status int, name string, data interface{}) {
	html, err := h.renderToString(name, data)
	if err != nil {
		log.Printf("render %s: %v", name, err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) renderToString(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *Handler) renderNotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", nil)
}

func (h *Handler) renderServerError(c *gin.Context) {
	h.render(c, http.StatusInternalServerError, "500.html", nil)
}
