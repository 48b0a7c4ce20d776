package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jinian-0/web-AI-cs1/internal/config"
	"github.com/jinian-0/web-AI-cs1/internal/repository"
	"github.com/jinian-0/web-AI-cs1/internal/service"
)

// Handler holds all dependencies needed by the HTTP handlers.
type Handler struct {
	cfg          *config.Config
	conversation *service.ConversationService
	store        *repository.SessionStore
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg          *config.Config
	Conversation *service.ConversationService
	Store        *repository.SessionStore
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:          deps.Cfg,
		conversation: deps.Conversation,
		store:        deps.Store,
	}
}

// Register wires all routes into the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.Index)

	api := r.Group("/api")
	{
		api.GET("/state", h.GetState)
		api.PUT("/state/persona", h.SetPersona)
		api.PUT("/state/model", h.SetModel)

		api.GET("/sessions", h.ListSessions)
		api.POST("/sessions", h.NewSession)
		api.POST("/sessions/:id/activate", h.ActivateSession)
		api.DELETE("/sessions/:id", h.DeleteSession)

		api.POST("/chat", h.Chat)
	}
}
