package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinian-0/web-AI-cs1/web"
)

// Index serves the embedded chat page.
func (h *Handler) Index(c *gin.Context) {
	page, err := web.StaticFS.ReadFile("static/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
