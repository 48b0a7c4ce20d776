package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinian-0/web-AI-cs1/internal/config"
	"github.com/jinian-0/web-AI-cs1/internal/domain"
)

type listSessionsResponse struct {
	Sessions []string `json:"sessions"`
	Active   string   `json:"active"`
}

// ListSessions returns the most recent session ids for the sidebar.
func (h *Handler) ListSessions(c *gin.Context) {
	ids, err := h.store.ListRecent(config.RecentSessionsLimit)
	if err != nil {
		slog.Error("list sessions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "加载会话历史失败"})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, listSessionsResponse{
		Sessions: ids,
		Active:   h.conversation.Snapshot().SessionID,
	})
}

// NewSession archives the current conversation and starts a fresh one.
func (h *Handler) NewSession(c *gin.Context) {
	snapshot, err := h.conversation.StartNew()
	if err != nil {
		slog.Error("start new session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "新建会话失败"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ActivateSession switches the conversation to a stored session.
func (h *Handler) ActivateSession(c *gin.Context) {
	id := c.Param("id")
	snapshot, err := h.conversation.SwitchTo(id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "会话不存在"})
		case errors.Is(err, domain.ErrSessionCorrupt):
			slog.Error("load session", "error", err, "session_id", id)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "会话数据损坏"})
		default:
			slog.Error("load session", "error", err, "session_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "加载会话失败"})
		}
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// DeleteSession removes a stored session; deleting a missing id succeeds.
func (h *Handler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	snapshot, err := h.conversation.Delete(id)
	if err != nil {
		slog.Error("delete session", "error", err, "session_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除会话失败"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
