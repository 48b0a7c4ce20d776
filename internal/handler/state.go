package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinian-0/web-AI-cs1/internal/service"
)

type stateResponse struct {
	service.Snapshot
	Models []string `json:"models"`
}

// GetState returns the conversation snapshot the page renders from.
func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, stateResponse{
		Snapshot: h.conversation.Snapshot(),
		Models:   h.cfg.Models,
	})
}

type setPersonaRequest struct {
	Persona string `json:"persona" binding:"required"`
}

func (h *Handler) SetPersona(c *gin.Context) {
	var req setPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请输入角色信息"})
		return
	}
	h.conversation.SetPersona(req.Persona)
	c.JSON(http.StatusOK, h.conversation.Snapshot())
}

type setModelRequest struct {
	Model string `json:"model" binding:"required"`
}

func (h *Handler) SetModel(c *gin.Context) {
	var req setModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择模型"})
		return
	}
	if !h.cfg.HasModel(req.Model) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知模型"})
		return
	}
	h.conversation.SetModel(req.Model)
	c.JSON(http.StatusOK, h.conversation.Snapshot())
}
