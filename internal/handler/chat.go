package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinian-0/web-AI-cs1/internal/config"
	"github.com/jinian-0/web-AI-cs1/internal/domain"
)

// Chat handles one user turn: multipart form with an optional `text` field
// and an optional `file` image upload. The assistant reply is streamed back
// as server-sent events: `delta` per fragment, then one `done` carrying the
// full text, or `error` when the gateway fails.
func (h *Handler) Chat(c *gin.Context) {
	text := c.PostForm("text")

	var att *domain.Attachment
	if file, err := c.FormFile("file"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
			return
		}
		att = &domain.Attachment{Name: file.Filename, Data: data}
	}

	if text == "" && att == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请输入内容或上传图片"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), config.RequestTimeout)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	_, err := h.conversation.Submit(reqCtx, text, att, func(fragment string) {
		c.SSEvent("delta", fragment)
		c.Writer.Flush()
	})
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyMessage) {
			slog.Error("chat submit", "error", err)
		}
		c.SSEvent("error", userFacingError(err))
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", h.conversation.Snapshot())
	c.Writer.Flush()
}

func userFacingError(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return "请输入内容或上传图片"
	case errors.Is(err, domain.ErrGateway):
		return "调用出错, 请稍后重试"
	default:
		return "处理请求失败"
	}
}
