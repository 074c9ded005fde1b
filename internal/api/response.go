// Package api は全HTTPハンドラーで共有するJSONレスポンスの型と、
// 分類済みエラーからHTTPステータスコードへの変換を定義します。
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news_backend/internal/shared/apperr"
)

// internalMessage は内部エラー時に返すメッセージです。原因はログにのみ出力します。
const internalMessage = "Server error"

// ErrorResponse は2xx以外のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は更新・削除完了時のレスポンスボディです。
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusFor はエラー種別をHTTPステータスコードに変換します。
// 未分類のエラーは内部エラーとして扱います。
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError はerrを対応するステータスコードのErrorResponseとして書き込みます。
func WriteError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.JSON(status, ErrorResponse{Error: internalMessage})
		return
	}

	msg := apperr.Message(err)
	if msg == "" {
		msg = err.Error()
	}
	slog.Warn("request rejected", "error", err, "status", status, "method", c.Request.Method, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.JSON(status, ErrorResponse{Error: msg})
}
