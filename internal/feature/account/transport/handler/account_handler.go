// Package handler はaccountフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news_backend/internal/api"
	"news_backend/internal/feature/account/domain/entity"
	"news_backend/internal/feature/account/transport/http/dto"
)

// AccountUsecase はユーザー登録・認証・管理のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	Register(ctx context.Context, username, email, password string) (*entity.UserSummary, error)
	Authenticate(ctx context.Context, email, password string) (*entity.UserSummary, error)
	ListUsers(ctx context.Context) ([]entity.UserSummary, error)
	GetUser(ctx context.Context, id uint) (*entity.UserSummary, error)
	UpdateUser(ctx context.Context, id uint, username, email, password string) error
	DeleteUser(ctx context.Context, id uint) error
}

// AccountHandler は/users配下のHTTPリクエストを処理します。
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - 必須項目の欠落・ユーザー名/メールアドレス重複時は400を返却
// - 成功時は201で公開情報を返却
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := api.BindJSON(c, &req); err != nil {
		api.WriteError(c, err)
		return
	}
	user, err := h.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(*user))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 認証失敗時は未登録・パスワード不一致を区別せず401を返却
// - 成功時は200で公開情報を返却（トークンは発行しない）
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := api.BindJSON(c, &req); err != nil {
		api.WriteError(c, err)
		return
	}
	user, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserRes(*user))
}

// List は全ユーザーをID昇順で返却します。
func (h *AccountHandler) List(c *gin.Context) {
	users, err := h.accounts.ListUsers(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListRes(users))
}

// Get は:idのユーザーを返却します。
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := api.ParseID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	user, err := h.accounts.GetUser(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(*user))
}

// Update は:idのユーザーの全項目を置き換えます。
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := api.ParseID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	var req dto.UpdateUserReq
	if err := api.BindJSON(c, &req); err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.accounts.UpdateUser(c.Request.Context(), id, req.Username, req.Email, req.Password); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("user updated", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "User updated"})
}

// Delete は:idのユーザーを削除します。
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := api.ParseID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.accounts.DeleteUser(c.Request.Context(), id); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted"})
}
