// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

import "news_backend/internal/feature/account/domain/entity"

// RegisterReq represents the request body for POST /register.
// Presence is checked by the usecase, so there are no binding tags.
type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginReq represents the request body for POST /login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserReq represents the request body for PUT /users/:id.
// Every field is replaced; there is no partial update.
type UpdateUserReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRes is the public view of a user.
type UserRes struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserRes converts a summary to its response form.
func NewUserRes(s entity.UserSummary) UserRes {
	return UserRes{ID: s.ID, Username: s.Username, Email: s.Email}
}

// NewUserListRes converts summaries to a response list. The result is never nil.
func NewUserListRes(summaries []entity.UserSummary) []UserRes {
	res := make([]UserRes, 0, len(summaries))
	for _, s := range summaries {
		res = append(res, NewUserRes(s))
	}
	return res
}
