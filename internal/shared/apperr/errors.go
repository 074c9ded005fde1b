// Package apperr はaccountとarticleの両フィーチャーで共有するエラー分類を定義します。
// usecaseから返るエラーは以下のいずれかの種別に分類され、HTTP層で一箇所にまとめてステータスコードに変換されます。
package apperr

import (
	"errors"
	"fmt"
)

// エラー種別。errors.Is(err, ErrNotFound) などで判定します。
var (
	// ErrValidation は必須フィールドの欠落を表します。
	ErrValidation = errors.New("validation error")

	// ErrConflict はストアが報告した一意制約違反を表します。
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials はログイン失敗を表します。
	// 未登録メールアドレスとパスワード不一致で同じ値を使います。
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound はIDに一致する行がないことを表します。
	ErrNotFound = errors.New("not found")

	// ErrInternal はハッシュ化の失敗や想定外のストアエラーを表します。
	ErrInternal = errors.New("internal error")
)

// Error はクライアント向けメッセージと原因を持つ分類済みエラーです。
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is はtargetがeの種別かどうかを返します。
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation はErrValidationのエラーを返します。
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Conflict はErrConflictのエラーを返します。ストアのメッセージをそのままクライアントに返します。
func Conflict(cause error) error {
	return &Error{Kind: ErrConflict, Message: cause.Error()}
}

// InvalidCredentials はErrInvalidCredentialsのエラーを返します。
func InvalidCredentials(msg string) error {
	return &Error{Kind: ErrInvalidCredentials, Message: msg}
}

// NotFound はErrNotFoundのエラーを返します。
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Internal はcauseをErrInternalとしてラップします。
func Internal(msg string, cause error) error {
	return &Error{Kind: ErrInternal, Message: msg, Err: cause}
}

// Message はerrのクライアント向けメッセージを返します。未分類の場合は空文字です。
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// OrInternal は分類済みのerrはそのまま返し、それ以外はmsg付きのErrInternalでラップします。
// errがnilの場合はnilを返します。
func OrInternal(err error, msg string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Internal(msg, err)
}
