// Package usecase はaccountフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"news_backend/internal/feature/account/domain/entity"
	"news_backend/internal/shared/apperr"
)

// dummyPassword はダミーハッシュの元になる平文です。
const dummyPassword = "dummy-password-for-timing"

// fallbackDummyHash はダミーハッシュの生成に失敗した場合に使うコスト10のハッシュです。
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化し、採番されたIDをuserに設定します。
	// ユーザー名またはメールアドレスが重複する場合、apperr.ErrConflictを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスに一致するユーザーをパスワードハッシュ付きで取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDに一致するユーザーを取得します。Passwordは読み込みません。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List は全ユーザーをID昇順で返します。Passwordは読み込みません。
	List(ctx context.Context) ([]entity.User, error)

	// Update はuser.IDの行のユーザー名・メールアドレス・パスワードを上書きし、対象行数を返します。
	Update(ctx context.Context, user *entity.User) (int64, error)

	// Delete はIDの行を削除し、対象行数を返します。
	Delete(ctx context.Context, id uint) (int64, error)
}

// PasswordHasher はパスワードの一方向ハッシュ化と照合を定義します。
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	// Compare は不一致の場合 (false, nil) を返します。
	Compare(ctx context.Context, hashed, password string) (bool, error)
}

// accountUsecase はユーザー登録・認証・管理のビジネスロジックを実装します。
type accountUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	// dummyHash はユーザーが存在しない場合の比較対象です。hasherと同じコストで生成し、
	// 未登録メールアドレスでも登録済みと同じだけの比較時間がかかるようにします。
	dummyHash string
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
func NewAccountUsecase(users UserRepository, hasher PasswordHasher) *accountUsecase {
	dummy, err := hasher.Hash(context.Background(), dummyPassword)
	if err != nil {
		slog.Warn("failed to build dummy hash, using fallback", "error", err)
		dummy = fallbackDummyHash
	}
	return &accountUsecase{
		users:     users,
		hasher:    hasher,
		dummyHash: dummy,
	}
}

// Register はハッシュ化したパスワードで新規ユーザーを登録します。
func (u *accountUsecase) Register(ctx context.Context, username, email, password string) (*entity.UserSummary, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperr.Validation(msgAllFieldsRequired)
	}

	hashed, err := u.hasher.Hash(ctx, password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &entity.User{Username: username, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, apperr.OrInternal(err, "failed to create user")
	}

	summary := user.Summary()
	return &summary, nil
}

// Authenticate はメールアドレスとパスワードを検証し、一致したユーザーの公開情報を返します。
// 未登録メールアドレスとパスワード不一致は区別せず、同じエラーを返します。
func (u *accountUsecase) Authenticate(ctx context.Context, email, password string) (*entity.UserSummary, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation(msgCredentialsRequired)
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, apperr.OrInternal(err, "failed to find user")
	}

	// ユーザーが存在しない場合もbcrypt比較を必ず実行する
	passwordHash := u.dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	ok, compareErr := u.hasher.Compare(ctx, passwordHash, password)

	if err != nil {
		return nil, apperr.InvalidCredentials(msgInvalidCredentials)
	}
	if compareErr != nil {
		return nil, apperr.Internal("failed to compare password", compareErr)
	}
	if !ok {
		return nil, apperr.InvalidCredentials(msgInvalidCredentials)
	}

	summary := user.Summary()
	return &summary, nil
}

// ListUsers は全ユーザーの公開情報をID昇順で返します。ユーザーがいない場合は空スライスです。
func (u *accountUsecase) ListUsers(ctx context.Context) ([]entity.UserSummary, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, apperr.OrInternal(err, "failed to list users")
	}

	summaries := make([]entity.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

// GetUser はIDに一致するユーザーの公開情報を返します。
func (u *accountUsecase) GetUser(ctx context.Context, id uint) (*entity.UserSummary, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NotFound(msgUserNotFound)
		}
		return nil, apperr.OrInternal(err, "failed to find user")
	}

	summary := user.Summary()
	return &summary, nil
}

// UpdateUser はユーザー名・メールアドレス・パスワードをまとめて置き換えます。
// パスワードは毎回ハッシュし直します。
func (u *accountUsecase) UpdateUser(ctx context.Context, id uint, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return apperr.Validation(msgAllFieldsRequired)
	}

	hashed, err := u.hasher.Hash(ctx, password)
	if err != nil {
		return apperr.Internal("failed to hash password", err)
	}

	rows, err := u.users.Update(ctx, &entity.User{ID: id, Username: username, Email: email, Password: hashed})
	if err != nil {
		return apperr.OrInternal(err, "failed to update user")
	}
	if rows == 0 {
		return apperr.NotFound(msgUserNotFound)
	}
	return nil
}

// DeleteUser はIDに一致するユーザーを削除します。
func (u *accountUsecase) DeleteUser(ctx context.Context, id uint) error {
	rows, err := u.users.Delete(ctx, id)
	if err != nil {
		return apperr.OrInternal(err, "failed to delete user")
	}
	if rows == 0 {
		return apperr.NotFound(msgUserNotFound)
	}
	return nil
}
