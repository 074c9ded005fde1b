// Package adapters はaccountフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"news_backend/internal/feature/account/domain/entity"
	"news_backend/internal/feature/account/usecase"
	dbplatform "news_backend/internal/platform/db"
	"news_backend/internal/shared/apperr"
)

// publicColumns はパスワードハッシュを除いた読み取り用カラムです。
var publicColumns = []string{"id", "username", "email"}

// userRepository はUserRepositoryインターフェースのGORM実装です。
// SQLite・PostgreSQL・MySQLのいずれの接続でも動作します。
type userRepository struct {
	db *gorm.DB
}

// userRepositoryがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userRepository)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserRepositoryの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

// Create はユーザーをデータベースに追加します。
// ユニーク制約違反はストアのエラーメッセージを保ったままapperr.Conflictに変換します。
func (r *userRepository) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if dbplatform.IsUniqueViolation(err) {
			return apperr.Conflict(err)
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーをパスワードハッシュ付きで取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。Passwordは空のままです。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Select(publicColumns).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List は全ユーザーをID昇順で取得します。Passwordは空のままです。
func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Select(publicColumns).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update はユーザー名・メールアドレス・パスワードを上書きし、条件に一致した行数を返します。
func (r *userRepository) Update(ctx context.Context, u *entity.User) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"username": u.Username,
			"email":    u.Email,
			"password": u.Password,
		})
	if res.Error != nil {
		if dbplatform.IsUniqueViolation(res.Error) {
			return 0, apperr.Conflict(res.Error)
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete はIDでユーザーを削除し、削除した行数を返します。
func (r *userRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
