package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"news_backend/internal/feature/article/domain/entity"
	"news_backend/internal/feature/article/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Article{}), "failed to migrate table")
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestArticleRepository_TableName(t *testing.T) {
	db := setupTestDB(t)

	assert.True(t, db.Migrator().HasTable("news"))
}

func TestArticleRepository_CreateAndFind(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()

	a := &entity.Article{Title: "Hello", Content: "World"}
	require.NoError(t, repo.Create(ctx, a))
	require.NotZero(t, a.ID)

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, found)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, usecase.ErrArticleNotFound)
}

func TestArticleRepository_List(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		repo := NewArticleRepository(setupTestDB(t))

		articles, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("ordered by id", func(t *testing.T) {
		repo := NewArticleRepository(setupTestDB(t))
		ctx := context.Background()
		for _, title := range []string{"first", "second", "third"} {
			require.NoError(t, repo.Create(ctx, &entity.Article{Title: title, Content: "c"}))
		}

		articles, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, "first", articles[0].Title)
		assert.Equal(t, "third", articles[2].Title)
		assert.Less(t, articles[0].ID, articles[1].ID)
		assert.Less(t, articles[1].ID, articles[2].ID)
	})

	t.Run("store failure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewArticleRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "news"`).WillReturnError(errors.New(`relation "news" does not exist`))

		_, err := repo.List(context.Background())

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArticleRepository_Update(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()
	a := &entity.Article{Title: "Hello", Content: "World"}
	require.NoError(t, repo.Create(ctx, a))

	rows, err := repo.Update(ctx, &entity.Article{ID: a.ID, Title: "New", Content: "Body"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Title)
	assert.Equal(t, "Body", found.Content)

	rows, err = repo.Update(ctx, &entity.Article{ID: 999, Title: "x", Content: "y"})
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestArticleRepository_Delete(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()
	a := &entity.Article{Title: "Hello", Content: "World"}
	require.NoError(t, repo.Create(ctx, a))

	rows, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestArticleRepository_IDsNotReused(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	ctx := context.Background()

	first := &entity.Article{Title: "a", Content: "b"}
	require.NoError(t, repo.Create(ctx, first))
	second := &entity.Article{Title: "c", Content: "d"}
	require.NoError(t, repo.Create(ctx, second))

	_, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)

	third := &entity.Article{Title: "e", Content: "f"}
	require.NoError(t, repo.Create(ctx, third))

	assert.Greater(t, third.ID, second.ID)
}
