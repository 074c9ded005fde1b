package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_backend/internal/feature/article/domain/entity"
	"news_backend/internal/feature/article/usecase"
)

// mockArticleRepository はテスト用のArticleRepositoryモック実装です。
type mockArticleRepository struct {
	createFn   func(ctx context.Context, a *entity.Article) error
	listFn     func(ctx context.Context) ([]entity.Article, error)
	findByIDFn func(ctx context.Context, id uint) (*entity.Article, error)
	updateFn   func(ctx context.Context, a *entity.Article) (int64, error)
	deleteFn   func(ctx context.Context, id uint) (int64, error)
}

func (m *mockArticleRepository) Create(ctx context.Context, a *entity.Article) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) List(ctx context.Context) ([]entity.Article, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockArticleRepository) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrArticleNotFound
}

func (m *mockArticleRepository) Update(ctx context.Context, a *entity.Article) (int64, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, a)
	}
	return 1, nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 1, nil
}

// TestNewCachingArticleRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingArticleRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "news"},
		{"negative ttl uses default", -time.Minute, "", 5 * time.Minute, "news"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingArticleRepository(nil, tt.ttl, &mockArticleRepository{}, tt.namespace)

			assert.Equal(t, tt.expectedTTL, repo.ttl)
			assert.Equal(t, tt.expectedNamespace, repo.namespace)
		})
	}
}

// TestCachingArticleRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingArticleRepository_NilRedis(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mockArticleRepository{
		listFn: func(ctx context.Context) ([]entity.Article, error) {
			calls++
			return []entity.Article{{ID: 1, Title: "a", Content: "b"}}, nil
		},
	}
	repo := NewCachingArticleRepository(nil, time.Minute, inner, "")

	for i := 0; i < 2; i++ {
		articles, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, articles, 1)
	}
	assert.Equal(t, 2, calls)

	require.NoError(t, repo.Create(context.Background(), &entity.Article{Title: "x", Content: "y"}))
	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, usecase.ErrArticleNotFound)
}

// TestCachingArticleRepository_List_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingArticleRepository_List_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.Article{{ID: 1, Title: "Hello", Content: "World"}}
	cachedJSON, _ := json.Marshal(cached)
	mock.ExpectGet("news:list").SetVal(string(cachedJSON))

	inner := &mockArticleRepository{
		listFn: func(ctx context.Context) ([]entity.Article, error) {
			t.Error("inner repository should not be called on cache hit")
			return nil, nil
		},
	}

	repo := NewCachingArticleRepository(rdb, 5*time.Minute, inner, "news")
	articles, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, articles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingArticleRepository_List_CacheMiss はキャッシュミス時にDBから取得してキャッシュに保存することを検証します。
func TestCachingArticleRepository_List_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Article{{ID: 1, Title: "Hello", Content: "World"}}
	expectedJSON, _ := json.Marshal(expected)

	mock.ExpectGet("news:list").RedisNil()
	mock.ExpectSet("news:list", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockArticleRepository{
		listFn: func(ctx context.Context) ([]entity.Article, error) { return expected, nil },
	}

	repo := NewCachingArticleRepository(rdb, 5*time.Minute, inner, "news")
	articles, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, articles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingArticleRepository_FindByID_CorruptedCache は破損したキャッシュを削除してDBにフォールバックすることを検証します。
func TestCachingArticleRepository_FindByID_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.Article{ID: 7, Title: "Hello", Content: "World"}
	expectedJSON, _ := json.Marshal(expected)

	mock.ExpectGet("news:id:7").SetVal("invalid json")
	mock.ExpectDel("news:id:7").SetVal(1)
	mock.ExpectSet("news:id:7", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockArticleRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.Article, error) { return expected, nil },
	}

	repo := NewCachingArticleRepository(rdb, 5*time.Minute, inner, "news")
	article, err := repo.FindByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, expected, article)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingArticleRepository_FindByID_MissIsNotCached は存在しない記事がキャッシュされないことを検証します。
func TestCachingArticleRepository_FindByID_MissIsNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("news:id:9").RedisNil()

	repo := NewCachingArticleRepository(rdb, 5*time.Minute, &mockArticleRepository{}, "news")
	_, err := repo.FindByID(context.Background(), 9)

	assert.ErrorIs(t, err, usecase.ErrArticleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingArticleRepository_WritesInvalidate は書き込み後に関連キーが削除されることを検証します。
func TestCachingArticleRepository_WritesInvalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("news:list").SetVal(1)
	mock.ExpectDel("news:list", "news:id:3").SetVal(2)
	mock.ExpectDel("news:list", "news:id:3").SetVal(0)

	repo := NewCachingArticleRepository(rdb, 5*time.Minute, &mockArticleRepository{}, "news")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Article{Title: "a", Content: "b"}))
	_, err := repo.Update(ctx, &entity.Article{ID: 3, Title: "c", Content: "d"})
	require.NoError(t, err)
	_, err = repo.Delete(ctx, 3)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingArticleRepository_InnerErrors は内部リポジトリのエラーが伝播され、キャッシュに触れないことを検証します。
func TestCachingArticleRepository_InnerErrors(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	inner := &mockArticleRepository{
		createFn: func(ctx context.Context, a *entity.Article) error { return expectedErr },
		updateFn: func(ctx context.Context, a *entity.Article) (int64, error) { return 0, expectedErr },
		deleteFn: func(ctx context.Context, id uint) (int64, error) { return 0, expectedErr },
		listFn:   func(ctx context.Context) ([]entity.Article, error) { return nil, expectedErr },
	}
	mock.ExpectGet("news:list").RedisNil()

	repo := NewCachingArticleRepository(rdb, 5*time.Minute, inner, "news")
	ctx := context.Background()

	assert.ErrorIs(t, repo.Create(ctx, &entity.Article{}), expectedErr)
	_, err := repo.Update(ctx, &entity.Article{ID: 1})
	assert.ErrorIs(t, err, expectedErr)
	_, err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, expectedErr)
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, expectedErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingArticleRepository_Miniredis はローカルRedisサーバーで読み込み・無効化・TTLの一連の流れを検証します。
func TestCachingArticleRepository_Miniredis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	stored := []entity.Article{{ID: 1, Title: "first", Content: "c"}}
	listCalls := 0
	inner := &mockArticleRepository{
		listFn: func(ctx context.Context) ([]entity.Article, error) {
			listCalls++
			return stored, nil
		},
		createFn: func(ctx context.Context, a *entity.Article) error {
			a.ID = uint(len(stored) + 1)
			stored = append(stored, *a)
			return nil
		},
	}

	repo := NewCachingArticleRepository(rdb, time.Minute, inner, "news")
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)
	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls, "second read should be served from cache")
	assert.True(t, mr.Exists("news:list"))
	assert.Equal(t, time.Minute, mr.TTL("news:list"))

	require.NoError(t, repo.Create(ctx, &entity.Article{Title: "second", Content: "c"}))
	assert.False(t, mr.Exists("news:list"), "create should invalidate the list")

	articles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, 2, listCalls)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("news:list"))
}
