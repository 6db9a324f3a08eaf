package repository

import (
	"context"
	"testing"
	"time"

	"libris/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndGetByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")

	post := &models.Post{UserID: author.ID, Title: "First post", Content: "Hello"}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "First post", got.Title)
	assert.Equal(t, author.Username, got.User.Username)
	assert.Equal(t, 0, got.LikesCount)
	assert.Equal(t, 0, got.CommentsCount)
	assert.False(t, got.Liked)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999999, 0)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_List_NewestFirst(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "lister")

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		post := &models.Post{
			UserID:    author.ID,
			Title:     title,
			Content:   "c",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := repo.List(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)

	// pagination
	page, err := repo.List(ctx, 2, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "oldest", page[0].Title)
}

func TestPostRepository_ToggleLike(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "poster")
	fan := createTestUser(t, db, "fan")
	post := createTestPost(t, db, author.ID, "likeable")

	liked, err := repo.ToggleLike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := repo.GetByID(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)
	assert.True(t, got.Liked)

	// counter matches the like rows
	var likeRows int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeRows).Error)
	assert.EqualValues(t, 1, likeRows)

	// second toggle removes the like
	liked, err = repo.ToggleLike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = repo.GetByID(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikesCount)
	assert.False(t, got.Liked)

	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeRows).Error)
	assert.EqualValues(t, 0, likeRows)
}

func TestPostRepository_ToggleLike_TwoUsers(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "writer")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, author.ID, "popular")

	_, err := repo.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	_, err = repo.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikesCount)
	assert.True(t, got.Liked)

	// bob unlikes; alice's like remains
	liked, err := repo.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = repo.GetByID(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)
	assert.False(t, got.Liked)
}

func TestPostRepository_ToggleLike_PostNotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)

	fan := createTestUser(t, db, "nobody")

	_, err := repo.ToggleLike(context.Background(), fan.ID, 424242)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_GetLikedPostIDs(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "prolific")
	fan := createTestUser(t, db, "selective")

	first := createTestPost(t, db, author.ID, "one")
	second := createTestPost(t, db, author.ID, "two")
	third := createTestPost(t, db, author.ID, "three")

	_, err := repo.ToggleLike(ctx, fan.ID, first.ID)
	require.NoError(t, err)
	_, err = repo.ToggleLike(ctx, fan.ID, third.ID)
	require.NoError(t, err)

	likedIDs, err := repo.GetLikedPostIDs(ctx, fan.ID, []uint{first.ID, second.ID, third.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{first.ID, third.ID}, likedIDs)

	likedIDs, err = repo.GetLikedPostIDs(ctx, fan.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, likedIDs)
}

func TestPostRepository_GetByUserID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice2")
	bob := createTestUser(t, db, "bob2")
	createTestPost(t, db, alice.ID, "by alice")
	createTestPost(t, db, bob.ID, "by bob")

	posts, err := repo.GetByUserID(ctx, alice.ID, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "by alice", posts[0].Title)
}
