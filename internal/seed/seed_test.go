package seed

import (
	"testing"

	"libris/internal/database"
	"libris/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed_PopulatesAllTables(t *testing.T) {
	db := setupSeedDB(t)

	err := Seed(db, Options{
		NumUsers:   4,
		NumBooks:   6,
		NumPosts:   5,
		SkipBcrypt: true,
	})
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, table := range []string{"users", "books", "chapters", "book_tags", "posts", "categories", "tags"} {
		var n int64
		require.NoError(t, db.Table(table).Count(&n).Error)
		counts[table] = n
	}

	assert.EqualValues(t, 4, counts["users"])
	assert.EqualValues(t, 6, counts["books"])
	assert.EqualValues(t, 5, counts["posts"])
	assert.EqualValues(t, len(BuiltInCategories), counts["categories"])
	assert.EqualValues(t, len(BuiltInTags), counts["tags"])
	assert.GreaterOrEqual(t, counts["chapters"], int64(6*3), "every book gets at least three chapters")
	assert.GreaterOrEqual(t, counts["book_tags"], int64(6), "every book gets at least one tag")
}

func TestSeed_CreatesKnownDemoLogin(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 1, NumBooks: 1, NumPosts: 1, SkipBcrypt: true}))

	var demo models.User
	require.NoError(t, db.Where("username = ?", "reader").First(&demo).Error)
	assert.Equal(t, "reader@example.com", demo.Email)
}

func TestSeed_CountersMatchEngagementRows(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 5, NumBooks: 3, NumPosts: 8, SkipBcrypt: true}))

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 8)

	for _, post := range posts {
		var likeRows, commentRows int64
		require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeRows).Error)
		require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentRows).Error)
		assert.EqualValues(t, likeRows, post.LikesCount, "post %d likes counter", post.ID)
		assert.EqualValues(t, commentRows, post.CommentsCount, "post %d comments counter", post.ID)
	}
}

func TestSeedCatalog_IsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	first, err := Categories(db)
	require.NoError(t, err)
	second, err := Categories(db)
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))

	var n int64
	require.NoError(t, db.Model(&models.Category{}).Count(&n).Error)
	assert.EqualValues(t, len(BuiltInCategories), n)

	firstTags, err := Tags(db)
	require.NoError(t, err)
	_, err = Tags(db)
	require.NoError(t, err)
	assert.Len(t, firstTags, len(BuiltInTags))

	require.NoError(t, db.Model(&models.Tag{}).Count(&n).Error)
	assert.EqualValues(t, len(BuiltInTags), n)
}
