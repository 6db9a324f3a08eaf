// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"libris/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumBooks    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores the plain demo password, making large seeds much faster.
	SkipBcrypt bool
	// MaxDays spreads generated created_at timestamps over the past N days.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for demo data
	return &Factory{db: db, opts: opts, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// pastTime returns a timestamp spread over the past MaxDays days.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateBook constructs and persists a sample `models.Book` in the given
// category, together with a handful of chapters.
func (f *Factory) CreateBook(category *models.Category, overrides ...func(*models.Book)) (*models.Book, error) {
	book := &models.Book{
		Title:           gofakeit.BookTitle(),
		Author:          gofakeit.BookAuthor(),
		CoverImage:      fmt.Sprintf("https://picsum.photos/seed/%s/400/600", gofakeit.UUID()),
		Description:     gofakeit.Paragraph(1, 4, 8, " "),
		PublicationDate: fmt.Sprintf("%d", gofakeit.Number(1950, 2025)),
		Publisher:       gofakeit.Company(),
		ISBN:            fmt.Sprintf("978-%d", gofakeit.Number(1000000000, 1999999999)),
		PageCount:       gofakeit.Number(120, 900),
		Rating:          float64(gofakeit.Number(20, 50)) / 10, // 2.0 to 5.0
		RatingCount:     gofakeit.Number(0, 2000),
	}
	if category != nil {
		book.CategoryID = &category.ID
	}
	book.CreatedAt = f.pastTime()

	for _, override := range overrides {
		override(book)
	}

	if err := f.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// CreateChapters persists `count` sequential chapters for the given book.
func (f *Factory) CreateChapters(book *models.Book, count int) ([]*models.Chapter, error) {
	chapters := make([]*models.Chapter, 0, count)
	for n := 1; n <= count; n++ {
		chapter := &models.Chapter{
			BookID:        book.ID,
			ChapterNumber: n,
			ChapterTitle:  fmt.Sprintf("Chapter %d: %s", n, gofakeit.Sentence(3)),
			Content:       gofakeit.Paragraph(6, 5, 12, "\n\n"),
		}
		if err := f.db.Create(chapter).Error; err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, nil
}

// TagBook attaches the given tags to the book.
func (f *Factory) TagBook(book *models.Book, tags []*models.Tag) error {
	for _, tag := range tags {
		bt := &models.BookTag{BookID: book.ID, TagID: tag.ID}
		if err := f.db.Create(bt).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateShelfEntry places the book on the user's shelf with random progress.
func (f *Factory) CreateShelfEntry(user *models.User, book *models.Book) (*models.ShelfEntry, error) {
	entry := &models.ShelfEntry{
		UserID:          user.ID,
		BookID:          book.ID,
		ReadingProgress: gofakeit.Number(0, 100),
		LastReadAt:      f.pastTime(),
	}
	if err := f.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given
// user, optionally referencing a book.
func (f *Factory) CreatePost(user *models.User, book *models.Book, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:   gofakeit.Sentence(5),
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:  user.ID,
	}
	if book != nil {
		post.BookID = &book.ID
		post.Title = fmt.Sprintf("Thoughts on %q", book.Title)
	}
	post.CreatedAt = f.pastTime()

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment on the post and bumps its counter, so
// seeded counts match what the API write path would have produced.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		PostID:  post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	if err := f.db.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post` and bumps its counter.
// Duplicate likes return an error from the unique index; callers should
// pick distinct users per post.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := f.db.Create(like).Error; err != nil {
		return err
	}
	return f.db.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
}

// logEvery prints progress for long-running seed loops.
func logEvery(i, step int, what string) {
	if i > 0 && i%step == 0 {
		log.Printf("Created %d %s...", i, what)
	}
}
