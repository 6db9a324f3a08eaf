package seed

import (
	"fmt"
	"log"

	"libris/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates the database with demo data.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d books, %d posts...",
		opts.NumUsers, opts.NumBooks, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	categories, err := Categories(db)
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	log.Printf("✓ %d categories available", len(categories))

	tags, err := Tags(db)
	if err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}
	log.Printf("✓ %d tags available", len(tags))

	users, err := createUsers(db, factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d demo users created", len(users))

	books, err := createBooks(factory, categories, tags, opts.NumBooks)
	if err != nil {
		return fmt.Errorf("failed to create books: %w", err)
	}
	log.Printf("✓ %d books created", len(books))

	if err := createShelves(factory, users, books); err != nil {
		return fmt.Errorf("failed to create bookshelves: %w", err)
	}
	log.Println("✓ bookshelves populated")

	posts, err := createPosts(factory, users, books, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createEngagement(factory, users, posts); err != nil {
		return fmt.Errorf("failed to create comments and likes: %w", err)
	}
	log.Println("✓ comments and likes created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE likes, comments, posts, shelf_entries, book_tags, chapters, books, tags, categories, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include a known login for manual testing.
	if count >= 1 {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		demo := models.User{
			Username: "reader",
			Email:    "reader@example.com",
			Password: string(hashedPassword),
			Bio:      "Here for the books.",
			Avatar:   "https://i.pravatar.cc/150?u=reader",
		}
		if err := db.Create(&demo).Error; err == nil {
			users = append(users, &demo)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
		logEvery(i, 100, "users")
	}

	return users, nil
}

func createBooks(factory *Factory, categories []*models.Category, tags []*models.Tag, count int) ([]*models.Book, error) {
	books := make([]*models.Book, 0, count)

	for i := 0; i < count; i++ {
		category := categories[factory.rand.Intn(len(categories))]
		book, err := factory.CreateBook(category)
		if err != nil {
			return nil, err
		}

		chapterCount := factory.rand.Intn(10) + 3
		if _, err := factory.CreateChapters(book, chapterCount); err != nil {
			return nil, err
		}

		// one to three distinct tags per book
		picked := factory.rand.Perm(len(tags))[:factory.rand.Intn(3)+1]
		bookTags := make([]*models.Tag, 0, len(picked))
		for _, idx := range picked {
			bookTags = append(bookTags, tags[idx])
		}
		if err := factory.TagBook(book, bookTags); err != nil {
			return nil, err
		}

		books = append(books, book)
		logEvery(i, 50, "books")
	}

	return books, nil
}

func createShelves(factory *Factory, users []*models.User, books []*models.Book) error {
	if len(books) == 0 {
		return nil
	}
	for _, user := range users {
		shelfSize := factory.rand.Intn(6) // 0 to 5 books per shelf
		if shelfSize > len(books) {
			shelfSize = len(books)
		}
		for _, idx := range factory.rand.Perm(len(books))[:shelfSize] {
			if _, err := factory.CreateShelfEntry(user, books[idx]); err != nil {
				return err
			}
		}
	}
	return nil
}

func createPosts(factory *Factory, users []*models.User, books []*models.Book, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)

	for i := 0; i < count; i++ {
		user := users[factory.rand.Intn(len(users))]

		// roughly half the posts discuss a specific book
		var book *models.Book
		if len(books) > 0 && factory.rand.Float32() < 0.5 {
			book = books[factory.rand.Intn(len(books))]
		}

		post, err := factory.CreatePost(user, book)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
		logEvery(i, 100, "posts")
	}

	return posts, nil
}

// createEngagement adds comments and likes through the factory so the
// denormalized counters on each post stay equal to the row counts.
func createEngagement(factory *Factory, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		commentCount := factory.rand.Intn(5)
		for i := 0; i < commentCount; i++ {
			commenter := users[factory.rand.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return err
			}
		}

		likeCount := factory.rand.Intn(len(users) + 1)
		if likeCount > 10 {
			likeCount = 10
		}
		for _, idx := range factory.rand.Perm(len(users))[:likeCount] {
			if err := factory.CreateLike(users[idx], post); err != nil {
				return err
			}
		}
	}
	return nil
}
