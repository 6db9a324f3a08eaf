// Package service holds the business logic between the HTTP handlers and
// the repositories.
package service

import (
	"context"

	"libris/internal/cache"
	"libris/internal/models"
	"libris/internal/repository"
)

const (
	maxPostTitleLen   = 300
	maxPostContentLen = 50000
	maxCommentLen     = 10000

	// feedFirstPageLimit is the only page size served from the shared
	// first-page cache. cache.PostsFirstPageKey is a single key, so caching
	// any other limit would replay a wrongly sized page.
	feedFirstPageLimit = 20
)

// CommunityService implements the community feed: posts, comments, likes.
type CommunityService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
	BookID  *uint
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommunityService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *CommunityService {
	return &CommunityService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *CommunityService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxPostTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxPostContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post := &models.Post{
		UserID:  in.UserID,
		Title:   in.Title,
		Content: in.Content,
		BookID:  in.BookID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// ListPosts returns the newest posts first. The anonymous default first
// page is served cache-aside; the requesting user's liked flags are
// re-applied on top of the cached rows so cached entries stay
// user-neutral. Any other limit or offset goes straight to the database.
func (s *CommunityService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	var posts []*models.Post
	var err error

	if in.Offset == 0 && in.Limit == feedFirstPageLimit {
		err = cache.Aside(ctx, cache.PostsFirstPageKey, &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset, 0)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}

		if in.CurrentUserID != 0 && len(posts) > 0 {
			postIDs := make([]uint, len(posts))
			for i, p := range posts {
				postIDs[i] = p.ID
			}
			likedIDs, likedErr := s.postRepo.GetLikedPostIDs(ctx, in.CurrentUserID, postIDs)
			if likedErr == nil {
				likedMap := make(map[uint]bool, len(likedIDs))
				for _, id := range likedIDs {
					likedMap[id] = true
				}
				for _, p := range posts {
					p.Liked = likedMap[p.ID]
				}
			}
		}
		return posts, nil
	}

	return s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *CommunityService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// PostDetail returns the post together with its comments, oldest first.
func (s *CommunityService) PostDetail(ctx context.Context, id uint, currentUserID uint) (*models.Post, []*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *CommunityService) ListUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *CommunityService) AddComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		UserID:  in.UserID,
		PostID:  in.PostID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommunityService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// ToggleLike flips the caller's liked state on the post and returns the
// resulting state.
func (s *CommunityService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.postRepo.ToggleLike(ctx, userID, postID)
}
