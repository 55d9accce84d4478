package service

import (
	"context"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/repository"
)

// CommentService serves general board comments, including the per-post listing
type CommentService interface {
	ListService[domain.Comment, domain.Comment]
	ListByPost(ctx context.Context, boIdx int64, page int) (*common.ListResponse[domain.Comment], error)
}

type commentService struct {
	ListService[domain.Comment, domain.Comment]
	repo *repository.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(repo *repository.CommentRepository) CommentService {
	return &commentService{
		ListService: NewListService[domain.Comment, domain.Comment](repo, common.ErrCommentNotFound),
		repo:        repo,
	}
}

// ListByPost returns one page of the comments of a post
func (s *commentService) ListByPost(ctx context.Context, boIdx int64, page int) (*common.ListResponse[domain.Comment], error) {
	rows, total, err := s.repo.FindPageBy(ctx, "bo_idx", boIdx, page)
	if err != nil {
		return nil, err
	}
	return common.NewListResponse(rows, page, total), nil
}
