package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/repository"
)

// QnAService serves the member inquiry queue and records admin answers
type QnAService interface {
	ListService[domain.QnA, domain.QnADetail]
	Answered(ctx context.Context, page int) (*common.ListResponse[domain.QnA], error)
	Pending(ctx context.Context, page int) (*common.ListResponse[domain.QnA], error)
	Answer(ctx context.Context, id int64, req *domain.QnAAnswerRequest) error
}

type qnaService struct {
	ListService[domain.QnA, domain.QnADetail]
	repo *repository.QnARepository
	now  func() time.Time
}

// NewQnAService creates a new QnAService
func NewQnAService(repo *repository.QnARepository) QnAService {
	return &qnaService{
		ListService: NewListService[domain.QnA, domain.QnADetail](repo, common.ErrQnANotFound),
		repo:        repo,
		now:         time.Now,
	}
}

// Answered returns one page of answered inquiries
func (s *qnaService) Answered(ctx context.Context, page int) (*common.ListResponse[domain.QnA], error) {
	rows, total, err := s.repo.FindAnsweredPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return common.NewListResponse(rows, page, total), nil
}

// Pending returns one page of unanswered inquiries
func (s *qnaService) Pending(ctx context.Context, page int) (*common.ListResponse[domain.QnA], error) {
	rows, total, err := s.repo.FindPendingPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return common.NewListResponse(rows, page, total), nil
}

// Answer stores an answer. Both subject and content must be non-blank.
func (s *qnaService) Answer(ctx context.Context, id int64, req *domain.QnAAnswerRequest) error {
	subject := strings.TrimSpace(req.RSubject)
	content := strings.TrimSpace(req.RContent)
	if subject == "" || content == "" {
		return common.ErrQnAAnswerRequired
	}

	found, err := s.repo.Answer(ctx, id, subject, content, s.now())
	if err != nil {
		return fmt.Errorf("answer inquiry %d: %w", id, err)
	}
	if !found {
		return common.ErrQnANotFound
	}
	return nil
}
