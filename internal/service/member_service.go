package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberStore is the member data access the member services need
type MemberStore interface {
	FindPage(ctx context.Context, page int) ([]domain.Member, int64, error)
	SearchPage(ctx context.Context, field, term string, page int) ([]domain.Member, int64, error)
	FindBannedPage(ctx context.Context, page int) ([]domain.Member, int64, error)
	SearchBannedPage(ctx context.Context, field, term string, page int) ([]domain.Member, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	Ban(ctx context.Context, id int64, reason, until string) (bool, error)
	Unban(ctx context.Context, id int64) (bool, error)
	SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error)
}

// MemberService handles admin member listing and deletion
type MemberService interface {
	List(ctx context.Context, page int) (*common.ListResponse[*domain.MemberListItem], error)
	Search(ctx context.Context, field, term string, page int) (*common.ListResponse[*domain.MemberListItem], error)
	Detail(ctx context.Context, id int64) (*domain.MemberDetail, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) ([]Outcome, error)
}

type memberService struct {
	repo MemberStore
	now  func() time.Time
}

// NewMemberService creates a new MemberService
func NewMemberService(repo MemberStore) MemberService {
	return &memberService{repo: repo, now: time.Now}
}

func toListResponse(members []domain.Member, page int, total int64) *common.ListResponse[*domain.MemberListItem] {
	items := make([]*domain.MemberListItem, len(members))
	for i := range members {
		items[i] = members[i].ToListItem()
	}
	return common.NewListResponse(items, page, total)
}

// List returns one page of non-deleted members
func (s *memberService) List(ctx context.Context, page int) (*common.ListResponse[*domain.MemberListItem], error) {
	members, total, err := s.repo.FindPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return toListResponse(members, page, total), nil
}

// Search returns one page of members matching term on field (id | nick)
func (s *memberService) Search(ctx context.Context, field, term string, page int) (*common.ListResponse[*domain.MemberListItem], error) {
	members, total, err := s.repo.SearchPage(ctx, field, term, page)
	if err != nil {
		return nil, err
	}
	return toListResponse(members, page, total), nil
}

// Detail returns one member
func (s *memberService) Detail(ctx context.Context, id int64) (*domain.MemberDetail, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMemberNotFound
		}
		return nil, err
	}
	return m.ToDetail(), nil
}

// Delete soft-deletes a member
func (s *memberService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.SoftDelete(ctx, id, s.now())
	if err != nil {
		return fmt.Errorf("soft delete member %d: %w", id, err)
	}
	if !found {
		return common.ErrMemberNotFound
	}
	return nil
}

// DeleteMany soft-deletes every id independently
func (s *memberService) DeleteMany(ctx context.Context, ids []int64) ([]Outcome, error) {
	if len(ids) == 0 {
		return nil, common.ErrEmptyIDList
	}
	return runEach(ctx, ids, s.Delete), nil
}

// BanService drives the ACTIVE <-> SUSPENDED member lifecycle
type BanService interface {
	Ban(ctx context.Context, id int64, req *domain.BanRequest) error
	Unban(ctx context.Context, id int64) error
	UnbanMany(ctx context.Context, ids []int64) ([]Outcome, error)
	ListBanned(ctx context.Context, page int) (*common.ListResponse[*domain.MemberListItem], error)
	SearchBanned(ctx context.Context, field, term string, page int) (*common.ListResponse[*domain.MemberListItem], error)
}

type banService struct {
	repo MemberStore
}

// NewBanService creates a new BanService
func NewBanService(repo MemberStore) BanService {
	return &banService{repo: repo}
}

// Ban suspends a member. Re-banning overwrites reason and end date.
// stopdt is only checked for presence.
func (s *banService) Ban(ctx context.Context, id int64, req *domain.BanRequest) (err error) {
	defer func() { observeTransition("ban", err) }()

	reason := strings.TrimSpace(req.StopInfo)
	if reason == "" {
		return common.ErrBanReasonRequired
	}
	until := strings.TrimSpace(req.StopDate)
	if until == "" {
		return common.ErrBanUntilRequired
	}

	found, err := s.repo.Ban(ctx, id, reason, until)
	if err != nil {
		return fmt.Errorf("ban member %d: %w", id, err)
	}
	if !found {
		return common.ErrMemberNotFound
	}
	return nil
}

// Unban clears every suspension field. Unbanning an active member succeeds.
func (s *banService) Unban(ctx context.Context, id int64) (err error) {
	defer func() { observeTransition("unban", err) }()

	found, err := s.repo.Unban(ctx, id)
	if err != nil {
		return fmt.Errorf("unban member %d: %w", id, err)
	}
	if !found {
		return common.ErrMemberNotFound
	}
	return nil
}

// UnbanMany unbans every id independently
func (s *banService) UnbanMany(ctx context.Context, ids []int64) ([]Outcome, error) {
	if len(ids) == 0 {
		return nil, common.ErrEmptyIDList
	}
	return runEach(ctx, ids, s.Unban), nil
}

// ListBanned returns one page of suspended members
func (s *banService) ListBanned(ctx context.Context, page int) (*common.ListResponse[*domain.MemberListItem], error) {
	members, total, err := s.repo.FindBannedPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return toListResponse(members, page, total), nil
}

// SearchBanned searches suspended members by id or nick
func (s *banService) SearchBanned(ctx context.Context, field, term string, page int) (*common.ListResponse[*domain.MemberListItem], error) {
	members, total, err := s.repo.SearchBannedPage(ctx, field, term, page)
	if err != nil {
		return nil, err
	}
	return toListResponse(members, page, total), nil
}
