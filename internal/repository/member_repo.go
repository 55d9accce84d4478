package repository

import (
	"context"
	"time"

	"github.com/hituru/admin-backend/internal/domain"
	"gorm.io/gorm"
)

var memberSearch = map[string]string{
	"id":   "m.mem_id LIKE ?",
	"nick": "m.mem_nick LIKE ?",
}

// MemberRepository handles HM_MEMBER reads and the suspension/deletion writes
type MemberRepository struct {
	db     *gorm.DB
	active *TableRepository[domain.Member, domain.Member]
	banned *TableRepository[domain.Member, domain.Member]
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	t := listTable{
		name:    "HM_MEMBER",
		alias:   "m",
		key:     "mem_idx",
		live:    "deldt IS NULL",
		order:   "mem_idx DESC",
		columns: "m.*",
		detail:  "m.*",
		search:  memberSearch,
	}
	banned := t
	banned.live = "deldt IS NULL AND isstop = 'Y'"

	return &MemberRepository{
		db:     db,
		active: newTableRepository[domain.Member, domain.Member](db, t),
		banned: newTableRepository[domain.Member, domain.Member](db, banned),
	}
}

// FindPage returns one page of non-deleted members
func (r *MemberRepository) FindPage(ctx context.Context, page int) ([]domain.Member, int64, error) {
	return r.active.FindPage(ctx, page)
}

// SearchPage searches non-deleted members by id or nick
func (r *MemberRepository) SearchPage(ctx context.Context, field, term string, page int) ([]domain.Member, int64, error) {
	return r.active.SearchPage(ctx, field, term, page)
}

// FindBannedPage returns one page of suspended members
func (r *MemberRepository) FindBannedPage(ctx context.Context, page int) ([]domain.Member, int64, error) {
	return r.banned.FindPage(ctx, page)
}

// SearchBannedPage searches suspended members by id or nick
func (r *MemberRepository) SearchBannedPage(ctx context.Context, field, term string, page int) ([]domain.Member, int64, error) {
	return r.banned.SearchPage(ctx, field, term, page)
}

// FindByID returns a non-deleted member or gorm.ErrRecordNotFound
func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	return r.active.FindByID(ctx, id)
}

// Exists reports whether a non-deleted member has the id
func (r *MemberRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Member{}).
		Where("mem_idx = ? AND deldt IS NULL", id).
		Count(&count).Error
	return count > 0, err
}

// Ban sets all three suspension fields in one statement
func (r *MemberRepository) Ban(ctx context.Context, id int64, reason, until string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Member{}).
		Where("mem_idx = ? AND deldt IS NULL", id).
		Updates(map[string]interface{}{
			"isstop":    domain.FlagYes,
			"stop_info": reason,
			"stopdt":    until,
		})
	return r.matched(ctx, res, id)
}

// Unban clears all three suspension fields in one statement, whatever their prior values
func (r *MemberRepository) Unban(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Member{}).
		Where("mem_idx = ? AND deldt IS NULL", id).
		Updates(map[string]interface{}{
			"isstop":    domain.FlagNo,
			"stop_info": nil,
			"stopdt":    nil,
		})
	return r.matched(ctx, res, id)
}

// SoftDelete stamps deldt on a non-deleted member
func (r *MemberRepository) SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Member{}).
		Where("mem_idx = ? AND deldt IS NULL", id).
		Update("deldt", at)
	return res.RowsAffected > 0, res.Error
}

// matched reports whether an UPDATE hit a row. MySQL reports changed rows unless
// CLIENT_FOUND_ROWS is set, so an unchanged row falls back to an existence check.
func (r *MemberRepository) matched(ctx context.Context, res *gorm.DB, id int64) (bool, error) {
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	return r.Exists(ctx, id)
}
