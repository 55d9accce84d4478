package repository

import (
	"context"
	"fmt"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"gorm.io/gorm"
)

// listTable describes how one admin list is read and deleted.
// Read-side SQL fragments may reference the table alias and the joined member table (alias m).
type listTable struct {
	name    string            // physical table
	alias   string            // alias used by read queries
	joins   string            // extra joins for read queries
	key     string            // primary key column, unqualified
	live    string            // predicate selecting non-deleted rows, unqualified
	order   string            // stable list ordering
	columns string            // list projection
	detail  string            // detail projection
	search  map[string]string // search field -> predicate with one placeholder
	images  string            // attachment table sharing key, empty when none
	remove  string            // soft delete SET clause, empty for hard delete
}

// ListRepository is the read/delete surface shared by every admin list
type ListRepository[L any, D any] interface {
	FindPage(ctx context.Context, page int) ([]L, int64, error)
	SearchPage(ctx context.Context, field, term string, page int) ([]L, int64, error)
	FindByID(ctx context.Context, id int64) (*D, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TableRepository implements ListRepository over one listTable.
// L is the list row type, D the detail type.
type TableRepository[L any, D any] struct {
	db *gorm.DB
	t  listTable
}

func newTableRepository[L any, D any](db *gorm.DB, t listTable) *TableRepository[L, D] {
	return &TableRepository[L, D]{db: db, t: t}
}

func (r *TableRepository[L, D]) read(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx).Table(r.t.name + " AS " + r.t.alias)
	if r.t.joins != "" {
		q = q.Joins(r.t.joins)
	}
	if r.t.live != "" {
		q = q.Where(r.t.live)
	}
	return q
}

// page runs the COUNT and the page query against the same filtered set
func (r *TableRepository[L, D]) page(ctx context.Context, page int, where string, args ...interface{}) ([]L, int64, error) {
	query := r.read(ctx)
	if where != "" {
		query = query.Where(where, args...)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]L, 0, common.PageSize)
	if total <= int64(common.Offset(page)) {
		return rows, total, nil
	}
	if err := query.Select(r.t.columns).
		Order(r.t.order).
		Offset(common.Offset(page)).
		Limit(common.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindPage returns one page of live rows and the total row count
func (r *TableRepository[L, D]) FindPage(ctx context.Context, page int) ([]L, int64, error) {
	return r.page(ctx, page, "")
}

// FindPageBy returns one page of rows whose column equals value
func (r *TableRepository[L, D]) FindPageBy(ctx context.Context, column string, value interface{}, page int) ([]L, int64, error) {
	return r.page(ctx, page, r.t.alias+"."+column+" = ?", value)
}

// SearchPage filters with field LIKE %term%. The term is used verbatim.
func (r *TableRepository[L, D]) SearchPage(ctx context.Context, field, term string, page int) ([]L, int64, error) {
	pred, ok := r.t.search[field]
	if !ok {
		return nil, 0, fmt.Errorf("%s search by %q: %w", r.t.name, field, common.ErrInvalidSearchType)
	}
	return r.page(ctx, page, pred, "%"+term+"%")
}

// FindByID returns the detail row with its images, or gorm.ErrRecordNotFound
func (r *TableRepository[L, D]) FindByID(ctx context.Context, id int64) (*D, error) {
	var detail D
	res := r.read(ctx).
		Select(r.t.detail).
		Where(r.t.alias+"."+r.t.key+" = ?", id).
		Limit(1).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	if r.t.images != "" {
		if holder, ok := any(&detail).(interface{ SetImages([]domain.Image) }); ok {
			var images []domain.Image
			if err := r.db.WithContext(ctx).Table(r.t.images).
				Select("img_idx, file_name, file_url").
				Where(r.t.key+" = ?", id).
				Order("img_idx ASC").
				Scan(&images).Error; err != nil {
				return nil, err
			}
			holder.SetImages(images)
		}
	}
	return &detail, nil
}

// Delete removes one row. It reports false when no live row had the id.
func (r *TableRepository[L, D]) Delete(ctx context.Context, id int64) (bool, error) {
	where := r.t.key + " = ?"
	if r.t.live != "" {
		where += " AND " + r.t.live
	}

	if r.t.remove != "" {
		res := r.db.WithContext(ctx).Exec("UPDATE "+r.t.name+" SET "+r.t.remove+" WHERE "+where, id)
		return res.RowsAffected > 0, res.Error
	}

	var found bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec("DELETE FROM "+r.t.name+" WHERE "+where, id)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		if found && r.t.images != "" {
			return tx.Exec("DELETE FROM "+r.t.images+" WHERE "+r.t.key+" = ?", id).Error
		}
		return nil
	})
	return found, err
}
