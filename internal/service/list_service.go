package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/repository"
	"gorm.io/gorm"
)

// ListService serves one admin list: paging, search, detail and delete
type ListService[L any, D any] interface {
	List(ctx context.Context, page int) (*common.ListResponse[L], error)
	Search(ctx context.Context, field, term string, page int) (*common.ListResponse[L], error)
	Detail(ctx context.Context, id int64) (*D, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) ([]Outcome, error)
}

type listService[L any, D any] struct {
	repo     repository.ListRepository[L, D]
	notFound error
}

// NewListService creates a ListService. notFound is returned for unknown ids.
func NewListService[L any, D any](repo repository.ListRepository[L, D], notFound error) ListService[L, D] {
	return &listService[L, D]{repo: repo, notFound: notFound}
}

// List returns one page of rows
func (s *listService[L, D]) List(ctx context.Context, page int) (*common.ListResponse[L], error) {
	rows, total, err := s.repo.FindPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return common.NewListResponse(rows, page, total), nil
}

// Search returns one page of rows whose field contains term
func (s *listService[L, D]) Search(ctx context.Context, field, term string, page int) (*common.ListResponse[L], error) {
	rows, total, err := s.repo.SearchPage(ctx, field, term, page)
	if err != nil {
		return nil, err
	}
	return common.NewListResponse(rows, page, total), nil
}

// Detail returns one item
func (s *listService[L, D]) Detail(ctx context.Context, id int64) (*D, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes one item
func (s *listService[L, D]) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %d: %w", id, err)
	}
	if !found {
		return s.notFound
	}
	return nil
}

// DeleteMany deletes every id independently
func (s *listService[L, D]) DeleteMany(ctx context.Context, ids []int64) ([]Outcome, error) {
	if len(ids) == 0 {
		return nil, common.ErrEmptyIDList
	}
	return runEach(ctx, ids, s.Delete), nil
}
