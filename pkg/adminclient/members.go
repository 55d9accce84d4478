package adminclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hituru/admin-backend/internal/domain"
)

// Members calls member listing and the ban lifecycle
type Members struct {
	*List[MemberListItem, MemberDetail]
	c *Client
}

// Ban suspends a member until the given date (YYYY-MM-DD)
func (m *Members) Ban(ctx context.Context, memIdx int64, reason, until string) (Result, error) {
	var out Result
	err := m.c.mutate(ctx, fmt.Sprintf("/users/ban/%d", memIdx),
		domain.BanRequest{StopInfo: reason, StopDate: until}, &out)
	return out, err
}

// Unban lifts a suspension
func (m *Members) Unban(ctx context.Context, memIdx int64) (Result, error) {
	var out Result
	err := m.c.mutate(ctx, fmt.Sprintf("/users/unban/%d", memIdx), nil, &out)
	return out, err
}

// UnbanMany lifts the suspension of every id in one batched request
func (m *Members) UnbanMany(ctx context.Context, ids []int64) (BulkResult, error) {
	var out BulkResult
	err := m.c.mutate(ctx, "/users/unban", idsBody{IDs: ids}, &out)
	return out, err
}

// Banned fetches a page of suspended members
func (m *Members) Banned(ctx context.Context, page int) (*Page[MemberListItem], error) {
	var out Page[MemberListItem]
	if err := m.c.get(ctx, fmt.Sprintf("/users/banned/%d", page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchBanned searches suspended members by id or nick
func (m *Members) SearchBanned(ctx context.Context, field, term string, page int) (*Page[MemberListItem], error) {
	var out Page[MemberListItem]
	path := fmt.Sprintf("/users/banned/search/%s/%s/%d", url.PathEscape(field), url.PathEscape(term), page)
	if err := m.c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
