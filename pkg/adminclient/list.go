package adminclient

import (
	"context"
	"fmt"
	"net/url"
)

type paths struct {
	list   string
	detail string
	search string
	remove string
}

func boardPaths(base string) paths {
	return paths{list: base, detail: base + "/detail", search: base + "/search", remove: base + "/delete"}
}

// List calls one admin list family. L is the row type, D the detail type.
type List[L any, D any] struct {
	c     *Client
	paths paths
}

func newList[L any, D any](c *Client, p paths) *List[L, D] {
	return &List[L, D]{c: c, paths: p}
}

// Page fetches a 1-based page
func (l *List[L, D]) Page(ctx context.Context, page int) (*Page[L], error) {
	var out Page[L]
	if err := l.c.get(ctx, fmt.Sprintf("%s/%d", l.paths.list, page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search fetches a page of rows whose field contains term
func (l *List[L, D]) Search(ctx context.Context, field, term string, page int) (*Page[L], error) {
	if l.paths.search == "" {
		return nil, fmt.Errorf("adminclient: %s has no search", l.paths.list)
	}
	var out Page[L]
	path := fmt.Sprintf("%s/%s/%s/%d", l.paths.search, url.PathEscape(field), url.PathEscape(term), page)
	if err := l.c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Detail fetches one item; IsNotFound(err) for unknown ids
func (l *List[L, D]) Detail(ctx context.Context, id int64) (*D, error) {
	if l.paths.detail == "" {
		return nil, fmt.Errorf("adminclient: %s has no detail", l.paths.list)
	}
	var out D
	if err := l.c.get(ctx, fmt.Sprintf("%s/%d", l.paths.detail, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one item
func (l *List[L, D]) Delete(ctx context.Context, id int64) (Result, error) {
	var out Result
	err := l.c.mutate(ctx, fmt.Sprintf("%s/%d", l.paths.remove, id), nil, &out)
	return out, err
}

// DeleteMany removes ids in one batched request
func (l *List[L, D]) DeleteMany(ctx context.Context, ids []int64) (BulkResult, error) {
	var out BulkResult
	err := l.c.mutate(ctx, l.paths.remove, idsBody{IDs: ids}, &out)
	return out, err
}

type idsBody struct {
	IDs []int64 `json:"ids"`
}

// Comments adds the per-post comment pages to the comment list
type Comments struct {
	*List[Comment, Comment]
	c *Client
}

// ByPost fetches a page of the comments of one post
func (l *Comments) ByPost(ctx context.Context, boIdx int64, page int) (*Page[Comment], error) {
	var out Page[Comment]
	if err := l.c.get(ctx, fmt.Sprintf("/postmanage/general/comment/detail/%d/%d", boIdx, page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QnA adds the answered/unanswered views and the answer form to the inquiry list
type QnA struct {
	*List[QnAItem, QnADetail]
	c *Client
}

// Answered fetches a page of answered inquiries
func (l *QnA) Answered(ctx context.Context, page int) (*Page[QnAItem], error) {
	var out Page[QnAItem]
	if err := l.c.get(ctx, fmt.Sprintf("/memberqna/response/%d", page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pending fetches a page of inquiries still waiting for an answer
func (l *QnA) Pending(ctx context.Context, page int) (*Page[QnAItem], error) {
	var out Page[QnAItem]
	if err := l.c.get(ctx, fmt.Sprintf("/memberqna/notresponse/%d", page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Answer stores the answer of one inquiry, replacing an earlier one
func (l *QnA) Answer(ctx context.Context, id int64, subject, content string) (Result, error) {
	var out Result
	err := l.c.mutate(ctx, fmt.Sprintf("/memberqna/answer/post/%d", id), QnAAnswerRequest{RSubject: subject, RContent: content}, &out)
	return out, err
}
