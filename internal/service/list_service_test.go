package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/repository"
	"github.com/hituru/admin-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNoticeService(t *testing.T, n int) (ListService[domain.Notice, domain.NoticeDetail], *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	mem := testutil.InsertMember(t, db, "admin", "운영자", "2024-01-01 00:00:00")
	for i := 1; i <= n; i++ {
		testutil.Exec(t, db, "INSERT INTO HM_NOTICE (mem_idx, subject, content, regdt) VALUES (?, ?, '본문', '2025-01-01 00:00:00')",
			mem, fmt.Sprintf("공지 %d", i))
	}
	return NewListService[domain.Notice, domain.NoticeDetail](repository.NewNoticeRepository(db), common.ErrPostNotFound), db
}

func TestListService_PaginationProperty(t *testing.T) {
	for _, n := range []int{0, 1, 10, 11, 25} {
		t.Run(fmt.Sprintf("rows=%d", n), func(t *testing.T) {
			svc, _ := newNoticeService(t, n)
			ctx := context.Background()
			wantPages := (n + common.PageSize - 1) / common.PageSize

			first, err := svc.List(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, wantPages, first.Pagination.TotalPages)
			assert.Nil(t, first.Pagination.PreviousPage)

			if wantPages > 0 {
				last, err := svc.List(ctx, wantPages)
				require.NoError(t, err)
				wantRows := n % common.PageSize
				if wantRows == 0 {
					wantRows = common.PageSize
				}
				assert.Len(t, last.Data, wantRows)
				assert.Nil(t, last.Pagination.NextPage)
			}

			beyond, err := svc.List(ctx, wantPages+1)
			require.NoError(t, err)
			assert.Empty(t, beyond.Data)
			assert.NotNil(t, beyond.Data)
			assert.Nil(t, beyond.Pagination.NextPage)
		})
	}
}

func TestListService_DetailAndDelete(t *testing.T) {
	svc, _ := newNoticeService(t, 2)
	ctx := context.Background()

	d, err := svc.Detail(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "공지 2", d.Subject)
	assert.NotNil(t, d.Images)

	require.NoError(t, svc.Delete(ctx, 2))

	_, err = svc.Detail(ctx, 2)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 2), common.ErrPostNotFound)
}

func TestListService_DeleteManyPartial(t *testing.T) {
	svc, _ := newNoticeService(t, 3)

	outcomes, err := svc.DeleteMany(context.Background(), []int64{1, 99, 3})

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.True(t, errors.Is(outcomes[1].Err, common.ErrPostNotFound))
	assert.NoError(t, outcomes[2].Err)

	page, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(2), page.Data[0].BoIdx)
}

func TestListService_SearchInvalidField(t *testing.T) {
	svc, _ := newNoticeService(t, 1)

	_, err := svc.Search(context.Background(), "password", "x", 1)

	assert.ErrorIs(t, err, common.ErrInvalidSearchType)
}

func TestCommentService_ListByPost(t *testing.T) {
	db := testutil.NewDB(t)
	mem := testutil.InsertMember(t, db, "writer", "글쓴이", "2024-01-01 00:00:00")
	for i := 0; i < 12; i++ {
		testutil.Exec(t, db, "INSERT INTO HM_BOARD_COMMENT (bo_idx, mem_idx, content, regdt) VALUES (5, ?, '댓글', '2025-01-01 00:00:00')", mem)
	}
	testutil.Exec(t, db, "INSERT INTO HM_BOARD_COMMENT (bo_idx, mem_idx, content, regdt) VALUES (6, ?, '다른 글', '2025-01-01 00:00:00')", mem)
	svc := NewCommentService(repository.NewCommentRepository(db))

	page, err := svc.ListByPost(context.Background(), 5, 2)

	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	for _, c := range page.Data {
		assert.Equal(t, int64(5), c.BoIdx)
	}
}
