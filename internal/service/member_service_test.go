package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/repository"
	"github.com/hituru/admin-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockMemberStore is a mock implementation of MemberStore
type MockMemberStore struct {
	mock.Mock
}

func (m *MockMemberStore) FindPage(ctx context.Context, page int) ([]domain.Member, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberStore) SearchPage(ctx context.Context, field, term string, page int) ([]domain.Member, int64, error) {
	args := m.Called(ctx, field, term, page)
	return args.Get(0).([]domain.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberStore) FindBannedPage(ctx context.Context, page int) ([]domain.Member, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberStore) SearchBannedPage(ctx context.Context, field, term string, page int) ([]domain.Member, int64, error) {
	args := m.Called(ctx, field, term, page)
	return args.Get(0).([]domain.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberStore) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberStore) Ban(ctx context.Context, id int64, reason, until string) (bool, error) {
	args := m.Called(ctx, id, reason, until)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberStore) Unban(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberStore) SoftDelete(ctx context.Context, id int64, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func TestBanService_Ban_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.BanRequest
		wantErr error
	}{
		{"missing reason", domain.BanRequest{StopDate: "2025-03-01"}, common.ErrBanReasonRequired},
		{"blank reason", domain.BanRequest{StopInfo: "   ", StopDate: "2025-03-01"}, common.ErrBanReasonRequired},
		{"missing date", domain.BanRequest{StopInfo: "abuse"}, common.ErrBanUntilRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockMemberStore)
			svc := NewBanService(store)

			err := svc.Ban(context.Background(), 42, &tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			store.AssertNotCalled(t, "Ban", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBanService_Ban_Success(t *testing.T) {
	store := new(MockMemberStore)
	store.On("Ban", mock.Anything, int64(42), "abuse", "2025-03-01").Return(true, nil)
	svc := NewBanService(store)

	err := svc.Ban(context.Background(), 42, &domain.BanRequest{StopInfo: " abuse ", StopDate: "2025-03-01"})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestBanService_Ban_NotFound(t *testing.T) {
	store := new(MockMemberStore)
	store.On("Ban", mock.Anything, int64(9999), "abuse", "2025-03-01").Return(false, nil)
	svc := NewBanService(store)

	err := svc.Ban(context.Background(), 9999, &domain.BanRequest{StopInfo: "abuse", StopDate: "2025-03-01"})

	assert.ErrorIs(t, err, common.ErrMemberNotFound)
}

func TestBanService_Unban_DBError(t *testing.T) {
	store := new(MockMemberStore)
	dbErr := errors.New("connection reset")
	store.On("Unban", mock.Anything, int64(1)).Return(false, dbErr)
	svc := NewBanService(store)

	err := svc.Unban(context.Background(), 1)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, common.ErrMemberNotFound)
}

func TestBanService_UnbanMany_PartialFailure(t *testing.T) {
	store := new(MockMemberStore)
	store.On("Unban", mock.Anything, int64(1)).Return(true, nil)
	store.On("Unban", mock.Anything, int64(2)).Return(false, errors.New("network error"))
	store.On("Unban", mock.Anything, int64(3)).Return(true, nil)
	svc := NewBanService(store)

	outcomes, err := svc.UnbanMany(context.Background(), []int64{1, 2, 3})

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.Equal(t, int64(2), outcomes[1].ID)
	assert.NoError(t, outcomes[2].Err)
	store.AssertNumberOfCalls(t, "Unban", 3)
}

func TestBanService_UnbanMany_Empty(t *testing.T) {
	svc := NewBanService(new(MockMemberStore))

	_, err := svc.UnbanMany(context.Background(), nil)

	assert.ErrorIs(t, err, common.ErrEmptyIDList)
}

func TestMemberService_Detail_NotFound(t *testing.T) {
	store := new(MockMemberStore)
	store.On("FindByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewMemberService(store)

	_, err := svc.Detail(context.Background(), 7)

	assert.ErrorIs(t, err, common.ErrMemberNotFound)
}

func TestMemberService_Delete_UsesClock(t *testing.T) {
	store := new(MockMemberStore)
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	store.On("SoftDelete", mock.Anything, int64(5), at).Return(false, nil)
	svc := &memberService{repo: store, now: func() time.Time { return at }}

	err := svc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, common.ErrMemberNotFound)
	store.AssertExpectations(t)
}

// The scenarios below run against the SQLite schema.

func TestBanLifecycle_EndToEnd(t *testing.T) {
	db := testutil.NewDB(t)
	for i := 1; i <= 42; i++ {
		testutil.Exec(t, db, "INSERT INTO HM_MEMBER (mem_id, regdt) VALUES (?, '2024-01-01 00:00:00')", fmt.Sprintf("user%d", i))
	}
	repo := repository.NewMemberRepository(db)
	bans := NewBanService(repo)
	ctx := context.Background()

	require.NoError(t, bans.Ban(ctx, 42, &domain.BanRequest{StopInfo: "abuse", StopDate: "2025-03-01"}))

	banned, err := bans.ListBanned(ctx, 1)
	require.NoError(t, err)
	require.Len(t, banned.Data, 1)
	assert.Equal(t, int64(42), banned.Data[0].MemIdx)
	assert.True(t, banned.Data[0].IsStopped)
	assert.Equal(t, "abuse", *banned.Data[0].StopInfo)
	assert.Equal(t, "2025-03-01", *banned.Data[0].StopDate)

	err = bans.Ban(ctx, 9999, &domain.BanRequest{StopInfo: "abuse", StopDate: "2025-03-01"})
	assert.ErrorIs(t, err, common.ErrMemberNotFound)

	var stopped int64
	require.NoError(t, db.Table("HM_MEMBER").Where("isstop = 'Y'").Count(&stopped).Error)
	assert.Equal(t, int64(1), stopped)
}

func TestBanLifecycle_RoundTripClearsEverything(t *testing.T) {
	db := testutil.NewDB(t)
	id := testutil.InsertMember(t, db, "alice", "앨리스", "2024-01-01 00:00:00")
	repo := repository.NewMemberRepository(db)
	bans := NewBanService(repo)
	members := NewMemberService(repo)
	ctx := context.Background()

	require.NoError(t, bans.Ban(ctx, id, &domain.BanRequest{StopInfo: "spam", StopDate: "2025-01-01"}))
	require.NoError(t, bans.Unban(ctx, id))

	d, err := members.Detail(ctx, id)
	require.NoError(t, err)
	assert.False(t, d.IsStopped)
	assert.Nil(t, d.StopInfo)
	assert.Nil(t, d.StopDate)

	m, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, m.StopReason)
	assert.Nil(t, m.StopUntil)
}

func TestBanLifecycle_BothOrNeither(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewMemberRepository(db)
	bans := NewBanService(repo)
	ctx := context.Background()
	ids := []int64{
		testutil.InsertMember(t, db, "a", "a", "2024-01-01 00:00:00"),
		testutil.InsertMember(t, db, "b", "b", "2024-01-01 00:00:00"),
		testutil.InsertMember(t, db, "c", "c", "2024-01-01 00:00:00"),
	}

	_ = bans.Ban(ctx, ids[0], &domain.BanRequest{StopInfo: "spam", StopDate: "2025-01-01"})
	_ = bans.Ban(ctx, ids[1], &domain.BanRequest{StopInfo: "", StopDate: "2025-01-01"})
	_ = bans.Ban(ctx, ids[2], &domain.BanRequest{StopInfo: "spam"})
	_ = bans.Unban(ctx, ids[0])
	_ = bans.Ban(ctx, ids[0], &domain.BanRequest{StopInfo: "again", StopDate: "2025-02-01"})

	for _, id := range ids {
		m, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		if m.IsBanned() {
			assert.NotNil(t, m.StopReason, "member %d", id)
			assert.NotNil(t, m.StopUntil, "member %d", id)
		} else {
			assert.Nil(t, m.StopReason, "member %d", id)
			assert.Nil(t, m.StopUntil, "member %d", id)
		}
	}
}
