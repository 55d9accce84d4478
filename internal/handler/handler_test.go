package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/repository"
	"github.com/hituru/admin-backend/internal/service"
	"github.com/hituru/admin-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)

	members := repository.NewMemberRepository(db)
	memberHandler := NewMemberHandler(service.NewMemberService(members))
	banHandler := NewBanHandler(service.NewBanService(members))
	posts := NewListHandler[domain.GeneralPost, domain.GeneralPostDetail](
		service.NewListService[domain.GeneralPost, domain.GeneralPostDetail](repository.NewGeneralPostRepository(db), common.ErrPostNotFound),
		PostMessages)
	qna := NewQnAHandler(service.NewQnAService(repository.NewQnARepository(db)))

	r := gin.New()
	r.GET("/members/:page", memberHandler.List)
	r.GET("/members/detail/:id", memberHandler.Detail)
	r.POST("/users/delete", memberHandler.BulkDelete)
	r.POST("/users/ban/:memId", banHandler.Ban)
	r.POST("/users/unban/:memId", banHandler.Unban)
	r.POST("/users/unban", banHandler.BulkUnban)
	r.GET("/users/banned", banHandler.ListBanned)
	r.GET("/users/banned/search/:field/:term/:page", banHandler.SearchBanned)
	r.GET("/postmanage/general/:page", posts.List)
	r.GET("/postmanage/general/detail/:id", posts.Detail)
	r.POST("/postmanage/general/delete/:id", posts.Delete)
	r.GET("/memberqna/detail/:id", qna.Detail)
	r.GET("/memberqna/response/:page", qna.Answered)
	r.GET("/memberqna/notresponse/:page", qna.Pending)
	r.POST("/memberqna/answer/post/:id", qna.Answer)
	return r, db
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) common.Result {
	t.Helper()
	var res common.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestBanHandler_BanThenListBanned(t *testing.T) {
	r, db := setupRouter(t)
	id := testutil.InsertMember(t, db, "alice", "앨리스", "2024-01-01 00:00:00")

	w := doJSON(r, http.MethodPost, "/users/ban/1", domain.BanRequest{StopInfo: "abuse", StopDate: "2025-03-01"})

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeResult(t, w)
	assert.True(t, res.OK)
	assert.Equal(t, "OK", res.Code)
	assert.Equal(t, "회원이 성공적으로 정지되었습니다.", res.Message)

	w = doJSON(r, http.MethodGet, "/users/banned", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list common.ListResponse[domain.MemberListItem]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, id, list.Data[0].MemIdx)
	assert.Equal(t, "abuse", *list.Data[0].StopInfo)
	assert.Equal(t, "2025-03-01", *list.Data[0].StopDate)
	assert.Equal(t, 1, list.Pagination.CurrentPage)
}

func TestBanHandler_UnknownMember(t *testing.T) {
	r, db := setupRouter(t)
	testutil.InsertMember(t, db, "alice", "앨리스", "2024-01-01 00:00:00")

	w := doJSON(r, http.MethodPost, "/users/ban/9999", domain.BanRequest{StopInfo: "abuse", StopDate: "2025-03-01"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	res := decodeResult(t, w)
	assert.False(t, res.OK)
	assert.Equal(t, "NOT_FOUND", res.Code)
	assert.Equal(t, "사용자를 찾을 수 없습니다.", res.Message)

	w = doJSON(r, http.MethodPost, "/users/unban/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBanHandler_Validation(t *testing.T) {
	r, db := setupRouter(t)
	testutil.InsertMember(t, db, "alice", "앨리스", "2024-01-01 00:00:00")

	tests := []struct {
		name string
		path string
		body interface{}
		msg  string
	}{
		{"missing reason", "/users/ban/1", gin.H{"stopdt": "2025-03-01"}, "정지 사유를 입력해주세요."},
		{"missing date", "/users/ban/1", gin.H{"stop_info": "abuse"}, "정지 기간을 입력해주세요."},
		{"bad id", "/users/ban/abc", gin.H{"stop_info": "abuse", "stopdt": "2025-03-01"}, msgInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			res := decodeResult(t, w)
			assert.False(t, res.OK)
			assert.Equal(t, "BAD_REQUEST", res.Code)
			assert.Equal(t, tt.msg, res.Message)
		})
	}
}

func TestBanHandler_BulkUnbanPartial(t *testing.T) {
	r, db := setupRouter(t)
	a := testutil.InsertMember(t, db, "a", "a", "2024-01-01 00:00:00")
	b := testutil.InsertMember(t, db, "b", "b", "2024-01-01 00:00:00")
	doJSON(r, http.MethodPost, "/users/ban/1", domain.BanRequest{StopInfo: "x", StopDate: "2025-03-01"})
	doJSON(r, http.MethodPost, "/users/ban/2", domain.BanRequest{StopInfo: "y", StopDate: "2025-03-01"})

	w := doJSON(r, http.MethodPost, "/users/unban", domain.BulkIDsRequest{IDs: []int64{a, 404, b}})

	assert.Equal(t, http.StatusOK, w.Code)
	var res common.BulkResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.OK)
	assert.Equal(t, "PARTIAL_FAILURE", res.Code)
	require.Len(t, res.Results, 3)
	assert.True(t, res.Results[0].OK)
	assert.False(t, res.Results[1].OK)
	assert.Equal(t, "NOT_FOUND", res.Results[1].Code)
	assert.True(t, res.Results[2].OK)

	var stopped int64
	require.NoError(t, db.Table("HM_MEMBER").Where("isstop = 'Y'").Count(&stopped).Error)
	assert.Zero(t, stopped)
}

func TestBanHandler_BulkEmpty(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/users/unban", gin.H{"ids": []int64{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgEmptyIDs, decodeResult(t, w).Message)
}

func TestBanHandler_SearchInvalidField(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/users/banned/search/email/foo/1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidSearch)
}

func TestMemberHandler_ListAndDetail(t *testing.T) {
	r, db := setupRouter(t)
	for _, id := range []string{"a", "b", "c"} {
		testutil.InsertMember(t, db, id, id, "2024-01-01 00:00:00")
	}

	w := doJSON(r, http.MethodGet, "/members/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list common.ListResponse[domain.MemberListItem]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 3)
	assert.Equal(t, "c", list.Data[0].MemID)
	assert.Nil(t, list.Pagination.NextPage)

	w = doJSON(r, http.MethodGet, "/members/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/members/detail/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mem_id":"b"`)

	w = doJSON(r, http.MethodGet, "/members/detail/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"사용자를 찾을 수 없습니다."}}`, w.Body.String())
}

func TestMemberHandler_BulkDelete(t *testing.T) {
	r, db := setupRouter(t)
	a := testutil.InsertMember(t, db, "a", "a", "2024-01-01 00:00:00")
	b := testutil.InsertMember(t, db, "b", "b", "2024-01-01 00:00:00")

	w := doJSON(r, http.MethodPost, "/users/delete", domain.BulkIDsRequest{IDs: []int64{a, b}})

	assert.Equal(t, http.StatusOK, w.Code)
	var res common.BulkResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.OK)
	assert.Equal(t, "선택한 회원이 삭제되었습니다.", res.Message)

	w = doJSON(r, http.MethodGet, "/members/1", nil)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestMemberHandler_HugePageIsEmpty(t *testing.T) {
	r, db := setupRouter(t)
	testutil.InsertMember(t, db, "alice", "앨리스", "2024-01-01 00:00:00")

	for _, page := range []string{"2", "922337203685477581", "922337203685477582", "9223372036854775807"} {
		w := doJSON(r, http.MethodGet, "/members/"+page, nil)
		require.Equal(t, http.StatusOK, w.Code, page)

		var body common.ListResponse[domain.MemberListItem]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.Data, page)
		assert.Nil(t, body.Pagination.NextPage, page)
	}
}

func TestListHandler_PostLifecycle(t *testing.T) {
	r, db := setupRouter(t)
	mem := testutil.InsertMember(t, db, "writer", "글쓴이", "2024-01-01 00:00:00")
	testutil.Exec(t, db, "INSERT INTO HM_BOARD (mem_idx, subject, regdt) VALUES (?, '첫 글', '2025-01-01 00:00:00')", mem)

	w := doJSON(r, http.MethodGet, "/postmanage/general/detail/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"images":[]`)

	w = doJSON(r, http.MethodPost, "/postmanage/general/delete/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResult(t, w).OK)

	w = doJSON(r, http.MethodPost, "/postmanage/general/delete/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "게시글을 찾을 수 없습니다.", decodeResult(t, w).Message)

	w = doJSON(r, http.MethodGet, "/postmanage/general/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nextPage":null`)
}

func TestMemberHandler_BulkDeleteTooManyIDs(t *testing.T) {
	r, _ := setupRouter(t)
	ids := make([]int64, domain.MaxBulkIDs+1)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	w := doJSON(r, http.MethodPost, "/users/delete", domain.BulkIDsRequest{IDs: ids})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeResult(t, w).OK)
}

func TestQnAHandler_AnswerMovesToAnswered(t *testing.T) {
	r, db := setupRouter(t)
	mem := testutil.InsertMember(t, db, "asker", "질문자", "2024-01-01 00:00:00")
	testutil.Exec(t, db, "INSERT INTO HM_MEMBER_QNA (mem_idx, subject, content, regdt) VALUES (?, '배송 문의', '언제 오나요', '2025-01-01 00:00:00')", mem)

	w := doJSON(r, http.MethodGet, "/memberqna/notresponse/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list common.ListResponse[domain.QnA]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)

	w = doJSON(r, http.MethodPost, "/memberqna/answer/post/1", domain.QnAAnswerRequest{RSubject: "배송 안내", RContent: "내일 도착합니다"})
	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeResult(t, w)
	assert.True(t, res.OK)
	assert.Equal(t, "문의 답변이 성공적으로 등록되었습니다.", res.Message)

	w = doJSON(r, http.MethodGet, "/memberqna/response/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Y", list.Data[0].IsResponse)

	w = doJSON(r, http.MethodGet, "/memberqna/detail/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail domain.QnADetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "내일 도착합니다", detail.RContent)
	assert.NotNil(t, detail.Images)
}

func TestQnAHandler_AnswerErrors(t *testing.T) {
	r, db := setupRouter(t)
	mem := testutil.InsertMember(t, db, "asker", "질문자", "2024-01-01 00:00:00")
	testutil.Exec(t, db, "INSERT INTO HM_MEMBER_QNA (mem_idx, subject, regdt) VALUES (?, '문의', '2025-01-01 00:00:00')", mem)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
		msg    string
	}{
		{"blank content", "/memberqna/answer/post/1", gin.H{"rsubject": "제목", "rcontent": " "}, http.StatusBadRequest, "답변 제목과 내용을 모두 입력해주세요."},
		{"unknown inquiry", "/memberqna/answer/post/77", gin.H{"rsubject": "제목", "rcontent": "내용"}, http.StatusNotFound, "문의를 찾을 수 없습니다."},
		{"bad id", "/memberqna/answer/post/x", gin.H{"rsubject": "제목", "rcontent": "내용"}, http.StatusBadRequest, msgInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			res := decodeResult(t, w)
			assert.False(t, res.OK)
			assert.Equal(t, tt.msg, res.Message)
		})
	}

	w := doJSON(r, http.MethodGet, "/memberqna/notresponse/1", nil)
	assert.Contains(t, w.Body.String(), `"isresponse":"N"`)
}

// failingAnalysis fails every call
type failingAnalysis struct{ service.AnalysisService }

func (failingAnalysis) GenderAgeStats(context.Context) ([]domain.GenderAgeStat, error) {
	return nil, errors.New("db down")
}

func (failingAnalysis) Visitors(context.Context, string) ([]domain.PeriodCount, error) {
	return nil, common.ErrInvalidPeriod
}

func (failingAnalysis) Registrations(context.Context, string) ([]domain.PeriodCount, error) {
	return []domain.PeriodCount{{Label: "2025-01-01", Count: 4}}, nil
}

func TestAnalysisHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAnalysisHandler(failingAnalysis{})
	r := gin.New()
	r.GET("/analysis/gender-age-stats", h.GenderAgeStats)
	r.GET("/analysis/visitors/:period", h.Visitors)
	r.GET("/analysis/registrations/:period", h.Registrations)

	w := doJSON(r, http.MethodGet, "/analysis/gender-age-stats", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")

	w = doJSON(r, http.MethodGet, "/analysis/visitors/year", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/analysis/registrations/date", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[{"2025-01-01":4}]}`, w.Body.String())
}
