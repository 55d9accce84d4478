package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/service"
	"github.com/hituru/admin-backend/pkg/ginutil"
)

// ListMessages are the client messages of one admin list
type ListMessages struct {
	ListFailed   string
	DetailFailed string
	NotFound     string
	Deleted      string
	DeleteFailed string
	BulkDeleted  string
	BulkPartial  string
}

// ListHandler serves the uniform list/search/detail/delete routes of one entity
type ListHandler[L any, D any] struct {
	service service.ListService[L, D]
	msg     ListMessages
}

// NewListHandler creates a new ListHandler
func NewListHandler[L any, D any](svc service.ListService[L, D], msg ListMessages) *ListHandler[L, D] {
	return &ListHandler[L, D]{service: svc, msg: msg}
}

// List godoc
// @Summary      게시판 목록
// @Description  게시판의 한 페이지를 최신순으로 조회합니다
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        page  path  int  true  "페이지 번호 (1부터)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /postmanage/general/{page} [get]
// @Router       /postmanage/notice/{page} [get]
// @Router       /postmanage/fraud/{page} [get]
// @Router       /limitedsales/list/{page} [get]
// @Router       /reports/board/{page} [get]
// @Router       /reports/member/{page} [get]
// @Router       /memberqna/{page} [get]
func (h *ListHandler[L, D]) List(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, h.msg.ListFailed, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Search godoc
// @Summary      게시판 검색
// @Description  게시판별 허용 필드로 부분 일치 검색합니다. 허용되지 않은 필드는 400 입니다.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        field  path  string  true  "검색 필드"
// @Param        term  path  string  true  "검색어 (부분 일치)"
// @Param        page  path  int  true  "페이지 번호 (1부터)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /postmanage/general/search/{field}/{term}/{page} [get]
// @Router       /postmanage/notice/search/{field}/{term}/{page} [get]
// @Router       /postmanage/fraud/search/{field}/{term}/{page} [get]
// @Router       /postmanage/general/comment/search/{field}/{term}/{page} [get]
// @Router       /limitedsales/search/{field}/{term}/{page} [get]
// @Router       /reports/board/search/{field}/{term}/{page} [get]
// @Router       /reports/member/search/{field}/{term}/{page} [get]
// @Router       /memberqna/search/{field}/{term}/{page} [get]
func (h *ListHandler[L, D]) Search(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.Search(c.Request.Context(), c.Param("field"), c.Param("term"), page)
	if err != nil {
		status := statusOf(err)
		common.ErrorResponse(c, status, validationMessage(err, h.msg.ListFailed), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Detail godoc
// @Summary      게시판 상세
// @Description  항목 상세와 첨부 이미지를 조회합니다
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.ErrorInfo
// @Failure      404  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /postmanage/general/detail/{id} [get]
// @Router       /postmanage/notice/detail/{id} [get]
// @Router       /postmanage/fraud/detail/{id} [get]
// @Router       /limitedsales/detail/{id} [get]
// @Router       /reports/board/detail/{id} [get]
// @Router       /reports/member/detail/{id} [get]
// @Router       /memberqna/detail/{id} [get]
func (h *ListHandler[L, D]) Detail(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	item, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		status := statusOf(err)
		msg := h.msg.DetailFailed
		if status == http.StatusNotFound {
			msg = h.msg.NotFound
		}
		common.ErrorResponse(c, status, msg, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary      게시판 항목 삭제
// @Description  항목 하나를 삭제합니다
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  common.Result
// @Failure      400  {object}  common.Result
// @Failure      404  {object}  common.Result
// @Failure      500  {object}  common.Result
// @Router       /postmanage/general/delete/{id} [post]
// @Router       /postmanage/notice/delete/{id} [post]
// @Router       /postmanage/fraud/delete/{id} [post]
// @Router       /postmanage/general/comment/delete/{id} [post]
// @Router       /limitedsales/delete/{id} [post]
// @Router       /reports/board/delete/{id} [post]
// @Router       /reports/member/delete/{id} [post]
// @Router       /memberqna/delete/{id} [post]
func (h *ListHandler[L, D]) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status := statusOf(err)
		msg := h.msg.DeleteFailed
		if status == http.StatusNotFound {
			msg = h.msg.NotFound
		}
		common.ResultErrorResponse(c, status, msg, err)
		return
	}
	common.ResultResponse(c, http.StatusOK, h.msg.Deleted)
}

// BulkDelete godoc
// @Summary      게시판 항목 일괄 삭제
// @Description  여러 항목을 각각 삭제하고 항목별 결과를 반환합니다
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.BulkIDsRequest  true  "대상 ID 목록 (최대 500개)"
// @Success      200  {object}  common.BulkResult
// @Failure      400  {object}  common.Result
// @Failure      500  {object}  common.Result
// @Router       /postmanage/general/delete [post]
// @Router       /postmanage/notice/delete [post]
// @Router       /postmanage/fraud/delete [post]
// @Router       /postmanage/general/comment/delete [post]
// @Router       /limitedsales/delete [post]
// @Router       /reports/board/delete [post]
// @Router       /reports/member/delete [post]
// @Router       /memberqna/delete [post]
func (h *ListHandler[L, D]) BulkDelete(c *gin.Context) {
	var req domain.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	outcomes, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		common.ResultErrorResponse(c, statusOf(err), validationMessage(err, h.msg.DeleteFailed), err)
		return
	}
	common.BulkResponse(c, itemResults(outcomes, h.msg.Deleted, h.msg.NotFound, h.msg.DeleteFailed),
		h.msg.BulkDeleted, h.msg.BulkPartial)
}
