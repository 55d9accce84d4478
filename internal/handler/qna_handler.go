package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/service"
	"github.com/hituru/admin-backend/pkg/ginutil"
)

// QnAMessages are the messages of the member inquiry queue
var QnAMessages = ListMessages{
	ListFailed:   "QNA 목록을 가져오는 중 오류가 발생했습니다.",
	DetailFailed: "QNA 상세 정보를 가져오는 중 오류가 발생했습니다.",
	NotFound:     "문의를 찾을 수 없습니다.",
	Deleted:      "문의가 삭제되었습니다.",
	DeleteFailed: "문의 삭제 중 오류가 발생했습니다.",
	BulkDeleted:  "선택한 문의가 삭제되었습니다.",
	BulkPartial:  "일부 문의 삭제에 실패했습니다.",
}

const (
	msgQnAAnswered       = "문의 답변이 성공적으로 등록되었습니다."
	msgQnAAnswerFailed   = "답변 등록 작업 중 오류가 발생했습니다."
	msgQnAAnswerRequired = "답변 제목과 내용을 모두 입력해주세요."
	msgQnAAnsweredFailed = "답변된 QNA 리스트를 가져오는 중 오류가 발생했습니다."
	msgQnAPendingFailed  = "미답변 QNA 리스트를 가져오는 중 오류가 발생했습니다."
)

// QnAHandler serves the inquiry queue, its answered/unanswered views and the answer form
type QnAHandler struct {
	*ListHandler[domain.QnA, domain.QnADetail]
	service service.QnAService
}

// NewQnAHandler creates a new QnAHandler
func NewQnAHandler(svc service.QnAService) *QnAHandler {
	return &QnAHandler{
		ListHandler: NewListHandler[domain.QnA, domain.QnADetail](svc, QnAMessages),
		service:     svc,
	}
}

// Answered godoc
// @Summary      답변 완료 문의 목록
// @Description  관리자가 답변한 회원 문의를 최신순으로 조회합니다
// @Tags         memberqna
// @Produce      json
// @Security     BearerAuth
// @Param        page  path      int  true  "페이지 번호 (1부터)"
// @Success      200   {object}  common.ListResponse[domain.QnA]
// @Failure      400   {object}  common.ErrorInfo
// @Failure      500   {object}  common.ErrorInfo
// @Router       /memberqna/response/{page} [get]
func (h *QnAHandler) Answered(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.Answered(c.Request.Context(), page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgQnAAnsweredFailed, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Pending godoc
// @Summary      미답변 문의 목록
// @Description  아직 답변하지 않은 회원 문의를 최신순으로 조회합니다
// @Tags         memberqna
// @Produce      json
// @Security     BearerAuth
// @Param        page  path      int  true  "페이지 번호 (1부터)"
// @Success      200   {object}  common.ListResponse[domain.QnA]
// @Failure      400   {object}  common.ErrorInfo
// @Failure      500   {object}  common.ErrorInfo
// @Router       /memberqna/notresponse/{page} [get]
func (h *QnAHandler) Pending(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.Pending(c.Request.Context(), page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgQnAPendingFailed, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Answer godoc
// @Summary      문의 답변 등록
// @Description  답변 제목과 내용을 저장하고 문의를 답변 완료로 표시합니다. 기존 답변은 덮어씁니다.
// @Tags         memberqna
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                      true  "문의 ID (meq_idx)"
// @Param        request  body      domain.QnAAnswerRequest  true  "답변 제목과 내용"
// @Success      200      {object}  common.Result
// @Failure      400      {object}  common.Result
// @Failure      404      {object}  common.Result
// @Failure      500      {object}  common.Result
// @Router       /memberqna/answer/post/{id} [post]
func (h *QnAHandler) Answer(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	var req domain.QnAAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	if err := h.service.Answer(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, common.ErrQnAAnswerRequired):
			common.ResultErrorResponse(c, http.StatusBadRequest, msgQnAAnswerRequired, err)
		case errors.Is(err, common.ErrQnANotFound):
			common.ResultErrorResponse(c, http.StatusNotFound, QnAMessages.NotFound, err)
		default:
			common.ResultErrorResponse(c, http.StatusInternalServerError, msgQnAAnswerFailed, err)
		}
		return
	}
	common.ResultResponse(c, http.StatusOK, msgQnAAnswered)
}
