package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/service"
	"github.com/hituru/admin-backend/pkg/ginutil"
)

var (
	// PostMessages are the messages of the general and notice boards
	PostMessages = ListMessages{
		ListFailed:   "게시글 목록 조회 실패",
		DetailFailed: "게시글 조회 실패",
		NotFound:     "게시글을 찾을 수 없습니다.",
		Deleted:      "게시글이 삭제되었습니다.",
		DeleteFailed: "게시글 삭제 중 오류가 발생했습니다.",
		BulkDeleted:  "선택한 게시글이 삭제되었습니다.",
		BulkPartial:  "일부 게시글 삭제에 실패했습니다.",
	}

	// FraudMessages are the messages of the fraud board
	FraudMessages = ListMessages{
		ListFailed:   "사기 신고 목록 조회 실패",
		DetailFailed: "사기 신고 조회 실패",
		NotFound:     "사기 신고 글을 찾을 수 없습니다.",
		Deleted:      "사기 신고 글이 삭제되었습니다.",
		DeleteFailed: "사기 신고 글 삭제 중 오류가 발생했습니다.",
		BulkDeleted:  "선택한 사기 신고 글이 삭제되었습니다.",
		BulkPartial:  "일부 사기 신고 글 삭제에 실패했습니다.",
	}

	// LimitedSaleMessages are the messages of the limited-sale listings
	LimitedSaleMessages = ListMessages{
		ListFailed:   "한정판 거래 목록 조회 실패",
		DetailFailed: "한정판 거래 조회 실패",
		NotFound:     "상품을 찾을 수 없습니다.",
		Deleted:      "상품이 삭제되었습니다.",
		DeleteFailed: "상품 삭제 중 오류가 발생했습니다.",
		BulkDeleted:  "선택한 상품이 삭제되었습니다.",
		BulkPartial:  "일부 상품 삭제에 실패했습니다.",
	}

	// CommentMessages are the messages of the comment list
	CommentMessages = ListMessages{
		ListFailed:   "댓글 목록 조회 실패",
		DetailFailed: "댓글 조회 실패",
		NotFound:     "댓글을 찾을 수 없습니다.",
		Deleted:      "댓글이 삭제되었습니다.",
		DeleteFailed: "댓글 삭제 중 오류가 발생했습니다.",
		BulkDeleted:  "선택한 댓글이 삭제되었습니다.",
		BulkPartial:  "일부 댓글 삭제에 실패했습니다.",
	}

	// ReportMessages are the messages of the report lists
	ReportMessages = ListMessages{
		ListFailed:   "신고 목록 조회 실패",
		DetailFailed: "신고 조회 실패",
		NotFound:     "신고 내역을 찾을 수 없습니다.",
		Deleted:      "신고 내역이 삭제되었습니다.",
		DeleteFailed: "신고 내역 삭제 중 오류가 발생했습니다.",
		BulkDeleted:  "선택한 신고 내역이 삭제되었습니다.",
		BulkPartial:  "일부 신고 내역 삭제에 실패했습니다.",
	}
)

// CommentHandler serves the comment list and the per-post comment pages
type CommentHandler struct {
	*ListHandler[domain.Comment, domain.Comment]
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{
		ListHandler: NewListHandler[domain.Comment, domain.Comment](svc, CommentMessages),
		service:     svc,
	}
}

// ListByPost godoc
// @Summary      게시글별 댓글 목록
// @Description  한 게시글에 달린 댓글을 조회합니다
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        boIdx  path  int  true  "게시글 ID (bo_idx)"
// @Param        page  path  int  true  "페이지 번호 (1부터)"
// @Success      200  {object}  common.ListResponse[domain.Comment]
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /postmanage/general/comment/detail/{boIdx}/{page} [get]
func (h *CommentHandler) ListByPost(c *gin.Context) {
	boIdx, err := ginutil.ParamInt64(c, "boIdx")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.ListByPost(c.Request.Context(), boIdx, page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, CommentMessages.ListFailed, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
