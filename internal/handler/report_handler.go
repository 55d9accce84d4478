package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/service"
)

const msgReportCountFailed = "신고 집계 조회 실패"

// ReportCountHandler serves the per-target report aggregates
type ReportCountHandler struct {
	service service.ReportService
}

// NewReportCountHandler creates a new ReportCountHandler
func NewReportCountHandler(svc service.ReportService) *ReportCountHandler {
	return &ReportCountHandler{service: svc}
}

// BoardCounts godoc
// @Summary      게시글별 신고 집계
// @Description  신고된 게시글별 신고 수와 최근 신고 내용을 조회합니다
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []domain.BoardReportCount
// @Failure      500  {object}  common.ErrorInfo
// @Router       /reports/boardcount [get]
func (h *ReportCountHandler) BoardCounts(c *gin.Context) {
	rows, err := h.service.BoardCounts(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgReportCountFailed, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// MemberCounts godoc
// @Summary      상품별 회원 신고 집계
// @Description  신고된 상품별 신고 수와 최근 신고 내용을 조회합니다
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []domain.MemberReportCount
// @Failure      500  {object}  common.ErrorInfo
// @Router       /reports/membercount [get]
func (h *ReportCountHandler) MemberCounts(c *gin.Context) {
	rows, err := h.service.MemberCounts(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgReportCountFailed, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
