package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/service"
)

const msgAnalysisFailed = "통계 조회 중 오류가 발생했습니다."

// AnalysisHandler serves the dashboard metrics
type AnalysisHandler struct {
	service service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(svc service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: svc}
}

type seriesFunc func(ctx context.Context, period string) ([]domain.PeriodCount, error)

func (h *AnalysisHandler) series(fn seriesFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fn(c.Request.Context(), c.Param("period"))
		if err != nil {
			status := statusOf(err)
			common.ErrorResponse(c, status, validationMessage(err, msgAnalysisFailed), err)
			return
		}
		if data == nil {
			data = []domain.PeriodCount{}
		}
		c.JSON(http.StatusOK, domain.PeriodSeries{Data: data})
	}
}

// TotalMembers godoc
// @Summary      누적 회원 추이
// @Description  기간 단위(day, week, month, year)별 누적 회원 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        period  path  string  true  "day | week | month | year"
// @Success      200  {object}  []domain.PeriodCount
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/total-members/{period} [get]
func (h *AnalysisHandler) TotalMembers(c *gin.Context) { h.series(h.service.TotalMembers)(c) }

// Visitors godoc
// @Summary      방문자 추이
// @Description  기간 단위별 방문자 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        period  path  string  true  "day | week | month | year"
// @Success      200  {object}  []domain.PeriodCount
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/visitors/{period} [get]
func (h *AnalysisHandler) Visitors(c *gin.Context) { h.series(h.service.Visitors)(c) }

// Registrations godoc
// @Summary      가입자 추이
// @Description  기간 단위별 신규 가입자 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        period  path  string  true  "day | week | month | year"
// @Success      200  {object}  []domain.PeriodCount
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/registrations/{period} [get]
func (h *AnalysisHandler) Registrations(c *gin.Context) { h.series(h.service.Registrations)(c) }

type countFunc func(ctx context.Context) (int64, error)

func (h *AnalysisHandler) count(key string, fn countFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := fn(c.Request.Context())
		if err != nil {
			common.ErrorResponse(c, http.StatusInternalServerError, msgAnalysisFailed, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: n})
	}
}

// DailyVisitors godoc
// @Summary      오늘 방문자 수
// @Description  오늘 방문한 회원 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/daily-visitors [get]
// @Router       /visitors/daily [get]
func (h *AnalysisHandler) DailyVisitors(c *gin.Context) {
	h.count("dailyVisitors", h.service.DailyVisitors)(c)
}

// TodayRegistrations godoc
// @Summary      오늘 가입자 수
// @Description  오늘 가입한 회원 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/today-registrations [get]
func (h *AnalysisHandler) TodayRegistrations(c *gin.Context) {
	h.count("todayRegistrations", h.service.TodayRegistrations)(c)
}

// TotalMemberCount godoc
// @Summary      전체 회원 수
// @Description  탈퇴하지 않은 전체 회원 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/total-members [get]
func (h *AnalysisHandler) TotalMemberCount(c *gin.Context) {
	h.count("totalMembers", h.service.TotalMemberCount)(c)
}

// GenderAgeStats godoc
// @Summary      성별 연령대 통계
// @Description  성별과 연령대별 회원 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []domain.GenderAgeStat
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/gender-age-stats [get]
func (h *AnalysisHandler) GenderAgeStats(c *gin.Context) {
	stats, err := h.service.GenderAgeStats(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgAnalysisFailed, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PostsByCategory godoc
// @Summary      카테고리별 게시글 수
// @Description  게시판 카테고리별 게시글 수를 조회합니다
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  []domain.PostCategoryCount
// @Failure      500  {object}  common.ErrorInfo
// @Router       /analysis/postscategoryall [get]
func (h *AnalysisHandler) PostsByCategory(c *gin.Context) {
	rows, err := h.service.PostsByCategory(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgAnalysisFailed, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
