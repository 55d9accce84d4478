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

const (
	msgMemberListFailed   = "회원 목록 조회 실패"
	msgMemberFailed       = "회원 조회 실패"
	msgMemberNotFound     = "사용자를 찾을 수 없습니다."
	msgMemberDeleted      = "회원이 삭제되었습니다."
	msgMemberDeleteFailed = "회원 삭제 중 오류가 발생했습니다."
	msgMembersDeleted     = "선택한 회원이 삭제되었습니다."
	msgMembersPartial     = "일부 회원 삭제에 실패했습니다."

	msgBanned         = "회원이 성공적으로 정지되었습니다."
	msgBanFailed      = "회원 정지 중 오류가 발생했습니다."
	msgBanNoReason    = "정지 사유를 입력해주세요."
	msgBanNoUntil     = "정지 기간을 입력해주세요."
	msgUnbanned       = "회원 정지가 해제되었습니다."
	msgUnbanFailed    = "회원 정지 해제 중 오류가 발생했습니다."
	msgBulkUnbanned   = "선택한 회원의 정지가 해제되었습니다."
	msgBulkUnbanPart  = "일부 회원의 정지 해제에 실패했습니다."
	msgBannedListFail = "정지 회원 목록 조회 실패"
)

// MemberHandler handles admin member requests
type MemberHandler struct {
	service service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(svc service.MemberService) *MemberHandler {
	return &MemberHandler{service: svc}
}

// List godoc
// @Summary      회원 목록
// @Description  탈퇴하지 않은 회원을 가입일 역순으로 조회합니다
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        page  path  int  true  "페이지 번호 (1부터)"
// @Success      200  {object}  common.ListResponse[domain.MemberListItem]
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /members/{page} [get]
func (h *MemberHandler) List(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgMemberListFailed, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Search godoc
// @Summary      회원 검색
// @Description  아이디(id) 또는 닉네임(nick)으로 회원을 검색합니다
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        field  path  string  true  "검색 필드 (id, nick)"
// @Param        term  path  string  true  "검색어 (부분 일치)"
// @Param        page  path  int  true  "페이지 번호 (1부터)"
// @Success      200  {object}  common.ListResponse[domain.MemberListItem]
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /members/search/{field}/{term}/{page} [get]
func (h *MemberHandler) Search(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.Search(c.Request.Context(), c.Param("field"), c.Param("term"), page)
	if err != nil {
		common.ErrorResponse(c, statusOf(err), validationMessage(err, msgMemberListFailed), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Detail godoc
// @Summary      회원 상세
// @Description  회원 상세 정보를 조회합니다
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "회원 ID (mem_idx)"
// @Success      200  {object}  domain.MemberDetail
// @Failure      400  {object}  common.ErrorInfo
// @Failure      404  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /members/detail/{id} [get]
func (h *MemberHandler) Detail(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrMemberNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, msgMemberNotFound, err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, msgMemberFailed, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Delete godoc
// @Summary      회원 삭제
// @Description  회원을 탈퇴 처리합니다
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        memIdx  path  int  true  "회원 ID (mem_idx)"
// @Success      200  {object}  common.Result
// @Failure      400  {object}  common.Result
// @Failure      404  {object}  common.Result
// @Failure      500  {object}  common.Result
// @Router       /users/delete/{memIdx} [post]
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "memIdx")
	if err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrMemberNotFound) {
			common.ResultErrorResponse(c, http.StatusNotFound, msgMemberNotFound, err)
			return
		}
		common.ResultErrorResponse(c, http.StatusInternalServerError, msgMemberDeleteFailed, err)
		return
	}
	common.ResultResponse(c, http.StatusOK, msgMemberDeleted)
}

// BulkDelete godoc
// @Summary      회원 일괄 삭제
// @Description  여러 회원을 각각 탈퇴 처리하고 항목별 결과를 반환합니다
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.BulkIDsRequest  true  "대상 ID 목록 (최대 500개)"
// @Success      200  {object}  common.BulkResult
// @Failure      400  {object}  common.Result
// @Failure      500  {object}  common.Result
// @Router       /users/delete [post]
func (h *MemberHandler) BulkDelete(c *gin.Context) {
	var req domain.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	outcomes, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		common.ResultErrorResponse(c, statusOf(err), validationMessage(err, msgMemberDeleteFailed), err)
		return
	}
	common.BulkResponse(c, itemResults(outcomes, msgMemberDeleted, msgMemberNotFound, msgMemberDeleteFailed),
		msgMembersDeleted, msgMembersPartial)
}

// BanHandler handles member suspension requests
type BanHandler struct {
	service service.BanService
}

// NewBanHandler creates a new BanHandler
func NewBanHandler(svc service.BanService) *BanHandler {
	return &BanHandler{service: svc}
}

// Ban godoc
// @Summary      회원 정지
// @Description  정지 사유와 기간을 기록하고 회원을 정지합니다
// @Tags         bans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        memId  path  int  true  "회원 ID (mem_idx)"
// @Param        request  body  domain.BanRequest  true  "정지 사유와 종료일"
// @Success      200  {object}  common.Result
// @Failure      400  {object}  common.Result
// @Failure      404  {object}  common.Result
// @Failure      500  {object}  common.Result
// @Router       /users/ban/{memId} [post]
func (h *BanHandler) Ban(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "memId")
	if err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	var req domain.BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	if err := h.service.Ban(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, common.ErrBanReasonRequired):
			common.ResultErrorResponse(c, http.StatusBadRequest, msgBanNoReason, err)
		case errors.Is(err, common.ErrBanUntilRequired):
			common.ResultErrorResponse(c, http.StatusBadRequest, msgBanNoUntil, err)
		case errors.Is(err, common.ErrMemberNotFound):
			common.ResultErrorResponse(c, http.StatusNotFound, msgMemberNotFound, err)
		default:
			common.ResultErrorResponse(c, http.StatusInternalServerError, msgBanFailed, err)
		}
		return
	}
	common.ResultResponse(c, http.StatusOK, msgBanned)
}

// Unban godoc
// @Summary      회원 정지 해제
// @Description  정지 사유와 기간을 지우고 정지를 해제합니다
// @Tags         bans
// @Produce      json
// @Security     BearerAuth
// @Param        memId  path  int  true  "회원 ID (mem_idx)"
// @Success      200  {object}  common.Result
// @Failure      400  {object}  common.Result
// @Failure      404  {object}  common.Result
// @Failure      500  {object}  common.Result
// @Router       /users/unban/{memId} [post]
func (h *BanHandler) Unban(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "memId")
	if err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidID, err)
		return
	}

	if err := h.service.Unban(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrMemberNotFound) {
			common.ResultErrorResponse(c, http.StatusNotFound, msgMemberNotFound, err)
			return
		}
		common.ResultErrorResponse(c, http.StatusInternalServerError, msgUnbanFailed, err)
		return
	}
	common.ResultResponse(c, http.StatusOK, msgUnbanned)
}

// BulkUnban godoc
// @Summary      회원 일괄 정지 해제
// @Description  여러 회원의 정지를 각각 해제하고 항목별 결과를 반환합니다
// @Tags         bans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.BulkIDsRequest  true  "대상 ID 목록 (최대 500개)"
// @Success      200  {object}  common.BulkResult
// @Failure      400  {object}  common.Result
// @Failure      500  {object}  common.Result
// @Router       /users/unban [post]
func (h *BanHandler) BulkUnban(c *gin.Context) {
	var req domain.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResultErrorResponse(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	outcomes, err := h.service.UnbanMany(c.Request.Context(), req.IDs)
	if err != nil {
		common.ResultErrorResponse(c, statusOf(err), validationMessage(err, msgUnbanFailed), err)
		return
	}
	common.BulkResponse(c, itemResults(outcomes, msgUnbanned, msgMemberNotFound, msgUnbanFailed),
		msgBulkUnbanned, msgBulkUnbanPart)
}

// ListBanned godoc
// @Summary      정지 회원 목록
// @Description  정지된 회원을 조회합니다. page 가 없으면 1페이지입니다.
// @Tags         bans
// @Produce      json
// @Security     BearerAuth
// @Param        page  path  int  false  "페이지 번호 (1부터)"
// @Success      200  {object}  common.ListResponse[domain.MemberListItem]
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /users/banned [get]
// @Router       /users/banned/{page} [get]
func (h *BanHandler) ListBanned(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.ListBanned(c.Request.Context(), page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, msgBannedListFail, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SearchBanned godoc
// @Summary      정지 회원 검색
// @Description  정지된 회원을 아이디(id) 또는 닉네임(nick)으로 검색합니다
// @Tags         bans
// @Produce      json
// @Security     BearerAuth
// @Param        field  path  string  true  "검색 필드 (id, nick)"
// @Param        term  path  string  true  "검색어 (부분 일치)"
// @Param        page  path  int  true  "페이지 번호 (1부터)"
// @Success      200  {object}  common.ListResponse[domain.MemberListItem]
// @Failure      400  {object}  common.ErrorInfo
// @Failure      500  {object}  common.ErrorInfo
// @Router       /users/banned/search/{field}/{term}/{page} [get]
func (h *BanHandler) SearchBanned(c *gin.Context) {
	page, err := ginutil.ParamPage(c, "page")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, msgInvalidPage, err)
		return
	}

	res, err := h.service.SearchBanned(c.Request.Context(), c.Param("field"), c.Param("term"), page)
	if err != nil {
		common.ErrorResponse(c, statusOf(err), validationMessage(err, msgBannedListFail), err)
		return
	}
	c.JSON(http.StatusOK, res)
}
