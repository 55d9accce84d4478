package handler

import (
	"errors"
	"net/http"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/service"
	"github.com/hituru/admin-backend/pkg/ginutil"
)

const (
	msgInvalidID     = "잘못된 ID입니다."
	msgInvalidPage   = "잘못된 페이지 번호입니다."
	msgInvalidSearch = "지원하지 않는 검색 조건입니다."
	msgInvalidBody   = "요청 형식이 올바르지 않습니다."
	msgEmptyIDs      = "선택된 항목이 없습니다."
	msgInvalidPeriod = "기간은 date, week, month 중 하나여야 합니다."
)

// statusOf maps a service error to its HTTP status
func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, common.ErrMemberNotFound),
		errors.Is(err, common.ErrPostNotFound),
		errors.Is(err, common.ErrCommentNotFound),
		errors.Is(err, common.ErrReportNotFound),
		errors.Is(err, common.ErrQnANotFound),
		errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrInvalidSearchType),
		errors.Is(err, common.ErrInvalidPeriod),
		errors.Is(err, common.ErrBanReasonRequired),
		errors.Is(err, common.ErrBanUntilRequired),
		errors.Is(err, common.ErrQnAAnswerRequired),
		errors.Is(err, common.ErrEmptyIDList),
		errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, ginutil.ErrInvalidPage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// validationMessage returns the client message of a 400 error, or fallback
func validationMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, common.ErrInvalidSearchType):
		return msgInvalidSearch
	case errors.Is(err, common.ErrInvalidPeriod):
		return msgInvalidPeriod
	case errors.Is(err, common.ErrEmptyIDList):
		return msgEmptyIDs
	case errors.Is(err, ginutil.ErrInvalidPage):
		return msgInvalidPage
	}
	return fallback
}

// itemResults converts bulk outcomes to envelope items. okMessage is used for successes,
// notFound for unknown ids and failed for everything else.
func itemResults(outcomes []service.Outcome, okMessage, notFound, failed string) []common.ItemResult {
	items := make([]common.ItemResult, len(outcomes))
	for i, o := range outcomes {
		status := statusOf(o.Err)
		msg := okMessage
		switch status {
		case http.StatusOK:
		case http.StatusNotFound:
			msg = notFound
		default:
			msg = failed
		}
		items[i] = common.NewItemResult(o.ID, status, msg)
	}
	return items
}
