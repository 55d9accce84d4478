package adminclient

import "github.com/hituru/admin-backend/internal/domain"

// Row types returned by the API
type (
	MemberListItem    = domain.MemberListItem
	MemberDetail      = domain.MemberDetail
	GeneralPost       = domain.GeneralPost
	GeneralPostDetail = domain.GeneralPostDetail
	Notice            = domain.Notice
	NoticeDetail      = domain.NoticeDetail
	FraudReport       = domain.FraudReport
	FraudReportDetail = domain.FraudReportDetail
	LimitedSale       = domain.LimitedSale
	LimitedSaleDetail = domain.LimitedSaleDetail
	Comment           = domain.Comment
	BoardReport       = domain.BoardReport
	MemberReport      = domain.MemberReport
	BoardReportCount  = domain.BoardReportCount
	MemberReportCount = domain.MemberReportCount
	QnAItem           = domain.QnA
	QnADetail         = domain.QnADetail
	QnAAnswerRequest  = domain.QnAAnswerRequest
	PeriodCount       = domain.PeriodCount
	GenderAgeStat     = domain.GenderAgeStat
	PostCategoryCount = domain.PostCategoryCount
	Period            = domain.Period
	Image             = domain.Image
)
