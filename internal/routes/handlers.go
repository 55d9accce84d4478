package routes

import (
	"time"

	"gorm.io/gorm"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/handler"
	"github.com/hituru/admin-backend/internal/repository"
	"github.com/hituru/admin-backend/internal/service"
)

// NewHandlers wires repositories, services and handlers over one database
func NewHandlers(db *gorm.DB, maxPeriods int, loc *time.Location) *Handlers {
	members := repository.NewMemberRepository(db)

	return &Handlers{
		Members: handler.NewMemberHandler(service.NewMemberService(members)),
		Bans:    handler.NewBanHandler(service.NewBanService(members)),
		GeneralPosts: handler.NewListHandler(
			service.NewListService[domain.GeneralPost, domain.GeneralPostDetail](repository.NewGeneralPostRepository(db), common.ErrPostNotFound),
			handler.PostMessages),
		Comments: handler.NewCommentHandler(service.NewCommentService(repository.NewCommentRepository(db))),
		Notices: handler.NewListHandler(
			service.NewListService[domain.Notice, domain.NoticeDetail](repository.NewNoticeRepository(db), common.ErrPostNotFound),
			handler.PostMessages),
		Frauds: handler.NewListHandler(
			service.NewListService[domain.FraudReport, domain.FraudReportDetail](repository.NewFraudReportRepository(db), common.ErrPostNotFound),
			handler.FraudMessages),
		LimitedSales: handler.NewListHandler(
			service.NewListService[domain.LimitedSale, domain.LimitedSaleDetail](repository.NewLimitedSaleRepository(db), common.ErrNotFound),
			handler.LimitedSaleMessages),
		BoardReports: handler.NewListHandler(
			service.NewListService[domain.BoardReport, domain.BoardReport](repository.NewBoardReportRepository(db), common.ErrReportNotFound),
			handler.ReportMessages),
		MemberReports: handler.NewListHandler(
			service.NewListService[domain.MemberReport, domain.MemberReport](repository.NewMemberReportRepository(db), common.ErrReportNotFound),
			handler.ReportMessages),
		ReportCounts: handler.NewReportCountHandler(service.NewReportService(repository.NewReportCountRepository(db))),
		QnA:          handler.NewQnAHandler(service.NewQnAService(repository.NewQnARepository(db))),
		Analysis:     handler.NewAnalysisHandler(service.NewAnalysisService(repository.NewAnalysisRepository(db), maxPeriods, loc)),
	}
}
