package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hituru/admin-backend/internal/domain"
	"github.com/hituru/admin-backend/internal/handler"
)

// Handlers groups every admin handler the route table needs
type Handlers struct {
	Members       *handler.MemberHandler
	Bans          *handler.BanHandler
	GeneralPosts  *handler.ListHandler[domain.GeneralPost, domain.GeneralPostDetail]
	Comments      *handler.CommentHandler
	Notices       *handler.ListHandler[domain.Notice, domain.NoticeDetail]
	Frauds        *handler.ListHandler[domain.FraudReport, domain.FraudReportDetail]
	LimitedSales  *handler.ListHandler[domain.LimitedSale, domain.LimitedSaleDetail]
	BoardReports  *handler.ListHandler[domain.BoardReport, domain.BoardReport]
	MemberReports *handler.ListHandler[domain.MemberReport, domain.MemberReport]
	ReportCounts  *handler.ReportCountHandler
	QnA           *handler.QnAHandler
	Analysis      *handler.AnalysisHandler
}

// listRoutes is the route surface shared by every admin list
type listRoutes interface {
	List(c *gin.Context)
	Search(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
	BulkDelete(c *gin.Context)
}

// mountList registers list, detail, search and delete routes for one board
func mountList(g *gin.RouterGroup, h listRoutes) {
	g.GET("/:page", h.List)
	g.GET("/detail/:id", h.Detail)
	g.GET("/search/:field/:term/:page", h.Search)
	g.POST("/delete/:id", h.Delete)
	g.POST("/delete", h.BulkDelete)
}

// Setup configures all admin API routes behind the given middleware (admin check, audit)
func Setup(router *gin.Engine, h *Handlers, guard ...gin.HandlerFunc) {
	// search terms may carry an escaped '/'
	router.UseRawPath = true
	router.UnescapePathValues = true

	api := router.Group("", guard...)

	// 회원 관리
	members := api.Group("/members")
	members.GET("/:page", h.Members.List)
	members.GET("/detail/:id", h.Members.Detail)
	members.GET("/search/:field/:term/:page", h.Members.Search)

	users := api.Group("/users")
	users.POST("/delete/:memIdx", h.Members.Delete)
	users.POST("/delete", h.Members.BulkDelete)

	// 회원 정지
	users.POST("/ban/:memId", h.Bans.Ban)
	users.POST("/unban/:memId", h.Bans.Unban)
	users.POST("/unban", h.Bans.BulkUnban)
	users.GET("/banned", h.Bans.ListBanned)
	users.GET("/banned/:page", h.Bans.ListBanned)
	users.GET("/banned/search/:field/:term/:page", h.Bans.SearchBanned)

	// 게시글 관리
	posts := api.Group("/postmanage")
	mountList(posts.Group("/general"), h.GeneralPosts)
	mountList(posts.Group("/notice"), h.Notices)
	mountList(posts.Group("/fraud"), h.Frauds)

	comments := posts.Group("/general/comment")
	comments.GET("/list/:page", h.Comments.List)
	comments.GET("/detail/:boIdx/:page", h.Comments.ListByPost)
	comments.GET("/search/:field/:term/:page", h.Comments.Search)
	comments.POST("/delete/:id", h.Comments.Delete)
	comments.POST("/delete", h.Comments.BulkDelete)

	// 한정판 거래
	sales := api.Group("/limitedsales")
	sales.GET("/list/:page", h.LimitedSales.List)
	sales.GET("/detail/:id", h.LimitedSales.Detail)
	sales.GET("/search/:field/:term/:page", h.LimitedSales.Search)
	sales.POST("/delete/:id", h.LimitedSales.Delete)
	sales.POST("/delete", h.LimitedSales.BulkDelete)

	// 신고 관리
	reports := api.Group("/reports")
	mountList(reports.Group("/board"), h.BoardReports)
	mountList(reports.Group("/member"), h.MemberReports)
	reports.GET("/boardcount", h.ReportCounts.BoardCounts)
	reports.GET("/membercount", h.ReportCounts.MemberCounts)

	// 회원 문의
	qna := api.Group("/memberqna")
	mountList(qna, h.QnA)
	qna.GET("/response/:page", h.QnA.Answered)
	qna.GET("/notresponse/:page", h.QnA.Pending)
	qna.POST("/answer/post/:id", h.QnA.Answer)

	// 통계
	analysis := api.Group("/analysis")
	analysis.GET("/total-members/:period", h.Analysis.TotalMembers)
	analysis.GET("/visitors/:period", h.Analysis.Visitors)
	analysis.GET("/registrations/:period", h.Analysis.Registrations)
	analysis.GET("/daily-visitors", h.Analysis.DailyVisitors)
	analysis.GET("/today-registrations", h.Analysis.TodayRegistrations)
	analysis.GET("/total-members", h.Analysis.TotalMemberCount)
	analysis.GET("/gender-age-stats", h.Analysis.GenderAgeStats)
	analysis.GET("/postscategoryall", h.Analysis.PostsByCategory)

	api.GET("/visitors/daily", h.Analysis.DailyVisitors)
}
