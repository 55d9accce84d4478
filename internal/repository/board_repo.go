package repository

import (
	"github.com/hituru/admin-backend/internal/domain"
	"gorm.io/gorm"
)

func joinMember(alias string) string {
	return "LEFT JOIN HM_MEMBER AS m ON m.mem_idx = " + alias + ".mem_idx"
}

// GeneralPostRepository reads and deletes general board posts
type GeneralPostRepository = TableRepository[domain.GeneralPost, domain.GeneralPostDetail]

// NewGeneralPostRepository creates a new GeneralPostRepository
func NewGeneralPostRepository(db *gorm.DB) *GeneralPostRepository {
	return newTableRepository[domain.GeneralPost, domain.GeneralPostDetail](db, listTable{
		name:    "HM_BOARD",
		alias:   "b",
		joins:   joinMember("b"),
		key:     "bo_idx",
		live:    "isdel = 'N'",
		order:   "bo_idx DESC",
		columns: "b.bo_idx, COALESCE(m.mem_id, '') AS mem_id, b.subject, b.cnt_view, b.cnt_star, b.cnt_good, b.cnt_bad, b.cnt_comment, b.regdt",
		detail: "b.bo_idx, COALESCE(m.mem_id, '') AS mem_id, b.subject, b.cnt_view, b.cnt_star, b.cnt_good, b.cnt_bad, b.cnt_comment, b.regdt, " +
			"b.mem_idx, b.ca_idx, b.cd_subtag, b.content, b.link, b.tags, b.cnt_img",
		search: map[string]string{
			"subject":  "b.subject LIKE ?",
			"content":  "b.content LIKE ?",
			"nick":     "m.mem_nick LIKE ?",
			"nickname": "m.mem_nick LIKE ?",
		},
		images: "HM_BOARD_IMG",
		remove: "isdel = 'Y'",
	})
}

// NoticeRepository reads and deletes notices
type NoticeRepository = TableRepository[domain.Notice, domain.NoticeDetail]

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *gorm.DB) *NoticeRepository {
	return newTableRepository[domain.Notice, domain.NoticeDetail](db, listTable{
		name:    "HM_NOTICE",
		alias:   "n",
		joins:   joinMember("n"),
		key:     "bo_idx",
		live:    "isdel = 'N'",
		order:   "bo_idx DESC",
		columns: "n.bo_idx, COALESCE(m.mem_id, '') AS mem_id, n.subject, n.cnt_view, n.regdt",
		detail:  "n.bo_idx, COALESCE(m.mem_id, '') AS mem_id, n.subject, n.cnt_view, n.regdt, n.content, n.mem_idx",
		search: map[string]string{
			"subject":  "n.subject LIKE ?",
			"content":  "n.content LIKE ?",
			"nick":     "m.mem_nick LIKE ?",
			"nickname": "m.mem_nick LIKE ?",
		},
		images: "HM_NOTICE_IMG",
		remove: "isdel = 'Y'",
	})
}

// FraudReportRepository reads and deletes fraud board posts
type FraudReportRepository = TableRepository[domain.FraudReport, domain.FraudReportDetail]

// NewFraudReportRepository creates a new FraudReportRepository
func NewFraudReportRepository(db *gorm.DB) *FraudReportRepository {
	return newTableRepository[domain.FraudReport, domain.FraudReportDetail](db, listTable{
		name:    "HM_BOARD_FRAUD",
		alias:   "f",
		joins:   joinMember("f"),
		key:     "bof_idx",
		order:   "bof_idx DESC",
		columns: "f.bof_idx, COALESCE(m.mem_id, '') AS mem_id, f.bof_type, f.gd_name, f.damage_dt, f.damage_type, f.cnt_view, f.regdt",
		detail: "f.bof_idx, COALESCE(m.mem_id, '') AS mem_id, f.bof_type, f.gd_name, f.damage_dt, f.damage_type, f.cnt_view, f.regdt, " +
			"f.msg_type, f.email, f.content, f.account_num, f.account_bank, f.msg_id, f.hp, f.url, f.damage_amount, f.cnt_img",
		search: map[string]string{
			"goodname": "f.gd_name LIKE ?",
			"nick":     "m.mem_nick LIKE ?",
		},
		images: "HM_BOARD_FRAUD_IMG",
	})
}

// LimitedSaleRepository reads and deletes limited-sale listings
type LimitedSaleRepository = TableRepository[domain.LimitedSale, domain.LimitedSaleDetail]

// NewLimitedSaleRepository creates a new LimitedSaleRepository
func NewLimitedSaleRepository(db *gorm.DB) *LimitedSaleRepository {
	return newTableRepository[domain.LimitedSale, domain.LimitedSaleDetail](db, listTable{
		name:    "HM_GOODS",
		alias:   "g",
		joins:   joinMember("g"),
		key:     "gd_idx",
		order:   "gd_idx DESC",
		columns: "g.gd_idx, g.mem_idx, COALESCE(m.mem_id, '') AS mem_id, g.gd_name, g.gd_status, g.brand_str, g.price, g.cnt_view, g.regdt",
		detail: "g.gd_idx, g.mem_idx, COALESCE(m.mem_id, '') AS mem_id, g.gd_name, g.gd_status, g.brand_str, g.price, g.cnt_view, g.regdt, " +
			"g.buy_price, g.content, g.condition_goods, g.component, g.cnt_img",
		search: map[string]string{
			"goods":  "g.gd_name LIKE ?",
			"member": "m.mem_id LIKE ?",
		},
		images: "HM_GOODS_IMG",
	})
}

// CommentRepository reads and deletes general board comments
type CommentRepository = TableRepository[domain.Comment, domain.Comment]

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	const cols = "c.cmt_idx, c.bo_idx, c.mem_idx, COALESCE(m.mem_id, '') AS mem_id, c.content, c.cnt_good, c.cnt_bad, c.regdt"
	return newTableRepository[domain.Comment, domain.Comment](db, listTable{
		name:    "HM_BOARD_COMMENT",
		alias:   "c",
		joins:   joinMember("c"),
		key:     "cmt_idx",
		order:   "cmt_idx DESC",
		columns: cols,
		detail:  cols,
		search: map[string]string{
			"content":  "c.content LIKE ?",
			"nickname": "m.mem_nick LIKE ?",
			"nick":     "m.mem_nick LIKE ?",
		},
	})
}
