package repository

import (
	"context"
	"time"

	"github.com/hituru/admin-backend/internal/domain"
	"gorm.io/gorm"
)

// QnARepository reads the member inquiry queue and records answers.
// The embedded TableRepository serves the full queue; Answered and Pending the two halves.
type QnARepository struct {
	*TableRepository[domain.QnA, domain.QnADetail]
	db       *gorm.DB
	answered *TableRepository[domain.QnA, domain.QnADetail]
	pending  *TableRepository[domain.QnA, domain.QnADetail]
}

// NewQnARepository creates a new QnARepository
func NewQnARepository(db *gorm.DB) *QnARepository {
	const cols = "q.meq_idx, q.mem_idx, COALESCE(m.mem_id, '') AS mem_id, q.subject, q.qtype, q.isresponse, q.cnt_view, q.regdt, q.rdt"
	t := listTable{
		name:    "HM_MEMBER_QNA",
		alias:   "q",
		joins:   joinMember("q") + " LEFT JOIN HM_MEMBER AS t ON t.mem_idx = q.tmem_idx",
		key:     "meq_idx",
		order:   "meq_idx DESC",
		columns: cols,
		detail: cols + ", q.content, q.reason, q.isadult, q.tmem_idx, t.mem_id AS tmem_id, " +
			"q.rsubject, q.rcontent, q.vdt, q.isview, q.cnt_img",
		search: map[string]string{
			"subject": "q.subject LIKE ?",
			"content": "q.content LIKE ?",
			"nick":    "m.mem_nick LIKE ?",
			"id":      "m.mem_id LIKE ?",
		},
		images: "HM_MEMBER_QNA_IMG",
	}
	answered := t
	answered.live = "isresponse = 'Y'"
	pending := t
	pending.live = "isresponse = 'N'"

	return &QnARepository{
		TableRepository: newTableRepository[domain.QnA, domain.QnADetail](db, t),
		db:              db,
		answered:        newTableRepository[domain.QnA, domain.QnADetail](db, answered),
		pending:         newTableRepository[domain.QnA, domain.QnADetail](db, pending),
	}
}

// FindAnsweredPage returns one page of answered inquiries
func (r *QnARepository) FindAnsweredPage(ctx context.Context, page int) ([]domain.QnA, int64, error) {
	return r.answered.FindPage(ctx, page)
}

// FindPendingPage returns one page of inquiries still waiting for an answer
func (r *QnARepository) FindPendingPage(ctx context.Context, page int) ([]domain.QnA, int64, error) {
	return r.pending.FindPage(ctx, page)
}

// Answer stores the answer and marks the inquiry answered. An existing answer is overwritten.
// It reports false when no inquiry has the id.
func (r *QnARepository) Answer(ctx context.Context, id int64, subject, content string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Table("HM_MEMBER_QNA").
		Where("meq_idx = ?", id).
		Updates(map[string]interface{}{
			"rsubject":   subject,
			"rcontent":   content,
			"rdt":        at,
			"isresponse": domain.FlagYes,
		})
	return res.RowsAffected > 0, res.Error
}
