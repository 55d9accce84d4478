package domain

import "time"

// QnA is a row of the member inquiry queue (HM_MEMBER_QNA)
type QnA struct {
	RegDate    time.Time  `gorm:"column:regdt" json:"regdt"`
	AnsweredAt *time.Time `gorm:"column:rdt" json:"rdt"`
	QType      *string    `gorm:"column:qtype" json:"qtype"`
	MemID      string     `gorm:"column:mem_id" json:"mem_id"`
	Subject    string     `gorm:"column:subject" json:"subject"`
	IsResponse string     `gorm:"column:isresponse" json:"isresponse"`
	MeqIdx     int64      `gorm:"column:meq_idx" json:"meq_idx"`
	MemIdx     int64      `gorm:"column:mem_idx" json:"mem_idx"`
	CntView    int        `gorm:"column:cnt_view" json:"cnt_view"`
}

// IsAnswered reports whether an admin has answered the inquiry
func (q *QnA) IsAnswered() bool {
	return q.IsResponse == FlagYes
}

// QnADetail is the detail view of an inquiry with its answer and attachments.
// TMemIdx/TMemID name the member the inquiry is about, when there is one.
type QnADetail struct {
	QnA
	ViewedAt *time.Time `gorm:"column:vdt" json:"vdt"`
	Reason   *string    `gorm:"column:reason" json:"reason"`
	IsAdult  *string    `gorm:"column:isadult" json:"isadult"`
	TMemIdx  *int64     `gorm:"column:tmem_idx" json:"tmem_idx"`
	TMemID   *string    `gorm:"column:tmem_id" json:"tmem_id"`
	Content  string     `gorm:"column:content" json:"content"`
	RSubject string     `gorm:"column:rsubject" json:"rsubject"`
	RContent string     `gorm:"column:rcontent" json:"rcontent"`
	IsView   string     `gorm:"column:isview" json:"isview"`
	CntImg   int        `gorm:"column:cnt_img" json:"cnt_img"`
	imageSlot
}

// QnAAnswerRequest body of POST /memberqna/answer/post/:id
type QnAAnswerRequest struct {
	RSubject string `json:"rsubject"`
	RContent string `json:"rcontent"`
}
