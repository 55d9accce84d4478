package domain

import "time"

// Comment is a comment on a general post (HM_BOARD_COMMENT)
type Comment struct {
	RegDate time.Time `gorm:"column:regdt" json:"regdt"`
	MemID   string    `gorm:"column:mem_id" json:"mem_id"`
	Content string    `gorm:"column:content" json:"content"`
	CmtIdx  int64     `gorm:"column:cmt_idx" json:"cmt_idx"`
	BoIdx   int64     `gorm:"column:bo_idx" json:"bo_idx"`
	MemIdx  int64     `gorm:"column:mem_idx" json:"mem_idx"`
	CntGood int       `gorm:"column:cnt_good" json:"cnt_good"`
	CntBad  int       `gorm:"column:cnt_bad" json:"cnt_bad"`
}
