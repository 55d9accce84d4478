package domain

import "time"

// BoardReport is a report filed against a post (HM_BOARD_REPORT)
type BoardReport struct {
	RegDate time.Time `gorm:"column:regdt" json:"regdt"`
	MemID   string    `gorm:"column:mem_id" json:"mem_id"`
	Content string    `gorm:"column:content" json:"content"`
	RepIdx  int64     `gorm:"column:rep_idx" json:"rep_idx"`
	MemIdx  int64     `gorm:"column:mem_idx" json:"mem_idx"`
	BoIdx   int64     `gorm:"column:bo_idx" json:"bo_idx"`
}

// MemberReport is a report filed against a seller through one of their listings (HM_MEMBER_REPORT)
type MemberReport struct {
	RegDate time.Time `gorm:"column:regdt" json:"regdt"`
	MemID   string    `gorm:"column:mem_id" json:"mem_id"`
	Content string    `gorm:"column:content" json:"content"`
	RepIdx  int64     `gorm:"column:rep_idx" json:"rep_idx"`
	MemIdx  int64     `gorm:"column:mem_idx" json:"mem_idx"`
	GdIdx   int64     `gorm:"column:gd_idx" json:"gd_idx"`
}

// BoardReportCount aggregates reports per post.
// TotalReportCount is the number of every post report.
type BoardReportCount struct {
	Content          string `gorm:"column:content" json:"content"`
	BoIdx            int64  `gorm:"column:bo_idx" json:"bo_idx"`
	ReportCount      int64  `gorm:"column:report_count" json:"report_count"`
	TotalReportCount int64  `gorm:"column:total_report_count" json:"total_report_count"`
}

// MemberReportCount aggregates reports per reported listing
type MemberReportCount struct {
	Content          string `gorm:"column:content" json:"content"`
	GdIdx            int64  `gorm:"column:gd_idx" json:"gd_idx"`
	ReportCount      int64  `gorm:"column:report_count" json:"report_count"`
	TotalReportCount int64  `gorm:"column:total_report_count" json:"total_report_count"`
}
