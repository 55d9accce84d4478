package domain

import (
	"time"
)

const (
	// FlagYes / FlagNo are the 'Y'/'N' values of HM_MEMBER flag columns
	FlagYes = "Y"
	FlagNo  = "N"

	// DateLayout is the wire format of DATE columns such as stopdt
	DateLayout = "2006-01-02"
	// DateTimeLayout is the wire format of DATETIME columns
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Member domain model (HM_MEMBER table)
type Member struct {
	RegDate    time.Time  `gorm:"column:regdt"`
	Birth      *time.Time `gorm:"column:birth"`
	StopUntil  *time.Time `gorm:"column:stopdt"`
	LastVisit  *time.Time `gorm:"column:todaydt"`
	DeletedAt  *time.Time `gorm:"column:deldt"`
	Nickname   *string    `gorm:"column:mem_nick"`
	Phone      *string    `gorm:"column:mem_hp"`
	Email      *string    `gorm:"column:mem_email"`
	ProfileURL *string    `gorm:"column:mem_profile_url"`
	Sex        *string    `gorm:"column:mem_sex"`
	StopReason *string    `gorm:"column:stop_info"`
	UserID     string     `gorm:"column:mem_id"`
	IsStop     string     `gorm:"column:isstop"`
	IsAdmin    string     `gorm:"column:isadmin"`
	ID         int64      `gorm:"column:mem_idx;primaryKey"`
}

// TableName returns the table name
func (Member) TableName() string {
	return "HM_MEMBER"
}

// IsBanned reports whether the member is suspended. isstop is the only source of truth.
func (m *Member) IsBanned() bool {
	return m.IsStop == FlagYes
}

// MemberListItem is one row of the member and banned-member lists
type MemberListItem struct {
	MemNick    *string `json:"mem_nick"`
	ProfileURL *string `json:"mem_profile_url"`
	StopInfo   *string `json:"stop_info"`
	StopDate   *string `json:"stopdt"`
	MemID      string  `json:"mem_id"`
	RegDate    string  `json:"regdt"`
	MemIdx     int64   `json:"mem_idx"`
	IsStopped  bool    `json:"is_stopped"`
}

// MemberDetail is the admin detail view of a member
type MemberDetail struct {
	MemNick    *string `json:"mem_nick"`
	Phone      *string `json:"mem_hp"`
	Email      *string `json:"mem_email"`
	ProfileURL *string `json:"mem_profile_url"`
	Sex        *string `json:"mem_sex"`
	Birth      *string `json:"birth"`
	StopInfo   *string `json:"stop_info"`
	StopDate   *string `json:"stopdt"`
	LastVisit  *string `json:"todaydt"`
	MemID      string  `json:"mem_id"`
	RegDate    string  `json:"regdt"`
	MemIdx     int64   `json:"mem_idx"`
	IsStopped  bool    `json:"is_stopped"`
}

// ToListItem converts Member to MemberListItem
func (m *Member) ToListItem() *MemberListItem {
	item := &MemberListItem{
		MemIdx:     m.ID,
		MemID:      m.UserID,
		MemNick:    m.Nickname,
		ProfileURL: m.ProfileURL,
		RegDate:    m.RegDate.Format(DateTimeLayout),
		IsStopped:  m.IsBanned(),
	}
	if item.IsStopped {
		item.StopInfo = m.StopReason
		item.StopDate = formatDate(m.StopUntil, DateLayout)
	}
	return item
}

// ToDetail converts Member to MemberDetail
func (m *Member) ToDetail() *MemberDetail {
	d := &MemberDetail{
		MemIdx:     m.ID,
		MemID:      m.UserID,
		MemNick:    m.Nickname,
		Phone:      m.Phone,
		Email:      m.Email,
		ProfileURL: m.ProfileURL,
		Sex:        m.Sex,
		Birth:      formatDate(m.Birth, DateLayout),
		LastVisit:  formatDate(m.LastVisit, DateTimeLayout),
		RegDate:    m.RegDate.Format(DateTimeLayout),
		IsStopped:  m.IsBanned(),
	}
	if d.IsStopped {
		d.StopInfo = m.StopReason
		d.StopDate = formatDate(m.StopUntil, DateLayout)
	}
	return d
}

func formatDate(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}
