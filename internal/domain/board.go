package domain

import "time"

// Image is an attachment of a post, notice, fraud report or listing
type Image struct {
	FileName string `gorm:"column:file_name" json:"file_name"`
	FileURL  string `gorm:"column:file_url" json:"file_url"`
	ImgIdx   int64  `gorm:"column:img_idx" json:"img_idx"`
}

// imageSlot is embedded by detail views that carry attachments
type imageSlot struct {
	Images []Image `gorm:"-" json:"images"`
}

// SetImages attaches images to a detail view
func (s *imageSlot) SetImages(images []Image) {
	if images == nil {
		images = []Image{}
	}
	s.Images = images
}

// GeneralPost is a row of the general board list (HM_BOARD)
type GeneralPost struct {
	RegDate    time.Time `gorm:"column:regdt" json:"regdt"`
	MemID      string    `gorm:"column:mem_id" json:"mem_id"`
	Subject    string    `gorm:"column:subject" json:"subject"`
	BoIdx      int64     `gorm:"column:bo_idx" json:"bo_idx"`
	CntView    int       `gorm:"column:cnt_view" json:"cnt_view"`
	CntStar    int       `gorm:"column:cnt_star" json:"cnt_star"`
	CntGood    int       `gorm:"column:cnt_good" json:"cnt_good"`
	CntBad     int       `gorm:"column:cnt_bad" json:"cnt_bad"`
	CntComment int       `gorm:"column:cnt_comment" json:"cnt_comment"`
}

// GeneralPostDetail is the detail view of a general post
type GeneralPostDetail struct {
	GeneralPost
	CdSubtag *string `gorm:"column:cd_subtag" json:"cd_subtag"`
	Link     *string `gorm:"column:link" json:"link"`
	Content  string  `gorm:"column:content" json:"content"`
	Tags     string  `gorm:"column:tags" json:"tags"`
	MemIdx   int64   `gorm:"column:mem_idx" json:"mem_idx"`
	CaIdx    int64   `gorm:"column:ca_idx" json:"ca_idx"`
	CntImg   int     `gorm:"column:cnt_img" json:"cnt_img"`
	imageSlot
}

// Notice is a row of the notice board list (HM_NOTICE)
type Notice struct {
	RegDate time.Time `gorm:"column:regdt" json:"regdt"`
	MemID   string    `gorm:"column:mem_id" json:"mem_id"`
	Subject string    `gorm:"column:subject" json:"subject"`
	BoIdx   int64     `gorm:"column:bo_idx" json:"bo_idx"`
	CntView int       `gorm:"column:cnt_view" json:"cnt_view"`
}

// NoticeDetail is the detail view of a notice
type NoticeDetail struct {
	Notice
	Content string `gorm:"column:content" json:"content"`
	MemIdx  int64  `gorm:"column:mem_idx" json:"mem_idx"`
	imageSlot
}

// FraudReport is a row of the fraud board list (HM_BOARD_FRAUD)
type FraudReport struct {
	RegDate    time.Time `gorm:"column:regdt" json:"regdt"`
	MemID      string    `gorm:"column:mem_id" json:"mem_id"`
	BofType    string    `gorm:"column:bof_type" json:"bof_type"`
	GdName     string    `gorm:"column:gd_name" json:"gd_name"`
	DamageDate string    `gorm:"column:damage_dt" json:"damage_dt"`
	DamageType string    `gorm:"column:damage_type" json:"damage_type"`
	BofIdx     int64     `gorm:"column:bof_idx" json:"bof_idx"`
	CntView    int       `gorm:"column:cnt_view" json:"cnt_view"`
}

// FraudReportDetail is the detail view of a fraud report
type FraudReportDetail struct {
	FraudReport
	MsgType      *string `gorm:"column:msg_type" json:"msg_type"`
	Email        *string `gorm:"column:email" json:"email"`
	Content      string  `gorm:"column:content" json:"content"`
	AccountNum   string  `gorm:"column:account_num" json:"account_num"`
	AccountBank  string  `gorm:"column:account_bank" json:"account_bank"`
	MsgID        string  `gorm:"column:msg_id" json:"msg_id"`
	Phone        string  `gorm:"column:hp" json:"hp"`
	URL          string  `gorm:"column:url" json:"url"`
	DamageAmount int64   `gorm:"column:damage_amount" json:"damage_amount"`
	CntImg       int     `gorm:"column:cnt_img" json:"cnt_img"`
	imageSlot
}

// LimitedSale is a row of the limited-sale listing (HM_GOODS)
type LimitedSale struct {
	RegDate  time.Time `gorm:"column:regdt" json:"regdt"`
	MemID    string    `gorm:"column:mem_id" json:"mem_id"`
	GdName   string    `gorm:"column:gd_name" json:"gd_name"`
	GdStatus string    `gorm:"column:gd_status" json:"gd_status"`
	BrandStr string    `gorm:"column:brand_str" json:"brand_str"`
	GdIdx    int64     `gorm:"column:gd_idx" json:"gd_idx"`
	MemIdx   int64     `gorm:"column:mem_idx" json:"mem_idx"`
	Price    int64     `gorm:"column:price" json:"price"`
	CntView  int       `gorm:"column:cnt_view" json:"cnt_view"`
}

// LimitedSaleDetail is the detail view of a listing
type LimitedSaleDetail struct {
	LimitedSale
	BuyPrice       *int64 `gorm:"column:buy_price" json:"buy_price"`
	Content        string `gorm:"column:content" json:"content"`
	ConditionGoods string `gorm:"column:condition_goods" json:"condition_goods"`
	Component      string `gorm:"column:component" json:"component"`
	CntImg         int    `gorm:"column:cnt_img" json:"cnt_img"`
	imageSlot
}

// PostCategoryCount is one row of the post-per-category aggregation
type PostCategoryCount struct {
	CdSubtag *string `gorm:"column:cd_subtag" json:"cd_subtag"`
	CaIdx    int64   `gorm:"column:ca_idx" json:"ca_idx"`
	Count    int64   `gorm:"column:count" json:"count"`
}
