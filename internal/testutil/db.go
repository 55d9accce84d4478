// Package testutil builds an in-memory SQLite copy of the admin schema for tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE HM_MEMBER (
		mem_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_id VARCHAR(50) NOT NULL,
		mem_nick VARCHAR(50),
		mem_hp VARCHAR(20),
		mem_email VARCHAR(100),
		mem_profile_url VARCHAR(255),
		mem_sex VARCHAR(10),
		birth DATE,
		isstop CHAR(1) NOT NULL DEFAULT 'N',
		stop_info VARCHAR(255),
		stopdt DATE,
		isadmin CHAR(1) NOT NULL DEFAULT 'N',
		regdt DATETIME NOT NULL,
		todaydt DATETIME,
		deldt DATETIME
	)`,
	`CREATE TABLE HM_BOARD (
		bo_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_idx INTEGER NOT NULL,
		ca_idx INTEGER NOT NULL DEFAULT 0,
		cd_subtag VARCHAR(50),
		subject VARCHAR(255) NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		link VARCHAR(255),
		tags VARCHAR(255) NOT NULL DEFAULT '',
		cnt_view INTEGER NOT NULL DEFAULT 0,
		cnt_star INTEGER NOT NULL DEFAULT 0,
		cnt_good INTEGER NOT NULL DEFAULT 0,
		cnt_bad INTEGER NOT NULL DEFAULT 0,
		cnt_comment INTEGER NOT NULL DEFAULT 0,
		cnt_img INTEGER NOT NULL DEFAULT 0,
		isdel CHAR(1) NOT NULL DEFAULT 'N',
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_BOARD_IMG (
		img_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		bo_idx INTEGER NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		file_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE HM_BOARD_COMMENT (
		cmt_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		bo_idx INTEGER NOT NULL,
		mem_idx INTEGER NOT NULL,
		content TEXT NOT NULL,
		cnt_good INTEGER NOT NULL DEFAULT 0,
		cnt_bad INTEGER NOT NULL DEFAULT 0,
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_NOTICE (
		bo_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_idx INTEGER NOT NULL,
		subject VARCHAR(255) NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		cnt_view INTEGER NOT NULL DEFAULT 0,
		isdel CHAR(1) NOT NULL DEFAULT 'N',
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_NOTICE_IMG (
		img_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		bo_idx INTEGER NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		file_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE HM_BOARD_FRAUD (
		bof_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_idx INTEGER NOT NULL,
		bof_type VARCHAR(20) NOT NULL DEFAULT '',
		gd_name VARCHAR(255) NOT NULL,
		damage_dt VARCHAR(10) NOT NULL DEFAULT '',
		damage_type VARCHAR(20) NOT NULL DEFAULT '',
		damage_amount INTEGER NOT NULL DEFAULT 0,
		msg_type VARCHAR(20),
		msg_id VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(100),
		hp VARCHAR(20) NOT NULL DEFAULT '',
		url VARCHAR(255) NOT NULL DEFAULT '',
		account_num VARCHAR(50) NOT NULL DEFAULT '',
		account_bank VARCHAR(50) NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		cnt_view INTEGER NOT NULL DEFAULT 0,
		cnt_img INTEGER NOT NULL DEFAULT 0,
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_BOARD_FRAUD_IMG (
		img_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		bof_idx INTEGER NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		file_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE HM_GOODS (
		gd_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_idx INTEGER NOT NULL,
		gd_name VARCHAR(255) NOT NULL,
		gd_status VARCHAR(20) NOT NULL DEFAULT '',
		brand_str VARCHAR(100) NOT NULL DEFAULT '',
		price INTEGER NOT NULL DEFAULT 0,
		buy_price INTEGER,
		condition_goods VARCHAR(50) NOT NULL DEFAULT '',
		component VARCHAR(255) NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		cnt_view INTEGER NOT NULL DEFAULT 0,
		cnt_img INTEGER NOT NULL DEFAULT 0,
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_GOODS_IMG (
		img_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		gd_idx INTEGER NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		file_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE HM_BOARD_REPORT (
		rep_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_idx INTEGER NOT NULL,
		bo_idx INTEGER NOT NULL,
		content TEXT NOT NULL,
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_MEMBER_REPORT (
		rep_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_idx INTEGER NOT NULL,
		gd_idx INTEGER NOT NULL,
		content TEXT NOT NULL,
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_MEMBER_QNA (
		meq_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		mem_idx INTEGER NOT NULL,
		qtype VARCHAR(20),
		reason VARCHAR(255),
		isadult CHAR(1),
		tmem_idx INTEGER,
		subject VARCHAR(255) NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		rsubject VARCHAR(255) NOT NULL DEFAULT '',
		rcontent TEXT NOT NULL DEFAULT '',
		rdt DATETIME,
		vdt DATETIME,
		cnt_img INTEGER NOT NULL DEFAULT 0,
		cnt_view INTEGER NOT NULL DEFAULT 0,
		isview CHAR(1) NOT NULL DEFAULT 'N',
		isresponse CHAR(1) NOT NULL DEFAULT 'N',
		regdt DATETIME NOT NULL
	)`,
	`CREATE TABLE HM_MEMBER_QNA_IMG (
		img_idx INTEGER PRIMARY KEY AUTOINCREMENT,
		meq_idx INTEGER NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		file_url VARCHAR(255) NOT NULL
	)`,
}

// NewDB opens an in-memory SQLite database holding the admin schema.
// A single connection keeps every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}
	return db
}

// Exec runs a fixture statement and fails the test on error
func Exec(t *testing.T, db *gorm.DB, sql string, args ...interface{}) {
	t.Helper()
	if err := db.Exec(sql, args...).Error; err != nil {
		t.Fatalf("fixture %q: %v", sql, err)
	}
}

// InsertMember inserts an active member registered at regdt (YYYY-MM-DD HH:MM:SS) and returns its mem_idx
func InsertMember(t *testing.T, db *gorm.DB, memID, nick, regdt string) int64 {
	t.Helper()
	Exec(t, db, "INSERT INTO HM_MEMBER (mem_id, mem_nick, regdt) VALUES (?, ?, ?)", memID, nick, regdt)
	var id int64
	if err := db.Raw("SELECT mem_idx FROM HM_MEMBER WHERE mem_id = ?", memID).Scan(&id).Error; err != nil {
		t.Fatalf("failed to read mem_idx: %v", err)
	}
	return id
}
