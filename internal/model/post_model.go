package model

import "time"

type Post struct {
	Id          uint      `gorm:"column:post_id;primaryKey;autoIncrement"`
	OrgId       uint      `gorm:"column:nko_id;not null;index"`
	PostType    string    `gorm:"type:varchar(32);not null"`
	Content     string    `gorm:"type:text;not null"`
	Goal        string    `gorm:"type:varchar(255)"`
	Audience    string    `gorm:"type:varchar(255)"`
	Tone        string    `gorm:"type:varchar(255)"`
	Details     string    `gorm:"type:text"`
	CTA         string    `gorm:"column:cta;type:text"`
	Nuances     string    `gorm:"type:text"`
	ImagePrompt string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Post) TableName() string {
	return "posts"
}
