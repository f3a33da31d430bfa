package model

import "time"

type Organization struct {
	Id          uint      `gorm:"column:nko_id;primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Organization) TableName() string {
	return "nko_info"
}
