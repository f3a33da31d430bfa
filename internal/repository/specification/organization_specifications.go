package specification

import "gorm.io/gorm"

// ByOrgID filters by the nko_info primary key.
type ByOrgID struct {
	OrgID uint
}

func (s ByOrgID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("nko_id = ?", s.OrgID)
}

// ByOrgName filters by exact organization name.
type ByOrgName struct {
	Name string
}

func (s ByOrgName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
