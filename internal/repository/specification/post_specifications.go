package specification

import "gorm.io/gorm"

// PostsOfOrg filters posts by their owning organization.
type PostsOfOrg struct {
	OrgID uint
}

func (s PostsOfOrg) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("nko_id = ?", s.OrgID)
}

// ByPostType filters posts by kind (example, generated, edited, ...).
type ByPostType struct {
	PostType string
}

func (s ByPostType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("post_type = ?", s.PostType)
}
