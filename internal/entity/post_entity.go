package entity

import "time"

// Post kinds stored in the post_type column.
const (
	PostTypeExample     = "example"
	PostTypeGenerated   = "generated"
	PostTypeRegenerated = "regenerated"
	PostTypeEdited      = "edited"
	PostTypeAIRefined   = "ai_refined"
	PostTypeImage       = "image"
)

// Post is one saved content artifact, always bound to an organization.
// The questionnaire context travels with the content so saved posts can
// later serve as style references.
type Post struct {
	Id          uint
	OrgId       uint
	PostType    string
	Content     string
	Goal        string
	Audience    string
	Tone        string
	Details     string
	CTA         string
	Nuances     string
	ImagePrompt string
	CreatedAt   time.Time
}
