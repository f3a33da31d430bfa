package store

// Step identifies a position in the wizard's fixed state graph.
type Step string

const (
	StepIdle           Step = "IDLE"
	StepMainMenu       Step = "MAIN_MENU"
	StepOrgList        Step = "ORG_LIST"
	StepOrgSelect      Step = "ORG_SELECT"
	StepOrgSelectSave  Step = "ORG_SELECT_SAVE"
	StepOrgName        Step = "ORG_NAME"
	StepOrgDescription Step = "ORG_DESCRIPTION"
	StepOrgExamples    Step = "ORG_EXAMPLES"
	StepTaskType       Step = "TASK_TYPE"
	StepSocialNetwork  Step = "SOCIAL_NETWORK"
	StepGoal           Step = "GOAL"
	StepEventDate      Step = "EVENT_DATE"
	StepAudience       Step = "AUDIENCE"
	StepTone           Step = "TONE"
	StepDetails        Step = "DETAILS"
	StepCTA            Step = "CTA"
	StepNuances        Step = "NUANCES"
	StepReview         Step = "REVIEW"
	StepEditing        Step = "EDITING"
	StepEditReview     Step = "EDIT_REVIEW"
	StepImageAttach    Step = "IMAGE_ATTACH"
	StepPostForImage   Step = "POST_FOR_IMAGE"
	StepImageDesc      Step = "IMAGE_DESCRIPTION"
	StepImageStyle     Step = "IMAGE_STYLE"
	StepImageColors    Step = "IMAGE_COLORS"
	StepImagePrompt    Step = "IMAGE_PROMPT"
	StepImageEdit      Step = "IMAGE_PROMPT_EDIT"
	StepImageReview    Step = "IMAGE_REVIEW"
)

// Answers accumulates questionnaire fields for one conversation.
// A missing key means the step was never reached; a key holding nil
// means the operator explicitly skipped it. The prompt compiler
// branches on that distinction.
type Answers map[string]*string

// Answer field names.
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldExamples      = "examples"
	FieldSocialNetwork = "social_network"
	FieldTaskType      = "task_type"
	FieldGoal          = "goal"
	FieldEventDate     = "event_date"
	FieldAudience      = "audience"
	FieldTone          = "tone"
	FieldDetails       = "details"
	FieldCTA           = "cta"
	FieldNuances       = "nuances"
	FieldImageAttach   = "image_for_post"
	FieldPostForImage  = "post_for_image"
	FieldImageDesc     = "image_description"
	FieldImageStyle    = "image_style"
	FieldImageColors   = "image_color_scheme"
	FieldImagePrompt   = "image_prompt"
	FieldImageDisplay  = "image_prompt_display"
	FieldGeneratedText = "generated_text"
	FieldEditedText    = "edited_text"
	FieldArtifactKind  = "artifact_kind"
	FieldPendingSave   = "pending_save"
)

func (a Answers) Set(field, value string) {
	a[field] = &value
}

// Skip records an explicit null for the field.
func (a Answers) Skip(field string) {
	a[field] = nil
}

// Get returns the collected value, or "" when absent or skipped.
func (a Answers) Get(field string) string {
	if v, ok := a[field]; ok && v != nil {
		return *v
	}
	return ""
}

// Has reports whether the field holds a real (non-skipped) value.
func (a Answers) Has(field string) bool {
	v, ok := a[field]
	return ok && v != nil
}

// Skipped reports whether the operator explicitly skipped the field.
func (a Answers) Skipped(field string) bool {
	v, ok := a[field]
	return ok && v == nil
}

// Session is the mutable per-conversation record of wizard progress.
// Exactly one session exists per conversation; it lives in memory only.
type Session struct {
	ConversationID string  `json:"conversation_id"`
	Step           Step    `json:"step"`
	Answers        Answers `json:"answers"`
	SelectedOrgID  *uint   `json:"selected_org_id"`
}

// NewSession creates a fresh session positioned at the idle step.
func NewSession(conversationID string) *Session {
	return &Session{
		ConversationID: conversationID,
		Step:           StepIdle,
		Answers:        Answers{},
	}
}

// Reset clears accumulated answers and the organization binding.
func (s *Session) Reset() {
	s.Answers = Answers{}
	s.SelectedOrgID = nil
	s.Step = StepIdle
}
