package events

import "time"

// Event type codes published on the audit topic.
const (
	TypeOrganizationCreated = "ORGANIZATION_CREATED"
	TypePostSaved           = "POST_SAVED"
	TypeGenerationFailed    = "GENERATION_FAILED"
)

// AuditTopic is the in-process topic the audit consumer subscribes to.
const AuditTopic = "content_audit"

func NewOrganizationCreated(orgID uint, name string) Event {
	return BaseEvent{
		Type: TypeOrganizationCreated,
		Data: map[string]interface{}{
			"org_id": orgID,
			"name":   name,
		},
		OccurredAt: time.Now(),
	}
}

func NewPostSaved(postID, orgID uint, postType string) Event {
	return BaseEvent{
		Type: TypePostSaved,
		Data: map[string]interface{}{
			"post_id":   postID,
			"org_id":    orgID,
			"post_type": postType,
		},
		OccurredAt: time.Now(),
	}
}

func NewGenerationFailed(conversationID, kind, reason string) Event {
	return BaseEvent{
		Type: TypeGenerationFailed,
		Data: map[string]interface{}{
			"conversation_id": conversationID,
			"kind":            kind,
			"reason":          reason,
		},
		OccurredAt: time.Now(),
	}
}
