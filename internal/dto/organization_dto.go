package dto

import "time"

type CreateOrganizationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

type CreateOrganizationResponse struct {
	Id uint `json:"id"`
}

type OrganizationResponse struct {
	Id          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type PostResponse struct {
	Id          uint      `json:"id"`
	PostType    string    `json:"post_type"`
	Content     string    `json:"content"`
	Goal        string    `json:"goal,omitempty"`
	ImagePrompt string    `json:"image_prompt,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
