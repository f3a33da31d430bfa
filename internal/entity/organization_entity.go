package entity

import "time"

// Organization is a registered non-profit the assistant creates content for.
type Organization struct {
	Id          uint
	Name        string
	Description string
	CreatedAt   time.Time
}
