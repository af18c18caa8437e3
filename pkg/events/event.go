// Package events defines the in-process domain events published over the
// watermill pubsub.
package events

import "time"

// Topic names.
const (
	TopicQualificationCompleted = "QUALIFICATION_COMPLETED"
)

// QualificationCompleted is emitted when a session answers its final step.
// The consumer persists it as a support follow-up record.
type QualificationCompleted struct {
	SessionId             string    `json:"session_id"`
	Category              string    `json:"category"`
	Language              string    `json:"language"`
	Contraindications     []string  `json:"contraindications"`
	RequiredTags          []string  `json:"required_tags"`
	DesiredTags           []string  `json:"desired_tags"`
	RecommendedProductIds []string  `json:"recommended_product_ids"`
	CompletedAt           time.Time `json:"completed_at"`
}
