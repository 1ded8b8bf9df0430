package entity

import "time"

type Notification struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	SentBy     string    `json:"sentBy"`
	SenderName string    `json:"senderName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
