package domain

import (
	"errors"
	"time"
)

var ErrMessageNotFound = errors.New("message not found")

// Message is a customer-to-store message. Reply is filled in by the back
// office; an empty Reply means the message is still open.
type Message struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Subject   string    `json:"subject" bson:"subject"`
	Body      string    `json:"body" bson:"body"`
	Reply     string    `json:"reply,omitempty" bson:"reply,omitempty"`
	RepliedAt time.Time `json:"replied_at,omitempty" bson:"replied_at,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
