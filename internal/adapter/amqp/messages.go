package amqp

import (
	"encoding/json"
	"time"
)

// Recipient kinds understood by the notification consumer.
const (
	RecipientKindUser = "user"
	RecipientKindRole = "role"
)

// NotificationMessage is the payload published for the notification
// collaborator. Recipient is an employee ID for kind "user" and a role name
// for kind "role"; storage and delivery happen downstream.
type NotificationMessage struct {
	RecipientKind string    `json:"recipient_kind"`
	Recipient     string    `json:"recipient"`
	Message       string    `json:"message"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewUserNotification builds a message addressed to a single employee.
func NewUserNotification(employeeID, message string) *NotificationMessage {
	return &NotificationMessage{
		RecipientKind: RecipientKindUser,
		Recipient:     employeeID,
		Message:       message,
		OccurredAt:    time.Now().UTC(),
	}
}

// NewRoleNotification builds a message addressed to everyone with a role.
func NewRoleNotification(role, message string) *NotificationMessage {
	return &NotificationMessage{
		RecipientKind: RecipientKindRole,
		Recipient:     role,
		Message:       message,
		OccurredAt:    time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON creates a message from JSON bytes.
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
