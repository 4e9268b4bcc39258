package models

import "time"

// ChatMessage is a single immutable message in the shared group chat.
//
// Messages form an append-only log with a stable total order:
// (CreatedAt, MessageID). MessageID is a monotonically increasing
// insertion sequence number assigned by the database, so pagination is
// deterministic even for messages created within the same timestamp.
type ChatMessage struct {
	// MessageID is the insertion sequence number of the message.
	MessageID int64 `json:"id"`

	// MemberID is the author of the message.
	MemberID int64 `json:"-"`

	// Text is the message body. At most 1000 characters.
	Text string `json:"text"`

	// CreatedAt is the timestamp when the message was appended.
	CreatedAt time.Time `json:"created_at"`

	// Author carries the public fields of the authoring member,
	// populated by the store on reads that join the members table.
	Author MemberBrief `json:"author"`
}

// TableName returns the name of the database table
// associated with the ChatMessage model.
func (m ChatMessage) TableName() string {
	return "chat_messages"
}
