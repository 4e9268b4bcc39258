package models

import "time"

// Read-only projection types assembled by the service layer for outward
// serialization. They contain no credential-related fields by
// construction, so a password hash cannot leak through any code path.

// MemberResponse is the public view of a member record.
type MemberResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberBrief is the short member view nested inside chat messages.
type MemberBrief struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TokenResponse is returned by the register and login endpoints.
// It carries the opaque token value together with the public member view.
type TokenResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}

// ChatMessageResponse is the outward view of a chat message with the
// nested author summary.
type ChatMessageResponse struct {
	ID        int64       `json:"id"`
	Author    MemberBrief `json:"author"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}

// ErrorResponse is the uniform error body of the API.
//
// Detail carries a human-readable message. FieldErrors maps a request
// field to a single message string, never a list; when several
// validators fail for one field, the first one wins.
type ErrorResponse struct {
	Detail      string            `json:"detail,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// PublicView projects a Member into its outward representation.
func (m Member) PublicView() MemberResponse {
	return MemberResponse{
		ID:        m.MemberID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// BriefView projects a Member into the short nested representation.
func (m Member) BriefView() MemberBrief {
	return MemberBrief{
		ID:   m.MemberID,
		Name: m.Name,
	}
}

// PublicView projects a ChatMessage into its outward representation.
func (m ChatMessage) PublicView() ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.MessageID,
		Author:    m.Author,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
