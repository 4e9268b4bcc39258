package models

// Inbound request bodies of the HTTP API. Validation rules are expressed
// as validator tags and enforced by the service layer.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
// Only presence is validated here: length rules apply at registration
// time, and login deliberately reports any mismatch with one
// undifferentiated message.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest is the body of PUT /api/profile. Both fields are
// optional but at least one must be present; absent fields keep their
// stored value.
type ProfileUpdateRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// PostMessageRequest is the body of POST /api/chat/messages.
type PostMessageRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}
