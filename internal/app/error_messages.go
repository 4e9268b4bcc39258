// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

// Package app contains shared application-layer constants used across the
// chat backend handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded
	// as JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidCredentials is returned on login when the name is unknown
	// or the password is wrong. The two cases are deliberately conflated
	// so the response does not reveal which part failed.
	MsgInvalidCredentials = "invalid name or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotAuthenticated is returned when a protected endpoint is called
	// without credentials.
	MsgNotAuthenticated = "authentication credentials were not provided"

	// MsgMalformedAuthHeader is returned when the Authorization header does
	// not follow the expected format. It names the format but never reveals
	// whether any token value exists.
	MsgMalformedAuthHeader = "invalid Authorization header format, expected 'Token <value>'"

	// MsgAuthHeaderNotText is returned when the Authorization header cannot
	// be decoded as valid text.
	MsgAuthHeaderNotText = "invalid Authorization header encoding"

	// MsgMissingToken is returned when the Token scheme is present but the
	// token value itself is empty.
	MsgMissingToken = "authentication token was not provided"

	// MsgInvalidToken is returned when the presented token does not resolve
	// to any member.
	MsgInvalidToken = "invalid token"

	// MsgNameTaken is returned when a registration or profile update is
	// rejected because the requested name is already in use.
	MsgNameTaken = "a member with this name already exists"

	// MsgEmptyUpdate is returned when a profile update supplies neither a
	// name nor a password.
	MsgEmptyUpdate = "at least one of name or password must be provided"

	// MsgOffsetParam is returned when the offset pagination parameter is
	// negative or not an integer.
	MsgOffsetParam = "offset must be a non-negative integer"

	// MsgLimitParam is returned when the limit pagination parameter is
	// zero, negative, or not an integer.
	MsgLimitParam = "limit must be a positive integer"
)
