// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/asemenov/go-chat-backend/internal/config"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/store"
	"github.com/asemenov/go-chat-backend/internal/utils"
	"github.com/asemenov/go-chat-backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles member registration, credential verification, and opaque
// token lifecycle using the member and token repositories for
// persistence and bcrypt for password hashing.
type authService struct {
	// memberRepository is the data-access layer used to create, look up
	// and update members.
	memberRepository store.MemberRepository

	// tokenRepository is the data-access layer used to mint, reuse and
	// revoke auth tokens.
	tokenRepository store.TokenRepository

	// bcryptCost is the bcrypt work factor applied when hashing member
	// passwords. Zero selects the library default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(memberRepository store.MemberRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		memberRepository: memberRepository,
		tokenRepository:  tokenRepository,
		bcryptCost:       cfg.BcryptCost,
		logger:           logger,
	}
}

// Authenticate resolves a presented token key to its member and token
// record. Any lookup miss is reported as [store.ErrTokenNotFound] so the
// transport layer can map it to a single "invalid token" rejection.
func (a *authService) Authenticate(ctx context.Context, tokenKey string) (models.Member, models.AuthToken, error) {
	log := logger.FromContext(ctx)

	token, member, err := a.tokenRepository.FindTokenByKey(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return models.Member{}, models.AuthToken{}, store.ErrTokenNotFound
		}
		log.Err(err).Msg("token lookup failed")
		return models.Member{}, models.AuthToken{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return member, token, nil
}

// Register creates a new member account.
//
// It validates the request body, hashes the password with bcrypt, and
// persists the member together with a freshly minted token in one
// transaction. Registration always mints: it never reuses a token, unlike
// Login.
//
// Returns the token plus the public member view or:
//   - [*ValidationError] if a body field fails validation.
//   - [store.ErrNameAlreadyExists] (wrapped) if the name is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := validateStruct(req); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("invalid registration data")
		return models.TokenResponse{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.TokenResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	tokenKey, err := utils.GenerateTokenKey()
	if err != nil {
		log.Err(err).Msg("token key generation failed")
		return models.TokenResponse{}, fmt.Errorf("token key generation failed: %w", err)
	}

	member := models.Member{Name: req.Name, PasswordHash: passwordHash}
	createdMember, token, err := a.memberRepository.CreateMemberWithToken(ctx, member, tokenKey)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("member creation ended with error")
		return models.TokenResponse{}, fmt.Errorf("member creation ended with error: %w", err)
	}

	return models.TokenResponse{
		Token:  token.Key,
		Member: createdMember.PublicView(),
	}, nil
}

// Login authenticates an existing member.
//
// It looks up the account by name and verifies the password against the
// stored bcrypt hash. An unknown name and a wrong password both produce
// the same [ErrInvalidCredentials], so the response does not reveal which
// part failed.
//
// On success the member's token is returned via an atomic get-or-create:
// an existing token is reused, otherwise a new one is minted. Two
// concurrent logins for the same member observably create at most one
// token.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := validateStruct(req); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("invalid login data")
		return models.TokenResponse{}, err
	}

	foundMember, err := a.memberRepository.FindMemberByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrNoMemberFound) {
			return models.TokenResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("name", req.Name).Msg("member search by name failed")
		return models.TokenResponse{}, fmt.Errorf("member search by name failed: %w", err)
	}

	if !utils.VerifyPassword(foundMember.PasswordHash, req.Password) {
		log.Error().Int64("id", foundMember.MemberID).Str("name", foundMember.Name).Msg("wrong password")
		return models.TokenResponse{}, ErrInvalidCredentials
	}

	tokenKey, err := utils.GenerateTokenKey()
	if err != nil {
		log.Err(err).Msg("token key generation failed")
		return models.TokenResponse{}, fmt.Errorf("token key generation failed: %w", err)
	}

	token, err := a.tokenRepository.GetOrCreateToken(ctx, foundMember.MemberID, tokenKey)
	if err != nil {
		log.Err(err).Int64("id", foundMember.MemberID).Msg("token get-or-create failed")
		return models.TokenResponse{}, fmt.Errorf("token get-or-create failed: %w", err)
	}

	return models.TokenResponse{
		Token:  token.Key,
		Member: foundMember.PublicView(),
	}, nil
}

// Logout deletes the token that authenticated the current request. A
// member's other tokens are untouched, and a token that is already gone
// is not an error.
func (a *authService) Logout(ctx context.Context, tokenID int64) error {
	log := logger.FromContext(ctx)

	if err := a.tokenRepository.DeleteTokenByID(ctx, tokenID); err != nil {
		log.Err(err).Int64("token_id", tokenID).Msg("token deletion failed")
		return fmt.Errorf("token deletion failed: %w", err)
	}

	return nil
}

// UpdateProfile applies a partial update to the member's account.
//
// At least one of name and password must be present, otherwise
// [ErrEmptyUpdate] is returned. Present fields are validated with the
// same rules as registration; a present password is re-hashed before
// storage. Absent fields keep their stored value.
func (a *authService) UpdateProfile(ctx context.Context, memberID int64, req models.ProfileUpdateRequest) (models.MemberResponse, error) {
	log := logger.FromContext(ctx)

	if req.Name == nil && req.Password == nil {
		return models.MemberResponse{}, ErrEmptyUpdate
	}

	update := models.MemberUpdate{MemberID: memberID}

	if req.Name != nil {
		if err := validateField("name", *req.Name, "required,max=150"); err != nil {
			log.Error().Err(err).Int64("id", memberID).Msg("invalid profile name")
			return models.MemberResponse{}, err
		}
		update.Name = req.Name
	}

	if req.Password != nil {
		if err := validateField("password", *req.Password, "required,min=6"); err != nil {
			log.Error().Err(err).Int64("id", memberID).Msg("invalid profile password")
			return models.MemberResponse{}, err
		}

		passwordHash, err := utils.HashPassword(*req.Password, a.bcryptCost)
		if err != nil {
			log.Err(err).Int64("id", memberID).Msg("password hashing failed")
			return models.MemberResponse{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &passwordHash
	}

	updatedMember, err := a.memberRepository.UpdateMember(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", memberID).Msg("member update ended with error")
		return models.MemberResponse{}, fmt.Errorf("member update ended with error: %w", err)
	}

	return updatedMember.PublicView(), nil
}
