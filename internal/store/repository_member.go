// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/jackc/pgerrcode"
)

// memberRepository is the PostgreSQL-backed implementation of
// [MemberRepository]. It handles member account creation, lookup and
// partial updates against the "members" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type memberRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemberRepository constructs a [MemberRepository] backed by the provided
// database connection and logger.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMemberWithToken persists a new member record together with its first
// auth token inside one transaction: either both records exist afterwards or
// neither does.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the member insert →
//     [ErrNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped in [ErrScanningRow].
func (r *memberRepository) CreateMemberWithToken(ctx context.Context, member models.Member, tokenKey string) (models.Member, models.AuthToken, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.CreateMemberWithToken").Msg("failed to begin transaction")
		return models.Member{}, models.AuthToken{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// create member in db
	row := tx.QueryRowContext(ctx, createMember, member.Name, member.PasswordHash)
	if err = row.Scan(&member.MemberID, &member.Name, &member.PasswordHash, &member.CreatedAt); err != nil {
		log.Err(err).Str("func", "*memberRepository.CreateMemberWithToken").Msg("error creating member")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Member{}, models.AuthToken{}, ErrNameAlreadyExists
		default:
			return models.Member{}, models.AuthToken{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// create member's first token in the same transaction
	var token models.AuthToken
	row = tx.QueryRowContext(ctx, createToken, tokenKey, member.MemberID)
	if err = row.Scan(&token.TokenID, &token.Key, &token.MemberID, &token.CreatedAt); err != nil {
		log.Err(err).Str("func", "*memberRepository.CreateMemberWithToken").Msg("error creating token")
		return models.Member{}, models.AuthToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*memberRepository.CreateMemberWithToken").Msg("failed to commit transaction")
		return models.Member{}, models.AuthToken{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return member, token, nil
}

// FindMemberByName retrieves the member record whose Name matches exactly.
// Name comparison is case-sensitive and bytewise, delegated to the unique
// index on the column.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoMemberFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *memberRepository) FindMemberByName(ctx context.Context, name string) (models.Member, error) {
	log := logger.FromContext(ctx)

	var foundMember models.Member
	row := r.db.QueryRowContext(ctx, findMemberByName, name)

	// scan found member from db
	if err := row.Scan(&foundMember.MemberID, &foundMember.Name, &foundMember.PasswordHash, &foundMember.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Member{}, ErrNoMemberFound
		}
		log.Err(err).Str("func", "*memberRepository.FindMemberByName").Msg("error: scanning error")
		return models.Member{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundMember, nil
}

// UpdateMember applies the non-nil fields of the given update to a member
// record and returns the updated row. The UPDATE statement is built
// dynamically so the member can change name, password, or both in one call.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on a renamed member →
//     [ErrNameAlreadyExists].
//   - [sql.ErrNoRows] (no member with that ID) → [ErrNoMemberFound].
//   - Query construction failure → wrapped in [ErrBuildingSQLQuery].
func (r *memberRepository) UpdateMember(ctx context.Context, update models.MemberUpdate) (models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpdateQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.UpdateMember").Msg("error building update query")
		return models.Member{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedMember models.Member
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan updated member from db
	if err = row.Scan(&updatedMember.MemberID, &updatedMember.Name, &updatedMember.PasswordHash, &updatedMember.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Member{}, ErrNoMemberFound
		}
		log.Err(err).Str("func", "*memberRepository.UpdateMember").Msg("error updating member")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Member{}, ErrNameAlreadyExists
		default:
			return models.Member{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updatedMember, nil
}
