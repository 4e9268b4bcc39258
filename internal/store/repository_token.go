package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It manages opaque bearer tokens in the "auth_tokens"
// table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// FindTokenByKey resolves a presented token key to its record and owning
// member in one joined query, so the auth middleware needs a single
// round-trip per request.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTokenNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *tokenRepository) FindTokenByKey(ctx context.Context, key string) (models.AuthToken, models.Member, error) {
	log := logger.FromContext(ctx)

	var token models.AuthToken
	var member models.Member
	row := r.db.QueryRowContext(ctx, findTokenByKey, key)

	// scan token and its owner from db
	if err := row.Scan(
		&token.TokenID, &token.Key, &token.MemberID, &token.CreatedAt,
		&member.MemberID, &member.Name, &member.PasswordHash, &member.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthToken{}, models.Member{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindTokenByKey").Msg("error: scanning error")
		return models.AuthToken{}, models.Member{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, member, nil
}

// GetOrCreateToken returns the member's most recent token, inserting a new
// one with candidateKey only when the member has none.
//
// The whole get-or-insert runs in a transaction holding
// pg_advisory_xact_lock(memberID), so two concurrent calls for the same
// member serialize: the loser reads back the winner's freshly inserted
// token instead of creating a second one.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, memberID int64, candidateKey string) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("failed to begin transaction")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// serialize concurrent attempts for this member
	if _, err = tx.ExecContext(ctx, acquireMemberTokenLock, memberID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("failed to acquire advisory lock")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var token models.AuthToken
	row := tx.QueryRowContext(ctx, findLatestTokenForMember, memberID)
	err = row.Scan(&token.TokenID, &token.Key, &token.MemberID, &token.CreatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error: scanning error")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// no existing token - mint one with the candidate key
	if errors.Is(err, sql.ErrNoRows) {
		row = tx.QueryRowContext(ctx, createToken, candidateKey, memberID)
		if err = row.Scan(&token.TokenID, &token.Key, &token.MemberID, &token.CreatedAt); err != nil {
			log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error creating token")
			return models.AuthToken{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*tokenRepository.GetOrCreateToken").Msg("failed to commit transaction")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return token, nil
}

// DeleteTokenByID removes exactly one token record. A token that is already
// gone is not an error: logout is idempotent at the storage level.
func (r *tokenRepository) DeleteTokenByID(ctx context.Context, tokenID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteTokenByID, tokenID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteTokenByID").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
