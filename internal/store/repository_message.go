// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package store

import (
	"context"
	"fmt"

	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/models"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. The "chat_messages" table is an append-only log;
// message_id is a serial column and doubles as the insertion sequence
// number that makes pagination deterministic.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage appends one message to the shared chat log and returns the
// stored row with server-assigned fields (MessageID, CreatedAt). The Author
// field is left empty; callers that already know the author fill it in.
func (r *messageRepository) CreateMessage(ctx context.Context, memberID int64, text string) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	var message models.ChatMessage
	row := r.db.QueryRowContext(ctx, createMessage, memberID, text)

	// scan saved message from db
	if err := row.Scan(&message.MessageID, &message.MemberID, &message.Text, &message.CreatedAt); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error creating message")
		return models.ChatMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return message, nil
}

// ListMessages returns messages ordered oldest first by
// (created_at, message_id), skipping offset rows and returning at most
// limit rows. A negative limit returns everything after the offset.
// Each returned message carries its author's public fields via a join
// with the members table.
func (r *messageRepository) ListMessages(ctx context.Context, offset, limit int64) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListQuery(offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var message models.ChatMessage
		if err = rows.Scan(
			&message.MessageID, &message.MemberID, &message.Text, &message.CreatedAt,
			&message.Author.ID, &message.Author.Name,
		); err != nil {
			log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
