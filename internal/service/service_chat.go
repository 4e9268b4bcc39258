package service

import (
	"context"
	"fmt"

	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/store"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/samber/lo"
)

// chatService is the concrete implementation of ChatService over the
// shared append-only chat log.
type chatService struct {
	// messageRepository is the data-access layer backing the chat log.
	messageRepository store.MessageRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewChatService constructs a ChatService wired to the given message
// repository.
func NewChatService(messageRepository store.MessageRepository, logger *logger.Logger) ChatService {
	return &chatService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// PostMessage appends one message authored by the given member.
//
// The text is required and limited to 1000 characters; longer input is
// rejected with a [*ValidationError], never truncated. The author summary
// is assembled from the caller's identity, saving a join on the write
// path.
func (c *chatService) PostMessage(ctx context.Context, author models.Member, req models.PostMessageRequest) (models.ChatMessageResponse, error) {
	log := logger.FromContext(ctx)

	if err := validateStruct(req); err != nil {
		log.Error().Err(err).Int64("author_id", author.MemberID).Msg("invalid message data")
		return models.ChatMessageResponse{}, err
	}

	message, err := c.messageRepository.CreateMessage(ctx, author.MemberID, req.Text)
	if err != nil {
		log.Err(err).Int64("author_id", author.MemberID).Msg("message creation ended with error")
		return models.ChatMessageResponse{}, fmt.Errorf("message creation ended with error: %w", err)
	}

	message.Author = author.BriefView()

	return message.PublicView(), nil
}

// ListMessages returns the requested slice of the chat log, oldest first.
// Offset and limit are assumed already validated by the transport layer;
// a negative limit returns everything after the offset.
func (c *chatService) ListMessages(ctx context.Context, offset, limit int64) ([]models.ChatMessageResponse, error) {
	log := logger.FromContext(ctx)

	messages, err := c.messageRepository.ListMessages(ctx, offset, limit)
	if err != nil {
		log.Err(err).Int64("offset", offset).Int64("limit", limit).Msg("message listing ended with error")
		return nil, fmt.Errorf("message listing ended with error: %w", err)
	}

	return lo.Map(messages, func(message models.ChatMessage, _ int) models.ChatMessageResponse {
		return message.PublicView()
	}), nil
}
