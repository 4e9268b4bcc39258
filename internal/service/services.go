package service

import (
	"github.com/asemenov/go-chat-backend/internal/config"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/store"
)

type Services struct {
	AuthService AuthService
	ChatService ChatService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.MemberRepository, storages.TokenRepository, cfg, logger),
		ChatService: NewChatService(storages.MessageRepository, logger),
	}
}
