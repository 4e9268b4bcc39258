package store

import "github.com/asemenov/go-chat-backend/internal/logger"

// Storages bundles all repository implementations behind one struct so the
// service layer receives a single dependency.
type Storages struct {
	MemberRepository  MemberRepository
	TokenRepository   TokenRepository
	MessageRepository MessageRepository
}

// NewStorages constructs all PostgreSQL-backed repositories over one shared
// database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		MemberRepository:  NewMemberRepository(db, logger),
		TokenRepository:   NewTokenRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}
}
