package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/asemenov/go-chat-backend/models"
)

const (
	createMember = `INSERT INTO members (name, password_hash)
    VALUES ($1, $2)
    RETURNING member_id, name, password_hash, created_at;`

	findMemberByName = `SELECT member_id, name, password_hash, created_at
    FROM members
    WHERE name = $1;`

	createToken = `INSERT INTO auth_tokens (key, member_id)
    VALUES ($1, $2)
    RETURNING token_id, key, member_id, created_at;`

	findTokenByKey = `SELECT t.token_id, t.key, t.member_id, t.created_at,
        m.member_id, m.name, m.password_hash, m.created_at
    FROM auth_tokens t
    JOIN members m ON m.member_id = t.member_id
    WHERE t.key = $1;`

	findLatestTokenForMember = `SELECT token_id, key, member_id, created_at
    FROM auth_tokens
    WHERE member_id = $1
    ORDER BY created_at DESC, token_id DESC
    LIMIT 1;`

	deleteTokenByID = `DELETE FROM auth_tokens
    WHERE token_id = $1;`

	// serializes concurrent get-or-create attempts for one member within
	// the surrounding transaction
	acquireMemberTokenLock = `SELECT pg_advisory_xact_lock($1);`

	createMessage = `INSERT INTO chat_messages (member_id, text)
    VALUES ($1, $2)
    RETURNING message_id, member_id, text, created_at;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateQuery dynamically builds UPDATE query for the provided
// non-nil fields of the update
func (m *memberRepository) buildUpdateQuery(update models.MemberUpdate) (string, []any, error) {
	builder := psql.Update(models.Member{}.TableName())

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	return builder.
		Where(sq.Eq{"member_id": update.MemberID}).
		Suffix("RETURNING member_id, name, password_hash, created_at").
		ToSql()
}

// buildListQuery builds paginated SELECT over chat messages joined with
// their authors. A negative limit means no LIMIT clause.
func (m *messageRepository) buildListQuery(offset, limit int64) (string, []any, error) {
	builder := psql.
		Select(
			"c.message_id", "c.member_id", "c.text", "c.created_at",
			"m.member_id", "m.name",
		).
		From("chat_messages c").
		Join("members m ON m.member_id = c.member_id").
		OrderBy("c.created_at", "c.message_id").
		Offset(uint64(offset))

	if limit >= 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}
