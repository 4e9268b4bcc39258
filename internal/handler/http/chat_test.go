package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asemenov/go-chat-backend/internal/app"
	"github.com/asemenov/go-chat-backend/internal/service"
	"github.com/asemenov/go-chat-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// postMessage
// ─────────────────────────────────────────────

func TestPostMessage_Success(t *testing.T) {
	member := models.Member{MemberID: 1, Name: "alice"}
	chat := &mockChatService{
		postMessageFn: func(_ context.Context, author models.Member, req models.PostMessageRequest) (models.ChatMessageResponse, error) {
			assert.Equal(t, member, author)
			return models.ChatMessageResponse{
				ID:     5,
				Author: author.BriefView(),
				Text:   req.Text,
			}, nil
		},
	}
	h := newTestHandler(nil, chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", strings.NewReader(`{"text":"hello"}`)).WithContext(identityContext(member))
	rr := httptest.NewRecorder()
	h.postMessage(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.ChatMessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "hello", resp.Text)
	assert.Equal(t, models.MemberBrief{ID: 1, Name: "alice"}, resp.Author)
}

func TestPostMessage_TooLong(t *testing.T) {
	member := models.Member{MemberID: 1, Name: "alice"}
	chat := &mockChatService{
		postMessageFn: func(_ context.Context, _ models.Member, _ models.PostMessageRequest) (models.ChatMessageResponse, error) {
			return models.ChatMessageResponse{}, &service.ValidationError{
				Fields: map[string]string{"text": "ensure this field has at most 1000 characters"},
			}
		},
	}
	h := newTestHandler(nil, chat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", strings.NewReader(`{"text":"way too long"}`)).WithContext(identityContext(member))
	rr := httptest.NewRecorder()
	h.postMessage(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeErrorBody(t, rr).FieldErrors, "text")
}

func TestPostMessage_InvalidJSON(t *testing.T) {
	member := models.Member{MemberID: 1, Name: "alice"}
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", strings.NewReader(`not json`)).WithContext(identityContext(member))
	rr := httptest.NewRecorder()
	h.postMessage(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidJSON, decodeErrorBody(t, rr).Detail)
}

// ─────────────────────────────────────────────
// listMessages pagination parsing
// ─────────────────────────────────────────────

func TestListMessages_PaginationTableTest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantOffset int64
		wantLimit  int64
		wantField  string
	}{
		{
			name:       "no params - all messages",
			query:      "",
			wantStatus: http.StatusOK,
			wantOffset: 0,
			wantLimit:  -1,
		},
		{
			name:       "offset and limit",
			query:      "?offset=10&limit=50",
			wantStatus: http.StatusOK,
			wantOffset: 10,
			wantLimit:  50,
		},
		{
			name:       "offset zero is valid",
			query:      "?offset=0",
			wantStatus: http.StatusOK,
			wantOffset: 0,
			wantLimit:  -1,
		},
		{
			name:       "negative offset",
			query:      "?offset=-1",
			wantStatus: http.StatusBadRequest,
			wantField:  "offset",
		},
		{
			name:       "non-numeric offset",
			query:      "?offset=abc",
			wantStatus: http.StatusBadRequest,
			wantField:  "offset",
		},
		{
			name:       "empty offset is not absent",
			query:      "?offset=",
			wantStatus: http.StatusBadRequest,
			wantField:  "offset",
		},
		{
			name:       "zero limit",
			query:      "?limit=0",
			wantStatus: http.StatusBadRequest,
			wantField:  "limit",
		},
		{
			name:       "negative limit",
			query:      "?limit=-5",
			wantStatus: http.StatusBadRequest,
			wantField:  "limit",
		},
		{
			name:       "non-numeric limit",
			query:      "?limit=ten",
			wantStatus: http.StatusBadRequest,
			wantField:  "limit",
		},
		{
			name:       "empty limit is not absent",
			query:      "?limit=",
			wantStatus: http.StatusBadRequest,
			wantField:  "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOffset, gotLimit int64
			chat := &mockChatService{
				listMessagesFn: func(_ context.Context, offset, limit int64) ([]models.ChatMessageResponse, error) {
					gotOffset, gotLimit = offset, limit
					return []models.ChatMessageResponse{}, nil
				},
			}
			h := newTestHandler(nil, chat)

			req := httptest.NewRequest(http.MethodGet, "/api/chat/messages"+tt.query, nil)
			rr := httptest.NewRecorder()
			h.listMessages(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantOffset, gotOffset)
				assert.Equal(t, tt.wantLimit, gotLimit)
			} else {
				body := decodeErrorBody(t, rr)
				assert.Contains(t, body.FieldErrors, tt.wantField)
				assert.Len(t, body.FieldErrors, 1, "only the offending parameter is reported")
			}
		})
	}
}

func TestListMessages_ReturnsMessages(t *testing.T) {
	chat := &mockChatService{
		listMessagesFn: func(_ context.Context, _, _ int64) ([]models.ChatMessageResponse, error) {
			return []models.ChatMessageResponse{
				{ID: 1, Author: models.MemberBrief{ID: 1, Name: "alice"}, Text: "first"},
				{ID: 2, Author: models.MemberBrief{ID: 2, Name: "bob"}, Text: "second"},
			}, nil
		},
	}
	h := newTestHandler(nil, chat)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/messages", nil)
	rr := httptest.NewRecorder()
	h.listMessages(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []models.ChatMessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "alice", resp[0].Author.Name)
}

func TestListMessages_ServiceError(t *testing.T) {
	chat := &mockChatService{
		listMessagesFn: func(_ context.Context, _, _ int64) ([]models.ChatMessageResponse, error) {
			return nil, assert.AnError
		},
	}
	h := newTestHandler(nil, chat)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/messages", nil)
	rr := httptest.NewRecorder()
	h.listMessages(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
