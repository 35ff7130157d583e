package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/domain/entity"
)

func TestCreateSendsTokenAndDecodesResponse(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/notes", r.URL.Path)

		var rec entity.NoteRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		rec.ID = "srv-1"
		createdAt := int64(1700000000000)
		rec.CreatedAt = &createdAt

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&rec)
	}))
	defer srv.Close()

	gw := NewHTTP(srv.URL, StaticToken("tok-123"))
	draft := entity.NewNote("local-1").Record()

	created, err := gw.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "srv-1", created.ID)
	require.NotNil(t, created.CreatedAt)
}

func TestStatusCodesMapToErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusUnauthorized, KindPermission},
		{http.StatusForbidden, KindPermission},
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadRequest, KindInvalid},
		{http.StatusInternalServerError, KindNetwork},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
		}))

		err := NewHTTP(srv.URL, nil).Delete(context.Background(), "x")
		srv.Close()

		var gerr *GatewayError
		require.ErrorAs(t, err, &gerr, "status %d", tc.status)
		assert.Equal(t, tc.kind, gerr.Kind, "status %d", tc.status)
		assert.Equal(t, tc.status, gerr.Status)
		assert.Equal(t, "nope", gerr.Message)
	}
}

func TestTransportFailureIsNetworkKind(t *testing.T) {
	gw := NewHTTP("http://127.0.0.1:1", nil)

	err := gw.Delete(context.Background(), "x")

	var gerr *GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindNetwork, gerr.Kind)
}

func TestListDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "sub-1", r.URL.Query().Get("user"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"notes": []*entity.NoteRecord{entity.NewNote("a").Record(), entity.NewNote("b").Record()},
		})
	}))
	defer srv.Close()

	recs, err := NewHTTP(srv.URL, nil).List(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
