package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/entity"
)

func newTestClient(handler http.Handler) (IBackendClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewBackendClient(srv.URL, 5*time.Second), srv
}

func TestRequestErrorCarriesBodyText(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer srv.Close()

	err := client.Vote(context.Background(), &dto.VoteRequest{
		TargetType: entity.TargetQuestion,
		TargetId:   1,
		Delta:      1,
	})
	require.Error(t, err)

	reqErr, ok := err.(*RequestError)
	require.True(t, ok, "expected *RequestError, got %T", err)
	assert.Equal(t, "bad request", reqErr.Message)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
}

func TestRequestErrorFallsBackToStatusCode(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := client.Question(context.Background(), 42)
	require.Error(t, err)

	reqErr, ok := err.(*RequestError)
	require.True(t, ok)
	assert.Equal(t, "404", reqErr.Message)
}

func TestContentTypeHeaderOnlyWithBody(t *testing.T) {
	var gotPost, gotGet string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/flag":
			gotPost = r.Header.Get("Content-Type")
			w.Write([]byte("{}"))
		case "/api/questions":
			gotGet = r.Header.Get("Content-Type")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
		}
	}))
	defer srv.Close()

	require.NoError(t, client.Flag(context.Background(), &dto.FlagRequest{
		TargetType: entity.TargetAnswer,
		TargetId:   7,
	}))
	_, err := client.RecentQuestions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotPost)
	assert.Empty(t, gotGet)
}

func TestTopQuestionsDecoded(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/top-questions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Why is the sky blue?","body":"...","upvotes":3,"downvotes":1}]`))
	}))
	defer srv.Close()

	questions, err := client.TopQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].Id)
	assert.Equal(t, "Why is the sky blue?", questions[0].Title)
	assert.Equal(t, 3, questions[0].Upvotes)
}

func TestQuestionDetailDecoded(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/questions/5", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"question": {"id":5,"title":"t","body":"b"},
			"answers": [{"id":9,"question_id":5,"user_id":2,"role":"mentor","body":"a","created_at":1700000000.5}]
		}`))
	}))
	defer srv.Close()

	detail, err := client.Question(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, detail.Question.Id)
	require.Len(t, detail.Answers, 1)
	assert.Equal(t, entity.AnswerRoleMentor, detail.Answers[0].Role)
}

func TestUnexpectedContentTypeOnTypedResponse(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := client.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.Error(t, err)
}
