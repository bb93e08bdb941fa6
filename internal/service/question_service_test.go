package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/entity"
	"classroom-portal-fe/internal/mapper"
	"classroom-portal-fe/internal/session"
)

func newQuestionService(backend *fakeBackend) IQuestionService {
	return NewQuestionService(backend, mapper.NewAnswerMapper(), validator.New(), nopLogger{})
}

func TestLoadQuestionPartitionsAnswers(t *testing.T) {
	backend := &fakeBackend{
		detailFn: func(id int) (*dto.QuestionDetailResponse, error) {
			return &dto.QuestionDetailResponse{
				Question: entity.Question{Id: id, Title: "t", Body: "b"},
				Answers: []entity.Answer{
					{Id: 1, Role: entity.AnswerRoleStudent, UserId: 10},
					{Id: 2, Role: entity.AnswerRoleMentor, UserId: 20},
					{Id: 3, Role: entity.AnswerRoleAi, Body: "the model says"},
					{Id: 4, Role: entity.AnswerRoleStudent, UserId: 11},
				},
			}, nil
		},
	}

	page, err := newQuestionService(backend).LoadQuestion(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, page.QuestionId)
	assert.Equal(t, "the model says", page.AiAnswer)
	require.Len(t, page.Mentors, 1)
	require.Len(t, page.Students, 2)
	assert.Equal(t, 2, page.Mentors[0].Id)
	assert.Equal(t, 1, page.Students[0].Id)
	assert.Equal(t, 4, page.Students[1].Id)
}

func TestLoadQuestionAiPlaceholder(t *testing.T) {
	backend := &fakeBackend{
		detailFn: func(id int) (*dto.QuestionDetailResponse, error) {
			return &dto.QuestionDetailResponse{
				Question: entity.Question{Id: id},
				Answers:  []entity.Answer{{Id: 1, Role: entity.AnswerRoleMentor}},
			}, nil
		},
	}

	page, err := newQuestionService(backend).LoadQuestion(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "No AI answer available.", page.AiAnswer)
}

func TestLoadQuestionSurfacesFailure(t *testing.T) {
	backend := &fakeBackend{
		detailFn: func(id int) (*dto.QuestionDetailResponse, error) {
			return nil, errors.New("not found")
		},
	}

	page, err := newQuestionService(backend).LoadQuestion(context.Background(), 1)

	assert.Nil(t, page)
	assert.EqualError(t, err, "not found")
}

func TestPostAnswerRequiresBody(t *testing.T) {
	backend := &fakeBackend{}
	svc := newQuestionService(backend)

	err := svc.PostAnswer(context.Background(), session.Session{UserId: 2}, &dto.AnswerRequest{
		QuestionId: 1,
		Body:       "   ",
		Role:       entity.AnswerRoleStudent,
	})

	assert.ErrorIs(t, err, ErrAnswerRequired)
	assert.Zero(t, backend.answerCalls)
}

func TestPostAnswerUsesSessionUserWithoutAuthGate(t *testing.T) {
	backend := &fakeBackend{}
	svc := newQuestionService(backend)

	// user id 0 still posts; the backend owns the trust decision
	err := svc.PostAnswer(context.Background(), session.Session{UserId: 0}, &dto.AnswerRequest{
		QuestionId: 1,
		Body:       " an answer ",
		Role:       entity.AnswerRoleMentor,
	})

	require.NoError(t, err)
	require.Equal(t, 1, backend.answerCalls)
	assert.Equal(t, "an answer", backend.lastAnswer.Body)
	assert.Equal(t, 0, backend.lastAnswer.UserId)
}

func TestQuestionReconcilesByFullReload(t *testing.T) {
	assert.Equal(t, ReconcileFullReload, newQuestionService(&fakeBackend{}).ReconcileBy())
}
