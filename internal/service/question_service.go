package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/gateway"
	"classroom-portal-fe/internal/mapper"
	"classroom-portal-fe/internal/pkg/logger"
	"classroom-portal-fe/internal/session"
)

const noAiAnswerPlaceholder = "No AI answer available."

// IQuestionService backs the question detail page: one question, its answer
// list partitioned by role, and the post/vote/flag commands. Every mutation
// is followed by a full reload of the detail view.
type IQuestionService interface {
	LoadQuestion(ctx context.Context, id int) (*dto.DetailPage, error)
	PostAnswer(ctx context.Context, sess session.Session, req *dto.AnswerRequest) error
	Vote(ctx context.Context, req *dto.VoteRequest) error
	Flag(ctx context.Context, req *dto.FlagRequest) error
	ReconcileBy() ReconcileStrategy
}

type questionService struct {
	backend  gateway.IBackendClient
	mapper   *mapper.AnswerMapper
	validate *validator.Validate
	logger   logger.ILogger
}

func NewQuestionService(backend gateway.IBackendClient, answerMapper *mapper.AnswerMapper, validate *validator.Validate, sysLogger logger.ILogger) IQuestionService {
	return &questionService{
		backend:  backend,
		mapper:   answerMapper,
		validate: validate,
		logger:   sysLogger,
	}
}

func (s *questionService) LoadQuestion(ctx context.Context, id int) (*dto.DetailPage, error) {
	detail, err := s.backend.Question(ctx, id)
	if err != nil {
		s.logger.Error("question_service", "detail load failed", map[string]interface{}{
			"question_id": id,
			"error":       err.Error(),
		})
		return nil, err
	}

	aiAnswer := noAiAnswerPlaceholder
	if ai := s.mapper.FindAiAnswer(detail.Answers); ai != nil {
		aiAnswer = ai.Body
	}

	mentors, students := s.mapper.Partition(detail.Answers)

	return &dto.DetailPage{
		QuestionId: detail.Question.Id,
		Title:      detail.Question.Title,
		Body:       detail.Question.Body,
		AiAnswer:   aiAnswer,
		Mentors:    mentors,
		Students:   students,
	}, nil
}

// PostAnswer forwards the answer command. There is intentionally no signed-in
// gate here: the backend owns that decision, the frontend just passes the
// session's user id along.
func (s *questionService) PostAnswer(ctx context.Context, sess session.Session, req *dto.AnswerRequest) error {
	req.Body = strings.TrimSpace(req.Body)
	if req.Body == "" {
		return ErrAnswerRequired
	}
	req.UserId = sess.UserId
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	if err := s.backend.Answer(ctx, req); err != nil {
		s.logger.Warn("question_service", "post answer failed", map[string]interface{}{
			"question_id": req.QuestionId,
			"user_id":     sess.UserId,
			"error":       err.Error(),
		})
		return err
	}
	return nil
}

func (s *questionService) Vote(ctx context.Context, req *dto.VoteRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	if err := s.backend.Vote(ctx, req); err != nil {
		s.logger.Warn("question_service", "vote failed", map[string]interface{}{
			"target_type": req.TargetType,
			"target_id":   req.TargetId,
			"error":       err.Error(),
		})
		return err
	}
	return nil
}

func (s *questionService) Flag(ctx context.Context, req *dto.FlagRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	if err := s.backend.Flag(ctx, req); err != nil {
		s.logger.Warn("question_service", "flag failed", map[string]interface{}{
			"target_type": req.TargetType,
			"target_id":   req.TargetId,
			"error":       err.Error(),
		})
		return err
	}
	return nil
}

func (s *questionService) ReconcileBy() ReconcileStrategy {
	return ReconcileFullReload
}
