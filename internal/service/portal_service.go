package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/entity"
	"classroom-portal-fe/internal/gateway"
	"classroom-portal-fe/internal/mapper"
	"classroom-portal-fe/internal/pkg/logger"
	"classroom-portal-fe/internal/session"
)

// IPortalService backs the portal page: the top/recent question lists, the
// ask form and the per-card vote/flag commands.
type IPortalService interface {
	LoadLists(ctx context.Context) (top, recent []dto.QuestionCard)
	PostQuestion(ctx context.Context, sess session.Session, req *dto.AskRequest) error
	Vote(ctx context.Context, req *dto.VoteRequest) error
	Flag(ctx context.Context, req *dto.FlagRequest) error
	ReconcileBy() ReconcileStrategy
}

type portalService struct {
	backend  gateway.IBackendClient
	mapper   *mapper.QuestionMapper
	validate *validator.Validate
	logger   logger.ILogger
}

func NewPortalService(backend gateway.IBackendClient, questionMapper *mapper.QuestionMapper, validate *validator.Validate, sysLogger logger.ILogger) IPortalService {
	return &portalService{
		backend:  backend,
		mapper:   questionMapper,
		validate: validate,
		logger:   sysLogger,
	}
}

// LoadLists fetches the top and recent question lists concurrently. The pair
// is all-or-nothing: if either fetch fails, the failure is logged and both
// lists come back empty. This path is deliberately silent to the user.
func (s *portalService) LoadLists(ctx context.Context) (top, recent []dto.QuestionCard) {
	var (
		topQuestions, recentQuestions []entity.Question
		topErr, recentErr             error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		recentQuestions, recentErr = s.backend.RecentQuestions(ctx)
	}()
	topQuestions, topErr = s.backend.TopQuestions(ctx)
	<-done

	if topErr != nil || recentErr != nil {
		s.logger.Error("portal_service", "list load failed", map[string]interface{}{
			"top_error":    errString(topErr),
			"recent_error": errString(recentErr),
		})
		return nil, nil
	}

	return s.mapper.ToCards(topQuestions), s.mapper.ToCards(recentQuestions)
}

func (s *portalService) PostQuestion(ctx context.Context, sess session.Session, req *dto.AskRequest) error {
	if !sess.SignedIn() {
		return ErrNotLoggedIn
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return ErrTitleRequired
	}
	req.UserId = sess.UserId
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	if err := s.backend.Ask(ctx, req); err != nil {
		s.logger.Warn("portal_service", "post question failed", map[string]interface{}{
			"user_id": sess.UserId,
			"error":   err.Error(),
		})
		return err
	}
	return nil
}

func (s *portalService) Vote(ctx context.Context, req *dto.VoteRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	if err := s.backend.Vote(ctx, req); err != nil {
		s.logger.Warn("portal_service", "vote failed", map[string]interface{}{
			"target_type": req.TargetType,
			"target_id":   req.TargetId,
			"error":       err.Error(),
		})
		return err
	}
	return nil
}

func (s *portalService) Flag(ctx context.Context, req *dto.FlagRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	if err := s.backend.Flag(ctx, req); err != nil {
		s.logger.Warn("portal_service", "flag failed", map[string]interface{}{
			"target_type": req.TargetType,
			"target_id":   req.TargetId,
			"error":       err.Error(),
		})
		return err
	}
	return nil
}

func (s *portalService) ReconcileBy() ReconcileStrategy {
	return ReconcileFullReload
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
