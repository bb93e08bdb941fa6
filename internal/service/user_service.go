package service

import (
	"context"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/gateway"
	"classroom-portal-fe/internal/pkg/logger"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId int) (*dto.ProfilePage, error)
}

type userService struct {
	backend gateway.IBackendClient
	logger  logger.ILogger
}

func NewUserService(backend gateway.IBackendClient, sysLogger logger.ILogger) IUserService {
	return &userService{
		backend: backend,
		logger:  sysLogger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId int) (*dto.ProfilePage, error) {
	profile, err := s.backend.Profile(ctx, userId)
	if err != nil {
		s.logger.Warn("user_service", "profile load failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil, err
	}

	questions := make([]dto.ProfileQuestionRow, 0, len(profile.Questions))
	for _, q := range profile.Questions {
		questions = append(questions, dto.ProfileQuestionRow{
			Id:     q.Id,
			Title:  q.Title,
			Flags:  q.Flags,
			Hidden: q.Hidden,
		})
	}

	return &dto.ProfilePage{
		Name:           profile.Name,
		Email:          profile.Email,
		Questions:      questions,
		QuestionsCount: profile.QuestionsCount,
		Answers:        profile.Answers,
		FlagsTotal:     profile.FlagsTotal,
	}, nil
}
