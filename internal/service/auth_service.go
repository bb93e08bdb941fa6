package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/gateway"
	"classroom-portal-fe/internal/pkg/logger"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) error
}

type authService struct {
	backend  gateway.IBackendClient
	validate *validator.Validate
	logger   logger.ILogger
}

func NewAuthService(backend gateway.IBackendClient, validate *validator.Validate, sysLogger logger.ILogger) IAuthService {
	return &authService{
		backend:  backend,
		validate: validate,
		logger:   sysLogger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	res, err := s.backend.Login(ctx, req)
	if err != nil {
		s.logger.Warn("auth_service", "login failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}
	return res, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	if err := s.backend.Register(ctx, req); err != nil {
		s.logger.Warn("auth_service", "registration failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		return err
	}
	return nil
}
