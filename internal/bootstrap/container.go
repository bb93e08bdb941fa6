package bootstrap

import (
	"github.com/go-playground/validator/v10"

	"classroom-portal-fe/internal/config"
	"classroom-portal-fe/internal/controller"
	"classroom-portal-fe/internal/gateway"
	"classroom-portal-fe/internal/mapper"
	"classroom-portal-fe/internal/pkg/logger"
	"classroom-portal-fe/internal/service"
	"classroom-portal-fe/internal/web"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	PortalController   controller.IPortalController
	QuestionController controller.IQuestionController
	UserController     controller.IUserController

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	validate := validator.New()
	renderer := web.NewRenderer()

	// 2. Backend Gateway
	backend := gateway.NewBackendClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout)

	// 3. Mappers
	questionMapper := mapper.NewQuestionMapper()
	answerMapper := mapper.NewAnswerMapper()

	// 4. Services
	authService := service.NewAuthService(backend, validate, sysLogger)
	portalService := service.NewPortalService(backend, questionMapper, validate, sysLogger)
	questionService := service.NewQuestionService(backend, answerMapper, validate, sysLogger)
	userService := service.NewUserService(backend, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService, renderer),
		PortalController:   controller.NewPortalController(portalService, renderer),
		QuestionController: controller.NewQuestionController(questionService, renderer),
		UserController:     controller.NewUserController(userService, renderer),
		Logger:             sysLogger,
	}
}
