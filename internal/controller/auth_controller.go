package controller

import (
	"github.com/gofiber/fiber/v2"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/service"
	"classroom-portal-fe/internal/web"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	renderer *web.Renderer
}

func NewAuthController(service service.IAuthService, renderer *web.Renderer) IAuthController {
	return &authController{service: service, renderer: renderer}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Post("/login", c.Login)
	r.Post("/register", c.Register)
	r.Post("/logout", c.Logout)
}

func (c *authController) Index(ctx *fiber.Ctx) error {
	return c.renderer.Render(ctx, "index.html", dto.IndexPage{})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		// generic message on purpose, the real cause is in the log
		return c.renderer.Render(ctx, "index.html", dto.IndexPage{LoginMsg: "Login failed"})
	}

	sessionStore(ctx).Set(res.UserId, res.Name)
	return ctx.Redirect("/portal", fiber.StatusSeeOther)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.Register(ctx.Context(), &req); err != nil {
		return c.renderer.Render(ctx, "index.html", dto.IndexPage{RegisterMsg: "Registration failed"})
	}

	return c.renderer.Render(ctx, "index.html", dto.IndexPage{
		RegisterMsg: "Registered. You can now login.",
		RegisterOk:  true,
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	sessionStore(ctx).Clear()
	return ctx.Redirect("/", fiber.StatusSeeOther)
}
