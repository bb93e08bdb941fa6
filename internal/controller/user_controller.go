package controller

import (
	"github.com/gofiber/fiber/v2"

	"classroom-portal-fe/internal/service"
	"classroom-portal-fe/internal/web"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
}

type userController struct {
	service  service.IUserService
	renderer *web.Renderer
}

func NewUserController(service service.IUserService, renderer *web.Renderer) IUserController {
	return &userController{service: service, renderer: renderer}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Get("/profile", c.Profile)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	sess := sessionStore(ctx).Get()
	if !sess.SignedIn() {
		return ctx.Redirect("/", fiber.StatusSeeOther)
	}

	page, err := c.service.GetProfile(ctx.Context(), sess.UserId)
	if err != nil {
		return renderError(ctx, c.renderer, err, "/portal")
	}

	page.Session = toSessionView(sess)
	return c.renderer.Render(ctx, "profile.html", *page)
}
