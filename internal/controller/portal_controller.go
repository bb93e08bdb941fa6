package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/service"
	"classroom-portal-fe/internal/web"
)

type IPortalController interface {
	RegisterRoutes(r fiber.Router)
	Portal(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	Vote(ctx *fiber.Ctx) error
	Flag(ctx *fiber.Ctx) error
}

type portalController struct {
	service  service.IPortalService
	renderer *web.Renderer
}

func NewPortalController(service service.IPortalService, renderer *web.Renderer) IPortalController {
	return &portalController{service: service, renderer: renderer}
}

func (c *portalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/portal")
	h.Get("/", c.Portal)
	h.Post("/ask", c.Ask)
	h.Post("/vote", c.Vote)
	h.Post("/flag", c.Flag)
}

func (c *portalController) Portal(ctx *fiber.Ctx) error {
	page := c.buildPage(ctx)
	if ctx.Query("posted") != "" {
		page.PostMsg = "Posted"
		page.PostOk = true
	}
	return c.renderer.Render(ctx, "portal.html", page)
}

func (c *portalController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	sess := sessionStore(ctx).Get()
	if err := c.service.PostQuestion(ctx.Context(), sess, &req); err != nil {
		page := c.buildPage(ctx)
		page.PostMsg = askMessage(err)
		return c.renderer.Render(ctx, "portal.html", page)
	}

	// command accepted: the reload also clears the form
	return reconcile(ctx, c.service.ReconcileBy(), "/portal?posted=1")
}

func (c *portalController) Vote(ctx *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.Vote(ctx.Context(), &req); err != nil {
		return renderError(ctx, c.renderer, err, "/portal")
	}
	return reconcile(ctx, c.service.ReconcileBy(), "/portal")
}

func (c *portalController) Flag(ctx *fiber.Ctx) error {
	var req dto.FlagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.Flag(ctx.Context(), &req); err != nil {
		return renderError(ctx, c.renderer, err, "/portal")
	}
	return reconcile(ctx, c.service.ReconcileBy(), "/portal")
}

func (c *portalController) buildPage(ctx *fiber.Ctx) dto.PortalPage {
	sess := sessionStore(ctx).Get()
	top, recent := c.service.LoadLists(ctx.Context())
	return dto.PortalPage{
		Session: toSessionView(sess),
		Top:     top,
		Recent:  recent,
	}
}

func askMessage(err error) string {
	if errors.Is(err, service.ErrNotLoggedIn) || errors.Is(err, service.ErrTitleRequired) {
		return err.Error()
	}
	return "Post failed"
}
