package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/service"
	"classroom-portal-fe/internal/web"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	View(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Vote(ctx *fiber.Ctx) error
	Flag(ctx *fiber.Ctx) error
}

type questionController struct {
	service  service.IQuestionService
	renderer *web.Renderer
}

func NewQuestionController(service service.IQuestionService, renderer *web.Renderer) IQuestionController {
	return &questionController{service: service, renderer: renderer}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/view")
	h.Get("/", c.View)
	h.Post("/answer", c.Answer)
	h.Post("/vote", c.Vote)
	h.Post("/flag", c.Flag)
}

// View renders the question detail page. The question id comes from the
// page's query parameter, matching the navigation contract of the list view.
func (c *questionController) View(ctx *fiber.Ctx) error {
	id := ctx.QueryInt("id")
	page, err := c.service.LoadQuestion(ctx.Context(), id)
	if err != nil {
		return renderError(ctx, c.renderer, err, "/portal")
	}

	page.Session = toSessionView(sessionStore(ctx).Get())
	if ctx.Query("posted") != "" {
		page.PostMsg = "Posted"
		page.PostOk = true
	}
	return c.renderer.Render(ctx, "view.html", *page)
}

func (c *questionController) Answer(ctx *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	sess := sessionStore(ctx).Get()
	if err := c.service.PostAnswer(ctx.Context(), sess, &req); err != nil {
		return c.renderWithMessage(ctx, req.QuestionId, answerMessage(err))
	}

	return reconcile(ctx, c.service.ReconcileBy(), detailURL(req.QuestionId)+"&posted=1")
}

func (c *questionController) Vote(ctx *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	questionId := queryOrFormQuestionId(ctx)

	if err := c.service.Vote(ctx.Context(), &req); err != nil {
		return renderError(ctx, c.renderer, err, detailURL(questionId))
	}
	return reconcile(ctx, c.service.ReconcileBy(), detailURL(questionId))
}

func (c *questionController) Flag(ctx *fiber.Ctx) error {
	var req dto.FlagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	questionId := queryOrFormQuestionId(ctx)

	if err := c.service.Flag(ctx.Context(), &req); err != nil {
		return renderError(ctx, c.renderer, err, detailURL(questionId))
	}
	return reconcile(ctx, c.service.ReconcileBy(), detailURL(questionId))
}

// renderWithMessage re-renders the detail page with an inline message under
// the answer form. The page is re-fetched so the rest of the view stays
// current.
func (c *questionController) renderWithMessage(ctx *fiber.Ctx, questionId int, msg string) error {
	page, err := c.service.LoadQuestion(ctx.Context(), questionId)
	if err != nil {
		return renderError(ctx, c.renderer, err, "/portal")
	}
	page.Session = toSessionView(sessionStore(ctx).Get())
	page.PostMsg = msg
	return c.renderer.Render(ctx, "view.html", *page)
}

func queryOrFormQuestionId(ctx *fiber.Ctx) int {
	if v, err := strconv.Atoi(ctx.FormValue("question_id")); err == nil {
		return v
	}
	return ctx.QueryInt("id")
}

func detailURL(questionId int) string {
	return "/view?id=" + strconv.Itoa(questionId)
}

func answerMessage(err error) string {
	if errors.Is(err, service.ErrAnswerRequired) {
		return err.Error()
	}
	return "Post failed"
}
