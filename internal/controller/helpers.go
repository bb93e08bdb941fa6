package controller

import (
	"github.com/gofiber/fiber/v2"

	"classroom-portal-fe/internal/dto"
	"classroom-portal-fe/internal/service"
	"classroom-portal-fe/internal/session"
	"classroom-portal-fe/internal/web"
)

func sessionStore(ctx *fiber.Ctx) *session.Store {
	return session.NewStore(session.NewCookieStorage(ctx))
}

func toSessionView(s session.Session) dto.SessionView {
	return dto.SessionView{
		UserId:   s.UserId,
		UserName: s.UserName,
		SignedIn: s.SignedIn(),
	}
}

// reconcile applies the service's strategy after a successful mutation. The
// only strategy today is a full reload, issued as a redirect back to the view
// that sent the command.
func reconcile(ctx *fiber.Ctx, strategy service.ReconcileStrategy, viewURL string) error {
	switch strategy {
	case service.ReconcileFullReload:
		return ctx.Redirect(viewURL, fiber.StatusSeeOther)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "unknown reconcile strategy "+string(strategy))
	}
}

// renderError blocks the whole page on the failure: the user sees nothing
// but the error until they navigate back.
func renderError(ctx *fiber.Ctx, renderer *web.Renderer, err error, backURL string) error {
	ctx.Status(fiber.StatusBadGateway)
	return renderer.Render(ctx, "error.html", dto.ErrorPage{
		Message: err.Error(),
		BackURL: backURL,
	})
}
