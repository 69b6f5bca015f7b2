package handler

import (
	"github.com/gofiber/fiber/v2"

	"eimzoapi/internal/eimzo"
	"eimzoapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; all forwarding and translation logic lives in the services.
func RegisterRoutes(app *fiber.App, pkcsSvc service.PkcsService, authSvc service.AuthService) {
	app.Get("/health", HealthCheck(authSvc))
	app.Get("/healthz", LivenessProbe())

	app.Post("/pkcs7/verify", VerifyPkcs(pkcsSvc))
	app.Post("/pkcs7/save", SavePkcs(pkcsSvc))
	app.Post("/pkcs7/join", JoinPkcs(pkcsSvc))

	app.Get("/auth/challenge", AuthChallenge(authSvc))
	app.Post("/auth/login", AuthLogin(authSvc))
}

// requestContext derives the outbound forwarding context from the inbound
// request, so the e-imzo server sees the original caller.
func requestContext(c *fiber.Ctx) eimzo.RequestContext {
	return eimzo.RequestContext{
		Host:     c.Get(fiber.HeaderHost),
		ClientIP: eimzo.ClientIP(c.Get("X-Real-IP"), c.IP()),
	}
}
