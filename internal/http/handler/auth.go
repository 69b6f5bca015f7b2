package handler

import (
	"github.com/gofiber/fiber/v2"

	"eimzoapi/internal/service"
)

// AuthChallenge fetches a one-time signing challenge for the caller.
//
// @Summary      Get a signing challenge
// @Description  Returns a fresh challenge value the client must sign to authenticate.
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} errorPayload
// @Failure      500 {object} errorPayload
// @Router       /auth/challenge [get]
func AuthChallenge(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := svc.Challenge(c.UserContext(), requestContext(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Type("json").Send(body)
	}
}

// AuthLogin verifies a signed challenge and classifies the signer.
//
// @Summary      Authenticate with a signed challenge
// @Description  Verifies the signed challenge against the e-imzo server and derives the user type from the certificate subject.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "signed challenge as base64 PKCS#7"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} errorPayload
// @Failure      500 {object} errorPayload
// @Router       /auth/login [post]
func AuthLogin(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid json body")
		}

		res, err := svc.Login(c.UserContext(), req.Pkcs7b64, requestContext(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(LoginResponse{
			Success:  true,
			UserType: res.UserType,
			Subject:  res.Subject,
			Auth:     res.Auth,
		})
	}
}
