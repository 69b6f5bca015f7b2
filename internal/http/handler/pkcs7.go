package handler

import (
	"github.com/gofiber/fiber/v2"

	"eimzoapi/internal/service"
)

// VerifyPkcs verifies an attached PKCS#7 signature and relays the verifier's
// response as-is.
//
// @Summary      Verify a signed document
// @Description  Forwards the document to the e-imzo server and returns the verifier's JSON response untouched.
// @Tags         pkcs7
// @Accept       json
// @Produce      json
// @Param        request body VerifyRequest true "base64 PKCS#7 document"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} errorPayload
// @Failure      500 {object} errorPayload
// @Router       /pkcs7/verify [post]
func VerifyPkcs(svc service.PkcsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req VerifyRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid json body")
		}

		body, err := svc.Verify(c.UserContext(), req.Pkcs7b64, requestContext(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Type("json").Send(body)
	}
}

// SavePkcs timestamps a signed document and verifies the result.
//
// @Summary      Timestamp and verify a signed document
// @Description  Attaches a timestamp token, verifies the timestamped document, and returns both. A verification status other than 1 is translated into a user-facing message.
// @Tags         pkcs7
// @Accept       json
// @Produce      json
// @Param        request body SaveRequest true "base64 PKCS#7 document"
// @Success      200 {object} SaveResponse
// @Failure      400 {object} errorPayload
// @Failure      406 {object} errorPayload
// @Failure      500 {object} errorPayload
// @Router       /pkcs7/save [post]
func SavePkcs(svc service.PkcsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SaveRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid json body")
		}

		res, err := svc.Save(c.UserContext(), req.Pkcs7b64, requestContext(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(SaveResponse{
			Success:      true,
			Pkcs7b64:     res.Pkcs7b64,
			Verification: res.Verification,
		})
	}
}

// JoinPkcs merges two signed documents into a single co-signed document.
//
// @Summary      Join two signed documents
// @Description  Merges two PKCS#7 documents signed over the same content into one document carrying both signatures.
// @Tags         pkcs7
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "two base64 PKCS#7 documents"
// @Success      200 {object} JoinResponse
// @Failure      400 {object} errorPayload
// @Failure      500 {object} errorPayload
// @Router       /pkcs7/join [post]
func JoinPkcs(svc service.PkcsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req JoinRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid json body")
		}

		joined, err := svc.Join(c.UserContext(), req.First, req.Second, requestContext(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(JoinResponse{Success: true, Pkcs7b64: joined})
	}
}
