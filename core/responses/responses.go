package responses

import (
	apperrors "team-inventory/core/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error writes the failure body for err and logs it. Internal errors never leak
// their cause to the client.
func Error(c *fiber.Ctx, l *zap.Logger, err error) error {
	typed := apperrors.As(err)
	if typed == nil {
		typed = apperrors.Wrap(apperrors.CodeInternal, err, apperrors.MetadataFor(apperrors.CodeInternal).PublicMessage)
	}

	md := apperrors.MetadataFor(typed.Code())
	body := fiber.Map{
		"success": false,
		"code":    typed.Code(),
		"error":   typed.Message(),
	}
	if md.HTTPStatus >= fiber.StatusInternalServerError {
		body["error"] = md.PublicMessage
		l.Error("Request failed", zap.Error(err))
	} else {
		l.Warn("Request rejected", zap.String("code", string(typed.Code())), zap.String("reason", typed.Message()))
	}
	if md.DetailsAllowed && typed.Details() != nil {
		body["details"] = typed.Details()
	}

	return c.Status(md.HTTPStatus).JSON(body)
}
