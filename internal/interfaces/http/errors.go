package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
	"github.com/psunilk13/rmc-doctypes/internal/domain"
)

// errorResponse mapea errores de dominio a códigos HTTP. Los mensajes de
// dominio ya identifican la entidad ofensora (grado, planta, fechas, lote).
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidDateRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE_RANGE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrRateOverlap):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RATE_OVERLAP", Message: err.Error()})
	case errors.Is(err, domain.ErrRateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "RATE_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrAmbiguousRate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "AMBIGUOUS_RATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNoBOMSelected):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_BOM_SELECTED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotSubmitted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_SUBMITTED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingAccount), errors.Is(err, domain.ErrMissingParentAccount):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MISSING_ACCOUNT", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingCostCenter):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MISSING_COST_CENTER", Message: err.Error()})
	case errors.Is(err, domain.ErrTransactionFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TRANSACTION_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
