package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/psunilk13/rmc-doctypes/internal/application/accounts"
	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
)

// AccountHandler maneja el aprovisionamiento contable de la empresa.
type AccountHandler struct {
	provisioner *accounts.Provisioner
}

// NewAccountHandler construye el handler.
func NewAccountHandler(p *accounts.Provisioner) *AccountHandler {
	return &AccountHandler{provisioner: p}
}

// EnsureAccounts godoc
// @Summary      Crear las cuentas CWIP y de gastos de mezclado si faltan (idempotente)
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  accounts.Names
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/accounts/ensure [post]
func (h *AccountHandler) EnsureAccounts(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	names, err := h.provisioner.EnsureAccounts(companyID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(names)
}
