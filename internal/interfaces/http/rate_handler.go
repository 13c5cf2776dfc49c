package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
	"github.com/psunilk13/rmc-doctypes/internal/application/rates"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
)

// RateHandler maneja las peticiones HTTP para tarifas de mezclado (solo admin).
type RateHandler struct {
	uc *rates.UseCase
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *rates.UseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarifa de mezclado
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveRateRequest  true  "Datos de la tarifa"
// @Success      201   {object}  dto.RateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRateResponse(out))
}

// Update godoc
// @Summary      Editar tarifa de mezclado
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la tarifa"
// @Param        body  body  dto.SaveRateRequest  true  "Datos de la tarifa"
// @Success      200   {object}  dto.RateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [put]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SaveRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toRateResponse(out))
}

// List godoc
// @Summary      Listar tarifas
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Param        grade      query  string  false  "Grado de concreto"
// @Param        warehouse  query  string  false  "Planta"
// @Success      200  {array}  dto.RateResponse
// @Router       /api/rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Query("grade"), c.Query("warehouse"))
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.RateResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toRateResponse(r))
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver tarifa vigente para grado, planta y fecha
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Param        grade      query  string  true  "Grado de concreto"
// @Param        warehouse  query  string  true  "Planta"
// @Param        date       query  string  true  "Fecha YYYY-MM-DD"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rates/resolve [get]
func (h *RateHandler) Resolve(c *fiber.Ctx) error {
	grade, warehouse := c.Query("grade"), c.Query("warehouse")
	if grade == "" || warehouse == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "grade y warehouse son requeridos"})
	}
	date, err := time.Parse(dto.DateLayout, c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	rate, err := h.uc.GetRate(grade, warehouse, date)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"grade": grade, "warehouse": warehouse, "date": c.Query("date"), "rate": rate})
}

func toRateResponse(r *entity.RateEntry) dto.RateResponse {
	return dto.RateResponse{
		ID:        r.ID,
		Grade:     r.Grade,
		Warehouse: r.Warehouse,
		Rate:      r.Rate,
		FromDate:  r.FromDate.Format(dto.DateLayout),
		ToDate:    r.ToDate.Format(dto.DateLayout),
		Disabled:  r.Disabled,
	}
}
