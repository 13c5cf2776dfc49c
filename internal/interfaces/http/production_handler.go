package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
	"github.com/psunilk13/rmc-doctypes/internal/application/production"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
)

// ProductionHandler maneja las peticiones HTTP de lotes de producción.
type ProductionHandler struct {
	uc     *production.UseCase
	docket *production.DocketUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase, docket *production.DocketUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc, docket: docket}
}

// Create godoc
// @Summary      Crear lote en borrador
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production/batches [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBatch(companyID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(out))
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetBatch(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toBatchResponse(out))
}

// List godoc
// @Summary      Listar lotes de la empresa
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/production/batches [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	items, err := h.uc.ListBatches(companyID)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.BatchResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBatchResponse(b))
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Confirmar lote: valida, pasa a Produced y registra movimientos
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/submit [post]
func (h *ProductionHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toBatchResponse(out))
}

// UpdateStatus godoc
// @Summary      Avanzar el estado de entrega de un lote confirmado
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del lote"
// @Param        body  body  dto.UpdateStatusRequest  true  "Estado destino"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/status [put]
func (h *ProductionHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	target, err := workflow.Parse(in.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), target); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkUpdateStatus godoc
// @Summary      Avanzar el estado de varios lotes; los fallos no frenan al resto
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkStatusRequest  true  "Lotes y estado destino"
// @Success      200   {object}  dto.BulkStatusResponse
// @Router       /api/production/batches/status [put]
func (h *ProductionHandler) BulkUpdateStatus(c *fiber.Ctx) error {
	var in dto.BulkStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.BatchIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "batch_ids es requerido"})
	}
	target, err := workflow.Parse(in.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(h.uc.BulkUpdateStatus(c.Context(), in.BatchIDs, target))
}

// StatusInfo godoc
// @Summary      Antigüedad del estado actual del lote
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.StatusInfoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/status-info [get]
func (h *ProductionHandler) StatusInfo(c *fiber.Ctx) error {
	info, err := h.uc.StatusInfo(c.Params("id"), time.Now())
	if err != nil {
		return errorResponse(c, err)
	}
	if info == nil {
		return c.JSON(dto.StatusInfoResponse{})
	}
	return c.JSON(dto.StatusInfoResponse{Hours: info.Hours, Alert: info.Alert, Message: info.Message})
}

// MixingRate godoc
// @Summary      Resolver y fijar la tarifa de mezclado del lote
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/mixing-rate [post]
func (h *ProductionHandler) MixingRate(c *fiber.Ctx) error {
	rate, err := h.uc.GetMixingRate(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"mixing_rate": rate})
}

// LoadBOMMaterials godoc
// @Summary      Cargar las líneas de materia prima desde el BOM del lote
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/bom-materials [post]
func (h *ProductionHandler) LoadBOMMaterials(c *fiber.Ctx) error {
	out, err := h.uc.LoadBOMMaterials(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(toBatchResponse(out))
}

// Docket godoc
// @Summary      Remisión de entrega en PDF (solo lotes entregados)
// @Tags         production
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/docket [get]
func (h *ProductionHandler) Docket(c *fiber.Ctx) error {
	pdf, err := h.docket.BuildDocket(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="remision-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

func toBatchResponse(b *entity.ProductionBatch) dto.BatchResponse {
	lines := make([]dto.RawMaterialLineResponse, 0, len(b.RawMaterials))
	for _, rm := range b.RawMaterials {
		lines = append(lines, dto.RawMaterialLineResponse{
			ItemCode:        rm.ItemCode,
			ItemName:        rm.ItemName,
			UOM:             rm.UOM,
			EstimatedQty:    rm.EstimatedQty,
			ActualQty:       rm.ActualQty,
			Rate:            rm.Rate,
			Amount:          rm.Amount,
			Variance:        rm.Variance,
			VariancePercent: rm.VariancePercent,
		})
	}
	return dto.BatchResponse{
		ID:                   b.ID,
		CompanyID:            b.CompanyID,
		BOMID:                b.BOMID,
		Grade:                b.Grade,
		SourceWarehouse:      b.SourceWarehouse,
		DestinationWarehouse: b.DestinationWarehouse,
		ProductionDate:       b.ProductionDate.Format(dto.DateLayout),
		Quantity:             b.Quantity,
		ProductionCost:       b.ProductionCost,
		MixingRate:           b.MixingRate,
		TotalRawMaterialCost: b.TotalRawMaterialCost,
		TotalMixingCost:      b.TotalMixingCost,
		TotalCost:            b.TotalCost,
		PerUnitCost:          b.PerUnitCost,
		WorkflowState:        string(b.WorkflowState),
		Submitted:            b.Submitted,
		RawMaterials:         lines,
	}
}
