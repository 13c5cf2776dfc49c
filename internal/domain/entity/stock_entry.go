package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario emitidos por el ciclo del lote.
const (
	StockEntryIssue    = "Material Issue"    // consumo de materias primas
	StockEntryReceipt  = "Material Receipt"  // alta del producto terminado
	StockEntryTransfer = "Material Transfer" // traslado entre plantas/tránsito
)

// StockEntry es un movimiento de inventario derivado de un lote. El
// colaborador externo de inventario ajusta existencias al confirmarlo;
// aquí solo se construye y persiste como comprobante.
type StockEntry struct {
	ID          string
	CompanyID   string
	Type        string
	PostingDate time.Time
	PostingTime string
	BatchID     string // lote que originó el movimiento (referencia de comprobante)
	Items       []StockEntryItem
	CreatedAt   time.Time
}

// StockEntryItem es una línea del movimiento. SourceWarehouse vacío en
// recepciones; DestinationWarehouse vacío en consumos.
type StockEntryItem struct {
	ItemCode             string
	Qty                  decimal.Decimal
	UOM                  string
	SourceWarehouse      string
	DestinationWarehouse string
	CostCenter           string
	Rate                 decimal.Decimal // costo unitario de ingreso (recepciones y traslados)
}
