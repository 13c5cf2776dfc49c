package entity

import "github.com/shopspring/decimal"

// BOM es la receta de un grado de concreto: componentes y cantidades
// por Quantity unidades de producto terminado.
type BOM struct {
	ID       string
	Grade    string
	Quantity decimal.Decimal // cantidad de referencia de la receta
	Items    []BOMItem
}

// BOMItem es un componente de la receta.
type BOMItem struct {
	ItemCode         string
	ItemName         string
	Description      string
	UOM              string
	ConversionFactor decimal.Decimal
	Quantity         decimal.Decimal // cantidad por Quantity del BOM
	Rate             decimal.Decimal
}
