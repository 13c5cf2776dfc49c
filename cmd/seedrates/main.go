// seedrates genera un script SQL para poblar la tabla grade_rates a partir
// de un CSV de tarifas exportado del sistema anterior (codificado en
// ISO-8859-1, con encabezado).
//
// Columnas esperadas: grade;warehouse;rate;from_date;to_date
// Fechas en formato YYYY-MM-DD, tarifa con punto decimal.
//
// Uso: go run ./cmd/seedrates [ruta/tarifas.csv]
// Por defecto busca tarifas.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_rates.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type rateRow struct {
	grade     string
	warehouse string
	rate      decimal.Decimal
	fromDate  string
	toDate    string
}

func main() {
	csvPath := "tarifas.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El sistema anterior exporta en ISO-8859-1; los nombres de planta
	// llevan tildes y eñes.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 5
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var rows []rateRow
	for i, rec := range records[1:] { // saltar encabezado
		row, err := parseRow(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: %v\n", i+2, err)
			os.Exit(1)
		}
		rows = append(rows, row)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_rates.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Tarifas de mezclado migradas del sistema anterior\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")
	out.WriteString("INSERT INTO grade_rates (id, grade, warehouse, rate, from_date, to_date, disabled) VALUES\n")
	for i, row := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', %s, '%s', '%s', FALSE)%s\n",
			uuid.NewString(), escapeSQL(row.grade), escapeSQL(row.warehouse),
			row.rate.String(), row.fromDate, row.toDate, sep)
	}
	// La restricción de exclusión de grade_rates rechaza el script completo
	// si el CSV trae rangos solapados; se corrige en origen y se reintenta.
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d tarifas\n", outPath, len(rows))
}

func parseRow(rec []string) (rateRow, error) {
	grade := strings.TrimSpace(rec[0])
	warehouse := strings.TrimSpace(rec[1])
	if grade == "" || warehouse == "" {
		return rateRow{}, fmt.Errorf("grado y planta son requeridos")
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
	if err != nil {
		return rateRow{}, fmt.Errorf("tarifa inválida %q: %v", rec[2], err)
	}
	if rate.IsNegative() {
		return rateRow{}, fmt.Errorf("tarifa negativa %s", rate)
	}
	from, err := time.Parse("2006-01-02", strings.TrimSpace(rec[3]))
	if err != nil {
		return rateRow{}, fmt.Errorf("from_date inválida %q: %v", rec[3], err)
	}
	to, err := time.Parse("2006-01-02", strings.TrimSpace(rec[4]))
	if err != nil {
		return rateRow{}, fmt.Errorf("to_date inválida %q: %v", rec[4], err)
	}
	if to.Before(from) {
		return rateRow{}, fmt.Errorf("rango invertido: %s > %s", rec[3], rec[4])
	}
	return rateRow{
		grade:     grade,
		warehouse: warehouse,
		rate:      rate,
		fromDate:  from.Format("2006-01-02"),
		toDate:    to.Format("2006-01-02"),
	}, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
