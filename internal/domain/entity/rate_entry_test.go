package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRateEntry_Contains(t *testing.T) {
	r := &entity.RateEntry{FromDate: date("2024-01-01"), ToDate: date("2024-01-31")}

	// Extremos inclusivos
	assert.True(t, r.Contains(date("2024-01-01")))
	assert.True(t, r.Contains(date("2024-01-31")))
	assert.True(t, r.Contains(date("2024-01-15")))

	assert.False(t, r.Contains(date("2023-12-31")))
	assert.False(t, r.Contains(date("2024-02-01")))
}

func TestRateEntry_Overlaps(t *testing.T) {
	r := &entity.RateEntry{FromDate: date("2024-01-10"), ToDate: date("2024-01-20")}

	cases := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"from dentro del rango", "2024-01-15", "2024-02-15", true},
		{"to dentro del rango", "2023-12-15", "2024-01-15", true},
		{"candidato contenido", "2024-01-12", "2024-01-18", true},
		{"candidato contiene al existente", "2024-01-01", "2024-01-31", true},
		{"rangos idénticos", "2024-01-10", "2024-01-20", true},
		{"extremos que se tocan al inicio", "2024-01-01", "2024-01-10", true},
		{"extremos que se tocan al final", "2024-01-20", "2024-01-31", true},
		{"totalmente antes", "2024-01-01", "2024-01-09", false},
		{"totalmente después", "2024-01-21", "2024-01-31", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Overlaps(date(tc.from), date(tc.to)))
		})
	}
}
