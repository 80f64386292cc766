package fatura_test

import (
	"testing"

	"github.com/mpontes/fatura"
	"github.com/stretchr/testify/assert"
)

func TestExtractConsumption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "sums consumed and supplied components",
			text:   "EN CONSUMIDA FAT TU KWH 100,50\nEN FORNECIDA TU KWH 20,25",
			want:   "120,75",
			wantOK: true,
		},
		{
			name:   "single component without fat token",
			text:   "EN CONSUMIDA TU KWH 350,00",
			want:   "350,00",
			wantOK: true,
		},
		{
			name:   "component with thousands separator",
			text:   "EN CONSUMIDA FAT TU KWH 1.234,50",
			want:   "1234,50",
			wantOK: true,
		},
		{
			name:   "matches lower-cased input",
			text:   "en consumida fat tu kwh 42,00",
			want:   "42,00",
			wantOK: true,
		},
		{
			name:   "normal case with consumo label",
			text:   "CONSUMO ATIVO KWH 321,00",
			want:   "321,00",
			wantOK: true,
		},
		{
			name:   "normal case with uso sist distr label",
			text:   "USO SIST. DISTR. TUSD KWH 150,75",
			want:   "150,75",
			wantOK: true,
		},
		{
			name:   "component lines win over consumo line",
			text:   "CONSUMO KWH 999,99\nEN CONSUMIDA FAT TU KWH 10,00",
			want:   "10,00",
			wantOK: true,
		},
		{
			name:   "malformed component is skipped",
			text:   "EN CONSUMIDA FAT TU KWH ,,\nEN FORNECIDA TU KWH 20,25",
			want:   "20,25",
			wantOK: true,
		},
		{
			name:   "integer value gains two decimals",
			text:   "CONSUMO KWH 200",
			want:   "200,00",
			wantOK: true,
		},
		{
			name:   "no consumption figure",
			text:   "total a pagar r$ 100,00",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := fatura.ExtractConsumption(tt.text)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
