package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/infrastructure/pdf"
)

func TestLotLabel_GeneraPDF(t *testing.T) {
	exp := time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC)
	out, err := pdf.NewLabelGenerator().LotLabel(context.Background(), ports.LotLabel{
		LotCode:     "L2026-001",
		SKU:         "VAC-001",
		ProductName: "Vacuna refrigerada 10 dosis",
		Status:      "quarantine",
		ExpiresAt:   &exp,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestLotLabel_SinLoteFalla(t *testing.T) {
	_, err := pdf.NewLabelGenerator().LotLabel(context.Background(), ports.LotLabel{SKU: "X"})
	assert.Error(t, err)
}

func TestQRPayload(t *testing.T) {
	assert.Equal(t, "VAC-001|L2026-001", pdf.QRPayload("VAC-001", "L2026-001"))
}
