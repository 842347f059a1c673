package dias

import (
	"bytes"
	"testing"
	"time"

	"processo-manager/core/processo"
	"processo-manager/core/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const listCSV = "DESCRIÇÃO CLASSE CNJ;PROCESSO;VALOR DA CAUSA;QTDE DIAS;VARA\n" +
	"Procedimento Comum;100-24;1000;101;1a\n" +
	"Execução Fiscal;101-24;50;130;2a\n" +
	"Mandado de Segurança;102-24;0;99;1a\n"

func newTestService() *Service {
	cfg := processo.ReportConfig{
		KeyColumn:       "PROCESSO",
		ParityColumn:    "PAR ou ÍMPAR",
		RequiredColumns: processo.DefaultReportColumns,
		SheetName:       "100 dias",
	}
	svc := NewService(cfg, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_Parity(t *testing.T) {
	tests := []struct {
		name   string
		filter processo.Filter
		keys   []string
	}{
		{"All", processo.FilterAll, []string{"100-24", "101-24", "102-24"}},
		{"Even", processo.FilterEven, []string{"100-24", "102-24"}},
		{"Odd", processo.FilterOdd, []string{"101-24"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestService().Parity("lista.csv", []byte(listCSV), tt.filter, sheet.XLSX)
			require.NoError(t, err)

			assert.Equal(t, 2, out.Report.Even)
			assert.Equal(t, 1, out.Report.Odd)
			assert.Equal(t, tt.keys, out.Report.Table.Keys("PROCESSO"))
			assert.Equal(t, "100dias_31-01-2024.xlsx", out.FileName)

			got, err := sheet.Read(bytes.NewReader(out.Content), sheet.XLSX, sheet.ReadOptions{Sheet: "100 dias"})
			require.NoError(t, err)
			assert.Equal(t, []string{"DESCRIÇÃO CLASSE CNJ", "PROCESSO", "VALOR DA CAUSA", "QTDE DIAS", "PAR ou ÍMPAR"}, got.Columns)
			assert.Equal(t, tt.keys, got.Keys("PROCESSO"))
		})
	}
}

func TestService_Parity_Errors(t *testing.T) {
	svc := newTestService()

	_, err := svc.Parity("lista.csv", []byte("PROCESSO;QTDE DIAS\n1-24;10\n"), processo.FilterAll, sheet.CSV)
	assert.ErrorIs(t, err, processo.ErrMissingColumns)

	bad := "DESCRIÇÃO CLASSE CNJ;PROCESSO;VALOR DA CAUSA;QTDE DIAS\nX;sem numero;1;1\n"
	_, err = svc.Parity("lista.csv", []byte(bad), processo.FilterAll, sheet.CSV)
	assert.ErrorIs(t, err, processo.ErrMalformedKey)

	_, err = svc.Parity("lista.ods", []byte(listCSV), processo.FilterAll, sheet.CSV)
	assert.ErrorIs(t, err, sheet.ErrUnsupportedFormat)
}
