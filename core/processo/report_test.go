package processo

import (
	"errors"
	"testing"

	"processo-manager/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diasTable() *table.Table {
	t := table.New([]string{"EXTRA", "DESCRIÇÃO CLASSE CNJ", "PROCESSO", "VALOR DA CAUSA", "QTDE DIAS"})
	t.Append(table.Record{"EXTRA": "x", "DESCRIÇÃO CLASSE CNJ": "Execução", "PROCESSO": "10-2024", "VALOR DA CAUSA": "100", "QTDE DIAS": "120"})
	t.Append(table.Record{"EXTRA": "y", "DESCRIÇÃO CLASSE CNJ": "Monitória", "PROCESSO": "11-2024", "VALOR DA CAUSA": "200", "QTDE DIAS": "101"})
	t.Append(table.Record{"EXTRA": "z", "DESCRIÇÃO CLASSE CNJ": "Despejo", "PROCESSO": "13-2024", "VALOR DA CAUSA": "300", "QTDE DIAS": "150"})
	return t
}

func TestReport_AllRows(t *testing.T) {
	r, err := Report(diasTable(), ReportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, r.Even)
	assert.Equal(t, 2, r.Odd)
	assert.Equal(t, []string{"DESCRIÇÃO CLASSE CNJ", "PROCESSO", "VALOR DA CAUSA", "QTDE DIAS", "PAR ou ÍMPAR"}, r.Table.Columns)
	require.Len(t, r.Table.Rows, 3)
	assert.Equal(t, "PAR", r.Table.Rows[0]["PAR ou ÍMPAR"])
	assert.NotContains(t, r.Table.Rows[0], "EXTRA")
}

func TestReport_Filters(t *testing.T) {
	tests := []struct {
		filter Filter
		keys   []string
	}{
		{FilterAll, []string{"10-2024", "11-2024", "13-2024"}},
		{FilterEven, []string{"10-2024"}},
		{FilterOdd, []string{"11-2024", "13-2024"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			r, err := Report(diasTable(), ReportOptions{Filter: tt.filter})
			require.NoError(t, err)

			// Counts ignore the filter
			assert.Equal(t, 1, r.Even)
			assert.Equal(t, 2, r.Odd)
			assert.Equal(t, tt.keys, r.Table.Keys("PROCESSO"))
		})
	}
}

func TestReport_MissingColumns(t *testing.T) {
	tbl := table.New([]string{"PROCESSO", "QTDE DIAS"})
	_, err := Report(tbl, ReportOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumns))

	var mc *MissingColumnsError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, []string{"DESCRIÇÃO CLASSE CNJ", "VALOR DA CAUSA"}, mc.Columns)
}

func TestReport_MalformedKey(t *testing.T) {
	tbl := diasTable()
	tbl.Rows[1]["PROCESSO"] = "sem-numero"

	_, err := Report(tbl, ReportOptions{})
	assert.True(t, errors.Is(err, ErrMalformedKey))
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilter("Pares")
	require.NoError(t, err)
	assert.Equal(t, FilterEven, f)

	f, err = ParseFilter("ímpares")
	require.NoError(t, err)
	assert.Equal(t, FilterOdd, f)

	_, err = ParseFilter("metade")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
