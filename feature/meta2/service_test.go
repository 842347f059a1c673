package meta2

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"processo-manager/core/reconcile"
	"processo-manager/core/sheet"
	"processo-manager/core/storage"
	"processo-manager/core/storage/mocks"
	"processo-manager/core/table"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	oldCSV = "PROCESSO,TIPO,OBS,TAREFAS\n1-24,,nota 1,t1\n2-24,,nota 2,t2\n3-24,,nota 3,t3\n"
	newCSV = "PROCESSO,TAREFAS\n2-24,t2\n3-24,t3\n4-24,t4\n"
)

func testConfig() reconcile.Config {
	return reconcile.Config{
		KeyColumn:     "PROCESSO",
		ParityColumn:  "TIPO",
		LastColumn:    "TAREFAS",
		Mode:          "union",
		MalformedKeys: "abort",
		SheetName:     "Planilha Comparada",
	}
}

func newTestService(client storage.Client) *Service {
	svc := NewService(client, storage.Config{Bucket: "planilhas", Prefix: "reconciliacoes"}, testConfig(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }
	return svc
}

func workbooks() (Workbook, Workbook) {
	return Workbook{Name: "antiga.csv", Data: []byte(oldCSV)}, Workbook{Name: "nova.csv", Data: []byte(newCSV)}
}

func TestService_Compare(t *testing.T) {
	svc := newTestService(nil)
	old, current := workbooks()

	out, err := svc.Compare(context.Background(), old, current, Params{})
	require.NoError(t, err)

	assert.Equal(t, reconcile.Summary{TotalOld: 3, TotalNew: 3, Removed: 1, Added: 1}, out.Result.Summary)
	assert.Equal(t, []string{"1-24"}, out.Result.RemovedKeys)
	assert.Equal(t, []string{"4-24"}, out.Result.AddedKeys)
	assert.Equal(t, "planilha_comparada_Meta2_05-03-2024.xlsx", out.FileName)
	assert.Equal(t, sheet.XLSX.ContentType(), out.ContentType)
	assert.Empty(t, out.PublishedAs)

	got, err := sheet.Read(bytes.NewReader(out.Content), sheet.XLSX, sheet.ReadOptions{Sheet: "Planilha Comparada"})
	require.NoError(t, err)
	assert.Equal(t, []string{"PROCESSO", "TIPO", "OBS", "TAREFAS"}, got.Columns)
	assert.Equal(t, []string{"2-24", "3-24", "4-24"}, got.Keys("PROCESSO"))
	assert.Equal(t, "PAR", got.Value(0, "TIPO"))
	assert.Equal(t, "ÍMPAR", got.Value(1, "TIPO"))
	assert.Equal(t, "nota 2", got.Value(0, "OBS"))
	assert.Equal(t, "", got.Value(2, "OBS"))
}

func TestService_Compare_ModeOverride(t *testing.T) {
	svc := newTestService(nil)
	old, current := workbooks()

	out, err := svc.Compare(context.Background(), old, current, Params{Mode: "filter", Format: sheet.CSV})
	require.NoError(t, err)

	assert.Equal(t, []string{"2-24", "3-24"}, out.Result.Table.Keys("PROCESSO"))
	assert.True(t, strings.HasSuffix(out.FileName, ".csv"))
	assert.Equal(t, sheet.CSV.ContentType(), out.ContentType)

	// Counts do not depend on the mode.
	assert.Equal(t, 1, out.Result.Summary.Added)
}

func TestService_Run_Refresh(t *testing.T) {
	svc := newTestService(nil)

	old := table.New([]string{"PROCESSO", "TAREFAS"})
	old.Append(table.Record{"PROCESSO": "1-24", "TAREFAS": "ligar"})
	current := table.New([]string{"PROCESSO", "VALOR", "TAREFAS"})
	current.Append(table.Record{"PROCESSO": "1-24", "VALOR": "10", "TAREFAS": ""})

	out, err := svc.Run(context.Background(), old, current, Params{Mode: "refresh"})
	require.NoError(t, err)

	require.Equal(t, 1, out.Result.Table.Len())
	assert.Equal(t, table.Record{"PROCESSO": "1-24", "TIPO": "ÍMPAR", "VALOR": "10", "TAREFAS": "ligar"}, out.Result.Table.Rows[0])
	assert.Equal(t, []string{"PROCESSO", "TIPO", "VALOR", "TAREFAS"}, out.Result.Table.Columns)
}

func TestService_Compare_SkipFile(t *testing.T) {
	old, current := workbooks()

	out, err := newTestService(nil).Compare(context.Background(), old, current, Params{SkipFile: true})
	require.NoError(t, err)
	assert.Nil(t, out.Content)
	assert.Equal(t, "planilha_comparada_Meta2_05-03-2024.xlsx", out.FileName)
	assert.Equal(t, 1, out.Result.Summary.Removed)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "planilhas").Return(true, nil)
	client.On("PutObject", mock.Anything, "planilhas", mock.Anything, mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	out, err = newTestService(client).Compare(context.Background(), old, current, Params{SkipFile: true, Publish: true})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Content)
	assert.NotEmpty(t, out.PublishedAs)
	client.AssertExpectations(t)
}

func TestService_Compare_Errors(t *testing.T) {
	svc := newTestService(nil)
	old, current := workbooks()

	tests := []struct {
		name    string
		old     Workbook
		current Workbook
		params  Params
		want    error
	}{
		{
			name:    "UnsupportedExtension",
			old:     Workbook{Name: "antiga.pdf", Data: []byte("x")},
			current: current,
			want:    sheet.ErrUnsupportedFormat,
		},
		{
			name:    "MissingKeyColumn",
			old:     old,
			current: Workbook{Name: "nova.csv", Data: []byte("NUMERO,TAREFAS\n2-24,t2\n")},
			want:    reconcile.ErrMissingColumn,
		},
		{
			name:    "InvalidMode",
			old:     old,
			current: current,
			params:  Params{Mode: "merge"},
			want:    reconcile.ErrInvalidMode,
		},
		{
			name:    "PublishWithoutStorage",
			old:     old,
			current: current,
			params:  Params{Publish: true},
			want:    ErrStorageDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Compare(context.Background(), tt.old, tt.current, tt.params)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_Publish(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "planilhas").Return(true, nil)
	client.On("PutObject", mock.Anything, "planilhas",
		mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "reconciliacoes/") &&
				strings.HasSuffix(name, "_planilha_comparada_Meta2_05-03-2024.xlsx")
		}),
		mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newTestService(client)
	old, current := workbooks()

	out, err := svc.Compare(context.Background(), old, current, Params{Publish: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.PublishedAs, "reconciliacoes/"))
	client.AssertExpectations(t)
}

func TestService_PublishFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "planilhas").Return(false, errors.New("connection refused"))

	svc := newTestService(client)
	old, current := workbooks()

	_, err := svc.Compare(context.Background(), old, current, Params{Publish: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
