package dias_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"processo-manager/core/processo"
	"processo-manager/feature/dias"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const listCSV = "DESCRIÇÃO CLASSE CNJ,PROCESSO,VALOR DA CAUSA,QTDE DIAS\n" +
	"Procedimento Comum,8-24,1000,101\n" +
	"Execução Fiscal,9-24,50,130\n"

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	feature := dias.NewFeature(processo.ReportConfig{SheetName: "100 dias"}, zap.NewNop())
	assert.Equal(t, "dias", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func post(t *testing.T, app *fiber.App, target, field, name string, data []byte) *http.Response {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleParity_JSON(t *testing.T) {
	app := setupApp(t)

	resp := post(t, app, "/dias/parity?format=json&filter=impares", "file", "lista.csv", []byte(listCSV))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-Even-Count"))
	assert.Equal(t, "1", resp.Header.Get("X-Odd-Count"))

	var body dias.ParityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Even)
	assert.Equal(t, 1, body.Odd)
	assert.Equal(t, []string{"DESCRIÇÃO CLASSE CNJ", "PROCESSO", "VALOR DA CAUSA", "QTDE DIAS", "PAR ou ÍMPAR"}, body.Columns)
	assert.Equal(t, [][]string{{"Execução Fiscal", "9-24", "50", "130", "ÍMPAR"}}, body.Rows)
}

func TestHandleParity_Download(t *testing.T) {
	app := setupApp(t)

	resp := post(t, app, "/dias/parity?format=csv", "file", "lista.csv", []byte(listCSV))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "100dias_")
}

func TestHandleParity_Errors(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name   string
		target string
		field  string
		data   string
		status int
	}{
		{"MissingFile", "/dias/parity", "other", listCSV, 400},
		{"InvalidFilter", "/dias/parity?filter=metade", "file", listCSV, 422},
		{"MissingColumns", "/dias/parity", "file", "PROCESSO\n1-24\n", 422},
		{"MalformedKey", "/dias/parity", "file", "DESCRIÇÃO CLASSE CNJ,PROCESSO,VALOR DA CAUSA,QTDE DIAS\nX,abc,1,1\n", 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.target, tt.field, "lista.csv", []byte(tt.data))
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
