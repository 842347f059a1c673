package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	assert.Equal(t, "PROCESSO", cfg.Reconcile.KeyColumn)
	assert.Equal(t, "TIPO", cfg.Reconcile.ParityColumn)
	assert.Equal(t, "TAREFAS", cfg.Reconcile.LastColumn)
	assert.Equal(t, "union", cfg.Reconcile.Mode)
	assert.Empty(t, cfg.Reconcile.CarryColumns)
	assert.Equal(t, []string{"DESCRIÇÃO CLASSE CNJ", "PROCESSO", "VALOR DA CAUSA", "QTDE DIAS"}, cfg.Dias.RequiredColumns)
	assert.Equal(t, "PAR ou ÍMPAR", cfg.Dias.ParityColumn)
	assert.Equal(t, "planilhas", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "RECONCILE_MODE=filter\nRECONCILE_CARRY_COLUMNS=OBSERVAÇÃO,TAREFAS\nSERVER_PORT=9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("RECONCILE_MODE")
		os.Unsetenv("RECONCILE_CARRY_COLUMNS")
		os.Unsetenv("SERVER_PORT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "filter", cfg.Reconcile.Mode)
	assert.Equal(t, []string{"OBSERVAÇÃO", "TAREFAS"}, cfg.Reconcile.CarryColumns)
	assert.Equal(t, "9090", cfg.Server.Port)
}
