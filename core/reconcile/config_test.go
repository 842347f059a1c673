package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Options(t *testing.T) {
	cfg := Config{
		KeyColumn:     "PROCESSO",
		ParityColumn:  "TIPO",
		LastColumn:    "TAREFAS",
		CarryColumns:  []string{" OBSERVAÇÃO ", "", "TAREFAS"},
		Mode:          "refresh",
		MalformedKeys: "tag",
	}

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, Options{
		KeyColumn:     "PROCESSO",
		CarryColumns:  []string{"OBSERVAÇÃO", "TAREFAS"},
		Mode:          ModeRefresh,
		ParityColumn:  "TIPO",
		LastColumn:    "TAREFAS",
		MalformedKeys: PolicyTag,
	}, opts)
}

func TestConfig_EmptyCarryColumnsDerive(t *testing.T) {
	opts, err := Config{CarryColumns: []string{}}.Options()
	require.NoError(t, err)
	assert.Nil(t, opts.CarryColumns)
	assert.Equal(t, ModeUnion, opts.Mode)
	assert.Equal(t, PolicyAbort, opts.MalformedKeys)
}

func TestConfig_InvalidMode(t *testing.T) {
	_, err := Config{Mode: "outer"}.Options()
	assert.True(t, errors.Is(err, ErrInvalidMode))
}
