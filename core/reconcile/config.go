package reconcile

import "strings"

// Config holds the configurable defaults of a reconciliation run.
type Config struct {
	// KeyColumn identifies a processo in both workbooks.
	KeyColumn string `mapstructure:"key_column" default:"PROCESSO"`
	// ParityColumn receives the PAR/ÍMPAR label. Empty disables labeling.
	ParityColumn string `mapstructure:"parity_column" default:"TIPO"`
	// LastColumn is moved to the end of the output.
	LastColumn string `mapstructure:"last_column" default:"TAREFAS"`
	// CarryColumns lists annotation columns. Empty derives them from the OLD-only columns.
	CarryColumns []string `mapstructure:"carry_columns" default:""`
	// Mode is filter, union or refresh.
	Mode string `mapstructure:"mode" default:"union"`
	// MalformedKeys is abort or tag.
	MalformedKeys string `mapstructure:"malformed_keys" default:"abort"`
	// SheetName names the worksheet of the exported workbook.
	SheetName string `mapstructure:"sheet_name" default:"Planilha Comparada"`
}

// Options converts the configuration into engine options.
func (c Config) Options() (Options, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return Options{}, err
	}
	policy, err := ParsePolicy(c.MalformedKeys)
	if err != nil {
		return Options{}, err
	}

	var carry []string
	for _, col := range c.CarryColumns {
		if col = strings.TrimSpace(col); col != "" {
			carry = append(carry, col)
		}
	}

	return Options{
		KeyColumn:     strings.TrimSpace(c.KeyColumn),
		CarryColumns:  carry,
		Mode:          mode,
		ParityColumn:  strings.TrimSpace(c.ParityColumn),
		LastColumn:    strings.TrimSpace(c.LastColumn),
		MalformedKeys: policy,
	}, nil
}
