package processo

// ReportConfig holds the configurable defaults of the parity report.
type ReportConfig struct {
	// KeyColumn holds the processo key.
	KeyColumn string `mapstructure:"key_column" default:"PROCESSO"`
	// ParityColumn is appended with the PAR/ÍMPAR label.
	ParityColumn string `mapstructure:"parity_column" default:"PAR ou ÍMPAR"`
	// RequiredColumns are kept, in order, in the report.
	RequiredColumns []string `mapstructure:"required_columns" default:"DESCRIÇÃO CLASSE CNJ,PROCESSO,VALOR DA CAUSA,QTDE DIAS"`
	// SheetName names the worksheet of the exported workbook.
	SheetName string `mapstructure:"sheet_name" default:"100 dias"`
}

// Options builds report options for the given filter.
func (c ReportConfig) Options(filter Filter) ReportOptions {
	return ReportOptions{
		KeyColumn:    c.KeyColumn,
		ParityColumn: c.ParityColumn,
		Columns:      c.RequiredColumns,
		Filter:       filter,
	}
}
