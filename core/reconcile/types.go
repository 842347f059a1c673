package reconcile

import (
	"fmt"
	"strings"

	"processo-manager/core/table"
)

// Mode selects how the merged table is assembled.
type Mode string

const (
	// ModeFilter keeps only OLD rows whose key is present in NEW.
	ModeFilter Mode = "filter"
	// ModeUnion keeps retained OLD rows followed by NEW-only rows.
	ModeUnion Mode = "union"
	// ModeRefresh keeps every NEW row and carries OLD annotations into it.
	ModeRefresh Mode = "refresh"
)

// ParseMode converts a user supplied mode name. Empty means ModeUnion.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeUnion, nil
	case ModeFilter, ModeUnion, ModeRefresh:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MalformedKeyPolicy decides what happens when a key cannot be classified.
type MalformedKeyPolicy string

const (
	// PolicyAbort fails the whole operation on the first malformed key.
	PolicyAbort MalformedKeyPolicy = "abort"
	// PolicyTag labels the row with processo.Unknown and continues.
	PolicyTag MalformedKeyPolicy = "tag"
)

// ParsePolicy converts a user supplied policy name. Empty means PolicyAbort.
func ParsePolicy(s string) (MalformedKeyPolicy, error) {
	switch p := MalformedKeyPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyAbort, nil
	case PolicyAbort, PolicyTag:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown malformed key policy %q", ErrInvalidMode, s)
	}
}

// DefaultKeyColumn is the key column of processo workbooks.
const DefaultKeyColumn = "PROCESSO"

// Options configures a reconciliation.
type Options struct {
	// KeyColumn identifies a record in both tables. Defaults to DefaultKeyColumn.
	KeyColumn string

	// CarryColumns are the annotation columns carried from OLD into the result.
	// When nil, every OLD column absent from NEW is a carry column.
	CarryColumns []string

	// Mode selects the output assembly. Defaults to ModeUnion.
	Mode Mode

	// ParityColumn, when set, receives the PAR/ÍMPAR label of every output row and is
	// placed right of the key column. An existing column with that name is overwritten.
	ParityColumn string

	// LastColumn, when present in the output, is moved to the final position.
	LastColumn string

	// MalformedKeys decides how unparsable keys are handled during parity labeling.
	MalformedKeys MalformedKeyPolicy
}

func (o Options) withDefaults() Options {
	if o.KeyColumn == "" {
		o.KeyColumn = DefaultKeyColumn
	}
	if o.Mode == "" {
		o.Mode = ModeUnion
	}
	if o.MalformedKeys == "" {
		o.MalformedKeys = PolicyAbort
	}
	return o
}

// Summary provides the four reconciliation counts.
type Summary struct {
	// TotalOld is the number of unique keys in OLD.
	TotalOld int `json:"total_old"`

	// TotalNew is the number of unique keys in NEW.
	TotalNew int `json:"total_new"`

	// Removed counts keys present in OLD but not in NEW.
	Removed int `json:"removed_count"`

	// Added counts keys present in NEW but not in OLD.
	Added int `json:"added_count"`
}

// Result is the output of a reconciliation.
type Result struct {
	// Table is the merged table, fully materialized.
	Table *table.Table `json:"table"`

	// Summary holds the key-set counts.
	Summary Summary `json:"summary"`

	// RemovedKeys lists the OLD-only keys in their OLD order.
	RemovedKeys []string `json:"removed_keys"`

	// AddedKeys lists the NEW-only keys in their NEW order.
	AddedKeys []string `json:"added_keys"`

	// UnknownParity lists keys labeled processo.Unknown under PolicyTag.
	UnknownParity []string `json:"unknown_parity,omitempty"`
}
