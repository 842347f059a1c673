// Package reconcile merges two versions of a processo workbook.
//
// Given an OLD (complete, annotated) table and a NEW (filter) table sharing a key
// column, the engine classifies every key as removed, added or retained, carries the
// annotation columns that only exist in OLD, labels each row with its parity and
// returns a single merged table ready to be exported again.
//
// # Modes
//
//   - ModeFilter: keep the OLD rows whose key is still present in NEW.
//   - ModeUnion: ModeFilter plus the NEW rows whose key is absent from OLD, with
//     every carry column set to "".
//   - ModeRefresh: keep every NEW row and fill each empty carry column from the
//     first OLD row with the same key.
//
// # Counts
//
// Summary counts are computed once from the two unique key sets and do not depend
// on the mode:
//
//	TotalOld = |old|   TotalNew = |new|   Removed = |old − new|   Added = |new − old|
//
// # Column Placement
//
// When a parity column is requested it is placed immediately right of the key
// column. A designated last column (e.g. "TAREFAS") is always moved to the end.
//
// # Errors
//
// The engine never logs and never retries. A missing key column aborts with a
// *MissingColumnError; a malformed key aborts with *processo.MalformedKeyError unless
// Options.MalformedKeys is PolicyTag, in which case the row is labeled
// processo.Unknown and kept.
//
// # Usage Example
//
//	res, err := reconcile.Reconcile(oldTable, newTable, reconcile.Options{
//	    KeyColumn:    "PROCESSO",
//	    Mode:         reconcile.ModeUnion,
//	    ParityColumn: "TIPO",
//	    LastColumn:   "TAREFAS",
//	})
//	fmt.Println(res.Summary.Removed, res.Summary.Added)
package reconcile
