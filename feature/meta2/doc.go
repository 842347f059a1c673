// Package meta2 implements the "Meta 2" workbook comparison feature.
//
// A user uploads the OLD (annotated) and NEW (filter) workbooks of the Meta 2 goal; the
// feature reconciles them with core/reconcile and returns the merged workbook, with the
// TIPO parity column right of PROCESSO and TAREFAS last, plus the four summary counts.
//
// # Components
//
//   - Service: parses workbooks, runs the engine, encodes and optionally publishes the result.
//   - Handler: exposes the HTTP endpoint.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /meta2/compare : multipart fields "old" and "new".
//     Query: mode (filter|union|refresh), format (json|xlsx|csv), publish (true|false).
package meta2
