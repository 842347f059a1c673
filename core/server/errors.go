package server

import (
	"errors"

	"processo-manager/core/processo"
	"processo-manager/core/reconcile"
	"processo-manager/core/sheet"

	"github.com/gofiber/fiber/v2"
)

// ErrBadRequest marks errors caused by a malformed request (e.g. a missing upload).
var ErrBadRequest = errors.New("bad request")

// StatusFor maps an error to the HTTP status returned to the client.
// Input problems the user can fix in the spreadsheet are 422.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, processo.ErrMalformedKey),
		errors.Is(err, processo.ErrMissingColumns),
		errors.Is(err, processo.ErrInvalidFilter),
		errors.Is(err, reconcile.ErrMissingColumn),
		errors.Is(err, reconcile.ErrInvalidMode),
		errors.Is(err, sheet.ErrUnsupportedFormat),
		errors.Is(err, sheet.ErrEmptyWorkbook):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
