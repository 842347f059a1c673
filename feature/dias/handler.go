package dias

import (
	"fmt"
	"io"
	"strconv"

	"processo-manager/core/logger"
	"processo-manager/core/processo"
	"processo-manager/core/server"
	"processo-manager/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ParityResponse is the JSON rendering of a parity report.
type ParityResponse struct {
	Even     int        `json:"even"`
	Odd      int        `json:"odd"`
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	FileName string     `json:"file_name"`
}

// Handler handles HTTP requests for parity reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dias routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/dias")
	group.Post("/parity", h.HandleParity)
}

// HandleParity builds the parity report of the uploaded workbook.
// @Summary Parity report
// @Description Keeps the working columns of the uploaded workbook, labels every PROCESSO as PAR or ÍMPAR and filters the rows. Counts cover every row and are also sent as X-Even-Count and X-Odd-Count headers.
// @Tags dias
// @Accept multipart/form-data
// @Produce json,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param file formData file true "Workbook"
// @Param filter query string false "todos, pares or impares"
// @Param format query string false "json, xlsx or csv"
// @Success 200 {object} ParityResponse "Report"
// @Failure 400 {object} map[string]string "Missing upload"
// @Failure 422 {object} map[string]string "Invalid workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dias/parity [post]
func (h *Handler) HandleParity(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	filter, err := processo.ParseFilter(c.Query("filter"))
	if err != nil {
		return fail(c, l, err)
	}

	format := c.Query("format", string(sheet.XLSX))
	asJSON := format == "json"
	var encoding sheet.Format
	if !asJSON {
		if encoding, err = sheet.ParseFormat(format); err != nil {
			return fail(c, l, err)
		}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, l, fmt.Errorf("%w: missing file field %q", server.ErrBadRequest, "file"))
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, l, fmt.Errorf("failed to open upload: %w", err))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fail(c, l, fmt.Errorf("failed to read upload: %w", err))
	}

	out, err := h.service.Parity(fh.Filename, data, filter, encoding)
	if err != nil {
		return fail(c, l, err)
	}

	c.Set("X-Even-Count", strconv.Itoa(out.Report.Even))
	c.Set("X-Odd-Count", strconv.Itoa(out.Report.Odd))

	if asJSON {
		matrix := out.Report.Table.Matrix()
		return c.JSON(ParityResponse{
			Even:     out.Report.Even,
			Odd:      out.Report.Odd,
			Columns:  matrix[0],
			Rows:     matrix[1:],
			FileName: out.FileName,
		})
	}

	c.Attachment(out.FileName)
	c.Set(fiber.HeaderContentType, out.ContentType)
	return c.Send(out.Content)
}

func fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := server.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Parity report failed", zap.Error(err))
	} else {
		l.Warn("Parity report rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
