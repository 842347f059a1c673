package meta2

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"processo-manager/core/logger"
	"processo-manager/core/reconcile"
	"processo-manager/core/server"
	"processo-manager/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CompareResponse is the JSON rendering of a comparison.
type CompareResponse struct {
	Summary       reconcile.Summary `json:"summary"`
	RemovedKeys   []string          `json:"removed_keys"`
	AddedKeys     []string          `json:"added_keys"`
	UnknownParity []string          `json:"unknown_parity,omitempty"`
	Columns       []string          `json:"columns"`
	Rows          [][]string        `json:"rows"`
	FileName      string            `json:"file_name"`
	PublishedAs   string            `json:"published_as,omitempty"`
}

// Handler handles HTTP requests for Meta 2 comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the meta2 routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/meta2")
	group.Post("/compare", h.HandleCompare)
}

// HandleCompare reconciles the uploaded OLD and NEW workbooks.
// @Summary Compare Meta 2 workbooks
// @Description Reconciles the OLD (annotated) and NEW (filter) workbooks by PROCESSO and returns the merged workbook or its JSON rendering. Summary counts are also sent as X-Total-Old, X-Total-New, X-Removed-Count and X-Added-Count headers.
// @Tags meta2
// @Accept multipart/form-data
// @Produce json,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param old formData file true "OLD / complete workbook"
// @Param new formData file true "NEW / filter workbook"
// @Param mode query string false "filter, union or refresh"
// @Param format query string false "json, xlsx or csv"
// @Param publish query boolean false "Publish the result to the storage bucket (as XLSX when format=json)"
// @Success 200 {object} CompareResponse "Comparison"
// @Failure 400 {object} map[string]string "Missing upload"
// @Failure 422 {object} map[string]string "Invalid workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /meta2/compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	old, err := readUpload(c, "old")
	if err != nil {
		return fail(c, l, err)
	}
	current, err := readUpload(c, "new")
	if err != nil {
		return fail(c, l, err)
	}

	format := c.Query("format", string(sheet.XLSX))
	asJSON := format == "json"
	params := Params{
		Mode:     c.Query("mode"),
		Publish:  c.QueryBool("publish", false),
		SkipFile: asJSON,
	}
	if !asJSON {
		if params.Format, err = sheet.ParseFormat(format); err != nil {
			return fail(c, l, err)
		}
	}

	l.Info("Comparing workbooks", zap.String("old", old.Name), zap.String("new", current.Name))
	out, err := h.service.Compare(c.Context(), old, current, params)
	if err != nil {
		return fail(c, l, err)
	}

	s := out.Result.Summary
	c.Set("X-Total-Old", strconv.Itoa(s.TotalOld))
	c.Set("X-Total-New", strconv.Itoa(s.TotalNew))
	c.Set("X-Removed-Count", strconv.Itoa(s.Removed))
	c.Set("X-Added-Count", strconv.Itoa(s.Added))

	if asJSON {
		matrix := out.Result.Table.Matrix()
		return c.JSON(CompareResponse{
			Summary:       s,
			RemovedKeys:   out.Result.RemovedKeys,
			AddedKeys:     out.Result.AddedKeys,
			UnknownParity: out.Result.UnknownParity,
			Columns:       matrix[0],
			Rows:          matrix[1:],
			FileName:      out.FileName,
			PublishedAs:   out.PublishedAs,
		})
	}

	if out.PublishedAs != "" {
		c.Set("X-Published-As", out.PublishedAs)
	}
	c.Attachment(out.FileName)
	c.Set(fiber.HeaderContentType, out.ContentType)
	return c.Send(out.Content)
}

func readUpload(c *fiber.Ctx, field string) (Workbook, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return Workbook{}, fmt.Errorf("%w: missing file field %q", server.ErrBadRequest, field)
	}
	f, err := fh.Open()
	if err != nil {
		return Workbook{}, fmt.Errorf("failed to open upload %q: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Workbook{}, fmt.Errorf("failed to read upload %q: %w", field, err)
	}
	return Workbook{Name: fh.Filename, Data: data}, nil
}

func fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := server.StatusFor(err)
	if errors.Is(err, ErrStorageDisabled) {
		status = fiber.StatusServiceUnavailable
	}
	if status >= fiber.StatusInternalServerError {
		l.Error("Comparison failed", zap.Error(err))
	} else {
		l.Warn("Comparison rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
