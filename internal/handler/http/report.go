package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/handler/http/response"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/service/report"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Export implements ReportHandler. The workbook is buffered so a failed
// service call can still produce a JSON error response.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "xlsx" {
		response.BadRequest(w, "Unsupported export format", map[string]string{
			"format": "only xlsx is supported",
		})
		return
	}

	userID := chi.URLParam(r, "userId")

	var buf bytes.Buffer
	filename, err := h.reportService.WriteXLSX(r.Context(), userID, &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
