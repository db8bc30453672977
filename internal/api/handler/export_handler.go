package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler spreadsheet downloads
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportLedger GET /api/financial/export?start_date&end_date
func (h *ExportHandler) ExportLedger(c *gin.Context) {
	var req dto.DateRangeQuery
	if !bindQuery(c, &req) {
		return
	}

	buf, filename, err := h.exportSvc.ExportLedger(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
