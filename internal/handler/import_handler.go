package handler

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orderscope/internal/domain"
	"orderscope/internal/service"
)

// maxImportSize bounds uploaded export files (64 MiB).
const maxImportSize = 64 << 20

// ImportHandler handles import endpoints.
type ImportHandler struct {
	imports service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(imports service.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// Upload handles POST /imports — multipart upload of a CSV/XLSX export.
// Form fields: file (the export), kind (invoice | sales_receipt).
func (h *ImportHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > maxImportSize {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "import file exceeds maximum allowed size")
		return
	}

	kind := domain.DocumentKind(c.PostForm("kind"))
	if kind != "" && kind != domain.KindInvoice && kind != domain.KindSalesReceipt {
		RespondError(c, http.StatusBadRequest, "INVALID_KIND", "kind must be invoice or sales_receipt")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not open uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	stats, err := h.imports.ImportBytes(c.Request.Context(), fileHeader.Filename, data, kind)
	if err != nil {
		log.Printf("importHandler.Upload: import of %s failed: %v", fileHeader.Filename, err)
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, stats)
}

// ListRuns handles GET /imports — the import history.
func (h *ImportHandler) ListRuns(c *gin.Context) {
	offset, limit := pagination(c)
	runs, total, err := h.imports.ListRuns(c.Request.Context(), offset, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPaginated(c, runs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// pagination extracts offset/limit query params with sane bounds.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return offset, limit
}
