package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/backup"
)

// BackupHandler descarga respaldos SQL/CSV. El formato por defecto es sql.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// ExportStore GET /api/backup/export?format=sql|csv
func (h *BackupHandler) ExportStore(c *fiber.Ctx) error {
	out, err := h.uc.ExportStore(c.Context(), GetPrincipal(c), targetStoreID(c), c.Query("format", backup.FormatSQL))
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, out)
}

// ExportAll GET /api/admin/backup/export?format=sql|csv
func (h *BackupHandler) ExportAll(c *fiber.Ctx) error {
	out, err := h.uc.ExportAll(c.Context(), GetPrincipal(c), c.Query("format", backup.FormatSQL))
	if err != nil {
		return writeError(c, err)
	}
	return sendExport(c, out)
}

func sendExport(c *fiber.Ctx, out *backup.Export) error {
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.Filename+`"`)
	return c.Send(out.Data)
}
