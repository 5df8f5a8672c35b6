package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/botovelho/barbearia-api/internal/httperr"
	"github.com/botovelho/barbearia-api/internal/uploader"
)

type UploadHandler struct {
	uploader *uploader.Service
	maxBytes int64
}

func NewUploadHandler(up *uploader.Service, maxMB int) *UploadHandler {
	return &UploadHandler{
		uploader: up,
		maxBytes: int64(maxMB) * 1024 * 1024,
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file_required", "Arquivo obrigatório.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httperr.BadRequest(c, "invalid_type", "Só aceitamos imagens.")
		return
	}

	if fileHeader.Size > h.maxBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "Arquivo grande demais.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao ler o arquivo.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil || int64(len(data)) > h.maxBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "Arquivo grande demais.")
		return
	}

	url, err := h.uploader.Save(c.Request.Context(), data, contentType)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_type") {
			httperr.BadRequest(c, "invalid_type", "Formato de imagem não suportado.")
			return
		}
		httperr.Internal(c, "upload_failed", "Erro ao subir a imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "url": url})
}
