package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/designfolio/internal/action"
	"github.com/designfolio/internal/storage"
)

// UploadImage stores the multipart "file" field in the bucket. An optional
// "maxBytes" field lowers or raises the size limit for this upload.
func (a *API) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondResult(c, action.Fail(action.KindValidation, "Nenhum arquivo enviado"))
		return
	}

	limit := a.uploadLimit
	if raw := c.PostForm("maxBytes"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			respondResult(c, action.Fail(action.KindValidation, "maxBytes inválido"))
			return
		}
		limit = parsed
	}

	file, err := header.Open()
	if err != nil {
		respondResult(c, action.Fail(action.KindStorage, "Erro ao ler arquivo"))
		return
	}
	defer file.Close()

	res := a.actions.UploadImage(c.Request.Context(), storage.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, limit)
	c.JSON(statusFor(res.Result), res)
}

type deleteImageRequest struct {
	URL string `json:"url"`
}

// DeleteImage removes an object previously uploaded to the bucket.
func (a *API) DeleteImage(c *gin.Context) {
	var req deleteImageRequest
	if !bindJSON(c, &req, "JSON inválido") {
		return
	}
	respondResult(c, a.actions.DeleteImage(c.Request.Context(), req.URL))
}
