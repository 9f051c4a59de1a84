package action

import (
	"context"

	"github.com/designfolio/internal/storage"
)

// UploadResult is the outcome of an image upload.
type UploadResult struct {
	Result
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// UploadImage stores an image and returns its public URL. The page cache is
// untouched until a record references the URL.
func (a *Actions) UploadImage(ctx context.Context, file storage.File, maxBytes int64) UploadResult {
	if a.images == nil {
		return UploadResult{Result: Fail(KindStorage, "Armazenamento indisponível")}
	}
	res := a.images.Upload(ctx, file, maxBytes)
	a.metrics.Storage("upload", res.Success)
	if !res.Success {
		return UploadResult{Result: Fail(KindStorage, res.Error)}
	}
	return UploadResult{Result: OK(0), URL: res.URL, Width: res.Width, Height: res.Height}
}

// DeleteImage removes an uploaded image that no record references yet, e.g.
// when the admin clears a preview before saving.
func (a *Actions) DeleteImage(ctx context.Context, rawURL string) Result {
	if a.images == nil {
		return Fail(KindStorage, "Armazenamento indisponível")
	}
	res := a.images.Delete(ctx, rawURL)
	a.metrics.Storage("delete", res.Success)
	if !res.Success {
		return Fail(KindStorage, res.Error)
	}
	return OK(0)
}
