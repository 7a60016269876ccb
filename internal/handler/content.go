package handler

import (
	"net/http"
)

// RawContent handles GET /content/{cid}
// @Summary      Stored document
// @Description  Returns a stored document with the media type the gateway reported
// @Tags         content
// @Produce      json
// @Produce      plain
// @Produce      octet-stream
// @Param        cid  path      string  true  "Content id"
// @Success      200
// @Failure      400  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /content/{cid} [get]
func (h *Handler) RawContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Storage.Fetch(r.Context(), r.PathValue("cid"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	contentType := doc.ContentType
	switch {
	case doc.IsJSON():
		contentType = "application/json"
	case contentType == "":
		contentType = http.DetectContentType(doc.Body)
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Body)
}
