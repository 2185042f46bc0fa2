package book

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bookshelf/internal/httpx"
)

// Fail messages are part of the public API and must stay stable.
const (
	msgAdded            = "Buku berhasil ditambahkan"
	msgAddMissingName   = "Gagal menambahkan buku. Mohon isi nama buku"
	msgAddReadPage      = "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"
	msgAddMissingFields = "Gagal menambahkan buku. Mohon isi semua properti yang diperlukan (author, summary, publisher)"
	msgAddBadPayload    = "Gagal menambahkan buku. Payload tidak valid"

	msgNotFound = "Buku tidak ditemukan"

	msgUpdated           = "Buku berhasil diperbarui"
	msgUpdateMissingName = "Gagal memperbarui buku. Mohon isi nama buku"
	msgUpdateReadPage    = "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount"
	msgUpdateNotFound    = "Gagal memperbarui buku. Id tidak ditemukan"
	msgUpdateBadPayload  = "Gagal memperbarui buku. Payload tidak valid"

	msgDeleted        = "Buku berhasil dihapus"
	msgDeleteNotFound = "Buku gagal dihapus. Id tidak ditemukan"

	msgInternal = "Terjadi kegagalan pada server"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Add)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{bookId}", h.GetByID)
	mux.HandleFunc("PUT /books/{bookId}", h.UpdateByID)
	mux.HandleFunc("DELETE /books/{bookId}", h.DeleteByID)
}

// Add handles POST /books
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /books [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, msgAddBadPayload)
		return
	}

	id, err := h.service.Add(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			httpx.JSONFail(w, http.StatusBadRequest, msgAddMissingName)
		case errors.Is(err, ErrReadPageExceedsPageCount):
			httpx.JSONFail(w, http.StatusBadRequest, msgAddReadPage)
		case errors.Is(err, ErrMissingRequiredFields):
			httpx.JSONFail(w, http.StatusBadRequest, msgAddMissingFields)
		default:
			internalError(w, r, err)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, msgAdded, map[string]any{"bookId": id})
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param reading query string false "1 for reading, anything else for not reading"
// @Param finished query string false "1 for finished, anything else for unfinished"
// @Success 200 {object} httpx.Response
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	f := Filter{
		Name:     query.Get("name"),
		Reading:  flagParam(query.Has("reading"), query.Get("reading")),
		Finished: flagParam(query.Has("finished"), query.Get("finished")),
	}

	books, err := h.service.List(r.Context(), f)
	if err != nil {
		internalError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"books": books})
}

// flagParam decodes a tri-state query flag: absent means no filter, "1" means true.
func flagParam(present bool, v string) *bool {
	if !present {
		return nil
	}
	b := v == "1"
	return &b
}

// GetByID handles GET /books/{bookId}
// @Summary Get book by id
// @Tags books
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("bookId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgNotFound)
			return
		}
		internalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"book": b})
}

// UpdateByID handles PUT /books/{bookId}
// @Summary Replace the editable fields of a book
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [put]
func (h *HTTPHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, msgUpdateBadPayload)
		return
	}

	err := h.service.UpdateByID(r.Context(), r.PathValue("bookId"), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			httpx.JSONFail(w, http.StatusBadRequest, msgUpdateMissingName)
		case errors.Is(err, ErrReadPageExceedsPageCount):
			httpx.JSONFail(w, http.StatusBadRequest, msgUpdateReadPage)
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, msgUpdateNotFound)
		default:
			internalError(w, r, err)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, msgUpdated, nil)
}

// DeleteByID handles DELETE /books/{bookId}
// @Summary Delete a book
// @Tags books
// @Produce json
// @Param bookId path string true "Book id"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /books/{bookId} [delete]
func (h *HTTPHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), r.PathValue("bookId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, msgDeleteNotFound)
			return
		}
		internalError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, msgDeleted, nil)
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("request failed: method=%s path=%s request_id=%s error=%v",
		r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
	httpx.JSONFail(w, http.StatusInternalServerError, msgInternal)
}
