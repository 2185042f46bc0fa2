package book

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/httpx"
	"bookshelf/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dunePayload = `{"name":"Dune","year":1965,"author":"Herbert","summary":"...","publisher":"Chilton","pageCount":412,"readPage":412,"reading":false}`

func newRequest(method, path, body string, bookID string) *http.Request {
	if bookID == "" {
		return testutil.NewRequest(method, path, body)
	}
	return testutil.NewRequestWithPathValue(method, path, body, "bookId", bookID)
}

func TestHTTPHandler_Add(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success",
			body:            dunePayload,
			expectedStatus:  http.StatusCreated,
			expectedMessage: msgAdded,
		},
		{
			name:            "missing name",
			body:            `{"author":"Herbert","summary":"...","publisher":"Chilton"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: msgAddMissingName,
		},
		{
			name:            "read page exceeds page count",
			body:            `{"name":"Dune","author":"Herbert","summary":"...","publisher":"Chilton","pageCount":10,"readPage":11}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: msgAddReadPage,
		},
		{
			name:            "missing required fields",
			body:            `{"name":"Dune","pageCount":10,"readPage":1}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: msgAddMissingFields,
		},
		{
			name:            "malformed body",
			body:            `{`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: msgAddBadPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHTTPHandler(NewService(NewMemoryRepo()))

			w := httptest.NewRecorder()
			handler.Add(w, newRequest(http.MethodPost, "/books", tt.body, ""))

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := testutil.DecodeEnvelope(t, w)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, httpx.StatusSuccess, resp.Status)
				assert.NotEmpty(t, testutil.DataField(t, resp, "bookId"))
			} else {
				assert.Equal(t, httpx.StatusFail, resp.Status)
				assert.Nil(t, resp.Data)
			}
		})
	}
}

func TestHTTPHandler_List(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	handler := NewHTTPHandler(svc)
	ctx := context.Background()

	dune := validInput()
	_, err := svc.Add(ctx, dune)
	require.NoError(t, err)
	reading := validInput()
	reading.Name, reading.ReadPage, reading.Reading = "Anathem", 20, true
	_, err = svc.Add(ctx, reading)
	require.NoError(t, err)

	tests := []struct {
		name        string
		queryParams string
		wantNames   []string
	}{
		{name: "no filters", queryParams: "", wantNames: []string{"Dune", "Anathem"}},
		{name: "empty name is ignored", queryParams: "?name=", wantNames: []string{"Dune", "Anathem"}},
		{name: "name", queryParams: "?name=DUN", wantNames: []string{"Dune"}},
		{name: "finished=1", queryParams: "?finished=1", wantNames: []string{"Dune"}},
		{name: "finished=0", queryParams: "?finished=0", wantNames: []string{"Anathem"}},
		{name: "reading=1", queryParams: "?reading=1", wantNames: []string{"Anathem"}},
		{name: "reading other value means false", queryParams: "?reading=yes", wantNames: []string{"Dune"}},
		{name: "reading empty means false", queryParams: "?reading=", wantNames: []string{"Dune"}},
		{name: "no match", queryParams: "?name=zzz", wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.List(w, newRequest(http.MethodGet, "/books"+tt.queryParams, "", ""))

			assert.Equal(t, http.StatusOK, w.Code)
			resp := testutil.DecodeEnvelope(t, w)
			assert.Equal(t, httpx.StatusSuccess, resp.Status)

			books := testutil.DataField(t, resp, "books").([]any)
			names := []string{}
			for _, b := range books {
				item := b.(map[string]any)
				assert.Len(t, item, 3)
				assert.Contains(t, item, "id")
				assert.Contains(t, item, "publisher")
				names = append(names, item["name"].(string))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestHTTPHandler_GetByID(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	handler := NewHTTPHandler(svc)
	id, err := svc.Add(context.Background(), validInput())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetByID(w, newRequest(http.MethodGet, "/books/"+id, "", id))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := testutil.DecodeEnvelope(t, w)
		book := testutil.DataField(t, resp, "book").(map[string]any)
		assert.Equal(t, id, book["id"])
		assert.Equal(t, "Dune", book["name"])
		assert.Equal(t, float64(412), book["pageCount"])
		assert.Equal(t, true, book["finished"])
		assert.Equal(t, book["insertedAt"], book["updatedAt"])
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetByID(w, newRequest(http.MethodGet, "/books/nope", "", "nope"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := testutil.DecodeEnvelope(t, w)
		assert.Equal(t, httpx.StatusFail, resp.Status)
		assert.Equal(t, msgNotFound, resp.Message)
	})
}

func TestHTTPHandler_UpdateByID(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	handler := NewHTTPHandler(svc)
	id, err := svc.Add(context.Background(), validInput())
	require.NoError(t, err)

	tests := []struct {
		name            string
		bookID          string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success",
			bookID:          id,
			body:            `{"name":"Dune Messiah","year":1969,"author":"Herbert","summary":"...","publisher":"Putnam","pageCount":256,"readPage":12,"reading":true}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: msgUpdated,
		},
		{
			name:            "missing name",
			bookID:          id,
			body:            `{"pageCount":1}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: msgUpdateMissingName,
		},
		{
			name:            "read page exceeds page count",
			bookID:          id,
			body:            `{"name":"x","pageCount":1,"readPage":2}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: msgUpdateReadPage,
		},
		{
			name:            "unknown id",
			bookID:          "nope",
			body:            dunePayload,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: msgUpdateNotFound,
		},
		{
			name:            "malformed body",
			bookID:          id,
			body:            `[]`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: msgUpdateBadPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.UpdateByID(w, newRequest(http.MethodPut, "/books/"+tt.bookID, tt.body, tt.bookID))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMessage, testutil.DecodeEnvelope(t, w).Message)
		})
	}

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Name)
	assert.False(t, got.Finished)
}

func TestHTTPHandler_DeleteByID(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	handler := NewHTTPHandler(svc)
	id, err := svc.Add(context.Background(), validInput())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.DeleteByID(w, newRequest(http.MethodDelete, "/books/"+id, "", id))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgDeleted, testutil.DecodeEnvelope(t, w).Message)

	w = httptest.NewRecorder()
	handler.DeleteByID(w, newRequest(http.MethodDelete, "/books/"+id, "", id))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgDeleteNotFound, testutil.DecodeEnvelope(t, w).Message)
}

func TestHTTPHandler_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))
	boom := errors.New("storage unavailable")

	t.Run("list", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, boom)

		w := httptest.NewRecorder()
		handler.List(w, newRequest(http.MethodGet, "/books", "", ""))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, httpx.StatusFail, testutil.DecodeEnvelope(t, w).Status)
	})

	t.Run("get", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "123").Return(Book{}, boom)

		w := httptest.NewRecorder()
		handler.GetByID(w, newRequest(http.MethodGet, "/books/123", "", "123"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "123").Return(boom)

		w := httptest.NewRecorder()
		handler.DeleteByID(w, newRequest(http.MethodDelete, "/books/123", "", "123"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
