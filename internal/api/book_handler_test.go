package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougbrunos/go-rest-apis/internal/service"
	"github.com/dougbrunos/go-rest-apis/internal/store"
)

func newTestBookHandler() *BookHandler {
	svc := service.NewBookService(store.NewMemoryBookStore(), testLogger())
	return NewBookHandler(svc, testLogger())
}

func createBookViaHandler(t *testing.T, h *BookHandler, payload string) BookDTO {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/book/v1", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.Create(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, "unexpected create response: %s", rr.Body.String())

	var dto BookDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
	return dto
}

func TestBookCreateAndGetPreservesPrice(t *testing.T) {
	h := newTestBookHandler()

	created := createBookViaHandler(t,
		h,
		`{"title":"Docker Deep Dive","author":"Nigel Poulton","price":"55.99","launch_date":"2017-07-29T00:00:00Z"}`)
	require.Equal(t, int64(1), created.ID)
	assert.Equal(t, "55.99", created.Price.String(), "price must survive the round trip without float drift")

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/book/v1/1", nil), "id", "1")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got BookDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Docker Deep Dive", got.Title)
	assert.Equal(t, "Nigel Poulton", got.Author)
	assert.Equal(t, "55.99", got.Price.String())
}

func TestBookListOrderedByID(t *testing.T) {
	h := newTestBookHandler()
	createBookViaHandler(t, h, `{"title":"First","author":"A","price":"10"}`)
	createBookViaHandler(t, h, `{"title":"Second","author":"B","price":"20"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/book/v1", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var books []BookDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&books))
	require.Len(t, books, 2)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, int64(2), books[1].ID)
}

func TestBookGetByIDNotFound(t *testing.T) {
	h := newTestBookHandler()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/book/v1/7", nil), "id", "7")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Book not found", decodeErrorBody(t, rr.Body).Error)
}

func TestBookCreateInvalidPayload(t *testing.T) {
	h := newTestBookHandler()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"author":"Nigel Poulton","price":"55.99"}`},
		{name: "missing author", body: `{"title":"Docker Deep Dive","price":"55.99"}`},
		{name: "negative price", body: `{"title":"Docker Deep Dive","author":"Nigel Poulton","price":"-1"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/book/v1", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			h.Create(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestBookUpdateAndDelete(t *testing.T) {
	h := newTestBookHandler()
	createBookViaHandler(t, h, `{"title":"Docker Deep Dive","author":"Nigel Poulton","price":"55.99"}`)

	body := `{"id":1,"title":"Docker Deep Dive","author":"Nigel Poulton","price":"49.90"}`
	req := httptest.NewRequest(http.MethodPut, "/api/book/v1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var updated BookDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&updated))
	assert.Equal(t, "49.90", updated.Price.String())

	delReq := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/book/v1/1", nil), "id", "1")
	delRR := httptest.NewRecorder()
	h.Delete(delRR, delReq)

	require.Equal(t, http.StatusNoContent, delRR.Code)

	getReq := withURLParam(httptest.NewRequest(http.MethodGet, "/api/book/v1/1", nil), "id", "1")
	getRR := httptest.NewRecorder()
	h.GetByID(getRR, getReq)

	assert.Equal(t, http.StatusNotFound, getRR.Code)
}

func TestBookCreateFromYAMLBody(t *testing.T) {
	h := newTestBookHandler()

	body := "title: Docker Deep Dive\nauthor: Nigel Poulton\nprice: \"55.99\"\n"
	req := httptest.NewRequest(http.MethodPost, "/api/book/v1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-yaml")
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, "unexpected response: %s", rr.Body.String())
	var created BookDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, "55.99", created.Price.String())
}
