package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/JatinVermaJv/sheetSync-dashboard/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func _sheetsRequest(controller contracts.SheetsController, method string, path string, body string) *httptest.ResponseRecorder {
	router := SetupRouter(&ApiController{}, controller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, "/api/"+ApiVersion+path, bytes.NewBufferString(body))
	router.ServeHTTP(w, req)
	return w
}

func TestSheetsController_CreateSpreadsheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("creates and returns the spreadsheet", func(t *testing.T) {
		sheetsClient := mocks.NewSheetsClient(t)
		sheetsClient.On("CreateSpreadsheet", "Budget").
			Return(&contracts.Spreadsheet{SpreadsheetId: "book-1", Title: "Budget"}, nil)

		controller := NewSheetsController(sheetsClient)

		w := _sheetsRequest(controller, http.MethodPost, "/sheets", `{"title":"Budget"}`)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "book-1", response["spreadsheetId"])
	})

	t.Run("missing title", func(t *testing.T) {
		controller := NewSheetsController(mocks.NewSheetsClient(t))

		w := _sheetsRequest(controller, http.MethodPost, "/sheets", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSheetsController_RangeActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get range", func(t *testing.T) {
		sheetsClient := mocks.NewSheetsClient(t)
		sheetsClient.On("GetRange", "book-1", "Budget!A1:B2").
			Return([][]string{{"Name", "Qty"}}, nil)

		controller := NewSheetsController(sheetsClient)

		w := _sheetsRequest(controller, http.MethodGet, "/sheets/book-1/Budget!A1:B2", "")
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, response, "values")
	})

	t.Run("unknown spreadsheet id", func(t *testing.T) {
		sheetsClient := mocks.NewSheetsClient(t)
		sheetsClient.On("GetRange", "missing", "A1").
			Return(nil, contracts.SpreadsheetNotFoundError)

		controller := NewSheetsController(sheetsClient)

		w := _sheetsRequest(controller, http.MethodGet, "/sheets/missing/A1", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update range", func(t *testing.T) {
		sheetsClient := mocks.NewSheetsClient(t)
		sheetsClient.On("UpdateRange", "book-1", "A1:B1", [][]string{{"a", "b"}}).Return(nil)

		controller := NewSheetsController(sheetsClient)

		w := _sheetsRequest(controller, http.MethodPut, "/sheets/book-1/A1:B1", `{"values":[["a","b"]]}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("append range", func(t *testing.T) {
		sheetsClient := mocks.NewSheetsClient(t)
		sheetsClient.On("AppendRange", "book-1", "A1", [][]string{{"a"}}).Return(nil)

		controller := NewSheetsController(sheetsClient)

		w := _sheetsRequest(controller, http.MethodPost, "/sheets/book-1/A1", `{"values":[["a"]]}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
