package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApiController is the only boundary between transport and the stores.
// It publishes a change event after every successful mutation and never
// for a failed one.
type ApiController struct {
	ColumnRepository contracts.ColumnRepository
	RowRepository    contracts.RowRepository
	ChangeNotifier   contracts.ChangeNotifier
}

type TableEndpointParams struct {
	SpreadsheetId string `uri:"spreadsheet_id" binding:"required"`
}

type ColumnEndpointParams struct {
	SpreadsheetId string `uri:"spreadsheet_id" binding:"required"`
	ColumnName    string `uri:"column_name" binding:"required"`
}

type RowEndpointParams struct {
	SpreadsheetId string `uri:"spreadsheet_id" binding:"required"`
	RowIndex      int    `uri:"row_index"`
}

type ReorderColumnsRequest struct {
	ColumnOrder []string `json:"columnOrder" binding:"required"`
}

func NewApiController(
	columnRepository contracts.ColumnRepository,
	rowRepository contracts.RowRepository,
	changeNotifier contracts.ChangeNotifier,
) *ApiController {
	return &ApiController{
		ColumnRepository: columnRepository,
		RowRepository:    rowRepository,
		ChangeNotifier:   changeNotifier,
	}
}

func (api *ApiController) GetTableAction(c *gin.Context) {
	params := TableEndpointParams{}
	var response *contracts.Table

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.RowRepository.GetTable(params.SpreadsheetId)
	}

	if err != nil {
		respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ListColumnsAction(c *gin.Context) {
	params := TableEndpointParams{}
	var response []contracts.Column

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.ColumnRepository.ListColumns(params.SpreadsheetId)
	}

	if err != nil {
		respondError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"columns": response})
	}
}

func (api *ApiController) AddColumnAction(c *gin.Context) {
	params := TableEndpointParams{}
	spec := contracts.ColumnSpec{}
	var columns []contracts.Column

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&spec)
	}

	if err == nil {
		columns, err = api.ColumnRepository.AddColumn(params.SpreadsheetId, spec)
	}

	if err != nil {
		respondError(c, err)
		return
	}

	api.ChangeNotifier.Publish(params.SpreadsheetId, contracts.ChangeEvent{
		Kind:    contracts.SchemaChanged,
		Op:      contracts.ChangeOpAdd,
		Payload: columns,
	})

	c.JSON(http.StatusCreated, gin.H{"columns": columns})
}

func (api *ApiController) UpdateColumnAction(c *gin.Context) {
	params := ColumnEndpointParams{}
	patch := contracts.ColumnPatch{}
	var columns []contracts.Column

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&patch)
	}

	if err == nil {
		columns, err = api.ColumnRepository.UpdateColumn(params.SpreadsheetId, params.ColumnName, patch)
	}

	if err != nil {
		respondError(c, err)
		return
	}

	api.ChangeNotifier.Publish(params.SpreadsheetId, contracts.ChangeEvent{
		Kind:    contracts.SchemaChanged,
		Op:      contracts.ChangeOpUpdate,
		Payload: columns,
	})

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (api *ApiController) DeleteColumnAction(c *gin.Context) {
	params := ColumnEndpointParams{}
	var columns []contracts.Column

	err := c.ShouldBindUri(&params)

	if err == nil {
		columns, err = api.ColumnRepository.DeleteColumn(params.SpreadsheetId, params.ColumnName)
	}

	if err != nil {
		respondError(c, err)
		return
	}

	api.ChangeNotifier.Publish(params.SpreadsheetId, contracts.ChangeEvent{
		Kind:    contracts.SchemaChanged,
		Op:      contracts.ChangeOpDelete,
		Payload: columns,
	})

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (api *ApiController) ReorderColumnsAction(c *gin.Context) {
	params := TableEndpointParams{}
	request := ReorderColumnsRequest{}
	var columns []contracts.Column

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		columns, err = api.ColumnRepository.ReorderColumns(params.SpreadsheetId, request.ColumnOrder)
	}

	if err != nil {
		respondError(c, err)
		return
	}

	api.ChangeNotifier.Publish(params.SpreadsheetId, contracts.ChangeEvent{
		Kind:    contracts.SchemaChanged,
		Op:      contracts.ChangeOpReorder,
		Payload: columns,
	})

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (api *ApiController) AddRowAction(c *gin.Context) {
	params := TableEndpointParams{}
	payload := contracts.RowPayload{}
	var rows []contracts.Row

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&payload)
	}

	if err == nil {
		rows, err = api.RowRepository.AddRow(params.SpreadsheetId, payload)
	}

	if err != nil {
		respondError(c, err)
		return
	}

	api.ChangeNotifier.Publish(params.SpreadsheetId, contracts.ChangeEvent{
		Kind:    contracts.RowChanged,
		Op:      contracts.ChangeOpAdd,
		Payload: rows,
	})

	c.JSON(http.StatusCreated, gin.H{"rows": rows})
}

func (api *ApiController) UpdateRowAction(c *gin.Context) {
	params := RowEndpointParams{}
	payload := contracts.RowPayload{}
	var rows []contracts.Row

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&payload)
	}

	if err == nil {
		rows, err = api.RowRepository.UpdateRow(params.SpreadsheetId, params.RowIndex, payload)
	}

	if err != nil {
		respondError(c, err)
		return
	}

	rowIndex := params.RowIndex
	api.ChangeNotifier.Publish(params.SpreadsheetId, contracts.ChangeEvent{
		Kind:    contracts.RowChanged,
		Op:      contracts.ChangeOpUpdate,
		Index:   &rowIndex,
		Payload: rows,
	})

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (api *ApiController) DeleteRowAction(c *gin.Context) {
	params := RowEndpointParams{}
	var rows []contracts.Row

	err := c.ShouldBindUri(&params)

	if err == nil {
		rows, err = api.RowRepository.DeleteRow(params.SpreadsheetId, params.RowIndex)
	}

	if err != nil {
		respondError(c, err)
		return
	}

	rowIndex := params.RowIndex
	api.ChangeNotifier.Publish(params.SpreadsheetId, contracts.ChangeEvent{
		Kind:    contracts.RowChanged,
		Op:      contracts.ChangeOpDelete,
		Index:   &rowIndex,
		Payload: rows,
	})

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// SubscribeAction streams change events for one spreadsheet id as
// server-sent events. The viewer is joined for the lifetime of the
// request and leaves on disconnect; events published while disconnected
// are never replayed.
func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := TableEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		respondError(c, err)
		return
	}

	connectionId := uuid.NewString()
	subscription := api.ChangeNotifier.Join(connectionId, params.SpreadsheetId)
	defer api.ChangeNotifier.Leave(connectionId, params.SpreadsheetId)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-subscription:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Kind), event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func respondError(c *gin.Context, err error) {
	var fieldError *contracts.FieldError

	switch {
	case errors.Is(err, contracts.ColumnNotFoundError) || errors.Is(err, contracts.RowNotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.DuplicateColumnError):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.InvalidColumnSpecError):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &fieldError):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fieldError.Error(), "column": fieldError.Column})
	case errors.Is(err, contracts.StorageError):
		// storage diagnostics stay out of responses
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
