package main

import (
	"errors"
	"net/http"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/gin-gonic/gin"
)

// SheetsController proxies the remote spreadsheet provider; values and
// range expressions pass through without interpretation.
type SheetsController struct {
	SheetsClient contracts.SheetsClient
}

type CreateSpreadsheetRequest struct {
	Title string `json:"title" binding:"required"`
}

type RangeEndpointParams struct {
	SpreadsheetId string `uri:"spreadsheet_id" binding:"required"`
	Range         string `uri:"range" binding:"required"`
}

type RangeValuesRequest struct {
	Values [][]string `json:"values" binding:"required"`
}

func NewSheetsController(sheetsClient contracts.SheetsClient) *SheetsController {
	return &SheetsController{SheetsClient: sheetsClient}
}

func (ctrl *SheetsController) CreateSpreadsheetAction(c *gin.Context) {
	request := CreateSpreadsheetRequest{}
	var response *contracts.Spreadsheet

	err := c.ShouldBindJSON(&request)

	if err == nil {
		response, err = ctrl.SheetsClient.CreateSpreadsheet(request.Title)
	}

	if err != nil {
		respondSheetsError(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (ctrl *SheetsController) GetRangeAction(c *gin.Context) {
	params := RangeEndpointParams{}
	var values [][]string

	err := c.ShouldBindUri(&params)

	if err == nil {
		values, err = ctrl.SheetsClient.GetRange(params.SpreadsheetId, params.Range)
	}

	if err != nil {
		respondSheetsError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"values": values})
	}
}

func (ctrl *SheetsController) UpdateRangeAction(c *gin.Context) {
	params := RangeEndpointParams{}
	request := RangeValuesRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		err = ctrl.SheetsClient.UpdateRange(params.SpreadsheetId, params.Range, request.Values)
	}

	if err != nil {
		respondSheetsError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}

func (ctrl *SheetsController) AppendRangeAction(c *gin.Context) {
	params := RangeEndpointParams{}
	request := RangeValuesRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		err = ctrl.SheetsClient.AppendRange(params.SpreadsheetId, params.Range, request.Values)
	}

	if err != nil {
		respondSheetsError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"appended": true})
	}
}

func respondSheetsError(c *gin.Context, err error) {
	if errors.Is(err, contracts.SpreadsheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
