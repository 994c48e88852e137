package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GetTableAction(c *gin.Context)
	AddRowAction(c *gin.Context)
	UpdateRowAction(c *gin.Context)
	DeleteRowAction(c *gin.Context)
	ListColumnsAction(c *gin.Context)
	AddColumnAction(c *gin.Context)
	UpdateColumnAction(c *gin.Context)
	DeleteColumnAction(c *gin.Context)
	ReorderColumnsAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}

type SheetsController interface {
	CreateSpreadsheetAction(c *gin.Context)
	GetRangeAction(c *gin.Context)
	UpdateRangeAction(c *gin.Context)
	AppendRangeAction(c *gin.Context)
}
