package main

import (
	"net/http"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/gin-gonic/gin"
)

const ApiVersion = "v1"

func SetupRouter(controller contracts.ApiController, sheetsController contracts.SheetsController) *gin.Engine {
	router := gin.New()

	tables := router.Group("/api/" + ApiVersion + "/tables")
	tables.GET("/:spreadsheet_id", controller.GetTableAction)
	tables.GET("/:spreadsheet_id/events", controller.SubscribeAction)

	tables.GET("/:spreadsheet_id/columns", controller.ListColumnsAction)
	tables.POST("/:spreadsheet_id/columns", controller.AddColumnAction)
	tables.PUT("/:spreadsheet_id/columns/reorder", controller.ReorderColumnsAction)
	tables.PUT("/:spreadsheet_id/columns/:column_name", controller.UpdateColumnAction)
	tables.DELETE("/:spreadsheet_id/columns/:column_name", controller.DeleteColumnAction)

	tables.POST("/:spreadsheet_id/rows", controller.AddRowAction)
	tables.PUT("/:spreadsheet_id/rows/:row_index", controller.UpdateRowAction)
	tables.DELETE("/:spreadsheet_id/rows/:row_index", controller.DeleteRowAction)

	sheets := router.Group("/api/" + ApiVersion + "/sheets")
	sheets.POST("", sheetsController.CreateSpreadsheetAction)
	sheets.GET("/:spreadsheet_id/:range", sheetsController.GetRangeAction)
	sheets.PUT("/:spreadsheet_id/:range", sheetsController.UpdateRangeAction)
	sheets.POST("/:spreadsheet_id/:range", sheetsController.AppendRangeAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
