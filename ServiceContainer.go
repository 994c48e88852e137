package main

import (
	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database         *bbolt.DB
	DocumentStore    contracts.DocumentStore
	RowValidator     contracts.RowValidator
	ColumnRepository contracts.ColumnRepository
	RowRepository    contracts.RowRepository
	ChangeNotifier   contracts.ChangeNotifier
	SheetsClient     contracts.SheetsClient
	ApiController    contracts.ApiController
	SheetsController contracts.SheetsController
	Router           *gin.Engine
}

func BuildServiceContainer(config Config) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)
	if err != nil {
		return
	}

	container.SheetsClient, err = NewWorkbookSheetsClient(config.WorkbookDir)
	if err != nil {
		return
	}

	container.DocumentStore = NewBoltDocumentStore(container.Database)
	container.RowValidator = NewRowValidator()
	container.ColumnRepository = NewColumnRepository(container.DocumentStore)
	container.RowRepository = NewRowRepository(container.DocumentStore, container.ColumnRepository, container.RowValidator)
	container.ChangeNotifier = NewChangeNotifier()

	container.ApiController = NewApiController(container.ColumnRepository, container.RowRepository, container.ChangeNotifier)
	container.SheetsController = NewSheetsController(container.SheetsClient)

	container.Router = SetupRouter(container.ApiController, container.SheetsController)

	return
}
