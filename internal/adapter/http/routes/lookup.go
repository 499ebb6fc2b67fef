package routes

import (
	"bond_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIRP      = "/irp"
	PathSanction = "/sanction"
	PathRAG      = "/rag"
)

func addLookupRoutes(rg *gin.RouterGroup, lookupHandler *handlers.LookupHandler) {
	irp := rg.Group(PathIRP)
	{
		irp.GET("/grade", lookupHandler.GetCompanyGrade)
		irp.POST("/intermediary/validate", lookupHandler.ValidateIntermediary)
		irp.POST("/company/address", lookupHandler.RecordCompanyAddress)
		irp.GET("/company/address", lookupHandler.ListCompanyAddresses)
	}

	rg.POST(PathSanction+"/check", lookupHandler.CheckSanction)
	rg.POST(PathRAG+"/pricing", lookupHandler.QueryPricing)
}
