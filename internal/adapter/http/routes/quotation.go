package routes

import (
	"bond_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotation = "/quotation"
	PathBond      = "/bond"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotation)
	{
		quotations.POST("/save", quotationHandler.Save)
		quotations.GET("/:id", quotationHandler.GetByID)
	}

	rg.POST(PathBond+"/payload", quotationHandler.BuildBondPayload)
}
