package handlers

import (
	"errors"
	"net/http"

	request "bond_quotation/internal/adapter/http/dto/request"
	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase"
	"bond_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLookupPayload = pkg.NewDomainErrorSimple("INVALID_LOOKUP_INPUT", "Invalid lookup payload", http.StatusBadRequest)

// LookupHandler exposes the IRP, sanction and pricing lookups directly.

type LookupHandler struct {
	usecase usecase.ILookupUseCase
}

func NewLookupHandler(uc usecase.ILookupUseCase) *LookupHandler {
	return &LookupHandler{usecase: uc}
}

// GetCompanyGrade godoc
// @Summary      IRP company grade
// @Tags         irp
// @Produce      json
// @Param        companyId  query  string  true  "Company ID"
// @Success      200  {object}  entities.CompanyGrade
// @Failure      400  {object}  pkg.HTTPError
// @Router       /irp/grade [get]
func (h *LookupHandler) GetCompanyGrade(c *gin.Context) {
	grade, err := h.usecase.GetCompanyGrade(c.Request.Context(), c.Query("companyId"))
	if err != nil {
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, grade)
}

// ValidateIntermediary godoc
// @Summary      Validate an intermediary
// @Tags         irp
// @Accept       json
// @Produce      json
// @Param        body  body  request.ValidateIntermediaryRequest  true  "Intermediary"
// @Success      200  {object}  entities.IntermediaryValidation
// @Failure      400  {object}  pkg.HTTPError
// @Router       /irp/intermediary/validate [post]
func (h *LookupHandler) ValidateIntermediary(c *gin.Context) {
	var payload request.ValidateIntermediaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLookupPayload.HTTPStatus, errInvalidLookupPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ValidateIntermediary(c.Request.Context(), payload.IntermediaryID)
	if err != nil {
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// RecordCompanyAddress godoc
// @Summary      Record a prospect company address
// @Tags         irp
// @Accept       json
// @Produce      json
// @Param        body  body  request.CompanyAddressRequest  true  "Address"
// @Success      201  {object}  entities.CompanyAddress
// @Failure      400  {object}  pkg.HTTPError
// @Router       /irp/company/address [post]
func (h *LookupHandler) RecordCompanyAddress(c *gin.Context) {
	var payload request.CompanyAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLookupPayload.HTTPStatus, errInvalidLookupPayload.ToHTTPError())
		return
	}

	addr, err := h.usecase.RecordCompanyAddress(c.Request.Context(), payload.CompanyID, payload.Address)
	if err != nil {
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, addr)
}

// ListCompanyAddresses godoc
// @Summary      Addresses recorded for a company
// @Tags         irp
// @Produce      json
// @Param        companyId  query  string  true  "Company ID"
// @Success      200  {array}   entities.CompanyAddress
// @Failure      400  {object}  pkg.HTTPError
// @Router       /irp/company/address [get]
func (h *LookupHandler) ListCompanyAddresses(c *gin.Context) {
	list, err := h.usecase.ListCompanyAddresses(c.Request.Context(), c.Query("companyId"))
	if err != nil {
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if list == nil {
		list = []entities.CompanyAddress{}
	}
	c.JSON(http.StatusOK, list)
}

// CheckSanction godoc
// @Summary      Sanction screening
// @Tags         sanction
// @Accept       json
// @Produce      json
// @Param        body  body  request.SanctionCheckRequest  true  "Beneficiary"
// @Success      200  {object}  entities.SanctionResult
// @Failure      400  {object}  pkg.HTTPError
// @Router       /sanction/check [post]
func (h *LookupHandler) CheckSanction(c *gin.Context) {
	var payload request.SanctionCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLookupPayload.HTTPStatus, errInvalidLookupPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CheckSanction(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// QueryPricing godoc
// @Summary      Pricing retrieval
// @Tags         rag
// @Accept       json
// @Produce      json
// @Param        body  body  request.PricingQueryRequest  true  "Query"
// @Success      200  {object}  entities.PricingGuidance
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rag/pricing [post]
func (h *LookupHandler) QueryPricing(c *gin.Context) {
	var payload request.PricingQueryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLookupPayload.HTTPStatus, errInvalidLookupPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.QueryPricing(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapLookupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingIntermediaryID), errors.Is(err, usecase.ErrMissingCompanyID),
		errors.Is(err, usecase.ErrMissingBeneficiary), errors.Is(err, usecase.ErrMissingPricingQuery):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAddress):
		return pkg.NewDomainError("INVALID_ADDRESS", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrAccessDenied):
		return pkg.NewDomainError("RAG_ACCESS_DENIED", "RAG pricing is restricted to grades A, B, and C", err, http.StatusForbidden)
	case errors.Is(err, entities.ErrNoPricingFound):
		return pkg.NewDomainError("PRICING_NOT_FOUND", "No pricing information found for the query", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
