package handlers

import (
	"errors"
	"net/http"

	request "bond_quotation/internal/adapter/http/dto/request"
	response "bond_quotation/internal/adapter/http/dto/response"
	"bond_quotation/internal/domain/entities"
	"bond_quotation/internal/usecase"
	"bond_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles saved quotations and bond request payloads.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// Save godoc
// @Summary      Save a quotation
// @Tags         quotation
// @Accept       json
// @Produce      json
// @Param        body  body  request.SaveQuotationRequest  true  "Quote draft"
// @Success      201  {object}  entities.SaveQuotationResult
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotation/save [post]
func (h *QuotationHandler) Save(c *gin.Context) {
	var payload request.SaveQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Save(c.Request.Context(), payload.QuoteDraft)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetByID godoc
// @Summary      Fetch a quotation
// @Tags         quotation
// @Produce      json
// @Param        id  path  string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotation/{id} [get]
func (h *QuotationHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// BuildBondPayload godoc
// @Summary      Build a bond request payload
// @Tags         bond
// @Accept       json
// @Produce      json
// @Param        body  body  request.BondPayloadRequest  true  "Quotation"
// @Success      200  {object}  entities.BondRequestPayload
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bond/payload [post]
func (h *QuotationHandler) BuildBondPayload(c *gin.Context) {
	var payload request.BondPayloadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.BuildBondPayload(c.Request.Context(), payload.QuotationID, payload.QuoteDraft)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteQuotation):
		return pkg.NewDomainError("INVALID_QUOTATION_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidDraft):
		return pkg.NewDomainError("INVALID_DRAFT_INPUT", "Invalid quote draft", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
