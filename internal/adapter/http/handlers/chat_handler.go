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

const paramSessionID = "session_id"

var (
	errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Message text is required", http.StatusBadRequest)
	errInvalidDraftPayload   = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid quote draft payload", http.StatusBadRequest)
)

// ChatHandler exposes conversation sessions with the quotation agent.

type ChatHandler struct {
	usecase usecase.IQuoteAgentUseCase
}

func NewChatHandler(uc usecase.IQuoteAgentUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start a conversation
// @Tags         chat
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Router       /chat/sessions [post]
func (h *ChatHandler) StartSession(c *gin.Context) {
	snap, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionSnapshot(snap))
}

// GetSession godoc
// @Summary      Conversation snapshot
// @Tags         chat
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /chat/sessions/{session_id} [get]
func (h *ChatHandler) GetSession(c *gin.Context) {
	snap, err := h.usecase.GetSession(c.Request.Context(), c.Param(paramSessionID))
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionSnapshot(snap))
}

// SendMessage godoc
// @Summary      Send one user message to the agent
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "Session ID"
// @Param        body        body  request.SendMessageRequest  true  "Message"
// @Success      200  {object}  entities.ChatMessage
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /chat/sessions/{session_id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.ProcessMessage(c.Request.Context(), c.Param(paramSessionID), payload.ResolveText())
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, reply)
}

// ReplaceDraft godoc
// @Summary      Replace the whole quote draft (quote panel edit)
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                       true  "Session ID"
// @Param        body        body  request.ReplaceDraftRequest  true  "Draft"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /chat/sessions/{session_id}/draft [put]
func (h *ChatHandler) ReplaceDraft(c *gin.Context) {
	var payload request.ReplaceDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.ReplaceDraft(c.Request.Context(), c.Param(paramSessionID), *payload.Draft)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionSnapshot(snap))
}

// Finalize godoc
// @Summary      Finalize the quotation of a session
// @Tags         chat
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      201  {object}  response.FinalizeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /chat/sessions/{session_id}/finalize [post]
func (h *ChatHandler) Finalize(c *gin.Context) {
	res, err := h.usecase.FinalizeQuotation(c.Request.Context(), c.Param(paramSessionID))
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFinalizeResult(res))
}

// EndSession godoc
// @Summary      End a conversation
// @Tags         chat
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /chat/sessions/{session_id} [delete]
func (h *ChatHandler) EndSession(c *gin.Context) {
	if err := h.usecase.EndSession(c.Request.Context(), c.Param(paramSessionID)); err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoDraft):
		return pkg.NewDomainErrorSimple("NO_DRAFT", "Failed to save quotation", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFinalizeNotPermitted):
		return pkg.NewDomainErrorSimple("FINALIZE_NOT_PERMITTED", "Quotation requires an eligible grade and computed pricing", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidDraft):
		return pkg.NewDomainError("INVALID_DRAFT_INPUT", "Invalid quote draft", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
