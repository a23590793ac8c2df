package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financas/internal/errors"
	"financas/internal/models"
	"financas/internal/records"
	"financas/internal/session"
)

// RecordHandler handles income/expense record requests. The acting user
// comes from the request's verified token, never from the shared session
// manager: a still-valid token must keep writing and reading its own
// records no matter who signed in last.
type RecordHandler struct {
	form  *records.FormController
	lists *records.ListPresenter
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(form *records.FormController, lists *records.ListPresenter) *RecordHandler {
	return &RecordHandler{form: form, lists: lists}
}

// RecordRequest represents the record form payload. Amount is the raw
// comma-decimal string as typed in the form ("1234,56").
type RecordRequest struct {
	Kind        models.RecordKind `json:"kind" binding:"required,record_kind"`
	Description string            `json:"description"`
	Amount      string            `json:"amount"`
	Date        string            `json:"date"`
	Category    string            `json:"category" binding:"omitempty,record_category"`
}

// RecordSavedResponse represents a successful save with a navigation hint.
type RecordSavedResponse struct {
	ID   string `json:"id"`
	Next string `json:"next"`
}

func (r RecordRequest) form() records.Form {
	return records.Form{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Category:    r.Category,
	}
}

// CreateRecord handles the creation of a new record
// @Summary     Create a record
// @Description Create a new income or expense record from the form payload
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordRequest true "Record form"
// @Success     201 {object} RecordSavedResponse "Record created"
// @Failure     400 {object} ErrorResponse "Missing or invalid fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Could not save"
// @Router      /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	owner, err := requestOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, route, err := h.form.Submit(req.Kind, req.form(), nil, owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "next": route})
}

// UpdateRecord handles editing an existing record
// @Summary     Update a record
// @Description Overwrite the description, amount, date, and category of an existing record. The creation timestamp is never touched.
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Record ID"
// @Param       request body RecordRequest true "Record form"
// @Success     200 {object} RecordSavedResponse "Record updated"
// @Failure     400 {object} ErrorResponse "Missing or invalid fields"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /records/{id} [put]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	owner, err := requestOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	existing := &models.Record{Base: models.Base{ID: c.Param("id")}, Kind: req.Kind}
	id, route, err := h.form.Submit(req.Kind, req.form(), existing, owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "next": route})
}

// ListRecords lists the records of one kind
// @Summary     List records
// @Description List all records of one kind, with an empty-state message when there are none
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string true "Record kind (receita or despesa)"
// @Success     200 {object} records.ListView "Record list"
// @Failure     400 {object} ErrorResponse "Unknown kind"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	kind := models.RecordKind(c.Query("kind"))
	if !kind.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Tipo de registro inválido."))
		return
	}

	owner, err := requestOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.lists.Present(kind, owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// requestOwner builds the acting user's identity from the verified token
// claims set by the auth middleware.
func requestOwner(c *gin.Context) (*session.Session, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	return &session.Session{UserID: userID, Email: c.GetString("email")}, nil
}
