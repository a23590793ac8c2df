// Package records implements the record form workflow and list presentation
// for income and expense entries.
package records

import (
	"strconv"
	"strings"

	"financas/internal/backend"
	apperrors "financas/internal/errors"
	"financas/internal/models"
	"financas/internal/navigation"
	"financas/internal/session"
)

// Form is the edit/create state of a single financial record.
// Amount is the raw comma-decimal string as typed ("1234,56").
type Form struct {
	Description string
	Amount      string
	Date        string
	Category    string
}

// ParseAmount normalizes a comma-decimal string into a number by replacing
// the decimal comma with a dot before parsing. Thousands separators are not
// stripped: "1.234,56" is rejected, only a single comma decimal point is
// supported.
func ParseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
}

// FormController dispatches record creation and editing to the store.
type FormController struct {
	store       backend.RecordStore
	ownerScoped bool
	busy        bool
}

// NewFormController creates a form controller. When ownerScoped is set,
// created records are tagged with the submitting user's id.
func NewFormController(store backend.RecordStore, ownerScoped bool) *FormController {
	return &FormController{store: store, ownerScoped: ownerScoped}
}

// Busy reports whether a submit is in flight. The interaction layer uses it
// to disable repeated submission; it does not queue or cancel requests.
func (c *FormController) Busy() bool {
	return c.busy
}

// Submit validates the form and writes it through the store. A non-nil
// existing record switches the controller into edit mode: the record's
// mutable fields are overwritten in place and the original creation
// timestamp is left untouched. In create mode a new record is inserted and
// the caller is routed back to the previous screen; edits route to the
// kind's list screen.
func (c *FormController) Submit(kind models.RecordKind, form Form, existing *models.Record, owner *session.Session) (string, navigation.Route, error) {
	if form.Description == "" || form.Amount == "" || form.Date == "" || form.Category == "" {
		return "", navigation.RouteNone, apperrors.ErrMissingFields
	}
	if !models.ValidCategory(kind, form.Category) {
		return "", navigation.RouteNone, apperrors.WithMessage(apperrors.ErrInvalidInput, "Categoria inválida.")
	}

	amount, err := ParseAmount(form.Amount)
	if err != nil {
		return "", navigation.RouteNone, apperrors.WithMessage(apperrors.ErrInvalidInput, "O valor informado é inválido.")
	}

	// Scoped writes always belong to a known user; an absent owner means
	// the caller skipped authentication.
	if c.ownerScoped && owner == nil {
		return "", navigation.RouteNone, apperrors.ErrUnauthorized
	}

	c.busy = true
	defer func() { c.busy = false }()

	if existing != nil {
		return c.update(kind, existing.ID, form, amount, owner)
	}
	return c.create(kind, form, amount, owner)
}

func (c *FormController) create(kind models.RecordKind, form Form, amount float64, owner *session.Session) (string, navigation.Route, error) {
	record := &models.Record{
		Kind:        kind,
		Description: form.Description,
		Amount:      amount,
		Date:        form.Date,
		Category:    form.Category,
	}
	if c.ownerScoped {
		record.OwnerID = &owner.UserID
	}

	id, err := c.store.Add(kind.Collection(), record)
	if err != nil {
		return "", navigation.RouteNone, apperrors.Wrap(apperrors.WithMessage(apperrors.ErrSaveFailed, createFailedMessage(kind)), err)
	}
	return id, navigation.RouteBack, nil
}

func (c *FormController) update(kind models.RecordKind, id string, form Form, amount float64, owner *session.Session) (string, navigation.Route, error) {
	fields := backend.RecordFields{
		Description: form.Description,
		Amount:      amount,
		Date:        form.Date,
		Category:    form.Category,
	}

	// With scoping on, another user's record is indistinguishable from a
	// missing one.
	var ownerID *string
	if c.ownerScoped {
		ownerID = &owner.UserID
	}

	if err := c.store.Update(kind.Collection(), id, fields, ownerID); err != nil {
		if backend.CodeOf(err) == backend.CodeRecordNotFound {
			return "", navigation.RouteNone, apperrors.Wrap(apperrors.ErrRecordNotFound, err)
		}
		return "", navigation.RouteNone, apperrors.Wrap(apperrors.ErrSaveFailed, err)
	}
	return id, listRoute(kind), nil
}

func createFailedMessage(kind models.RecordKind) string {
	if kind == models.RecordKindIncome {
		return "Não foi possível adicionar a receita."
	}
	return "Não foi possível adicionar a despesa."
}

func listRoute(kind models.RecordKind) navigation.Route {
	if kind == models.RecordKindIncome {
		return navigation.RouteIncomeList
	}
	return navigation.RouteExpenseList
}
