package records

import (
	"financas/internal/backend"
	apperrors "financas/internal/errors"
	"financas/internal/models"
	"financas/internal/navigation"
	"financas/internal/session"
)

// Empty-state placeholder messages, per kind.
const (
	EmptyIncomesMessage  = "Nenhuma receita cadastrada"
	EmptyExpensesMessage = "Nenhuma despesa cadastrada"
)

// ListView is the presentation of one kind's records. EmptyMessage is set
// only when there is nothing to show; AddRoute always points at the form
// screen in create mode.
type ListView struct {
	Kind         models.RecordKind `json:"kind"`
	Records      []models.Record   `json:"records"`
	EmptyMessage string            `json:"empty_message,omitempty"`
	AddRoute     navigation.Route  `json:"add_route"`
}

// ListPresenter renders the records of one kind.
type ListPresenter struct {
	store       backend.RecordStore
	ownerScoped bool
}

// NewListPresenter creates a list presenter. When ownerScoped is set, lists
// show only the signed-in user's records.
func NewListPresenter(store backend.RecordStore, ownerScoped bool) *ListPresenter {
	return &ListPresenter{store: store, ownerScoped: ownerScoped}
}

// Present queries the kind's collection and builds its view. The sequence
// is unordered; no filtering or pagination is applied.
func (p *ListPresenter) Present(kind models.RecordKind, owner *session.Session) (*ListView, error) {
	var ownerID *string
	if p.ownerScoped {
		// A scoped list must never widen to every user's records.
		if owner == nil {
			return nil, apperrors.ErrUnauthorized
		}
		ownerID = &owner.UserID
	}

	found, err := p.store.Query(kind.Collection(), ownerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	view := &ListView{
		Kind:     kind,
		Records:  found,
		AddRoute: formRoute(kind),
	}
	if len(found) == 0 {
		view.Records = []models.Record{}
		view.EmptyMessage = emptyMessage(kind)
	}
	return view, nil
}

func emptyMessage(kind models.RecordKind) string {
	if kind == models.RecordKindIncome {
		return EmptyIncomesMessage
	}
	return EmptyExpensesMessage
}

func formRoute(kind models.RecordKind) navigation.Route {
	if kind == models.RecordKindIncome {
		return navigation.RouteIncomeForm
	}
	return navigation.RouteExpenseForm
}
