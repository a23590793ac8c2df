// Package navigation defines the screen routes of the mobile clients.
// Controllers return a Route instead of driving the router themselves;
// the HTTP layer passes it through to the client as a navigation hint.
package navigation

// Route names a client screen, matching the mobile route table.
type Route string

const (
	// RouteNone means "stay on the current screen".
	RouteNone Route = ""
	// RouteBack pops the navigation stack.
	RouteBack Route = "back"

	RouteLogin       Route = "LoginScreen"
	RouteSignUp      Route = "Cadastro"
	RouteHome        Route = "Principal"
	RouteIncomeForm  Route = "AdicionarReceita"
	RouteExpenseForm Route = "AdicionarDespesa"
	RouteIncomeList  Route = "ListaReceitas"
	RouteExpenseList Route = "ListaDespesas"
)
