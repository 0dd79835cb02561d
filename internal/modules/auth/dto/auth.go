package dto

const (
	RouteHome       = "home"
	RouteLoginError = "login-error"
)

type CallbackOutput struct {
	Route string
}
