package services

// ServiceContainer aggregates the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Book        BookSvcFacade
	Circulation CirculationSvcFacade
	Query       QuerySvcFacade
	Activity    ActivitySvcFacade
	Auth        AuthSvcFacade
}
