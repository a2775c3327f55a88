package services

import (
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/repositories/database/pgsql"
	"github.com/openshelf/library_circulation_app/pkg/config"
)

// NewServiceContainer wires all services over the pgsql repositories.
func NewServiceContainer(repos *pgsql.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Book:        NewBookService(repos.Book),
		Circulation: NewCirculationService(repos.Book, repos.Loan),
		Query:       NewQueryService(repos.Book, repos.Loan),
		Activity:    NewActivityService(repos.Activity),
		Auth:        NewAuthService(cfg),
	}
}
