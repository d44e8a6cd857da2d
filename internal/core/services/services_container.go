package services

import (
	"fmt"

	portsrepo "github.com/dashfinanceiro/dashfin_app/internal/core/ports/repositories"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryContainer) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	auth, err := NewAuthService(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing auth service: %w", err)
	}
	container.Auth = auth

	container.Statement = NewStatementService(repos.Pending)
	container.Staging = NewStagingService(repos.Pending, repos.Staging)
	container.Transaction = NewTransactionService(repos.Transaction)
	container.Investment = NewInvestmentService(repos.Investment)
	container.Reporting = NewReportingService(repos.Transaction)

	return container, nil
}
