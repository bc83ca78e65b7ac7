package services

import (
	"time"

	"github.com/SscSPs/currency_conversion_app/internal/core/ports"
	portsrepo "github.com/SscSPs/currency_conversion_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_conversion_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil, in which case no events are published.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	rateProvider ports.RateProvider,
	publisher ports.EventPublisher,
	location *time.Location,
) *portssvc.ServiceContainer {
	conversionOpts := []ConversionServiceOption{}
	if publisher != nil {
		conversionOpts = append(conversionOpts, WithEventPublisher(publisher))
	}

	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(rateProvider, repos.ConversionRepo, conversionOpts...),
		Query:      NewQueryService(repos.ConversionRepo, WithLocation(location)),
	}
}
