package queries

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
		"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
	)
)

// GetAvailableRidersQuery retrieves riders that can accept a new order.
// Returns riders that are on shift and not carrying an active order,
// for monitoring and manual dispatching.
//
// Example:
//
//	query := NewGetAvailableRidersQuery()
//	handler := NewGetAvailableRidersQueryHandler(db)
//
//	riders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve riders: %w", err)
//	}
//
//	for _, r := range riders {
//	    fmt.Printf("Rider %s is free\n", r.Name)
//	}
type GetAvailableRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates a query to retrieve free riders.
// This is a parameterless query that fetches all dispatchable riders.
func NewGetAvailableRidersQuery() GetAvailableRidersQuery {
	return GetAvailableRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableRidersQueryIsNotConstructed if validation fails.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// GetAvailableRidersQueryResponse represents rider information in the
// read model. Contains essential rider data for display and dispatching.
type GetAvailableRidersQueryResponse struct {
	ID   kernel.UUID
	Name string
}
