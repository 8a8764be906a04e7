package queries

import (
	"context"

	"foodmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableRidersQueryHandler retrieves dispatchable riders from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableRidersQueryHandler(db)
//	query := NewGetAvailableRidersQuery()
//
//	riders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get riders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d free riders\n", len(riders))
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for rider
// availability queries. Requires a GORM database connection for query
// execution.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle executes the query to retrieve all free riders.
// Returns riders that are on shift with no active order, sorted by name.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]GetAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAvailableRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM riders
		WHERE available = TRUE AND active_order_id IS NULL
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rider GetAvailableRidersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&rider.Name,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rider.ID = riderID
		riders = append(riders, rider)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
