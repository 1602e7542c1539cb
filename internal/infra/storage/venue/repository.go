package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// Repository репозиторий площадок и их временных слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetVenues получает площадки владельца вместе со слотами.
// Площадка без слотов возвращается с пустым списком TimeSlots.
func (r *Repository) GetVenues(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	query, args, err := buildSelectQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVenues(rows)
}

// buildSelectQuery выбирает площадки с LEFT JOIN слотов в порядке объявления
func buildSelectQuery(ownerID string) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"v.id",
		"v.owner_id",
		"v.name",
		"s.label",
		"s.start_time",
		"s.end_time",
	).
		From("venues v").
		LeftJoin("venue_time_slots s ON s.venue_id = v.id").
		Where(squirrel.Eq{"v.owner_id": ownerID}).
		OrderBy("v.name ASC", "v.id ASC", "s.position ASC").
		ToSql()
}

type venueRow struct {
	id, ownerID, name string
	label             sql.NullString
	start, end        sql.NullString
}

func scanVenues(rows *sql.Rows) ([]*domain.Venue, error) {
	venues := make([]*domain.Venue, 0)

	for rows.Next() {
		var row venueRow
		if err := rows.Scan(&row.id, &row.ownerID, &row.name, &row.label, &row.start, &row.end); err != nil {
			return nil, fmt.Errorf("%w: scanVenues - scan row: %v", ErrScanRow, err)
		}
		venues = appendRow(venues, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVenues - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// appendRow сворачивает строки JOIN в площадки: строки одной площадки идут подряд
func appendRow(venues []*domain.Venue, row venueRow) []*domain.Venue {
	var current *domain.Venue
	if n := len(venues); n > 0 && venues[n-1].ID == row.id {
		current = venues[n-1]
	} else {
		current = &domain.Venue{
			ID:        row.id,
			OwnerID:   row.ownerID,
			Name:      row.name,
			TimeSlots: make([]domain.TimeSlot, 0),
		}
		venues = append(venues, current)
	}

	if !row.label.Valid {
		return venues
	}

	var start, end *types.TimeString
	if row.start.Valid {
		if ts, err := types.NewTimeStringFromString(row.start.String); err == nil {
			start = &ts
		}
	}
	if row.end.Valid {
		if ts, err := types.NewTimeStringFromString(row.end.String); err == nil {
			end = &ts
		}
	}
	current.TimeSlots = append(current.TimeSlots, domain.NewTimeSlot(row.label.String, start, end))

	return venues
}
