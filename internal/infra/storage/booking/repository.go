package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// Filter фильтр выборки бронирований владельца.
// Отменённые бронирования не отфильтровываются: их исключает резолвер.
type Filter struct {
	OwnerID string      // Обязательный параметр
	From    *types.Date // Начало периода включительно (nil - без ограничения)
	To      *types.Date // Конец периода включительно (nil - без ограничения)
}

// Repository репозиторий бронирований (read-only реплика данных внешнего API)
type Repository struct {
	db  DBExecutor
	log Logger
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, log Logger) *Repository {
	return &Repository{db: db, log: log}
}

// GetBookings получает все бронирования владельца
func (r *Repository) GetBookings(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.GetByFilter(ctx, Filter{OwnerID: ownerID})
}

// GetBookingsInPeriod получает бронирования владельца с датой в [from, to]
func (r *Repository) GetBookingsInPeriod(ctx context.Context, ownerID string, from, to types.Date) ([]*domain.Booking, error) {
	return r.GetByFilter(ctx, Filter{OwnerID: ownerID, From: &from, To: &to})
}

// GetByFilter получает бронирования владельца с фильтрацией по периоду
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*domain.Booking, error) {
	query, args, err := buildSelectQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func buildSelectQuery(filter Filter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"owner_id",
		"venue_id",
		"booked_date",
		"time_slot",
		"status",
		"customer_name",
		"event_name",
	).
		From("bookings").
		Where(squirrel.Eq{"owner_id": filter.OwnerID})

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booked_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booked_date": *filter.To})
	}

	return selectBuilder.OrderBy("booked_date ASC", "id ASC").ToSql()
}

// bookingRow строка таблицы bookings
type bookingRow struct {
	id           string
	ownerID      string
	venueID      string
	bookedDate   types.Date
	timeSlot     sql.NullString
	status       string
	customerName sql.NullString
	eventName    sql.NullString
}

// scanBookings сканирует результаты запроса. Строки без статуса
// или без даты пропускаются, а не прерывают выборку.
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var row bookingRow
		err := rows.Scan(
			&row.id,
			&row.ownerID,
			&row.venueID,
			&row.bookedDate,
			&row.timeSlot,
			&row.status,
			&row.customerName,
			&row.eventName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking, err := toDomainBooking(row)
		if err != nil {
			r.log.Warn("scanBookings: skipping booking id=%s: %v", row.id, err)
			continue
		}
		if !booking.Status.IsKnown() {
			r.log.Warn("scanBookings: booking id=%s has unknown status %q, counted as active", booking.ID, booking.Status)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// toDomainBooking конвертирует строку в бронирование. Незнакомый статус сохраняется
// как есть: такая бронь продолжает занимать слот.
func toDomainBooking(row bookingRow) (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(row.status)
	if err != nil {
		return nil, err
	}
	if row.bookedDate.IsZero() {
		return nil, ErrEmptyBookedDate
	}

	return &domain.Booking{
		ID:           row.id,
		OwnerID:      row.ownerID,
		VenueID:      row.venueID,
		BookedDate:   row.bookedDate,
		TimeSlot:     row.timeSlot.String,
		Status:       status,
		CustomerName: row.customerName.String,
		EventName:    row.eventName.String,
	}, nil
}
