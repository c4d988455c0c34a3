package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create inserts the booking while holding a row lock on its event, so
	// the capacity check and the insert commit as one atomic unit.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindActiveByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.Booking, error)
	CountActiveByEventID(ctx context.Context, eventID uuid.UUID) (int, error)

	// ConfirmPending flips a pending booking to confirmed, but only if its
	// confirmation deadline has not passed. Zero rows updated is diagnosed
	// into ErrBookingNotFound, ErrBookingNotPending or ErrBookingExpired.
	ConfirmPending(ctx context.Context, eventID, userID uuid.UUID) (*entity.Booking, error)

	// CancelExpired moves every overdue pending booking to cancelled and
	// returns the affected rows. Safe to call from both the sweeper and
	// read paths.
	CancelExpired(ctx context.Context) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, event_id, user_id, status, created_at, updated_at, resolved_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the event row for the duration of the capacity check.
	var totalSpots int
	spotQuery := `SELECT total_spots FROM events WHERE id = $1 FOR UPDATE`
	err = tx.QueryRow(ctx, spotQuery, booking.EventID).Scan(&totalSpots)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("lock event %s: %w", booking.EventID.String(), err)
	}

	var alreadyBooked bool
	dupQuery := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE event_id = $1 AND user_id = $2 AND status = ANY($3)
		)
	`
	if err = tx.QueryRow(ctx, dupQuery, booking.EventID, booking.UserID, entity.ActiveStatuses).Scan(&alreadyBooked); err != nil {
		return fmt.Errorf("check duplicate booking: %w", err)
	}
	if alreadyBooked {
		return entity.ErrAlreadyBooked
	}

	var activeBookings int
	activeQuery := `SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = ANY($2)`
	if err = tx.QueryRow(ctx, activeQuery, booking.EventID, entity.ActiveStatuses).Scan(&activeBookings); err != nil {
		return fmt.Errorf("count active bookings: %w", err)
	}
	if activeBookings >= totalSpots {
		return entity.ErrNoSpotsAvailable
	}

	insertQuery := `
		INSERT INTO bookings (id, event_id, user_id, status, created_at, updated_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.EventID,
		booking.UserID,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
		booking.ResolvedAt,
	)
	if err != nil {
		// backstop: partial unique index on active (event_id, user_id)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrAlreadyBooked
		}
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("event_id", booking.EventID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	return tx.Commit(ctx)
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindActiveByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE event_id = $1 AND status = ANY($2)
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, eventID, entity.ActiveStatuses)
	if err != nil {
		r.log.Error("Failed to find bookings by event ID",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return nil, fmt.Errorf("find bookings by event ID %s: %w", eventID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountActiveByEventID(ctx context.Context, eventID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE event_id = $1 AND status = ANY($2)`

	var count int
	if err := r.db.QueryRow(ctx, query, eventID, entity.ActiveStatuses).Scan(&count); err != nil {
		r.log.Error("Failed to count active bookings",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return 0, fmt.Errorf("count active bookings for event %s: %w", eventID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) ConfirmPending(ctx context.Context, eventID, userID uuid.UUID) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Status and deadline are checked in the same statement that flips the
	// status, so a concurrent expiry sweep cannot win on the same booking.
	query := `
		UPDATE bookings b
		SET status = $3, updated_at = NOW(), resolved_at = NOW()
		FROM events e
		WHERE b.event_id = e.id
		  AND b.event_id = $1
		  AND b.user_id = $2
		  AND b.status = $4
		  AND b.created_at + e.booking_ttl >= NOW()
		RETURNING b.id, b.event_id, b.user_id, b.status, b.created_at, b.updated_at, b.resolved_at
	`

	booking, err := scanBooking(tx.QueryRow(ctx, query,
		eventID, userID,
		entity.BookingStatusConfirmed, entity.BookingStatusPending,
	))
	if err == nil {
		return booking, tx.Commit(ctx)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	// Nothing updated: work out why for the caller.
	var status entity.BookingStatus
	var createdAt time.Time
	var ttlSeconds int64
	checkQuery := `
		SELECT b.status, b.created_at, EXTRACT(EPOCH FROM e.booking_ttl)::bigint
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE b.event_id = $1 AND b.user_id = $2 AND b.status = ANY($3)
		ORDER BY b.created_at DESC
		LIMIT 1
	`
	err = tx.QueryRow(ctx, checkQuery, eventID, userID, entity.ActiveStatuses).Scan(&status, &createdAt, &ttlSeconds)
	if err != nil {
		return nil, entity.ErrBookingNotFound
	}
	if status != entity.BookingStatusPending {
		return nil, entity.ErrBookingNotPending
	}
	if time.Since(createdAt) > time.Duration(ttlSeconds)*time.Second {
		return nil, entity.ErrBookingExpired
	}
	return nil, entity.ErrBookingNotFound
}

func (r *bookingRepository) CancelExpired(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		UPDATE bookings b
		SET status = $2, updated_at = NOW(), resolved_at = NOW()
		FROM events e
		WHERE b.event_id = e.id
		  AND b.status = $1
		  AND b.created_at + e.booking_ttl < NOW()
		RETURNING b.id, b.event_id, b.user_id, b.status, b.created_at, b.updated_at, b.resolved_at
	`

	rows, err := r.db.Query(ctx, query, entity.BookingStatusPending, entity.BookingStatusCancelled)
	if err != nil {
		r.log.Error("Failed to cancel expired bookings", zap.Error(err))
		return nil, fmt.Errorf("cancel expired bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
