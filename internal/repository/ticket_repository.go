package repository

import (
	"context"
	"errors"
	"sync"

	"go-booking-assistant/internal/model"
	apperrors "go-booking-assistant/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TicketRepository persists issued tickets for later retrieval. The dialog
// engine itself never reads these back; they exist for the ticket endpoints.
type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	List(ctx context.Context) ([]*model.Ticket, error)
	FindByNumber(ctx context.Context, number string) (*model.Ticket, error)
}

type PostgresTicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPostgresTicketRepository(pool *pgxpool.Pool) *PostgresTicketRepositoryImpl {
	return &PostgresTicketRepositoryImpl{pool: pool}
}

func (r *PostgresTicketRepositoryImpl) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS issued_tickets (
			id SERIAL PRIMARY KEY,
			ticket_number TEXT NOT NULL,
			category TEXT NOT NULL,
			item_label TEXT NOT NULL,
			slot_time TEXT NOT NULL,
			seat_class TEXT NOT NULL,
			seat_numbers TEXT[] NOT NULL DEFAULT '{}',
			unit_price TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			issued_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := r.pool.Exec(ctx, schema)
	return err
}

func (r *PostgresTicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO issued_tickets (
			ticket_number, category, item_label, slot_time,
			seat_class, seat_numbers, unit_price, session_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, issued_at
	`

	err := r.pool.QueryRow(ctx, query,
		ticket.TicketNumber, string(ticket.Category), ticket.ItemLabel, ticket.Time,
		ticket.SeatClassLabel, ticket.SeatNumbers, ticket.UnitPrice, ticket.SessionID,
	).Scan(&ticket.ID, &ticket.IssuedAt)

	if err != nil {
		return nil, err
	}

	return ticket, nil
}

func (r *PostgresTicketRepositoryImpl) List(ctx context.Context) ([]*model.Ticket, error) {
	query := `
		SELECT id, ticket_number, category, item_label, slot_time,
			seat_class, seat_numbers, unit_price, session_id, issued_at
		FROM issued_tickets
		ORDER BY issued_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*model.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

func (r *PostgresTicketRepositoryImpl) FindByNumber(ctx context.Context, number string) (*model.Ticket, error) {
	query := `
		SELECT id, ticket_number, category, item_label, slot_time,
			seat_class, seat_numbers, unit_price, session_id, issued_at
		FROM issued_tickets
		WHERE ticket_number = $1
		ORDER BY issued_at DESC
		LIMIT 1
	`

	rows, err := r.pool.Query(ctx, query, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrTicketNotFound
	}

	return scanTicket(rows)
}

func scanTicket(rows pgx.Rows) (*model.Ticket, error) {
	var ticket model.Ticket
	err := rows.Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&ticket.Category,
		&ticket.ItemLabel,
		&ticket.Time,
		&ticket.SeatClassLabel,
		&ticket.SeatNumbers,
		&ticket.UnitPrice,
		&ticket.SessionID,
		&ticket.IssuedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// MemoryTicketRepository keeps issued tickets in process memory, for tests
// and database-less runs.
type MemoryTicketRepositoryImpl struct {
	mu      sync.RWMutex
	tickets []*model.Ticket
	nextID  int
}

func NewMemoryTicketRepository() TicketRepository {
	return &MemoryTicketRepositoryImpl{nextID: 1}
}

func (r *MemoryTicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if ticket == nil {
		return nil, errors.New("nil ticket")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *ticket
	stored.ID = r.nextID
	r.nextID++
	r.tickets = append(r.tickets, &stored)

	out := stored
	return &out, nil
}

func (r *MemoryTicketRepositoryImpl) List(ctx context.Context) ([]*model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Ticket, 0, len(r.tickets))
	for i := len(r.tickets) - 1; i >= 0; i-- {
		copied := *r.tickets[i]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MemoryTicketRepositoryImpl) FindByNumber(ctx context.Context, number string) (*model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.tickets) - 1; i >= 0; i-- {
		if r.tickets[i].TicketNumber == number {
			copied := *r.tickets[i]
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}
