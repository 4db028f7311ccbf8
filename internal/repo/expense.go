package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/itinero-app/itinero/backend/internal/domain"
)

// ExpenseRepo defines the persistence operations for Expenses.
type ExpenseRepo interface {
	// Create inserts a new expense under its trip.
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)

	// GetByID retrieves a single expense by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no expense with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error)

	// ListByTripID returns all expenses for a trip ordered by expense_date
	// descending, then created_at descending (newest first).
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)

	// ListByTripIDPaged returns one page of a trip's expenses plus the total count.
	ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error)

	// Update overwrites the mutable fields of an existing expense.
	Update(ctx context.Context, expense domain.Expense) (domain.Expense, error)

	// Delete removes an expense by ID, scoped to the given tripID.
	Delete(ctx context.Context, tripID, expenseID uuid.UUID) error

	// ListCategories returns the distinct non-empty category labels used by
	// any expense, ordered alphabetically. Categories are free-form strings,
	// not a separate entity; this feeds the category picker in clients.
	ListCategories(ctx context.Context) ([]string, error)
}

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

const expenseColumns = `id, trip_id, title, amount::text, category, expense_date,
	currency_code, notes, receipt_ref, created_at, updated_at`

// Create inserts a new expense row and returns the full persisted record.
func (r *pgExpenseRepo) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses
			(trip_id, title, amount, category, expense_date, currency_code, notes, receipt_ref)
		VALUES
			(@trip_id, @title, @amount::numeric, @category, @expense_date, @currency_code, @notes, @receipt_ref)
		RETURNING ` + expenseColumns

	row := r.db.QueryRow(ctx, q, expenseArgs(expense))
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an expense by primary key, scoped to its trip.
func (r *pgExpenseRepo) GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": expenseID, "trip_id": tripID})
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all expenses for a trip, newest first.
func (r *pgExpenseRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE trip_id = @trip_id
		ORDER BY expense_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	expenses, err := collectExpenses(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTripID: %w", err)
	}
	return expenses, nil
}

// ListByTripIDPaged returns one page of a trip's expenses plus the total count.
func (r *pgExpenseRepo) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	const countQ = `SELECT count(*) FROM expenses WHERE trip_id = @trip_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"trip_id": tripID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListByTripIDPaged: count: %w", err)
	}

	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE trip_id = @trip_id
		ORDER BY expense_date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"trip_id": tripID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListByTripIDPaged: %w", err)
	}
	defer rows.Close()

	expenses, err := collectExpenses(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListByTripIDPaged: %w", err)
	}
	return expenses, total, nil
}

// Update overwrites the mutable fields of an expense and returns the updated record.
func (r *pgExpenseRepo) Update(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	const q = `
		UPDATE expenses
		SET title         = @title,
		    amount        = @amount::numeric,
		    category      = @category,
		    expense_date  = @expense_date,
		    currency_code = @currency_code,
		    notes         = @notes,
		    receipt_ref   = @receipt_ref,
		    updated_at    = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + expenseColumns

	args := expenseArgs(expense)
	args["id"] = expense.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an expense by primary key, scoped to its trip.
func (r *pgExpenseRepo) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	const q = `DELETE FROM expenses WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": expenseID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ListCategories returns the distinct non-empty categories across all expenses.
func (r *pgExpenseRepo) ListCategories(ctx context.Context) ([]string, error) {
	const q = `
		SELECT DISTINCT category
		FROM expenses
		WHERE category <> ''
		ORDER BY category`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListCategories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.ListCategories: scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListCategories: rows: %w", err)
	}

	return categories, nil
}

// expenseArgs maps the mutable expense fields into NamedArgs.
func expenseArgs(expense domain.Expense) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":       expense.TripID,
		"title":         expense.Title,
		"amount":        expense.Amount.String(),
		"category":      expense.Category,
		"expense_date":  expense.Date,
		"currency_code": expense.CurrencyCode,
		"notes":         expense.Notes,
		"receipt_ref":   expense.ReceiptRef,
	}
}

// scanExpense maps a single database row into a domain.Expense.
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e           domain.Expense
		id          pgtype.UUID
		tripID      pgtype.UUID
		amount      string
		expenseDate pgtype.Date
	)

	err := s.Scan(&id, &tripID, &e.Title, &amount, &e.Category, &expenseDate,
		&e.CurrencyCode, &e.Notes, &e.ReceiptRef, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	e.Date = expenseDate.Time
	e.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return e, nil
}

// collectExpenses drains rows into a slice, checking the rows error afterward.
func collectExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return expenses, nil
}
