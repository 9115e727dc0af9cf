package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
)

// Pool abstracts the pgx pool operations used by the storage so tests can
// substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type requestRepository struct {
	storage *Storage
}

type registrationRepository struct {
	storage *Storage
}

type intentRepository struct {
	storage *Storage
}

type invoiceRepository struct {
	storage *Storage
}

type noteRepository struct {
	storage *Storage
}

type scheduleRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Requests() repository.InvoiceRequestRepository {
	return &requestRepository{storage: s}
}

func (s *Storage) Registrations() repository.RegistrationRepository {
	return &registrationRepository{storage: s}
}

func (s *Storage) Intents() repository.PaymentIntentRepository {
	return &intentRepository{storage: s}
}

func (s *Storage) Invoices() repository.InvoiceRepository {
	return &invoiceRepository{storage: s}
}

func (s *Storage) Notes() repository.OrderNoteRepository {
	return &noteRepository{storage: s}
}

func (s *Storage) Schedules() repository.ScheduleRepository {
	return &scheduleRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS course_schedules (
            id SERIAL PRIMARY KEY,
            course_id BIGINT NOT NULL,
            title TEXT NOT NULL DEFAULT '',
            fee DOUBLE PRECISION,
            price DOUBLE PRECISION,
            start_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS invoice_requests (
            id SERIAL PRIMARY KEY,
            schedule_id BIGINT NOT NULL,
            course_id BIGINT NOT NULL,
            requester_name TEXT NOT NULL,
            requester_email TEXT NOT NULL,
            requester_phone TEXT NOT NULL DEFAULT '',
            company_name TEXT NOT NULL DEFAULT '',
            participants INT NOT NULL DEFAULT 1,
            amount DOUBLE PRECISION,
            status TEXT NOT NULL,
            rejection_reason TEXT,
            approved_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payment_intents (
            id TEXT PRIMARY KEY,
            schedule_id BIGINT NOT NULL,
            course_id BIGINT NOT NULL,
            participants INT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            snapshot JSONB NOT NULL DEFAULT '{}',
            consumed BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS registrations (
            id SERIAL PRIMARY KEY,
            user_id BIGINT REFERENCES users(id),
            schedule_id BIGINT NOT NULL,
            course_id BIGINT NOT NULL,
            invoice_request_id BIGINT UNIQUE REFERENCES invoice_requests(id),
            payment_intent_id TEXT UNIQUE REFERENCES payment_intents(id),
            requester_name TEXT NOT NULL DEFAULT '',
            requester_email TEXT NOT NULL DEFAULT '',
            requester_phone TEXT NOT NULL DEFAULT '',
            company_name TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            order_status TEXT NOT NULL,
            participants INT NOT NULL DEFAULT 1,
            total DOUBLE PRECISION NOT NULL DEFAULT 0,
            deleted_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS invoices (
            id SERIAL PRIMARY KEY,
            invoice_no TEXT UNIQUE NOT NULL,
            registration_id BIGINT UNIQUE NOT NULL REFERENCES registrations(id),
            amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            issue_date TIMESTAMPTZ NOT NULL,
            due_date TIMESTAMPTZ NOT NULL,
            payment_date TIMESTAMPTZ,
            transaction_id TEXT,
            pdf_url TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_notes (
            id SERIAL PRIMARY KEY,
            registration_id BIGINT NOT NULL REFERENCES registrations(id),
            author TEXT NOT NULL DEFAULT '',
            body TEXT NOT NULL,
            is_private BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_schedule ON registrations(schedule_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_notes_registration ON order_notes(registration_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- InvoiceRequestRepository implementation ---

const requestColumns = `id, schedule_id, course_id, requester_name, requester_email, requester_phone,
       company_name, participants, amount, status, rejection_reason, approved_at, created_at, updated_at`

func scanRequest(row pgx.Row) (*model.InvoiceRequest, error) {
	var req model.InvoiceRequest
	err := row.Scan(&req.ID, &req.ScheduleID, &req.CourseID, &req.RequesterName, &req.RequesterEmail,
		&req.RequesterPhone, &req.CompanyName, &req.Participants, &req.Amount, &req.Status,
		&req.RejectionReason, &req.ApprovedAt, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) Create(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error) {
	const query = `INSERT INTO invoice_requests
        (schedule_id, course_id, requester_name, requester_email, requester_phone, company_name, participants, amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + requestColumns
	return scanRequest(r.storage.pool.QueryRow(ctx, query,
		req.ScheduleID, req.CourseID, req.RequesterName, req.RequesterEmail, req.RequesterPhone,
		req.CompanyName, req.Participants, req.Amount, model.RequestStatusPending))
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*model.InvoiceRequest, error) {
	const query = `SELECT ` + requestColumns + ` FROM invoice_requests WHERE id=$1`
	req, err := scanRequest(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) Approve(ctx context.Context, id int64, approvedAt time.Time, participants int, amount *float64) (*model.InvoiceRequest, error) {
	const query = `UPDATE invoice_requests
        SET status=$2, approved_at=$3, participants=$4, amount=COALESCE($5, amount), updated_at=NOW()
        WHERE id=$1 AND status=$6
        RETURNING ` + requestColumns
	req, err := scanRequest(r.storage.pool.QueryRow(ctx, query,
		id, model.RequestStatusApproved, approvedAt, participants, amount, model.RequestStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.terminalOrMissing(ctx, id)
		}
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) Reject(ctx context.Context, id int64, reason string) (*model.InvoiceRequest, error) {
	const query = `UPDATE invoice_requests
        SET status=$2, rejection_reason=$3, updated_at=NOW()
        WHERE id=$1 AND status=$4
        RETURNING ` + requestColumns
	req, err := scanRequest(r.storage.pool.QueryRow(ctx, query,
		id, model.RequestStatusRejected, reason, model.RequestStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.terminalOrMissing(ctx, id)
		}
		return nil, err
	}
	return req, nil
}

// terminalOrMissing distinguishes a lost precondition from an unknown id.
func (r *requestRepository) terminalOrMissing(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return domainErrors.ErrConflict
}

// --- RegistrationRepository implementation ---

const registrationColumns = `id, user_id, schedule_id, course_id, invoice_request_id, payment_intent_id,
       requester_name, requester_email, requester_phone, company_name,
       payment_method, payment_status, order_status, participants, total, deleted_at, created_at, updated_at`

const insertRegistration = `INSERT INTO registrations
        (user_id, schedule_id, course_id, invoice_request_id, payment_intent_id,
         requester_name, requester_email, requester_phone, company_name,
         payment_method, payment_status, order_status, participants, total)`

func scanRegistration(row pgx.Row) (*model.Registration, error) {
	var reg model.Registration
	err := row.Scan(&reg.ID, &reg.UserID, &reg.ScheduleID, &reg.CourseID, &reg.InvoiceRequestID,
		&reg.PaymentIntentID, &reg.RequesterName, &reg.RequesterEmail, &reg.RequesterPhone,
		&reg.CompanyName, &reg.PaymentMethod, &reg.PaymentStatus, &reg.OrderStatus,
		&reg.Participants, &reg.Total, &reg.DeletedAt, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func registrationArgs(reg *model.Registration) []any {
	return []any{
		reg.UserID, reg.ScheduleID, reg.CourseID, reg.InvoiceRequestID, reg.PaymentIntentID,
		reg.RequesterName, reg.RequesterEmail, reg.RequesterPhone, reg.CompanyName,
		reg.PaymentMethod, reg.PaymentStatus, reg.OrderStatus, reg.Participants, reg.Total,
	}
}

func (r *registrationRepository) CreateFromRequest(ctx context.Context, reg *model.Registration) (*model.Registration, bool, error) {
	const query = insertRegistration + `
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (invoice_request_id) DO NOTHING
        RETURNING ` + registrationColumns
	created, err := scanRegistration(r.storage.pool.QueryRow(ctx, query, registrationArgs(reg)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, err := r.getByRequest(ctx, *reg.InvoiceRequestID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return created, true, nil
}

func (r *registrationRepository) getByRequest(ctx context.Context, requestID int64) (*model.Registration, error) {
	const query = `SELECT ` + registrationColumns + ` FROM registrations WHERE invoice_request_id=$1`
	reg, err := scanRegistration(r.storage.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id int64) (*model.Registration, error) {
	const query = `SELECT ` + registrationColumns + ` FROM registrations WHERE id=$1`
	reg, err := scanRegistration(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByIntent(ctx context.Context, intentID string) (*model.Registration, error) {
	const query = `SELECT ` + registrationColumns + ` FROM registrations WHERE payment_intent_id=$1`
	reg, err := scanRegistration(r.storage.pool.QueryRow(ctx, query, intentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) UpdateOrderStatus(ctx context.Context, id int64, target model.OrderStatus, from []model.OrderStatus) (*model.Registration, error) {
	const query = `UPDATE registrations SET order_status=$2, updated_at=NOW()
        WHERE id=$1 AND deleted_at IS NULL AND order_status = ANY($3)
        RETURNING ` + registrationColumns
	sources := make([]string, 0, len(from))
	for _, s := range from {
		sources = append(sources, string(s))
	}
	reg, err := scanRegistration(r.storage.pool.QueryRow(ctx, query, id, target, sources))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) UpdateFields(ctx context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error) {
	const query = `UPDATE registrations SET
        requester_name=COALESCE($2, requester_name),
        requester_email=COALESCE($3, requester_email),
        requester_phone=COALESCE($4, requester_phone),
        company_name=COALESCE($5, company_name),
        payment_status=COALESCE($6, payment_status),
        participants=COALESCE($7, participants),
        total=COALESCE($8, total),
        updated_at=NOW()
        WHERE id=$1 AND deleted_at IS NULL
        RETURNING ` + registrationColumns
	reg, err := scanRegistration(r.storage.pool.QueryRow(ctx, query,
		id, patch.RequesterName, patch.RequesterEmail, patch.RequesterPhone, patch.CompanyName,
		patch.PaymentStatus, patch.Participants, patch.Total))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE registrations SET deleted_at=NOW(), updated_at=NOW() WHERE id=$1 AND deleted_at IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domainErrors.ErrConflict
	}
	return nil
}

func (r *registrationRepository) Restore(ctx context.Context, id int64) error {
	const query = `UPDATE registrations SET deleted_at=NULL, updated_at=NOW() WHERE id=$1 AND deleted_at IS NOT NULL`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domainErrors.ErrConflict
	}
	return nil
}

// --- PaymentIntentRepository implementation ---

const intentColumns = `id, schedule_id, course_id, participants, amount, snapshot, consumed, created_at`

func scanIntent(row pgx.Row) (*model.PaymentIntentRecord, error) {
	var rec model.PaymentIntentRecord
	err := row.Scan(&rec.ID, &rec.ScheduleID, &rec.CourseID, &rec.Participants, &rec.Amount,
		&rec.Snapshot, &rec.Consumed, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *intentRepository) Create(ctx context.Context, rec *model.PaymentIntentRecord) error {
	const query = `INSERT INTO payment_intents (id, schedule_id, course_id, participants, amount, snapshot)
        VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.storage.pool.Exec(ctx, query,
		rec.ID, rec.ScheduleID, rec.CourseID, rec.Participants, rec.Amount, rec.Snapshot)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *intentRepository) GetByID(ctx context.Context, id string) (*model.PaymentIntentRecord, error) {
	const query = `SELECT ` + intentColumns + ` FROM payment_intents WHERE id=$1`
	rec, err := scanIntent(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Consume flips the consumed flag and inserts the registration inside one
// transaction. The conditional update on consumed decides concurrent races;
// the loser observes zero affected rows and reads the winner's registration.
func (r *intentRepository) Consume(ctx context.Context, id string, reg *model.Registration) (*model.Registration, bool, error) {
	var (
		result  *model.Registration
		created bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE payment_intents SET consumed=TRUE WHERE id=$1 AND consumed=FALSE`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var consumed bool
			if err := tx.QueryRow(ctx, `SELECT consumed FROM payment_intents WHERE id=$1`, id).Scan(&consumed); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			existing, err := scanRegistration(tx.QueryRow(ctx,
				`SELECT `+registrationColumns+` FROM registrations WHERE payment_intent_id=$1`, id))
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			result = existing
			return nil
		}

		const query = insertRegistration + `
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
            ON CONFLICT (payment_intent_id) DO NOTHING
            RETURNING ` + registrationColumns
		inserted, err := scanRegistration(tx.QueryRow(ctx, query, registrationArgs(reg)...))
		if err != nil {
			return err
		}
		result = inserted
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, created, nil
}

// --- InvoiceRepository implementation ---

const invoiceColumns = `id, invoice_no, registration_id, amount, status, issue_date, due_date,
       payment_date, transaction_id, pdf_url, created_at, updated_at`

func scanInvoice(row pgx.Row) (*model.Invoice, error) {
	var inv model.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNo, &inv.RegistrationID, &inv.Amount, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.PaymentDate, &inv.TransactionID, &inv.PDFURL,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) CreateIfAbsent(ctx context.Context, inv *model.Invoice) (*model.Invoice, bool, error) {
	const query = `INSERT INTO invoices (invoice_no, registration_id, amount, status, issue_date, due_date, pdf_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (registration_id) DO NOTHING
        RETURNING ` + invoiceColumns
	created, err := scanInvoice(r.storage.pool.QueryRow(ctx, query,
		inv.InvoiceNo, inv.RegistrationID, inv.Amount, inv.Status, inv.IssueDate, inv.DueDate, inv.PDFURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, err := r.GetByRegistration(ctx, inv.RegistrationID)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return created, true, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1`
	inv, err := scanInvoice(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepository) GetByRegistration(ctx context.Context, registrationID int64) (*model.Invoice, error) {
	const query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE registration_id=$1`
	inv, err := scanInvoice(r.storage.pool.QueryRow(ctx, query, registrationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id int64, from, to model.InvoiceStatus, paymentDate *time.Time, transactionID *string) (*model.Invoice, error) {
	const query = `UPDATE invoices SET status=$3,
        payment_date=COALESCE($4, payment_date),
        transaction_id=COALESCE($5, transaction_id),
        updated_at=NOW()
        WHERE id=$1 AND status=$2
        RETURNING ` + invoiceColumns
	inv, err := scanInvoice(r.storage.pool.QueryRow(ctx, query, id, from, to, paymentDate, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return inv, nil
}

// --- OrderNoteRepository implementation ---

func (r *noteRepository) Add(ctx context.Context, note *model.OrderNote) (*model.OrderNote, error) {
	const query = `INSERT INTO order_notes (registration_id, author, body, is_private)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	saved := *note
	err := r.storage.pool.QueryRow(ctx, query, note.RegistrationID, note.Author, note.Body, note.IsPrivate).
		Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &saved, nil
}

func (r *noteRepository) ListByRegistration(ctx context.Context, registrationID int64) ([]model.OrderNote, error) {
	const query = `SELECT id, registration_id, author, body, is_private, created_at
        FROM order_notes WHERE registration_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, registrationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderNote
	for rows.Next() {
		var n model.OrderNote
		if err := rows.Scan(&n.ID, &n.RegistrationID, &n.Author, &n.Body, &n.IsPrivate, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *noteRepository) Delete(ctx context.Context, registrationID, noteID int64) error {
	const query = `DELETE FROM order_notes WHERE id=$1 AND registration_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, noteID, registrationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ScheduleRepository implementation ---

func (r *scheduleRepository) GetByID(ctx context.Context, id int64) (*model.CourseSchedule, error) {
	const query = `SELECT id, course_id, title, fee, price, start_date FROM course_schedules WHERE id=$1`
	var s model.CourseSchedule
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.CourseID, &s.Title, &s.Fee, &s.Price, &s.StartDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, created_at FROM users WHERE LOWER(email)=LOWER($1)`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
