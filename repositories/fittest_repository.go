package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/securefit/ecard/models"
)

// Sentinel errors
var (
	// ErrNotFound means no record exists for the given identifier
	ErrNotFound = errors.New("fit test record not found")
	// ErrIndexRequired means the composite (user_id, created_at) index
	// backing the listing query is missing. This is a one-time remedial
	// condition (create the index, then retry), not a transient failure.
	ErrIndexRequired = errors.New("listing requires the (user_id, created_at) index; run migrations to create idx_fit_tests_user_created, then retry")
)

// FitTestRepository defines fit test record database operations
type FitTestRepository interface {
	Create(ctx context.Context, record *models.FitTestRecord) error
	GetByID(ctx context.Context, id string) (*models.FitTestRecord, error)
	ListByUser(ctx context.Context, userID string) ([]models.FitTestRecord, error)
	Update(ctx context.Context, record *models.FitTestRecord) error
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

// fitTestRepository implements FitTestRepository
type fitTestRepository struct {
	db *sql.DB
}

// NewFitTestRepository creates a new fit test repository
func NewFitTestRepository(db *sql.DB) FitTestRepository {
	return &fitTestRepository{db: db}
}

const fitTestColumns = `id, user_id, recipient_email, client_name, dob, issue_date,
	fit_test_type, respirator_mfg, respirator_mfg_custom, testing_agent,
	mask_size, model, result, fit_tester, printed_name, signature_image,
	created_at, updated_at`

// Create inserts a new record, assigning its identifier and timestamps. The
// owner and created_at are set exactly once here and never changed afterwards.
func (r *fitTestRepository) Create(ctx context.Context, record *models.FitTestRecord) error {
	if record.UserID == "" {
		return fmt.Errorf("fit test record requires an owner")
	}

	record.ID = uuid.NewString()
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `
		INSERT INTO fit_tests (` + fitTestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.RecipientEmail,
		record.ClientName,
		record.DOB,
		record.IssueDate,
		record.FitTestType,
		record.RespiratorMfg.Name,
		record.RespiratorMfg.Custom,
		record.TestingAgent,
		record.MaskSize,
		record.Model,
		record.Result,
		record.FitTester,
		record.PrintedName,
		record.SignatureImage,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create fit test record: %w", err)
	}
	return nil
}

// scanRecord reads one row into a record
func scanRecord(scan func(dest ...any) error) (*models.FitTestRecord, error) {
	var record models.FitTestRecord
	err := scan(
		&record.ID,
		&record.UserID,
		&record.RecipientEmail,
		&record.ClientName,
		&record.DOB,
		&record.IssueDate,
		&record.FitTestType,
		&record.RespiratorMfg.Name,
		&record.RespiratorMfg.Custom,
		&record.TestingAgent,
		&record.MaskSize,
		&record.Model,
		&record.Result,
		&record.FitTester,
		&record.PrintedName,
		&record.SignatureImage,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByID retrieves a record by its identifier
func (r *fitTestRepository) GetByID(ctx context.Context, id string) (*models.FitTestRecord, error) {
	query := `SELECT ` + fitTestColumns + ` FROM fit_tests WHERE id = ?`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fit test record: %w", err)
	}
	return record, nil
}

// ListByUser retrieves all records owned by a user, newest first. The query
// names the composite index explicitly: a database without it fails with
// ErrIndexRequired rather than degrading to a scan, so the caller can surface
// the remediation step.
func (r *fitTestRepository) ListByUser(ctx context.Context, userID string) ([]models.FitTestRecord, error) {
	query := `
		SELECT ` + fitTestColumns + `
		FROM fit_tests INDEXED BY idx_fit_tests_user_created
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, classifyListError(err)
	}
	defer rows.Close()

	var records []models.FitTestRecord
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fit test record: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fit test records: %w", err)
	}
	return records, nil
}

// classifyListError distinguishes the missing-index condition from generic
// query failures
func classifyListError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such index") || strings.Contains(msg, "no query solution") {
		return fmt.Errorf("%w: %s", ErrIndexRequired, err.Error())
	}
	return fmt.Errorf("failed to query fit test records: %w", err)
}

// Update overwrites a record's fields and bumps updated_at. The owner and
// created_at are immutable and never written here.
func (r *fitTestRepository) Update(ctx context.Context, record *models.FitTestRecord) error {
	query := `
		UPDATE fit_tests
		SET recipient_email = ?, client_name = ?, dob = ?, issue_date = ?,
		    fit_test_type = ?, respirator_mfg = ?, respirator_mfg_custom = ?,
		    testing_agent = ?, mask_size = ?, model = ?, result = ?,
		    fit_tester = ?, printed_name = ?, signature_image = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		record.RecipientEmail,
		record.ClientName,
		record.DOB,
		record.IssueDate,
		record.FitTestType,
		record.RespiratorMfg.Name,
		record.RespiratorMfg.Custom,
		record.TestingAgent,
		record.MaskSize,
		record.Model,
		record.Result,
		record.FitTester,
		record.PrintedName,
		record.SignatureImage,
		now,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fit test record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, record.ID)
	}

	record.UpdatedAt = now
	return nil
}

// Touch bumps updated_at without changing any other field. The resend flow
// uses this to re-stamp a record after dispatching its card again.
func (r *fitTestRepository) Touch(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE fit_tests SET updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to touch fit test record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Delete permanently removes a record. There is no soft delete.
func (r *fitTestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fit_tests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fit test record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// CountByUser returns the number of records owned by a user
func (r *fitTestRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM fit_tests WHERE user_id = ?`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count fit test records: %w", err)
	}
	return count, nil
}
