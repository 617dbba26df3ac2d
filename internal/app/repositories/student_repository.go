package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kasule/studentledger/internal/app/models"
	"github.com/kasule/studentledger/internal/db"
	"github.com/kasule/studentledger/internal/pkg/apperrors"
	"github.com/kasule/studentledger/internal/pkg/dberrors"
	"github.com/kasule/studentledger/internal/pkg/logger"
)

// firstStudentNumber is where ID assignment starts for an empty ledger.
const firstStudentNumber = 1001

// studentColumns is the column order shared by every scan in this repository.
var studentColumns = []string{
	"id", "student_id", "full_name", "phone", "parent_phone",
	"monthly_fee", "balance", "payment_status", "examination_access",
	"password_hash", "created_at",
}

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	// Create assigns the next sequential student ID and inserts the record.
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	// ListByStudentIDDesc returns all students ordered by student ID descending.
	ListByStudentIDDesc(ctx context.Context) ([]*models.Student, error)
	SetPasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	// MarkPaid zeroes the balance and grants examination access, returning
	// the updated record.
	MarkPaid(ctx context.Context, id uuid.UUID) (*models.Student, error)
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// rowScanner abstracts pgx.Row and pgx.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent scans one row in studentColumns order.
func scanStudent(row rowScanner) (*models.Student, error) {
	var (
		student models.Student
		status  string
	)
	err := row.Scan(
		&student.ID, &student.StudentID, &student.FullName, &student.Phone,
		&student.ParentPhone, &student.MonthlyFee, &student.Balance, &status,
		&student.ExaminationAccess, &student.PasswordHash, &student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	student.PaymentStatus = models.PaymentStatus(status)
	return &student, nil
}

// Create inserts a new student, assigning the next sequential student ID
// inside a transaction. The current greatest ID row is locked so two
// concurrent enrollments cannot read the same value; the unique constraint
// on student_id remains as a backstop.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		nextID, err := r.nextStudentID(ctx, tx)
		if err != nil {
			return err
		}
		student.StudentID = nextID

		sql, args, err := r.sb.Insert("students").
			Columns("id", "student_id", "full_name", "phone", "parent_phone",
				"monthly_fee", "balance", "payment_status", "examination_access",
				"password_hash").
			Values(student.ID, student.StudentID, student.FullName, student.Phone,
				student.ParentPhone, student.MonthlyFee, student.Balance,
				string(student.PaymentStatus), student.ExaminationAccess,
				student.PasswordHash).
			Suffix("RETURNING created_at").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create student SQL")
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&student.CreatedAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
				logger.Warn().Str("studentID", student.StudentID).Msg("Attempted to create student with duplicate student ID")
				return apperrors.ErrStudentIDExists
			}
			logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
			return fmt.Errorf("error creating student: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Str("studentID", student.StudentID).Msg("Student created successfully")
	return nil
}

// nextStudentID reads the greatest assigned student ID and returns it
// incremented by one, starting at firstStudentNumber when the table is empty.
// TEXT ordering is lexicographic, which coincides with numeric ordering for
// this ID space (IDs start at 1001 and only grow).
func (r *StudentRepository) nextStudentID(ctx context.Context, tx pgx.Tx) (string, error) {
	sql, args, err := r.sb.Select("student_id").
		From("students").
		OrderBy("student_id DESC").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building next student ID SQL")
		return "", fmt.Errorf("failed to build next student ID query: %w", err)
	}

	var last string
	err = tx.QueryRow(ctx, sql, args...).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return strconv.Itoa(firstStudentNumber), nil
		}
		logger.Error().Err(err).Msg("Error reading last student ID")
		return "", fmt.Errorf("error reading last student ID: %w", err)
	}

	lastNumber, err := strconv.Atoi(last)
	if err != nil {
		return "", fmt.Errorf("stored student ID %q is not numeric: %w", last, err)
	}

	return strconv.Itoa(lastNumber + 1), nil
}

// GetByStudentID retrieves a student by the human-facing student ID
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by student ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Str("studentID", studentID).Msg("Student not found by student ID")
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByID retrieves a student by the record identifier
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("recordID", id.String()).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ListByStudentIDDesc retrieves all students ordered by student ID descending
func (r *StudentRepository) ListByStudentIDDesc(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("student_id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// SetPasswordHash stores a student's password digest, overwriting any prior value
func (r *StudentRepository) SetPasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	sql, args, err := r.sb.Update("students").
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set password hash SQL")
		return fmt.Errorf("failed to build set password hash query: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("recordID", id.String()).Msg("Error executing set password hash query")
		return fmt.Errorf("error setting password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		logger.Warn().Str("recordID", id.String()).Msg("Password setup for unknown student record")
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// MarkPaid settles the full balance and grants examination access
func (r *StudentRepository) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		Set("balance", 0).
		Set("payment_status", string(models.PaymentPaid)).
		Set("examination_access", true).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(studentColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark paid SQL")
		return nil, fmt.Errorf("failed to build mark paid query: %w", err)
	}

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Str("recordID", id.String()).Msg("Payment for unknown student record")
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("recordID", id.String()).Msg("Error executing mark paid query")
		return nil, fmt.Errorf("error recording payment: %w", err)
	}

	logger.Info().Str("recordID", id.String()).Str("studentID", student.StudentID).Msg("Student marked as paid")
	return student, nil
}
