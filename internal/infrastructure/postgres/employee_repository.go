package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/novacore-api/internal/domain/entity"
	"github.com/jhoicas/novacore-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// BaseSalary se mapea a NUMERIC vía el codec shopspring/decimal registrado en el pool.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de lectura para expedientes.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `id, company_id, COALESCE(user_id, ''), first_name, last_name, email,
	COALESCE(department_id, ''), position, hire_date, base_salary, status, created_at, updated_at`

// FindByID obtiene un expediente por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListByCompany lista expedientes de la empresa con paginación.
// limit <= 0 significa sin límite (NULLIF lo convierte en LIMIT NULL).
func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY id LIMIT NULLIF($2, 0) OFFSET $3`
	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees by company: %w", err)
	}
	defer rows.Close()

	var out []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar employees: %w", err)
	}
	return out, nil
}

// CountByCompany cuenta los expedientes de la empresa.
func (r *EmployeeRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.UserID, &e.FirstName, &e.LastName, &e.Email,
		&e.DepartmentID, &e.Position, &e.HireDate, &e.BaseSalary, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
