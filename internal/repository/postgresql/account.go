package postgresql

import (
	"context"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) auth.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// GetByEmail implements auth.AccountRepository.
func (a *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, email, password_hash, role, employee_id
		FROM accounts
		WHERE email = $1
	`

	var account auth.Account
	err := q.QueryRow(ctx, query, email).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.EmployeeID)
	if err != nil {
		return auth.Account{}, err
	}

	return account, nil
}

// GetByID implements auth.AccountRepository.
func (a *accountRepositoryImpl) GetByID(ctx context.Context, id string) (auth.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, email, password_hash, role, employee_id
		FROM accounts
		WHERE id = $1
	`

	var account auth.Account
	err := q.QueryRow(ctx, query, id).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.EmployeeID)
	if err != nil {
		return auth.Account{}, err
	}

	return account, nil
}

// Create implements auth.AccountRepository.
func (a *accountRepositoryImpl) Create(ctx context.Context, account auth.Account) (auth.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO accounts (id, email, password_hash, role, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, role, employee_id
	`

	var created auth.Account
	err := q.QueryRow(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Role, account.EmployeeID,
	).Scan(&created.ID, &created.Email, &created.PasswordHash, &created.Role, &created.EmployeeID)
	if err != nil {
		return auth.Account{}, err
	}

	return created, nil
}
