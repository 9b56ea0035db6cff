package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	repo "warehouse/internal/repository"
)

const fkViolationCode = "23503"

// translatePgError は参照整合性違反をrepo層のエラーに写す。
// その他のDBエラーはそのまま返す。
func translatePgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
		return repo.ErrForeignKey
	}
	return err
}
