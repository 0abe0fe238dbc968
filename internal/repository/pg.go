package repository

import (
	"context"
	"errors"
	"fmt"

	"lucky-draw-backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode Postgres unique_violation
const uniqueViolationCode = "23505"

// rowScanner pgx.Row 與 pgx.Rows 共用的 Scan
type rowScanner interface {
	Scan(dest ...any) error
}

// TxBeginner *pgxpool.Pool 的 Begin，測試時可替換成假的 transaction
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// querier pool 與 tx 都能用的查詢介面
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation 回傳違反的 unique constraint 名稱
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// nullIfEmpty 空字串存成 NULL，讓 partial unique index 忽略未提供的欄位
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// identifierColumns 允許用來比對重複報名的欄位，依 phone -> email -> handle 順序
var identifierColumns = map[string]string{
	model.FieldPhone:  "phone",
	model.FieldEmail:  "email",
	model.FieldHandle: "handle",
}

// findRegistration 在 table 中找出同一場活動已使用的第一個識別欄位，沒有衝突回傳空字串
func findRegistration(ctx context.Context, q querier, table string, competitionID int, ids model.Identifiers) (string, error) {
	for _, iv := range ids.Supplied() {
		column, ok := identifierColumns[iv.Field]
		if !ok {
			continue
		}

		query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE competition_id = $1 AND %s = $2)`, table, column)

		var exists bool
		if err := q.QueryRow(ctx, query, competitionID, iv.Value).Scan(&exists); err != nil {
			return "", fmt.Errorf("check %s %s: %w", table, iv.Field, err)
		}
		if exists {
			return iv.Field, nil
		}
	}
	return "", nil
}
