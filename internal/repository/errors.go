package repository

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "vetclinic/internal/errors"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	mysqlDuplicateRe = regexp.MustCompile(`Duplicate entry '(.*)' for key '([^']+)'`)
	mysqlForeignRe   = regexp.MustCompile("FOREIGN KEY \\(`([^`]+)`\\)")
	pgKeyRe          = regexp.MustCompile(`Key \(([^)]+)\)=\((.*)\)`)
)

type violationKind int

const (
	violationNone violationKind = iota
	violationUnique
	violationReferenced
	violationMissingParent
)

type violation struct {
	kind       violationKind
	constraint string
	column     string
	value      string
}

// classify inspects driver errors for integrity constraint failures.
func classify(err error) violation {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			v := violation{kind: violationUnique}
			if m := mysqlDuplicateRe.FindStringSubmatch(myErr.Message); m != nil {
				v.value = m[1]
				// MySQL 8 prefixes the key with the table name.
				key := m[2]
				if i := strings.LastIndex(key, "."); i >= 0 {
					key = key[i+1:]
				}
				v.constraint = key
			}
			return v
		case mysqlRowIsReferenced:
			return violation{kind: violationReferenced}
		case mysqlNoReferencedRow:
			v := violation{kind: violationMissingParent}
			if m := mysqlForeignRe.FindStringSubmatch(myErr.Message); m != nil {
				v.column = m[1]
			}
			return v
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			v := violation{kind: violationUnique, constraint: pgErr.ConstraintName}
			if m := pgKeyRe.FindStringSubmatch(pgErr.Detail); m != nil {
				v.column, v.value = m[1], m[2]
			}
			return v
		case pgForeignKeyViolation:
			if strings.Contains(pgErr.Detail, "is still referenced") {
				return violation{kind: violationReferenced, constraint: pgErr.ConstraintName}
			}
			v := violation{kind: violationMissingParent, constraint: pgErr.ConstraintName}
			if m := pgKeyRe.FindStringSubmatch(pgErr.Detail); m != nil {
				v.column = m[1]
			}
			return v
		}
	}

	return violation{}
}

// translateWriteError turns integrity failures raised by an insert or update into
// the application error taxonomy. uniques maps index names to field names.
func translateWriteError(err error, uniques map[string]string) error {
	v := classify(err)
	switch v.kind {
	case violationUnique:
		field, ok := uniques[v.constraint]
		if !ok {
			field = v.column
		}
		if field == "" {
			field = "value"
		}
		return apperrors.Conflict(field, v.value)
	case violationMissingParent:
		field := v.column
		if field == "" {
			field = "reference"
		}
		return apperrors.NewValidationError(field, "references a record that does not exist")
	default:
		return err
	}
}

// translateDeleteError reports deletes blocked by foreign keys as InUseError.
func translateDeleteError(err error, entity string, id uint) error {
	if classify(err).kind == violationReferenced {
		return &apperrors.InUseError{Entity: entity, ID: id}
	}
	return err
}
