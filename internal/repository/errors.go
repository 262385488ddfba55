package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/news-aggregator-api/internal/apperror"
)

// invalidTextRepresentation is the SQLSTATE Postgres raises when a parameter
// cannot be parsed as the column's type (e.g. 'abc'::int)
const invalidTextRepresentation pq.ErrorCode = "22P02"

// translateError classifies driver errors for the error middleware. Invalid
// input syntax becomes apperror.ErrMalformedInput; every other error is
// wrapped with op and left unclassified.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == invalidTextRepresentation {
		return fmt.Errorf("%s: %w: %s", op, apperror.ErrMalformedInput, pqErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
