//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"github.com/Varma0099/lill-things/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "plain error is a db failure", err: errors.New("boom"), want: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindConstraintViolated},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "nil error with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(wrapped, tc.want), "got %v", wrapped)
		})
	}

	t.Run("pg error stays reachable", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "40001"}
		wrapped := infra.WrapRepoErr("op", pgErr)

		var target *pgconn.PgError
		assert.True(t, errors.As(wrapped, &target))
		assert.Equal(t, "40001", target.Code)
	})
}
