package company

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/finsight/internal/db/sqldb"
	"github.com/kailas-cloud/finsight/internal/domain"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
)

var recordColumns = []string{"company", "company_name", "strength", "pros", "cons"}

func newTestRepo(t *testing.T, dialect sqldb.Dialect) (*Repo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return New(sqldb.New(conn, dialect)), mock
}

func TestFind(t *testing.T) {
	findQuery := regexp.QuoteMeta(
		"SELECT company, company_name, strength, pros, cons FROM company_analysis WHERE company = ?")

	tests := []struct {
		name      string
		id        string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		check     func(t *testing.T, rec domcompany.Record)
	}{
		{
			name: "found",
			id:   "TCS",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQuery).WithArgs("TCS").WillReturnRows(
					sqlmock.NewRows(recordColumns).
						AddRow("TCS", "Tata Consultancy", "Strong", "High margin|Stable clients", "Valuation"))
			},
			check: func(t *testing.T, rec domcompany.Record) {
				assert.Equal(t, "TCS", rec.ID())
				assert.Equal(t, "Tata Consultancy", rec.Name())
				assert.Equal(t, domcompany.StrengthStrong, rec.Strength())
				assert.Equal(t, []string{"High margin", "Stable clients"}, rec.Pros())
				assert.Equal(t, []string{"Valuation"}, rec.Cons())
			},
		},
		{
			name: "null pros and cons",
			id:   "ABB",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQuery).WithArgs("ABB").WillReturnRows(
					sqlmock.NewRows(recordColumns).AddRow("ABB", "ABB India", "Weak", nil, nil))
			},
			check: func(t *testing.T, rec domcompany.Record) {
				assert.Equal(t, []string{}, rec.Pros())
				assert.Equal(t, []string{}, rec.Cons())
			},
		},
		{
			name: "first of several rows",
			id:   "INFY",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQuery).WithArgs("INFY").WillReturnRows(
					sqlmock.NewRows(recordColumns).
						AddRow("INFY", "first", "Strong", "", "").
						AddRow("INFY", "second", "Weak", "", ""))
			},
			check: func(t *testing.T, rec domcompany.Record) {
				assert.Equal(t, "first", rec.Name())
			},
		},
		{
			name: "no rows",
			id:   "NOPE",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQuery).WithArgs("NOPE").WillReturnRows(sqlmock.NewRows(recordColumns))
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "query error",
			id:   "TCS",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQuery).WithArgs("TCS").WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t, sqldb.SQLite)
			tt.setupMock(mock)

			rec, err := repo.Find(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if !errors.Is(tt.wantErr, domain.ErrNotFound) {
					assert.NotErrorIs(t, err, domain.ErrNotFound)
				}
			} else {
				require.NoError(t, err)
				tt.check(t, rec)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFind_ExactMatchPerDialect(t *testing.T) {
	tests := []struct {
		dialect sqldb.Dialect
		query   string
	}{
		{sqldb.SQLite, "SELECT company, company_name, strength, pros, cons FROM company_analysis WHERE company = ?"},
		{sqldb.Postgres, "SELECT company, company_name, strength, pros, cons FROM company_analysis WHERE company = $1"},
		{sqldb.MySQL, "SELECT company, company_name, strength, pros, cons FROM company_analysis " +
			"WHERE company COLLATE utf8mb4_bin = ?"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			t.Cleanup(func() { _ = conn.Close() })
			repo := New(sqldb.New(conn, tt.dialect))

			// A case-folding comparison would hand back the TCS row here.
			mock.ExpectQuery(tt.query).WithArgs("tcs").WillReturnRows(sqlmock.NewRows(recordColumns))

			_, err = repo.Find(context.Background(), "tcs")
			assert.ErrorIs(t, err, domain.ErrRecordNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestList(t *testing.T) {
	repo, mock := newTestRepo(t, sqldb.Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT company, company_name, strength FROM company_analysis ORDER BY company")).
		WillReturnRows(sqlmock.NewRows([]string{"company", "company_name", "strength"}).
			AddRow("ABB", "ABB India", "Weak").
			AddRow("TCS", "Tata Consultancy", "Strong"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domcompany.Summary{
		{ID: "ABB", Name: "ABB India", Strength: domcompany.StrengthWeak},
		{ID: "TCS", Name: "Tata Consultancy", Strength: domcompany.StrengthStrong},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock := newTestRepo(t, sqldb.SQLite)

	mock.ExpectQuery("SELECT company, company_name, strength FROM company_analysis").
		WillReturnRows(sqlmock.NewRows([]string{"company", "company_name", "strength"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_Error(t *testing.T) {
	repo, mock := newTestRepo(t, sqldb.SQLite)

	mock.ExpectQuery("SELECT company").WillReturnError(assert.AnError)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUpsert(t *testing.T) {
	tests := []struct {
		name    string
		dialect sqldb.Dialect
		clause  string
	}{
		{"postgres", sqldb.Postgres, "ON CONFLICT (company) DO UPDATE SET company_name = excluded.company_name"},
		{"sqlite", sqldb.SQLite, "ON CONFLICT (company) DO UPDATE SET company_name = excluded.company_name"},
		{"mysql", sqldb.MySQL, "ON DUPLICATE KEY UPDATE company_name = VALUES(company_name)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t, tt.dialect)

			mock.ExpectExec("INSERT INTO company_analysis .*"+regexp.QuoteMeta(tt.clause)).
				WithArgs("TCS", "Tata Consultancy", "Strong", "a|b", "c").
				WillReturnResult(sqlmock.NewResult(1, 1))

			rec, err := domcompany.NewRecord("TCS", "Tata Consultancy", domcompany.StrengthStrong, "a|b", "c")
			require.NoError(t, err)

			require.NoError(t, repo.Upsert(context.Background(), rec))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpsert_Error(t *testing.T) {
	repo, mock := newTestRepo(t, sqldb.MySQL)
	mock.ExpectExec("INSERT INTO company_analysis").WillReturnError(assert.AnError)

	err := repo.Upsert(context.Background(), domcompany.Reconstruct("TCS", "", "", "", ""))
	assert.ErrorIs(t, err, assert.AnError)
}
