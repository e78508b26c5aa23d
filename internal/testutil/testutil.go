// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecotrip/internal/infra"
	"ecotrip/internal/models/request_models"
	"ecotrip/pkg/utils"
)

// NewTestDB returns a migrated in-memory SQLite database private to the test.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return db
}

// FakeEcoClient records calls and returns a canned answer.
type FakeEcoClient struct {
	Response    string
	Err         error
	Unavailable bool

	Calls           int
	LastDescription string
	LastActivities  []request_models.ActivityRequest
	LastCtxErr      error
}

var _ utils.EcoSuggestionClient = (*FakeEcoClient)(nil)

func (f *FakeEcoClient) SuggestAlternatives(ctx context.Context, description string, activities []request_models.ActivityRequest) (string, error) {
	f.Calls++
	f.LastDescription = description
	f.LastActivities = activities
	f.LastCtxErr = ctx.Err()
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}

func (f *FakeEcoClient) Available() bool { return !f.Unavailable }

func (f *FakeEcoClient) Close() error { return nil }

func StrPtr(s string) *string { return &s }

func FloatPtr(f float64) *float64 { return &f }

func UintPtr(u uint) *uint { return &u }
