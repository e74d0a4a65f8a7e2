package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack/logger"
	"shelftrack/repo"
	"shelftrack/service"
	"shelftrack/validator"
)

func init() {
	logger.Init("error")
}

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, svc.Setup(context.Background()))
	return svc
}

func TestSetupIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.Setup(ctx))

	details, err := svc.ViewAllBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, details, 5)
}

func TestEnterBookThenView(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.EnterBook(ctx, 4001, "Test Book", 1290, 5))

	details, err := svc.ViewAllBooks(ctx)
	require.NoError(t, err)

	var found bool
	for _, d := range details {
		if d.ID == 4001 {
			found = true
			assert.Equal(t, "Test Book", d.Title)
			assert.Equal(t, "Charles Dickens", d.AuthorName)
			assert.Equal(t, "England", d.AuthorCountry)
			assert.EqualValues(t, 5, d.Qty)
		}
	}
	assert.True(t, found, "added book must appear in the joined listing")
}

func TestEnterBookRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.EnterBook(ctx, 4100, "Bleak House", 1290, 7))

	got, err := svc.GetBook(ctx, 4100)
	require.NoError(t, err)
	assert.Equal(t, "Bleak House", got.Title)
	assert.EqualValues(t, 1290, got.AuthorID)
	assert.EqualValues(t, 7, got.Qty)
}

func TestEnterBookDuplicateID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.EnterBook(ctx, 3001, "Shadowed", 1290, 1)
	assert.ErrorIs(t, err, repo.ErrDuplicateID)
}

func TestEnterBookRejectsBadArguments(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.Error(t, svc.EnterBook(ctx, 0, "No ID", 1290, 1))
	assert.ErrorIs(t, svc.EnterBook(ctx, 4001, "", 1290, 1), validator.ErrEmptyString)
}

func TestUpdateQtyLeavesOthersAlone(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.UpdateQty(ctx, 3001, 99))

	details, err := svc.ViewAllBooks(ctx)
	require.NoError(t, err)
	for _, d := range details {
		switch d.ID {
		case 3001:
			assert.EqualValues(t, 99, d.Qty)
		case 3002:
			assert.EqualValues(t, 40, d.Qty)
		}
	}
}

func TestUpdateQtyMissingBookSucceeds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// zero matched rows is reported as success, per the update contract
	assert.NoError(t, svc.UpdateQty(ctx, 9999, 1))
}

func TestRenameAuthorCascades(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.EnterBook(ctx, 4001, "Great Expectations", 1290, 8))

	a, err := svc.CurrentAuthor(ctx, 3001)
	require.NoError(t, err)
	require.EqualValues(t, 1290, a.ID)

	require.NoError(t, svc.RenameAuthor(ctx, a.ID, "C. Dickens", a.Country))

	details, err := svc.ViewAllBooks(ctx)
	require.NoError(t, err)
	for _, d := range details {
		if d.AuthorID == 1290 {
			assert.Equal(t, "C. Dickens", d.AuthorName)
		}
	}
}

func TestRenameAuthorRejectsEmptyValues(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.ErrorIs(t, svc.RenameAuthor(ctx, 1290, "", "England"), validator.ErrEmptyString)
	assert.ErrorIs(t, svc.RenameAuthor(ctx, 1290, "C. Dickens", ""), validator.ErrEmptyString)
}

func TestCurrentAuthorNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CurrentAuthor(ctx, 9999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDeleteBookMissingIDSucceeds(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.NoError(t, svc.DeleteBook(ctx, 9999))
}

func TestSearchBooksNoMatches(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	books, err := svc.SearchBooks(ctx, "zzzz")
	require.NoError(t, err)
	assert.Empty(t, books)
}
