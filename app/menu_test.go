package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack/logger"
	"shelftrack/service"
)

func init() {
	logger.Init("error")
}

// runSession feeds a scripted operator session to the menu loop against a
// freshly seeded database and returns everything it printed.
func runSession(t *testing.T, input string) string {
	t.Helper()
	svc := service.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, svc.Setup(context.Background()))

	var out bytes.Buffer
	newMenu(svc, strings.NewReader(input), &out).Run(context.Background())
	return out.String()
}

func TestMenuExit(t *testing.T) {
	out := runSession(t, "0\n")
	assert.Contains(t, out, "Goodbye! Have a great day.")
}

func TestMenuEndOfInputStopsLoop(t *testing.T) {
	out := runSession(t, "")
	assert.NotContains(t, out, "Goodbye")
}

func TestMenuInvalidSelection(t *testing.T) {
	out := runSession(t, "9\n0\n")
	assert.Contains(t, out, "Invalid selection. Please choose again.")
	assert.Contains(t, out, "Goodbye! Have a great day.")
}

func TestMenuViewAllBooks(t *testing.T) {
	out := runSession(t, "5\n0\n")
	assert.Contains(t, out, "A Tale of Two Cities")
	assert.Contains(t, out, "Charles Dickens (England)")
	assert.Contains(t, out, "J.R.R. Tolkien (South Africa)")
}

func TestMenuEnterBookFlow(t *testing.T) {
	out := runSession(t, "1\n4001\nTest Book\n1290\n5\n5\n0\n")
	assert.Contains(t, out, `Book "Test Book" successfully added.`)
	assert.Contains(t, out, "ID: 4001, Title: Test Book, Author: Charles Dickens (England), Quantity: 5")
}

func TestMenuEnterBookParseErrorKeepsLoopAlive(t *testing.T) {
	out := runSession(t, "1\nabc\n0\n")
	assert.Contains(t, out, "Error adding book:")
	assert.Contains(t, out, `"abc" is not a number`)
	assert.Contains(t, out, "Goodbye! Have a great day.")
}

func TestMenuEnterBookDuplicateID(t *testing.T) {
	out := runSession(t, "1\n3001\nShadowed\n1290\n1\n0\n")
	assert.Contains(t, out, "a book with ID 3001 already exists")
	assert.Contains(t, out, "Goodbye! Have a great day.")
}

func TestMenuUpdateQuantityFlow(t *testing.T) {
	out := runSession(t, "2\n3001\n1\n99\n5\n0\n")
	assert.Contains(t, out, "Book/Author updated successfully.")
	assert.Contains(t, out, "ID: 3001, Title: A Tale of Two Cities, Author: Charles Dickens (England), Quantity: 99")
}

func TestMenuUpdateInvalidMode(t *testing.T) {
	out := runSession(t, "2\n3001\n7\n0\n")
	assert.Contains(t, out, "Invalid choice.")
	assert.NotContains(t, out, "Book/Author updated successfully.")
}

func TestMenuUpdateAuthorBlankKeepsCurrent(t *testing.T) {
	// rename the author, keep the country by entering a blank line
	out := runSession(t, "2\n3001\n4\nC. Dickens\n\n5\n0\n")
	assert.Contains(t, out, "Current Author: Charles Dickens (England)")
	assert.Contains(t, out, "Book/Author updated successfully.")
	assert.Contains(t, out, "C. Dickens (England)")
}

func TestMenuUpdateAuthorNotFound(t *testing.T) {
	out := runSession(t, "2\n9999\n4\n0\n")
	assert.Contains(t, out, "Author not found for this book.")
	assert.NotContains(t, out, "Book/Author updated successfully.")
}

func TestMenuDeleteThenSearch(t *testing.T) {
	out := runSession(t, "3\n3002\n4\nHarry\n0\n")
	assert.Contains(t, out, "Book with ID 3002 deleted successfully.")
	assert.Contains(t, out, "No books found with that keyword.")
}

func TestMenuSearchSubstring(t *testing.T) {
	out := runSession(t, "4\nlion\n0\n")
	assert.Contains(t, out, "The Lion, the Witch and the Wardrobe")
}
