package core

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/cmail/internal/tabular"
)

const testOwner = "chris@gmail.com"

func newContactServiceForTest() (ContactService, *fakeContactRepo) {
	repo := newFakeContactRepo()
	return NewContactService(repo, zap.NewNop()), repo
}

func TestAddContact(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()
	ctx := context.Background()

	id, err := svc.AddContact(ctx, testOwner, "John Doe", "johndoe@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	contacts, err := svc.ListContacts(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.Equal(t, "John Doe", contacts[0].Name)
	require.Equal(t, "johndoe@example.com", contacts[0].Email)
}

func TestAddContact_InvalidEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()

	_, err := svc.AddContact(context.Background(), testOwner, "Bad", "not-an-email")
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestAddContact_NotAuthenticated(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()

	_, err := svc.AddContact(context.Background(), "", "John", "john@x.com")
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateContact_AbsentIDReportsSuccess(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()

	err := svc.UpdateContact(context.Background(), testOwner, "no-such-id", "New Name", "new@x.com")
	require.NoError(t, err)
}

func TestBulkImport_MixedRows(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()
	ctx := context.Background()

	table, err := tabular.ParseCSV(strings.NewReader("Name,Email\nAlice,alice@x.com\nBob,bad@@x\n"))
	require.NoError(t, err)

	results, err := svc.BulkImport(ctx, testOwner, table)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Empty(t, results[0].Error)
	require.NotEmpty(t, results[0].ContactID)
	require.NotEmpty(t, results[1].Error, "the invalid row must be reported individually")
	require.Empty(t, results[1].ContactID)

	contacts, err := svc.ListContacts(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, contacts, 1, "exactly one contact is added for one valid row")
	require.Equal(t, "alice@x.com", contacts[0].Email)
}

func TestBulkImport_MissingColumn(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()

	table, err := tabular.ParseCSV(strings.NewReader("Name,Phone\nAlice,123\n"))
	require.NoError(t, err)

	_, err = svc.BulkImport(context.Background(), testOwner, table)
	require.ErrorIs(t, err, ErrImportFormat)
}

func TestDeleteAllContacts(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := svc.AddContact(ctx, testOwner, "n", email)
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteAllContacts(ctx, testOwner))

	contacts, err := svc.ListContacts(ctx, testOwner)
	require.NoError(t, err)
	require.Empty(t, contacts)
}

func TestDeleteContact_RemovesOnlyAddressedRecord(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()
	ctx := context.Background()

	id1, err := svc.AddContact(ctx, testOwner, "A", "a@x.com")
	require.NoError(t, err)
	_, err = svc.AddContact(ctx, testOwner, "B", "b@x.com")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContact(ctx, testOwner, id1))

	contacts, err := svc.ListContacts(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.Equal(t, "b@x.com", contacts[0].Email)
}

func TestContacts_DuplicateEmailsAllowed(t *testing.T) {
	t.Parallel()
	svc, _ := newContactServiceForTest()
	ctx := context.Background()

	_, err := svc.AddContact(ctx, testOwner, "One", "same@x.com")
	require.NoError(t, err)
	_, err = svc.AddContact(ctx, testOwner, "Two", "same@x.com")
	require.NoError(t, err)

	contacts, err := svc.ListContacts(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
}
