package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/cmail/internal/mail"
	"github.com/example/cmail/internal/models"
)

// In-memory repository fakes. They mirror the push-key behavior of the real
// store: generated ids are monotonically increasing per shard, so listing in
// id order preserves insertion order.

type fakeContactRepo struct {
	mu   sync.Mutex
	next int
	data map[string][]models.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{data: make(map[string][]models.Contact)}
}

func (f *fakeContactRepo) Add(_ context.Context, owner string, c models.Contact) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	c.ID = fmt.Sprintf("c%04d", f.next)
	f.data[owner] = append(f.data[owner], c)
	return c.ID, nil
}

func (f *fakeContactRepo) List(_ context.Context, owner string) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Contact, len(f.data[owner]))
	copy(out, f.data[owner])
	return out, nil
}

func (f *fakeContactRepo) Update(_ context.Context, owner, id, name, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.data[owner] {
		if c.ID == id {
			f.data[owner][i].Name = name
			f.data[owner][i].Email = email
			return nil
		}
	}
	return nil // absent id: idempotent overwrite semantics, reported as success
}

func (f *fakeContactRepo) Delete(_ context.Context, owner, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.data[owner][:0]
	for _, c := range f.data[owner] {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.data[owner] = kept
	return nil
}

func (f *fakeContactRepo) DeleteAll(_ context.Context, owner string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, owner)
	return nil
}

type fakeTemplateRepo struct {
	mu   sync.Mutex
	next int
	data map[string][]models.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{data: make(map[string][]models.Template)}
}

func (f *fakeTemplateRepo) Add(_ context.Context, owner string, tpl models.Template) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	tpl.ID = fmt.Sprintf("t%04d", f.next)
	f.data[owner] = append(f.data[owner], tpl)
	return tpl.ID, nil
}

func (f *fakeTemplateRepo) List(_ context.Context, owner string) ([]models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Template, len(f.data[owner]))
	copy(out, f.data[owner])
	return out, nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, owner, id, content, subject string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, tpl := range f.data[owner] {
		if tpl.ID == id {
			f.data[owner][i].Content = content
			f.data[owner][i].Subject = subject
			return nil
		}
	}
	return nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, owner, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.data[owner][:0]
	for _, tpl := range f.data[owner] {
		if tpl.ID != id {
			kept = append(kept, tpl)
		}
	}
	f.data[owner] = kept
	return nil
}

type fakeDeliveryLogRepo struct {
	mu   sync.Mutex
	data map[string][]models.DeliveryLogEntry
}

func newFakeDeliveryLogRepo() *fakeDeliveryLogRepo {
	return &fakeDeliveryLogRepo{data: make(map[string][]models.DeliveryLogEntry)}
}

func (f *fakeDeliveryLogRepo) Append(_ context.Context, owner string, entry models.DeliveryLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[owner] = append(f.data[owner], entry)
	return nil
}

func (f *fakeDeliveryLogRepo) List(_ context.Context, owner string) ([]models.DeliveryLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.DeliveryLogEntry, len(f.data[owner]))
	copy(out, f.data[owner])
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeIdentity stands in for the external identity provider.
type fakeIdentity struct {
	signUpErr error
	signInErr error
	nextUID   string
}

func (f *fakeIdentity) SignUp(_ context.Context, email, password string) (string, error) {
	if f.signUpErr != nil {
		return "", f.signUpErr
	}
	if f.nextUID == "" {
		f.nextUID = "uid-1"
	}
	return f.nextUID, nil
}

func (f *fakeIdentity) SignIn(_ context.Context, email, password string) (*models.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &models.Session{UID: "uid-1", Email: email, Username: "user", IDToken: "token"}, nil
}

// fakeProvider delivers to everyone except the recipients listed in reject.
type fakeProvider struct {
	name   string
	reject map[string]error
	mu     sync.Mutex
	calls  [][]string
}

func newFakeProvider(name string, reject map[string]error) *fakeProvider {
	return &fakeProvider{name: name, reject: reject}
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Send(_ context.Context, subject, body string, recipients []string) []mail.SendResult {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string(nil), recipients...))
	f.mu.Unlock()

	results := make([]mail.SendResult, 0, len(recipients))
	for i, r := range recipients {
		if err, bad := f.reject[r]; bad {
			results = append(results, mail.SendResult{Recipient: r, Err: err})
			continue
		}
		results = append(results, mail.SendResult{Recipient: r, MessageID: fmt.Sprintf("msg-%d", i)})
	}
	return results
}
