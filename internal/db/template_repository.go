package db

import (
	"context"
	"fmt"
	"sort"

	rtdb "firebase.google.com/go/v4/db"

	"github.com/example/cmail/internal/models"
)

const templatesCollection = "templates"

// rtdbTemplateRepository implements TemplateRepository on the Realtime Database.
type rtdbTemplateRepository struct {
	client *rtdb.Client
}

// NewTemplateRepository creates a TemplateRepository backed by the Realtime Database.
func NewTemplateRepository(client *rtdb.Client) TemplateRepository {
	return &rtdbTemplateRepository{client: client}
}

func (r *rtdbTemplateRepository) shard(owner string) *rtdb.Ref {
	return r.client.NewRef(templatesCollection + "/" + SanitizeOwnerKey(owner))
}

func (r *rtdbTemplateRepository) Add(ctx context.Context, owner string, tpl models.Template) (string, error) {
	tpl.ID = ""
	ref, err := r.shard(owner).Push(ctx, tpl)
	if err != nil {
		return "", fmt.Errorf("%w: failed to add template: %v", ErrStoreWrite, err)
	}
	return ref.Key, nil
}

func (r *rtdbTemplateRepository) List(ctx context.Context, owner string) ([]models.Template, error) {
	var raw map[string]models.Template
	if err := r.shard(owner).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to list templates: %v", ErrStoreRead, err)
	}

	templates := make([]models.Template, 0, len(raw))
	for id, tpl := range raw {
		tpl.ID = id
		templates = append(templates, tpl)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })
	return templates, nil
}

// Update merges only content and subject; the name field is left untouched.
func (r *rtdbTemplateRepository) Update(ctx context.Context, owner, id, content, subject string) error {
	err := r.shard(owner).Child(id).Update(ctx, map[string]interface{}{
		"content": content,
		"subject": subject,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to update template %s: %v", ErrStoreWrite, id, err)
	}
	return nil
}

func (r *rtdbTemplateRepository) Delete(ctx context.Context, owner, id string) error {
	if err := r.shard(owner).Child(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: failed to delete template %s: %v", ErrStoreWrite, id, err)
	}
	return nil
}
