package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/cmail/internal/db"
	"github.com/example/cmail/internal/models"
)

// templateService implements TemplateService over the per-owner template shard.
type templateService struct {
	templates db.TemplateRepository
	log       *zap.Logger
}

// NewTemplateService creates a TemplateService.
func NewTemplateService(templates db.TemplateRepository, logger *zap.Logger) TemplateService {
	return &templateService{templates: templates, log: logger}
}

func (s *templateService) AddTemplate(ctx context.Context, owner, name, content, subject string) (string, error) {
	if owner == "" {
		return "", ErrNotAuthenticated
	}
	id, err := s.templates.Add(ctx, owner, models.Template{Name: name, Content: content, Subject: subject})
	if err != nil {
		return "", err
	}
	s.log.Info("template added", zap.String("template_id", id), zap.String("name", name))
	return id, nil
}

func (s *templateService) ListTemplates(ctx context.Context, owner string) ([]models.Template, error) {
	if owner == "" {
		return nil, ErrNotAuthenticated
	}
	return s.templates.List(ctx, owner)
}

// UpdateTemplate replaces content and subject. The name is immutable after
// creation.
func (s *templateService) UpdateTemplate(ctx context.Context, owner, id, content, subject string) error {
	if owner == "" {
		return ErrNotAuthenticated
	}
	return s.templates.Update(ctx, owner, id, content, subject)
}

func (s *templateService) DeleteTemplate(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrNotAuthenticated
	}
	return s.templates.Delete(ctx, owner, id)
}

// LoadDefaults inserts the fixed seed set and returns one confirmation
// message per template. There is no idempotence guard: loading twice
// duplicates every template, which is the long-standing behavior users see.
func (s *templateService) LoadDefaults(ctx context.Context, owner string) ([]string, error) {
	if owner == "" {
		return nil, ErrNotAuthenticated
	}

	messages := make([]string, 0, len(defaultTemplates))
	for _, tpl := range defaultTemplates {
		if _, err := s.templates.Add(ctx, owner, tpl); err != nil {
			return messages, fmt.Errorf("failed to load default template %q: %w", tpl.Name, err)
		}
		messages = append(messages, fmt.Sprintf("%q template added successfully", tpl.Name))
	}
	s.log.Info("default templates loaded", zap.Int("count", len(messages)))
	return messages, nil
}
