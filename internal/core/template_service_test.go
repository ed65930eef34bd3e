package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults_NotIdempotent(t *testing.T) {
	t.Parallel()
	repo := newFakeTemplateRepo()
	svc := NewTemplateService(repo, zap.NewNop())
	ctx := context.Background()

	messages, err := svc.LoadDefaults(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, messages, 4)

	// Loading a second time duplicates the set; there is no dedup guard.
	_, err = svc.LoadDefaults(ctx, testOwner)
	require.NoError(t, err)

	templates, err := svc.ListTemplates(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, templates, 8, "two loads must yield eight records, not four")
}

func TestLoadDefaults_FixedSet(t *testing.T) {
	t.Parallel()
	repo := newFakeTemplateRepo()
	svc := NewTemplateService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.LoadDefaults(ctx, testOwner)
	require.NoError(t, err)

	templates, err := svc.ListTemplates(ctx, testOwner)
	require.NoError(t, err)

	names := make([]string, 0, len(templates))
	for _, tpl := range templates {
		require.NotEmpty(t, tpl.Content)
		require.NotEmpty(t, tpl.Subject)
		names = append(names, tpl.Name)
	}
	require.Equal(t, []string{
		"Basic Email Template",
		"HTML Email Template",
		"Email with Attachment",
		"Personalized Email Template",
	}, names)
}

func TestUpdateTemplate_NameImmutable(t *testing.T) {
	t.Parallel()
	repo := newFakeTemplateRepo()
	svc := NewTemplateService(repo, zap.NewNop())
	ctx := context.Background()

	id, err := svc.AddTemplate(ctx, testOwner, "Launch", "v1 body", "v1 subject")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTemplate(ctx, testOwner, id, "v2 body", "v2 subject"))

	templates, err := svc.ListTemplates(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Equal(t, "Launch", templates[0].Name, "edits never change the name")
	require.Equal(t, "v2 body", templates[0].Content)
	require.Equal(t, "v2 subject", templates[0].Subject)
}

func TestTemplateService_NotAuthenticated(t *testing.T) {
	t.Parallel()
	svc := NewTemplateService(newFakeTemplateRepo(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.AddTemplate(ctx, "", "n", "c", "s")
	require.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = svc.ListTemplates(ctx, "")
	require.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = svc.LoadDefaults(ctx, "")
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
