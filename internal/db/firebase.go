package db

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	rtdb "firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/example/cmail/internal/config"
)

// Clients bundles the Firebase Admin SDK clients the application needs:
// Auth for ID-token verification and the Realtime Database for the per-user
// contact/template/delivery-log shards.
type Clients struct {
	Auth     *auth.Client
	Database *rtdb.Client
}

// InitFirebase initializes the Firebase Admin SDK from the application
// configuration and returns the Auth and Realtime Database clients.
// Credentials come from a service-account file path or a base64-encoded
// service-account JSON blob, in that order of preference.
func InitFirebase(ctx context.Context, cfg *config.Config) (*Clients, error) {
	if cfg == nil {
		return nil, errors.New("InitFirebase: cfg cannot be nil")
	}

	var opt option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		opt = option.WithCredentialsFile(cfg.GoogleApplicationCredentials)
	} else if cfg.FirebaseServiceAccountJSONBase64 != "" {
		jsonKey, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, errors.New("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is not a valid base64 string")
		}
		opt = option.WithCredentialsJSON(jsonKey)
	} else {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 must be set")
	}

	conf := &firebase.Config{
		ProjectID:   cfg.FirebaseProjectID,
		DatabaseURL: cfg.FirebaseDatabaseURL,
	}

	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Database: %w", err)
	}

	return &Clients{Auth: authClient, Database: dbClient}, nil
}
