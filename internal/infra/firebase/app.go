// Package firebase bootstraps the Firebase Admin SDK clients shared by the services.
package firebase

import (
	"context"
	"log/slog"

	"reminder/config"
	"reminder/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrMissingConfig is returned when the firebase section is absent.
var ErrMissingConfig = errors.New("firebase config is required")

// AppParams defines the parameters required for the Firebase app
type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. Without a credentials path Application Default Credentials are used.
func NewApp(params AppParams) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, ErrMissingConfig
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("application_default_credentials", cfg.CredentialsPath == ""),
	)

	return app, nil
}

// ClientParams defines the parameters required for Firebase service clients
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewFirestoreClient creates the Firestore client and closes it on shutdown
func NewFirestoreClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.Wrap(client.Close(), "close Firestore client")
		},
	})

	return client, nil
}

// NewMessagingClient creates the FCM client
func NewMessagingClient(params ClientParams) (*messaging.Client, error) {
	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// NewAuthClient creates the Firebase Auth client
func NewAuthClient(params ClientParams) (*auth.Client, error) {
	client, err := params.App.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}
