// Package firestore implements the persistence layer on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"wellness/config"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names shared with the mobile app's backend data.
const (
	usersCollection       = "users"
	userEmailsCollection  = "user_emails"
	moodEntriesCollection = "mood_entries"
	blacklistCollection   = "blacklisted_tokens"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firebase app and returns its Firestore client, closed on fx stop.
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase config is missing")
	}

	client, err := NewClient(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

// NewClient builds a Firestore client outside of fx, for the operator CLI.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

func storageError(err error, details string) error {
	return domainerrors.NewDatabaseExecuteError(err, details)
}

// deleteBatchSize matches the Firestore per-request write limit.
const deleteBatchSize = 500

// bulkDelete removes the documents through a BulkWriter and counts the deletes that
// succeeded. The first failure is returned after every job has settled.
func bulkDelete(ctx context.Context, client *firestore.Client, snaps []*firestore.DocumentSnapshot) (int, error) {
	if len(snaps) == 0 {
		return 0, nil
	}

	writer := client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(snaps))
	for _, snap := range snaps {
		job, err := writer.Delete(snap.Ref)
		if err != nil {
			writer.End()

			return 0, errors.Wrap(err, "enqueue delete")
		}
		jobs = append(jobs, job)
	}
	writer.End()

	deleted := 0
	var firstErr error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		deleted++
	}

	return deleted, firstErr
}

// deleteCollection empties a collection in batches of deleteBatchSize.
func deleteCollection(ctx context.Context, client *firestore.Client, collection string) (int, error) {
	total := 0
	for {
		snaps, err := client.Collection(collection).Limit(deleteBatchSize).Documents(ctx).GetAll()
		if err != nil {
			return total, errors.Wrapf(err, "list %s", collection)
		}

		deleted, err := bulkDelete(ctx, client, snaps)
		total += deleted
		if err != nil {
			return total, err
		}
		if len(snaps) < deleteBatchSize {
			return total, nil
		}
	}
}
