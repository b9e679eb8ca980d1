package storage

import (
	"context"
	"errors"
	"os"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// firebaseClient deletes legacy images from the Firebase Storage bucket,
// which is a GCS bucket underneath.
type firebaseClient struct {
	client *gcs.Client
	bucket string
}

func newFirebaseClient(ctx context.Context) (*firebaseClient, error) {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	bucket := os.Getenv("FIREBASE_STORAGE_BUCKET")
	if credsJSON == "" || bucket == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON and FIREBASE_STORAGE_BUCKET must be set")
	}

	client, err := gcs.NewClient(ctx, option.WithCredentialsJSON([]byte(credsJSON)))
	if err != nil {
		return nil, err
	}
	return &firebaseClient{client: client, bucket: bucket}, nil
}

func (f *firebaseClient) delete(ctx context.Context, bucket, object string) error {
	if bucket == "" {
		bucket = f.bucket
	}
	err := f.client.Bucket(bucket).Object(object).Delete(ctx)
	if err == gcs.ErrObjectNotExist {
		return nil
	}
	return err
}
