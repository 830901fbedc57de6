package mys3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"mysessions/helpers"
	"mysessions/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// DefaultBucket is the bucket session blobs are stored in unless configured otherwise.
const DefaultBucket = "ws-api-sessions"

// S3API is the subset of *s3.Client used by the session store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type sessionStore struct {
	client S3API
	bucket string
	root   string
}

// NewSessionStore creates an S3 implementation of interfaces.SessionStore. root may be empty.
// The store does not retry; backend errors surface as store_unavailable.
// Panics on nil client or empty bucket.
func NewSessionStore(client S3API, bucket string, root string) *sessionStore {
	return &sessionStore{
		client: helpers.NilPanic(client, "adapters.mys3.session_store.go: s3 client is required"),
		bucket: helpers.StrPanic(bucket, "adapters.mys3.session_store.go: bucket is required"),
		root:   root,
	}
}

func (s *sessionStore) Save(ctx context.Context, instanceID string, blob []byte) error {
	key := StorageKey(s.root, instanceID)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(blob),
		ContentLength: aws.Int64(int64(len(blob))),
		ContentType:   aws.String("application/zip"),
	})
	if err != nil {
		return service.NewStoreUnavailableError("Failed to save session", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err))
	}
	return nil
}

func (s *sessionStore) Load(ctx context.Context, instanceID string) ([]byte, error) {
	key := StorageKey(s.root, instanceID)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, service.NewEntityNotFoundError("Session for instance "+instanceID+" does not exist.", err)
		}
		return nil, service.NewStoreUnavailableError("Failed to load session", fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err))
	}
	defer out.Body.Close()

	blob, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, service.NewStoreUnavailableError("Failed to read session", fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, err))
	}
	return blob, nil
}

func (s *sessionStore) Exists(ctx context.Context, instanceID string) (bool, error) {
	key := StorageKey(s.root, instanceID)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, service.NewStoreUnavailableError("Failed to check session", fmt.Errorf("head s3://%s/%s: %w", s.bucket, key, err))
	}
	return true, nil
}

// Delete removes the blob. Deleting a missing blob succeeds.
func (s *sessionStore) Delete(ctx context.Context, instanceID string) error {
	key := StorageKey(s.root, instanceID)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		return service.NewStoreUnavailableError("Failed to delete session", fmt.Errorf("delete s3://%s/%s: %w", s.bucket, key, err))
	}
	return nil
}

// List returns the ids of all stored sessions, following pagination. Keys that do not
// match the session layout are ignored.
func (s *sessionStore) List(ctx context.Context) ([]string, error) {
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(ListPrefix(s.root)),
	})

	ids := []string{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, service.NewStoreUnavailableError("Failed to list sessions", fmt.Errorf("list s3://%s/%s: %w", s.bucket, ListPrefix(s.root), err))
		}
		for _, obj := range page.Contents {
			if id, ok := ExtractInstanceID(s.root, aws.ToString(obj.Key)); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &notFound)
}
