package mys3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"sync"
	"testing"

	"mysessions/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory bucket. err, when set, is returned by every call.
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string][]byte
	pageSize int
	err      error
	puts     []*s3.PutObjectInput
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte), pageSize: 1000}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = b
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var keys []string
	for k := range f.objects {
		if len(k) >= len(aws.ToString(in.Prefix)) && k[:len(aws.ToString(in.Prefix))] == aws.ToString(in.Prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := 0
	if in.ContinuationToken != nil {
		start, _ = strconv.Atoi(*in.ContinuationToken)
	}
	end := start + f.pageSize
	if end > len(keys) {
		end = len(keys)
	}
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(keys))}
	for _, k := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	if end < len(keys) {
		out.NextContinuationToken = aws.String(strconv.Itoa(end))
	}
	return out, nil
}

func TestNewSessionStore_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.mys3.session_store.go: s3 client is required", func() {
		NewSessionStore(nil, DefaultBucket, "")
	})
	assert.PanicsWithValue(t, "adapters.mys3.session_store.go: bucket is required", func() {
		NewSessionStore(newFakeS3(), "", "")
	})
}

func TestSessionStore_SaveLoadExistsDelete(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	store := NewSessionStore(fake, DefaultBucket, "")

	ok, err := store.Exists(ctx, "a1b2c3d4")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Load(ctx, "a1b2c3d4")
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))

	require.NoError(t, store.Save(ctx, "a1b2c3d4", []byte("PK\x03\x04")))
	require.Len(t, fake.puts, 1)
	assert.Equal(t, DefaultBucket, aws.ToString(fake.puts[0].Bucket))
	assert.Equal(t, "whatsapp-sessions/a1b2c3d4/RemoteAuth-a1b2c3d4.zip", aws.ToString(fake.puts[0].Key))

	ok, err = store.Exists(ctx, "a1b2c3d4")
	require.NoError(t, err)
	assert.True(t, ok)

	blob, err := store.Load(ctx, "a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04"), blob)

	require.NoError(t, store.Delete(ctx, "a1b2c3d4"))
	require.NoError(t, store.Delete(ctx, "a1b2c3d4"))
	ok, err = store.Exists(ctx, "a1b2c3d4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_List(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	fake.pageSize = 2
	store := NewSessionStore(fake, DefaultBucket, "prod")

	t.Run("empty bucket", func(t *testing.T) {
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("follows pagination and ignores foreign keys", func(t *testing.T) {
		for _, id := range []string{"a1b2c3d4", "e5f6a7b8", "0badcafe"} {
			require.NoError(t, store.Save(ctx, id, []byte(id)))
		}
		fake.objects["prod/whatsapp-sessions/a1b2c3d4/other.json"] = []byte("{}")
		fake.objects["whatsapp-sessions/ffffffff/RemoteAuth-ffffffff.zip"] = []byte("x")

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a1b2c3d4", "e5f6a7b8", "0badcafe"}, ids)
	})
}

func TestSessionStore_BackendErrors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	fake.err = errors.New("connection refused")
	store := NewSessionStore(fake, DefaultBucket, "")

	err := store.Save(ctx, "a1b2c3d4", []byte("x"))
	assert.True(t, service.IsStoreUnavailableError(err))

	_, err = store.Load(ctx, "a1b2c3d4")
	assert.True(t, service.IsStoreUnavailableError(err))

	_, err = store.Exists(ctx, "a1b2c3d4")
	assert.True(t, service.IsStoreUnavailableError(err))

	err = store.Delete(ctx, "a1b2c3d4")
	assert.True(t, service.IsStoreUnavailableError(err))

	_, err = store.List(ctx)
	assert.True(t, service.IsStoreUnavailableError(err))
}
