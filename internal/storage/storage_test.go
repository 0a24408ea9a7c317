package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	now := time.Unix(1700000000, 42)

	name := ObjectName("../../etc/Screenshot.PNG", now)
	assert.True(t, strings.HasPrefix(name, "1700000000000000042-"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), name)
	assert.NotContains(t, name, "Screenshot")
	assert.NotContains(t, name, "/")

	assert.NotEqual(t, name, ObjectName("../../etc/Screenshot.PNG", now))

	noExt := ObjectName("README", now)
	assert.Equal(t, -1, strings.IndexByte(noExt, '.'))
}

func TestDiskStore_SaveAndRemove(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewDiskStore(root, "/uploads")
	require.NoError(t, err)

	path, err := store.Save("123-abc.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/123-abc.txt", path)

	data, err := os.ReadFile(filepath.Join(root, "123-abc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = store.Save("123-abc.txt", strings.NewReader("again"))
	assert.Error(t, err, "existing objects are never overwritten")

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(filepath.Join(root, "123-abc.txt"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(path), "removing a missing object is not an error")
}

func TestDiskStore_RejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Save("../escape.txt", strings.NewReader("x"))
	assert.Error(t, err)

	assert.ErrorIs(t, store.Remove("/uploads/../config.go"), ErrForeignPath)
	assert.ErrorIs(t, store.Remove("/static/a.txt"), ErrForeignPath)
}

type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_SaveAndRemove(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := newS3Store(fake, S3Options{Bucket: "journal", Endpoint: "http://localhost:9000/"})

	path, err := store.Save("1-ab.jpg", bytes.NewReader([]byte("img")))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/journal/uploads/1-ab.jpg", path)
	assert.Equal(t, []byte("img"), fake.objects["journal/uploads/1-ab.jpg"])

	require.NoError(t, store.Remove(path))
	assert.Empty(t, fake.objects)

	assert.ErrorIs(t, store.Remove("https://elsewhere.example/uploads/1-ab.jpg"), ErrForeignPath)
}

func TestS3Store_PublicURL(t *testing.T) {
	regional := newS3Store(&fakeS3{}, S3Options{Bucket: "journal", Region: "eu-west-1"})
	assert.Equal(t, "https://journal.s3.eu-west-1.amazonaws.com", regional.publicURL)

	cdn := newS3Store(&fakeS3{}, S3Options{Bucket: "journal", PublicURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com", cdn.publicURL)
}

func TestS3Store_SaveError(t *testing.T) {
	store := newS3Store(&fakeS3{putErr: errors.New("boom")}, S3Options{Bucket: "journal"})

	_, err := store.Save("x.txt", strings.NewReader("x"))
	assert.Error(t, err)
}
