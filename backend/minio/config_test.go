package minio

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing bucket",
			cfg:     Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "bucket is required",
		},
		{
			name:    "missing endpoint",
			cfg:     Config{Bucket: "b", AccessKey: "a", SecretKey: "s"},
			wantErr: "endpoint is required",
		},
		{
			name:    "missing access key",
			cfg:     Config{Bucket: "b", Endpoint: "localhost:9000", SecretKey: "s"},
			wantErr: "access key is required",
		},
		{
			name:    "missing secret key",
			cfg:     Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a"},
			wantErr: "secret key is required",
		},
		{
			name: "credentials",
			cfg:  Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
		},
		{
			name: "client",
			cfg:  Config{Bucket: "b", Client: &minio.Client{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew(t *testing.T) {
	s, err := New(Config{
		Endpoint:  "localhost:9000",
		Bucket:    "streams",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		PartSize:  5 << 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "streams", s.Bucket())
	assert.Equal(t, uint64(5<<20), s.partSize)

	_, err = New(Config{})
	assert.ErrorContains(t, err, "invalid config")
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))

	notFound := minio.ErrorResponse{Code: "NoSuchKey"}
	assert.ErrorIs(t, translate(notFound), fs.ErrNotExist)

	denied := minio.ErrorResponse{Code: "AccessDenied"}
	assert.ErrorIs(t, translate(denied), fs.ErrPermission)

	other := errors.New("connection refused")
	err := translate(other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "minio:")
}

func TestWriteOptions(t *testing.T) {
	var opts minio.PutObjectOptions
	for _, opt := range []WriteOption{
		WithContentType("text/plain"),
		WithPartSize(8 << 20),
		WithMetadata(map[string]string{"origin": "test"}),
	} {
		opt(&opts)
	}

	assert.Equal(t, "text/plain", opts.ContentType)
	assert.Equal(t, uint64(8<<20), opts.PartSize)
	assert.Equal(t, "test", opts.UserMetadata["origin"])
}
