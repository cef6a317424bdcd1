// Package minio provides object streams over MinIO and other S3-compatible
// stores.
//
// Objects are read through an ObjectReader, a seekable input stream, and
// written through an ObjectWriter, an output stream that uploads as it is
// written and completes the upload on Close. Objects cannot be opened for
// reading and writing at once.
package minio

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds object store configuration.
type Config struct {
	// Endpoint is the server address (e.g., "localhost:9000")
	Endpoint string

	// Bucket is the bucket holding the objects
	Bucket string

	// AccessKey is the access key ID for authentication
	AccessKey string

	// SecretKey is the secret access key for authentication
	SecretKey string

	// UseSSL enables HTTPS connections
	UseSSL bool

	// Client is an optional pre-configured client.
	// If provided, Endpoint/AccessKey/SecretKey are ignored
	Client *minio.Client

	// PartSize is the multipart upload part size in bytes.
	// Zero lets the SDK choose.
	PartSize uint64
}

// validate checks if the configuration is valid.
// Either Client OR (Endpoint + AccessKey + SecretKey) must be provided.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}

	if c.Client != nil {
		return nil
	}

	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return fmt.Errorf("access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required when client is not provided")
	}

	return nil
}

// Store opens object streams in one bucket.
type Store struct {
	client   *minio.Client
	bucket   string
	partSize uint64
}

// New creates a Store from cfg.
func New(cfg Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}
	}

	return &Store{
		client:   client,
		bucket:   cfg.Bucket,
		partSize: cfg.PartSize,
	}, nil
}

// Bucket returns the bucket name.
func (s *Store) Bucket() string {
	return s.bucket
}
