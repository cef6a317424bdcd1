package minio

import (
	"fmt"
	"io/fs"

	"github.com/minio/minio-go/v7"
)

// translate converts store errors to io/fs errors where one applies.
func translate(err error) error {
	if err == nil {
		return nil
	}

	errResp := minio.ToErrorResponse(err)

	switch errResp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	}

	return fmt.Errorf("minio: %w", err)
}

// pathError wraps err in a fs.PathError for the given operation and key.
func pathError(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: key, Err: err}
}
