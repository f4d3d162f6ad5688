package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectGetter is the subset of *s3.Client used to fetch assets.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source serves assets stored in Amazon S3 (or compatible APIs) under a key prefix.
type S3Source struct {
	client ObjectGetter
	bucket string
	prefix string
}

func NewS3Source(client ObjectGetter, bucket, prefix string) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *S3Source) Open(ctx context.Context, name string) (*Asset, error) {
	if s.bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) || name == "." {
		return nil, ErrAssetNotFound
	}

	key := name
	if s.prefix != "" {
		key = path.Join(s.prefix, name)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}

	asset := &Asset{
		Body:         out.Body,
		ContentType:  aws.ToString(out.ContentType),
		Size:         aws.ToInt64(out.ContentLength),
		LastModified: out.LastModified,
	}
	if asset.ContentType == "" || asset.ContentType == "binary/octet-stream" {
		asset.ContentType = contentTypeFor(name)
	}
	return asset, nil
}
