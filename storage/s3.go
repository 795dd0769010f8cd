package storage

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
)

// S3API is the subset of the S3 client the slot store needs.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3 keeps each slot as one JSON object at <prefix>/<key>.json.
type S3 struct {
	api    S3API
	bucket string
	prefix string
}

// NewS3 loads the default AWS credential chain for region.
func NewS3(ctx context.Context, bucket, prefix, region string) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS config for S3")
	}
	return NewS3WithAPI(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func NewS3WithAPI(api S3API, bucket, prefix string) *S3 {
	return &S3{api: api, bucket: bucket, prefix: prefix}
}

func (s *S3) objectKey(key string) string {
	return path.Join(s.prefix, key+".json")
}

func (s *S3) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	var noKey *s3types.NoSuchKey
	if errors.As(err, &noKey) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "s3 get %s", s.objectKey(key))
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, errors.Wrapf(err, "s3 read %s", s.objectKey(key))
	}
	return data, true, nil
}

func (s *S3) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.Wrapf(err, "s3 put %s", s.objectKey(key))
	}
	return nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return errors.Wrapf(err, "s3 delete %s", s.objectKey(key))
	}
	return nil
}

func (s *S3) Close() error { return nil }
