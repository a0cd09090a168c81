package storage

import (
	"bytes"
	"context"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

const (
	FilebaseEndpoint = "https://s3.filebase.com"
	filebaseRegion   = "us-east-1"
	cidMetadataKey   = "cid"
)

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// FilebaseStore pins objects through Filebase's S3-compatible API. Filebase publishes
// the IPFS CID of a stored object as the "cid" user metadata entry.
type FilebaseStore struct {
	client s3API
	bucket string
}

type FilebaseConfig struct {
	Key      string
	Secret   string
	Bucket   string
	Endpoint string // defaults to FilebaseEndpoint
}

func NewFilebaseStore(cfg FilebaseConfig) (*FilebaseStore, error) {
	if cfg.Key == "" || cfg.Secret == "" {
		return nil, errors.New("filebase credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("filebase bucket is required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = FilebaseEndpoint
	}
	client := s3.New(s3.Options{
		Region:                     filebaseRegion,
		Credentials:                credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		BaseEndpoint:               aws.String(endpoint),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})
	return &FilebaseStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *FilebaseStore) Put(ctx context.Context, key string, body []byte, attrs map[string]string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType(key, body)),
		Metadata:    attrs,
	})
	if err != nil {
		return "", errors.Wrapf(err, "put object %s/%s", s.bucket, key)
	}

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", errors.Wrapf(err, "head object %s/%s", s.bucket, key)
	}
	return head.Metadata[cidMetadataKey], nil
}

func contentType(key string, body []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return http.DetectContentType(body)
}
