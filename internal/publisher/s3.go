package publisher

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

// objectPutter is the narrow slice of the S3 client we use, so tests can fake it
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type implS3 struct {
	client objectPutter
	bucket string
	prefix string
	logger logger.Logger
}

// New returns an S3 Publisher, or nil when no bucket is configured.
// Credentials come from the standard AWS chain.
func New(ctx context.Context, cfg config.S3Config, log logger.Logger) (Publisher, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return newS3(client, bucket, cfg.Prefix, log), nil
}

func newS3(client objectPutter, bucket, prefix string, log logger.Logger) *implS3 {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	return &implS3{client: client, bucket: bucket, prefix: prefix, logger: log}
}

// Publish uploads the clip under <prefix>/<file name>
func (p *implS3) Publish(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	key := p.objectKey(filePath)
	p.logger.Info(ctx, "Uploading %s to s3://%s/%s", filePath, p.bucket, key)

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("video/mp4"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return fmt.Sprintf("s3://%s/%s", p.bucket, key), nil
}

func (p *implS3) objectKey(filePath string) string {
	name := filepath.Base(filePath)
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}
