package publish

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmlbuilder/internal/errors"
	"github.com/vango-dev/htmlbuilder/pkg/render"
	"github.com/vango-dev/htmlbuilder/pkg/vdom"
)

// ContentType is sent with every published document.
const ContentType = "text/html; charset=utf-8"

// PutObjectAPI is the subset of the S3 client used by Publisher.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config configures a Publisher.
type Config struct {
	// Bucket is the destination bucket. Required.
	Bucket string

	// Prefix is prepended to every key.
	Prefix string

	// CacheControl is sent as the Cache-Control header when set.
	CacheControl string

	// Logger receives upload logs (default: slog.Default()).
	Logger *slog.Logger
}

// Result describes a completed upload.
type Result struct {
	Bucket string
	Key    string
	ETag   string
	Bytes  int
}

// Publisher uploads HTML documents to a bucket.
type Publisher struct {
	client PutObjectAPI
	config Config
	logger *slog.Logger
}

// New creates a publisher around client.
func New(client PutObjectAPI, config Config) (*Publisher, error) {
	if strings.TrimSpace(config.Bucket) == "" {
		return nil, errors.New(errors.CodePublishNoBucket).
			WithSuggestion("Pass --bucket or set publish.bucket in htmlbuilder.json")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		config: config,
		logger: logger.With("component", "publish", "bucket", config.Bucket),
	}, nil
}

// NewFromEnvironment creates a publisher with an S3 client configured from
// the default AWS credential chain. region overrides the environment when
// non-empty.
func NewFromEnvironment(ctx context.Context, config Config, region string) (*Publisher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New(errors.CodePublishUpload).
			WithDetail("could not load AWS configuration").
			Wrap(err)
	}
	return New(s3.NewFromConfig(cfg), config)
}

// Key returns the object key for name under the configured prefix.
func (p *Publisher) Key(name string) string {
	name = strings.TrimLeft(name, "/")
	if p.config.Prefix == "" {
		return name
	}
	return path.Join(p.config.Prefix, name)
}

// Publish uploads html under Key(name).
func (p *Publisher) Publish(ctx context.Context, name string, html []byte) (Result, error) {
	key := p.Key(name)
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(html),
		ContentType:   aws.String(ContentType),
		ContentLength: aws.Int64(int64(len(html))),
	}
	if p.config.CacheControl != "" {
		input.CacheControl = aws.String(p.config.CacheControl)
	}

	out, err := p.client.PutObject(ctx, input)
	if err != nil {
		p.logger.Error("upload failed", "key", key, "error", err)
		return Result{}, errors.New(errors.CodePublishUpload).
			WithDetailf("s3://%s/%s", p.config.Bucket, key).
			Wrap(err)
	}

	res := Result{Bucket: p.config.Bucket, Key: key, Bytes: len(html)}
	if out != nil {
		res.ETag = aws.ToString(out.ETag)
	}
	p.logger.Info("published", "key", key, "bytes", res.Bytes, "etag", res.ETag)
	return res, nil
}

// PublishElement renders root with r and uploads the result.
func (p *Publisher) PublishElement(ctx context.Context, name string, root *vdom.Element, r *render.Renderer) (Result, error) {
	var buf bytes.Buffer
	if err := r.RenderContext(ctx, &buf, root); err != nil {
		return Result{}, err
	}
	return p.Publish(ctx, name, buf.Bytes())
}
