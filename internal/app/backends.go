package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/queue"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func newSnapshotBackend(ctx context.Context, cfg config.Snapshots) (snapshot.Backend, error) {
	switch cfg.Backend {
	case config.SnapshotBackendFile:
		return snapshot.NewFileBackend(cfg.BaseDir), nil
	case config.SnapshotBackendS3:
		awsCfg, err := loadAWSConfig(ctx, cfg.Region)
		if err != nil {
			return nil, err
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
				o.UsePathStyle = true
			}
		})
		return snapshot.NewS3Backend(client, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Backend)
	}
}

func newQueue(ctx context.Context, cfg config.Queue, pollers int, log *logger.Logger) (queue.Queue, error) {
	switch cfg.Backend {
	case config.QueueBackendLocal:
		q, err := queue.NewLocalQueue(cfg.LocalPath, cfg.Lanes, log)
		if err != nil {
			return nil, err
		}
		return q, nil
	case config.QueueBackendSQS:
		awsCfg, err := loadAWSConfig(ctx, cfg.Region)
		if err != nil {
			return nil, err
		}
		return queue.NewSQSQueue(sqs.NewFromConfig(awsCfg), cfg.SQSURL, cfg.SQSDeadLetterURL, pollers), nil
	default:
		return nil, fmt.Errorf("unknown queue backend %q", cfg.Backend)
	}
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}
