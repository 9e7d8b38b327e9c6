package sqs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	DefaultMaxMessages = 1000

	receiveBatchSize   = 10
	receiveWaitSeconds = 1
)

//go:generate mockgen -destination=mock/sqs_client_mock.go -package sqsMock github.com/tanasatit/ci-demo/source/sqs SqsClient
type SqsClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type Config struct {
	Queues      []string `yaml:"queues"`
	MaxMessages int      `yaml:"max_messages"`
}

// Source drains messages from SQS queues, one number per message body.
type Source struct {
	queueURLs   []string
	maxMessages int
	client      SqsClient
	logger      *zap.Logger
}

var ErrNoQueueSpecified = errors.New("no queues provided")

func New(ctx context.Context, config *Config, logger *zap.Logger) (*Source, error) {
	if len(config.Queues) == 0 {
		return &Source{}, ErrNoQueueSpecified
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return &Source{}, err
	}

	return newWithClient(ctx, config, sqs.NewFromConfig(awsCfg), logger)
}

func newWithClient(ctx context.Context, config *Config, client SqsClient, logger *zap.Logger) (*Source, error) {
	if len(config.Queues) == 0 {
		return &Source{}, ErrNoQueueSpecified
	}

	var queueURLs []string

	for _, queue := range config.Queues {
		res, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queue)})
		if err != nil {
			return &Source{}, err
		}

		queueURLs = append(queueURLs, *res.QueueUrl)
	}

	maxMessages := config.MaxMessages
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}

	return &Source{
		queueURLs:   queueURLs,
		maxMessages: maxMessages,
		client:      client,
		logger:      logger,
	}, nil
}

func (s *Source) Kind() string {
	return "sqs"
}

type consumedMessage struct {
	queueURL      string
	receiptHandle *string
}

// Values drains the queues and deletes the consumed messages only once every
// body has parsed. On any error nothing is deleted, so received messages
// reappear after their visibility timeout.
func (s *Source) Values(ctx context.Context) ([]float64, error) {
	var (
		values   []float64
		consumed []consumedMessage
	)

	for _, queueURL := range s.queueURLs {
		for len(values) < s.maxMessages {
			output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            aws.String(queueURL),
				MaxNumberOfMessages: int32(min(receiveBatchSize, s.maxMessages-len(values))),
				WaitTimeSeconds:     receiveWaitSeconds,
			})

			if err != nil {
				return nil, err
			}

			if len(output.Messages) == 0 {
				break
			}

			for _, msg := range output.Messages {
				v, err := cast.ToFloat64E(aws.ToString(msg.Body))
				if err != nil {
					return nil, fmt.Errorf("message %v holds non numeric body: %w", aws.ToString(msg.MessageId), err)
				}

				values = append(values, v)
				consumed = append(consumed, consumedMessage{queueURL: queueURL, receiptHandle: msg.ReceiptHandle})
			}
		}

		s.logger.Debug("drained SQS queue", zap.String("queue_url", queueURL), zap.Int("collected", len(values)))
	}

	for _, msg := range consumed {
		_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(msg.queueURL),
			ReceiptHandle: msg.receiptHandle,
		})

		// The value is already collected; the message will be redelivered.
		if err != nil {
			s.logger.Warn("failed to delete consumed SQS message", zap.String("queue_url", msg.queueURL), zap.Error(err))
		}
	}

	return values, nil
}
