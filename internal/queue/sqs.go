package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"golang.org/x/sync/errgroup"
)

const (
	groupKeyAttribute = "group_key"
	receiveBatch      = 10
	receiveWait       = 20
	receiveBackoff    = time.Second
)

// SQSAPI is the subset of the SQS client the queue uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SQSQueue sends to an SQS FIFO queue. The message group id is derived from
// the group key, so SQS hands out one group's messages strictly in order.
// Failed messages go to the dead letter queue when one is configured and
// are otherwise left to the queue's redrive policy.
type SQSQueue struct {
	client        SQSAPI
	url           string
	deadLetterURL string
	pollers       int
}

func NewSQSQueue(client SQSAPI, url, deadLetterURL string, pollers int) *SQSQueue {
	if pollers < 1 {
		pollers = 1
	}
	return &SQSQueue{client: client, url: url, deadLetterURL: deadLetterURL, pollers: pollers}
}

func (q *SQSQueue) Send(ctx context.Context, groupKey string, body []byte) error {
	if err := q.send(ctx, q.url, groupKey, body); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "SQSQueue.Send").
			Str("group", groupKey).
			Msg("failed to send message")
		return err
	}
	return nil
}

func (q *SQSQueue) send(ctx context.Context, url, groupKey string, body []byte) error {
	_, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(url),
		MessageBody: aws.String(string(body)),
		// group ids are limited to 128 characters
		MessageGroupId:         aws.String(utils.ContentHash([]byte(groupKey))),
		MessageDeduplicationId: aws.String(utils.ContentHash(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			groupKeyAttribute: {DataType: aws.String("String"), StringValue: aws.String(groupKey)},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: send to %s: %w", ErrTransport, url, err)
	}
	return nil
}

// Consume long-polls the queue with the configured number of pollers until
// ctx ends. Messages of one receive batch are handled in order.
func (q *SQSQueue) Consume(ctx context.Context, h Handler) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < q.pollers; i++ {
		g.Go(func() error {
			q.poll(ctx, h)
			return nil
		})
	}
	return g.Wait()
}

func (q *SQSQueue) poll(ctx context.Context, h Handler) {
	log := logger.FromContext(ctx)

	for ctx.Err() == nil {
		out, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:              aws.String(q.url),
			MaxNumberOfMessages:   receiveBatch,
			WaitTimeSeconds:       receiveWait,
			MessageAttributeNames: []string{groupKeyAttribute},
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Err(err).Str("func", "SQSQueue.poll").Msg("failed to receive messages")
			select {
			case <-ctx.Done():
				return
			case <-time.After(receiveBackoff):
			}
			continue
		}

		for _, m := range out.Messages {
			if ctx.Err() != nil {
				return
			}
			q.handle(ctx, h, m)
		}
	}
}

func (q *SQSQueue) handle(ctx context.Context, h Handler, m types.Message) {
	log := logger.FromContext(ctx)

	msg := Message{
		ID:   aws.ToString(m.MessageId),
		Body: []byte(aws.ToString(m.Body)),
	}
	if attr, ok := m.MessageAttributes[groupKeyAttribute]; ok {
		msg.GroupKey = aws.ToString(attr.StringValue)
	}

	handleErr := h(ctx, msg)
	if handleErr != nil && ctx.Err() != nil {
		// becomes visible again after the visibility timeout
		return
	}
	if handleErr != nil {
		log.Error().Err(handleErr).
			Str("func", "SQSQueue.handle").
			Str("message_id", msg.ID).
			Str("group", msg.GroupKey).
			RawJSON("payload", rawOrQuoted(msg.Body)).
			Msg("message failed")

		if q.deadLetterURL == "" {
			return
		}
		if err := q.send(ctx, q.deadLetterURL, msg.GroupKey, msg.Body); err != nil {
			log.Err(err).
				Str("func", "SQSQueue.handle").
				Str("message_id", msg.ID).
				Msg("failed to park message, leaving it for redrive")
			return
		}
	}

	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.url),
		ReceiptHandle: m.ReceiptHandle,
	})
	if err != nil {
		log.Err(err).
			Str("func", "SQSQueue.handle").
			Str("message_id", msg.ID).
			Msg("failed to delete handled message")
	}
}

func (q *SQSQueue) Close() error {
	return nil
}
