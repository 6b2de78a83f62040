package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type queueMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// SQSPublisher pushes JSON messages onto the processing queue.
type SQSPublisher struct {
	client   *sqs.Client
	queueURL string
}

func NewSQSPublisher(client *sqs.Client, queueURL string) *SQSPublisher {
	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
	}
}

func (p *SQSPublisher) Publish(ctx context.Context, messageType string, data any) error {
	body, err := json.Marshal(queueMessage{Type: messageType, Data: data})
	if err != nil {
		return fmt.Errorf("failed to serialize queue message: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
