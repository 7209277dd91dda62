package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"

	"github.com/calmliming/menuflow/internal/orders"
)

// EventOrderPlaced is the event_type attribute of order messages.
const EventOrderPlaced = "order.placed"

// Publisher wraps an SQS client and a queue URL.
type Publisher struct {
	SQS      SQSAPI
	QueueURL string
}

// NewPublisher returns a Publisher bound to a queue URL.
func NewPublisher(sqsClient SQSAPI, queueURL string) *Publisher {
	return &Publisher{
		SQS:      sqsClient,
		QueueURL: queueURL,
	}
}

// OrderPlaced sends ev as a JSON message so the worker can pick it up.
func (p *Publisher) OrderPlaced(ctx context.Context, ev orders.PlacedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	attrs := map[string]string{
		"event_type": EventOrderPlaced,
		"order_id":   ev.OrderID,
	}
	if ev.RequestID != "" {
		attrs["request_id"] = ev.RequestID
	}
	return p.SendOrderMessage(ctx, string(body), attrs)
}

// SendOrderMessage sends a message to the queue with string attributes.
func (p *Publisher) SendOrderMessage(ctx context.Context, messageBody string, attributes map[string]string) error {
	input := &sqs.SendMessageInput{
		QueueUrl:    &p.QueueURL,
		MessageBody: &messageBody,
	}
	if len(attributes) > 0 {
		msgAttrs := map[string]sqstypes.MessageAttributeValue{}
		for k, v := range attributes {
			msgAttrs[k] = sqstypes.MessageAttributeValue{
				DataType:    awsString("String"),
				StringValue: awsString(v),
			}
		}
		input.MessageAttributes = msgAttrs
	}

	_, err := p.SQS.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("send message (%s): %w", errorCode(err), err)
	}
	return nil
}

// errorCode returns the AWS API error code of err, or "unknown".
func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "unknown"
}

func awsString(s string) *string { return &s }
