package aws

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/calmliming/menuflow/internal/orders"
)

// Metrics records order counters in CloudWatch.
type Metrics struct {
	CloudWatch CloudWatchAPI
	Namespace  string
}

func NewMetrics(client CloudWatchAPI, namespace string) *Metrics {
	return &Metrics{CloudWatch: client, Namespace: namespace}
}

// OrderPlaced puts OrdersPlaced (count) and OrderRevenue (order total).
func (m *Metrics) OrderPlaced(ctx context.Context, ev orders.PlacedEvent) error {
	ts := ev.CreatedAt
	_, err := m.CloudWatch.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(m.Namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String("OrdersPlaced"),
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(1),
				Timestamp:  &ts,
			},
			{
				MetricName: sdkaws.String("OrderRevenue"),
				Unit:       cwtypes.StandardUnitNone,
				Value:      sdkaws.Float64(ev.TotalPrice),
				Timestamp:  &ts,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("put metric data (%s): %w", errorCode(err), err)
	}
	return nil
}
