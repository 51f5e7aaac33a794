package metrics

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"

	"github.com/chitsa/order-service/internal/aws"
	"github.com/chitsa/order-service/internal/logger"
)

// Emitter publishes operation counters to CloudWatch. Emission is
// best-effort: a metrics failure never fails the request. A nil Emitter is
// a no-op so tests can skip wiring it.
type Emitter struct {
	client    aws.CloudWatchAPI
	namespace string
}

func NewEmitter(client aws.CloudWatchAPI, namespace string) *Emitter {
	return &Emitter{client: client, namespace: namespace}
}

func (e *Emitter) OrderCreated(ctx context.Context)   { e.count(ctx, "OrdersCreated") }
func (e *Emitter) OrderDeleted(ctx context.Context)   { e.count(ctx, "OrdersDeleted") }
func (e *Emitter) UserRegistered(ctx context.Context) { e.count(ctx, "UsersRegistered") }

func (e *Emitter) count(ctx context.Context, name string) {
	if e == nil || e.client == nil {
		return
	}
	one := 1.0
	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &e.namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &name,
				Value:      &one,
				Unit:       cwtypes.StandardUnitCount,
			},
		},
	})
	if err != nil {
		logger.L().Warn("put metric data failed", zap.String("metric", name), zap.Error(err))
	}
}
