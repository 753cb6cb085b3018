package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"hunt-server/internal/observability"
	"hunt-server/internal/retry"

	kafkago "github.com/segmentio/kafka-go"
)

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	Brokers       []string
	ConsumerGroup string
	Topic         string

	// NumWorkers is the number of shards. Messages with the same key always land
	// on the same shard, so events about one aggregate are processed in order.
	NumWorkers int

	// QueueSize is the buffer size of each shard.
	QueueSize int

	// DrainTimeout is the maximum time to wait for in-flight events during shutdown.
	DrainTimeout time.Duration

	// RetryAttempts bounds how often a failing event is processed before the
	// consumer gives up and stops with an error. The event stays uncommitted.
	RetryAttempts    uint64
	RetryInterval    time.Duration
	RetryMaxInterval time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:       brokers,
		ConsumerGroup: consumerGroup,
		Topic:         topic,
		NumWorkers:    4,
		QueueSize:     64,
		DrainTimeout:  30 * time.Second,

		RetryAttempts:    8,
		RetryInterval:    200 * time.Millisecond,
		RetryMaxInterval: 10 * time.Second,
	}
}

// messageReader is the subset of *kafkago.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type eventWithMsg struct {
	event EventMessage
	msg   kafkago.Message
}

type consumer struct {
	config    ConsumerConfig
	reader    messageReader
	processor EventProcessor
	logger    *observability.Logger

	shards  []chan eventWithMsg
	offsets *offsetTracker

	failures chan error

	cancelFetch context.CancelFunc
	doneCh      chan struct{}
	stopping    atomic.Bool
	stopOnce    sync.Once
}

// NewConsumer creates a new Kafka event consumer.
func NewConsumer(config ConsumerConfig, processor EventProcessor, logger *observability.Logger) EventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        500 * time.Millisecond,
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0,
	})
	return newConsumer(config, reader, processor, logger)
}

func newConsumer(config ConsumerConfig, reader messageReader, processor EventProcessor, logger *observability.Logger) *consumer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = 4
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 64
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = 30 * time.Second
	}
	if config.RetryAttempts == 0 {
		config.RetryAttempts = 8
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = 200 * time.Millisecond
	}
	if config.RetryMaxInterval <= 0 {
		config.RetryMaxInterval = 10 * time.Second
	}

	shards := make([]chan eventWithMsg, config.NumWorkers)
	for i := range shards {
		shards[i] = make(chan eventWithMsg, config.QueueSize)
	}

	return &consumer{
		config:    config,
		reader:    reader,
		processor: processor,
		logger:    logger,
		shards:    shards,
		offsets:   newOffsetTracker(reader),
		failures:  make(chan error, 1),
		doneCh:    make(chan struct{}),
	}
}

// Start begins consuming events and blocks until Stop is called or ctx is done.
// It returns an error when an event exhausts its retries; that event and every
// later one on its partition are left uncommitted for redelivery.
func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	ctx, cancel := context.WithCancel(ctx)
	c.cancelFetch = cancel
	defer cancel()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)
	c.logger.Info(ctx, fmt.Sprintf("starting consumer for %s with %d shards", c.processor.Name(), len(c.shards)))

	var workerWg sync.WaitGroup
	for i, shard := range c.shards {
		workerWg.Add(1)
		go c.worker(ctx, &workerWg, i, shard)
	}

	c.fetchLoop(ctx)

	for _, shard := range c.shards {
		close(shard)
	}

	done := make(chan struct{})
	go func() {
		workerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info(ctx, "all workers finished processing")
	case <-time.After(c.config.DrainTimeout):
		c.logger.Warn(ctx, "drain timeout, some events may be redelivered")
	}

	if err := c.reader.Close(); err != nil {
		c.logger.Error(ctx, "failed to close kafka reader", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("consumer stopped for %s", c.processor.Name()))
	select {
	case err := <-c.failures:
		return err
	default:
		return nil
	}
}

func (c *consumer) fetchLoop(ctx context.Context) {
	for {
		if c.stopping.Load() {
			return
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.Type == "" {
			if err == nil {
				err = fmt.Errorf("event has no type")
			}
			msgCtx := observability.WithFields(ctx,
				observability.Field{Key: "partition", Value: msg.Partition},
				observability.Field{Key: "offset", Value: msg.Offset},
			)
			c.logger.Error(msgCtx, "malformed event, skipping", err)
			c.offsets.track(msg)
			if _, commitErr := c.offsets.complete(ctx, msg); commitErr != nil {
				c.logger.Error(msgCtx, "failed to commit skipped message", commitErr)
			}
			continue
		}

		c.offsets.track(msg)
		select {
		case c.shards[c.shardFor(msg.Key)] <- eventWithMsg{event: event, msg: msg}:
		case <-ctx.Done():
			return
		}
	}
}

func (c *consumer) shardFor(key []byte) int {
	if len(key) == 0 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write(key)
	return int(h.Sum32() % uint32(len(c.shards)))
}

// worker processes one shard until it is closed. Processing ignores cancellation so
// an in-flight attempt always completes; retries stop on shutdown.
func (c *consumer) worker(ctx context.Context, wg *sync.WaitGroup, id int, shard <-chan eventWithMsg) {
	defer wg.Done()

	ctx = observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: id})
	processCtx := context.WithoutCancel(ctx)

	for e := range shard {
		eventCtx := observability.WithFields(processCtx,
			observability.Field{Key: "event_id", Value: e.event.ID},
			observability.Field{Key: "event_type", Value: e.event.Type},
			observability.Field{Key: "partition", Value: e.msg.Partition},
			observability.Field{Key: "offset", Value: e.msg.Offset},
		)

		if err := c.process(ctx, eventCtx, e.event); err != nil {
			if ctx.Err() != nil {
				c.logger.Warn(eventCtx, "shutdown during retries, event left for redelivery")
				return
			}
			c.logger.Error(eventCtx, "event failed after retries, stopping consumer", err)
			c.fail(fmt.Errorf("processor %s: event %s at offset %d: %w", c.processor.Name(), e.event.ID, e.msg.Offset, err))
			return
		}
		if _, err := c.offsets.complete(eventCtx, e.msg); err != nil {
			c.logger.Error(eventCtx, "failed to commit offset", err)
		}
	}
}

// process runs the processor with bounded backoff. retryCtx only governs the
// waits between attempts.
func (c *consumer) process(retryCtx, eventCtx context.Context, event EventMessage) error {
	return retry.Do(retryCtx, "consume "+event.Type, func(context.Context) error {
		return c.processor.Process(eventCtx, event)
	},
		retry.WithMaxAttempts(c.config.RetryAttempts),
		retry.WithInitialInterval(c.config.RetryInterval),
		retry.WithMaxInterval(c.config.RetryMaxInterval),
		retry.WithMaxElapsedTime(0),
		retry.WithRetryIf(func(error) bool { return true }),
		retry.WithOnRetry(func(err error, next time.Duration) {
			c.logger.Warn(observability.WithFields(eventCtx,
				observability.Field{Key: "error", Value: err.Error()},
				observability.Field{Key: "retry_in", Value: next.String()},
			), "event processing failed, retrying")
		}),
	)
}

// fail records the first fatal error and stops fetching.
func (c *consumer) fail(err error) {
	select {
	case c.failures <- err:
	default:
	}
	c.cancelFetch()
}

// Stop signals the fetch loop to stop and waits for in-flight events.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		c.stopping.Store(true)
		if c.cancelFetch != nil {
			c.cancelFetch()
		}
		<-c.doneCh
	})
}
