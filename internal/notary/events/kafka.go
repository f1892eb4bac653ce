package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"starnotary/pkg/platform/circuit"
)

// retryInterval is how long an open breaker suppresses produce attempts
// before the next probe.
const retryInterval = 30 * time.Second

// KafkaSink publishes notifications to a Kafka topic, keyed by token so a
// token's history stays ordered within one partition. A circuit breaker
// sheds events while the brokers are down; notifications are best-effort
// and must not stall ledger commits.
type KafkaSink struct {
	client  *kgo.Client
	topic   string
	breaker *circuit.Breaker

	mu       sync.Mutex
	openedAt time.Time
}

// NewKafkaSink connects to the given brokers and ensures the topic exists.
func NewKafkaSink(ctx context.Context, brokers []string, topic string) (*KafkaSink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("ensure topic %s: %w", topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && r.Err != kerr.TopicAlreadyExists {
			client.Close()
			return nil, fmt.Errorf("ensure topic %s: %w", topic, r.Err)
		}
	}

	return &KafkaSink{
		client:  client,
		topic:   topic,
		breaker: circuit.New("kafka-notifications", circuit.WithFailureThreshold(3)),
	}, nil
}

func (s *KafkaSink) Append(ctx context.Context, event Event) error {
	if s.shedding() {
		return fmt.Errorf("notification shed: %s breaker open", s.breaker.Name())
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	record := &kgo.Record{
		Key:   []byte(strconv.FormatUint(uint64(event.Token), 10)),
		Value: value,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		if _, change := s.breaker.RecordFailure(); change.Opened {
			s.mu.Lock()
			s.openedAt = time.Now()
			s.mu.Unlock()
		}
		return fmt.Errorf("produce notification: %w", err)
	}
	s.breaker.RecordSuccess()
	return nil
}

// shedding reports whether the breaker suppresses this attempt. After
// retryInterval one attempt is let through as a probe.
func (s *KafkaSink) shedding() bool {
	if !s.breaker.IsOpen() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Since(s.openedAt) >= retryInterval {
		s.openedAt = time.Now()
		return false
	}
	return true
}

func (s *KafkaSink) Close() {
	s.client.Close()
}
