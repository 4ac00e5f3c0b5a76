package queue

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/boltdb/bolt"
	"github.com/spaolacci/murmur3"
	"golang.org/x/sync/errgroup"
)

const (
	deadBucket   = "dead"
	pollInterval = time.Second
)

type envelope struct {
	Group      string    `json:"group"`
	Body       []byte    `json:"body"`
	EnqueuedAt time.Time `json:"enqueued_at"`
	Error      string    `json:"error,omitempty"`
}

// LocalQueue stores messages in a bolt file, one bucket per lane. A group
// key always hashes to the same lane and every lane is drained by a single
// goroutine, so messages of one group are handled in send order. Messages
// are deleted only after their handler returns.
type LocalQueue struct {
	db     *bolt.DB
	lanes  int
	notify []chan struct{}
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
}

func NewLocalQueue(path string, lanes int, log *logger.Logger) (*LocalQueue, error) {
	if lanes < 1 {
		return nil, fmt.Errorf("local queue needs at least one lane, got %d", lanes)
	}

	db, err := bolt.Open(path, os.FileMode(0o600), &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrTransport, path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for i := 0; i < lanes; i++ {
			if _, err := tx.CreateBucketIfNotExists(laneBucket(i)); err != nil {
				return err
			}
		}
		_, err := tx.CreateBucketIfNotExists([]byte(deadBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create buckets: %w", ErrTransport, err)
	}

	q := &LocalQueue{db: db, lanes: lanes, logger: log, notify: make([]chan struct{}, lanes)}
	for i := range q.notify {
		q.notify[i] = make(chan struct{}, 1)
	}
	return q, nil
}

func laneBucket(i int) []byte {
	return []byte(fmt.Sprintf("lane-%03d", i))
}

func (q *LocalQueue) lane(group string) int {
	return int(murmur3.Sum32([]byte(group)) % uint32(q.lanes))
}

func (q *LocalQueue) Send(ctx context.Context, groupKey string, body []byte) error {
	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		return ErrClosed
	}

	value, err := json.Marshal(envelope{Group: groupKey, Body: body, EnqueuedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	lane := q.lane(groupKey)
	err = q.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(laneBucket(lane))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(sequenceKey(seq), value)
	})
	if err != nil {
		return fmt.Errorf("%w: append to lane %d: %w", ErrTransport, lane, err)
	}

	select {
	case q.notify[lane] <- struct{}{}:
	default:
	}
	return nil
}

// Consume drains every lane concurrently until ctx ends. Messages left over
// from a previous run are delivered first.
func (q *LocalQueue) Consume(ctx context.Context, h Handler) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < q.lanes; i++ {
		lane := i
		g.Go(func() error {
			return q.drain(ctx, lane, h)
		})
	}
	return g.Wait()
}

func (q *LocalQueue) drain(ctx context.Context, lane int, h Handler) error {
	log := logger.FromContext(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}

		key, env, ok, err := q.head(lane)
		if err != nil {
			return err
		}
		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-q.notify[lane]:
			case <-time.After(pollInterval):
			}
			continue
		}

		msg := Message{
			ID:       fmt.Sprintf("lane-%03d/%d", lane, binary.BigEndian.Uint64(key)),
			GroupKey: env.Group,
			Body:     env.Body,
		}

		handleErr := h(ctx, msg)
		if handleErr != nil && ctx.Err() != nil {
			// redelivered on the next start
			return nil
		}
		if handleErr != nil {
			log.Error().Err(handleErr).
				Str("func", "LocalQueue.drain").
				Str("message_id", msg.ID).
				Str("group", msg.GroupKey).
				RawJSON("payload", rawOrQuoted(msg.Body)).
				Msg("message failed, moving to dead letters")
		}

		if err = q.settle(lane, key, env, handleErr); err != nil {
			return err
		}
	}
}

// head returns the oldest message of lane without removing it.
func (q *LocalQueue) head(lane int) ([]byte, envelope, bool, error) {
	var (
		key []byte
		env envelope
	)
	err := q.db.View(func(tx *bolt.Tx) error {
		k, v := tx.Bucket(laneBucket(lane)).Cursor().First()
		if k == nil {
			return nil
		}
		key = append([]byte(nil), k...)
		return json.Unmarshal(v, &env)
	})
	if err != nil {
		return nil, envelope{}, false, fmt.Errorf("%w: read lane %d: %w", ErrTransport, lane, err)
	}
	return key, env, key != nil, nil
}

// settle removes a handled message, copying it to the dead letter bucket
// when handling failed.
func (q *LocalQueue) settle(lane int, key []byte, env envelope, handleErr error) error {
	err := q.db.Update(func(tx *bolt.Tx) error {
		if handleErr != nil {
			dead := tx.Bucket([]byte(deadBucket))
			seq, err := dead.NextSequence()
			if err != nil {
				return err
			}
			env.Error = handleErr.Error()
			value, err := json.Marshal(env)
			if err != nil {
				return err
			}
			if err = dead.Put(sequenceKey(seq), value); err != nil {
				return err
			}
		}
		return tx.Bucket(laneBucket(lane)).Delete(key)
	})
	if err != nil {
		return fmt.Errorf("%w: settle lane %d: %w", ErrTransport, lane, err)
	}
	return nil
}

// DeadLetters returns the parked messages, oldest first, for inspection and
// manual replay.
func (q *LocalQueue) DeadLetters() ([]Message, error) {
	var out []Message
	err := q.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(deadBucket)).ForEach(func(k, v []byte) error {
			var env envelope
			if err := json.Unmarshal(v, &env); err != nil {
				return err
			}
			out = append(out, Message{
				ID:       fmt.Sprintf("%s/%d", deadBucket, binary.BigEndian.Uint64(k)),
				GroupKey: env.Group,
				Body:     env.Body,
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: read dead letters: %w", ErrTransport, err)
	}
	return out, nil
}

// Len returns the number of undelivered messages across all lanes.
func (q *LocalQueue) Len() (int, error) {
	var n int
	err := q.db.View(func(tx *bolt.Tx) error {
		for i := 0; i < q.lanes; i++ {
			n += tx.Bucket(laneBucket(i)).Stats().KeyN
		}
		return nil
	})
	return n, err
}

func (q *LocalQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	return q.db.Close()
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// rawOrQuoted returns body as raw JSON when it is valid JSON.
func rawOrQuoted(body []byte) []byte {
	if json.Valid(body) {
		return body
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
