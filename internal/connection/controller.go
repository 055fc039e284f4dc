package connection

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Handle is an established link to a dartboard.
type Handle interface {
	Name() string
	Address() string
	Disconnect() error
}

// Connector pairs with a dartboard. Device discovery and selection are up
// to the implementation.
type Connector interface {
	ConnectToBoard(ctx context.Context) (Handle, error)
}

// Controller owns the connection status and the handle of a connected board.
// It runs at most one attempt at a time.
type Controller struct {
	connector Connector
	log       logrus.FieldLogger
	timeout   time.Duration

	mu      sync.Mutex
	status  Status
	handle  Handle
	lastErr error
	attempt uint64
	cancel  context.CancelFunc
	closed  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithTimeout bounds each attempt. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// NewController creates a controller in the Idle state.
func NewController(connector Connector, opts ...Option) *Controller {
	c := &Controller{
		connector: connector,
		status:    Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	c.log = c.log.WithField("component", "connection")
	return c
}

// Connect activates the control. If the current status allows it, the
// status becomes Connecting before this method returns and the connector is
// called on a new goroutine. The returned channel is closed once the attempt
// has settled. Activation while Connecting or Connected, or after Close, is
// ignored and reports false.
func (c *Controller) Connect(ctx context.Context) (<-chan struct{}, bool) {
	c.mu.Lock()
	if c.closed || !c.status.CanActivate() {
		c.mu.Unlock()
		return nil, false
	}

	var cancel context.CancelFunc
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	c.attempt++
	attempt := c.attempt
	c.status = Connecting
	c.lastErr = nil
	c.cancel = cancel
	c.mu.Unlock()

	c.log.WithField("attempt", attempt).Info("connecting to board")

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		handle, err := c.connector.ConnectToBoard(ctx)
		c.settle(attempt, handle, err)
	}()
	return done, true
}

func (c *Controller) settle(attempt uint64, handle Handle, err error) {
	log := c.log.WithField("attempt", attempt)

	c.mu.Lock()
	if c.closed || attempt != c.attempt {
		c.mu.Unlock()
		log.Debug("discarding result of abandoned attempt")
		if err == nil && handle != nil {
			if derr := handle.Disconnect(); derr != nil {
				log.WithError(derr).Warn("failed to disconnect abandoned board")
			}
		}
		return
	}

	c.cancel = nil
	if err == nil && handle == nil {
		err = errors.New("connector returned no board")
	}
	if err != nil {
		c.status = Failed
		c.lastErr = err
		c.mu.Unlock()
		log.WithError(err).Error("failed to connect to board")
		return
	}

	c.status = Connected
	c.handle = handle
	c.mu.Unlock()
	log.WithFields(logrus.Fields{
		"name":    handle.Name(),
		"address": handle.Address(),
	}).Info("connected to board")
}

// Status returns the current status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Handle returns the connected board, or nil before a successful attempt.
func (c *Controller) Handle() Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle
}

// Err returns the error of the last failed attempt.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Close abandons an in-flight attempt and disconnects a connected board.
// The status is left untouched; later activations are ignored.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	cancel := c.cancel
	c.cancel = nil
	handle := c.handle
	c.handle = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if handle == nil {
		return nil
	}
	c.log.WithField("address", handle.Address()).Info("disconnecting board")
	return handle.Disconnect()
}
