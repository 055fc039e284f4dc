package bluetooth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"granboard.klederson.com/internal/connection"
)

var mockBoardNames = []string{
	"GRANBOARD",
	"GRANBOARD3",
	"GRANBOARD 132",
	"GRANBOARD3s",
}

// Failures a mock attempt picks from, mirroring what real pairing reports.
var mockFailures = []error{
	ErrNoBoardFound,
	ErrServiceNotFound,
	errors.New("pairing rejected by device"),
	errors.New("link timeout"),
}

// MockConnector simulates pairing with a board for demo mode.
type MockConnector struct {
	delay       time.Duration
	failureRate float64
	rand        *rand.Rand
	log         logrus.FieldLogger
}

// NewMockConnector creates a mock that settles after delay and fails with
// probability failureRate.
func NewMockConnector(delay time.Duration, failureRate float64, log logrus.FieldLogger) *MockConnector {
	return &MockConnector{
		delay:       delay,
		failureRate: failureRate,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         log.WithField("component", "mock-bluetooth"),
	}
}

// ConnectToBoard waits for the simulated pairing time, then either returns a
// fake board or one of the mock failures.
func (m *MockConnector) ConnectToBoard(ctx context.Context) (connection.Handle, error) {
	m.log.Debug("simulating board scan")

	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if m.rand.Float64() < m.failureRate {
		err := mockFailures[m.rand.Intn(len(mockFailures))]
		return nil, fmt.Errorf("mock pairing failed: %w", err)
	}

	name := mockBoardNames[m.rand.Intn(len(mockBoardNames))]
	board := newBoard(name, m.randomMAC(), nil)
	m.log.WithFields(logrus.Fields{"name": board.Name(), "address": board.Address()}).Debug("simulated board connected")
	return board, nil
}

func (m *MockConnector) randomMAC() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte(m.rand.Intn(256))
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}
