package bluetooth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"granboard.klederson.com/internal/connection"
	"tinygo.org/x/bluetooth"
)

var (
	// ErrNoBoardFound is returned when scanning ends without a Granboard.
	ErrNoBoardFound = errors.New("no Granboard found")
	// ErrServiceNotFound is returned when a board lacks the Granboard service.
	ErrServiceNotFound = errors.New("granboard service not found")
)

var (
	serviceUUID = mustParseUUID(ServiceUUID)
	notifyUUID  = mustParseUUID(NotifyUUID)
)

// BLEConnector finds and pairs with a Granboard over Bluetooth Low Energy.
type BLEConnector struct {
	adapter *bluetooth.Adapter
	log     logrus.FieldLogger

	mu      sync.Mutex
	enabled bool
}

// NewBLEConnector creates a connector on the default adapter.
func NewBLEConnector(log logrus.FieldLogger) *BLEConnector {
	return &BLEConnector{
		adapter: bluetooth.DefaultAdapter,
		log:     log.WithField("component", "bluetooth"),
	}
}

func (c *BLEConnector) enable() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled {
		return nil
	}
	if err := c.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}
	c.enabled = true
	return nil
}

// ConnectToBoard scans for the first Granboard, connects to it and
// subscribes to its notifications.
func (c *BLEConnector) ConnectToBoard(ctx context.Context) (connection.Handle, error) {
	if err := c.enable(); err != nil {
		return nil, err
	}

	result, err := c.scan(ctx)
	if err != nil {
		return nil, err
	}

	name := result.LocalName()
	addr := result.Address.String()
	log := c.log.WithFields(logrus.Fields{"name": name, "address": addr})
	log.WithField("rssi", result.RSSI).Info("found board")

	// Connect does not observe ctx; cancellation takes effect once it returns.
	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	board := newBoard(name, addr, device)

	if err := ctx.Err(); err != nil {
		_ = board.Disconnect()
		return nil, err
	}

	if err := subscribe(device, board); err != nil {
		_ = board.Disconnect()
		return nil, err
	}

	log.Info("subscribed to board notifications")
	return board, nil
}

// scan blocks until a Granboard advertises or ctx is done.
func (c *BLEConnector) scan(ctx context.Context) (bluetooth.ScanResult, error) {
	found := make(chan bluetooth.ScanResult, 1)
	scanErr := make(chan error, 1)

	c.log.Debug("scanning for boards")
	go func() {
		scanErr <- c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !IsBoardName(result.LocalName()) {
				return
			}
			select {
			case found <- result:
			default:
			}
			_ = adapter.StopScan()
		})
	}()

	select {
	case result := <-found:
		return result, nil
	case err := <-scanErr:
		// Scan returns nil once the callback stopped it.
		select {
		case result := <-found:
			return result, nil
		default:
		}
		if err == nil {
			err = ErrNoBoardFound
		}
		return bluetooth.ScanResult{}, fmt.Errorf("scan failed: %w", err)
	case <-ctx.Done():
		_ = c.adapter.StopScan()
		return bluetooth.ScanResult{}, ctx.Err()
	}
}

func subscribe(device bluetooth.Device, board *Board) error {
	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		return fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		return ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{notifyUUID})
	if err != nil {
		return fmt.Errorf("failed to discover characteristics: %w", err)
	}
	if len(chars) == 0 {
		return fmt.Errorf("%w: missing notify characteristic", ErrServiceNotFound)
	}

	if err := chars[0].EnableNotifications(board.onNotify); err != nil {
		return fmt.Errorf("failed to enable notifications: %w", err)
	}
	return nil
}

func mustParseUUID(s string) bluetooth.UUID {
	uuid, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return uuid
}
