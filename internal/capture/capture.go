// Package capture mediates device capabilities (camera, photo library,
// geolocation) into plain values, and gathers validated item form
// input. Permission denial and user cancellation are ordinary outcomes,
// not errors.
package capture

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avolkov/whereis/internal/geo"
)

// Outcome classifies how a capability request ended.
type Outcome int

const (
	// OutcomeOK means a value was produced.
	OutcomeOK Outcome = iota
	// OutcomeCancelled means the user dismissed the flow.
	OutcomeCancelled
	// OutcomeDenied means a required permission was refused.
	OutcomeDenied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeDenied:
		return "denied"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Source is the user's tri-choice when adding an image.
type Source int

const (
	SourceCamera Source = iota
	SourceLibrary
	SourceCancel
)

// ImageSource produces an opaque image URI. Capture returns
// cancelled=true when the user backs out; that is not an error.
type ImageSource interface {
	RequestPermission(ctx context.Context) (bool, error)
	Capture(ctx context.Context) (uri string, cancelled bool, err error)
}

// Locator produces the device's current coordinate.
type Locator interface {
	RequestPermission(ctx context.Context) (bool, error)
	Current(ctx context.Context) (geo.Point, error)
}

// Notifier shows a dismissible user-facing message.
type Notifier interface {
	Alert(title, message string)
}

// Coordinator dispatches capability requests and translates their
// results into Outcome values.
type Coordinator struct {
	camera   ImageSource
	library  ImageSource
	locator  Locator
	notifier Notifier
	logger   *slog.Logger
}

func NewCoordinator(camera, library ImageSource, locator Locator, notifier Notifier, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		camera:   camera,
		library:  library,
		locator:  locator,
		notifier: notifier,
		logger:   logger,
	}
}

// PickImage selects an image from the library. No permission is needed
// for the library flow.
func (c *Coordinator) PickImage(ctx context.Context) (string, Outcome, error) {
	uri, cancelled, err := c.library.Capture(ctx)
	if err != nil {
		return "", OutcomeCancelled, fmt.Errorf("failed to pick image: %w", err)
	}
	if cancelled {
		return "", OutcomeCancelled, nil
	}
	return uri, OutcomeOK, nil
}

// TakePhoto captures an image with the camera, requesting permission
// first. Denial surfaces a message and returns OutcomeDenied.
func (c *Coordinator) TakePhoto(ctx context.Context) (string, Outcome, error) {
	granted, err := c.camera.RequestPermission(ctx)
	if err != nil {
		return "", OutcomeDenied, fmt.Errorf("failed to request camera permission: %w", err)
	}
	if !granted {
		c.logger.Info("camera permission denied")
		c.notifier.Alert("Permission required", "Camera permission is needed.")
		return "", OutcomeDenied, nil
	}

	uri, cancelled, err := c.camera.Capture(ctx)
	if err != nil {
		return "", OutcomeCancelled, fmt.Errorf("failed to take photo: %w", err)
	}
	if cancelled {
		return "", OutcomeCancelled, nil
	}
	return uri, OutcomeOK, nil
}

// AddImage dispatches the user's source choice to the matching flow.
func (c *Coordinator) AddImage(ctx context.Context, source Source) (string, Outcome, error) {
	switch source {
	case SourceCamera:
		return c.TakePhoto(ctx)
	case SourceLibrary:
		return c.PickImage(ctx)
	default:
		return "", OutcomeCancelled, nil
	}
}

// CurrentLocation fetches the device coordinate and wraps it in the
// viewport used for a form's first render. Denial surfaces a message
// and returns OutcomeDenied.
func (c *Coordinator) CurrentLocation(ctx context.Context) (geo.Region, Outcome, error) {
	granted, err := c.locator.RequestPermission(ctx)
	if err != nil {
		return geo.Region{}, OutcomeDenied, fmt.Errorf("failed to request location permission: %w", err)
	}
	if !granted {
		c.logger.Info("location permission denied")
		c.notifier.Alert("Permission Denied", "Location permission is required to use this feature.")
		return geo.Region{}, OutcomeDenied, nil
	}

	point, err := c.locator.Current(ctx)
	if err != nil {
		return geo.Region{}, OutcomeDenied, fmt.Errorf("failed to get current location: %w", err)
	}
	return geo.FixRegion(point), OutcomeOK, nil
}
