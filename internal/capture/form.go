package capture

import (
	"context"
	"strings"

	"github.com/avolkov/whereis/internal/domain"
	"github.com/avolkov/whereis/internal/service"
)

// ItemForm accumulates the values for a new or edited item. The
// selected image and coordinate survive denied or cancelled capability
// requests unchanged.
type ItemForm struct {
	Name        string
	Description string
	PhotoURI    *string
	Latitude    *float64
	Longitude   *float64
}

// Validate reports whether the form is saveable. Name and description
// must both be non-empty after trimming.
func (f *ItemForm) Validate() error {
	return domain.ValidateItem(f.Name, f.Description)
}

// Input converts the form into the service input, trimming the text
// fields.
func (f *ItemForm) Input() service.ItemInput {
	return service.ItemInput{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		PhotoURI:    f.PhotoURI,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
	}
}

// AttachImage runs the chosen capture flow and sets the form's image
// only when a value was produced.
func (f *ItemForm) AttachImage(ctx context.Context, c *Coordinator, source Source) (Outcome, error) {
	uri, outcome, err := c.AddImage(ctx, source)
	if err != nil {
		return outcome, err
	}
	if outcome == OutcomeOK {
		f.PhotoURI = &uri
	}
	return outcome, nil
}

// AttachCurrentLocation sets the form's coordinate from the device
// location, leaving it untouched on denial.
func (f *ItemForm) AttachCurrentLocation(ctx context.Context, c *Coordinator) (Outcome, error) {
	region, outcome, err := c.CurrentLocation(ctx)
	if err != nil {
		return outcome, err
	}
	if outcome == OutcomeOK {
		f.Latitude = &region.Latitude
		f.Longitude = &region.Longitude
	}
	return outcome, nil
}
