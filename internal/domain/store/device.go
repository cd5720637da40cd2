package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Device is a piece of equipment owned by a store.
type Device struct {
	id      string
	storeID string
	label   string
	kind    string
	serial  *string
}

func NewDevice(storeID, label, kind string, serial *string) (*Device, error) {
	if storeID == "" {
		return nil, fmt.Errorf("store ID is required")
	}
	if label == "" {
		return nil, fmt.Errorf("device label is required")
	}
	if kind == "" {
		return nil, fmt.Errorf("device type is required")
	}
	return &Device{
		id:      uuid.NewString(),
		storeID: storeID,
		label:   label,
		kind:    kind,
		serial:  serial,
	}, nil
}

func ReconstructDevice(id, storeID, label, kind string, serial *string) *Device {
	return &Device{id: id, storeID: storeID, label: label, kind: kind, serial: serial}
}

func (d *Device) ID() string {
	return d.id
}

func (d *Device) StoreID() string {
	return d.storeID
}

func (d *Device) Label() string {
	return d.label
}

func (d *Device) Type() string {
	return d.kind
}

func (d *Device) Serial() *string {
	return d.serial
}

// Update changes the present fields. Empty label or type are rejected.
func (d *Device) Update(label, kind, serial *string) error {
	if label != nil {
		if *label == "" {
			return fmt.Errorf("device label is required")
		}
		d.label = *label
	}
	if kind != nil {
		if *kind == "" {
			return fmt.Errorf("device type is required")
		}
		d.kind = *kind
	}
	if serial != nil {
		if *serial == "" {
			d.serial = nil
		} else {
			s := *serial
			d.serial = &s
		}
	}
	return nil
}
