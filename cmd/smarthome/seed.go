package main

import (
	"fmt"
	"strings"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/house"
	"github.com/nerrad567/smart-house-core/internal/infrastructure/config"
	"github.com/nerrad567/smart-house-core/internal/infrastructure/logging"
)

// seed builds the house and the device registry declared in cfg.
// Every declared device is referenced by its room and stored in the registry.
func seed(cfg *config.Config, log *logging.Logger) (*house.House, *device.Registry, error) {
	h := house.New()
	h.SetLogger(log.Component("house"))

	registry := device.NewRegistry()
	registry.SetLogger(log.Component("registry"))

	for _, rc := range cfg.House.Rooms {
		if err := h.AddRoom(house.NewRoom(rc.Name)); err != nil {
			return nil, nil, err
		}

		for _, dc := range rc.Devices {
			d, err := buildDevice(dc, cfg.Devices.DefaultSocketWatts)
			if err != nil {
				return nil, nil, err
			}
			if err := h.AddDevice(rc.Name, dc.Name); err != nil {
				return nil, nil, err
			}
			if err := registry.AddDevice(rc.Name, d); err != nil {
				return nil, nil, err
			}
		}
	}

	return h, registry, nil
}

// buildDevice turns a device declaration into a Device.
// Sockets declared without a rating get defaultWatts.
func buildDevice(dc config.DeviceConfig, defaultWatts int) (device.Device, error) {
	switch dc.Type {
	case config.DeviceTypePowerSocket:
		rating := dc.Rating
		if rating == 0 {
			rating = defaultWatts
		}
		return device.FromPowerSocket(device.NewPowerSocket(dc.Name, dc.Description, rating)), nil

	case config.DeviceTypeThermometer:
		reading := device.DegreesCelsius(dc.Temperature.Value)
		if strings.EqualFold(dc.Temperature.Unit, "fahrenheit") {
			reading = device.DegreesFahrenheit(dc.Temperature.Value)
		}
		return device.FromThermometer(device.Thermometer{Name: dc.Name, Reading: reading}), nil

	default:
		return device.Device{}, fmt.Errorf("%w: unknown type %q for %q", device.ErrInvalidDevice, dc.Type, dc.Name)
	}
}
