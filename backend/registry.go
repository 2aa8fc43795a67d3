package backend

import (
	"sync"
)

// DeviceFactory creates a new device instance.
type DeviceFactory func() Device

// registry holds registered devices.
var (
	registryMu sync.RWMutex
	devices    = make(map[string]DeviceFactory)
	// Priority order for device selection (first available wins).
	// Real GPU backends register ahead of the no-op fallback.
	devicePriority = []string{BackendNoop}
)

// Register registers a device factory with the given name.
// This is typically called from init() functions in backend packages.
// If a device with the same name is already registered, it will be replaced.
func Register(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	devices[name] = factory
}

// Unregister removes a device from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(devices, name)
}

// Available returns a list of registered device names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a device with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := devices[name]
	return ok
}

// Get returns a device instance by name.
// Returns nil if the device is not registered.
func Get(name string) Device {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := devices[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available device based on priority.
// Returns nil if no devices are registered.
func Default() Device {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range devicePriority {
		if factory, ok := devices[name]; ok {
			if d := factory(); d != nil {
				return d
			}
		}
	}

	// Fallback: return first available
	for _, factory := range devices {
		if d := factory(); d != nil {
			return d
		}
	}

	return nil
}

// MustDefault returns the default device or panics.
func MustDefault() Device {
	d := Default()
	if d == nil {
		panic("backend: no device available")
	}
	return d
}

// InitDefault initializes the default device based on availability.
func InitDefault() (Device, error) {
	d := Default()
	if d == nil {
		return nil, ErrBackendNotAvailable
	}

	if err := d.Init(); err != nil {
		return nil, err
	}

	return d, nil
}
