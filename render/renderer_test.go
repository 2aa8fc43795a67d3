package render

import "testing"

func TestNewNilDevicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(nil) did not panic")
		}
	}()
	New(nil)
}

func TestDevice(t *testing.T) {
	r, dev := newTestRenderer()
	if r.Device() != dev {
		t.Error("Device() did not return the construction device")
	}
}
