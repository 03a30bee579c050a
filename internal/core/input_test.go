package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("empty frame reports ActionUp")
	}

	f.Set(ActionUp)
	f.Set(ActionSelect)
	if !f.Has(ActionUp) || !f.Has(ActionSelect) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionDown) {
		t.Error("unset action reported")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear left actions behind")
	}
	if !clone.Has(ActionUp) || !clone.Has(ActionSelect) {
		t.Error("Clone does not survive Clear on the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero-value frame reports an action")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on a zero-value frame lost the action")
	}
}
