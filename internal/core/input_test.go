package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("empty frame should not report actions")
	}

	f.Set(ActionJump)
	f.Set(ActionDash)
	if !f.Has(ActionJump) || !f.Has(ActionDash) {
		t.Error("frame should report set actions")
	}
	if f.Has(ActionPause) {
		t.Error("frame should not report unset actions")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionDash) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionDash.String() != "Dash" {
		t.Errorf("ActionDash.String() = %q", ActionDash.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
