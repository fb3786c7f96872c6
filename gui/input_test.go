package gui_test

import (
	"testing"

	"github.com/go-theft-auto/titlemaker/gui"
)

func TestInputEdgesLastUntilReset(t *testing.T) {
	in := gui.NewInputState()
	in.SetKey(gui.KeyS, true)
	in.SetKey(gui.KeyS, false)

	if !in.KeyPressed(gui.KeyS) || !in.KeyReleased(gui.KeyS) || in.KeyDown(gui.KeyS) {
		t.Fatal("tap within a frame should report press and release, not held")
	}
	in.Reset()
	if in.KeyPressed(gui.KeyS) || in.KeyReleased(gui.KeyS) {
		t.Error("Reset should clear edges")
	}

	in.SetMouseButton(gui.MouseButtonRight, true)
	in.SetMouseButton(gui.MouseButtonCount, true)
	in.Reset()
	if b, down := in.AnyMouseDown(); !down || b != gui.MouseButtonRight {
		t.Errorf("AnyMouseDown = %v, %v; want right, true", b, down)
	}
	if in.MouseClicked(gui.MouseButtonRight) {
		t.Error("click edge survived Reset")
	}
}

func TestKeyRepeat(t *testing.T) {
	in := gui.NewInputState()
	in.SetKey(gui.KeyBackspace, true)

	steps := []struct {
		dt   float32
		want bool
	}{
		{0.1, true},   // the press
		{0.2, false},  // 0.3 held
		{0.11, true},  // crosses the delay
		{0.01, false}, // 0.42
		{0.02, true},  // 0.44, next interval
	}
	for i, s := range steps {
		in.Advance(s.dt)
		if got := in.KeyRepeated(gui.KeyBackspace); got != s.want {
			t.Errorf("step %d: KeyRepeated = %v, want %v", i, got, s.want)
		}
		in.Reset()
	}

	in.SetKey(gui.KeyBackspace, false)
	in.Advance(1)
	if in.KeyRepeated(gui.KeyBackspace) {
		t.Error("released key repeated")
	}
}

func TestKeyName(t *testing.T) {
	for k, want := range map[gui.Key]string{
		gui.KeyF5:     "F5",
		gui.KeyDelete: "Del",
		gui.KeyD:      "D",
		gui.KeyCount:  "?",
		gui.Key(-1):   "?",
	} {
		if got := gui.KeyName(k); got != want {
			t.Errorf("KeyName(%d) = %q, want %q", k, got, want)
		}
	}
}
