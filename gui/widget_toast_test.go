package gui_test

import (
	"fmt"
	"testing"

	"github.com/go-theft-auto/titlemaker/gui"
)

func TestToastExpiry(t *testing.T) {
	var ts gui.ToastState
	ts.ToastInfo("saved")
	ts.Toast("short", gui.ToastTypeWarning, 0.5)

	ts.Update(1)
	if len(ts.Toasts) != 1 || ts.Toasts[0].Message != "saved" {
		t.Fatalf("after 1s: %+v", ts.Toasts)
	}
	ts.Update(gui.DefaultToastDuration)
	if len(ts.Toasts) != 0 {
		t.Errorf("after %gs: %d toasts left", 1+gui.DefaultToastDuration, len(ts.Toasts))
	}
}

func TestToastQueueIsBounded(t *testing.T) {
	var ts gui.ToastState
	for i := range 2*gui.ToastMaxVisible + 1 {
		ts.ToastError(fmt.Sprint(i))
	}
	if len(ts.Toasts) != gui.ToastMaxVisible {
		t.Fatalf("queue = %d, want %d", len(ts.Toasts), gui.ToastMaxVisible)
	}
	if last := ts.Toasts[len(ts.Toasts)-1].Message; last != fmt.Sprint(2*gui.ToastMaxVisible) {
		t.Errorf("newest = %q", last)
	}
}

func TestDrawToasts(t *testing.T) {
	h := newHarness()
	var ts gui.ToastState
	ts.ToastSuccess("Snapshot saved")
	ts.ToastError("open title.toml: no such file")

	h.frame(func(ctx *gui.Context) {
		ts.Update(0.5)
		ctx.DrawToasts(&ts)
	})
	if h.renderer.lastCmds == 0 {
		t.Error("no draw commands for visible toasts")
	}
}
