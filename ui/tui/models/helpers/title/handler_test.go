// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestTitleHandler(t *testing.T) {
	h := NewHandler("maskedit", " | ")
	if h.Title() != "maskedit" {
		t.Fatalf("base title = %q", h.Title())
	}
	if _, ok := h.Handle("not a title"); ok {
		t.Fatalf("foreign message consumed")
	}
	cmd, ok := h.Handle(Set("Date")())
	if !ok || cmd == nil || h.Title() != "maskedit | Date" {
		t.Fatalf("title not updated: %q", h.Title())
	}
	if cmd, _ := h.Handle(Set("Date")()); cmd != nil {
		t.Fatalf("unchanged title must not emit a command")
	}
}
