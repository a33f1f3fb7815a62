package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"companion.GO/core/logger"
	"companion.GO/service/catalog"
	chatService "companion.GO/service/chat"
)

func TestRunChat_ScriptedSession(t *testing.T) {
	s := chatService.NewSession(catalog.DefaultGroups(), chatService.WithDelay(func() time.Duration { return 0 }))
	in := strings.NewReader(strings.Join([]string{
		"show me bracelets",
		"   ",
		"/select bracelet-2",
		"/add 3 0",
		"/qty bracelet-2 2",
		"/qty ghost 1",
		"/checkout",
		"/nope",
		"/quit",
		"never read",
	}, "\n"))
	var out bytes.Buffer
	if err := runChat(context.Background(), in, &out, s); err != nil {
		t.Fatalf("runChat: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"[0] assistant:",
		"[3] assistant: " + chatService.ReplyBracelet,
		"bracelet-2 selected: true",
		"subtotal: $190.00",
		"error: item not in cart: ghost",
		"checkout complete: 2 items, $190.00",
		"unknown command /nope",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if n := len(s.History()); n != 4 {
		t.Errorf("history = %d, want 4", n)
	}
}

func TestGroupArgs(t *testing.T) {
	if _, _, err := groupArgs([]string{"/all", "x", "0"}); err == nil {
		t.Error("non-numeric message index: want error")
	}
	m, g, err := groupArgs([]string{"/add", "2", "1"})
	if err != nil || m != 2 || g != 1 {
		t.Errorf("groupArgs = %d, %d, %v; want 2, 1, nil", m, g, err)
	}
}

type deleterFunc func(id string) error

func (f deleterFunc) Delete(id string) error { return f(id) }

func TestEndSession_LogsCleanupFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := logger.L()
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(prev) })

	endSession(deleterFunc(func(string) error { return nil }), "ok-session")
	if logs.Len() != 0 {
		t.Fatalf("logged %d entries for a clean delete, want 0", logs.Len())
	}

	endSession(deleterFunc(func(id string) error { return errors.New("session not found: " + id) }), "gone")
	entries := logs.FilterMessage("chat session cleanup failed").All()
	if len(entries) != 1 {
		t.Fatalf("cleanup warnings = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["session_id"]; got != "gone" {
		t.Errorf("session_id = %v, want gone", got)
	}
}
