package sse

import (
	"testing"
	"time"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "match",
			data:      `{"cleared":2,"awarded":20}`,
			expected:  "event: match\ndata: {\"cleared\":2,\"awarded\":20}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "state_changed",
			data:      "line1\nline2",
			expected:  "event: state_changed\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "shake",
			data:      "",
			expected:  "event: shake\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single line",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "two lines",
			input:    "line1\nline2",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "trailing newline",
			input:    "line1\n",
			expected: []string{"line1"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "crlf line endings",
			input:    "line1\r\nline2\r\n",
			expected: []string{"line1", "line2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitLines(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("splitLines(%q) returned %d lines, want %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i, line := range result {
				if line != tt.expected[i] {
					t.Errorf("splitLines(%q)[%d] = %q, want %q",
						tt.input, i, line, tt.expected[i])
				}
			}
		})
	}
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := NewHub("GAME12345678", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	// Give the hub time to process registration
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.BroadcastEvent("shake", "{}")

	select {
	case msg := <-client.send:
		expected := "event: shake\ndata: {}\n\n"
		if string(msg) != expected {
			t.Errorf("broadcast message = %q, want %q", string(msg), expected)
		}
	case <-time.After(time.Second):
		t.Error("no message received from broadcast")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub("GAME12345678", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Error("send channel not closed after unregister")
	}
}

func TestHubManagerGetOrCreate(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())

	hub1 := m.GetOrCreateHub("GAMEA")
	hub2 := m.GetOrCreateHub("GAMEA")
	if hub1 != hub2 {
		t.Error("GetOrCreateHub returned different hubs for the same game")
	}

	if m.GetHub("GAMEB") != nil {
		t.Error("GetHub returned a hub for an unknown game")
	}

	m.RemoveHub("GAMEA")
	if m.GetHub("GAMEA") != nil {
		t.Error("hub still present after RemoveHub")
	}
}

func TestHubManagerCleanupEmptyHubs(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())

	m.GetOrCreateHub("GAMEA")
	busy := m.GetOrCreateHub("GAMEB")
	client := NewClient(busy)
	busy.Register(client)
	time.Sleep(10 * time.Millisecond)

	m.CleanupEmptyHubs()

	if m.GetHub("GAMEA") != nil {
		t.Error("empty hub not cleaned up")
	}
	if m.GetHub("GAMEB") == nil {
		t.Error("hub with clients was cleaned up")
	}
}
