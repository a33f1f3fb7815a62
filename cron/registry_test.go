package cron

import (
	"testing"
)

func TestRegistry_Register_Jobs(t *testing.T) {
	ran := false
	Register("testregistryjob", "@every 1h", func(args ...string) {
		ran = true
	})
	defer Unregister("testregistryjob")

	jobs := Jobs()
	j, ok := jobs["testregistryjob"]
	if !ok {
		t.Fatal("testregistryjob not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	j.Run()
	if !ran {
		t.Error("Run did not execute")
	}
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	Unregister("dupjob")
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", func(...string) {})
}

func TestStartCron_MergesExtra(t *testing.T) {
	Unregister("registered")
	Register("registered", "@hourly", func(...string) {})
	defer Unregister("registered")

	c, err := StartCron(map[string]Job{"sessions:sweep": {Schedule: "@every 1m", Run: func(...string) {}}})
	if err != nil {
		t.Fatalf("StartCron: %v", err)
	}
	defer c.Stop()
	if n := len(c.Entries()); n != 2 {
		t.Errorf("entries = %d, want 2", n)
	}
}

func TestStartCron_Errors(t *testing.T) {
	Unregister("taken")
	Register("taken", "@hourly", func(...string) {})
	defer Unregister("taken")

	tests := []struct {
		name  string
		extra map[string]Job
	}{
		{"duplicate name", map[string]Job{"taken": {Schedule: "@hourly", Run: func(...string) {}}}},
		{"bad schedule", map[string]Job{"bad": {Schedule: "every tuesday", Run: func(...string) {}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := StartCron(tt.extra); err == nil {
				t.Error("StartCron: want error")
			}
		})
	}
}
