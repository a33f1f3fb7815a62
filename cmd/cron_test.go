package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestCronStart_SingleJob(t *testing.T) {
	Apply()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	rootCmd.SetArgs([]string{"cron:start", "-j", "catalog:warm"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "Running cron job: catalog:warm") {
		t.Errorf("output = %q", out.String())
	}

	rootCmd.SetArgs([]string{"cron:start", "-j", "nope"})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown job: nope") {
		t.Errorf("Execute unknown job = %v, want unknown job error", err)
	}
	jobName = ""
}
