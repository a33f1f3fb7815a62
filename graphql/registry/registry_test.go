package registry

import (
	"context"
	"testing"
)

func TestRegistry_Register_Resolve(t *testing.T) {
	Register("testEcho", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"echo": args["q"]}, nil
	})
	defer Unregister("testEcho")

	got, err := Resolve(context.Background(), "testEcho", map[string]interface{}{"q": "necklace"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m, ok := got.(map[string]interface{})
	if !ok || m["echo"] != "necklace" {
		t.Errorf("got %v, want map[echo:necklace]", got)
	}
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	_, err := Resolve(context.Background(), "nonexistent", nil)
	if err == nil {
		t.Fatal("want error for unknown extension")
	}
}

func TestRegistry_LockedAfterResolve(t *testing.T) {
	_, _ = Resolve(context.Background(), "nonexistent", nil)
	defer Unregister("late")
	defer func() {
		if recover() == nil {
			t.Error("Register after Resolve: want panic")
		}
	}()
	Register("late", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
}

func TestRegistry_Names(t *testing.T) {
	Register("namesTest", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	defer Unregister("namesTest")

	found := false
	for _, n := range Names() {
		if n == "namesTest" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Names() = %v, want to include namesTest", Names())
	}
}
