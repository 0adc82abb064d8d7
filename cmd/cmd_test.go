package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcus/optsel/internal/config"
	"github.com/marcus/optsel/internal/output"
	"github.com/marcus/optsel/internal/selector"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const page = `<!DOCTYPE html>
<html><body>
<form id="order"></form>
<option-selector name="fruit" form="order">
  <div option="X">Xigua</div>
  <div option="Y">Yuzu</div>
  <div option="Z">Ziziphus</div>
</option-selector>
<option-selector id="second" multiple>
  <div option="a" selected>a</div>
  <div option="b" selected>b</div>
</option-selector>
</body></html>`

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		t.Fatalf("setup: write failed: %v", err)
	}
	return path
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	oldOut, oldErr := output.Stdout, output.Stderr
	output.Stdout, output.Stderr = &out, &errOut
	defer func() { output.Stdout, output.Stderr = oldOut, oldErr }()

	rootCmd.SetArgs(args)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

type result struct {
	State  output.StateJSON       `json:"state"`
	Events []selector.SelectEvent `json:"events"`
}

func decode(t *testing.T, s string) result {
	t.Helper()
	var r result
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return r
}

func TestKeyName(t *testing.T) {
	tests := map[string]string{
		"down":    "ArrowDown",
		"LEFT":    "ArrowLeft",
		"ArrowUp": "ArrowUp",
		"space":   " ",
		"x":       "x",
	}
	for in, want := range tests {
		if got := keyName(in); got != want {
			t.Errorf("keyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModeFlag(t *testing.T) {
	var f modeFlag
	if f.String() != "" {
		t.Errorf("unset String() = %q", f.String())
	}
	if err := f.Set("focus"); err != nil || !f.set || f.mode != selector.ModeFocus {
		t.Errorf("Set(focus): %v %+v", err, f)
	}
	if f.String() != "focus" || f.Type() != "mode" {
		t.Errorf("String/Type = %q/%q", f.String(), f.Type())
	}
	if err := f.Set("sideways"); !errors.Is(err, selector.ErrInvalidKeyboardSelectMode) {
		t.Errorf("Set(sideways) err = %v", err)
	}
	if err := f.Set(""); err != nil || f.set {
		t.Errorf("Set(\"\") should reset: %v %+v", err, f)
	}
}

func TestOpenSession(t *testing.T) {
	path := writePage(t)
	ctx := context.Background()

	s, err := openSession(ctx, path, sessionOptions{Container: config.DefaultContainer})
	if err != nil {
		t.Fatalf("openSession failed: %v", err)
	}
	if len(s.widget.Options()) != 3 || s.widget.Multiple() {
		t.Errorf("first widget: %d options, multiple=%v", len(s.widget.Options()), s.widget.Multiple())
	}
	s.close()

	s, err = openSession(ctx, path, sessionOptions{Container: config.DefaultContainer, Index: 1})
	if err != nil {
		t.Fatalf("openSession(index 1) failed: %v", err)
	}
	if !s.widget.Multiple() {
		t.Error("second widget should be multiple")
	}
	s.close()

	if _, err := openSession(ctx, path, sessionOptions{Container: config.DefaultContainer, Index: 2}); err == nil {
		t.Error("out-of-range index accepted")
	}
	if _, err := openSession(ctx, filepath.Join(t.TempDir(), "missing.html"), sessionOptions{Container: "x"}); err == nil {
		t.Error("missing file accepted")
	}

	sel := selector.ModeSelect
	_, err = openSession(ctx, path, sessionOptions{Container: config.DefaultContainer, Index: 1, Mode: &sel})
	if !errors.Is(err, selector.ErrUnsupportedCombination) {
		t.Errorf("multiple + select mode err = %v", err)
	}
}

func TestClickCommand(t *testing.T) {
	path := writePage(t)
	out, err := run(t, "click", path, "Y", "--json")
	if err != nil {
		t.Fatalf("click failed: %v", err)
	}
	r := decode(t, out)
	if len(r.State.Selected) != 1 || r.State.Selected[0] != "Y" {
		t.Errorf("selected = %v, want [Y]", r.State.Selected)
	}
	if len(r.Events) != 1 || r.Events[0].TargetOption != "Y" {
		t.Errorf("events = %+v", r.Events)
	}

	if _, err := run(t, "click", path, "nope"); err == nil {
		t.Error("unknown option value accepted")
	}
}

func TestClickWritesHiddenInputs(t *testing.T) {
	path := writePage(t)
	dest := filepath.Join(t.TempDir(), "out.html")
	out, err := run(t, "click", path, "Z", "--html", "-o", dest, "--deferred")
	if err != nil {
		t.Fatalf("click failed: %v", err)
	}
	if !strings.Contains(out, `<input type="hidden" name="fruit" value="Z" form="order"/>`) {
		t.Errorf("rendered html missing hidden input:\n%s", out)
	}
	written, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(written) == "" || !strings.Contains(string(written), `value="Z"`) {
		t.Error("output file missing hidden input")
	}

	// Re-running on the written file replaces the input instead of adding one.
	out, err = run(t, "click", dest, "X", "--html")
	if err != nil {
		t.Fatalf("second click failed: %v", err)
	}
	if n := strings.Count(out, `type="hidden"`); n != 1 {
		t.Errorf("hidden inputs = %d, want 1:\n%s", n, out)
	}
}

func TestKeysCommand(t *testing.T) {
	path := writePage(t)
	out, err := run(t, "keys", path, "down", "down", "--mode", "select", "--json")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	r := decode(t, out)
	if r.State.Mode != "select" || r.State.FocusedIndex != 2 {
		t.Errorf("state = %+v", r.State)
	}
	if len(r.Events) != 2 || r.Events[1].TargetOption != "Z" {
		t.Errorf("events = %+v", r.Events)
	}
}

func TestSelectCommand(t *testing.T) {
	path := writePage(t)

	out, err := run(t, "select", path, "--index", "1", "--none", "--json")
	if err != nil {
		t.Fatalf("select --none failed: %v", err)
	}
	if r := decode(t, out); len(r.State.Selected) != 0 || len(r.Events) != 0 {
		t.Errorf("after --none: %+v", r)
	}

	out, err = run(t, "select", path, "--raw", `["Z","X"]`, "--json")
	if err != nil {
		t.Fatalf("select --raw failed: %v", err)
	}
	if r := decode(t, out); len(r.State.Selected) != 1 || r.State.Selected[0] != "Z" {
		t.Errorf("single select raw list = %v, want [Z]", r.State.Selected)
	}

	out, err = run(t, "select", path, "Y")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if !strings.Contains(out, "selected: [Y]") || !strings.Contains(out, "form values: [Y]") {
		t.Errorf("text output:\n%s", out)
	}
}

func TestStepCommand(t *testing.T) {
	path := writePage(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default forward", nil, "X"},
		{"forward count", []string{"2"}, "Y"},
		{"up", []string{"--up"}, "Z"},
		{"up count", []string{"2", "--up"}, "Y"},
		{"up wraps past start", []string{"4", "--up"}, "Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"step", path, "--json"}, tt.args...)
			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("step %v failed: %v", tt.args, err)
			}
			r := decode(t, out)
			if len(r.State.Selected) != 1 || r.State.Selected[0] != tt.want {
				t.Errorf("step %v selected = %v, want [%s]", tt.args, r.State.Selected, tt.want)
			}
			if len(r.Events) != 1 || r.Events[0].TargetOption != tt.want {
				t.Errorf("step %v events = %+v", tt.args, r.Events)
			}
		})
	}

	for _, bad := range []string{"0", "two", "-1"} {
		if _, err := run(t, "step", path, bad); err == nil {
			t.Errorf("step %q accepted", bad)
		}
	}
}

func TestActionCommands(t *testing.T) {
	path := writePage(t)

	out, err := run(t, "toggle", path, "1", "--index", "1", "--force=false", "--json")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if r := decode(t, out); len(r.State.Selected) != 1 || r.State.Selected[0] != "a" {
		t.Errorf("toggle off b = %v, want [a]", r.State.Selected)
	}

	out, err = run(t, "clear", path, "--index", "1", "--json")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if r := decode(t, out); len(r.State.Selected) != 0 {
		t.Errorf("clear = %v", r.State.Selected)
	}

	if _, err := run(t, "toggle", path, "one"); err == nil {
		t.Error("non-numeric index accepted")
	}
}

func TestEventLogAndHistory(t *testing.T) {
	path := writePage(t)
	logPath := filepath.Join(t.TempDir(), "events.db")

	if _, err := run(t, "click", path, "X", "Y", "--event-log", logPath); err != nil {
		t.Fatalf("click failed: %v", err)
	}

	out, err := run(t, "history", "--event-log", logPath, "--json")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	var entries []struct {
		Event  string          `json:"event"`
		Source string          `json:"source"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history entries = %d, want 2", len(entries))
	}
	if entries[0].Event != "select" || entries[0].Source != "page.html" {
		t.Errorf("entry = %+v", entries[0])
	}
	var newest selector.SelectEvent
	if err := json.Unmarshal(entries[0].Detail, &newest); err != nil {
		t.Fatalf("decode detail %s: %v", entries[0].Detail, err)
	}
	if newest.TargetOption != "Y" || len(newest.SelectedOptions) != 1 || newest.SelectedOptions[0] != "Y" {
		t.Errorf("newest detail = %+v, want target Y selected [Y]", newest)
	}
}

func TestInvalidModeAttribute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.html")
	os.WriteFile(path, []byte(`<option-selector keyboard-select-mode="spin"><i option="a"></i></option-selector>`), 0644)

	out, err := run(t, "inspect", path, "--json")
	if !errors.Is(err, selector.ErrInvalidKeyboardSelectMode) {
		t.Fatalf("err = %v, want invalid mode", err)
	}
	if !strings.Contains(out, `"code": "build_failed"`) {
		t.Errorf("json error output = %s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("")
	out, err := run(t, "version")
	if err != nil || strings.TrimSpace(out) != "optsel 1.2.3" {
		t.Errorf("version = %q, %v", out, err)
	}
}
