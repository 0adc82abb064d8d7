package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/optsel/internal/dom"
	"github.com/marcus/optsel/internal/eventlog"
	"github.com/marcus/optsel/internal/host"
	"github.com/marcus/optsel/internal/output"
	"github.com/marcus/optsel/internal/selector"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var modeOverride modeFlag

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("container", "", "CSS selector of the widget host element (default from config, else option-selector)")
	flags.Int("index", 0, "Which matching container to use when several match")
	flags.Var(&modeOverride, "mode", "Override keyboard-select-mode: none, focus, select")
	flags.Bool("deferred", false, "Queue DOM writes and apply them in one pass after each input")
	flags.String("event-log", "", "SQLite file that records fired select events")
	flags.Bool("html", false, "Print the resulting document instead of the widget state")
	flags.StringP("output", "o", "", "Write the resulting document to this file")
}

type sessionOptions struct {
	Container string
	Index     int
	Mode      *selector.KeyboardSelectMode
	Deferred  bool
	EventLog  string
}

// session is one widget built on a parsed file.
type session struct {
	ctx    context.Context
	path   string
	root   *html.Node
	doc    *host.Document
	widget *selector.Widget
	events []selector.SelectEvent
	log    *eventlog.Log
	unsub  []func()
}

func sessionOptionsFromFlags(cmd *cobra.Command) sessionOptions {
	opts := sessionOptions{
		Container: cfg.ContainerSelector(),
		Deferred:  cfg.DeferredMutations,
		EventLog:  cfg.EventLog,
	}
	if v, _ := cmd.Flags().GetString("container"); v != "" {
		opts.Container = v
	}
	opts.Index, _ = cmd.Flags().GetInt("index")
	if cmd.Flags().Changed("deferred") {
		opts.Deferred, _ = cmd.Flags().GetBool("deferred")
	}
	if v, _ := cmd.Flags().GetString("event-log"); v != "" {
		opts.EventLog = v
	}
	if modeOverride.set {
		m := modeOverride.mode
		opts.Mode = &m
	}
	if opts.EventLog != "" && !filepath.IsAbs(opts.EventLog) && getBaseDir() != "" {
		opts.EventLog = filepath.Join(getBaseDir(), opts.EventLog)
	}
	return opts
}

func openSession(ctx context.Context, path string, opts sessionOptions) (*session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	root, err := dom.Parse(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	containers := dom.FindAll(root, opts.Container)
	if opts.Index < 0 || opts.Index >= len(containers) {
		return nil, fmt.Errorf("no widget matching %q at index %d in %s (found %d)", opts.Container, opts.Index, path, len(containers))
	}
	el := containers[opts.Index]
	if opts.Mode != nil {
		dom.SetAttr(el, selector.AttrKeyboardSelectMode, opts.Mode.String())
	}

	logger := slog.Default().With("file", filepath.Base(path))
	doc := host.New(root, host.WithLogger(logger), host.WithDeferredMutations(opts.Deferred))
	s := &session{ctx: ctx, path: path, root: root, doc: doc}
	s.unsub = append(s.unsub, doc.Subscribe(s.collect))

	if opts.EventLog != "" {
		lg, err := eventlog.Open(opts.EventLog)
		if err != nil {
			s.close()
			return nil, err
		}
		s.log = lg
		s.unsub = append(s.unsub, doc.Subscribe(s.record))
	}

	w, err := selector.Build(el, doc, selector.WithLogger(logger))
	if err != nil {
		s.close()
		return nil, err
	}
	s.widget = w
	s.flush()
	return s, nil
}

func (s *session) collect(a host.Action) {
	if ev, ok := a.Detail.(selector.SelectEvent); ok && a.Event == selector.EventSelect {
		s.events = append(s.events, ev)
	}
}

func (s *session) record(a host.Action) {
	err := s.log.Record(s.ctx, a.ID, a.Event, describeNode(a.Target), filepath.Base(s.path), a.Detail, a.Time)
	if err != nil {
		slog.Warn("record action failed", "id", a.ID, "err", err)
	}
}

// flush applies queued writes after each simulated input.
func (s *session) flush() {
	if s.doc.Deferred() {
		s.doc.Flush()
	}
}

func (s *session) close() {
	for _, fn := range s.unsub {
		fn()
	}
	s.unsub = nil
	if s.widget != nil {
		s.widget.Destroy()
	}
	if s.log != nil {
		s.log.Close()
		s.log = nil
	}
}

// optionNode finds the option with the given value.
func (s *session) optionNode(value string) (*html.Node, error) {
	for _, o := range s.widget.Options() {
		if o.Value() == value {
			return o.Node(), nil
		}
	}
	return nil, fmt.Errorf("no option with value %q", value)
}

// report prints the outcome of a command and closes the session.
func (s *session) report(cmd *cobra.Command) error {
	defer s.close()
	s.flush()

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(dom.RenderString(s.root)), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if asHTML, _ := cmd.Flags().GetBool("html"); asHTML {
		fmt.Fprintln(output.Stdout, dom.RenderString(s.root))
		return nil
	}

	if jsonOutput(cmd) {
		events := s.events
		if events == nil {
			events = []selector.SelectEvent{}
		}
		return output.JSON(map[string]any{
			"state":  output.WidgetJSON(s.widget),
			"events": events,
		})
	}

	fmt.Fprint(output.Stdout, output.FormatState(s.widget))
	for _, ev := range s.events {
		fmt.Fprintf(output.Stdout, "event select: target=%s selected=[%s]\n", ev.TargetOption, strings.Join(ev.SelectedOptions, ", "))
	}
	return nil
}

func describeNode(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	if id, ok := dom.Attr(n, "id"); ok {
		return n.Data + "#" + id
	}
	return n.Data
}

// withSession opens the file named by args[0], runs fn and reports.
func withSession(cmd *cobra.Command, path string, fn func(*session) error) error {
	s, err := openSession(cmd.Context(), path, sessionOptionsFromFlags(cmd))
	if err != nil {
		reportError(cmd, "build_failed", err)
		return err
	}
	if fn != nil {
		if err := fn(s); err != nil {
			s.close()
			reportError(cmd, "input_failed", err)
			return err
		}
	}
	return s.report(cmd)
}

func reportError(cmd *cobra.Command, code string, err error) {
	if jsonOutput(cmd) {
		output.JSONError(code, err.Error())
		return
	}
	output.Error("%v", err)
}
