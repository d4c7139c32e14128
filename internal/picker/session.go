package picker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/contrastpick/internal/colour"
	"github.com/jmylchreest/contrastpick/internal/config"
	"github.com/jmylchreest/contrastpick/internal/util"
)

// Session holds the picker's view state: the current background and which
// algorithm picks the foreground. It is not safe for concurrent use.
type Session struct {
	background colour.RGB
	algorithm  colour.Algorithm
	renderer   Renderer
	text       string
	logger     hclog.Logger
}

// NewSession creates a session from cfg. The configured background must be a
// valid hex colour.
func NewSession(cfg config.Config, logger hclog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	bg, err := colour.ParseHex(util.NormaliseHex(cfg.Background))
	if err != nil {
		return nil, err
	}
	alg, err := colour.ParseAlgorithm(cfg.Algorithm.String())
	if err != nil {
		return nil, err
	}

	return &Session{
		background: bg,
		algorithm:  alg,
		renderer:   NewTerminalRenderer(cfg),
		text:       SampleText,
		logger:     logger.Named("session"),
	}, nil
}

// WithRenderer replaces the renderer used by Run.
func (s *Session) WithRenderer(r Renderer) *Session {
	s.renderer = r
	return s
}

// WithText replaces the sample text.
func (s *Session) WithText(text string) *Session {
	s.text = text
	return s
}

// Background returns the current background colour.
func (s *Session) Background() colour.RGB {
	return s.background
}

// Algorithm returns the active algorithm.
func (s *Session) Algorithm() colour.Algorithm {
	return s.algorithm
}

// SetBackground validates and applies a new background. On error the
// previous background is kept.
func (s *Session) SetBackground(hex string) error {
	bg, err := colour.ParseHex(util.NormaliseHex(hex))
	if err != nil {
		s.logger.Debug("rejected background", "input", hex, "error", err)
		return err
	}

	s.logger.Debug("background changed", "from", s.background.Hex(), "to", bg.Hex())
	s.background = bg
	return nil
}

// Toggle switches between the simple and W3C algorithms and returns the new one.
func (s *Session) Toggle() colour.Algorithm {
	s.algorithm = s.algorithm.Toggle()
	s.logger.Debug("algorithm toggled", "algorithm", s.algorithm)
	return s.algorithm
}

// ToggleLabel returns the caption of the control that switches algorithm.
func (s *Session) ToggleLabel() string {
	if s.algorithm == colour.AlgorithmSimple {
		return "Use W3C algorithm"
	}
	return "Use simple algorithm"
}

// View computes the current frame.
func (s *Session) View() (View, error) {
	return NewView(s.background, s.algorithm)
}

// Render draws the current frame to w.
func (s *Session) Render(w io.Writer) error {
	v, err := s.View()
	if err != nil {
		return err
	}
	return s.renderer.Render(w, v, s.text)
}

const helpText = `Commands:
  <hex>          set the background (#RGB or #RRGGBB)
  t, toggle      switch between the simple and W3C algorithms
  ?, help        show this help
  q, quit        exit
`

// Run reads commands from in, one per line, and redraws the preview to out
// after every change. It returns nil on EOF or quit, and ctx.Err() if the
// context is cancelled first.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	if err := s.redraw(out); err != nil {
		return err
	}

	for {
		if _, err := fmt.Fprintf(out, "[%s] > ", s.ToggleLabel()); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			fmt.Fprintln(out)
			select {
			case err := <-scanErr:
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			default:
			}
			return nil
		}

		quit, err := s.handle(strings.TrimSpace(line), out)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handle applies one command. It reports whether the session should end.
func (s *Session) handle(cmd string, out io.Writer) (bool, error) {
	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "?", "h", "help":
		_, err := io.WriteString(out, helpText)
		return false, err
	case "t", "toggle":
		s.Toggle()
		return false, s.redraw(out)
	}

	if err := s.SetBackground(cmd); err != nil {
		_, werr := fmt.Fprintf(out, "%s %v\n", color.RedString("error:"), err)
		return false, werr
	}
	return false, s.redraw(out)
}

func (s *Session) redraw(out io.Writer) error {
	if err := s.Render(out); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}
