// Package session tracks one interactive play session: the running game,
// pause state, pacing and scores.
package session

import (
	"fmt"
	"time"

	"gioui.org/io/key"
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/snake"
)

// maxCatchUp bounds how many steps one frame may take after a stall.
const maxCatchUp = 3

// Options configures a session.
type Options struct {
	Size   board.Size
	Tick   time.Duration
	Seed   uint64
	Logger *log.Logger
	// OnNewGame is called with every game the session starts, including
	// the first one.
	OnNewGame func(*snake.Game)
}

// Session is driven from the window event goroutine only.
type Session struct {
	opts Options

	game   *snake.Game
	games  int
	paused bool
	last   time.Time
	best   int

	logs     []string
	logLimit int
}

// New starts the first game.
func New(opts Options) (*Session, error) {
	if opts.Tick <= 0 {
		return nil, fmt.Errorf("tick must be positive, got %s", opts.Tick)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &Session{opts: opts, logLimit: 50}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Game returns the current game.
func (s *Session) Game() *snake.Game {
	return s.game
}

// Restart replaces the game with a fresh one. Each restart derives a new
// seed so consecutive games differ.
func (s *Session) Restart() error {
	g, err := snake.New(s.opts.Size, snake.WithSeed(s.opts.Seed+uint64(s.games)))
	if err != nil {
		return fmt.Errorf("starting game: %w", err)
	}
	s.games++
	s.game = g
	s.paused = false
	s.last = time.Time{}
	s.appendLog("game %d started on %s", s.games, s.opts.Size)
	if s.opts.OnNewGame != nil {
		s.opts.OnNewGame(g)
	}
	return nil
}

// TogglePause pauses or resumes a running game.
func (s *Session) TogglePause() {
	if s.game.Over() {
		return
	}
	s.paused = !s.paused
	s.last = time.Time{}
}

// Paused reports whether stepping is suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// Advance steps the game for the time elapsed since the previous step and
// returns the number of steps taken. The first call after a start or
// resume only records now.
func (s *Session) Advance(now time.Time) int {
	if s.paused || s.game.Over() {
		return 0
	}
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	steps := 0
	for now.Sub(s.last) >= s.opts.Tick && steps < maxCatchUp {
		s.last = s.last.Add(s.opts.Tick)
		steps++
		state, err := s.game.Step()
		if err != nil {
			break
		}
		if state == snake.StateAte {
			s.opts.Logger.Debug("food eaten", "score", s.game.Score(), "len", s.game.Len())
		}
		if state == snake.StateOver {
			s.finish()
			break
		}
	}
	if now.Sub(s.last) >= s.opts.Tick {
		s.last = now
	}
	return steps
}

func (s *Session) finish() {
	score := s.game.Score()
	if score > s.best {
		s.best = score
	}
	s.appendLog("game %d over, score %d", s.games, score)
	s.opts.Logger.Info("game over", "game", s.games, "score", score, "best", s.best)
}

// HandleKey consumes the session keys: space pauses, R restarts.
func (s *Session) HandleKey(name key.Name) (bool, error) {
	switch name {
	case key.NameSpace:
		s.TogglePause()
		return true, nil
	case "R":
		return true, s.Restart()
	}
	return false, nil
}

// Best returns the highest score of this session.
func (s *Session) Best() int {
	return s.best
}

// Status is a one-line summary for the window overlay.
func (s *Session) Status() string {
	switch {
	case s.game.Over():
		return fmt.Sprintf("Game over: %d (best %d). R to restart", s.game.Score(), s.best)
	case s.paused:
		return fmt.Sprintf("Paused: %d. Space to resume", s.game.Score())
	default:
		return fmt.Sprintf("Score %d  Best %d", s.game.Score(), s.best)
	}
}

func (s *Session) appendLog(format string, args ...any) {
	s.logs = append(s.logs, fmt.Sprintf(format, args...))
	if len(s.logs) > s.logLimit {
		s.logs = s.logs[len(s.logs)-s.logLimit:]
	}
}

// Logs returns a copy of the session history, oldest first.
func (s *Session) Logs() []string {
	out := make([]string, len(s.logs))
	copy(out, s.logs)
	return out
}
