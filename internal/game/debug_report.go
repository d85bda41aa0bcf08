package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport renders a plain-text summary of the run plus the most recent
// events, suitable for pasting into a bug report.
func (s *Sim) DebugReport(lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = 40
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- PacSnake debug report ---\n")
	fmt.Fprintf(&b, "state=%s tick=%d t=%.2fs wave=%d score=%d lives=%d\n",
		s.State, s.Tick, s.Now, s.Wave, s.Player.Score, s.Player.Lives)
	fmt.Fprintf(&b, "mode=%s power=%.2f banner=%.2f items_left=%d trail_cells=%d trail_lifetime=%.2f\n",
		s.GhostMode, s.PowerTimer, s.BannerTimer, len(s.items), len(s.Trail.cells), TrailLifetime(s.Wave))
	fmt.Fprintf(&b, "player pos=(%.1f,%.1f) cell=%s dir=%s want=%s\n",
		s.Player.X, s.Player.Y, s.Player.Cell(), s.Player.Dir, s.Player.WantDir)

	for _, g := range s.Ghosts {
		fmt.Fprintf(&b, "ghost %-6s pos=(%.1f,%.1f) cell=%s dir=%s dead=%v exit=%.2f respawn=%.2f\n",
			g.Personality, g.X, g.Y, g.Cell(), g.Dir, g.Dead, g.ExitTimer, g.RespawnTimer)
	}

	b.WriteString("\n== recent events ==\n")
	tail := s.Events.Tail(lastEvents)
	if len(tail) == 0 {
		b.WriteString("(none)\n")
	}
	for _, e := range tail {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// CopyDebugReport puts the debug report on the system clipboard.
func (s *Sim) CopyDebugReport() error {
	return clipboard.WriteAll(s.DebugReport(40))
}
