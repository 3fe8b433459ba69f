package game

import (
	"crypto-snake/game/types"
)

type drawCmd struct {
	op    string
	x, y  int
	w, h  int
	text  string
	color types.Color
}

// recordingSurface keeps the commands of the last frame
type recordingSurface struct {
	width, height int
	cmds          []drawCmd
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Clear(c types.Color) {
	s.cmds = []drawCmd{{op: "clear", color: c}}
}

func (s *recordingSurface) FillRect(x, y, w, h int, c types.Color) {
	s.cmds = append(s.cmds, drawCmd{op: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (s *recordingSurface) FillCircle(cx, cy, r int, c types.Color) {
	s.cmds = append(s.cmds, drawCmd{op: "circle", x: cx, y: cy, w: r, color: c})
}

func (s *recordingSurface) DrawText(text string, cx, cy, size int, c types.Color) {
	s.cmds = append(s.cmds, drawCmd{op: "text", x: cx, y: cy, h: size, text: text, color: c})
}

func (s *recordingSurface) texts() []string {
	var out []string
	for _, c := range s.cmds {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

type recordingDisplay struct {
	score, coins int
}

func (d *recordingDisplay) SetScore(score int) { d.score = score }
func (d *recordingDisplay) SetCoinsEaten(count int) { d.coins = count }

type recordingListener struct {
	coins []Event
	overs []Event
}

func (l *recordingListener) CoinEaten(ev Event) { l.coins = append(l.coins, ev) }
func (l *recordingListener) GameOver(ev Event) { l.overs = append(l.overs, ev) }
