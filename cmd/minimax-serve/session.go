package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/nudro/adversarial-mini-max-game/internal/core"
	"github.com/nudro/adversarial-mini-max-game/internal/sim"
)

// controlMsg is one inbound client command. Unused fields are zero.
type controlMsg struct {
	Type   string `json:"type"`
	Agent  string `json:"agent,omitempty"`
	Value  int    `json:"value,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// configFrame describes the landscape and its derived overlays. Sent on
// attach and again after every regeneration.
type configFrame struct {
	Type       string            `json:"type"`
	Session    string            `json:"session"`
	Cols       int               `json:"cols"`
	Rows       int               `json:"rows"`
	Resolution int               `json:"resolution"`
	Cells      []float64         `json:"cells"`
	Contours   []sim.Contour     `json:"contours"`
	Field      []sim.FieldSample `json:"field"`
}

// stateFrame carries the per-step simulation state.
type stateFrame struct {
	Type             string          `json:"type"`
	Iteration        int             `json:"iteration"`
	Defender         sim.Point       `json:"defender"`
	Adversary        sim.Point       `json:"adversary"`
	DefenderLoss     float64         `json:"defenderLoss"`
	AdversaryLoss    float64         `json:"adversaryLoss"`
	DefenderHistory  []sim.Point     `json:"defenderHistory"`
	AdversaryHistory []sim.Point     `json:"adversaryHistory"`
	LossHistory      sim.LossHistory `json:"lossHistory"`
}

// frameWriter is the outbound half of a client connection.
// *websocket.Conn satisfies it.
type frameWriter interface {
	WriteJSON(v interface{}) error
}

// session confines one world to one goroutine. Control messages arrive on
// ctrl; frames leave through out. Closing done stops the loop.
type session struct {
	id    uuid.UUID
	world *sim.World
	gate  *core.RateGate
	out   frameWriter
	ctrl  chan controlMsg
	done  chan struct{}

	paused  bool
	canvasW int
	canvasH int
}

func newSession(cfg sim.Config, speed int, out frameWriter) (*session, error) {
	world, err := sim.NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		id:      uuid.New(),
		world:   world,
		gate:    core.NewRateGate(speed),
		out:     out,
		ctrl:    make(chan controlMsg, 8),
		done:    make(chan struct{}),
		canvasW: cfg.Width,
		canvasH: cfg.Height,
	}, nil
}

// run drives the session until the connection drops or done closes. Steps
// are admitted by the rate gate, so a slow client sees fewer frames but
// never a backlog.
func (s *session) run() {
	if err := s.out.WriteJSON(s.buildConfigFrame()); err != nil {
		return
	}
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case msg := <-s.ctrl:
			if s.apply(msg) {
				if err := s.out.WriteJSON(s.buildConfigFrame()); err != nil {
					return
				}
			}
		case <-ticker.C:
			if s.paused || !s.gate.Allow() {
				continue
			}
			s.world.Step()
			if err := s.out.WriteJSON(s.buildStateFrame()); err != nil {
				return
			}
		}
	}
}

// apply executes one control message and reports whether the landscape
// changed, requiring a fresh config frame.
func (s *session) apply(msg controlMsg) bool {
	switch msg.Type {
	case "set_strength":
		key := "defense_strength"
		if msg.Agent == "adversary" {
			key = "attack_strength"
		}
		s.world.SetIntParameter(key, msg.Value)
	case "set_speed":
		if msg.Value > 0 {
			s.gate.SetRate(msg.Value)
		}
	case "pause":
		s.paused = true
	case "resume":
		s.paused = false
	case "reset":
		if err := s.world.Regenerate(s.canvasW, s.canvasH); err == nil {
			return true
		}
	case "resize":
		if err := s.world.Regenerate(msg.Width, msg.Height); err == nil {
			s.canvasW = msg.Width
			s.canvasH = msg.Height
			return true
		}
	}
	return false
}

func (s *session) buildConfigFrame() configFrame {
	g := s.world.Grid()
	return configFrame{
		Type:       "config",
		Session:    s.id.String(),
		Cols:       g.Cols,
		Rows:       g.Rows,
		Resolution: s.world.Config().Resolution,
		Cells:      g.Cells(),
		Contours:   s.world.Contours(),
		Field:      s.world.FieldVectors(),
	}
}

func (s *session) buildStateFrame() stateFrame {
	st := s.world.Snapshot()
	return stateFrame{
		Type:             "state",
		Iteration:        st.Iteration,
		Defender:         st.Defender,
		Adversary:        st.Adversary,
		DefenderLoss:     st.DefenderLoss,
		AdversaryLoss:    st.AdversaryLoss,
		DefenderHistory:  st.DefenderHistory,
		AdversaryHistory: st.AdversaryHistory,
		LossHistory:      st.LossHistory,
	}
}
