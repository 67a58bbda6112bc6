package narrative

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"dyflissan/internal/domain/player"
	"dyflissan/internal/domain/story"
	"dyflissan/internal/errors"
)

type StoryStore interface {
	Entry() story.Target
	Node(id story.NodeID) (*story.Node, error)
	Ending(id story.NodeID) (*story.Ending, error)
	Next(from story.NodeID, token string) (story.Edge, bool)
	Invalid() story.Edge
}

// Scene is what the player sees after one step: the lines to print, where
// the session now stands and, unless it ended, the prompt to show.
type Scene struct {
	Lines  []string
	At     story.Target
	Prompt string
}

func (s Scene) Ended() bool {
	return s.At.IsEnding()
}

type Engine struct {
	store StoryStore
	log   *zap.SugaredLogger
}

func NewEngine(store StoryStore, log *zap.SugaredLogger) *Engine {
	return &Engine{store: store, log: log}
}

func (e *Engine) Begin(state *player.State) (Scene, error) {
	return e.enter(state, nil, e.store.Entry())
}

// Choose applies input at the node the session stands on. Input the node
// does not accept moves the session to the invalid-choice ending; the scene
// for that ending is returned along with a wrapped ErrInvalidChoice.
func (e *Engine) Choose(state *player.State, at story.Target, input string) (Scene, error) {
	if at.IsEnding() {
		return Scene{}, fmt.Errorf("%s: %w", at, errors.ErrSessionOver)
	}
	n, err := e.store.Node(at.ID)
	if err != nil {
		return Scene{}, err
	}

	token, ok := Normalize(n, input)
	var edge story.Edge
	if ok {
		edge, ok = e.store.Next(n.ID, token)
	}
	if !ok {
		e.log.Infow("invalid choice", "session", state.SessionID, "node", n.ID, "input", input)
		scene, err := e.enter(state, nil, e.store.Invalid().To)
		if err != nil {
			return Scene{}, err
		}
		return scene, fmt.Errorf("node %q input %q: %w", n.ID, input, errors.ErrInvalidChoice)
	}

	capture(state, n, input, token)
	e.log.Debugw("transition", "session", state.SessionID, "from", n.ID, "token", token, "to", edge.To.String())

	return e.enter(state, Render(state, edge.Text), edge.To)
}

// enter moves the session onto to, resolving class nodes on the way, and
// collects the text the player sees.
func (e *Engine) enter(state *player.State, lines []string, to story.Target) (Scene, error) {
	for {
		state.Visit(to.String())

		if to.IsEnding() {
			ending, err := e.store.Ending(to.ID)
			if err != nil {
				return Scene{}, err
			}
			e.log.Debugw("ending reached", "session", state.SessionID, "ending", ending.ID)
			return Scene{Lines: append(lines, Render(state, ending.Text)...), At: to}, nil
		}

		n, err := e.store.Node(to.ID)
		if err != nil {
			return Scene{}, err
		}
		if n.Arms && state.Arm() {
			e.log.Debugw("armed", "session", state.SessionID, "class", state.Class.String(), "weapon", state.Weapon)
		}

		if n.Kind != story.PromptClass {
			return Scene{
				Lines:  append(lines, Render(state, n.Text)...),
				At:     to,
				Prompt: n.PromptText(),
			}, nil
		}

		edge, ok := e.store.Next(n.ID, state.Class.String())
		if !ok {
			e.log.Infow("no outcome for class", "session", state.SessionID, "node", n.ID, "class", state.Class.String())
			scene, err := e.enter(state, lines, e.store.Invalid().To)
			if err != nil {
				return Scene{}, err
			}
			return scene, fmt.Errorf("node %q class %q: %w", n.ID, state.Class.String(), errors.ErrInvalidChoice)
		}
		lines = append(lines, Render(state, edge.Text)...)
		to = edge.To
	}
}

func capture(state *player.State, n *story.Node, input, token string) {
	switch n.Capture {
	case story.CaptureName:
		state.Name = strings.TrimSpace(input)
	case story.CaptureClass:
		if class, ok := player.ParseClass(token); ok {
			state.Class = class
		}
	}
}

// Render fills the {name}, {class} and {weapon} placeholders. It only reads
// state.
func Render(state *player.State, text []string) []string {
	r := strings.NewReplacer(
		"{name}", state.Name,
		"{class}", state.Class.Title(),
		"{weapon}", state.Weapon,
	)
	out := make([]string, 0, len(text))
	for _, line := range text {
		out = append(out, r.Replace(line))
	}
	return out
}
