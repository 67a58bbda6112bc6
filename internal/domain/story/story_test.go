package story

import (
	stderrors "errors"
	"slices"
	"testing"

	"dyflissan/internal/errors"
)

func smallGraph() *Graph {
	g := NewGraph("door", "bad")
	g.AddNode(Node{ID: "door", Text: []string{"A door."}, Kind: PromptBinary})
	g.AddNode(Node{ID: "room", Text: []string{"A room."}, Kind: PromptMenu, Options: []string{"1", "2"}})
	g.AddEnding(Ending{ID: "home", Text: []string{"Home."}})
	g.AddEnding(Ending{ID: "gold", Text: []string{"Gold."}})
	g.AddEnding(Ending{ID: "bad", Text: []string{"Bad."}})

	g.Connect("door", TokenYes, Edge{To: ToNode("room")})
	g.Connect("door", TokenNo, Edge{To: ToEnding("home")})
	g.Connect("room", "1", Edge{To: ToEnding("gold")})
	g.Connect("room", "2", Edge{Text: []string{"Back out."}, To: ToNode("door")})
	return g
}

func TestValidateAcceptsWellFormedGraph(t *testing.T) {
	if err := smallGraph().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateMissingTransition(t *testing.T) {
	g := smallGraph()
	delete(g.Transitions, Key{From: "room", Token: "2"})

	err := g.Validate()
	if !stderrors.Is(err, errors.ErrNoTransition) {
		t.Fatalf("expected ErrNoTransition, got %v", err)
	}
}

func TestValidateDanglingTarget(t *testing.T) {
	g := smallGraph()
	g.Connect("room", "2", Edge{To: ToNode("attic")})

	err := g.Validate()
	if !stderrors.Is(err, errors.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestValidateUnreachableEnding(t *testing.T) {
	g := smallGraph()
	g.AddEnding(Ending{ID: "orphan"})

	err := g.Validate()
	if !stderrors.Is(err, errors.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestValidateClassNodeNeedsTransitions(t *testing.T) {
	g := smallGraph()
	g.AddNode(Node{ID: "fight", Kind: PromptClass})
	g.Connect("room", "1", Edge{To: ToNode("fight")})

	err := g.Validate()
	if !stderrors.Is(err, errors.ErrNoTransition) {
		t.Fatalf("expected ErrNoTransition, got %v", err)
	}
}

func TestReachableIncludesInvalidChoice(t *testing.T) {
	seen := smallGraph().Reachable()
	for _, target := range []Target{ToNode("door"), ToNode("room"), ToEnding("home"), ToEnding("gold"), ToEnding("bad")} {
		if !seen[target] {
			t.Fatalf("expected %s to be reachable", target)
		}
	}
}

func TestTokensSorted(t *testing.T) {
	got := smallGraph().Tokens("door")
	want := []string{TokenYes, TokenNo}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAccepts(t *testing.T) {
	menu := Node{Kind: PromptMenu, Options: []string{"1", "2", "3"}}
	if got := menu.Accepts(); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("expected menu options, got %v", got)
	}
	free := Node{Kind: PromptFree}
	if got := free.Accepts(); !slices.Equal(got, []string{TokenAny}) {
		t.Fatalf("expected wildcard, got %v", got)
	}
	class := Node{Kind: PromptClass}
	if got := class.Accepts(); got != nil {
		t.Fatalf("expected no accepted input for class node, got %v", got)
	}
}

func TestPromptTextDefault(t *testing.T) {
	n := Node{}
	if n.PromptText() != DefaultPrompt {
		t.Fatalf("expected default prompt, got %q", n.PromptText())
	}
	n.Prompt = "Name: "
	if n.PromptText() != "Name: " {
		t.Fatalf("expected custom prompt, got %q", n.PromptText())
	}
}
