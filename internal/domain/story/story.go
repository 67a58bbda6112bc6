package story

import (
	"fmt"
	"slices"

	"dyflissan/internal/errors"
)

type NodeID string

type PromptKind int

const (
	// PromptFree accepts any line.
	PromptFree PromptKind = iota
	// PromptBinary is a J/N question.
	PromptBinary
	// PromptMenu requires one of Node.Options verbatim.
	PromptMenu
	// PromptClass reads no input, the player's class is the token.
	PromptClass
)

type Capture int

const (
	CaptureNone Capture = iota
	CaptureName
	CaptureClass
)

const (
	TokenAny = "*"
	TokenYes = "j"
	TokenNo  = "n"

	DefaultPrompt = "> "
)

type Node struct {
	ID      NodeID
	Text    []string
	Prompt  string
	Kind    PromptKind
	Options []string
	Capture Capture
	// Arms marks combat nodes: entering one equips the class weapon.
	Arms bool
}

// Accepts lists the tokens that must have a transition out of the node.
func (n *Node) Accepts() []string {
	switch n.Kind {
	case PromptFree:
		return []string{TokenAny}
	case PromptBinary:
		return []string{TokenYes, TokenNo}
	case PromptMenu:
		return n.Options
	}
	return nil
}

func (n *Node) PromptText() string {
	if n.Prompt == "" {
		return DefaultPrompt
	}
	return n.Prompt
}

type Ending struct {
	ID   NodeID
	Text []string
}

type TargetKind int

const (
	TargetNode TargetKind = iota
	TargetEnding
)

// Target is either a Node or an Ending.
type Target struct {
	Kind TargetKind
	ID   NodeID
}

func ToNode(id NodeID) Target {
	return Target{Kind: TargetNode, ID: id}
}

func ToEnding(id NodeID) Target {
	return Target{Kind: TargetEnding, ID: id}
}

func (t Target) IsEnding() bool {
	return t.Kind == TargetEnding
}

func (t Target) String() string {
	if t.IsEnding() {
		return "ending:" + string(t.ID)
	}
	return "node:" + string(t.ID)
}

// Edge is one transition. Text is printed while moving to To.
type Edge struct {
	Text []string
	To   Target
}

type Key struct {
	From  NodeID
	Token string
}

type Graph struct {
	Start         NodeID
	InvalidChoice NodeID
	Nodes         map[NodeID]*Node
	Endings       map[NodeID]*Ending
	Transitions   map[Key]Edge
}

func NewGraph(start, invalidChoice NodeID) *Graph {
	return &Graph{
		Start:         start,
		InvalidChoice: invalidChoice,
		Nodes:         make(map[NodeID]*Node),
		Endings:       make(map[NodeID]*Ending),
		Transitions:   make(map[Key]Edge),
	}
}

func (g *Graph) AddNode(n Node) {
	g.Nodes[n.ID] = &n
}

func (g *Graph) AddEnding(e Ending) {
	g.Endings[e.ID] = &e
}

func (g *Graph) Connect(from NodeID, token string, edge Edge) {
	g.Transitions[Key{From: from, Token: token}] = edge
}

func (g *Graph) Node(id NodeID) (*Node, error) {
	n, ok := g.Nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %q: %w", id, errors.ErrNodeNotFound)
	}
	return n, nil
}

func (g *Graph) Ending(id NodeID) (*Ending, error) {
	e, ok := g.Endings[id]
	if !ok {
		return nil, fmt.Errorf("ending %q: %w", id, errors.ErrEndingNotFound)
	}
	return e, nil
}

func (g *Graph) Next(from NodeID, token string) (Edge, bool) {
	edge, ok := g.Transitions[Key{From: from, Token: token}]
	return edge, ok
}

func (g *Graph) Entry() Target {
	return ToNode(g.Start)
}

// Invalid is the edge taken on any unrecognized input.
func (g *Graph) Invalid() Edge {
	return Edge{To: ToEnding(g.InvalidChoice)}
}

// Tokens returns the tokens with a transition out of id, sorted.
func (g *Graph) Tokens(id NodeID) []string {
	var tokens []string
	for key := range g.Transitions {
		if key.From == id {
			tokens = append(tokens, key.Token)
		}
	}
	slices.Sort(tokens)
	return tokens
}

// Successors lists the edges out of id in token order.
func (g *Graph) Successors(id NodeID) []Edge {
	tokens := g.Tokens(id)
	edges := make([]Edge, 0, len(tokens))
	for _, token := range tokens {
		edges = append(edges, g.Transitions[Key{From: id, Token: token}])
	}
	return edges
}

// Reachable walks the graph from Start. The invalid-choice ending counts as
// reachable from every node that reads input.
func (g *Graph) Reachable() map[Target]bool {
	seen := map[Target]bool{}
	queue := []Target{ToNode(g.Start)}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if seen[t] {
			continue
		}
		seen[t] = true
		if t.IsEnding() {
			continue
		}
		if n, ok := g.Nodes[t.ID]; ok && n.Kind != PromptFree {
			queue = append(queue, g.Invalid().To)
		}
		for _, edge := range g.Successors(t.ID) {
			queue = append(queue, edge.To)
		}
	}
	return seen
}

// Validate checks that every accepted token has a transition, every
// transition lands on something that exists, and nothing is unreachable.
func (g *Graph) Validate() error {
	if _, err := g.Node(g.Start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if _, err := g.Ending(g.InvalidChoice); err != nil {
		return fmt.Errorf("invalid choice: %w", err)
	}

	for _, id := range g.sortedNodeIDs() {
		n := g.Nodes[id]
		for _, token := range n.Accepts() {
			if _, ok := g.Next(id, token); !ok {
				return fmt.Errorf("node %q token %q: %w", id, token, errors.ErrNoTransition)
			}
		}
		if n.Kind == PromptClass && len(g.Tokens(id)) == 0 {
			return fmt.Errorf("class node %q: %w", id, errors.ErrNoTransition)
		}
	}

	for key, edge := range g.Transitions {
		if _, err := g.Node(key.From); err != nil {
			return fmt.Errorf("transition from %q: %w", key.From, err)
		}
		if err := g.exists(edge.To); err != nil {
			return fmt.Errorf("transition %q/%q: %w", key.From, key.Token, err)
		}
	}

	reachable := g.Reachable()
	for _, id := range g.sortedNodeIDs() {
		if !reachable[ToNode(id)] {
			return fmt.Errorf("node %q: %w", id, errors.ErrUnreachable)
		}
	}
	for id := range g.Endings {
		if !reachable[ToEnding(id)] {
			return fmt.Errorf("ending %q: %w", id, errors.ErrUnreachable)
		}
	}
	return nil
}

func (g *Graph) exists(t Target) error {
	if t.IsEnding() {
		_, err := g.Ending(t.ID)
		return err
	}
	_, err := g.Node(t.ID)
	return err
}

func (g *Graph) sortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
