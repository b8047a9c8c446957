package finance

import (
	dErrors "promissa/pkg/domain-errors"
)

// Start is the questionnaire's entry node.
func Start() NodeID {
	return NodeEmploymentStatus
}

// Lookup returns the question for a node ID.
func Lookup(id NodeID) (Question, bool) {
	q, ok := questions[id]
	return q, ok
}

// Terminal returns the endpoint for a node ID.
func Terminal(id NodeID) (Endpoint, bool) {
	e, ok := endpoints[id]
	return e, ok
}

// IsTerminal reports whether the node is an endpoint.
func IsTerminal(id NodeID) bool {
	_, ok := endpoints[id]
	return ok
}

// Next resolves one transition. The answer must be one of the node's declared
// options; terminal nodes have no outgoing transitions.
func Next(id NodeID, answer string) (NodeID, error) {
	if IsTerminal(id) {
		return "", dErrors.New(dErrors.CodeTerminalNode, "node "+string(id)+" is terminal")
	}
	q, ok := questions[id]
	if !ok {
		return "", dErrors.New(dErrors.CodeUnknownNode, "unknown question node: "+string(id))
	}
	for _, opt := range q.Options {
		if opt.Answer == answer {
			return opt.Next, nil
		}
	}
	return "", dErrors.New(dErrors.CodeInvalidAnswer, "answer "+answer+" is not valid for node "+string(id))
}

// Walk replays a sequence of answers from the start node, returning the
// visited node IDs (start included). It stops at the first terminal node;
// surplus answers past a terminal are an error.
func Walk(answers []string) ([]NodeID, error) {
	node := Start()
	trace := []NodeID{node}
	for _, answer := range answers {
		next, err := Next(node, answer)
		if err != nil {
			return trace, err
		}
		trace = append(trace, next)
		node = next
	}
	return trace, nil
}

// Questions returns all question nodes, for validation and tooling.
func Questions() map[NodeID]Question {
	out := make(map[NodeID]Question, len(questions))
	for id, q := range questions {
		out[id] = q
	}
	return out
}

// Endpoints returns all terminal nodes, for validation and tooling.
func Endpoints() map[NodeID]Endpoint {
	out := make(map[NodeID]Endpoint, len(endpoints))
	for id, e := range endpoints {
		out[id] = e
	}
	return out
}
