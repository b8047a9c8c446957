package service

import (
	"context"

	"promissa/internal/finance"
	"promissa/internal/intake/models"
	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

// financeAnswersKey stores the applicant's decision-tree answers, in order.
// The current node is always recomputed by replaying them from the root, so
// the stored state can never disagree with the tree.
const financeAnswersKey = "financeAnswers"

// FinanceView is the applicant's current position in the financial-support
// decision tree: either a question to answer or the endpoint they reached.
type FinanceView struct {
	Node     finance.NodeID    `json:"node"`
	Question *finance.Question `json:"question,omitempty"`
	Endpoint *finance.Endpoint `json:"endpoint,omitempty"`
	Answers  []string          `json:"answers"`
	Terminal bool              `json:"terminal"`
}

// FinanceState reports the session's current decision-tree position.
func (s *Service) FinanceState(ctx context.Context, sessionID id.SessionID) (*FinanceView, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	answers := financeAnswers(sess.Answers)
	return financeView(answers)
}

// FinanceAnswer advances the decision tree by one answer.
func (s *Service) FinanceAnswer(ctx context.Context, sessionID id.SessionID, answer string) (*FinanceView, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	answers := append(financeAnswers(sess.Answers), answer)
	view, err := financeView(answers)
	if err != nil {
		return nil, err
	}

	sess.Answers.Set(financeAnswersKey, toAnySlice(answers))
	sess.Touch(s.now())
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist answer")
	}
	return view, nil
}

// FinanceBack rewinds the decision tree by one answer.
func (s *Service) FinanceBack(ctx context.Context, sessionID id.SessionID) (*FinanceView, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	answers := financeAnswers(sess.Answers)
	if len(answers) == 0 {
		return nil, dErrors.New(dErrors.CodeConflict, "already at the first question")
	}
	answers = answers[:len(answers)-1]

	view, err := financeView(answers)
	if err != nil {
		return nil, err
	}

	sess.Answers.Set(financeAnswersKey, toAnySlice(answers))
	sess.Touch(s.now())
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist answer")
	}
	return view, nil
}

// financeView replays the answers from the root and renders the node they
// land on.
func financeView(answers []string) (*FinanceView, error) {
	trail, err := finance.Walk(answers)
	if err != nil {
		return nil, err
	}
	node := trail[len(trail)-1]

	view := &FinanceView{Node: node, Answers: answers}
	if endpoint, ok := finance.Terminal(node); ok {
		view.Endpoint = &endpoint
		view.Terminal = true
		return view, nil
	}
	question, ok := finance.Lookup(node)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnknownNode, "decision tree is missing a node")
	}
	view.Question = &question
	return view, nil
}

func financeAnswers(ans models.Answers) []string {
	raw, ok := ans.Lookup(financeAnswersKey)
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
