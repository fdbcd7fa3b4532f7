package handlers

import (
	"ecoleludique/internal/game"
	"ecoleludique/internal/service"
)

// View models sent to the client. Ground truth never leaves the server:
// item labels, expected pairs, accepted sentences and precomputed answers
// are stripped; validation happens on submit.

type itemView struct {
	ID      string `json:"id"`
	Display string `json:"display"`
}

type categoryView struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

type clockView struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type promptView struct {
	Kind       string         `json:"kind"`
	Theme      string         `json:"theme,omitempty"`
	Items      []itemView     `json:"items,omitempty"`
	Categories []categoryView `json:"categories,omitempty"`
	Right      []itemView     `json:"right,omitempty"`
	Order      string         `json:"order,omitempty"`
	Operator   string         `json:"operator,omitempty"`
	Clock      *clockView     `json:"clock,omitempty"`
	Sentence   string         `json:"sentence,omitempty"`
}

type pairView struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type stateView struct {
	SessionID string              `json:"sessionId"`
	Subject   string              `json:"subject"`
	Game      string              `json:"game"`
	Period    int                 `json:"period"`
	Phase     string              `json:"phase"`
	Feedback  string              `json:"feedback,omitempty"`
	Prompt    *promptView         `json:"prompt,omitempty"`
	Slots     map[string][]string `json:"slots,omitempty"`
	Texts     map[string]string   `json:"texts,omitempty"`
	Pairs     []pairView          `json:"pairs,omitempty"`
	Celebrate bool                `json:"celebrate,omitempty"`
}

func newPromptView(p *game.Prompt) *promptView {
	if p == nil {
		return nil
	}

	view := &promptView{
		Kind:     string(p.Kind),
		Theme:    p.Theme,
		Sentence: p.Sentence,
	}

	for _, it := range p.Items {
		view.Items = append(view.Items, itemView{ID: it.ID, Display: it.Display})
	}
	for _, cat := range p.Categories {
		view.Categories = append(view.Categories, categoryView{Name: cat.Name, Definition: cat.Definition})
	}

	switch p.Kind {
	case game.KindMatching:
		for _, it := range p.Right {
			view.Right = append(view.Right, itemView{ID: it.ID, Display: it.Display})
		}
	case game.KindOrdering:
		view.Order = string(p.Order)
	case game.KindArithmetic:
		// The operator is part of the displayed expression; the result is not.
		view.Operator = p.Answer.Operator
	case game.KindClock:
		// The client draws the clock face from the answer time; the typed
		// reading is validated server side.
		view.Clock = &clockView{Hours: p.Answer.Hours, Minutes: p.Answer.Minutes}
	}

	return view
}

func newStateView(v *service.PlayView) stateView {
	view := stateView{
		SessionID: v.SessionID,
		Subject:   v.Subject,
		Game:      v.GameID,
		Period:    v.Period,
		Phase:     string(v.State.Phase),
		Feedback:  v.State.Feedback,
		Prompt:    newPromptView(v.State.Prompt),
		Slots:     v.State.Slots,
		Texts:     v.State.Texts,
		Celebrate: v.Celebrate,
	}
	for _, p := range v.State.Pairs {
		view.Pairs = append(view.Pairs, pairView{Left: p.Left, Right: p.Right})
	}
	return view
}
