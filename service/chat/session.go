package chat

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"companion.GO/core/errs"
	"companion.GO/core/logger"
	"companion.GO/service/cart"
	"companion.GO/service/catalog"
)

const (
	DefaultThinkMin = time.Second
	DefaultThinkMax = 2 * time.Second
)

// Session is one shopper's chat: history, typing state, selection and cart.
// All exported methods are safe for concurrent use; the delayed assistant reply
// runs on its own goroutine.
type Session struct {
	mu sync.Mutex

	id        string
	responder *Responder
	history   []Message
	selection *Selection
	cart      *cart.Store

	pending int
	idle    chan struct{} // closed while nothing is pending
	last    chan struct{} // closed once the latest reply is appended

	cartOpen         bool
	checkoutComplete bool
	closed           bool

	delay func() time.Duration
	log   *zap.Logger
}

type Option func(*Session)

// WithDelay overrides the think-time source.
func WithDelay(fn func() time.Duration) Option {
	return func(s *Session) { s.delay = fn }
}

// WithThinkTime draws think-time uniformly from [min, max).
func WithThinkTime(min, max time.Duration) Option {
	return func(s *Session) { s.delay = uniformDelay(min, max) }
}

func WithCart(c *cart.Store) Option {
	return func(s *Session) { s.cart = c }
}

func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

func uniformDelay(min, max time.Duration) func() time.Duration {
	return func() time.Duration {
		if max <= min {
			return min
		}
		return min + rand.N(max-min)
	}
}

func closedChan() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}

// NewSession seeds the history with the two scripted greetings.
func NewSession(groups map[string]catalog.RecommendationGroup, opts ...Option) *Session {
	s := &Session{
		responder: NewResponder(groups),
		selection: NewSelection(),
		idle:      closedChan(),
		last:      closedChan(),
		delay:     uniformDelay(DefaultThinkMin, DefaultThinkMax),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cart == nil {
		s.cart = cart.NewStore()
	}
	s.log = logger.L().With(zap.String("session_id", s.id))
	s.history = []Message{
		{
			Role:            RoleAssistant,
			Content:         ReplyGreeting,
			Recommendations: s.responder.pick(catalog.GroupNecklaces, catalog.GroupEarrings),
		},
		{
			Role:            RoleAssistant,
			Content:         ReplyBraceletSuggestion,
			Recommendations: s.responder.pick(catalog.GroupBracelets),
		},
	}
	return s
}

func (s *Session) ID() string { return s.id }

// Submit appends the user message now and the assistant reply after the think delay.
// Blank text is ignored and yields a nil channel. The returned channel receives the
// reply once it is in the history. Replies land in call order.
func (s *Session) Submit(text string) <-chan Message {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	resp := s.responder.Respond(trimmed)

	s.mu.Lock()
	s.history = append(s.history, Message{Role: RoleUser, Content: text})
	if s.pending == 0 {
		s.idle = make(chan struct{})
	}
	s.pending++
	prev := s.last
	mine := make(chan struct{})
	s.last = mine
	delay := s.delay()
	s.mu.Unlock()

	s.log.Debug("message submitted", zap.String("intent", string(resp.Intent)), zap.Duration("delay", delay))

	out := make(chan Message, 1)
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		<-timer.C
		<-prev

		msg := Message{Role: RoleAssistant, Content: resp.Content, Recommendations: resp.Recommendations}
		s.mu.Lock()
		s.history = append(s.history, msg)
		s.pending--
		if s.pending == 0 {
			close(s.idle)
		}
		s.mu.Unlock()
		close(mine)

		out <- msg
		close(out)
	}()
	return out
}

// Wait blocks until every pending reply has been appended or ctx ends.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

// History returns a copy of the messages.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.history...)
}

// Group addresses a recommendation group by message and group index.
func (s *Session) Group(message, group int) (catalog.RecommendationGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message < 0 || message >= len(s.history) {
		return catalog.RecommendationGroup{}, errs.NotFoundf("%s: message %d", errs.ErrMsgGroupNotFound, message)
	}
	recs := s.history[message].Recommendations
	if group < 0 || group >= len(recs) {
		return catalog.RecommendationGroup{}, errs.NotFoundf("%s: message %d group %d", errs.ErrMsgGroupNotFound, message, group)
	}
	return recs[group], nil
}

func (s *Session) ToggleProductSelection(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Toggle(productID)
}

func (s *Session) ToggleSelectAllInGroup(group catalog.RecommendationGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.ToggleAll(group.Products)
}

func (s *Session) IsSelected(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IsSelected(productID)
}

func (s *Session) AllSelected(group catalog.RecommendationGroup) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.AllSelected(group.Products)
}

// Selected returns the checked product ids.
func (s *Session) Selected() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Snapshot()
}

// AddSelectedToCart moves the checked products of group into the cart, one unit each.
// It returns true (open the cart) when anything was added; with nothing checked in
// the group, neither cart nor selection change. An invalid product fails the whole
// add, leaving cart, selection and cart visibility untouched.
func (s *Session) AddSelectedToCart(group catalog.RecommendationGroup) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	picked := s.selection.SelectedIn(group.Products)
	if len(picked) == 0 {
		return false, nil
	}
	if err := s.cart.AddAll(picked, 1); err != nil {
		return false, err
	}
	s.selection.Clear()
	s.openCartLocked()
	s.log.Info("added selection to cart", zap.String("group", group.Key), zap.Int("products", len(picked)))
	return true, nil
}

func (s *Session) Cart() *cart.Store { return s.cart }

func (s *Session) openCartLocked() {
	s.cartOpen = true
	s.checkoutComplete = false
}

// OpenCart shows the smart cart and resets a previous checkout confirmation.
func (s *Session) OpenCart() {
	s.mu.Lock()
	s.openCartLocked()
	s.mu.Unlock()
}

func (s *Session) CloseCart() {
	s.mu.Lock()
	s.cartOpen = false
	s.mu.Unlock()
}

// CheckoutSummary is the result of the simulated checkout.
type CheckoutSummary struct {
	Items    []cart.LineItem `json:"items"`
	Count    int             `json:"count"`
	Subtotal float64         `json:"subtotal"`
}

// Checkout simulates moving the cart to the storefront. No order is placed and the
// cart is kept.
func (s *Session) Checkout() (CheckoutSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Len() == 0 {
		return CheckoutSummary{}, errs.Validation(errs.ErrMsgCartEmpty)
	}
	s.checkoutComplete = true
	sum := CheckoutSummary{Items: s.cart.Items(), Count: s.cart.Count(), Subtotal: s.cart.Subtotal()}
	s.log.Info("checkout simulated", zap.Int("items", sum.Count), zap.Float64("subtotal", sum.Subtotal))
	return sum, nil
}

// Close hides the chat. Pending replies still land in the history.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.cartOpen = false
	s.mu.Unlock()
}

// State is a point-in-time view for hosts.
type State struct {
	ID               string          `json:"id"`
	Messages         []Message       `json:"messages"`
	Typing           bool            `json:"typing"`
	Selected         map[string]bool `json:"selected"`
	Cart             []cart.LineItem `json:"cart"`
	Subtotal         float64         `json:"subtotal"`
	CartOpen         bool            `json:"cart_open"`
	CheckoutComplete bool            `json:"checkout_complete"`
	Closed           bool            `json:"closed"`
	Suggestions      []Suggestion    `json:"suggestions"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:               s.id,
		Messages:         append([]Message(nil), s.history...),
		Typing:           s.pending > 0,
		Selected:         s.selection.Snapshot(),
		Cart:             s.cart.Items(),
		Subtotal:         s.cart.Subtotal(),
		CartOpen:         s.cartOpen,
		CheckoutComplete: s.checkoutComplete,
		Closed:           s.closed,
		Suggestions:      Suggestions(),
	}
}
