package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"companion.GO/core/cache"
	"companion.GO/core/errs"
	"companion.GO/core/logger"
	"companion.GO/service/catalog"
	"companion.GO/service/chat"
	"companion.GO/service/customization"
)

const (
	sessionPrefix = "session|"
	wizardSpace   = "wizard"
)

// Manager owns chat sessions and their customization wizards.
// Entries expire after TTL of inactivity; Sweep evicts them.
type Manager struct {
	store    *cache.Cache
	catalog  catalog.Provider
	options  customization.Source
	ttl      time.Duration
	thinkMin time.Duration
	thinkMax time.Duration
	delay    func() time.Duration
}

type Config struct {
	TTL      time.Duration
	ThinkMin time.Duration
	ThinkMax time.Duration
	// Delay overrides the think-time bounds (tests).
	Delay func() time.Duration
}

func NewManager(store *cache.Cache, provider catalog.Provider, options customization.Source, cfg Config) *Manager {
	if cfg.ThinkMin == 0 && cfg.ThinkMax == 0 {
		cfg.ThinkMin, cfg.ThinkMax = chat.DefaultThinkMin, chat.DefaultThinkMax
	}
	return &Manager{
		store:    store,
		catalog:  provider,
		options:  options,
		ttl:      cfg.TTL,
		thinkMin: cfg.ThinkMin,
		thinkMax: cfg.ThinkMax,
		delay:    cfg.Delay,
	}
}

func sessionKey(id string) string { return sessionPrefix + id }

func sessionTag(id string) string { return "session:" + id }

// wizardKey is the composite cache key of a wizard: wizard|<session>|<wizard>.
func wizardKey(sessionID, wizardID string) []interface{} {
	return []interface{}{wizardSpace, sessionID, wizardID}
}

// Catalog exposes the provider sessions are built from.
func (m *Manager) Catalog() catalog.Provider { return m.catalog }

// Create starts a session over the current catalog.
func (m *Manager) Create(ctx context.Context) (*chat.Session, error) {
	groups, err := m.catalog.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	id := uuid.NewString()
	opts := []chat.Option{chat.WithID(id), chat.WithThinkTime(m.thinkMin, m.thinkMax)}
	if m.delay != nil {
		opts = append(opts, chat.WithDelay(m.delay))
	}
	s := chat.NewSession(groups, opts...)
	m.store.Set(sessionKey(id), s, m.ttl, []string{sessionTag(id)})
	logger.L().Info("session created", zap.String("session_id", id))
	return s, nil
}

// Get returns a live session and extends its lifetime.
func (m *Manager) Get(id string) (*chat.Session, error) {
	v, ok := m.store.Get(sessionKey(id))
	if !ok {
		return nil, errs.NotFoundf("%s: %s", errs.ErrMsgSessionNotFound, id)
	}
	m.store.Touch(sessionKey(id))
	for _, k := range m.store.GetKeysByTag(sessionTag(id)) {
		m.store.Touch(k)
	}
	return v.(*chat.Session), nil
}

// Delete closes the session and drops its wizards.
func (m *Manager) Delete(id string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.Close()
	m.store.DeleteByTag(sessionTag(id))
	logger.L().Info("session deleted", zap.String("session_id", id))
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	return len(m.store.IterateFilter(func(key, _ interface{}) bool {
		k, ok := key.(string)
		return ok && strings.HasPrefix(k, sessionPrefix)
	}))
}

// Sweep evicts idle sessions with their wizards and returns how many sessions went.
func (m *Manager) Sweep() int {
	n := 0
	for key, v := range m.store.Sweep() {
		k, ok := key.(string)
		if !ok || !strings.HasPrefix(k, sessionPrefix) {
			continue
		}
		id := strings.TrimPrefix(k, sessionPrefix)
		if s, ok := v.(*chat.Session); ok {
			s.Close()
		}
		m.store.DeleteByTag(sessionTag(id))
		n++
	}
	if n > 0 {
		logger.L().Info("idle sessions swept", zap.Int("count", n))
	}
	return n
}

// WizardHandle pairs a wizard with its id.
type WizardHandle struct {
	ID     string
	Wizard *customization.Wizard
}

// StartWizard opens a customization wizard for productID inside the session.
func (m *Manager) StartWizard(ctx context.Context, sessionID, productID string) (WizardHandle, error) {
	if _, err := m.Get(sessionID); err != nil {
		return WizardHandle{}, err
	}
	if productID == "" {
		return WizardHandle{}, errs.Validation(errs.ErrMsgProductIDRequired)
	}
	product, err := m.catalog.Product(ctx, productID)
	if err != nil {
		return WizardHandle{}, err
	}
	pc, err := m.options.Customization(ctx, productID)
	if err != nil {
		return WizardHandle{}, err
	}
	h := WizardHandle{ID: uuid.NewString(), Wizard: customization.NewWizard(product, pc)}
	m.store.SetN(wizardKey(sessionID, h.ID), h.Wizard, m.ttl, []string{sessionTag(sessionID)})
	return h, nil
}

// Wizard returns an open wizard of the session.
func (m *Manager) Wizard(sessionID, wizardID string) (*customization.Wizard, error) {
	if _, err := m.Get(sessionID); err != nil {
		return nil, err
	}
	v, ok := m.store.GetN(wizardKey(sessionID, wizardID)...)
	if !ok {
		return nil, errs.NotFoundf("%s: %s", errs.ErrMsgWizardNotFound, wizardID)
	}
	return v.(*customization.Wizard), nil
}

// CompleteWizard finishes the wizard and discards it.
func (m *Manager) CompleteWizard(sessionID, wizardID string) (customization.CustomizedProduct, error) {
	w, err := m.Wizard(sessionID, wizardID)
	if err != nil {
		return customization.CustomizedProduct{}, err
	}
	out, err := w.Complete()
	if err != nil {
		return out, err
	}
	m.store.DeleteN(wizardKey(sessionID, wizardID)...)
	logger.L().Info("customization completed",
		zap.String("session_id", sessionID),
		zap.String("product_id", out.ProductID),
		zap.Float64("final_price", out.FinalPrice))
	return out, nil
}
