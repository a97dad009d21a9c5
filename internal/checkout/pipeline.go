package checkout

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
	"github.com/saylla/ponto-eletronico-shop/internal/pricing"
)

// DefaultProcessingDelay mirrors the simulated payment authorization time.
const DefaultProcessingDelay = 2 * time.Second

// CartClearer empties a user's cart after a successful checkout.
type CartClearer interface {
	Clear(userID string)
}

// OrderCreator records the order produced by a successful checkout.
type OrderCreator interface {
	Create(order domain.Order)
}

// Config wires a Pipeline's collaborators. Zero values fall back to the
// production scheduler and delay.
type Config struct {
	Carts     CartClearer
	Orders    OrderCreator
	Scheduler Scheduler
	Delay     time.Duration

	// SimulateFailure, when set, makes the submitting phase fail with the
	// given error instead of succeeding. Testing extension only; the default
	// pipeline succeeds deterministically once validation passes.
	SimulateFailure error
}

// Pipeline drives one checkout attempt through
// IDLE -> VALIDATING -> SUBMITTING -> SUCCEEDED, with validation failures
// parking it in FAILED until the caller acknowledges. Re-entrant submits
// while a submission is in flight are ignored.
type Pipeline struct {
	mu      sync.Mutex
	status  domain.SubmissionStatus
	failure error

	userID string
	form   *Form
	cfg    Config
}

func NewPipeline(userID string, form *Form, cfg Config) *Pipeline {
	if cfg.Scheduler == nil {
		cfg.Scheduler = TimerScheduler{}
	}
	if cfg.Delay == 0 {
		cfg.Delay = DefaultProcessingDelay
	}
	return &Pipeline{
		status: domain.SubmissionIdle,
		userID: userID,
		form:   form,
		cfg:    cfg,
	}
}

// submission is the payload frozen at the moment validation passed, so the
// scheduled completion never observes later cart or form edits.
type submission struct {
	items    []domain.LineItem
	snapshot pricing.Snapshot
	address  domain.Address
	method   domain.PaymentMethod
}

// Submit runs validation and, when it passes, starts the simulated
// processing delay. The returned status is the one reached synchronously:
// SUBMITTING on success, FAILED with the validation error otherwise.
// Calls while not IDLE are no-ops returning the current status.
func (p *Pipeline) Submit(items []domain.LineItem, snapshot pricing.Snapshot) (domain.SubmissionStatus, error) {
	p.mu.Lock()

	if p.status != domain.SubmissionIdle {
		status, failure := p.status, p.failure
		p.mu.Unlock()
		return status, failure
	}

	p.status = domain.SubmissionValidating
	if err := p.form.Validate(); err != nil {
		p.status = domain.SubmissionFailed
		p.failure = err
		p.mu.Unlock()
		return domain.SubmissionFailed, err
	}

	p.status = domain.SubmissionSubmitting
	sub := submission{
		items:    items,
		snapshot: snapshot,
		address:  p.form.Address,
		method:   p.form.PaymentMethod,
	}
	p.mu.Unlock()

	// Scheduled outside the lock: a synchronous scheduler completes before
	// Submit returns, a timer-backed one resumes the pipeline exactly once
	// after the delay.
	p.cfg.Scheduler.Schedule(p.cfg.Delay, func() { p.complete(sub) })

	return domain.SubmissionSubmitting, nil
}

func (p *Pipeline) complete(sub submission) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != domain.SubmissionSubmitting {
		return
	}

	if p.cfg.SimulateFailure != nil {
		p.status = domain.SubmissionFailed
		p.failure = p.cfg.SimulateFailure
		return
	}

	if !domain.CanTransitionTo(p.status, domain.SubmissionSucceeded) {
		return
	}

	order := domain.Order{
		ID:            uuid.New().String(),
		Items:         sub.items,
		Subtotal:      sub.snapshot.Subtotal,
		Shipping:      sub.snapshot.Shipping,
		Total:         sub.snapshot.Total,
		Address:       sub.address,
		PaymentMethod: sub.method,
		Status:        domain.OrderStatusProcessing,
		CreatedAt:     time.Now(),
	}
	if p.cfg.Orders != nil {
		p.cfg.Orders.Create(order)
	}
	if p.cfg.Carts != nil {
		p.cfg.Carts.Clear(p.userID)
	}

	p.status = domain.SubmissionSucceeded
	log.Printf("checkout succeeded for user %s, order %s, total %s", p.userID, order.ID, order.Total)
}

// Status returns the current status and, when FAILED, the reason.
func (p *Pipeline) Status() (domain.SubmissionStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.failure
}

// Acknowledge returns a FAILED pipeline to IDLE so the user can correct the
// form and resubmit. No-op in any other state.
func (p *Pipeline) Acknowledge() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !domain.CanTransitionTo(p.status, domain.SubmissionIdle) {
		return
	}
	p.status = domain.SubmissionIdle
	p.failure = nil
}
