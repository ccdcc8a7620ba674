package checkout

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoFreightSelected = errors.New("no freight quote selected")
)

// CartProvider is the read/clear view of the externally-owned cart.
type CartProvider interface {
	Items() []CartItem
	Subtotal() decimal.Decimal
	Clear()
}

// SessionProvider exposes the signed-in user's profile, including the
// discount percentage applied at payment.
type SessionProvider interface {
	Profile() Profile
}

type PaymentOutcome int

const (
	PaymentCanceled PaymentOutcome = iota
	PaymentSucceeded
)

// PaymentCollaborator runs the actual payment flow and is the sole authority
// on whether a payment succeeded. Collect blocks until the user completes or
// closes the flow and reports the outcome exactly once.
type PaymentCollaborator interface {
	Collect(ctx context.Context, req PaymentRequest) (PaymentOutcome, error)
}

// Orchestrator drives one checkout session through shipping selection, review
// and payment. It owns only its transient state: the selected freight quote
// and whether the payment flow is showing. Cart and session are injected, and
// the cart total is always derived from them on read.
//
// Not safe for concurrent use; sessions get one Orchestrator each.
type Orchestrator struct {
	cart       CartProvider
	session    SessionProvider
	payment    PaymentCollaborator
	onComplete func()

	selected       *FreightQuote
	paymentVisible bool
}

func NewOrchestrator(cart CartProvider, session SessionProvider, payment PaymentCollaborator, onComplete func()) *Orchestrator {
	return &Orchestrator{
		cart:       cart,
		session:    session,
		payment:    payment,
		onComplete: onComplete,
	}
}

// SelectFreight records the quote the user picked; picking again replaces it.
func (o *Orchestrator) SelectFreight(q FreightQuote) {
	o.selected = &q
}

func (o *Orchestrator) ClearFreight() { o.selected = nil }

func (o *Orchestrator) SelectedFreight() *FreightQuote {
	if o.selected == nil {
		return nil
	}
	cp := *o.selected
	return &cp
}

func (o *Orchestrator) FreightCost() decimal.Decimal {
	if o.selected == nil {
		return decimal.Zero
	}
	return o.selected.CustomerRate
}

// Total is subtotal plus the selected quote's customer rate, recomputed on
// every read.
func (o *Orchestrator) Total() decimal.Decimal {
	return o.cart.Subtotal().Add(o.FreightCost())
}

// CanProceed reports whether the payment phase is reachable. The UI disables
// its proceed action on false.
func (o *Orchestrator) CanProceed() bool {
	return len(o.cart.Items()) > 0 && o.selected != nil
}

// BlockedReason returns the corrective message to show next to the disabled
// proceed action, or "" when proceeding is allowed or no message applies.
func (o *Orchestrator) BlockedReason() string {
	if len(o.cart.Items()) > 0 && o.selected == nil {
		return "Please select a shipping option before continuing"
	}
	return ""
}

func (o *Orchestrator) PaymentFlowVisible() bool { return o.paymentVisible }

// ProceedToPayment enters the payment phase and awaits the collaborator's
// outcome. The guard is enforced here, not only at display time, so a
// programmatic call cannot reach payment with an empty cart or no quote.
//
// Success clears the cart and fires the completion callback once; cancel and
// collaborator errors leave cart and freight selection untouched. Either way
// the payment flow is hidden again before returning.
func (o *Orchestrator) ProceedToPayment(ctx context.Context) (PaymentOutcome, error) {
	if len(o.cart.Items()) == 0 {
		return PaymentCanceled, ErrEmptyCart
	}
	if o.selected == nil {
		return PaymentCanceled, ErrNoFreightSelected
	}

	prof := o.session.Profile()
	req := PaymentRequest{
		CartItems:    o.cart.Items(),
		CartTotal:    o.Total(),
		UserDiscount: prof.DiscountPercentage,
		UserProfile:  prof,
	}

	o.paymentVisible = true
	outcome, err := o.payment.Collect(ctx, req)
	o.paymentVisible = false
	if err != nil {
		return PaymentCanceled, err
	}

	if outcome == PaymentSucceeded {
		o.cart.Clear()
		if o.onComplete != nil {
			o.onComplete()
		}
	}
	return outcome, nil
}

// Reset is the full restart: it drops the freight selection and hides the
// payment flow. There are no other back-transitions.
func (o *Orchestrator) Reset() {
	o.selected = nil
	o.paymentVisible = false
}
