package profile

import (
	"context"
	"log"
)

// DefaultOwnerColumns is the fallback candidate list when none is configured.
// The order encodes schema history: newest linkage first.
var DefaultOwnerColumns = []string{"user_id", "profile_id", "customer_id"}

const defaultHistoryLimit = 10

// Aggregator assembles a user's addresses, payment methods and recent orders
// from the store. The three lookups are isolated from each other: a failure
// in one degrades that collection to empty instead of failing the request.
type Aggregator struct {
	store   Store
	columns []string
	limit   int
}

func NewAggregator(store Store, ownerColumns []string, historyLimit int) *Aggregator {
	if len(ownerColumns) == 0 {
		ownerColumns = DefaultOwnerColumns
	}
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &Aggregator{store: store, columns: ownerColumns, limit: historyLimit}
}

func (a *Aggregator) Fetch(ctx context.Context, userID string) (Data, error) {
	data := Data{
		Addresses:      []Address{},
		PaymentMethods: []PaymentMethod{},
		Orders:         []Order{},
	}
	if err := ctx.Err(); err != nil {
		return data, err
	}

	if addrs, err := a.store.ListAddresses(ctx, userID); err != nil {
		log.Printf("[profile] addresses lookup failed user=%s: %v", userID, err)
	} else if len(addrs) > 0 {
		data.Addresses = addrs
	}

	if methods, err := a.store.ListPaymentMethods(ctx, userID); err != nil {
		log.Printf("[profile] payment methods lookup failed user=%s: %v", userID, err)
	} else if len(methods) > 0 {
		data.PaymentMethods = methods
	}

	data.Orders = a.probeOrders(ctx, userID)
	return data, nil
}

// probeOrders tries each candidate ownership column in order and commits to
// the first non-empty, error-free result; later candidates are never merged
// in. Orders have lived under different owner columns across migrations, and
// at most one candidate is populated per user. All candidates empty or
// erroring is not a failure: the user simply has no order history.
func (a *Aggregator) probeOrders(ctx context.Context, userID string) []Order {
	for _, col := range a.columns {
		orders, err := a.store.ListOrdersBy(ctx, col, userID, a.limit)
		if err != nil {
			log.Printf("[profile] order lookup via %s failed user=%s: %v", col, userID, err)
			continue
		}
		if len(orders) > 0 {
			return orders
		}
	}
	return []Order{}
}
