package requisition

import (
	"strings"

	"github.com/shopspring/decimal"
)

// doneKeyword ends item entry when typed as an item name.
const doneKeyword = "done"

// Bounds on a parsed price. Decimal arithmetic rescales operands to a common
// exponent, so an exponent like 1e-900000000 would make every sum allocate a
// number with that many digits.
const (
	maxPriceExponent = 18
	maxPriceDigits   = 38
)

// ParsePrice parses a price written as a plain or exponent decimal number
// ("12", "-3.5", "2.5e2"). Surrounding whitespace is ignored. Infinities,
// NaN, digit separators and numbers outside the supported magnitude are
// rejected with ErrInvalidPrice.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	exp := price.Exponent()
	if exp > maxPriceExponent || exp < -maxPriceExponent || price.NumDigits() > maxPriceDigits {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}

// IsDone reports whether an item name is the entry terminator.
func IsDone(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), doneKeyword)
}

// Draft accumulates items for a requisition that has not been committed yet.
type Draft struct {
	id         string
	date       string
	staffID    string
	staffName  string
	items      []Item
	total      decimal.Decimal
	rejections []ItemRejection
	done       bool
	committed  bool
}

// ID returns the requisition id the draft will receive if the ledger is not
// changed before it is committed.
func (d *Draft) ID() string { return d.id }

// Position returns the 1-based number of the next item to be entered.
func (d *Draft) Position() int { return len(d.items) + 1 }

// Done reports whether item entry has been terminated.
func (d *Draft) Done() bool { return d.done }

// AddItem parses rawPrice and appends the item. A price that does not parse
// is recorded as a rejection and returned; the draft stays usable.
func (d *Draft) AddItem(name, rawPrice string) error {
	price, err := ParsePrice(rawPrice)
	if err != nil {
		rejection := ItemRejection{
			Position: d.Position(),
			Name:     name,
			Input:    rawPrice,
			Err:      ErrInvalidPrice,
		}
		d.rejections = append(d.rejections, rejection)
		return &rejection
	}
	d.items = append(d.items, Item{Name: name, Price: price})
	d.total = d.total.Add(price)
	return nil
}

// Apply feeds one item-entry event into the draft. Events after the
// terminator are ignored.
func (d *Draft) Apply(entry ItemEntry) {
	if d.done {
		return
	}
	if entry.Done || IsDone(entry.Name) {
		d.done = true
		return
	}
	_ = d.AddItem(entry.Name, entry.Price)
}

// Items returns the accepted items in entry order.
func (d *Draft) Items() []Item {
	return append([]Item(nil), d.items...)
}

// Total returns the running sum of accepted item prices.
func (d *Draft) Total() decimal.Decimal { return d.total }

// Rejections returns the items skipped so far.
func (d *Draft) Rejections() []ItemRejection {
	return append([]ItemRejection(nil), d.rejections...)
}
