package customization

import (
	"sort"
	"sync"

	"companion.GO/core/errs"
	"companion.GO/service/catalog"
)

// Step is a wizard screen.
type Step string

const (
	StepStone  Step = "stone"
	StepMetal  Step = "metal"
	StepSize   Step = "size"
	StepReview Step = "review"
)

// stepOrder is the fixed priority; review always closes it.
var stepOrder = []struct {
	step Step
	typ  OptionType
}{
	{StepStone, TypeStone},
	{StepMetal, TypeMetal},
	{StepSize, TypeSize},
}

// Wizard walks a shopper through the option steps a product offers.
type Wizard struct {
	mu        sync.Mutex
	product   catalog.Product
	custom    ProductCustomization
	step      Step
	selected  map[OptionType]string
	completed bool
}

// NewWizard starts at the first offered step, with defaults preselected.
func NewWizard(product catalog.Product, custom ProductCustomization) *Wizard {
	w := &Wizard{
		product:  product,
		custom:   custom,
		selected: make(map[OptionType]string, len(custom.DefaultOptions)),
	}
	for t, v := range custom.DefaultOptions {
		w.selected[t] = v
	}
	w.step = w.nextOfferedFrom(0)
	return w
}

func (w *Wizard) nextOfferedFrom(i int) Step {
	for ; i < len(stepOrder); i++ {
		if w.custom.Offers(stepOrder[i].typ) {
			return stepOrder[i].step
		}
	}
	return StepReview
}

func stepIndex(t OptionType) int {
	for i, s := range stepOrder {
		if s.typ == t {
			return i
		}
	}
	return -1
}

// Select records value for t and moves to the next offered step after t's step.
// Types without a step (length, finish) are recorded without moving.
func (w *Wizard) Select(t OptionType, value string) error {
	if _, ok := CategoryFor(t); !ok {
		return errs.Validationf("%s: %s", errs.ErrMsgOptionTypeUnknown, t)
	}
	if value == "" {
		return errs.Validation(errs.ErrMsgOptionValueRequired)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed {
		return errs.InvalidState(errs.ErrMsgWizardCompleted)
	}
	w.selected[t] = value
	if i := stepIndex(t); i >= 0 {
		w.step = w.nextOfferedFrom(i + 1)
	}
	return nil
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Options lists the choices for the current step; nil on review.
func (w *Wizard) Options() []Option {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range stepOrder {
		if s.step == w.step {
			cat, _ := CategoryFor(s.typ)
			return append([]Option(nil), w.custom.AvailableOptions[cat]...)
		}
	}
	return nil
}

func (w *Wizard) Selected() map[OptionType]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copySelection(w.selected)
}

func (w *Wizard) Completed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completed
}

func (w *Wizard) Product() catalog.Product { return w.product }

// Price is the running final price.
func (w *Wizard) Price() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return FinalPrice(w.product.Price, w.custom, w.selected)
}

// FinalPrice adds the adjustment of every selected option the product offers.
// Values missing from the available options contribute nothing. Adjustments are
// summed in optionTypes order so equal inputs give bit-identical totals.
func FinalPrice(base float64, custom ProductCustomization, selected map[OptionType]string) float64 {
	total := base
	for _, t := range optionTypes {
		v, ok := selected[t]
		if !ok {
			continue
		}
		if o, ok := custom.Find(t, v); ok {
			total += o.PriceAdjustment
		}
	}
	return total
}

// ReviewLine is one row of the review screen.
type ReviewLine struct {
	Type       OptionType `json:"type"`
	Value      string     `json:"value"`
	Name       string     `json:"name"`
	Adjustment float64    `json:"adjustment"`
	Available  bool       `json:"available"`
}

// Review lists selections in step order, then any extra types alphabetically.
func (w *Wizard) Review() []ReviewLine {
	w.mu.Lock()
	defer w.mu.Unlock()
	types := make([]OptionType, 0, len(w.selected))
	for t := range w.selected {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		ri, rj := stepIndex(types[i]), stepIndex(types[j])
		if ri < 0 {
			ri = len(stepOrder)
		}
		if rj < 0 {
			rj = len(stepOrder)
		}
		if ri != rj {
			return ri < rj
		}
		return types[i] < types[j]
	})
	lines := make([]ReviewLine, 0, len(types))
	for _, t := range types {
		v := w.selected[t]
		line := ReviewLine{Type: t, Value: v, Name: v}
		if o, ok := w.custom.Find(t, v); ok {
			line.Name = o.Name
			line.Adjustment = o.PriceAdjustment
			line.Available = true
		}
		lines = append(lines, line)
	}
	return lines
}

// Complete emits the customized product once. Later calls fail with InvalidState.
func (w *Wizard) Complete() (CustomizedProduct, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed {
		return CustomizedProduct{}, errs.InvalidState(errs.ErrMsgWizardCompleted)
	}
	w.completed = true
	w.step = StepReview
	return CustomizedProduct{
		ProductID:       w.product.ID,
		SelectedOptions: copySelection(w.selected),
		BasePrice:       w.product.Price,
		FinalPrice:      FinalPrice(w.product.Price, w.custom, w.selected),
	}, nil
}

func copySelection(in map[OptionType]string) map[OptionType]string {
	out := make(map[OptionType]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
