package customization

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"companion.GO/core/errs"
	"companion.GO/service/catalog"
)

var optionSets = map[string][]Option{
	CategoryStones: Stones,
	CategoryMetals: Metals,
	CategorySizes:  Sizes,
}

type wizardTestContext struct {
	product catalog.Product
	custom  ProductCustomization
	wizard  *Wizard
	result  CustomizedProduct
	err     error
}

func (w *wizardTestContext) reset() {
	*w = wizardTestContext{}
}

func (w *wizardTestContext) aProductPricedOffering(id string, price float64, categories string) error {
	w.product = catalog.Product{ID: id, Name: id, Price: price}
	w.custom = ProductCustomization{
		ID:               "custom-" + id,
		ProductID:        id,
		AvailableOptions: make(map[string][]Option),
	}
	for _, c := range strings.Split(categories, ",") {
		opts, ok := optionSets[c]
		if !ok {
			return fmt.Errorf("unknown option category %q", c)
		}
		w.custom.AvailableOptions[c] = opts
	}
	return nil
}

func (w *wizardTestContext) iStartCustomizing() error {
	w.wizard = NewWizard(w.product, w.custom)
	return nil
}

func (w *wizardTestContext) theWizardIsOnStep(step string) error {
	if got := w.wizard.Step(); got != Step(step) {
		return fmt.Errorf("expected step %s, got %s", step, got)
	}
	return nil
}

func (w *wizardTestContext) iSelect(kind, value string) error {
	t, ok := ParseOptionType(kind)
	if !ok {
		return fmt.Errorf("unknown option type %q", kind)
	}
	w.err = w.wizard.Select(t, value)
	return w.err
}

func (w *wizardTestContext) iCompleteTheCustomization() error {
	result, err := w.wizard.Complete()
	if err != nil {
		w.err = err
		return nil
	}
	w.result = result
	return nil
}

func (w *wizardTestContext) theFinalPriceIs(want float64) error {
	if w.err != nil {
		return fmt.Errorf("unexpected error: %v", w.err)
	}
	if w.result.FinalPrice != want {
		return fmt.Errorf("expected final price %v, got %v", want, w.result.FinalPrice)
	}
	return nil
}

func (w *wizardTestContext) theOperationFailsWith(kind string) error {
	if w.err == nil {
		return errors.New("expected operation to fail but it succeeded")
	}
	got, ok := errs.KindOf(w.err)
	if !ok || got.String() != kind {
		return fmt.Errorf("expected %s, got %v", kind, w.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &wizardTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a product "([^"]*)" priced (\d+(?:\.\d+)?) offering "([^"]*)"$`, tc.aProductPricedOffering)

	// When steps
	ctx.Step(`^I start customizing$`, tc.iStartCustomizing)
	ctx.Step(`^I select (stone|metal|size) "([^"]*)"$`, tc.iSelect)
	ctx.Step(`^I complete the customization$`, tc.iCompleteTheCustomization)

	// Then steps
	ctx.Step(`^the wizard is on step "([^"]*)"$`, tc.theWizardIsOnStep)
	ctx.Step(`^the final price is (\d+(?:\.\d+)?)$`, tc.theFinalPriceIs)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/wizard.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
