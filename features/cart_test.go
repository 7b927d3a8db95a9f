package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"shopcart/logic"
)

type cartTestContext struct {
	cart     *logic.Cart
	products map[string]*logic.Product
	err      error
}

func (c *cartTestContext) reset() {
	c.cart = logic.NewCart()
	c.products = make(map[string]*logic.Product)
	c.err = nil
}

func (c *cartTestContext) product(name string) (*logic.Product, error) {
	p, ok := c.products[name]
	if !ok {
		return nil, fmt.Errorf("product %q was not declared", name)
	}
	return p, nil
}

func amountEquals(got decimal.Decimal, want string) error {
	expected, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !got.Equal(expected) {
		return fmt.Errorf("expected %s, got %s", expected, got)
	}
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.reset()
	return nil
}

func (c *cartTestContext) aProductPricedWithStock(name, price string, stock int) error {
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.products[name] = logic.NewProduct(name, unitPrice, stock)
	return nil
}

func (c *cartTestContext) iAddOf(quantity int, name string) error {
	p, err := c.product(name)
	if err != nil {
		return err
	}
	c.err = c.cart.Add(p, quantity)
	return nil
}

func (c *cartTestContext) iRemoveOf(quantity int, name string) error {
	p, err := c.product(name)
	if err != nil {
		return err
	}
	c.err = c.cart.Remove(p, quantity)
	return nil
}

func (c *cartTestContext) iUpdateToQuantity(name string, quantity int) error {
	p, err := c.product(name)
	if err != nil {
		return err
	}
	c.err = c.cart.UpdateQuantity(p, quantity)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.cart.Clear()
	return nil
}

func (c *cartTestContext) iAskForADiscountOfPercent(pct string) error {
	p, err := decimal.NewFromString(pct)
	if err != nil {
		return err
	}
	_, c.err = c.cart.ApplyDiscount(p)
	return nil
}

func (c *cartTestContext) iApplyACouponOfPercentCappedAt(pct, maxDiscount string) error {
	p, err := decimal.NewFromString(pct)
	if err != nil {
		return err
	}
	m, err := decimal.NewFromString(maxDiscount)
	if err != nil {
		return err
	}
	_, c.err = c.cart.ApplyCoupon(p, m)
	return nil
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if got := len(c.cart.Items()); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) hasQuantity(name string, quantity int) error {
	for _, item := range c.cart.Items() {
		if item.Product.Name == name {
			if item.Quantity != quantity {
				return fmt.Errorf("expected %s quantity %d, got %d", name, quantity, item.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("no line item for %q", name)
}

func (c *cartTestContext) theTotalIs(want string) error {
	return amountEquals(c.cart.Total(), want)
}

func (c *cartTestContext) theItemCountIs(n int) error {
	if got := c.cart.CountItems(); got != n {
		return fmt.Errorf("expected item count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theDiscountedTotalAtPercentIs(pct, want string) error {
	p, err := decimal.NewFromString(pct)
	if err != nil {
		return err
	}
	got, err := c.cart.ApplyDiscount(p)
	if err != nil {
		return err
	}
	return amountEquals(got, want)
}

func (c *cartTestContext) theConditionalDiscountOfPercentOverIs(pct, minimum, want string) error {
	p, err := decimal.NewFromString(pct)
	if err != nil {
		return err
	}
	m, err := decimal.NewFromString(minimum)
	if err != nil {
		return err
	}
	got, err := c.cart.ApplyConditionalDiscount(p, m)
	if err != nil {
		return err
	}
	return amountEquals(got, want)
}

func (c *cartTestContext) theTaxAtPercentIs(pct, want string) error {
	p, err := decimal.NewFromString(pct)
	if err != nil {
		return err
	}
	got, err := c.cart.CalculateTax(p)
	if err != nil {
		return err
	}
	return amountEquals(got, want)
}

func (c *cartTestContext) theCouponOfPercentCappedAtGives(pct, maxDiscount, want string) error {
	p, err := decimal.NewFromString(pct)
	if err != nil {
		return err
	}
	m, err := decimal.NewFromString(maxDiscount)
	if err != nil {
		return err
	}
	got, err := c.cart.ApplyCoupon(p, m)
	if err != nil {
		return err
	}
	return amountEquals(got, want)
}

func (c *cartTestContext) theCommandFailsWith(reason string) error {
	if c.err == nil {
		return errors.New("expected command to fail but it succeeded")
	}
	var cmdErr *logic.CommandError
	if !errors.As(c.err, &cmdErr) {
		return fmt.Errorf("expected CommandError, got %T", c.err)
	}
	if string(cmdErr.Reason) != reason {
		return fmt.Errorf("expected reason %s, got %s", reason, cmdErr.Reason)
	}
	return nil
}

func (c *cartTestContext) theItemsSortedByAre(criterion, names string) error {
	var got []string
	for _, item := range c.cart.ItemsSorted(criterion) {
		got = append(got, item.Product.Name)
	}
	if strings.Join(got, ", ") != names {
		return fmt.Errorf("expected %q, got %q", names, strings.Join(got, ", "))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a product "([^"]*)" priced (-?\d+(?:\.\d+)?) with stock (\d+)$`, tc.aProductPricedWithStock)

	// When steps
	ctx.Step(`^I add (-?\d+) of "([^"]*)"$`, tc.iAddOf)
	ctx.Step(`^I remove (-?\d+) of "([^"]*)"$`, tc.iRemoveOf)
	ctx.Step(`^I update "([^"]*)" to quantity (-?\d+)$`, tc.iUpdateToQuantity)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^I ask for a discount of (-?\d+(?:\.\d+)?) percent$`, tc.iAskForADiscountOfPercent)
	ctx.Step(`^I apply a coupon of (-?\d+(?:\.\d+)?) percent capped at (-?\d+(?:\.\d+)?)$`, tc.iApplyACouponOfPercentCappedAt)

	// Then steps
	ctx.Step(`^the cart has (\d+) line items?$`, tc.theCartHasLineItems)
	ctx.Step(`^"([^"]*)" has quantity (\d+)$`, tc.hasQuantity)
	ctx.Step(`^the total is (\d+(?:\.\d+)?)$`, tc.theTotalIs)
	ctx.Step(`^the item count is (\d+)$`, tc.theItemCountIs)
	ctx.Step(`^the discounted total at (\d+(?:\.\d+)?) percent is (\d+(?:\.\d+)?)$`, tc.theDiscountedTotalAtPercentIs)
	ctx.Step(`^the conditional discount of (\d+(?:\.\d+)?) percent over (\d+(?:\.\d+)?) is (\d+(?:\.\d+)?)$`, tc.theConditionalDiscountOfPercentOverIs)
	ctx.Step(`^the tax at (\d+(?:\.\d+)?) percent is (\d+(?:\.\d+)?)$`, tc.theTaxAtPercentIs)
	ctx.Step(`^the coupon of (\d+(?:\.\d+)?) percent capped at (\d+(?:\.\d+)?) gives (\d+(?:\.\d+)?)$`, tc.theCouponOfPercentCappedAtGives)
	ctx.Step(`^the command fails with "([^"]*)"$`, tc.theCommandFailsWith)
	ctx.Step(`^the items sorted by "([^"]*)" are "([^"]*)"$`, tc.theItemsSortedByAre)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
