package customization

import "context"

// OptionType names what an option customizes.
type OptionType string

const (
	TypeStone  OptionType = "stone"
	TypeMetal  OptionType = "metal"
	TypeSize   OptionType = "size"
	TypeLength OptionType = "length"
	TypeFinish OptionType = "finish"
)

// Category keys of ProductCustomization.AvailableOptions.
const (
	CategoryStones   = "stones"
	CategoryMetals   = "metals"
	CategorySizes    = "sizes"
	CategoryLengths  = "lengths"
	CategoryFinishes = "finishes"
)

// optionTypes lists every option type in pricing order.
var optionTypes = []OptionType{TypeStone, TypeMetal, TypeSize, TypeLength, TypeFinish}

// categoryByType maps an option type to the key its options are listed under.
var categoryByType = map[OptionType]string{
	TypeStone:  CategoryStones,
	TypeMetal:  CategoryMetals,
	TypeSize:   CategorySizes,
	TypeLength: CategoryLengths,
	TypeFinish: CategoryFinishes,
}

// CategoryFor returns the category key for t.
func CategoryFor(t OptionType) (string, bool) {
	c, ok := categoryByType[t]
	return c, ok
}

// ParseOptionType validates a wire value.
func ParseOptionType(s string) (OptionType, bool) {
	t := OptionType(s)
	_, ok := categoryByType[t]
	return t, ok
}

type Option struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Type            OptionType `json:"type"`
	Value           string     `json:"value"`
	Image           string     `json:"image,omitempty"`
	PriceAdjustment float64    `json:"price_adjustment"`
}

// ProductCustomization lists the options a product offers and its defaults.
type ProductCustomization struct {
	ID               string                `json:"id"`
	ProductID        string                `json:"product_id"`
	AvailableOptions map[string][]Option   `json:"available_options"`
	DefaultOptions   map[OptionType]string `json:"default_options"`
}

// Find returns the option of type t with value, if the product offers it.
func (pc ProductCustomization) Find(t OptionType, value string) (Option, bool) {
	cat, ok := CategoryFor(t)
	if !ok {
		return Option{}, false
	}
	for _, o := range pc.AvailableOptions[cat] {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Offers reports whether the product lists any option for t.
func (pc ProductCustomization) Offers(t OptionType) bool {
	cat, ok := CategoryFor(t)
	return ok && len(pc.AvailableOptions[cat]) > 0
}

// CustomizedProduct is the wizard's terminal output.
type CustomizedProduct struct {
	ProductID       string                `json:"product_id"`
	SelectedOptions map[OptionType]string `json:"selected_options"`
	BasePrice       float64               `json:"base_price"`
	FinalPrice      float64               `json:"final_price"`
}

// Source loads customizations by product id.
type Source interface {
	Customization(ctx context.Context, productID string) (ProductCustomization, error)
}
