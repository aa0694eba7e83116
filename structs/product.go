package structs

// AfricanStyle classifies a garment. The zero value means no style was given.
type AfricanStyle string

const (
	StyleDashiki            AfricanStyle = "dashiki"
	StyleKaftan             AfricanStyle = "kaftan"
	StyleAgbada             AfricanStyle = "agbada"
	StyleBoubou             AfricanStyle = "boubou"
	StyleKente              AfricanStyle = "kente"
	StyleAnkara             AfricanStyle = "ankara"
	StyleMudcloth           AfricanStyle = "mudcloth"
	StyleTraditional        AfricanStyle = "traditional"
	StyleModernAfrican      AfricanStyle = "modern_african"
	StyleCrochetTraditional AfricanStyle = "crochet_traditional"
	StyleCrochetModern      AfricanStyle = "crochet_modern"
)

// Choice is a value with its human readable label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var africanStyles = []Choice{
	{Value: string(StyleDashiki), Label: "Dashiki Style"},
	{Value: string(StyleKaftan), Label: "Kaftan Style"},
	{Value: string(StyleAgbada), Label: "Agbada Style"},
	{Value: string(StyleBoubou), Label: "Boubou Style"},
	{Value: string(StyleKente), Label: "Kente Inspired"},
	{Value: string(StyleAnkara), Label: "Ankara Pattern"},
	{Value: string(StyleMudcloth), Label: "Mudcloth Design"},
	{Value: string(StyleTraditional), Label: "Traditional African"},
	{Value: string(StyleModernAfrican), Label: "Modern African Fusion"},
	{Value: string(StyleCrochetTraditional), Label: "Traditional Crochet"},
	{Value: string(StyleCrochetModern), Label: "Modern Crochet"},
}

// AfricanStyles returns the style choices in declaration order.
func AfricanStyles() []Choice {
	out := make([]Choice, len(africanStyles))
	copy(out, africanStyles)
	return out
}

func (s AfricanStyle) Valid() bool {
	_, ok := choiceLabel(africanStyles, string(s))
	return ok
}

// Label returns the display label, or the raw value when it is not a known style.
func (s AfricanStyle) Label() string {
	if label, ok := choiceLabel(africanStyles, string(s)); ok {
		return label
	}
	return string(s)
}

// Size labels are informational; products store free-form size lists.
type Size string

const (
	SizeXS     Size = "XS"
	SizeS      Size = "S"
	SizeM      Size = "M"
	SizeL      Size = "L"
	SizeXL     Size = "XL"
	SizeXXL    Size = "XXL"
	SizeXXXL   Size = "XXXL"
	SizeCustom Size = "custom"
)

func choiceLabel(choices []Choice, value string) (string, bool) {
	for _, c := range choices {
		if c.Value == value {
			return c.Label, true
		}
	}
	return "", false
}
