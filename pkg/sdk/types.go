package finsight

// Strength is the analysis strength label.
type Strength string

// Strength labels.
const (
	StrengthStrong   Strength = "Strong"
	StrengthModerate Strength = "Moderate"
	StrengthWeak     Strength = "Weak"
)

// Company is one entry of the company listing.
type Company struct {
	ID       string
	Name     string
	Strength Strength
}

// Detail is the merged company view.
type Detail map[string]any

// ID returns the company identifier.
func (d Detail) ID() string { return d.str("id") }

// Name returns the display name.
func (d Detail) Name() string { return d.str("company_name") }

// Strength returns the strength label.
func (d Detail) Strength() Strength { return Strength(d.str("strength")) }

// Pros returns the decoded pros list.
func (d Detail) Pros() []string { return d.list("pros") }

// Cons returns the decoded cons list.
func (d Detail) Cons() []string { return d.list("cons") }

func (d Detail) str(key string) string {
	s, _ := d[key].(string)
	return s
}

func (d Detail) list(key string) []string {
	raw, _ := d[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
