package algo

// Operands carries the typed arguments of an operation. Unset numeric
// operands are nil so that a missing value can be told apart from zero.
type Operands struct {
	Value  *int   `mapstructure:"value" yaml:"value,omitempty" json:"value,omitempty"`
	Index  *int   `mapstructure:"index" yaml:"index,omitempty" json:"index,omitempty"`
	Target *int   `mapstructure:"target" yaml:"target,omitempty" json:"target,omitempty"`
	Label  string `mapstructure:"label" yaml:"label,omitempty" json:"label,omitempty"`
	From   string `mapstructure:"from" yaml:"from,omitempty" json:"from,omitempty"`
	To     string `mapstructure:"to" yaml:"to,omitempty" json:"to,omitempty"`
}

// Int returns a pointer to v for building Operands literals.
func Int(v int) *int { return &v }
