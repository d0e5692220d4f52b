package expr

// Op identifies the arithmetic applied by an operation variable.
type Op string

const (
	OpAdd      Op = "add"
	OpDivide   Op = "divide"
	OpMultiply Op = "multiply"
	OpSubtract Op = "subtract"
)

// Scalar constrains variable payloads to the two parameter types a tree
// carries: sampling parameters (float64) and seed-like values (uint32).
type Scalar interface {
	float64 | uint32
}

// Variable is a scalar parameter of an expression tree node. It is either a
// literal, a named literal that can be re-patched by name after export, or a
// binary arithmetic combination of two sub-variables. A variable with both
// Lhs and Rhs set is an operation; otherwise it is a (possibly named)
// literal. Evaluation is pure and total: it never fails.
type Variable[T Scalar] struct {
	Name  string       `yaml:"name,omitempty"`
	Value T            `yaml:"value"`
	Op    Op           `yaml:"op,omitempty"`
	Lhs   *Variable[T] `yaml:"lhs,omitempty"`
	Rhs   *Variable[T] `yaml:"rhs,omitempty"`
}

// FloatVar is a float64-valued variable.
type FloatVar = Variable[float64]

// UintVar is a uint32-valued variable.
type UintVar = Variable[uint32]

// Lit returns a literal variable.
func Lit[T Scalar](value T) *Variable[T] {
	return &Variable[T]{Value: value}
}

// Named returns a named literal variable patchable via SetNamed.
func Named[T Scalar](name string, value T) *Variable[T] {
	return &Variable[T]{Name: name, Value: value}
}

// Operation combines two variables with an arithmetic operator.
func Operation[T Scalar](lhs, rhs *Variable[T], op Op) *Variable[T] {
	return &Variable[T]{Op: op, Lhs: lhs, Rhs: rhs}
}

// Eval computes the variable's current value. Float division by zero yields
// zero instead of an infinity. All uint32 arithmetic is checked: overflow,
// underflow and division by zero yield zero. A nil variable evaluates to the
// type's zero value.
func (v *Variable[T]) Eval() T {
	if v == nil {
		var zero T
		return zero
	}
	if v.Lhs == nil || v.Rhs == nil {
		return v.Value
	}
	lhs, rhs := v.Lhs.Eval(), v.Rhs.Eval()
	switch l := any(lhs).(type) {
	case float64:
		return any(evalF64(l, any(rhs).(float64), v.Op)).(T)
	case uint32:
		return any(evalU32(l, any(rhs).(uint32), v.Op)).(T)
	}
	var zero T
	return zero
}

// SetNamed replaces the value of every named leaf matching name. Literals and
// differently named leaves are untouched; operations recurse into both sides.
func (v *Variable[T]) SetNamed(name string, value T) {
	if v == nil {
		return
	}
	if v.Lhs != nil || v.Rhs != nil {
		v.Lhs.SetNamed(name, value)
		v.Rhs.SetNamed(name, value)
		return
	}
	if v.Name != "" && v.Name == name {
		v.Value = value
	}
}

func evalF64(lhs, rhs float64, op Op) float64 {
	switch op {
	case OpAdd:
		return lhs + rhs
	case OpSubtract:
		return lhs - rhs
	case OpMultiply:
		return lhs * rhs
	case OpDivide:
		if rhs == 0.0 {
			return 0.0
		}
		return lhs / rhs
	}
	return 0.0
}

func evalU32(lhs, rhs uint32, op Op) uint32 {
	switch op {
	case OpAdd:
		sum := uint64(lhs) + uint64(rhs)
		if sum > uint64(^uint32(0)) {
			return 0
		}
		return uint32(sum)
	case OpSubtract:
		if rhs > lhs {
			return 0
		}
		return lhs - rhs
	case OpMultiply:
		product := uint64(lhs) * uint64(rhs)
		if product > uint64(^uint32(0)) {
			return 0
		}
		return uint32(product)
	case OpDivide:
		if rhs == 0 {
			return 0
		}
		return lhs / rhs
	}
	return 0
}
