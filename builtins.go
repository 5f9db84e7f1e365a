package alone

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Builtin identifies one of the fixed primitive operations.
type Builtin uint8

const (
	BuiltinInvalid Builtin = iota
	BuiltinPrint
	BuiltinExit
	BuiltinBegin
	BuiltinAdd
	BuiltinSub
	BuiltinMul
	BuiltinDiv
	BuiltinEq
	BuiltinLt
	BuiltinGt
	BuiltinLe
	BuiltinGe
	BuiltinNot
	BuiltinCons
	BuiltinList
	BuiltinCar
	BuiltinCdr
)

var builtinNames = map[Builtin]string{
	BuiltinInvalid: "invalid",
	BuiltinPrint:   "print",
	BuiltinExit:    "exit",
	BuiltinBegin:   "begin",
	BuiltinAdd:     "+",
	BuiltinSub:     "-",
	BuiltinMul:     "*",
	BuiltinDiv:     "/",
	BuiltinEq:      "=",
	BuiltinLt:      "<",
	BuiltinGt:      ">",
	BuiltinLe:      "<=",
	BuiltinGe:      ">=",
	BuiltinNot:     "not",
	BuiltinCons:    "cons",
	BuiltinList:    "list",
	BuiltinCar:     "car",
	BuiltinCdr:     "cdr",
}

func (b Builtin) String() string {
	if s, ok := builtinNames[b]; ok {
		return s
	}
	return builtinNames[BuiltinInvalid]
}

// Function is the implementation of a builtin. Arguments are already
// evaluated, left to right.
type Function func(ctx *Context, args []*Value) (*Value, error)

var builtinFuncs = map[Builtin]Function{
	BuiltinPrint: builtinPrint,
	BuiltinExit:  builtinExit,
	BuiltinBegin: builtinBegin,
	BuiltinAdd:   builtinAdd,
	BuiltinSub:   builtinSub,
	BuiltinMul:   builtinMul,
	BuiltinDiv:   builtinDiv,
	BuiltinEq:    builtinEq,
	BuiltinLt:    compareWith(BuiltinLt, func(a, b int64) bool { return a < b }),
	BuiltinGt:    compareWith(BuiltinGt, func(a, b int64) bool { return a > b }),
	BuiltinLe:    compareWith(BuiltinLe, func(a, b int64) bool { return a <= b }),
	BuiltinGe:    compareWith(BuiltinGe, func(a, b int64) bool { return a >= b }),
	BuiltinNot:   builtinNot,
	BuiltinCons:  builtinCons,
	BuiltinList:  builtinList,
	BuiltinCar:   accessor(BuiltinCar, func(c *Cons) *Value { return c.Car }),
	BuiltinCdr:   accessor(BuiltinCdr, func(c *Cons) *Value { return c.Cdr }),
}

// defaultBindings is the initial content of every default environment.
// "=" and "eq", "!" and "not", "t" and "T" are kept as aliases.
var defaultBindings = []struct {
	name  string
	value *Value
}{
	{"print", NewCallableValue(BuiltinPrint)},
	{"exit", NewCallableValue(BuiltinExit)},
	{"begin", NewCallableValue(BuiltinBegin)},
	{"+", NewCallableValue(BuiltinAdd)},
	{"-", NewCallableValue(BuiltinSub)},
	{"*", NewCallableValue(BuiltinMul)},
	{"/", NewCallableValue(BuiltinDiv)},
	{"=", NewCallableValue(BuiltinEq)},
	{"eq", NewCallableValue(BuiltinEq)},
	{"<", NewCallableValue(BuiltinLt)},
	{">", NewCallableValue(BuiltinGt)},
	{"<=", NewCallableValue(BuiltinLe)},
	{">=", NewCallableValue(BuiltinGe)},
	{"!", NewCallableValue(BuiltinNot)},
	{"not", NewCallableValue(BuiltinNot)},
	{"cons", NewCallableValue(BuiltinCons)},
	{"list", NewCallableValue(BuiltinList)},
	{"car", NewCallableValue(BuiltinCar)},
	{"cdr", NewCallableValue(BuiltinCdr)},
	{"t", True},
	{"T", True},
	{"Nil", Nil},
	{"nil", Nil},
}

// Builtins returns every registered builtin, in declaration order.
func Builtins() []Builtin {
	list := make([]Builtin, 0, len(builtinFuncs))
	for b := range builtinFuncs {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Call invokes the builtin with already evaluated arguments.
func (b Builtin) Call(ctx *Context, args []*Value) (*Value, error) {
	fn, ok := builtinFuncs[b]
	if !ok {
		return nil, &EvalError{Err: ErrInvalidFunction, Symbol: b.String()}
	}
	return fn(ctx, args)
}

func lastOrNil(args []*Value) *Value {
	if len(args) == 0 {
		return Nil
	}
	return args[len(args)-1]
}

func numbers(b Builtin, args []*Value) ([]int64, error) {
	nums := make([]int64, 0, len(args))
	for _, arg := range args {
		if arg.Type != ValueTypeNumber {
			return nil, errArgumentType(b, "number", arg)
		}
		nums = append(nums, arg.Int())
	}
	return nums, nil
}

func builtinPrint(ctx *Context, args []*Value) (*Value, error) {
	for _, arg := range args {
		if _, err := fmt.Fprintln(ctx.out, arg); err != nil {
			return nil, errors.Wrap(err, "print")
		}
	}
	return lastOrNil(args), nil
}

func builtinExit(ctx *Context, args []*Value) (*Value, error) {
	code := int64(0)
	switch len(args) {
	case 0:
	case 1:
		if args[0].Type != ValueTypeNumber {
			return nil, errArgumentType(BuiltinExit, "number", args[0])
		}
		code = args[0].Int()
	default:
		return nil, errArity(BuiltinExit, "expected at most 1, got %d", len(args))
	}
	ctx.Exit(int(code))
	return Nil, nil
}

func builtinBegin(ctx *Context, args []*Value) (*Value, error) {
	return lastOrNil(args), nil
}

func addInt(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func divInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

func fold(b Builtin, acc int64, nums []int64, op func(a, b int64) (int64, bool)) (*Value, error) {
	for _, n := range nums {
		var ok bool
		if acc, ok = op(acc, n); !ok {
			return nil, errDomain(b, ErrOverflow)
		}
	}
	return NewNumberValue(acc), nil
}

// (+) is 0.
func builtinAdd(ctx *Context, args []*Value) (*Value, error) {
	nums, err := numbers(BuiltinAdd, args)
	if err != nil {
		return nil, err
	}
	return fold(BuiltinAdd, 0, nums, addInt)
}

// (*) is 1.
func builtinMul(ctx *Context, args []*Value) (*Value, error) {
	nums, err := numbers(BuiltinMul, args)
	if err != nil {
		return nil, err
	}
	return fold(BuiltinMul, 1, nums, mulInt)
}

// (-) is 0 and (- x) negates x.
func builtinSub(ctx *Context, args []*Value) (*Value, error) {
	nums, err := numbers(BuiltinSub, args)
	if err != nil {
		return nil, err
	}
	switch len(nums) {
	case 0:
		return NewNumberValue(0), nil
	case 1:
		return fold(BuiltinSub, 0, nums, subInt)
	}
	return fold(BuiltinSub, nums[0], nums[1:], subInt)
}

// (/ x) is 1/x, truncated toward zero.
func builtinDiv(ctx *Context, args []*Value) (*Value, error) {
	nums, err := numbers(BuiltinDiv, args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, errArity(BuiltinDiv, "expected at least 1, got 0")
	}

	acc, rest := nums[0], nums[1:]
	if len(rest) == 0 {
		acc, rest = 1, nums
	}
	for _, n := range rest {
		if acc, err = divInt(acc, n); err != nil {
			return nil, errDomain(BuiltinDiv, err)
		}
	}
	return NewNumberValue(acc), nil
}

func builtinEq(ctx *Context, args []*Value) (*Value, error) {
	nums, err := numbers(BuiltinEq, args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, errArity(BuiltinEq, "expected at least 1, got 0")
	}
	for _, n := range nums[1:] {
		if n != nums[0] {
			return Nil, nil
		}
	}
	return True, nil
}

// compareWith builds a chained comparison. Fewer than two arguments compare
// as false.
func compareWith(b Builtin, rel func(a, b int64) bool) Function {
	return func(ctx *Context, args []*Value) (*Value, error) {
		nums, err := numbers(b, args)
		if err != nil {
			return nil, err
		}
		if len(nums) < 2 {
			return Nil, nil
		}
		for i := 1; i < len(nums); i++ {
			if !rel(nums[i-1], nums[i]) {
				return Nil, nil
			}
		}
		return True, nil
	}
}

func builtinNot(ctx *Context, args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, errArity(BuiltinNot, "expected 1, got %d", len(args))
	}
	if args[0].IsTruthy() {
		return Nil, nil
	}
	return True, nil
}

// (cons) and (cons a) are Nil.
func builtinCons(ctx *Context, args []*Value) (*Value, error) {
	switch len(args) {
	case 0, 1:
		return Nil, nil
	case 2:
		return NewConsValue(args[0], args[1]), nil
	}
	return nil, errArity(BuiltinCons, "expected 2, got %d", len(args))
}

func builtinList(ctx *Context, args []*Value) (*Value, error) {
	return NewListValue(args...), nil
}

func accessor(b Builtin, get func(*Cons) *Value) Function {
	return func(ctx *Context, args []*Value) (*Value, error) {
		if len(args) != 1 {
			return nil, errArity(b, "expected 1, got %d", len(args))
		}
		if args[0].Type != ValueTypeCons {
			return nil, errArgumentType(b, "cons", args[0])
		}
		return get(args[0].Cons()), nil
	}
}
