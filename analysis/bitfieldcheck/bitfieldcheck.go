// Package bitfieldcheck reports bitfield calls whose constant operands can
// never be valid: zero masks, masks with more than one run of set bits, and
// constant values wider than the field of a constant mask.
//
// The bitfield package itself can only catch these at run time, and only
// truncates out-of-range values in release builds. Running this pass in CI
// (cmd/bitfieldvet, or go vet -vettool) turns them into build failures.
package bitfieldcheck

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"Bitfield/bits"
)

const bitfieldPath = "Bitfield/bitfield"

var Analyzer = &analysis.Analyzer{
	Name:     "bitfieldcheck",
	Doc:      "reject invalid constant masks and constant values that do not fit their bitfield",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// operands holds argument positions of a checked function, -1 when absent.
type operands struct {
	value int
	mask  int
}

var entryPoints = map[string]operands{
	"Encode":       {value: 0, mask: 1},
	"ReplaceBitsP": {value: 1, mask: 2},
	"FieldMax":     {value: -1, mask: 0},
	"FieldFit":     {value: 1, mask: 0},
	"NewMask":      {value: -1, mask: 0},
	"MustMask":     {value: -1, mask: 0},
}

func init() {
	for _, width := range []string{"", "8", "16", "32", "64"} {
		for _, prefix := range []string{"", "LE", "BE"} {
			entryPoints[prefix+"EncodeBits"+width] = operands{value: 0, mask: 1}
			entryPoints[prefix+"GetBits"+width] = operands{value: -1, mask: 1}
		}
		entryPoints["ReplaceBits"+width] = operands{value: 1, mask: 2}
	}
	entryPoints["LEReplaceBits"] = operands{value: 1, mask: 2}
	entryPoints["BEReplaceBits"] = operands{value: 1, mask: 2}
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != bitfieldPath {
			return
		}
		if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
			return
		}
		ops, ok := entryPoints[fn.Name()]
		if !ok || ops.mask >= len(call.Args) {
			return
		}
		checkCall(pass, call, fn.Name(), ops)
	})
	return nil, nil
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr, name string, ops operands) {
	maskArg := call.Args[ops.mask]
	mask, ok := constUint(pass, maskArg)
	if !ok {
		return
	}
	if mask == 0 {
		pass.Reportf(maskArg.Pos(), "%s: zero mask selects no field", name)
		return
	}
	shift, _, ok := bits.Analyze(mask)
	if !ok {
		pass.Reportf(maskArg.Pos(), "%s: mask %#x is not a contiguous run of bits", name, mask)
		return
	}

	if ops.value < 0 || ops.value >= len(call.Args) {
		return
	}
	valueArg := call.Args[ops.value]
	value, ok := constUint(pass, valueArg)
	if !ok {
		return
	}
	if max := mask >> uint(shift); value > max {
		pass.Reportf(valueArg.Pos(), "%s: value %d does not fit mask %#x (max %d)", name, value, mask, max)
	}
}

func constUint(pass *analysis.Pass, expr ast.Expr) (uint64, bool) {
	tv, ok := pass.TypesInfo.Types[expr]
	if !ok || tv.Value == nil {
		return 0, false
	}
	v := constant.ToInt(tv.Value)
	if v.Kind() != constant.Int {
		return 0, false
	}
	return constant.Uint64Val(v)
}
