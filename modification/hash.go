package modification

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"github.com/modc-lang/modc/ast"
)

type hashSeed byte

const (
	seedElement hashSeed = iota
	seedParameter
	seedRedeclaration
	seedModification
	seedExprBool
	seedExprInt
	seedExprReal
	seedExprString
	seedExprEnum
	seedExprComponentRef
	seedExprUnary
	seedExprBinary
	seedExprIfElse
	seedExprRange
	seedExprCall
	seedExprParen
	seedExprIndex
	seedExprField
	seedExprArrayConcat
	seedExprArrayCtor
	seedRedeclClass
	seedRedeclComponent
)

// digest mirrors expr.digest: crypto/sha256 directly, for the same reason
// (spec §4.3 requires a stable 256-bit content hash and no pack library
// offers content-addressed hashing).
func digest(seed hashSeed, chunks ...[]byte) [32]byte {
	h := sha256.New()
	h.Write([]byte{byte(seed)})
	for _, c := range chunks {
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(c)))
		h.Write(lenBuf[:])
		h.Write(c)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash implements spec §4.3's Modification digest: each argument's hash in
// order, then the expression's hash, then the annotations hash.
func (m *Modification) Hash() [32]byte {
	if m == nil {
		return digest(seedModification)
	}
	chunks := make([][]byte, 0, len(m.Arguments)+2)
	for _, arg := range m.Arguments {
		h := arg.Hash()
		chunks = append(chunks, h[:])
	}
	eh := hashExpr(m.Expr)
	chunks = append(chunks, eh[:])
	ah := m.Annotations.Hash()
	chunks = append(chunks, ah[:])
	return digest(seedModification, chunks...)
}

// Hash implements Argument: dotted name, then each nested argument, then
// its expression, then its annotations (via the Nested modification).
func (e *ElementModification) Hash() [32]byte {
	nh := e.Nested.Hash()
	return digest(seedElement, []byte(e.Head), nh[:])
}

// Hash implements Argument: name and expression.
func (p *ParameterModification) Hash() [32]byte {
	eh := hashExpr(p.Expr)
	return digest(seedParameter, []byte(p.ParamName), eh[:])
}

// Hash implements Argument: name and the replacement's structural hash.
func (r *Redeclaration) Hash() [32]byte {
	return digest(seedRedeclaration, []byte(r.RedeclName), r.ReplacementHash[:])
}

func hashRedeclarationTarget(n *ast.ElementRedeclaration) [32]byte {
	if n.ClassDef != nil {
		return digest(seedRedeclClass, []byte(n.ClassDef.Name()), []byte{byte(n.ClassDef.Kind)})
	}
	if n.Component != nil {
		chunks := [][]byte{[]byte(n.Component.Type.Name)}
		for _, d := range n.Component.Declarations {
			chunks = append(chunks, []byte(d.Name))
		}
		return digest(seedRedeclComponent, chunks...)
	}
	return digest(seedRedeclComponent)
}

// hashExpr is a structural hash over unevaluated AST expressions, used when
// a modification's expression has not yet been constant-folded into an
// expr.Value. Folded values hash via expr.Value.Hash instead; both schemes
// share the length-prefixed chunk digest technique but are otherwise
// independent, since modification must not import the interp package that
// performs folding (interp imports modification).
func hashExpr(e ast.Expr) [32]byte {
	if e == nil {
		return digest(0xff)
	}
	return ast.Accept(exprHasher{}, e).([32]byte)
}

type exprHasher struct{}

func (exprHasher) VisitBoolLit(n *ast.BoolLit) any {
	v := byte(0)
	if n.Value {
		v = 1
	}
	return digest(seedExprBool, []byte{v})
}

func (exprHasher) VisitIntLit(n *ast.IntLit) any {
	return digest(seedExprInt, []byte(strconv.FormatInt(n.Value, 10)))
}

func (exprHasher) VisitRealLit(n *ast.RealLit) any {
	return digest(seedExprReal, []byte(strconv.FormatFloat(n.Value, 'g', -1, 64)))
}

func (exprHasher) VisitStringLit(n *ast.StringLit) any {
	return digest(seedExprString, []byte(n.Value))
}

func (exprHasher) VisitEnumLit(n *ast.EnumLit) any {
	return digest(seedExprEnum, []byte(n.Name))
}

func (exprHasher) VisitComponentRef(n *ast.ComponentRef) any {
	chunks := make([][]byte, 0, len(n.Parts)+1)
	if n.Global {
		chunks = append(chunks, []byte{1})
	} else {
		chunks = append(chunks, []byte{0})
	}
	for _, p := range n.Parts {
		chunks = append(chunks, []byte(p.Name))
		for _, sub := range p.Subscripts {
			h := hashExpr(sub)
			chunks = append(chunks, h[:])
		}
	}
	return digest(seedExprComponentRef, chunks...)
}

func (exprHasher) VisitUnary(n *ast.UnaryExpr) any {
	h := hashExpr(n.Operand)
	return digest(seedExprUnary, []byte(n.Op), h[:])
}

func (exprHasher) VisitBinary(n *ast.BinaryExpr) any {
	lh, rh := hashExpr(n.Left), hashExpr(n.Right)
	return digest(seedExprBinary, []byte(n.Op), lh[:], rh[:])
}

func (exprHasher) VisitIfElse(n *ast.IfElseExpr) any {
	chunks := make([][]byte, 0, 2*len(n.Conditions)+1)
	for i := range n.Conditions {
		ch, bh := hashExpr(n.Conditions[i]), hashExpr(n.Branches[i])
		chunks = append(chunks, ch[:], bh[:])
	}
	eh := hashExpr(n.Else)
	chunks = append(chunks, eh[:])
	return digest(seedExprIfElse, chunks...)
}

func (exprHasher) VisitRange(n *ast.RangeExpr) any {
	sh, th, eh := hashExpr(n.Start), hashExpr(n.Step), hashExpr(n.Stop)
	return digest(seedExprRange, sh[:], th[:], eh[:])
}

func (exprHasher) VisitFunctionCall(n *ast.FunctionCallExpr) any {
	chunks := [][]byte{[]byte(n.Name.Name)}
	for _, p := range n.Positional {
		h := hashExpr(p)
		chunks = append(chunks, h[:])
	}
	for _, na := range n.Named {
		h := hashExpr(na.Value)
		chunks = append(chunks, []byte(na.Name), h[:])
	}
	return digest(seedExprCall, chunks...)
}

func (exprHasher) VisitParenthesized(n *ast.ParenExpr) any {
	chunks := make([][]byte, 0, len(n.Elements))
	for _, el := range n.Elements {
		h := hashExpr(el)
		chunks = append(chunks, h[:])
	}
	return digest(seedExprParen, chunks...)
}

func (exprHasher) VisitIndex(n *ast.IndexExpr) any {
	chunks := make([][]byte, 0, len(n.Indices)+1)
	bh := hashExpr(n.Base)
	chunks = append(chunks, bh[:])
	for _, idx := range n.Indices {
		h := hashExpr(idx)
		chunks = append(chunks, h[:])
	}
	return digest(seedExprIndex, chunks...)
}

func (exprHasher) VisitField(n *ast.FieldExpr) any {
	bh := hashExpr(n.Base)
	return digest(seedExprField, bh[:], []byte(n.Field))
}

func (exprHasher) VisitArrayConcat(n *ast.ArrayConcatExpr) any {
	var chunks [][]byte
	for _, row := range n.Rows {
		for _, el := range row {
			h := hashExpr(el)
			chunks = append(chunks, h[:])
		}
		chunks = append(chunks, []byte{';'})
	}
	return digest(seedExprArrayConcat, chunks...)
}

func (exprHasher) VisitArrayConstructor(n *ast.ArrayConstructorExpr) any {
	chunks := make([][]byte, 0, len(n.Elements))
	for _, el := range n.Elements {
		h := hashExpr(el)
		chunks = append(chunks, h[:])
	}
	return digest(seedExprArrayCtor, chunks...)
}
