// File: pkg/kernel/gen/main.go
package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	reg "github.com/mmcloughlin/avo/reg"
)

func main() {
	ConstraintExpr("!noasm")

	TEXT("dotFMA4AVX", NOSPLIT, "func(x, y []float32) float32")
	Pragma("noescape")
	Doc("dotFMA4AVX returns the reduced 4-lane fused multiply-add sum of x and y. len(x) must be a multiple of 4 and no larger than len(y).")
	generateDotFMA4()
	Generate()
}

func generateDotFMA4() {
	xPtr := Load(Param("x").Base(), GP64())
	yPtr := Load(Param("y").Base(), GP64())
	n := Load(Param("x").Len(), GP64())

	acc := XMM()
	VXORPS(acc, acc, acc)

	Label("loop")
	CMPQ(n, Imm(4))
	JL(LabelRef("reduce"))

	xv := XMM()
	yv := XMM()
	VMOVUPS(Mem{Base: xPtr}, xv)
	VMOVUPS(Mem{Base: yPtr}, yv)
	VFMADD231PS(yv, xv, acc)

	ADDQ(Imm(16), xPtr)
	ADDQ(Imm(16), yPtr)
	SUBQ(Imm(4), n)
	JMP(LabelRef("loop"))

	Label("reduce")
	sumHorizontal(acc)
	Store(acc, ReturnIndex(0))
	RET()
}

// sumHorizontal leaves the sum of the 4 float32 lanes of vec in every lane.
func sumHorizontal(vec reg.VecVirtual) {
	VHADDPS(vec, vec, vec)
	VHADDPS(vec, vec, vec)
}
