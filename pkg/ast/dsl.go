package ast

// Short constructors for building trees by hand in tests and tooling.

func Prog(stmts ...Statement) *Program { return NewProgram(stmts) }

func Let(name string, value Expression) *LetStatement {
	return NewLetStatement(NewIdentifier(name), value)
}

func Ret(value Expression) *ReturnStatement { return NewReturnStatement(value) }

func Expr(expr Expression) *ExpressionStatement { return NewExpressionStatement(expr) }

func Block(stmts ...Statement) *BlockStatement { return NewBlockStatement(stmts) }

func ID(name string) *Identifier { return NewIdentifier(name) }

func Int(value int64) *IntegerLiteral { return NewIntegerLiteral(value) }

func Str(value string) *StringLiteral { return NewStringLiteral(value) }

func Bool(value bool) *BooleanLiteral { return NewBooleanLiteral(value) }

func Arr(elements ...Expression) *ArrayLiteral { return NewArrayLiteral(elements) }

// Hash builds a hash literal from alternating key and value expressions.
func Hash(kv ...Expression) *HashLiteral {
	pairs := make([]HashPair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, HashPair{Key: kv[i], Value: kv[i+1]})
	}
	return NewHashLiteral(pairs)
}

func Fn(params []string, body ...Statement) *FunctionLiteral {
	ids := make([]*Identifier, len(params))
	for i, p := range params {
		ids[i] = NewIdentifier(p)
	}
	return NewFunctionLiteral(ids, NewBlockStatement(body))
}

func Prefix(op string, right Expression) *PrefixExpression { return NewPrefixExpression(op, right) }

func Bin(op string, left, right Expression) *InfixExpression {
	return NewInfixExpression(op, left, right)
}

func Index(left, index Expression) *IndexExpression { return NewIndexExpression(left, index) }

func Call(callee Expression, args ...Expression) *CallExpression {
	return NewCallExpression(callee, args)
}

// If builds an if expression; pass a nil alternative for a missing else.
func If(cond Expression, consequence, alternative *BlockStatement) *IfExpression {
	return NewIfExpression(cond, consequence, alternative)
}
