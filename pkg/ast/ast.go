package ast

type NodeType string

const (
	NodeProgram             NodeType = "Program"
	NodeLetStatement        NodeType = "LetStatement"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeBlockStatement      NodeType = "BlockStatement"
	NodeIdentifier          NodeType = "Identifier"
	NodeIntegerLiteral      NodeType = "IntegerLiteral"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeBooleanLiteral      NodeType = "BooleanLiteral"
	NodeArrayLiteral        NodeType = "ArrayLiteral"
	NodeHashLiteral         NodeType = "HashLiteral"
	NodeFunctionLiteral     NodeType = "FunctionLiteral"
	NodePrefixExpression    NodeType = "PrefixExpression"
	NodeInfixExpression     NodeType = "InfixExpression"
	NodeIndexExpression     NodeType = "IndexExpression"
	NodeCallExpression      NodeType = "CallExpression"
	NodeIfExpression        NodeType = "IfExpression"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Program is the root of every parsed source file or REPL line.
type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// Statements

type LetStatement struct {
	nodeImpl
	statementMarker

	Name  *Identifier `json:"name"`
	Value Expression  `json:"value"`
}

func NewLetStatement(name *Identifier, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Name: name, Value: value}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

// BlockStatement is the body of a function literal or an if branch.
type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type ArrayLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Elements []Expression `json:"elements"`
}

func NewArrayLiteral(elements []Expression) *ArrayLiteral {
	return &ArrayLiteral{nodeImpl: newNodeImpl(NodeArrayLiteral), Elements: elements}
}

// HashPair keeps a key and value expression together so source order
// survives into the AST.
type HashPair struct {
	Key   Expression `json:"key"`
	Value Expression `json:"value"`
}

type HashLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Pairs []HashPair `json:"pairs"`
}

func NewHashLiteral(pairs []HashPair) *HashLiteral {
	return &HashLiteral{nodeImpl: newNodeImpl(NodeHashLiteral), Pairs: pairs}
}

type FunctionLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Parameters []*Identifier   `json:"parameters"`
	Body       *BlockStatement `json:"body"`
}

func NewFunctionLiteral(params []*Identifier, body *BlockStatement) *FunctionLiteral {
	return &FunctionLiteral{nodeImpl: newNodeImpl(NodeFunctionLiteral), Parameters: params, Body: body}
}

// Operators

type PrefixExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Right    Expression `json:"right"`
}

func NewPrefixExpression(operator string, right Expression) *PrefixExpression {
	return &PrefixExpression{nodeImpl: newNodeImpl(NodePrefixExpression), Operator: operator, Right: right}
}

type InfixExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewInfixExpression(operator string, left, right Expression) *InfixExpression {
	return &InfixExpression{nodeImpl: newNodeImpl(NodeInfixExpression), Operator: operator, Left: left, Right: right}
}

type IndexExpression struct {
	nodeImpl
	expressionMarker

	Left  Expression `json:"left"`
	Index Expression `json:"index"`
}

func NewIndexExpression(left, index Expression) *IndexExpression {
	return &IndexExpression{nodeImpl: newNodeImpl(NodeIndexExpression), Left: left, Index: index}
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Function  Expression   `json:"function"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee Expression, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Function: callee, Arguments: args}
}

// IfExpression has a nil Alternative when the source has no else branch.
type IfExpression struct {
	nodeImpl
	expressionMarker

	Condition   Expression      `json:"condition"`
	Consequence *BlockStatement `json:"consequence"`
	Alternative *BlockStatement `json:"alternative,omitempty"`
}

func NewIfExpression(cond Expression, consequence, alternative *BlockStatement) *IfExpression {
	return &IfExpression{nodeImpl: newNodeImpl(NodeIfExpression), Condition: cond, Consequence: consequence, Alternative: alternative}
}
