package ast

// Block is a structural unit of a document.
type Block interface {
	blockNode()
}

type Heading struct {
	Level int // 1..6
	Runs  []Run
}

type Paragraph struct {
	Runs []Run
}

// List is a run of sibling items sharing one marker family.
type List struct {
	Ordered bool
	Start   int // first number of an ordered list; 0 for unordered lists
	Items   []ListItem
}

// ListItem holds the inline content of one item and at most one nested block.
type ListItem struct {
	Runs   []Run
	Nested Block // nil when the item has no nested block
}

type Table struct {
	Header TableRow
	Body   []TableRow
}

type TableRow struct {
	IsHeader bool
	Cells    []Cell
}

type Cell struct {
	Runs []Run
}

// CodeBlock is a fenced block; Content is the raw text between the fences.
type CodeBlock struct {
	Lang    string
	Content string
}

type BlockQuote struct {
	Blocks []Block
}

type HorizontalRule struct{}

func (Heading) blockNode()        {}
func (Paragraph) blockNode()      {}
func (List) blockNode()           {}
func (Table) blockNode()          {}
func (CodeBlock) blockNode()      {}
func (BlockQuote) blockNode()     {}
func (HorizontalRule) blockNode() {}
