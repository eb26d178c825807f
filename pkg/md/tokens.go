// tokens.go defines the block contexts tracked while parsing lines.
package md

// BlockContext identifies the block-level wrapper currently open around
// consecutive output lines.
type BlockContext int

const (
	Normal            BlockContext = iota // no wrapper
	Verbatim                              // fenced code: <pre>
	OrderedList                           // "1. " items: <ol>
	UnorderedListStar                     // "* " items: <ul>
	UnorderedListDash                     // "- " items: <ul>
	Table                                 // "|" rows: <table>
)

var contextNames = map[BlockContext]string{
	Normal:            "normal",
	Verbatim:          "verbatim",
	OrderedList:       "ordered-list",
	UnorderedListStar: "unordered-list-star",
	UnorderedListDash: "unordered-list-dash",
	Table:             "table",
}

// String returns a readable name for the context.
func (c BlockContext) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return "unknown"
}

// contextStack holds the open block contexts. The top of an empty stack is
// Normal so callers never have to special-case emptiness.
type contextStack []BlockContext

func (s *contextStack) push(c BlockContext) {
	*s = append(*s, c)
}

// pop removes the top context. Popping an empty stack is a no-op.
func (s *contextStack) pop() (BlockContext, bool) {
	if len(*s) == 0 {
		return Normal, false
	}
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top, true
}

func (s contextStack) top() BlockContext {
	if len(s) == 0 {
		return Normal
	}
	return s[len(s)-1]
}
