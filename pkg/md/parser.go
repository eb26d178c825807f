// parser.go implements the line-driven markdown to HTML state machine.
package md

import (
	"regexp"
	"strings"
)

const fenceMarker = "```"

// linkPattern matches "<prefix>[<label>](<url>)<suffix>". The greedy prefix
// makes the last bracket/paren pair on the line the one that is linked.
var linkPattern = regexp.MustCompile(`^(.*)\[(.*)\]\((.*)\)(.*)$`)

// parser holds the state of a single Parse call.
type parser struct {
	stack contextStack
	out   []string
}

// rule inspects a line and reports whether it handled it. Rules are tried in
// order and the first one to handle a line wins.
type rule func(p *parser, line string) bool

var rules = []rule{
	(*parser).fence,
	(*parser).verbatim,
	(*parser).link,
	(*parser).thematicBreak,
	(*parser).heading,
	listItem("1. ", OrderedList),
	listItem("* ", UnorderedListStar),
	listItem("- ", UnorderedListDash),
	(*parser).tableRow,
	(*parser).blank,
	(*parser).paragraph,
}

// Parse converts markdown lines into the lines of a complete HTML document.
// It never fails: lines that match no structural rule become paragraphs.
// Each call owns its own state, so Parse is safe for concurrent use.
func Parse(lines []string) []string {
	return Wrap(ParseBody(lines))
}

// ParseBody converts markdown lines into HTML body lines without the
// document envelope. Every block opened while parsing is closed on return.
func ParseBody(lines []string) []string {
	p := &parser{out: make([]string, 0, len(lines))}
	for _, line := range lines {
		p.parseLine(line)
	}
	for len(p.stack) > 0 {
		p.close()
	}
	return p.out
}

func (p *parser) parseLine(line string) {
	for _, r := range rules {
		if r(p, line) {
			return
		}
	}
}

func (p *parser) emit(lines ...string) {
	p.out = append(p.out, lines...)
}

// open pushes c and emits its opening tag.
func (p *parser) open(c BlockContext, class string) {
	p.stack.push(c)
	if tag := openTag(c, class); tag != "" {
		p.emit(tag)
	}
}

// close emits the closing tag of the top context and pops it.
func (p *parser) close() {
	c, ok := p.stack.pop()
	if !ok {
		return
	}
	if tag := closeTag(c); tag != "" {
		p.emit(tag)
	}
}

// enter makes c the open context, closing whatever was open before unless
// it already is c.
func (p *parser) enter(c BlockContext) {
	if p.stack.top() == c {
		return
	}
	p.close()
	p.open(c, "")
}

func (p *parser) fence(line string) bool {
	if !strings.HasPrefix(line, fenceMarker) {
		return false
	}
	if p.stack.top() == Verbatim {
		p.close()
		return true
	}
	class := strings.TrimSpace(strings.TrimPrefix(line, fenceMarker))
	p.close()
	p.open(Verbatim, class)
	return true
}

func (p *parser) verbatim(line string) bool {
	if p.stack.top() != Verbatim {
		return false
	}
	p.emit(EscapeHTML(line))
	return true
}

// link substitutes an inline link and leaves any open block untouched.
func (p *parser) link(line string) bool {
	m := linkPattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	p.emit(link(m[1], m[2], m[3], m[4]))
	return true
}

func (p *parser) thematicBreak(line string) bool {
	if line != "***" && line != "---" {
		return false
	}
	p.close()
	p.emit("<hr>")
	return true
}

// heading tries "# " through "###### " shortest first.
func (p *parser) heading(line string) bool {
	for level := 1; level <= 6; level++ {
		marker := strings.Repeat("#", level) + " "
		if !strings.HasPrefix(line, marker) {
			continue
		}
		p.close()
		p.emit(heading(level, strings.Replace(line, marker, "", 1)))
		return true
	}
	return false
}

func listItem(marker string, c BlockContext) rule {
	return func(p *parser, line string) bool {
		if !strings.HasPrefix(line, marker) {
			return false
		}
		p.enter(c)
		p.emit("<li>" + strings.Replace(line, marker, "", 1) + "</li>")
		return true
	}
}

func (p *parser) tableRow(line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	p.enter(Table)
	p.emit("<tr>")
	for _, cell := range strings.Split(line, "|") {
		if cell == "" {
			continue
		}
		p.emit("<td>" + cell + "</td>")
	}
	p.emit("</tr>")
	return true
}

func (p *parser) blank(line string) bool {
	if line != "" {
		return false
	}
	p.close()
	p.emit("")
	return true
}

func (p *parser) paragraph(line string) bool {
	p.close()
	p.emit("<p>" + line + "</p>")
	return true
}
