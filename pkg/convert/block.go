package convert

import (
	"bufio"
	"fmt"
	"strings"
)

// blockKind identifies which block element, if any, is currently open.
// At most one block is ever open, so a single tagged value replaces a set
// of mutually exclusive flags.
type blockKind int

const (
	blockNone blockKind = iota
	blockParagraph
	blockUnordered
	blockOrdered
)

// closingTag returns the closing tag for an open block, or "" for blockNone.
func (k blockKind) closingTag() string {
	switch k {
	case blockParagraph:
		return "</p>"
	case blockUnordered:
		return "</ul>"
	case blockOrdered:
		return "</ol>"
	default:
		return ""
	}
}

// itemIndent is the indentation applied to list items, paragraph content
// lines, and <br/> markers.
const itemIndent = "    "

// conversion is the per-run block state machine. One instance per Convert
// call; it is not safe for concurrent use.
type conversion struct {
	out  *bufio.Writer
	open blockKind
}

// line classifies one raw input line and emits the corresponding HTML.
// Classification is evaluated in fixed priority: heading, unordered item,
// ordered item, paragraph text, blank. List markers are the two-byte
// prefixes "- " and "* "; a marker without its space ("-x") falls through
// to paragraph text.
func (c *conversion) line(raw string) error {
	text := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(text, "#"):
		return c.heading(text)
	case strings.HasPrefix(text, "- "):
		return c.listItem(blockUnordered, "<ul>", text[2:])
	case strings.HasPrefix(text, "* "):
		return c.listItem(blockOrdered, "<ol>", text[2:])
	case text != "":
		return c.paragraphLine(text)
	default:
		// A blank line ends a paragraph. Lists stay open across blank
		// lines; only a heading, a paragraph, the other list type, or
		// end of input closes them.
		if c.open == blockParagraph {
			return c.closeOpen()
		}
		return nil
	}
}

// heading closes any open block and emits <hN>text</hN>. The level is the
// length of the first space-delimited token, uncapped: "### Title" is level 3
// and a bare "#######" is level 7. A heading opens no persistent block.
func (c *conversion) heading(text string) error {
	level := len(text)
	if idx := strings.IndexByte(text, ' '); idx >= 0 {
		level = idx
	}
	body := strings.TrimSpace(text[level:])

	if err := c.closeOpen(); err != nil {
		return err
	}
	return c.emit(fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(body), level))
}

// listItem emits one <li> line, opening a list of the given kind first if
// needed. Opening a list closes a paragraph or a list of the other kind.
func (c *conversion) listItem(kind blockKind, openTag, rest string) error {
	if c.open != kind {
		if err := c.closeOpen(); err != nil {
			return err
		}
		if err := c.emit(openTag); err != nil {
			return err
		}
		c.open = kind
	}
	return c.emit(itemIndent + "<li>" + renderInline(strings.TrimSpace(rest)) + "</li>")
}

// paragraphLine emits one line of paragraph content, opening a <p> first if
// needed. Lines after the first within the same paragraph are separated by
// an indented <br/>.
func (c *conversion) paragraphLine(text string) error {
	if c.open != blockParagraph {
		if err := c.closeOpen(); err != nil {
			return err
		}
		if err := c.emit("<p>"); err != nil {
			return err
		}
		c.open = blockParagraph
	} else if err := c.emit(itemIndent + "<br/>"); err != nil {
		return err
	}
	return c.emit(itemIndent + renderInline(text))
}

// closeOpen emits the closing tag for the currently open block, if any, and
// returns the machine to the no-block state.
func (c *conversion) closeOpen() error {
	if c.open == blockNone {
		return nil
	}
	tag := c.open.closingTag()
	c.open = blockNone
	return c.emit(tag)
}

// finish closes whatever block is still open at end of input.
func (c *conversion) finish() error {
	return c.closeOpen()
}

func (c *conversion) emit(line string) error {
	if _, err := c.out.WriteString(line); err != nil {
		return err
	}
	return c.out.WriteByte('\n')
}
