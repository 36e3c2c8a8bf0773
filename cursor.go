package ofxstream

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

// cursor is a forward-only reader of markup events shared by every aggregate
// reader of one parse. It keeps the names of all open elements so a reader
// can recognize the end tag of its own aggregate without building a tree.
type cursor struct {
	decoder *xml.Decoder
	open    TagStack
}

func newCursor(r io.Reader, charsetReader func(string, io.Reader) (io.Reader, error)) *cursor {
	decoder := xml.NewDecoder(r)
	// Bank exports carry HTML entities and stray end tags, let the decoder
	// synthesize the missing closes instead of failing.
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charsetReader
	return &cursor{
		decoder: decoder,
		open:    NewStack(),
	}
}

// next returns the next token, io.EOF at the end of the input.
func (c *cursor) next() (xml.Token, error) {
	token, err := c.decoder.Token()
	if err != nil {
		return nil, err
	}
	switch t := token.(type) {
	case xml.StartElement:
		c.open.Push(t.Name)
	case xml.EndElement:
		if _, err := c.open.Pop(); err != nil {
			return nil, err
		}
	}
	return token, nil
}

// walk consumes the aggregate opened by start, which must be the element the
// cursor just read. visit is called for every child start element and must
// either consume the child up to its end tag or return leaving it open, in
// which case the child's own children are passed to visit in turn.
// walk returns only after reading the end tag matching start.
func (c *cursor) walk(start xml.StartElement, visit func(xml.StartElement) error) error {
	depth := c.open.Size()
	glog.V(2).Infof("entering %s at depth %d", start.Name.Local, depth)
	for {
		token, err := c.next()
		if err != nil {
			return fmt.Errorf("error - reading %s: %w", start.Name.Local, eofToUnexpected(err))
		}
		switch t := token.(type) {
		case xml.StartElement:
			if err := visit(t); err != nil {
				return err
			}
		case xml.EndElement:
			if c.open.Size() >= depth {
				continue
			}
			if t.Name.Local != start.Name.Local {
				return fmt.Errorf("error - %s closed by %s", start.Name.Local, t.Name.Local)
			}
			glog.V(2).Infof("exiting %s", start.Name.Local)
			return nil
		}
	}
}

// skip consumes the element opened by start and all of its descendants.
func (c *cursor) skip(start xml.StartElement) error {
	return c.walk(start, func(xml.StartElement) error { return nil })
}

// unknown reports an element the enclosing aggregate does not handle and
// skips its subtree so its children are not read as siblings.
func (c *cursor) unknown(parent string, se xml.StartElement) error {
	glog.Warningf("Unknown %s element: %s", parent, se.Name.Local)
	return c.skip(se)
}

// text reads the character data of the element opened by start up to its
// end tag. Nested elements are not expected in a leaf; their text is kept,
// separated by a space.
func (c *cursor) text(start xml.StartElement) (string, error) {
	return c.readText(start, "")
}

// textPreferring reads an element banks send either as text or as an
// aggregate. When the element holds a child named prefer, the child's text
// is returned, otherwise the element's own text.
func (c *cursor) textPreferring(start xml.StartElement, prefer string) (string, error) {
	return c.readText(start, prefer)
}

func (c *cursor) readText(start xml.StartElement, prefer string) (string, error) {
	var (
		depth     = c.open.Size()
		b         strings.Builder
		preferred string
		found     bool
	)
	for {
		token, err := c.next()
		if err != nil {
			return "", fmt.Errorf("error - reading %s: %w", start.Name.Local, eofToUnexpected(err))
		}
		switch t := token.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			if prefer != "" && t.Name.Local == prefer && !found {
				if preferred, err = c.readText(t, ""); err != nil {
					return "", err
				}
				found = true
				continue
			}
			if prefer == "" {
				glog.Warningf("Unexpected element %s inside %s", t.Name.Local, start.Name.Local)
			}
			b.WriteByte(' ')
		case xml.EndElement:
			if c.open.Size() >= depth {
				continue
			}
			if found {
				return preferred, nil
			}
			return b.String(), nil
		}
	}
}

// verbatimTo stores the element text as is.
func (c *cursor) verbatimTo(start xml.StartElement, dst *string) error {
	s, err := c.text(start)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

// textTo stores the element text without surrounding whitespace.
func (c *cursor) textTo(start xml.StartElement, dst *string) error {
	s, err := c.text(start)
	if err != nil {
		return err
	}
	*dst = strings.TrimSpace(s)
	return nil
}

// collapsedTo stores the element text with every run of whitespace replaced
// by a single space.
func (c *cursor) collapsedTo(start xml.StartElement, dst *string) error {
	s, err := c.text(start)
	if err != nil {
		return err
	}
	*dst = CollapseSpace(s)
	return nil
}

// amountTo stores the element text as an amount. Malformed amounts are
// stored as zero.
func (c *cursor) amountTo(start xml.StartElement, dst *decimal.Decimal) error {
	s, err := c.text(start)
	if err != nil {
		return err
	}
	*dst = ParseAmount(s)
	return nil
}

// dateTo stores the element text as a date. A malformed date is fatal.
func (c *cursor) dateTo(start xml.StartElement, dst *time.Time) error {
	s, err := c.text(start)
	if err != nil {
		return err
	}
	d, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("error - reading %s %q: %w", start.Name.Local, s, err)
	}
	*dst = d
	return nil
}

func eofToUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
