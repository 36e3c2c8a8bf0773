package ofxstream

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
)

//go:generate mockgen -destination=mock_cleaner_test.go -package=ofxstream_test github.com/rockstardevs/ofxstream Cleaner

// Cleaner converts OFX 1.x data to XML the Parser can read.
type Cleaner interface {
	CleanupXML(data []byte) (*bytes.Buffer, error)
}

type cleaner struct{}

// NewCleaner returns the default Cleaner. OFX 1.x is SGML and elements
// usually lack their closing tags; the cleaner restores them using the set
// of known aggregates, and closes aggregates left open.
func NewCleaner() Cleaner {
	return cleaner{}
}

// cleanup is the state of one CleanupXML call.
type cleanup struct {
	open        TagStack          // Open aggregates.
	lastData    string            // Holds the last parsed char data, escaped.
	lastElement *xml.StartElement // Last parsed element start tag.
	out         xmlWriter
}

// CleanupXML returns cleaned XML from the given data.
func (c cleaner) CleanupXML(data []byte) (*bytes.Buffer, error) {
	data = preprocessOFXData(data)

	// Detect the start of XML like data, skipping the OFX 1.x header.
	xmlIndex := bytes.Index(data, []byte("<OFX>"))
	if xmlIndex == -1 {
		return nil, fmt.Errorf("error - invalid file, OFX tag not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(data[xmlIndex:]))
	// SGML data carries bare ampersands.
	decoder.Strict = false
	state := &cleanup{open: NewStack()}

	// Read tokens and re-assemble them into another buffer, adding any missing
	// starting or closing tags and trimming spaces/newlines.
	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.CharData:
			state.lastData = escapeString(strings.TrimSpace(string(t)))
			glog.V(3).Infof("case chardata (%s)", state.lastData)
		case xml.StartElement:
			if err := state.startElement(t.Copy()); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if err := state.endElement(t); err != nil {
				return nil, err
			}
		}
	}
	// Flush an element left pending at the end of the data and close
	// aggregates left open.
	if state.lastData != "" && state.lastElement != nil {
		state.out.element(*state.lastElement, state.lastData)
	}
	for !state.open.IsEmpty() {
		name, _ := state.open.Pop()
		state.out.end(name)
	}
	return &state.out.buff, nil
}

func (s *cleanup) startElement(t xml.StartElement) error {
	glog.V(3).Infof("case start element %s", t.Name.Local)
	// If last data exists, it takes highest precedence. This is a start tag and
	// last data exists implies that the previous end tag is missing.
	if s.lastData != "" {
		glog.V(3).Infof("StartTag: previous tag needs to be closed: %s %v", s.lastData, s.lastElement)
		// Data without a pending element is missing both start and end tags.
		if s.lastElement == nil {
			return fmt.Errorf("error: charData(%s) missing start and end tags", s.lastData)
		}
		s.out.element(*s.lastElement, s.lastData)
		s.lastData = ""
	} else if s.lastElement != nil {
		// An element followed by a start tag without data holds nested
		// elements, it is an aggregate missing from the known set.
		glog.V(3).Infof("StartTag: %s holds %s, pushing to stack", s.lastElement.Name.Local, t.Name.Local)
		s.open.Push(s.lastElement.Name)
		s.out.start(*s.lastElement)
	}
	s.lastElement = nil
	// Aggregates are written now and closed later. Elements can't have nested
	// tags, so they wait for their data.
	if IsAggregate(t.Name.Local) {
		glog.V(3).Infof("StartTag: %s is aggregate, pushing to stack", t.Name.Local)
		s.open.Push(t.Name)
		s.out.start(t)
	} else {
		glog.V(3).Infof("StartTag: %s is NOT aggregate, updating lastElement", t.Name.Local)
		s.lastElement = &t
	}
	glog.V(3).Infof("Stack: %#v", s.open.Dump())
	return nil
}

func (s *cleanup) endElement(t xml.EndElement) error {
	glog.V(3).Infof("case end element %s", t.Name.Local)
	isAggregate := IsAggregate(t.Name.Local) || s.open.Contains(t.Name)
	// If last data exists, this end tag closes the pending element when it is
	// an element, or the pending element is missing its end tag when this is
	// an aggregate.
	if s.lastData != "" {
		glog.V(3).Infof("EndTag: previous tag needs to be closed: %s %v", s.lastData, s.lastElement)
		switch {
		case s.lastElement != nil && t.Name.Local != s.lastElement.Name.Local && !isAggregate:
			// We can not determine which of the two is missing a closing tag.
			return fmt.Errorf("error: charData(%s) has ambigious closing tags", s.lastData)
		case s.lastElement == nil && isAggregate:
			return fmt.Errorf("error: charData(%s) missing start and end tags", s.lastData)
		case s.lastElement != nil:
			s.out.element(*s.lastElement, s.lastData)
		default:
			// The element is missing its start tag.
			s.out.element(xml.StartElement{Name: t.Name}, s.lastData)
		}
		s.lastData = ""
	}
	s.lastElement = nil

	if !isAggregate {
		return nil
	}
	// An aggregate that was never opened has nothing to close.
	if !s.open.Contains(t.Name) {
		glog.V(3).Infof("EndTag: %s was not opened, dropping it", t.Name.Local)
		return nil
	}
	glog.V(3).Infof("EndTag: %s is aggregate, popping from stack", t.Name.Local)
	// Close every open tag till the current closing tag is matched.
	for !s.open.IsEmpty() {
		name, _ := s.open.Pop()
		s.out.end(name)
		if name.Local == t.Name.Local {
			break
		}
	}
	glog.V(3).Infof("Stack: %#v", s.open.Dump())
	return nil
}
