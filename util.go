package ofxstream

import (
	"bytes"
	"encoding/xml"

	"github.com/golang/glog"
)

// xmlWriter writes the elements of a cleaned document.
type xmlWriter struct {
	buff bytes.Buffer
}

// start writes the start tag of the given element.
// based on https://golang.org/src/encoding/xml/marshal.go:678
func (w *xmlWriter) start(e xml.StartElement) {
	glog.V(3).Infof("pushed: %s", e.Name.Local)
	w.buff.WriteByte('<')
	w.buff.WriteString(e.Name.Local)
	// Namespace
	if e.Name.Space != "" {
		w.buff.WriteString(` xmlns="`)
		w.escape(e.Name.Space)
		w.buff.WriteByte('"')
	}
	// Attributes
	for _, attr := range e.Attr {
		if attr.Name.Local == "" {
			continue
		}
		w.buff.WriteByte(' ')
		w.buff.WriteString(attr.Name.Local)
		w.buff.WriteString(`="`)
		w.escape(attr.Value)
		w.buff.WriteByte('"')
	}
	w.buff.WriteByte('>')
}

// end writes the end tag for the given name.
func (w *xmlWriter) end(name xml.Name) {
	glog.V(3).Infof("popped: %s", name.Local)
	w.buff.WriteString("</")
	w.buff.WriteString(name.Local)
	w.buff.WriteByte('>')
}

// element writes a leaf element holding already escaped data.
func (w *xmlWriter) element(e xml.StartElement, data string) {
	w.start(e)
	w.buff.WriteString(data)
	w.end(e.Name)
}

func (w *xmlWriter) escape(s string) {
	// Writes to a bytes.Buffer never fail.
	_ = xml.EscapeText(&w.buff, []byte(s))
}

// escapeString returns the XML escaped form of s.
func escapeString(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
