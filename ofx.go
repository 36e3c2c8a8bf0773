package ofxstream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/net/html/charset"
)

// ErrUnknownVersion is returned for input that is neither OFX 1.x nor 2.x.
var ErrUnknownVersion = errors.New("error - unknown OFX version")

// sniffLen is how much of the input is inspected to detect the OFX version.
const sniffLen = 1024

// Version is the OFX wire format of a document.
type Version int

const (
	// UnknownVersion is anything that does not look like OFX.
	UnknownVersion Version = iota
	// V1 is the SGML based OFX 1.x format.
	V1
	// V2 is the XML based OFX 2.x format.
	V2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "1.x"
	case V2:
		return "2.x"
	}
	return "unknown"
}

// DetectVersion inspects the start of a document for its OFX version.
// OFX 1.x starts with an OFXHEADER block, OFX 2.x carries an <?OFX ...?>
// processing instruction. A bare <OFX> document is read as 1.x, since the
// Cleaner also accepts well formed markup.
func DetectVersion(data []byte) Version {
	head := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	upper := bytes.ToUpper(head)
	switch {
	case bytes.HasPrefix(upper, []byte("OFXHEADER:")):
		return V1
	case bytes.Contains(upper, []byte("<?OFX")):
		return V2
	case bytes.HasPrefix(upper, []byte("<?XML")) && bytes.Contains(upper, []byte("<OFX>")):
		return V2
	case bytes.HasPrefix(upper, []byte("<OFX>")):
		return V1
	}
	return UnknownVersion
}

// HeaderEncoding returns the character encoding declared by an OFX 1.x
// header, as a label understood by golang.org/x/net/html/charset.
func HeaderEncoding(data []byte) string {
	var encoding, cs string
	header := data
	if i := bytes.Index(data, []byte("<")); i >= 0 {
		header = data[:i]
	}
	for _, line := range strings.Split(string(header), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "ENCODING":
			encoding = strings.ToUpper(strings.TrimSpace(value))
		case "CHARSET":
			cs = strings.ToUpper(strings.TrimSpace(value))
		}
	}
	if encoding == "UTF-8" || encoding == "UNICODE" {
		return "utf-8"
	}
	switch cs {
	case "", "1252":
		return "windows-1252"
	case "ISO-8859-1", "8859-1":
		return "iso-8859-1"
	case "NONE":
		return "us-ascii"
	}
	if _, err := strconv.Atoi(cs); err == nil {
		return "windows-" + cs
	}
	return cs
}

// ParseFile parses the OFX file at path. OFX 1.x files are converted to XML
// by the given cleaner first.
func ParseFile(path string, cleaner Cleaner) (*Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, cleaner)
}

// ParseBytes parses an in memory OFX document.
func ParseBytes(data []byte, cleaner Cleaner) (*Statement, error) {
	return ParseReader(bytes.NewReader(data), cleaner)
}

// ParseReader detects the OFX version of r and parses it with a new Parser.
// OFX 2.x is streamed, OFX 1.x is read whole and converted by the cleaner.
func ParseReader(r io.Reader, cleaner Cleaner) (*Statement, error) {
	var (
		input  = bufio.NewReaderSize(r, 4*sniffLen)
		parser = NewParser()
	)
	head, err := input.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch DetectVersion(head) {
	case V1:
		glog.Info("Parsing OFX Version 1 file")
		data, err := io.ReadAll(input)
		if err != nil {
			return nil, err
		}
		if data, err = toUTF8(data, HeaderEncoding(data)); err != nil {
			return nil, err
		}
		cleanXML, err := cleaner.CleanupXML(data)
		if err != nil {
			return nil, err
		}
		glog.V(3).Infof("cleanXML: %s", cleanXML.String())
		if err := parser.Parse(cleanXML, "utf-8"); err != nil {
			return nil, err
		}
	case V2:
		glog.Info("Parsing OFX Version 2 file")
		if err := parser.Parse(input, ""); err != nil {
			return nil, err
		}
	default:
		glog.Info("Unknown OFX Version")
		return nil, ErrUnknownVersion
	}

	statement := parser.Statement()
	if statement == nil {
		return nil, ErrNoStatement
	}
	return statement, nil
}

// toUTF8 transcodes data from the given encoding.
func toUTF8(data []byte, encoding string) ([]byte, error) {
	if isUTF8(encoding) {
		return data, nil
	}
	r, err := charset.NewReaderLabel(encoding, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error - unsupported encoding %q: %w", encoding, err)
	}
	return io.ReadAll(r)
}
