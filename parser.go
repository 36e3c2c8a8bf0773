package ofxstream

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoStatement is returned when the input holds no OFX document.
	ErrNoStatement = errors.New("error - no OFX statement found")
	// ErrParserUsed is returned when Parse is called twice on one Parser.
	ErrParserUsed = errors.New("error - parser has already parsed a document")
)

// signOn holds what the sign-on message set tells about the whole document.
type signOn struct {
	status   Status
	language string
}

// Parser reads one OFX 2.x document into a Statement.
//
// A Parser is single use: every document needs its own Parser, and a Parser
// must not be shared between goroutines.
type Parser struct {
	used      bool
	statement *Statement
	signOn    signOn
}

// NewParser returns a Parser ready to read one document.
func NewParser() *Parser {
	return &Parser{signOn: signOn{language: DefaultLanguage}}
}

// Parse reads an OFX document from r, decoding it from the given encoding.
// An empty encoding means UTF-8, in which case an encoding named by the XML
// declaration is honored. If r is an io.Closer it is closed before Parse
// returns.
//
// Unknown elements, malformed amounts and malformed status codes are logged
// and skipped. Read errors, broken markup and malformed dates are returned.
func (p *Parser) Parse(r io.Reader, encoding string) (err error) {
	if closer, ok := r.(io.Closer); ok {
		defer func() {
			if cerr := closer.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}
	if p.used {
		return ErrParserUsed
	}
	p.used = true
	glog.V(2).Infof("entering Parse, encoding %q", encoding)

	input, charsetReader, err := decodeInput(bufio.NewReader(r), encoding)
	if err != nil {
		return err
	}

	var (
		statement = NewStatement()
		so        = signOn{language: DefaultLanguage}
	)
	found, err := readOfx(newCursor(input, charsetReader), statement, &so)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoStatement
	}
	statement.Language = so.language
	p.statement = statement
	p.signOn = so
	glog.V(2).Infof("exiting Parse, %d transactions, %d securities",
		len(statement.Transactions), len(statement.Securities))
	return nil
}

// Statement returns the parsed statement, nil until Parse succeeds.
func (p *Parser) Statement() *Statement {
	glog.Infof("OFX Status was: %d", p.signOn.status.Code)
	glog.Infof("Status Level was: %s", p.signOn.status.Severity)
	glog.Infof("File language was: %s", p.Language())
	return p.statement
}

// StatusCode returns the sign-on status code.
func (p *Parser) StatusCode() int {
	return p.signOn.status.Code
}

// StatusSeverity returns the sign-on status severity.
func (p *Parser) StatusSeverity() string {
	return p.signOn.status.Severity
}

// StatusMessage returns the sign-on status message.
func (p *Parser) StatusMessage() string {
	return p.signOn.status.Message
}

// Language returns the document language, ENG unless the document declares one.
func (p *Parser) Language() string {
	if p.signOn.language == "" {
		return DefaultLanguage
	}
	return p.signOn.language
}

// decodeInput returns a UTF-8 reader for the input and the charset reader
// handed to the xml decoder for an encoding named by the XML declaration.
func decodeInput(r io.Reader, encoding string) (io.Reader, func(string, io.Reader) (io.Reader, error), error) {
	if isUTF8(encoding) {
		return r, charset.NewReaderLabel, nil
	}
	decoded, err := charset.NewReaderLabel(encoding, r)
	if err != nil {
		return nil, nil, fmt.Errorf("error - unsupported encoding %q: %w", encoding, err)
	}
	// The input is UTF-8 from here on, whatever the declaration says.
	return decoded, func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}, nil
}

func isUTF8(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// readOfx dispatches the message sets of the document. It reports whether
// an OFX document was found at all.
func readOfx(c *cursor, statement *Statement, so *signOn) (bool, error) {
	found := false
	for {
		token, err := c.next()
		if err == io.EOF {
			return found, nil
		}
		if err != nil {
			return found, fmt.Errorf("error - reading OFX document: %w", err)
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case tagOFX: // consume the OFX root here, its children are read below
			found = true
		case tagSignOnMsgSet:
			found = true
			err = parseSignOnMessageSet(c, se, so)
		case tagBankMsgSet:
			found = true
			err = parseBankMessageSet(c, se, statement)
		case tagCreditCardMsgSet:
			found = true
			err = parseCreditCardMessageSet(c, se, statement)
		case tagInvMsgSet:
			found = true
			err = parseInvestmentMessageSet(c, se, statement)
		case tagSecListMsgSet:
			found = true
			err = parseSecuritiesMessageSet(c, se, statement)
		default:
			glog.Warningf("Unknown message set %s", se.Name.Local)
			err = c.skip(se)
		}
		if err != nil {
			return found, err
		}
	}
}
