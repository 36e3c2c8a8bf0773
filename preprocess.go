package ofxstream

import "regexp"

// fixup is a one-off transform for a known vendor deviation in OFX 1.x data.
type fixup struct {
	from *regexp.Regexp
	to   []byte
}

var fixups = []fixup{
	// Account details following CURDEF without their BANKACCTFROM aggregate.
	{regexp.MustCompile(`(</CURDEF>\s+)(<BANKID>)`), []byte("$1<BANKACCTFROM>$2")},
	{regexp.MustCompile(`(<CURDEF>[A-Z]{3}\s+)(<BANKID>)`), []byte("$1<BANKACCTFROM>$2")},
	// Closing tags written with a space, as in "</ STMTTRN>".
	{regexp.MustCompile(`</\s+([A-Z0-9.]+)>`), []byte("</$1>")},
}

// preprocessOFXData applies one-off transforms to fix bad data.
// This should not be required as the library matures.
func preprocessOFXData(content []byte) []byte {
	for _, f := range fixups {
		content = f.from.ReplaceAll(content, f.to)
	}
	return content
}
