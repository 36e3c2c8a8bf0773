/*
Package ofxstream is an OFX library that parses bank, credit card, investment
and security list statements into a single Statement.

OFX 2.x (XML) documents are read with one forward-only cursor. OFX 1.x (SGML)
documents, which routinely omit closing tags, are first rebuilt into XML by a
Cleaner and then read the same way.

Parsing is forgiving: unknown elements are skipped with a warning, malformed
amounts become zero and malformed status codes are ignored. Only unreadable
input, broken markup and malformed dates abort a parse.

*/
package ofxstream
