// Package pmolog holds logging helpers shared by the control packages.
package pmolog

import (
	"bytes"
	"encoding/xml"
)

// PrettyPrintXML re-indents an XML blob for debug output. Metadata and
// SOAP bodies come off the wire on one line; this makes them readable
// in the logs. Tokens that fail to decode end the output early rather
// than failing, the input being a log payload and not a document we
// act on.
func PrettyPrintXML(raw string) string {
	var out bytes.Buffer
	dec := xml.NewDecoder(bytes.NewReader([]byte(raw)))
	enc := xml.NewEncoder(&out)
	enc.Indent("", "  ")
	for {
		t, err := dec.Token()
		if err != nil {
			break
		}
		if err := enc.EncodeToken(t); err != nil {
			break
		}
	}
	enc.Flush()
	return out.String()
}
